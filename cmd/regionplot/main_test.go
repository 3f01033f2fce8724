package main

import (
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"regionplot-go/internal/config"
)

func runApp(t *testing.T, args ...string) error {
	t.Helper()
	return newApp().Run(append([]string{"regionplot"}, args...))
}

func requireFile(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestSynthetic(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "regions.png")
	mesh := filepath.Join(dir, "mesh.csv")
	require.NoError(t, runApp(t, "--resolution", "0.25", "--per-class", "20",
		"--output", out, "--mesh-csv", mesh, "--boundaries"))
	requireFile(t, out)
	requireFile(t, mesh)
}

func TestDataFile(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "data.txt")
	require.NoError(t, os.WriteFile(data, []byte("x1 x2 label\n0 0 0\n1 1 0\n5 5 1\n6 6 1\n"), 0o644))
	out := filepath.Join(dir, "regions.svg")

	require.NoError(t, runApp(t, "--data", data, "--resolution", "0.5", "--output", out))
	requireFile(t, out)
}

func writeClasses(t *testing.T, dir string) string {
	t.Helper()
	classes := filepath.Join(dir, "classes.json")
	require.NoError(t, os.WriteFile(classes, []byte(`[
  {"title": "dust",  "center": [0, 0], "cov_matrix": [[1, 0], [0, 1]]},
  {"title": "smoke", "center": [4, 4], "cov_matrix": [[0.5, 0.1], [0.1, 0.5]]}
]`), 0o644))
	return classes
}

func TestGaussClasses(t *testing.T) {
	dir := t.TempDir()
	classes := writeClasses(t, dir)
	out := filepath.Join(dir, "regions.pdf")

	require.NoError(t, runApp(t, "--classifier", "gauss", "--classes", classes,
		"--per-class", "30", "--resolution", "0.2", "--output", out))
	requireFile(t, out)
}

func TestClassMarkers(t *testing.T) {
	out := filepath.Join(t.TempDir(), "regions.png")
	require.NoError(t, runApp(t, "--resolution", "0.25", "--num-classes", "5", "--per-class", "10",
		"--class-markers", "--output", out))
	requireFile(t, out)
}

func TestLoadLogsModel(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	cfg := &config.Config{Classifier: config.Centroid, NumClasses: 3, PerClass: 10, Spread: 0.5}
	_, y, _, err := load(cfg, rand.NewPCG(1, 1), logger)
	require.NoError(t, err)
	assert.Len(t, y, 30)
	entries := logs.FilterMessage("class centroid").All()
	require.Len(t, entries, 3)
	assert.Equal(t, int64(0), entries[0].ContextMap()["label"])

	cfg = &config.Config{Classifier: config.Gauss, ClassesFile: writeClasses(t, t.TempDir()), PerClass: 5}
	_, y, _, err = load(cfg, rand.NewPCG(1, 1), logger)
	require.NoError(t, err)
	assert.Len(t, y, 10)
	entries = logs.FilterMessage("gaussian class").All()
	require.Len(t, entries, 2)
	assert.Equal(t, "smoke", entries[1].ContextMap()["title"])
}

func TestErrors(t *testing.T) {
	dir := t.TempDir()
	assert.Error(t, runApp(t, "--classifier", "gauss"))
	assert.Error(t, runApp(t, "--data", filepath.Join(dir, "missing.txt"), "--output", filepath.Join(dir, "a.png")))
	assert.Error(t, runApp(t, "--resolution", "0.5", "--output", filepath.Join(dir, "a.gif")))
}
