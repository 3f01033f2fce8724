package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func parse(t *testing.T, args ...string) (*Config, error) {
	t.Helper()
	var (
		cfg *Config
		err error
	)
	app := &cli.App{
		Name:  "test",
		Flags: Flags(),
		Action: func(c *cli.Context) error {
			cfg, err = FromContext(c)
			return nil
		},
	}
	require.NoError(t, app.Run(append([]string{"test"}, args...)))
	return cfg, err
}

func TestDefaults(t *testing.T) {
	cfg, err := parse(t)
	require.NoError(t, err)
	assert.Equal(t, Centroid, cfg.Classifier)
	assert.Equal(t, 0.02, cfg.Resolution)
	assert.Equal(t, 3, cfg.NumClasses)
	assert.Equal(t, uint64(1), cfg.Seed)
	assert.Equal(t, "regions.pdf", cfg.Output)
	assert.False(t, cfg.ClassMarkers)
	assert.Contains(t, cfg.String(), "resolution=0.02")
}

func TestFlags(t *testing.T) {
	cfg, err := parse(t, "--classifier", "gauss", "--classes", "classes.json",
		"--resolution", "0.5", "--output", "out.png", "--boundaries", "--class-markers")
	require.NoError(t, err)
	assert.Equal(t, Gauss, cfg.Classifier)
	assert.Equal(t, "classes.json", cfg.ClassesFile)
	assert.Equal(t, 0.5, cfg.Resolution)
	assert.True(t, cfg.Boundaries)
	assert.True(t, cfg.ClassMarkers)
	assert.Contains(t, cfg.String(), "classes=classes.json")
}

func TestValidate(t *testing.T) {
	for name, args := range map[string][]string{
		"gauss without classes": {"--classifier", "gauss"},
		"unknown classifier":    {"--classifier", "svm"},
		"resolution":            {"--resolution", "0"},
		"test fraction":         {"--test-fraction", "1.5"},
		"too many classes":      {"--num-classes", "6"},
		"per class":             {"--per-class", "0"},
		"size":                  {"--width", "0"},
		"output":                {"--output", ""},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := parse(t, args...)
			assert.Error(t, err)
		})
	}
}
