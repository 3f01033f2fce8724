package presenter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot/vg"

	"regionplot-go/pkg/centroid"
	"regionplot-go/pkg/regionplot"
)

func TestFormat(t *testing.T) {
	for in, want := range map[string]string{
		"a.pdf":         "pdf",
		"dir/b.PNG":     "png",
		"c.regions.svg": "svg",
	} {
		got, err := Format(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := Format("plot.gif")
	assert.Error(t, err)
	_, err = Format("noext")
	assert.Error(t, err)
}

func render(t *testing.T) (*regionplot.Rendering[int], func(string) error) {
	t.Helper()
	X := mat.NewDense(4, 2, []float64{0, 0, 1, 1, 5, 5, 6, 6})
	y := []int{0, 0, 1, 1}
	clf, err := centroid.Fit(X, y)
	require.NoError(t, err)

	p := NewPlot("regions", "x1", "x2")
	r, err := regionplot.Render(p, X, y, clf, regionplot.WithResolution(1), regionplot.WithTestIndices(1))
	require.NoError(t, err)
	return r, func(name string) error { return SavePlot(p, 4*vg.Inch, 3*vg.Inch, name) }
}

func TestSavePlot(t *testing.T) {
	_, save := render(t)
	dir := t.TempDir()
	for _, name := range []string{"regions.png", "regions.pdf", "regions.svg"} {
		path := filepath.Join(dir, name)
		require.NoError(t, save(path))
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Positive(t, info.Size(), name)
	}
	assert.Error(t, save(filepath.Join(dir, "regions.gif")))
}

func TestSaveMeshCSV(t *testing.T) {
	r, _ := render(t)
	path := filepath.Join(t.TempDir(), "mesh.csv")
	require.NoError(t, SaveMeshCSV(r.Mesh, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1+8*8)
	assert.Equal(t, "x,y,class", lines[0])
	assert.Equal(t, "-1,-1,0", lines[1])
	assert.Equal(t, "6,6,1", lines[len(lines)-1])
}
