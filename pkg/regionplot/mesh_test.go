package regionplot

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestNewBounds(t *testing.T) {
	X := mat.NewDense(3, 3, []float64{
		2, -1, 100,
		-3, 4, 100,
		0, 0.5, 100,
	})
	b, err := NewBounds(X)
	require.NoError(t, err)
	assert.Equal(t, Bounds{XMin: -4, XMax: 3, YMin: -2, YMax: 5}, b)

	_, err = NewBounds(mat.NewDense(2, 1, []float64{1, 2}))
	assert.ErrorIs(t, err, ErrTooFewColumns)
}

func TestNewBoundsNonFinite(t *testing.T) {
	for name, data := range map[string][]float64{
		"nan first":  {math.NaN(), 0, 1, 1},
		"nan later":  {0, 0, 1, math.NaN()},
		"inf":        {0, math.Inf(-1), 1, 1},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := NewBounds(mat.NewDense(2, 2, data))
			assert.ErrorIs(t, err, ErrNonFinite)
		})
	}
}

func TestArange(t *testing.T) {
	assert.Equal(t, []float64{-1, 0, 1, 2, 3, 4, 5, 6}, arange(-1, 8, 1))
	assert.Equal(t, []float64{0, 0.5, 1}, arange(0, 3, 0.5))

	m, err := NewMesh(Bounds{XMin: 0, XMax: 1.2, YMin: -1, YMax: 7}, 0.5)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.5, 1}, m.Xs)
	assert.Len(t, m.Ys, 16)
}

func TestMeshShape(t *testing.T) {
	rnd := rand.New(rand.NewPCG(7, 7))
	X := mat.NewDense(20, 2, nil)
	for i := range 20 {
		X.Set(i, 0, rnd.NormFloat64()*3)
		X.Set(i, 1, rnd.NormFloat64()+10)
	}
	b, err := NewBounds(X)
	require.NoError(t, err)

	for _, res := range []float64{0.02, 0.1, 0.37, 1, 5} {
		m, err := NewMesh(b, res)
		require.NoError(t, err)
		rows, cols := m.Shape()
		assert.Equal(t, int(math.Ceil((b.XMax-b.XMin)/res)), cols, "resolution %v", res)
		assert.Equal(t, int(math.Ceil((b.YMax-b.YMin)/res)), rows, "resolution %v", res)

		pr, pc := m.Points().Dims()
		assert.Equal(t, rows*cols, pr)
		assert.Equal(t, 2, pc)
	}
}

func TestNewMeshBadResolution(t *testing.T) {
	b := Bounds{XMin: 0, XMax: 1, YMin: 0, YMax: 1}
	for _, res := range []float64{0, -0.5, math.NaN(), math.Inf(1)} {
		_, err := NewMesh(b, res)
		assert.ErrorIs(t, err, ErrBadResolution, "resolution %v", res)
	}
}

func TestNewMeshSize(t *testing.T) {
	for name, tc := range map[string]struct {
		b   Bounds
		res float64
	}{
		"tiny step":     {Bounds{XMin: -1, XMax: 7, YMin: -1, YMax: 7}, 1e-300},
		"too many":      {Bounds{XMin: 0, XMax: 1e4, YMin: 0, YMax: 1e4}, 1},
		"nan bounds":    {Bounds{XMin: math.NaN(), XMax: 1, YMin: 0, YMax: 1}, 0.1},
		"empty x span":  {Bounds{XMin: 1, XMax: 1, YMin: 0, YMax: 1}, 0.1},
		"span overflow": {Bounds{XMin: -math.MaxFloat64, XMax: math.MaxFloat64, YMin: 0, YMax: 1}, 1},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := NewMesh(tc.b, tc.res)
			assert.ErrorIs(t, err, ErrMeshSize)
		})
	}

	m, err := NewMesh(Bounds{XMin: 0, XMax: 4096, YMin: 0, YMax: 4096}, 1)
	require.NoError(t, err)
	rows, cols := m.Shape()
	assert.Equal(t, MaxMeshPoints, rows*cols)
}

func TestMeshPointsOrder(t *testing.T) {
	m, err := NewMesh(Bounds{XMin: 0, XMax: 3, YMin: 10, YMax: 12}, 1)
	require.NoError(t, err)
	rows, cols := m.Shape()
	require.Equal(t, 2, rows)
	require.Equal(t, 3, cols)

	pts := m.Points()
	// x varies fastest
	assert.Equal(t, []float64{0, 10}, mat.Row(nil, 0, pts))
	assert.Equal(t, []float64{2, 10}, mat.Row(nil, 2, pts))
	assert.Equal(t, []float64{0, 11}, mat.Row(nil, 3, pts))
	assert.Equal(t, []float64{2, 11}, mat.Row(nil, 5, pts))

	m.Values = []float64{0, 1, 2, 3, 4, 5}
	c, r := m.Dims()
	assert.Equal(t, 3, c)
	assert.Equal(t, 2, r)
	assert.Equal(t, 5.0, m.Z(2, 1))
	assert.Equal(t, 3.0, m.Z(0, 1))
	assert.Equal(t, 11.0, m.Y(1))
	assert.Equal(t, 2.0, m.X(2))

	assert.Equal(t, Bounds{XMin: 0, XMax: 2, YMin: 10, YMax: 11}, m.Extent())
}
