package regionplot

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Mesh is a rectangular lattice over Bounds. Values holds one value per lattice
// point in row-major order (rows follow Ys, columns follow Xs) and is filled
// with class indices once the classifier has been queried.
//
// Mesh implements plotter.GridXYZ.
type Mesh struct {
	Xs, Ys []float64
	Values []float64
}

// MaxMeshPoints caps the number of lattice points NewMesh will build.
const MaxMeshPoints = 1 << 24

// NewMesh builds the lattice with the given step on both axes.
func NewMesh(b Bounds, resolution float64) (*Mesh, error) {
	if !(resolution > 0) || math.IsInf(resolution, 1) {
		return nil, errors.Wrapf(ErrBadResolution, "got %v", resolution)
	}
	nx := math.Ceil((b.XMax - b.XMin) / resolution)
	ny := math.Ceil((b.YMax - b.YMin) / resolution)
	// NaN fails both comparisons; the product is checked in float64 so it
	// cannot overflow int.
	if !(nx >= 1 && ny >= 1) || nx*ny > MaxMeshPoints {
		return nil, errors.Wrapf(ErrMeshSize, "%vx%v points at resolution %v", nx, ny, resolution)
	}
	return &Mesh{
		Xs: arange(b.XMin, int(nx), resolution),
		Ys: arange(b.YMin, int(ny), resolution),
	}, nil
}

// arange returns n values start, start+step, ...
func arange(start float64, n int, step float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

// Shape returns the lattice size as rows (y) by columns (x).
func (m *Mesh) Shape() (rows, cols int) { return len(m.Ys), len(m.Xs) }

// Points flattens the lattice into a (rows*cols)x2 matrix of (x, y) pairs.
// Row i of the result corresponds to Values[i].
func (m *Mesh) Points() *mat.Dense {
	rows, cols := m.Shape()
	sz := rows * cols
	pts := mat.NewDense(sz, 2, nil)
	sub := make([]int, 2)
	for i := 0; i < sz; i++ {
		subFor(sub, i, cols)
		pts.Set(i, 0, m.Xs[sub[1]])
		pts.Set(i, 1, m.Ys[sub[0]])
	}
	return pts
}

// subFor converts a linear row-major index into (row, col).
func subFor(sub []int, idx, cols int) {
	sub[0] = idx / cols
	sub[1] = idx - sub[0]*cols
}

// Extent is the coordinate range actually covered by the lattice points.
func (m *Mesh) Extent() Bounds {
	return Bounds{
		XMin: m.Xs[0], XMax: m.Xs[len(m.Xs)-1],
		YMin: m.Ys[0], YMax: m.Ys[len(m.Ys)-1],
	}
}

func (m *Mesh) Dims() (c, r int)   { return len(m.Xs), len(m.Ys) }
func (m *Mesh) Z(c, r int) float64 { return m.Values[r*len(m.Xs)+c] }
func (m *Mesh) X(c int) float64    { return m.Xs[c] }
func (m *Mesh) Y(r int) float64    { return m.Ys[r] }
