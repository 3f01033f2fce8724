package regionplot

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const boundsPadding = 1.0

// Bounds is the padded bounding box of the first two feature columns.
type Bounds struct {
	XMin, XMax float64
	YMin, YMax float64
}

// NewBounds returns min-1 .. max+1 for columns 0 and 1 of X.
func NewBounds(X mat.Matrix) (Bounds, error) {
	r, c := X.Dims()
	if r == 0 {
		return Bounds{}, ErrEmptyDataset
	}
	if c < 2 {
		return Bounds{}, errors.Wrapf(ErrTooFewColumns, "got %d", c)
	}

	col0 := mat.Col(nil, 0, X)
	col1 := mat.Col(nil, 1, X)
	for j, col := range [][]float64{col0, col1} {
		for i, v := range col {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return Bounds{}, errors.Wrapf(ErrNonFinite, "row %d, column %d is %v", i, j, v)
			}
		}
	}
	return Bounds{
		XMin: floats.Min(col0) - boundsPadding,
		XMax: floats.Max(col0) + boundsPadding,
		YMin: floats.Min(col1) - boundsPadding,
		YMax: floats.Max(col1) + boundsPadding,
	}, nil
}
