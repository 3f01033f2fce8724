// Package regionplot draws the decision regions of a fitted two-feature
// classifier onto a gonum plot, with the samples overlaid.
package regionplot

import (
	"cmp"
	"fmt"
	"image/color"
	"math"
	"slices"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Plotter renders decision regions for labels of type L.
type Plotter[L cmp.Ordered] struct {
	opts options
}

// New returns a Plotter configured with opts.
func New[L cmp.Ordered](opts ...Option) *Plotter[L] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Plotter[L]{opts: o}
}

// Render is shorthand for New[L](opts...).Render(p, X, y, clf).
func Render[L cmp.Ordered](p *plot.Plot, X mat.Matrix, y []L, clf Classifier[L], opts ...Option) (*Rendering[L], error) {
	return New[L](opts...).Render(p, X, y, clf)
}

// Rendering describes what Render added to the plot.
type Rendering[L cmp.Ordered] struct {
	Bounds  Bounds
	Mesh    *Mesh
	Classes []L // distinct labels of y, sorted; Classes[i] uses palette entry i

	Regions    *plotter.HeatMap
	Boundaries *plotter.Contour // nil unless WithBoundaries(true)
	Samples    []*plotter.Scatter
	Tests      []*plotter.Scatter
	Legend     []string

	// Unknown counts mesh points whose predicted label is not in Classes.
	// Those points are left unfilled.
	Unknown int
}

// Render evaluates clf over a mesh spanning the first two columns of X,
// fills the predicted regions and scatters the samples of X labelled by y.
// Everything is added to p; the caller owns saving it.
func (rp *Plotter[L]) Render(p *plot.Plot, X mat.Matrix, y []L, clf Classifier[L]) (*Rendering[L], error) {
	if p == nil {
		return nil, ErrNilPlot
	}
	if clf == nil {
		return nil, ErrNilClassifier
	}
	classes, err := rp.validate(X, y)
	if err != nil {
		return nil, err
	}
	log := rp.opts.logger

	bounds, err := NewBounds(X)
	if err != nil {
		return nil, err
	}
	mesh, err := NewMesh(bounds, rp.opts.resolution)
	if err != nil {
		return nil, err
	}
	rows, cols := mesh.Shape()
	log.Debug("evaluating mesh",
		zap.Int("rows", rows),
		zap.Int("cols", cols),
		zap.Float64("resolution", rp.opts.resolution),
		zap.Int("classes", len(classes)))

	pred, err := clf.Predict(mesh.Points())
	if err != nil {
		return nil, errors.Wrap(err, "predicting mesh labels")
	}
	if len(pred) != rows*cols {
		return nil, errors.Wrapf(ErrPredictShape, "got %d labels for %d mesh points", len(pred), rows*cols)
	}

	r := &Rendering[L]{Bounds: bounds, Mesh: mesh, Classes: classes}
	r.Unknown = fillMesh(mesh, pred, classes)
	if r.Unknown > 0 {
		log.Warn("predicted labels outside the dataset's classes left unfilled", zap.Int("points", r.Unknown))
	}

	r.Regions = rp.regions(mesh, len(classes))
	p.Add(r.Regions)
	if rp.opts.boundaries && len(classes) > 1 && r.Unknown == 0 {
		r.Boundaries = rp.boundaries(mesh, len(classes))
		p.Add(r.Boundaries)
	}

	for i, cl := range classes {
		s, err := rp.scatter(X, y, nil, cl, draw.GlyphStyle{
			Color:  rp.opts.palette.Faded(i, rp.opts.sampleAlpha),
			Radius: rp.opts.sampleSize,
			Shape:  rp.sampleGlyph(i),
		})
		if err != nil {
			return nil, err
		}
		r.add(p, fmt.Sprint(cl), s, false)
	}

	if rp.opts.testIdx != nil {
		testY := make([]L, len(rp.opts.testIdx))
		for i, idx := range rp.opts.testIdx {
			testY[i] = y[idx]
		}
		for _, cl := range distinct(testY) {
			i, _ := slices.BinarySearch(classes, cl)
			c := rp.opts.palette.Faded(i, rp.opts.testAlpha)
			s, err := rp.scatter(X, y, rp.opts.testIdx, cl, draw.GlyphStyle{
				Color:  c,
				Radius: rp.opts.testSize,
				Shape:  outlinedCircle{Edge: draw.LineStyle{Color: c, Width: rp.opts.edgeWidth}},
			})
			if err != nil {
				return nil, err
			}
			r.add(p, fmt.Sprintf("test %v", cl), s, true)
		}
	}

	// Add widens the axes to every plotter's data range, so the view is
	// pinned to the mesh only after the last Add.
	ext := mesh.Extent()
	p.X.Min, p.X.Max = ext.XMin, ext.XMax
	p.Y.Min, p.Y.Max = ext.YMin, ext.YMax

	log.Debug("rendered decision regions",
		zap.Int("samples", len(y)),
		zap.Int("tests", len(rp.opts.testIdx)),
		zap.Strings("legend", r.Legend))
	return r, nil
}

func (r *Rendering[L]) add(p *plot.Plot, name string, s *plotter.Scatter, test bool) {
	p.Add(s)
	p.Legend.Add(name, s)
	r.Legend = append(r.Legend, name)
	if test {
		r.Tests = append(r.Tests, s)
	} else {
		r.Samples = append(r.Samples, s)
	}
}

func (rp *Plotter[L]) validate(X mat.Matrix, y []L) ([]L, error) {
	var err error
	// A nil *mat.Dense inside the interface is the common typed-nil case.
	// Other nil Matrix implementations are the caller's to avoid.
	if d, ok := X.(*mat.Dense); X == nil || ok && d == nil {
		return nil, ErrEmptyDataset
	}
	n, c := X.Dims()
	if n == 0 {
		err = multierr.Append(err, ErrEmptyDataset)
	}
	if c < 2 {
		err = multierr.Append(err, errors.Wrapf(ErrTooFewColumns, "got %d", c))
	}
	if len(y) != n {
		err = multierr.Append(err, errors.Wrapf(ErrLabelMismatch, "%d labels for %d samples", len(y), n))
	}
	if !(rp.opts.resolution > 0) || math.IsInf(rp.opts.resolution, 1) {
		err = multierr.Append(err, errors.Wrapf(ErrBadResolution, "got %v", rp.opts.resolution))
	}
	for _, idx := range rp.opts.testIdx {
		if idx < 0 || idx >= n || idx >= len(y) {
			err = multierr.Append(err, errors.Wrapf(ErrTestIndex, "index %d, %d samples", idx, n))
		}
	}

	classes := distinct(y)
	if len(classes) > len(rp.opts.palette) {
		err = multierr.Append(err, errors.Wrapf(ErrTooManyClasses, "%d labels, %d palette entries",
			len(classes), len(rp.opts.palette)))
	}
	if err != nil {
		return nil, err
	}
	return classes, nil
}

// fillMesh stores the class index of every prediction in mesh.Values and
// returns how many predictions had no class.
func fillMesh[L cmp.Ordered](mesh *Mesh, pred, classes []L) int {
	unknown := 0
	mesh.Values = make([]float64, len(pred))
	for i, l := range pred {
		k, ok := slices.BinarySearch(classes, l)
		if !ok {
			mesh.Values[i] = math.NaN()
			unknown++
			continue
		}
		mesh.Values[i] = float64(k)
	}
	return unknown
}

// sampleGlyph is the sample marker for class i: 'x' unless the palette's
// markers are enabled.
func (rp *Plotter[L]) sampleGlyph(i int) draw.GlyphDrawer {
	if rp.opts.classMarkers {
		return rp.opts.palette.Glyph(i)
	}
	return draw.CrossGlyph{}
}

func (rp *Plotter[L]) regions(mesh *Mesh, k int) *plotter.HeatMap {
	h := plotter.NewHeatMap(mesh, rp.opts.palette.regions(k, rp.opts.regionAlpha))
	// Class index i maps exactly onto palette color i.
	h.Min = 0
	h.Max = math.Max(float64(k-1), 1)
	h.NaN = nil
	h.Rasterized = true
	return h
}

func (rp *Plotter[L]) boundaries(mesh *Mesh, k int) *plotter.Contour {
	levels := make([]float64, k-1)
	for i := range levels {
		levels[i] = float64(i) + 0.5
	}
	c := plotter.NewContour(mesh, levels, colors{color.Black})
	c.Min, c.Max = 0, float64(k)
	c.LineStyles = []draw.LineStyle{{Color: color.Black, Width: vg.Points(0.5)}}
	return c
}

// scatter builds a scatter of the rows of X labelled cl. When rows is
// non-nil only those rows are considered.
func (rp *Plotter[L]) scatter(X mat.Matrix, y []L, rows []int, cl L, sty draw.GlyphStyle) (*plotter.Scatter, error) {
	var xys plotter.XYs
	pick := func(i int) {
		if y[i] == cl {
			xys = append(xys, plotter.XY{X: X.At(i, 0), Y: X.At(i, 1)})
		}
	}
	if rows == nil {
		for i := range y {
			pick(i)
		}
	} else {
		for _, i := range rows {
			pick(i)
		}
	}

	s, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, errors.Wrapf(err, "scatter for label %v", cl)
	}
	s.GlyphStyle = sty
	return s, nil
}

// distinct returns the sorted unique values of v.
func distinct[L cmp.Ordered](v []L) []L {
	out := slices.Clone(v)
	slices.Sort(out)
	return slices.Compact(out)
}
