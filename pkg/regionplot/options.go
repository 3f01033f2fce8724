package regionplot

import (
	"go.uber.org/zap"
	"gonum.org/v1/plot/vg"
)

// DefaultResolution is the mesh step used when none is given.
const DefaultResolution = 0.02

const (
	defaultRegionAlpha = 0.4
	defaultSampleAlpha = 0.8
	defaultTestAlpha   = 1.0
	// marker areas in pt^2
	defaultSampleArea = 36
	defaultTestArea   = 55
	defaultEdgeWidth  = 1
)

type options struct {
	resolution   float64
	testIdx      []int
	palette      Palette
	regionAlpha  float64
	sampleAlpha  float64
	testAlpha    float64
	sampleSize   vg.Length
	testSize     vg.Length
	edgeWidth    vg.Length
	boundaries   bool
	classMarkers bool
	logger       *zap.Logger
}

func defaultOptions() options {
	return options{
		resolution:  DefaultResolution,
		palette:     DefaultPalette(),
		regionAlpha: defaultRegionAlpha,
		sampleAlpha: defaultSampleAlpha,
		testAlpha:   defaultTestAlpha,
		sampleSize:  markerRadius(defaultSampleArea),
		testSize:    markerRadius(defaultTestArea),
		edgeWidth:   vg.Points(defaultEdgeWidth),
		logger:      zap.NewNop(),
	}
}

// Option configures a Plotter.
type Option func(*options)

// WithResolution sets the mesh step on both axes.
func WithResolution(step float64) Option {
	return func(o *options) { o.resolution = step }
}

// WithTestIndices marks rows of the dataset as held-out samples. They are
// drawn a second time with a larger outlined marker.
func WithTestIndices(idx ...int) Option {
	return func(o *options) {
		o.testIdx = append([]int(nil), idx...)
	}
}

// WithPalette replaces the default five-entry palette.
func WithPalette(p Palette) Option {
	return func(o *options) { o.palette = p }
}

// WithRegionAlpha sets the opacity of the filled decision regions.
func WithRegionAlpha(alpha float64) Option {
	return func(o *options) { o.regionAlpha = alpha }
}

// WithSampleAlpha sets the opacity of the sample markers.
func WithSampleAlpha(alpha float64) Option {
	return func(o *options) { o.sampleAlpha = alpha }
}

// WithBoundaries draws contour lines along the borders between regions.
func WithBoundaries(on bool) Option {
	return func(o *options) { o.boundaries = on }
}

// WithClassMarkers draws each class's samples with its palette marker
// instead of 'x'.
func WithClassMarkers(on bool) Option {
	return func(o *options) { o.classMarkers = on }
}

// WithLogger sets the logger. Render only logs at debug and warn level.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
