package regionplot

import "github.com/pkg/errors"

// Sentinel errors returned (wrapped) by Render. Use errors.Is to match them.
var (
	ErrEmptyDataset   = errors.New("dataset has no samples")
	ErrTooFewColumns  = errors.New("dataset needs at least two feature columns")
	ErrLabelMismatch  = errors.New("label count does not match sample count")
	ErrBadResolution  = errors.New("resolution must be a positive finite number")
	ErrNonFinite      = errors.New("feature values must be finite")
	ErrMeshSize       = errors.New("mesh has no points or too many points")
	ErrTestIndex      = errors.New("test index out of range")
	ErrTooManyClasses = errors.New("more distinct labels than palette entries")
	ErrPredictShape   = errors.New("classifier returned wrong number of labels")
	ErrNilClassifier  = errors.New("classifier is nil")
	ErrNilPlot        = errors.New("plot is nil")
)
