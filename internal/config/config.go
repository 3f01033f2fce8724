package config

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/multierr"
)

// classifier kinds
const (
	Centroid = "centroid"
	Gauss    = "gauss"
)

const (
	flagData         = "data"
	flagClasses      = "classes"
	flagClassifier   = "classifier"
	flagResolution   = "resolution"
	flagTestFraction = "test-fraction"
	flagNumClasses   = "num-classes"
	flagPerClass     = "per-class"
	flagSpread       = "spread"
	flagSeed         = "seed"
	flagOutput       = "output"
	flagMeshCSV      = "mesh-csv"
	flagWidth        = "width"
	flagHeight       = "height"
	flagTitle        = "title"
	flagBoundaries   = "boundaries"
	flagClassMarkers = "class-markers"
	flagDebug        = "debug"
)

type Config struct {
	DataFile     string
	ClassesFile  string
	Classifier   string
	Resolution   float64
	TestFraction float64
	NumClasses   int
	PerClass     int
	Spread       float64
	Seed         uint64
	Output       string
	MeshCSV      string
	Width        float64
	Height       float64
	Title        string
	Boundaries   bool
	ClassMarkers bool
	Debug        bool
}

// Flags returns the command line flags read by FromContext.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: flagData, Usage: "table of samples, feature columns then an integer label column"},
		&cli.StringFlag{Name: flagClasses, Usage: "JSON file with Gaussian classes (for --classifier gauss)"},
		&cli.StringFlag{Name: flagClassifier, Value: Centroid, Usage: "classifier to plot: centroid or gauss"},
		&cli.Float64Flag{Name: flagResolution, Value: 0.02, Usage: "mesh step on both axes"},
		&cli.Float64Flag{Name: flagTestFraction, Value: 0.3, Usage: "fraction of samples highlighted as test samples"},
		&cli.IntFlag{Name: flagNumClasses, Value: 3, Usage: "number of synthetic classes when no data is given"},
		&cli.IntFlag{Name: flagPerClass, Value: 50, Usage: "synthetic samples per class"},
		&cli.Float64Flag{Name: flagSpread, Value: 0.8, Usage: "standard deviation of synthetic classes"},
		&cli.Uint64Flag{Name: flagSeed, Value: 1, Usage: "random seed"},
		&cli.StringFlag{Name: flagOutput, Value: "regions.pdf", Usage: "output file, format taken from the extension"},
		&cli.StringFlag{Name: flagMeshCSV, Usage: "also write the predicted mesh as CSV"},
		&cli.Float64Flag{Name: flagWidth, Value: 400, Usage: "plot width in points"},
		&cli.Float64Flag{Name: flagHeight, Value: 300, Usage: "plot height in points"},
		&cli.StringFlag{Name: flagTitle, Value: "Decision regions", Usage: "plot title"},
		&cli.BoolFlag{Name: flagBoundaries, Usage: "draw lines along region borders"},
		&cli.BoolFlag{Name: flagClassMarkers, Usage: "mark samples with their class's palette marker instead of 'x'"},
		&cli.BoolFlag{Name: flagDebug, Usage: "debug logging"},
	}
}

// FromContext collects and validates the flags.
func FromContext(c *cli.Context) (*Config, error) {
	cfg := &Config{
		DataFile:     c.String(flagData),
		ClassesFile:  c.String(flagClasses),
		Classifier:   c.String(flagClassifier),
		Resolution:   c.Float64(flagResolution),
		TestFraction: c.Float64(flagTestFraction),
		NumClasses:   c.Int(flagNumClasses),
		PerClass:     c.Int(flagPerClass),
		Spread:       c.Float64(flagSpread),
		Seed:         c.Uint64(flagSeed),
		Output:       c.String(flagOutput),
		MeshCSV:      c.String(flagMeshCSV),
		Width:        c.Float64(flagWidth),
		Height:       c.Float64(flagHeight),
		Title:        c.String(flagTitle),
		Boundaries:   c.Bool(flagBoundaries),
		ClassMarkers: c.Bool(flagClassMarkers),
		Debug:        c.Bool(flagDebug),
	}
	return cfg, cfg.Validate()
}

// Validate reports every invalid setting at once.
func (cfg *Config) Validate() error {
	var err error
	switch cfg.Classifier {
	case Centroid:
	case Gauss:
		if cfg.ClassesFile == "" {
			err = multierr.Append(err, errors.Errorf("--%s %s requires --%s", flagClassifier, Gauss, flagClasses))
		}
	default:
		err = multierr.Append(err, errors.Errorf("unknown classifier %q", cfg.Classifier))
	}
	if cfg.Resolution <= 0 {
		err = multierr.Append(err, errors.Errorf("--%s must be positive", flagResolution))
	}
	if cfg.TestFraction < 0 || cfg.TestFraction > 1 {
		err = multierr.Append(err, errors.Errorf("--%s must be in [0, 1]", flagTestFraction))
	}
	if cfg.DataFile == "" {
		if cfg.PerClass <= 0 {
			err = multierr.Append(err, errors.Errorf("--%s must be positive", flagPerClass))
		}
		if cfg.Classifier == Centroid && (cfg.NumClasses < 1 || cfg.NumClasses > 5) {
			err = multierr.Append(err, errors.Errorf("--%s must be between 1 and 5", flagNumClasses))
		}
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		err = multierr.Append(err, errors.New("plot size must be positive"))
	}
	if cfg.Output == "" {
		err = multierr.Append(err, errors.Errorf("--%s is required", flagOutput))
	}
	return err
}

func (cfg *Config) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "classifier=%s", cfg.Classifier)
	if cfg.DataFile != "" {
		fmt.Fprintf(&b, " data=%s", cfg.DataFile)
	} else {
		fmt.Fprintf(&b, " synthetic=%dx%d spread=%g", cfg.NumClasses, cfg.PerClass, cfg.Spread)
	}
	if cfg.ClassesFile != "" {
		fmt.Fprintf(&b, " classes=%s", cfg.ClassesFile)
	}
	fmt.Fprintf(&b, " resolution=%g test-fraction=%g seed=%d output=%s",
		cfg.Resolution, cfg.TestFraction, cfg.Seed, cfg.Output)
	return b.String()
}
