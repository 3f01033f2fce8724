package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"slices"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot/vg"

	"regionplot-go/internal/config"
	"regionplot-go/internal/presenter"
	"regionplot-go/pkg/blobs"
	"regionplot-go/pkg/centroid"
	"regionplot-go/pkg/gaussclass"
	"regionplot-go/pkg/readmatrix"
	"regionplot-go/pkg/regionplot"
)

// radius of the circle synthetic class centers sit on
const centerRadius = 4

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "regionplot:", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:   "regionplot",
		Usage:  "plot the decision regions of a classifier over two features",
		Flags:  config.Flags(),
		Action: run,
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	return cfg.Build()
}

func run(c *cli.Context) error {
	cfg, err := config.FromContext(c)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg.Debug)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck
	logger.Info("starting regionplot", zap.Stringer("config", cfg))

	src := rand.NewPCG(cfg.Seed, cfg.Seed)
	X, y, clf, err := load(cfg, src, logger)
	if err != nil {
		return err
	}
	test := blobs.TestSplit(len(y), cfg.TestFraction, src)
	logger.Debug("dataset ready", zap.Int("samples", len(y)), zap.Int("tests", len(test)))

	p := presenter.NewPlot(cfg.Title, "x1", "x2")
	r, err := regionplot.Render(p, X, y, clf,
		regionplot.WithResolution(cfg.Resolution),
		regionplot.WithTestIndices(test...),
		regionplot.WithBoundaries(cfg.Boundaries),
		regionplot.WithClassMarkers(cfg.ClassMarkers),
		regionplot.WithLogger(logger.Named("regionplot")),
	)
	if err != nil {
		return errors.Wrap(err, "rendering decision regions")
	}

	if err := presenter.SavePlot(p, vg.Points(cfg.Width), vg.Points(cfg.Height), cfg.Output); err != nil {
		return err
	}
	if cfg.MeshCSV != "" {
		if err := presenter.SaveMeshCSV(r.Mesh, cfg.MeshCSV); err != nil {
			return errors.Wrap(err, "saving mesh")
		}
	}

	rows, cols := r.Mesh.Shape()
	logger.Info("plot written",
		zap.String("output", cfg.Output),
		zap.Ints("classes", r.Classes),
		zap.Int("mesh_rows", rows),
		zap.Int("mesh_cols", cols))
	return nil
}

// load returns the samples and the classifier to plot. The fitted model is
// summarized at debug level.
func load(cfg *config.Config, src rand.Source, logger *zap.Logger) (*mat.Dense, []int, regionplot.Classifier[int], error) {
	var (
		X *mat.Dense
		y []int
	)
	if cfg.DataFile != "" {
		m, err := readmatrix.ReadMatrix(cfg.DataFile)
		if err != nil {
			return nil, nil, nil, errors.Wrapf(err, "reading %s", cfg.DataFile)
		}
		if X, y, err = readmatrix.SplitLabels(m); err != nil {
			return nil, nil, nil, errors.Wrapf(err, "reading %s", cfg.DataFile)
		}
	}

	switch cfg.Classifier {
	case config.Gauss:
		classes, err := gaussclass.ReadClasses(cfg.ClassesFile)
		if err != nil {
			return nil, nil, nil, err
		}
		model, err := gaussclass.NewModel(classes, src)
		if err != nil {
			return nil, nil, nil, err
		}
		for i, cl := range classes {
			logger.Debug("gaussian class",
				zap.Int("label", i),
				zap.String("title", cl.Title),
				zap.Float64s("center", cl.Center[:]),
				zap.Float64s("probs_at_center", model.Classify(cl.Center)))
		}
		if X == nil {
			X, y = model.Sample(cfg.PerClass)
		}
		return X, y, model, nil
	default:
		if X == nil {
			var err error
			X, y, err = blobs.Generate(blobs.Circle(cfg.NumClasses, centerRadius), cfg.PerClass, cfg.Spread, src)
			if err != nil {
				return nil, nil, nil, err
			}
		}
		clf, err := centroid.Fit(X, y)
		if err != nil {
			return nil, nil, nil, err
		}
		labels := slices.Clone(y)
		slices.Sort(labels)
		for _, l := range slices.Compact(labels) {
			c, _ := clf.Centroid(l)
			logger.Debug("class centroid", zap.Int("label", l), zap.Float64s("centroid", c[:]))
		}
		return X, y, clf, nil
	}
}
