package presenter

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// formats plot.WriterTo can produce
var formats = map[string]bool{
	"eps": true, "jpg": true, "jpeg": true, "pdf": true, "png": true,
	"svg": true, "tex": true, "tif": true, "tiff": true,
}

// NewPlot returns an empty plot with a title, axis labels and no axis
// padding, ready for regionplot.Render.
func NewPlot(title, xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.X.Padding = 0
	p.Y.Padding = 0
	p.Legend.Top = true
	return p
}

// Format returns the output format implied by the extension of filename.
func Format(filename string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if !formats[ext] {
		return "", errors.Errorf("unsupported plot format %q", ext)
	}
	return ext, nil
}

// SavePlot writes p to filename.
func SavePlot(p *plot.Plot, width, height vg.Length, filename string) error {
	format, err := Format(filename)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(width, height, format)
	if err != nil {
		return errors.Wrap(err, "rendering plot")
	}

	w, err := os.Create(filename)
	if err != nil {
		return err
	}
	if _, err := wt.WriteTo(w); err != nil {
		w.Close()
		return errors.Wrapf(err, "writing %s", filename)
	}
	return w.Close()
}
