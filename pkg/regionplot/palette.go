package regionplot

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
	"gonum.org/v1/plot/vg/draw"
)

// Entry is one palette slot: a marker name and its color.
type Entry struct {
	Marker string
	Color  color.Color
}

// Palette assigns entries to distinct labels in their sorted order.
// Only len(Palette) labels can be told apart; Render refuses more.
type Palette []Entry

var defaultEntries = []struct{ marker, hex string }{
	{"s", "#ff0000"}, // red
	{"x", "#0000ff"}, // blue
	{"o", "#90ee90"}, // lightgreen
	{"^", "#808080"}, // gray
	{"v", "#00ffff"}, // cyan
}

// DefaultPalette returns the five-entry palette.
func DefaultPalette() Palette {
	p := make(Palette, len(defaultEntries))
	for i, e := range defaultEntries {
		c, err := colorful.Hex(e.hex)
		if err != nil {
			panic(err)
		}
		p[i] = Entry{Marker: e.marker, Color: c}
	}
	return p
}

// NewPalette builds a palette from hex colors like "#90ee90".
func NewPalette(hexes ...string) (Palette, error) {
	p := make(Palette, len(hexes))
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, errors.Wrapf(err, "palette entry %d", i)
		}
		p[i] = Entry{Color: c}
	}
	return p, nil
}

// Glyph returns the marker shape of entry i. Unknown marker names draw
// as 'x'.
func (p Palette) Glyph(i int) draw.GlyphDrawer {
	switch p[i].Marker {
	case "s":
		return draw.BoxGlyph{}
	case "o":
		return draw.CircleGlyph{}
	case "^":
		return draw.PyramidGlyph{}
	case "v":
		return invertedPyramid{}
	case "+":
		return draw.PlusGlyph{}
	default:
		return draw.CrossGlyph{}
	}
}

// Faded returns entry i's color with the given opacity in [0, 1].
func (p Palette) Faded(i int, alpha float64) color.NRGBA {
	c, _ := colorful.MakeColor(p[i].Color)
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(clamp01(alpha) * 255))}
}

// regions is a plot palette of the first k entries at the given opacity.
func (p Palette) regions(k int, alpha float64) colors {
	out := make(colors, k)
	for i := range out {
		out[i] = p.Faded(i, alpha)
	}
	return out
}

// colors implements palette.Palette.
type colors []color.Color

func (c colors) Colors() []color.Color { return c }

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
