package regionplot

import (
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// outlinedCircle is a filled circle with a stroked edge.
type outlinedCircle struct {
	Edge draw.LineStyle
}

func (g outlinedCircle) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	draw.CircleGlyph{}.DrawGlyph(c, sty, pt)

	edge := g.Edge
	if edge.Color == nil {
		edge.Color = sty.Color
	}
	c.SetLineStyle(edge)
	var p vg.Path
	p.Move(vg.Point{X: pt.X + sty.Radius, Y: pt.Y})
	p.Arc(pt, sty.Radius, 0, 2*math.Pi)
	p.Close()
	c.Stroke(p)
}

// markerRadius converts a marker area in pt^2 to a glyph radius.
func markerRadius(area float64) vg.Length {
	return vg.Points(math.Sqrt(area) / 2)
}

// invertedPyramid is a filled triangle pointing down.
type invertedPyramid struct{}

func (invertedPyramid) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	c.SetColor(sty.Color)
	r := sty.Radius + (sty.Radius-sty.Radius*vg.Length(math.Sin(math.Pi/6)))/2
	dx := r * vg.Length(math.Cos(math.Pi/6))
	dy := r * vg.Length(math.Sin(math.Pi/6))
	var p vg.Path
	p.Move(vg.Point{X: pt.X, Y: pt.Y - r})
	p.Line(vg.Point{X: pt.X - dx, Y: pt.Y + dy})
	p.Line(vg.Point{X: pt.X + dx, Y: pt.Y + dy})
	p.Close()
	c.Fill(p)
}
