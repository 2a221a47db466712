package chart

import (
	"fmt"
	"image"
	"io"
	"math"

	"git.sr.ht/~sbinet/gg"
	"golang.org/x/image/font/basicfont"
)

// Image rasterizes c.
func Image(c Chart) (image.Image, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	dc := draw(c)
	return dc.Image(), nil
}

// WritePNG rasterizes c as PNG onto w.
func WritePNG(w io.Writer, c Chart) error {
	if err := c.Validate(); err != nil {
		return err
	}
	return draw(c).EncodePNG(w)
}

func draw(c Chart) *gg.Context {
	width, height := c.size()
	dc := gg.NewContext(width, height)
	dc.SetColor(colorBackdrop)
	dc.Clear()

	dc.SetFontFace(basicfont.Face7x13)
	dc.SetColor(colorText)
	dc.DrawStringAnchored(c.Title, padding, padding-6, 0, 0.5)

	switch c.Kind {
	case Gauge:
		drawGauge(dc, c)
	default:
		drawBars(dc, c)
	}
	return dc
}

func drawBars(dc *gg.Context, c Chart) {
	l := layoutBars(c)

	dc.SetColor(colorAxis)
	dc.SetLineWidth(1)
	for _, t := range l.Ticks {
		dc.DrawLine(l.PlotX, t.Y, l.PlotX+l.PlotW, t.Y)
		dc.Stroke()
	}
	dc.SetColor(colorSubtle)
	for _, t := range l.Ticks {
		dc.DrawStringAnchored(fmt.Sprintf("%.0f", t.Label), l.PlotX-8, t.Y, 1, 0.5)
	}

	for _, b := range l.Bars {
		dc.SetColor(c.Color)
		dc.DrawRectangle(b.X, b.Y, b.W, b.H)
		dc.Fill()

		dc.SetColor(colorSubtle)
		cx := b.X + b.W/2
		dc.DrawStringAnchored(fmt.Sprintf("%.0f%%", b.Value), cx, b.Y-10, 0.5, 0.5)
		dc.DrawStringAnchored(truncate(b.Label, 14), cx, l.PlotY+l.PlotH+14, 0.5, 0.5)
	}

	if c.XLabel != "" {
		dc.DrawStringAnchored(c.XLabel, l.PlotX+l.PlotW/2, float64(l.Height)-padding/2, 0.5, 0.5)
	}
	if c.YLabel != "" {
		dc.Push()
		dc.RotateAbout(-math.Pi/2, padding/2+4, l.PlotY+l.PlotH/2)
		dc.DrawStringAnchored(c.YLabel, padding/2+4, l.PlotY+l.PlotH/2, 0.5, 0.5)
		dc.Pop()
	}
}

func drawGauge(dc *gg.Context, c Chart) {
	g := layoutGauge(c)
	r := g.Radius - g.Thickness/2
	dc.SetLineWidth(g.Thickness)

	// gg measures angles clockwise from +x; the upper half runs from π to 2π.
	arc := func(from, to float64) {
		dc.NewSubPath()
		dc.DrawArc(g.CX, g.CY, r, math.Pi+from*math.Pi, math.Pi+to*math.Pi)
		dc.Stroke()
	}

	max := c.max()
	for _, b := range c.Bands {
		dc.SetColor(b.Color)
		arc(b.From/max, b.To/max)
	}
	if g.Fraction > 0 {
		dc.SetColor(c.Color)
		arc(0, g.Fraction)
	}

	dc.SetColor(colorText)
	dc.DrawStringAnchored(fmt.Sprintf("%.0f", g.Value), g.CX, g.CY-12, 0.5, 0.5)
	dc.SetColor(colorSubtle)
	lx, ly := g.arcPoint(0, r)
	rx, ry := g.arcPoint(1, r)
	dc.DrawStringAnchored("0", lx, ly+14, 0.5, 0.5)
	dc.DrawStringAnchored(fmt.Sprintf("%.0f", max), rx, ry+14, 0.5, 0.5)
}
