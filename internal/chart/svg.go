package chart

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"
)

// WriteSVG renders c as a standalone SVG document.
func WriteSVG(w io.Writer, c Chart) error {
	if err := c.Validate(); err != nil {
		return err
	}
	width, height := c.size()
	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, fmt.Sprintf("fill:%s", css(colorBackdrop)))
	canvas.Text(int(padding), int(padding), c.Title,
		fmt.Sprintf("fill:%s;font-size:18px;font-family:sans-serif;font-weight:bold", css(colorText)))

	switch c.Kind {
	case Gauge:
		gaugeSVG(canvas, c)
	default:
		barsSVG(canvas, c)
	}

	canvas.End()
	return nil
}

func barsSVG(canvas *svg.SVG, c Chart) {
	l := layoutBars(c)
	axis := fmt.Sprintf("stroke:%s;stroke-width:1", css(colorAxis))
	small := fmt.Sprintf("fill:%s;font-size:12px;font-family:sans-serif", css(colorSubtle))

	for _, t := range l.Ticks {
		y := int(t.Y)
		canvas.Line(int(l.PlotX), y, int(l.PlotX+l.PlotW), y, axis+";stroke-dasharray:2,3")
		canvas.Text(int(l.PlotX)-8, y+4, fmt.Sprintf("%.0f", t.Label), small+";text-anchor:end")
	}
	canvas.Line(int(l.PlotX), int(l.PlotY+l.PlotH), int(l.PlotX+l.PlotW), int(l.PlotY+l.PlotH), axis)

	for _, b := range l.Bars {
		canvas.Rect(int(b.X), int(b.Y), int(b.W), int(b.H), fmt.Sprintf("fill:%s", css(c.Color)))
		cx := int(b.X + b.W/2)
		canvas.Text(cx, int(b.Y)-6, fmt.Sprintf("%.0f%%", b.Value), small+";text-anchor:middle")
		canvas.Text(cx, int(l.PlotY+l.PlotH)+18, truncate(b.Label, 14), small+";text-anchor:middle")
	}

	if c.XLabel != "" {
		canvas.Text(int(l.PlotX+l.PlotW/2), l.Height-int(padding/2), c.XLabel, small+";text-anchor:middle")
	}
	if c.YLabel != "" {
		x, y := int(padding/2)+4, int(l.PlotY+l.PlotH/2)
		canvas.Text(x, y, c.YLabel, small+";text-anchor:middle;writing-mode:tb")
	}
}

func gaugeSVG(canvas *svg.SVG, c Chart) {
	g := layoutGauge(c)
	r := g.Radius - g.Thickness/2

	arc := func(from, to float64, col string) {
		x1, y1 := g.arcPoint(from, r)
		x2, y2 := g.arcPoint(to, r)
		canvas.Path(fmt.Sprintf("M %.1f %.1f A %.1f %.1f 0 0 1 %.1f %.1f", x1, y1, r, r, x2, y2),
			fmt.Sprintf("fill:none;stroke:%s;stroke-width:%.1f", col, g.Thickness))
	}

	max := c.max()
	for _, b := range c.Bands {
		arc(b.From/max, b.To/max, css(b.Color))
	}
	if g.Fraction > 0 {
		arc(0, g.Fraction, css(c.Color))
	}

	canvas.Text(int(g.CX), int(g.CY)-8, fmt.Sprintf("%.0f", g.Value),
		fmt.Sprintf("fill:%s;font-size:42px;font-family:sans-serif;font-weight:bold;text-anchor:middle", css(colorText)))
	small := fmt.Sprintf("fill:%s;font-size:12px;font-family:sans-serif", css(colorSubtle))
	lx, ly := g.arcPoint(0, r)
	rx, ry := g.arcPoint(1, r)
	canvas.Text(int(lx), int(ly)+18, "0", small+";text-anchor:middle")
	canvas.Text(int(rx), int(ry)+18, fmt.Sprintf("%.0f", max), small+";text-anchor:middle")
}
