package chart

import "math"

const (
	padding      = 36.0
	headerHeight = 48.0
	axisGutter   = 48.0
	labelGutter  = 40.0
)

type barRect struct {
	Label string
	Value float64
	X, Y  float64
	W, H  float64
}

type tick struct {
	Y     float64
	Label float64
}

type barLayout struct {
	Width, Height int
	PlotX, PlotY  float64
	PlotW, PlotH  float64
	Bars          []barRect
	Ticks         []tick
}

// layoutBars positions bars in a plot area below the title and right of the
// value axis.
func layoutBars(c Chart) barLayout {
	w, h := c.size()
	l := barLayout{
		Width:  w,
		Height: h,
		PlotX:  padding + axisGutter,
		PlotY:  padding + headerHeight,
	}
	l.PlotW = float64(w) - l.PlotX - padding
	l.PlotH = float64(h) - l.PlotY - padding - labelGutter

	slot := l.PlotW / float64(len(c.Series))
	barW := slot * 0.6
	for i, p := range c.Series {
		bh := l.PlotH * c.fraction(p.Value)
		l.Bars = append(l.Bars, barRect{
			Label: p.Label,
			Value: p.Value,
			X:     l.PlotX + float64(i)*slot + (slot-barW)/2,
			Y:     l.PlotY + l.PlotH - bh,
			W:     barW,
			H:     bh,
		})
	}

	max := c.max()
	for i := 0; i <= 4; i++ {
		frac := float64(i) / 4
		l.Ticks = append(l.Ticks, tick{
			Y:     l.PlotY + l.PlotH - l.PlotH*frac,
			Label: math.Round(max * frac),
		})
	}
	return l
}

type gaugeLayout struct {
	Width, Height int
	CX, CY        float64
	Radius        float64
	Thickness     float64
	Value         float64
	Fraction      float64
}

// layoutGauge places a semicircular gauge opening downward, centred
// horizontally.
func layoutGauge(c Chart) gaugeLayout {
	w, h := c.size()
	avail := math.Min(float64(w)/2-padding, float64(h)-headerHeight-padding*2)
	if avail < 20 {
		avail = 20
	}
	v := c.Series[0].Value
	return gaugeLayout{
		Width:     w,
		Height:    h,
		CX:        float64(w) / 2,
		CY:        headerHeight + padding + avail,
		Radius:    avail,
		Thickness: avail * 0.28,
		Value:     v,
		Fraction:  c.fraction(v),
	}
}

// arcPoint returns the point on the gauge arc at fraction f, where 0 is the
// left end and 1 the right end.
func (g gaugeLayout) arcPoint(f, r float64) (float64, float64) {
	angle := math.Pi * (1 - f)
	return g.CX + r*math.Cos(angle), g.CY - r*math.Sin(angle)
}
