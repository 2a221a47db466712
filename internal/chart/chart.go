// Package chart describes the dashboard's charts declaratively and renders
// them to the terminal, SVG, PNG and a PDF progress report.
package chart

import (
	"fmt"
	"image/color"

	"github.com/abhisek/pathdash/internal/course"
)

// Kind selects how a Chart is drawn.
type Kind int

const (
	Bar Kind = iota
	Gauge
)

func (k Kind) String() string {
	switch k {
	case Bar:
		return "bar"
	case Gauge:
		return "gauge"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Point is a single labelled value.
type Point struct {
	Label string
	Value float64
}

// Band is a shaded value range on a gauge track.
type Band struct {
	From, To float64
	Color    color.RGBA
}

// Chart is a renderer-independent chart description. A Gauge uses only the
// first point of Series.
type Chart struct {
	Kind   Kind
	Title  string
	Series []Point
	Color  color.RGBA
	Bands  []Band
	Max    float64
	Width  int
	Height int
	XLabel string
	YLabel string
}

var (
	colorFill     = color.RGBA{0x4c, 0xaf, 0x50, 0xff}
	colorBandLow  = color.RGBA{0xf2, 0xf2, 0xf2, 0xff}
	colorBandHigh = color.RGBA{0xd9, 0xf2, 0xe6, 0xff}
	colorText     = color.RGBA{0x11, 0x11, 0x11, 0xff}
	colorSubtle   = color.RGBA{0x66, 0x66, 0x66, 0xff}
	colorAxis     = color.RGBA{0xbb, 0xbb, 0xbb, 0xff}
	colorBackdrop = color.RGBA{0xff, 0xff, 0xff, 0xff}
)

// Weekly builds the "Weekly Growth Chart" bar chart from a dataset.
func Weekly(ds *course.Dataset) Chart {
	series := make([]Point, len(ds.Weekly))
	for i, w := range ds.Weekly {
		series[i] = Point{Label: w.Week, Value: float64(w.Progress)}
	}
	return Chart{
		Kind:   Bar,
		Title:  "Weekly Growth Chart",
		Series: series,
		Color:  colorFill,
		Max:    100,
		Width:  720,
		Height: 420,
		XLabel: "Week",
		YLabel: "Progress (%)",
	}
}

// Overall builds the "Total Completion" gauge from a dataset.
func Overall(ds *course.Dataset) Chart {
	return Chart{
		Kind:   Gauge,
		Title:  "Total Completion",
		Series: []Point{{Label: "Completion", Value: float64(ds.OverallPercent())}},
		Color:  colorFill,
		Bands: []Band{
			{From: 0, To: 50, Color: colorBandLow},
			{From: 50, To: 100, Color: colorBandHigh},
		},
		Max:    100,
		Width:  480,
		Height: 320,
	}
}

// Courses builds a bar chart of per-course progress.
func Courses(ds *course.Dataset) Chart {
	series := make([]Point, len(ds.Courses))
	for i, r := range ds.Courses {
		series[i] = Point{Label: r.Name, Value: float64(r.Progress)}
	}
	return Chart{
		Kind:   Bar,
		Title:  "Course Progress",
		Series: series,
		Color:  colorFill,
		Max:    100,
		Width:  960,
		Height: 420,
		XLabel: "Course",
		YLabel: "Progress (%)",
	}
}

// ByName returns the named chart for ds: "weekly", "overall" or "courses".
func ByName(name string, ds *course.Dataset) (Chart, error) {
	switch name {
	case "weekly", "":
		return Weekly(ds), nil
	case "overall":
		return Overall(ds), nil
	case "courses":
		return Courses(ds), nil
	default:
		return Chart{}, fmt.Errorf("unknown chart %q (want weekly, overall or courses)", name)
	}
}

// Validate reports whether the chart can be drawn.
func (c Chart) Validate() error {
	if len(c.Series) == 0 {
		return fmt.Errorf("chart %q has no data", c.Title)
	}
	if c.Kind != Bar && c.Kind != Gauge {
		return fmt.Errorf("chart %q: unsupported kind %s", c.Title, c.Kind)
	}
	return nil
}

// max returns the value axis ceiling. When Max is unset the largest value
// in the series is used.
func (c Chart) max() float64 {
	if c.Max > 0 {
		return c.Max
	}
	m := 0.0
	for _, p := range c.Series {
		if p.Value > m {
			m = p.Value
		}
	}
	if m == 0 {
		return 1
	}
	return m
}

// fraction returns v/max clamped to [0,1].
func (c Chart) fraction(v float64) float64 {
	f := v / c.max()
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}

func (c Chart) size() (int, int) {
	w, h := c.Width, c.Height
	if w <= 0 {
		w = 640
	}
	if h <= 0 {
		h = 400
	}
	return w, h
}

func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

func css(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
