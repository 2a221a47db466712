package chart

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
)

const (
	blockFull  = "█"
	blockEmpty = "░"
)

// Terminal renders c as styled text no wider than width cells.
func Terminal(c Chart, width int) string {
	if err := c.Validate(); err != nil {
		return lipgloss.NewStyle().Foreground(colorSubtle).Italic(true).Render("no data")
	}
	if width < 20 {
		width = 20
	}

	title := lipgloss.NewStyle().Bold(true).Render(c.Title)
	var body string
	if c.Kind == Gauge {
		body = terminalGauge(c, width)
	} else {
		body = terminalBars(c, width)
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, body)
}

func terminalBars(c Chart, width int) string {
	labelW := 0
	for _, p := range c.Series {
		if w := lipgloss.Width(p.Label); w > labelW {
			labelW = w
		}
	}
	if labelW > width/3 {
		labelW = width / 3
	}

	label := lipgloss.NewStyle().Width(labelW)
	fill := lipgloss.NewStyle().Foreground(c.Color)
	dim := lipgloss.NewStyle().Foreground(colorSubtle)

	barW := width - labelW - 7
	var rows []string
	for _, p := range c.Series {
		n := int(float64(barW) * c.fraction(p.Value))
		rows = append(rows, label.Render(truncate(p.Label, labelW))+" "+
			fill.Render(strings.Repeat(blockFull, n))+
			dim.Render(fmt.Sprintf(" %3.0f%%", p.Value)))
	}
	if c.XLabel != "" || c.YLabel != "" {
		rows = append(rows, dim.Render(strings.TrimSpace(c.XLabel+" / "+c.YLabel)))
	}
	return strings.Join(rows, "\n")
}

func terminalGauge(c Chart, width int) string {
	v := c.Series[0].Value
	barW := width - 6
	n := int(float64(barW) * c.fraction(v))

	fill := lipgloss.NewStyle().Foreground(c.Color)
	track := lipgloss.NewStyle().Foreground(colorAxis)
	value := lipgloss.NewStyle().Bold(true).Foreground(c.Color)

	return fill.Render(strings.Repeat(blockFull, n)) +
		track.Render(strings.Repeat(blockEmpty, barW-n)) +
		value.Render(fmt.Sprintf(" %3.0f%%", v))
}
