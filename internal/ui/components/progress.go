package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/pathdash/internal/ui/theme"
)

// ProgressBar draws a 0-100 percentage as a horizontal bar.
type ProgressBar struct {
	Label string
	// LabelWidth pads Label so bars stacked on top of each other line up.
	LabelWidth int
	Percent    int
	// Width is the total width including label and number.
	Width int
}

// NewProgressBar returns a bar for percent, which is clamped to 0-100.
func NewProgressBar(label string, percent, width int) ProgressBar {
	return ProgressBar{Label: label, Percent: max(0, min(percent, 100)), Width: width}
}

// Aligned pads the labels of bars to the widest one.
func Aligned(bars ...ProgressBar) []ProgressBar {
	w := 0
	for _, b := range bars {
		w = max(w, lipgloss.Width(b.Label))
	}
	for i := range bars {
		bars[i].LabelWidth = w
	}
	return bars
}

func (p ProgressBar) View() string {
	var label string
	if p.Label != "" {
		label = lipgloss.NewStyle().
			Foreground(theme.Text).
			Width(max(p.LabelWidth, lipgloss.Width(p.Label))).
			Render(p.Label) + "  "
	}
	number := lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf(" %4d%%", p.Percent))

	track := max(p.Width-lipgloss.Width(label)-lipgloss.Width(number), 4)
	filled := track * p.Percent / 100

	return label +
		theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", track-filled)) +
		number
}
