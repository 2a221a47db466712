// Package layout draws the frame around every screen: a header with the
// breadcrumb and overall completion, the screen body and a footer of key
// hints.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/pathdash/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24

	// Below these the dashboard stacks the sidebar and drops the weekly chart.
	CompactWidthThreshold  = 100
	CompactHeightThreshold = 30
)

// KeyHint is one "key description" pair in the footer.
type KeyHint struct {
	Key         string
	Description string
}

func IsCompactWidth(width int) bool   { return width < CompactWidthThreshold }
func IsCompactHeight(height int) bool { return height < CompactHeightThreshold }

// IsTooSmall reports whether the terminal cannot fit the dashboard at all.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage asks the user to resize.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Terminal too small!\n\nPlease resize to at\nleast %d x %d\n\nCurrent: %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

var bar = lipgloss.NewStyle().
	Background(theme.BgCard).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(theme.Border)

// Chrome is everything the app draws around the active screen.
type Chrome struct {
	// Trail is the breadcrumb of open screens.
	Trail string
	// Status is right aligned in the header.
	Status string
	Hints  []KeyHint
}

// Render draws the header, the body and the footer into exactly
// width x height. body is called with the space left for it.
func (c Chrome) Render(width, height int, body func(w, h int) string) string {
	header := c.header(width)
	footer := c.footer(width)
	h := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := lipgloss.NewStyle().
		Width(width).
		Height(h).
		MaxHeight(h).
		Render(body(width, h))
	return header + "\n" + content + "\n" + footer
}

// header puts the app name on the left, the trail in the middle and the
// status on the right.
func (c Chrome) header(width int) string {
	name := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  pathdash")
	trail := lipgloss.NewStyle().Foreground(theme.Text).Render(c.Trail)
	status := lipgloss.NewStyle().Foreground(theme.Accent).Render(c.Status)

	inner := max(width-4, 0)
	nw, tw, sw := lipgloss.Width(name), lipgloss.Width(trail), lipgloss.Width(status)
	leftGap := max((inner-tw)/2-nw, 1)
	rightGap := max(inner-nw-leftGap-tw-sw, 1)

	line := name + strings.Repeat(" ", leftGap) + trail + strings.Repeat(" ", rightGap) + status
	return bar.Width(width).Render(line)
}

func (c Chrome) footer(width int) string {
	key := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	desc := lipgloss.NewStyle().Foreground(theme.TextDim)
	parts := make([]string, len(c.Hints))
	for i, h := range c.Hints {
		parts[i] = key.Render(h.Key) + " " + desc.Render(h.Description)
	}
	return bar.Width(width).Render("  " + strings.Join(parts, "   "))
}
