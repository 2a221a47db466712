package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pathdash/internal/ui/theme"
)

// Button is a styled single-line button.
type Button struct {
	Label  string
	Active bool
	Toggle bool // rendered in the accent style, e.g. "More Courses ▼"
}

// NewButton creates a new button.
func NewButton(label string, active bool) Button {
	return Button{Label: label, Active: active}
}

// View renders the button.
func (b Button) View() string {
	switch {
	case b.Active:
		return theme.ButtonActive.Render("▸ " + b.Label)
	case b.Toggle:
		return theme.ButtonToggle.Render(b.Label)
	default:
		return theme.ButtonInactive.Render(b.Label)
	}
}

// ButtonRow joins buttons horizontally with a one-cell gap, wrapping onto a
// new row before width is exceeded.
func ButtonRow(buttons []Button, width int) string {
	var rows []string
	var row []string
	used := 0
	for _, b := range buttons {
		v := b.View()
		w := lipgloss.Width(v)
		if len(row) > 0 && used+1+w > width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, used = nil, 0
		}
		if len(row) > 0 {
			row = append(row, " ")
			used++
		}
		row = append(row, v)
		used += w
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
