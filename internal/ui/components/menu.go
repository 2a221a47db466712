package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pathdash/internal/ui/theme"
)

// MenuItem is one sidebar entry.
type MenuItem struct {
	Label string
	// Msg is delivered when the item is chosen.
	Msg tea.Msg
	// Flag names the view flag the item toggles, if any. Such items carry a
	// check mark while the flag is expanded.
	Flag string
}

// Menu is the vertical sidebar list. Selection wraps at both ends.
type Menu struct {
	Items    []MenuItem
	Selected int
}

func NewMenu(items []MenuItem) Menu {
	return Menu{Items: items}
}

// Move shifts the selection by delta.
func (m Menu) Move(delta int) Menu {
	if n := len(m.Items); n > 0 {
		m.Selected = ((m.Selected+delta)%n + n) % n
	}
	return m
}

// Choose returns a command delivering the selected item's message.
func (m Menu) Choose() tea.Cmd {
	if m.Selected < 0 || m.Selected >= len(m.Items) {
		return nil
	}
	msg := m.Items[m.Selected].Msg
	if msg == nil {
		return nil
	}
	return func() tea.Msg { return msg }
}

// View renders the items. expanded reports a flag's state; nil means no
// item is checked.
func (m Menu) View(expanded func(flag string) bool) string {
	var b strings.Builder
	for i, item := range m.Items {
		mark := "  "
		if item.Flag != "" && expanded != nil && expanded(item.Flag) {
			mark = "✓ "
		}
		if i == m.Selected {
			b.WriteString(theme.Selected.Render("▸ " + mark + item.Label))
		} else {
			b.WriteString(theme.Unselected.Render("  " + mark + item.Label))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
