// Package screen defines what the router stacks: the dashboard, course
// detail and placeholder screens.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pathdash/internal/course"
	"github.com/abhisek/pathdash/internal/ui/layout"
)

// Screen is one page of the TUI. The app draws the header and footer; a
// screen renders only the area between them.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View(width, height int) string

	// Title names the screen in the header breadcrumb.
	Title() string
}

// KeyHintProvider is implemented by screens that list their own keys in the
// footer.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// DataMsg carries a freshly loaded dataset to every open screen.
type DataMsg struct {
	Dataset *course.Dataset
	// Source describes where the data came from, e.g. a file path.
	Source string
}
