package placeholder

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pathdash/internal/router"
)

func TestPlaceholder_View(t *testing.T) {
	p := New("Course", `course "Rust" not found`)
	if p.Title() != "Course" {
		t.Errorf("Title = %q, want %q", p.Title(), "Course")
	}
	view := p.View(80, 20)
	if !strings.Contains(view, "Rust") {
		t.Errorf("view should contain the message, got:\n%s", view)
	}
}

func TestPlaceholder_EnterPops(t *testing.T) {
	p := New("Course", "missing")
	_, cmd := p.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}
}
