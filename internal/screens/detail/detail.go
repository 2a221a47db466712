// Package detail renders a single course: completion, status and chapter
// notes.
package detail

import (
	"errors"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"

	"github.com/abhisek/pathdash/internal/chapters"
	"github.com/abhisek/pathdash/internal/course"
	"github.com/abhisek/pathdash/internal/debug"
	"github.com/abhisek/pathdash/internal/router"
	"github.com/abhisek/pathdash/internal/screen"
	"github.com/abhisek/pathdash/internal/screens/placeholder"
	"github.com/abhisek/pathdash/internal/ui/components"
	"github.com/abhisek/pathdash/internal/ui/layout"
	"github.com/abhisek/pathdash/internal/ui/theme"
)

var (
	keyPrev = key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "prev"))
	keyNext = key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "next"))
)

// Screen shows one course looked up by name. A name with no matching
// record renders a placeholder rather than failing.
type Screen struct {
	name        string
	records     []course.SkillRecord
	chaptersDir string

	rec      course.SkillRecord
	notFound error
	chapter  chapters.Chapter
	hasNotes bool
	noteErr  error

	vp            viewport.Model
	renderedWidth int
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates a detail screen for the course called name.
func New(records []course.SkillRecord, name, chaptersDir string) *Screen {
	s := &Screen{
		name:        name,
		records:     records,
		chaptersDir: chaptersDir,
		vp:          viewport.New(viewport.WithWidth(60), viewport.WithHeight(10)),
	}
	s.load()
	return s
}

func (s *Screen) load() {
	s.renderedWidth = 0
	rec, err := course.Select(s.records, s.name)
	if err != nil {
		s.rec, s.notFound = course.SkillRecord{}, err
		return
	}
	s.rec, s.notFound = rec, nil
	s.chapter, s.hasNotes, s.noteErr = chapters.Lookup(s.chaptersDir, s.name)
	if s.noteErr != nil {
		debug.LogErr("chapter lookup", s.noteErr)
	}
}

// Found reports whether the course exists in the current records.
func (s *Screen) Found() bool {
	return s.notFound == nil
}

// Record returns the selected course. It is the zero value when not found.
func (s *Screen) Record() course.SkillRecord {
	return s.rec
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Title() string {
	return s.name
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←/→", Description: "Prev/Next"},
		{Key: "↑/↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.DataMsg:
		if msg.Dataset != nil {
			s.records = msg.Dataset.Courses
		}
		s.load()
		return s, nil

	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, keyPrev):
			return s, s.neighbour(-1)
		case key.Matches(msg, keyNext):
			return s, s.neighbour(1)
		}
	}

	var cmd tea.Cmd
	s.vp, cmd = s.vp.Update(msg)
	return s, cmd
}

// neighbour swaps this screen for the course delta positions away, wrapping
// around the record list.
func (s *Screen) neighbour(delta int) tea.Cmd {
	n := len(s.records)
	if n == 0 {
		return nil
	}
	idx := -1
	for i, r := range s.records {
		if r.Name == s.name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}
	next := s.records[((idx+delta)%n+n)%n]
	if next.Name == s.name {
		return nil
	}
	scr := New(s.records, next.Name, s.chaptersDir)
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: scr} }
}

func (s *Screen) View(width, height int) string {
	if s.notFound != nil {
		var nf *course.NotFoundError
		msg := s.notFound.Error()
		if errors.As(s.notFound, &nf) {
			msg = fmt.Sprintf("No course named %q in the current data.", nf.Name)
		}
		return placeholder.Render(msg, width, height)
	}

	contentWidth := width - 4
	if contentWidth > 90 {
		contentWidth = 90
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("  " + s.rec.Label()))
	b.WriteString("\n")
	status := s.rec.DisplayStatus()
	b.WriteString("  " + theme.StatusColor(string(status)).Render(string(status)))
	b.WriteString("\n\n")

	for _, bar := range components.Aligned(
		components.NewProgressBar("Progress", s.rec.Progress, contentWidth-2),
		components.NewProgressBar("Completion", s.rec.CompletionPercent(), contentWidth-2),
	) {
		b.WriteString("  " + bar.View() + "\n")
	}
	b.WriteString(theme.Hint.Render(fmt.Sprintf("  %d of %d courses completed",
		s.rec.CoursesCompleted, s.rec.TotalCourses)))
	b.WriteString("\n\n")
	b.WriteString("  " + theme.Section.Render("Chapter notes"))
	b.WriteString("\n")

	header := b.String()
	vpHeight := height - lipgloss.Height(header) - 1
	if vpHeight < 3 {
		vpHeight = 3
	}
	s.vp.SetWidth(contentWidth)
	s.vp.SetHeight(vpHeight)
	if s.renderedWidth != contentWidth {
		s.vp.SetContent(s.notes(contentWidth))
		s.renderedWidth = contentWidth
	}

	return header + lipgloss.NewStyle().PaddingLeft(2).Render(s.vp.View())
}

// notes renders the chapter markdown, or the placeholder text when the
// course has no notes.
func (s *Screen) notes(width int) string {
	if s.noteErr != nil {
		return lipgloss.NewStyle().Foreground(theme.Error).Render(s.noteErr.Error())
	}
	if !s.hasNotes {
		return theme.Hint.Render(chapters.Placeholder(s.chaptersDir, s.name))
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return s.chapter.Content
	}
	out, err := r.Render(s.chapter.Content)
	if err != nil {
		debug.LogErr("render chapter", err)
		return s.chapter.Content
	}
	return strings.TrimRight(out, "\n")
}
