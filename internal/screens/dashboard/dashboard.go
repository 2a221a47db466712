// Package dashboard is the root screen: overall gauge, course bar, weekly
// growth chart and the course table, each optional section shown or hidden
// by a view flag.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/atotto/clipboard"

	"github.com/abhisek/pathdash/internal/chart"
	"github.com/abhisek/pathdash/internal/course"
	"github.com/abhisek/pathdash/internal/debug"
	"github.com/abhisek/pathdash/internal/router"
	"github.com/abhisek/pathdash/internal/screen"
	"github.com/abhisek/pathdash/internal/screens/detail"
	"github.com/abhisek/pathdash/internal/screens/placeholder"
	"github.com/abhisek/pathdash/internal/ui/components"
	"github.com/abhisek/pathdash/internal/ui/layout"
	"github.com/abhisek/pathdash/internal/viewstate"
)

// Options configures the dashboard.
type Options struct {
	Title       string
	Flags       []string // view flags registered at session start; defaults to viewstate.DefaultFlags
	ChaptersDir string
	ExportDir   string             // where "Export Report" writes; defaults to the working directory
	Copy        func(string) error // defaults to the system clipboard
}

type toggleMsg struct{ name string }

type resetMsg struct{}

type exportMsg struct{}

type exportDoneMsg struct {
	paths []string
	err   error
}

type copyDoneMsg struct {
	name string
	err  error
}

// Screen is the dashboard screen.
type Screen struct {
	opts    Options
	data    *course.Dataset
	source  string
	session viewstate.SessionState
	cursor  int
	menu    components.Menu

	searching bool
	search    components.TextInput

	status    string
	statusErr bool
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the dashboard over ds. It fails with a *viewstate.ConfigError
// when the configured flag names are malformed.
func New(ds *course.Dataset, source string, opts Options) (*Screen, error) {
	if opts.Title == "" {
		opts.Title = "CSE Learning Path Dashboard"
	}
	if len(opts.Flags) == 0 {
		opts.Flags = viewstate.DefaultFlags()
	}
	if opts.Copy == nil {
		opts.Copy = clipboard.WriteAll
	}
	if ds == nil {
		ds = &course.Dataset{}
	}

	session, err := viewstate.Initialize(opts.Flags)
	if err != nil {
		return nil, err
	}
	debug.Log("dashboard: session %s flags=%v source=%s", session.ID(), session.Names(), source)

	return &Screen{
		opts:    opts,
		data:    ds,
		source:  source,
		session: session,
		menu:    newMenu(),
	}, nil
}

func newMenu() components.Menu {
	return components.NewMenu([]components.MenuItem{
		{Label: "Dashboard", Msg: toggleMsg{name: viewstate.FlagMenu}, Flag: viewstate.FlagMenu},
		{Label: "More Courses", Msg: toggleMsg{name: viewstate.FlagMoreCourses}, Flag: viewstate.FlagMoreCourses},
		{Label: "All Courses", Msg: toggleMsg{name: viewstate.FlagAllCourses}, Flag: viewstate.FlagAllCourses},
		{Label: "Export Report", Msg: exportMsg{}},
		{Label: "New Session", Msg: resetMsg{}},
		{Label: "Quit", Msg: tea.QuitMsg{}},
	})
}

// Session returns the current view-state snapshot.
func (s *Screen) Session() viewstate.SessionState {
	return s.session
}

// Dataset returns the dataset being rendered.
func (s *Screen) Dataset() *course.Dataset {
	return s.data
}

// Cursor returns the index of the highlighted course in Visible.
func (s *Screen) Cursor() int {
	return s.cursor
}

// Visible returns the courses on the course bar: the featured ones, plus the
// rest while "more courses" is expanded. With no featured courses every
// course is on the bar.
func (s *Screen) Visible() []course.SkillRecord {
	featured := course.Featured(s.data.Courses)
	if len(featured) == 0 {
		return s.data.Courses
	}
	if s.expanded(viewstate.FlagMoreCourses) {
		return append(featured, course.Extra(s.data.Courses)...)
	}
	return featured
}

// expanded reports whether flag is expanded. Unregistered flags read as
// collapsed.
func (s *Screen) expanded(flag string) bool {
	ok, err := viewstate.IsExpanded(s.session, flag)
	return err == nil && ok
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Title() string {
	return "Dashboard"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.searching {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Open"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "m", Description: "Menu"},
		{Key: "c", Description: "More"},
		{Key: "t", Description: "All"},
		{Key: "←→", Description: "Course"},
		{Key: "Enter", Description: "Open"},
		{Key: "/", Description: "Find"},
	}
	if s.expanded(viewstate.FlagMenu) {
		hints[4] = layout.KeyHint{Key: "↑↓ Enter", Description: "Menu"}
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.DataMsg:
		if msg.Dataset != nil {
			s.data = msg.Dataset
			s.source = msg.Source
			s.clampCursor()
			s.setStatus(fmt.Sprintf("Reloaded from %s", msg.Source), false)
		}
		return s, nil

	case toggleMsg:
		s.toggle(msg.name)
		return s, nil

	case resetMsg:
		s.session = viewstate.Reset(s.session)
		s.cursor = 0
		s.setStatus("Started a new session", false)
		debug.Log("dashboard: reset to session %s", s.session.ID())
		return s, nil

	case exportMsg:
		s.setStatus("Exporting report…", false)
		return s, s.exportCmd()

	case exportDoneMsg:
		if msg.err != nil {
			s.setStatus("Export failed: "+msg.err.Error(), true)
		} else {
			s.setStatus("Wrote "+strings.Join(msg.paths, ", "), false)
		}
		return s, nil

	case copyDoneMsg:
		if msg.err != nil {
			s.setStatus("Copy failed: "+msg.err.Error(), true)
		} else {
			s.setStatus("Copied "+msg.name+" to clipboard", false)
		}
		return s, nil

	case tea.KeyPressMsg:
		if s.searching {
			return s.updateSearch(msg)
		}
		return s.updateKeys(msg)
	}
	return s, nil
}

func (s *Screen) updateKeys(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	menuOpen := s.expanded(viewstate.FlagMenu)

	switch {
	case key.Matches(msg, keys.Menu):
		s.toggle(viewstate.FlagMenu)
	case key.Matches(msg, keys.More):
		s.toggle(viewstate.FlagMoreCourses)
	case key.Matches(msg, keys.All):
		s.toggle(viewstate.FlagAllCourses)
	case key.Matches(msg, keys.Left):
		s.moveCursor(-1)
	case key.Matches(msg, keys.Right):
		s.moveCursor(1)
	case key.Matches(msg, keys.Reset):
		return s.Update(resetMsg{})
	case key.Matches(msg, keys.Export):
		return s.Update(exportMsg{})
	case key.Matches(msg, keys.Copy):
		return s, s.copyCmd()
	case key.Matches(msg, keys.Search):
		s.searching = true
		s.search = components.NewTextInput("/ ", "course name", 64)
	case menuOpen && key.Matches(msg, keys.Up):
		s.menu = s.menu.Move(-1)
	case menuOpen && key.Matches(msg, keys.Down):
		s.menu = s.menu.Move(1)
	case menuOpen && key.Matches(msg, keys.Open):
		return s, s.menu.Choose()
	case key.Matches(msg, keys.Open):
		return s, s.open()
	}
	return s, nil
}

func (s *Screen) updateSearch(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.searching = false
		return s, nil
	case "enter":
		s.searching = false
		name := strings.TrimSpace(s.search.Value())
		if name == "" {
			return s, nil
		}
		return s, s.openByName(name)
	}
	var cmd tea.Cmd
	s.search, cmd = s.search.Update(msg)
	return s, cmd
}

func (s *Screen) toggle(name string) {
	next, err := viewstate.Toggle(s.session, name)
	if err != nil {
		var unknown *viewstate.UnknownFlagError
		if errors.As(err, &unknown) {
			s.setStatus(fmt.Sprintf("%q is not enabled in this session", unknown.Name), true)
			return
		}
		s.setStatus(err.Error(), true)
		return
	}
	s.session = next
	st, _ := next.State(name)
	debug.Log("dashboard: %s -> %s", name, st)
	s.clampCursor()
}

func (s *Screen) moveCursor(delta int) {
	n := len(s.Visible())
	if n == 0 {
		s.cursor = 0
		return
	}
	s.cursor = ((s.cursor+delta)%n + n) % n
}

func (s *Screen) clampCursor() {
	n := len(s.Visible())
	if s.cursor >= n {
		s.cursor = max(0, n-1)
	}
}

// open pushes the detail screen for the highlighted course.
func (s *Screen) open() tea.Cmd {
	visible := s.Visible()
	if len(visible) == 0 {
		return nil
	}
	return s.openByName(visible[s.cursor].Name)
}

// openByName selects a course by exact name. An unknown name pushes a
// placeholder instead of the detail screen.
func (s *Screen) openByName(name string) tea.Cmd {
	var next screen.Screen
	if _, err := course.Select(s.data.Courses, name); err != nil {
		next = placeholder.New("Course", fmt.Sprintf("%s.\nCourse names are case-sensitive.", err))
	} else {
		next = detail.New(s.data.Courses, name, s.opts.ChaptersDir)
	}
	return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
}

func (s *Screen) copyCmd() tea.Cmd {
	visible := s.Visible()
	if len(visible) == 0 {
		return nil
	}
	rec := visible[s.cursor]
	text := Summary(rec)
	copyFn := s.opts.Copy
	return func() tea.Msg {
		return copyDoneMsg{name: rec.Name, err: copyFn(text)}
	}
}

func (s *Screen) exportCmd() tea.Cmd {
	ds := s.data
	dir := s.opts.ExportDir
	title := s.opts.Title
	return func() tea.Msg {
		stamp := time.Now().Format("20060102-150405")
		exports := []chart.ExportOptions{
			{Path: filepath.Join(dir, "overall-"+stamp+".png"), Chart: chart.Overall(ds)},
			{Path: filepath.Join(dir, "report-"+stamp+".pdf"), Dataset: ds, Title: title},
		}
		// weekly is optional in data files
		if len(ds.Weekly) > 0 {
			exports = append(exports, chart.ExportOptions{
				Path: filepath.Join(dir, "weekly-"+stamp+".svg"), Chart: chart.Weekly(ds),
			})
		}
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		paths, err := chart.SaveAll(ctx, exports)
		return exportDoneMsg{paths: paths, err: err}
	}
}

func (s *Screen) setStatus(text string, isErr bool) {
	s.status = text
	s.statusErr = isErr
}

// Summary is the one-line description of a course copied to the clipboard.
func Summary(r course.SkillRecord) string {
	return fmt.Sprintf("%s: %d%% progress, %d/%d courses completed (%d%%), %s",
		r.Name, r.Progress, r.CoursesCompleted, r.TotalCourses, r.CompletionPercent(), r.DisplayStatus())
}
