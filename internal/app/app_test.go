package app

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/pathdash/internal/course"
	"github.com/abhisek/pathdash/internal/dataset"
	"github.com/abhisek/pathdash/internal/router"
	"github.com/abhisek/pathdash/internal/screens/dashboard"
	"github.com/abhisek/pathdash/internal/screens/detail"
)

type errSource struct{}

func (errSource) Load(context.Context) (*course.Dataset, error) { return nil, errors.New("gone") }
func (errSource) Describe() string                              { return "broken" }

func newTestModel(t *testing.T, src dataset.Source) AppModel {
	t.Helper()
	m, err := newAppModel(course.Builtin(), "built-in", Options{
		Source:    src,
		Dashboard: dashboard.Options{Copy: func(string) error { return nil }},
	}, nil)
	require.NoError(t, err)
	return m
}

func step(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(AppModel), cmd
}

func TestNewAppModel_RejectsBadFlags(t *testing.T) {
	_, err := newAppModel(course.Builtin(), "built-in", Options{
		Dashboard: dashboard.Options{Flags: []string{""}},
	}, nil)
	assert.Error(t, err)
}

func TestInit_NoWatcher(t *testing.T) {
	m := newTestModel(t, nil)
	assert.Nil(t, m.Init())
}

func TestView_HeaderShowsOverall(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = step(t, m, tea.WindowSizeMsg{Width: 120, Height: 60})

	content := m.render()
	assert.Contains(t, content, "68% complete")
	assert.Contains(t, content, "Dashboard")
}

func TestView_HeaderShowsTrail(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = step(t, m, tea.WindowSizeMsg{Width: 120, Height: 60})
	m.router.Push(detail.New(course.DefaultCourses(), "AI", ""))
	assert.Contains(t, m.render(), "Dashboard › AI")
}

func TestView_TooSmall(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = step(t, m, tea.WindowSizeMsg{Width: 40, Height: 10})
	assert.Contains(t, m.render(), "Terminal too small")
}

func TestEsc_PopsOnlyAboveRoot(t *testing.T) {
	m := newTestModel(t, nil)
	_, cmd := step(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Nil(t, cmd)

	m.router.Push(detail.New(course.DefaultCourses(), "AI", ""))
	_, cmd = step(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	_, ok := cmd().(router.PopScreenMsg)
	assert.True(t, ok)
}

func TestReload_BroadcastsToStack(t *testing.T) {
	ds := &course.Dataset{Courses: []course.SkillRecord{
		{Name: "Go", Progress: 40, CoursesCompleted: 2, TotalCourses: 5, Featured: true},
	}}
	src := dataset.Static{Dataset: ds, Name: "courses.yaml"}
	m := newTestModel(t, src)
	m.router.Push(detail.New(course.DefaultCourses(), "Go", ""))

	msg := reloadCmd(src)()
	m, _ = step(t, m, msg)

	assert.Equal(t, 40, m.overall)
	assert.True(t, m.router.Active().(*detail.Screen).Found())

	m.router.Pop()
	dash := m.router.Active().(*dashboard.Screen)
	assert.Same(t, ds, dash.Dataset())
}

func TestReload_NamesServingSource(t *testing.T) {
	chain := dataset.Chain{dataset.Static{Name: "pathdash.db"}, dataset.Builtin()}
	msg, ok := reloadCmd(chain)().(reloadedMsg)
	require.True(t, ok)
	require.NoError(t, msg.err)
	assert.Equal(t, "built-in", msg.source)
}

func TestReload_ErrorKeepsData(t *testing.T) {
	m := newTestModel(t, errSource{})
	msg := reloadCmd(errSource{})()
	m, cmd := step(t, m, msg)
	assert.Nil(t, cmd)
	assert.Equal(t, 68, m.overall)
}

func TestFileChanged_SchedulesReload(t *testing.T) {
	m := newTestModel(t, dataset.Builtin())
	_, cmd := step(t, m, fileChangedMsg{})
	require.NotNil(t, cmd)
}

func TestCtrlC_Quits(t *testing.T) {
	m := newTestModel(t, nil)
	_, cmd := step(t, m, tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestView_FooterUsesScreenHints(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = step(t, m, tea.WindowSizeMsg{Width: 120, Height: 60})
	assert.True(t, strings.Contains(m.render(), "Menu"))
}
