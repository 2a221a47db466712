package detail

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/pathdash/internal/course"
	"github.com/abhisek/pathdash/internal/router"
	"github.com/abhisek/pathdash/internal/screen"
)

func TestDetail_Found(t *testing.T) {
	s := New(course.DefaultCourses(), "Python", "")
	require.True(t, s.Found())
	assert.Equal(t, "Python", s.Title())
	assert.Equal(t, 85, s.Record().Progress)

	view := s.View(100, 30)
	assert.Contains(t, view, "Python")
	assert.Contains(t, view, "5 of 6 courses completed")
	assert.Contains(t, view, "No chapter notes for Python")
}

func TestDetail_NotFoundShowsPlaceholder(t *testing.T) {
	s := New(course.DefaultCourses(), "python", "")
	assert.False(t, s.Found())
	view := s.View(100, 30)
	assert.Contains(t, view, `No course named "python"`)
}

func TestDetail_RendersChapterNotes(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "data_science.md"),
		[]byte("# Pandas\n\nDataFrames and series.\n"), 0o644))

	s := New(course.DefaultCourses(), "Data Science", dir)
	view := s.View(100, 40)
	assert.Contains(t, view, "Pandas")
	assert.NotContains(t, view, "No chapter notes")
}

func TestDetail_NextReplacesScreen(t *testing.T) {
	s := New(course.DefaultCourses(), "Python", "")
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	require.NotNil(t, cmd)

	msg, ok := cmd().(router.ReplaceScreenMsg)
	require.True(t, ok)
	assert.Equal(t, "C++", msg.Screen.Title())
}

func TestDetail_PrevWraps(t *testing.T) {
	records := course.DefaultCourses()
	s := New(records, "Python", "")
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	require.NotNil(t, cmd)

	msg := cmd().(router.ReplaceScreenMsg)
	assert.Equal(t, records[len(records)-1].Name, msg.Screen.Title())
}

func TestDetail_DataMsgReselects(t *testing.T) {
	s := New(course.DefaultCourses(), "AI", "")
	require.True(t, s.Found())

	ds := &course.Dataset{Courses: []course.SkillRecord{
		{Name: "Go", Progress: 10, CoursesCompleted: 1, TotalCourses: 10},
	}}
	updated, _ := s.Update(screen.DataMsg{Dataset: ds, Source: "test"})
	d := updated.(*Screen)
	assert.False(t, d.Found())
	assert.True(t, strings.Contains(d.View(80, 20), `"AI"`))
}
