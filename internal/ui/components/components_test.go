package components

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFit(t *testing.T) {
	assert.Equal(t, "ab   ", fit("ab", 5, false))
	assert.Equal(t, "   ab", fit("ab", 5, true))
	assert.Equal(t, "abcd…", fit("abcdefgh", 5, false))
	// Wide runes count as two cells.
	assert.Equal(t, 6, lipgloss.Width(fit("🐍 Python", 6, false)))
}

func TestTable_View(t *testing.T) {
	tbl := Table{
		Columns: []Column{
			{Title: "Course"},
			{Title: "Completion %", Width: 12, AlignRight: true},
			{Title: "Status", Width: 11},
		},
		Rows: [][]string{
			{"Python", "85", "Completed"},
			{"Web Development", "75", "In Progress"},
		},
		Selected: -1,
	}

	out := tbl.View(50)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "Completion %")
	assert.Contains(t, lines[2], "Python")
	assert.Contains(t, lines[3], "In Progress")
	for _, l := range lines {
		assert.LessOrEqual(t, lipgloss.Width(l), 50)
	}
}

func TestTable_FlexColumnTakesRemainder(t *testing.T) {
	tbl := Table{Columns: []Column{{Title: "A"}, {Title: "B", Width: 4}}}
	assert.Equal(t, []int{15, 4}, tbl.columnWidths(20))
}

func TestMenu_MoveWraps(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "One"}, {Label: "Two"}, {Label: "Three"}})
	assert.Equal(t, 0, m.Selected)
	assert.Equal(t, 2, m.Move(-1).Selected)
	assert.Equal(t, 0, m.Move(3).Selected)
	assert.Equal(t, 1, m.Move(1).Selected)
	assert.Equal(t, 0, NewMenu(nil).Move(1).Selected)
}

type pickedMsg struct{ name string }

func TestMenu_Choose(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "Plain"}, {Label: "Pick", Msg: pickedMsg{"pick"}}})
	assert.Nil(t, m.Choose())

	cmd := m.Move(1).Choose()
	require.NotNil(t, cmd)
	assert.Equal(t, pickedMsg{"pick"}, cmd())
}

func TestMenu_ViewMarksExpandedFlags(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "More Courses", Flag: "more_courses"},
		{Label: "All Courses", Flag: "all_courses"},
	})
	out := m.View(func(flag string) bool { return flag == "all_courses" })
	assert.Contains(t, out, "▸   More Courses")
	assert.Contains(t, out, "✓ All Courses")
	assert.NotContains(t, m.View(nil), "✓")
}

func TestButtonRow_Wraps(t *testing.T) {
	buttons := []Button{
		NewButton("🐍 Python", true),
		NewButton("💻 C++", false),
		NewButton("🌐 Web Development", false),
		{Label: "More Courses ▼", Toggle: true},
	}
	wide := ButtonRow(buttons, 200)
	assert.Equal(t, 1, lipgloss.Height(wide))

	narrow := ButtonRow(buttons, 24)
	assert.Greater(t, lipgloss.Height(narrow), 1)
	assert.Contains(t, narrow, "More Courses ▼")
}

func TestProgressBar_Clamps(t *testing.T) {
	over := NewProgressBar("", 150, 20).View()
	assert.Contains(t, over, "100%")
	assert.Equal(t, 20, lipgloss.Width(over))
	assert.Contains(t, NewProgressBar("", -5, 20).View(), "0%")
}

func TestAligned_PadsLabels(t *testing.T) {
	bars := Aligned(NewProgressBar("Progress", 85, 40), NewProgressBar("Completion", 83, 40))
	a, b := bars[0].View(), bars[1].View()
	assert.Equal(t, lipgloss.Width(a), lipgloss.Width(b))
	assert.Equal(t, 10, bars[0].LabelWidth)
}
