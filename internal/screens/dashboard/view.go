package dashboard

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/pathdash/internal/chart"
	"github.com/abhisek/pathdash/internal/course"
	"github.com/abhisek/pathdash/internal/ui/components"
	"github.com/abhisek/pathdash/internal/ui/layout"
	"github.com/abhisek/pathdash/internal/ui/theme"
	"github.com/abhisek/pathdash/internal/viewstate"
)

const sidebarWidth = 24

func (s *Screen) View(width, height int) string {
	mainWidth := width - 2
	stacked := layout.IsCompactWidth(width)
	var sidebar string
	if s.expanded(viewstate.FlagMenu) {
		sidebar = theme.Sidebar.Width(sidebarWidth).Render(
			theme.Section.Render("☰ Dashboard Menu") + "\n\n" + strings.TrimRight(s.menu.View(s.expanded), "\n"))
		if !stacked {
			mainWidth -= lipgloss.Width(sidebar) + 1
		}
	}
	if mainWidth < 30 {
		mainWidth = 30
	}

	sections := []string{
		theme.Title.Width(mainWidth).Render(s.opts.Title),
		chart.Terminal(chart.Overall(s.data), mainWidth),
		s.renderCourseBar(mainWidth),
	}
	if s.expanded(viewstate.FlagMoreCourses) && len(course.Featured(s.data.Courses)) > 0 {
		sections = append(sections, s.renderExtra(mainWidth))
	}
	if !layout.IsCompactHeight(height) {
		sections = append(sections, chart.Terminal(chart.Weekly(s.data), mainWidth))
	}
	sections = append(sections, s.renderCourses(mainWidth))
	if line := s.renderStatus(); line != "" {
		sections = append(sections, line)
	}

	main := lipgloss.NewStyle().PaddingLeft(1).Render(strings.Join(sections, "\n\n"))
	body := main
	switch {
	case sidebar != "" && stacked:
		body = sidebar + "\n" + main
	case sidebar != "":
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", main)
	}

	if s.searching {
		input := theme.Card.Width(min(width-2, 50)).Render(s.search.View())
		bodyHeight := max(height-lipgloss.Height(input), 1)
		body = lipgloss.NewStyle().MaxHeight(bodyHeight).Render(body)
		return body + "\n" + input
	}
	return lipgloss.NewStyle().MaxWidth(width).MaxHeight(height).Render(body)
}

// renderCourseBar renders the featured course buttons and the more/hide
// toggle.
func (s *Screen) renderCourseBar(width int) string {
	featured := course.Featured(s.data.Courses)
	bar := featured
	if len(featured) == 0 {
		bar = s.data.Courses
	}
	buttons := make([]components.Button, 0, len(bar)+1)
	for i, r := range bar {
		buttons = append(buttons, components.NewButton(r.Label(), i == s.cursor))
	}
	if len(featured) > 0 && len(course.Extra(s.data.Courses)) > 0 {
		label := "More Courses ▼"
		if s.expanded(viewstate.FlagMoreCourses) {
			label = "Hide Courses ▲"
		}
		buttons = append(buttons, components.Button{Label: label, Toggle: true})
	}
	if len(buttons) == 0 {
		return theme.Hint.Render("No courses loaded.")
	}
	return components.ButtonRow(buttons, width)
}

// renderExtra renders the courses revealed by "More Courses".
func (s *Screen) renderExtra(width int) string {
	offset := len(course.Featured(s.data.Courses))
	extra := course.Extra(s.data.Courses)
	buttons := make([]components.Button, len(extra))
	for i, r := range extra {
		buttons[i] = components.NewButton(r.Label(), offset+i == s.cursor)
	}
	return theme.Section.Render("More Courses") + "\n" + components.ButtonRow(buttons, width)
}

// renderCourses renders the detailed course table, or a one-line summary
// while "all courses" is collapsed.
func (s *Screen) renderCourses(width int) string {
	recs := s.data.Courses
	if !s.expanded(viewstate.FlagAllCourses) {
		done := 0
		for _, r := range recs {
			if r.DisplayStatus() == course.StatusCompleted {
				done++
			}
		}
		return theme.Section.Render("Courses") + "  " +
			theme.Hint.Render(fmt.Sprintf("%d courses, %d completed · press t to show all", len(recs), done))
	}

	rows := make([][]string, len(recs))
	for i, r := range recs {
		rows[i] = []string{
			r.Label(),
			strconv.Itoa(r.Progress) + "%",
			fmt.Sprintf("%d/%d", r.CoursesCompleted, r.TotalCourses),
			strconv.Itoa(r.CompletionPercent()) + "%",
			string(r.DisplayStatus()),
		}
	}
	t := components.Table{
		Columns: []components.Column{
			{Title: "Course"},
			{Title: "Progress", Width: 8, AlignRight: true},
			{Title: "Done", Width: 6, AlignRight: true},
			{Title: "Complete", Width: 8, AlignRight: true},
			{Title: "Status", Width: 12},
		},
		Rows:     rows,
		Selected: -1,
		CellStyle: func(_, col int, cell string) lipgloss.Style {
			if col == 4 {
				return theme.StatusColor(cell)
			}
			return theme.Unselected
		},
	}
	return theme.Section.Render("All Courses") + "\n" + t.View(min(width, 90))
}

func (s *Screen) renderStatus() string {
	if s.status == "" {
		return ""
	}
	if s.statusErr {
		return lipgloss.NewStyle().Foreground(theme.Error).Render(s.status)
	}
	return theme.Hint.Render(s.status)
}
