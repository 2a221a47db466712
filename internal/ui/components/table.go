package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"

	"github.com/abhisek/pathdash/internal/ui/theme"
)

// Column describes one table column. Width is in terminal cells; a zero
// width column absorbs the remaining space.
type Column struct {
	Title      string
	Width      int
	AlignRight bool
}

// Table renders rows of cells under a header. Cells wider than their column
// are truncated with an ellipsis, counting wide runes (emoji, CJK) as two
// cells.
type Table struct {
	Columns  []Column
	Rows     [][]string
	Selected int // -1 for no highlight
	// CellStyle, when set, styles a body cell after padding.
	CellStyle func(row, col int, cell string) lipgloss.Style
}

// View renders the table at the given total width.
func (t Table) View(width int) string {
	widths := t.columnWidths(width)

	var b strings.Builder
	header := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		header[i] = fit(c.Title, widths[i], c.AlignRight)
	}
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(theme.Secondary).Render(strings.Join(header, " ")))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", sum(widths)+len(widths)-1)))

	for r, row := range t.Rows {
		b.WriteString("\n")
		cells := make([]string, len(t.Columns))
		for i, c := range t.Columns {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			padded := fit(cell, widths[i], c.AlignRight)
			style := theme.Unselected
			if t.CellStyle != nil {
				style = t.CellStyle(r, i, cell)
			}
			if r == t.Selected {
				style = style.Bold(true).Foreground(theme.Primary)
			}
			cells[i] = style.Render(padded)
		}
		b.WriteString(strings.Join(cells, " "))
	}
	return b.String()
}

func (t Table) columnWidths(width int) []int {
	widths := make([]int, len(t.Columns))
	fixed := len(t.Columns) - 1 // gaps
	flex := -1
	for i, c := range t.Columns {
		if c.Width == 0 && flex < 0 {
			flex = i
			continue
		}
		w := c.Width
		if w == 0 {
			w = runewidth.StringWidth(c.Title)
		}
		widths[i] = w
		fixed += w
	}
	if flex >= 0 {
		widths[flex] = max(width-fixed, runewidth.StringWidth(t.Columns[flex].Title))
	}
	return widths
}

// fit pads or truncates s to exactly w cells.
func fit(s string, w int, right bool) string {
	if runewidth.StringWidth(s) > w {
		s = runewidth.Truncate(s, w, "…")
	}
	if right {
		return runewidth.FillLeft(s, w)
	}
	return runewidth.FillRight(s, w)
}

func sum(xs []int) int {
	n := 0
	for _, x := range xs {
		n += x
	}
	return n
}
