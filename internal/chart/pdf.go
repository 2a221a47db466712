package chart

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/abhisek/pathdash/internal/course"
)

// ReportOptions controls the PDF progress report.
type ReportOptions struct {
	Title     string
	Generated time.Time
}

// WritePDFReport writes a one-page progress report for ds: the overall
// completion, the weekly growth series and the course table.
func WritePDFReport(w io.Writer, ds *course.Dataset, opts ReportOptions) error {
	if ds == nil {
		return fmt.Errorf("no dataset to report")
	}
	if opts.Title == "" {
		opts.Title = "Learning Path Report"
	}
	if opts.Generated.IsZero() {
		opts.Generated = time.Now()
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(opts.Title, true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, tr(opts.Title))
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 9)
	pdf.SetTextColor(int(colorSubtle.R), int(colorSubtle.G), int(colorSubtle.B))
	pdf.Cell(0, 6, "Generated "+opts.Generated.Format("2006-01-02 15:04"))
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(12)

	overall := ds.OverallPercent()
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Total Completion: %d%%", overall))
	pdf.Ln(10)
	pdfBar(pdf, 10, pdf.GetY(), 190, 6, float64(overall)/100)
	pdf.Ln(14)

	if len(ds.Weekly) > 0 {
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(0, 8, "Weekly Growth")
		pdf.Ln(9)
		pdf.SetFont("Arial", "", 10)
		for _, wk := range ds.Weekly {
			y := pdf.GetY()
			pdf.CellFormat(30, 6, tr(wk.Week), "", 0, "L", false, 0, "")
			pdfBar(pdf, 42, y+1, 130, 4, float64(wk.Progress)/100)
			pdf.SetX(176)
			pdf.CellFormat(20, 6, fmt.Sprintf("%d%%", wk.Progress), "", 1, "R", false, 0, "")
		}
		pdf.Ln(6)
	}

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Courses")
	pdf.Ln(9)

	cols := []struct {
		title string
		width float64
		align string
	}{
		{"Course", 60, "L"},
		{"Progress", 25, "R"},
		{"Completed", 30, "R"},
		{"Completion", 30, "R"},
		{"Status", 45, "L"},
	}
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(int(colorBandHigh.R), int(colorBandHigh.G), int(colorBandHigh.B))
	for _, col := range cols {
		pdf.CellFormat(col.width, 7, col.title, "1", 0, col.align, true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, r := range ds.Courses {
		cells := []string{
			tr(r.Name),
			fmt.Sprintf("%d%%", r.Progress),
			fmt.Sprintf("%d/%d", r.CoursesCompleted, r.TotalCourses),
			fmt.Sprintf("%d%%", r.CompletionPercent()),
			string(r.DisplayStatus()),
		}
		for i, col := range cols {
			pdf.CellFormat(col.width, 6, cells[i], "1", 0, col.align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("build pdf report: %w", err)
	}
	return pdf.Output(w)
}

func pdfBar(pdf *fpdf.Fpdf, x, y, w, h, frac float64) {
	switch {
	case frac < 0:
		frac = 0
	case frac > 1:
		frac = 1
	}
	pdf.SetFillColor(int(colorBandLow.R), int(colorBandLow.G), int(colorBandLow.B))
	pdf.Rect(x, y, w, h, "F")
	if frac > 0 {
		pdf.SetFillColor(int(colorFill.R), int(colorFill.G), int(colorFill.B))
		pdf.Rect(x, y, w*frac, h, "F")
	}
}
