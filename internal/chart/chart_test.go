package chart

import (
	"bytes"
	"context"
	"encoding/xml"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/pathdash/internal/course"
)

func TestWeekly_FromBuiltin(t *testing.T) {
	c := Weekly(course.Builtin())
	assert.Equal(t, Bar, c.Kind)
	assert.Equal(t, "Weekly Growth Chart", c.Title)
	require.Len(t, c.Series, 4)
	assert.Equal(t, Point{Label: "Week 4", Value: 100}, c.Series[3])
}

func TestOverall_UsesDatasetPercent(t *testing.T) {
	c := Overall(course.Builtin())
	assert.Equal(t, Gauge, c.Kind)
	assert.Equal(t, 68.0, c.Series[0].Value)
	assert.Len(t, c.Bands, 2)
}

func TestByName(t *testing.T) {
	ds := course.Builtin()
	for _, name := range []string{"weekly", "overall", "courses"} {
		_, err := ByName(name, ds)
		assert.NoError(t, err, name)
	}
	_, err := ByName("pie", ds)
	assert.Error(t, err)
}

func TestFraction_Clamped(t *testing.T) {
	c := Chart{Max: 100}
	assert.Equal(t, 0.0, c.fraction(-5))
	assert.Equal(t, 0.5, c.fraction(50))
	assert.Equal(t, 1.0, c.fraction(150))

	auto := Chart{Series: []Point{{Value: 20}, {Value: 40}}}
	assert.Equal(t, 1.0, auto.fraction(40))
}

func TestLayoutBars_HeightsFollowValues(t *testing.T) {
	l := layoutBars(Weekly(course.Builtin()))
	require.Len(t, l.Bars, 4)
	for i := 1; i < len(l.Bars); i++ {
		assert.Greater(t, l.Bars[i].H, l.Bars[i-1].H)
		assert.Greater(t, l.Bars[i].X, l.Bars[i-1].X)
	}
	assert.InDelta(t, l.PlotH, l.Bars[3].H, 0.001)
	assert.Len(t, l.Ticks, 5)
}

func TestWriteSVG_ValidXML(t *testing.T) {
	for _, c := range []Chart{Weekly(course.Builtin()), Overall(course.Builtin())} {
		var buf bytes.Buffer
		require.NoError(t, WriteSVG(&buf, c))

		var doc any
		require.NoError(t, xml.Unmarshal(buf.Bytes(), &doc), buf.String())
		assert.True(t, strings.Contains(buf.String(), "<svg"))
		assert.Contains(t, buf.String(), c.Title)
	}
}

func TestWriteSVG_BarLabels(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSVG(&buf, Weekly(course.Builtin())))
	out := buf.String()
	for _, want := range []string{"Week 1", "Week 4", "82%", "Progress (%)", "#4caf50"} {
		assert.Contains(t, out, want)
	}
}

func TestWriteSVG_EmptySeries(t *testing.T) {
	var buf bytes.Buffer
	err := WriteSVG(&buf, Chart{Title: "empty"})
	assert.Error(t, err)
	assert.Zero(t, buf.Len())
}

func TestWritePNG_Decodes(t *testing.T) {
	var buf bytes.Buffer
	c := Weekly(course.Builtin())
	require.NoError(t, WritePNG(&buf, c))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, c.Width, img.Bounds().Dx())
	assert.Equal(t, c.Height, img.Bounds().Dy())
}

func TestWritePDFReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePDFReport(&buf, course.Builtin(), ReportOptions{Title: "CSE Learning Path"}))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))

	assert.Error(t, WritePDFReport(&buf, nil, ReportOptions{}))
}

func TestTerminal_Bars(t *testing.T) {
	out := Terminal(Weekly(course.Builtin()), 60)
	assert.Contains(t, out, "Weekly Growth Chart")
	assert.Contains(t, out, "Week 3")
	assert.Contains(t, out, "90%")
	assert.Contains(t, out, blockFull)
}

func TestTerminal_Gauge(t *testing.T) {
	out := Terminal(Overall(course.Builtin()), 40)
	assert.Contains(t, out, "Total Completion")
	assert.Contains(t, out, "68%")
	assert.Contains(t, out, blockEmpty)
}

func TestTerminal_NoData(t *testing.T) {
	assert.Contains(t, Terminal(Chart{}, 40), "no data")
}

func TestResolveFormat(t *testing.T) {
	tests := []struct {
		path, format     string
		wantFmt, wantOut string
	}{
		{"out.svg", "", "svg", "out.svg"},
		{"out.PNG", "", "png", "out.PNG"},
		{"report.pdf", "", "pdf", "report.pdf"},
		{"chart", "", "svg", "chart.svg"},
		{"chart", ".png", "png", "chart.png"},
		{"weird.txt", "", "svg", "weird.txt"},
	}
	for _, tt := range tests {
		f, p, err := ResolveFormat(tt.path, tt.format)
		require.NoError(t, err, tt.path)
		assert.Equal(t, tt.wantFmt, f, tt.path)
		assert.Equal(t, tt.wantOut, p, tt.path)
	}

	_, _, err := ResolveFormat("x.gif", "gif")
	assert.Error(t, err)
	_, _, err = ResolveFormat("", "svg")
	assert.Error(t, err)
}

func TestSaveAll_WritesEveryFormat(t *testing.T) {
	dir := t.TempDir()
	ds := course.Builtin()
	paths, err := SaveAll(context.Background(), []ExportOptions{
		{Path: filepath.Join(dir, "weekly.svg"), Chart: Weekly(ds)},
		{Path: filepath.Join(dir, "sub", "overall.png"), Chart: Overall(ds)},
		{Path: filepath.Join(dir, "report"), Format: "pdf", Dataset: ds},
	})
	require.NoError(t, err)
	require.Len(t, paths, 3)
	assert.Equal(t, filepath.Join(dir, "report.pdf"), paths[2])
	for _, p := range paths {
		info, err := os.Stat(p)
		require.NoError(t, err, p)
		assert.Greater(t, info.Size(), int64(0), p)
	}
}

func TestSave_FailureRemovesPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.svg")
	_, err := Save(ExportOptions{Path: path, Chart: Chart{Title: "none"}})
	require.Error(t, err)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestSave_FailureKeepsExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "weekly.svg")
	require.NoError(t, os.WriteFile(path, []byte("previous export"), 0o644))

	ds := course.Builtin()
	ds.Weekly = nil
	_, err := Save(ExportOptions{Path: path, Chart: Weekly(ds)})
	require.Error(t, err)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "previous export", string(got))
	assertOnlyFiles(t, dir, "weekly.svg")
}

func TestSave_ReplacesExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "overall.png")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

	_, err := Save(ExportOptions{Path: path, Chart: Overall(course.Builtin())})
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	_, err = png.Decode(f)
	assert.NoError(t, err)
	assertOnlyFiles(t, dir, "overall.png")
}

func TestSave_PDFWithoutDataset(t *testing.T) {
	dir := t.TempDir()
	_, err := Save(ExportOptions{Path: filepath.Join(dir, "report.pdf")})
	require.Error(t, err)
	assertOnlyFiles(t, dir)
}

func TestSaveAll_FailureWritesNothing(t *testing.T) {
	dir := t.TempDir()
	ds := course.Builtin()
	empty := course.Builtin()
	empty.Weekly = nil

	_, err := SaveAll(context.Background(), []ExportOptions{
		{Path: filepath.Join(dir, "weekly.svg"), Chart: Weekly(empty)},
		{Path: filepath.Join(dir, "overall.png"), Chart: Overall(ds)},
		{Path: filepath.Join(dir, "report.pdf"), Dataset: ds},
	})
	require.Error(t, err)
	assertOnlyFiles(t, dir)
}

func assertOnlyFiles(t *testing.T, dir string, want ...string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	got := []string{}
	for _, e := range entries {
		got = append(got, e.Name())
	}
	if want == nil {
		want = []string{}
	}
	assert.ElementsMatch(t, want, got)
}
