package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/abhisek/pathdash/internal/app"
	"github.com/abhisek/pathdash/internal/course"
	"github.com/abhisek/pathdash/internal/screens/dashboard"
)

// runApp resolves the dataset and launches the TUI, or prints a plain
// summary when stdout is not a terminal.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	st, dbPath, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	chain := sourceChain(cfg, st, dbPath)
	ds, src, err := chain.Resolve(ctx)
	if err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		printSummary(cmd.OutOrStdout(), cfg.UI.Title, ds)
		return nil
	}

	opts := app.Options{
		Dashboard: dashboard.Options{
			Title:       cfg.UI.Title,
			Flags:       cfg.UI.Flags,
			ChaptersDir: cfg.ChaptersDir,
		},
		Source:   chain,
		Debounce: cfg.Watch.Debounce,
	}
	if cfg.Watch.Enabled {
		opts.WatchPaths = []string{cfg.DataFile, cfg.ChaptersDir}
	}
	return app.Run(ctx, ds, src.Describe(), opts)
}

// printSummary writes the dashboard as plain text.
func printSummary(w io.Writer, title string, ds *course.Dataset) {
	fmt.Fprintln(w, title)
	fmt.Fprintf(w, "Total completion: %d%%\n\n", ds.OverallPercent())
	printCourseTable(w, ds.Courses)

	if len(ds.Weekly) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Weekly growth:")
		for _, p := range ds.Weekly {
			fmt.Fprintf(w, "  %-10s %3d%%  %s\n", p.Week, p.Progress, strings.Repeat("█", p.Progress/5))
		}
	}
}

func printCourseTable(w io.Writer, recs []course.SkillRecord) {
	fmt.Fprintf(w, "%s  %8s  %6s  %8s  %s\n", cell("Course", 20), "Progress", "Done", "Complete", "Status")
	fmt.Fprintln(w, strings.Repeat("─", 64))
	for _, r := range recs {
		fmt.Fprintf(w, "%s  %7d%%  %6s  %7d%%  %s\n",
			cell(r.Name, 20), r.Progress,
			fmt.Sprintf("%d/%d", r.CoursesCompleted, r.TotalCourses),
			r.CompletionPercent(), r.DisplayStatus())
	}
	fmt.Fprintf(w, "\n%d courses\n", len(recs))
}

// cell truncates or pads s to w terminal columns.
func cell(s string, w int) string {
	return runewidth.FillRight(runewidth.Truncate(s, w, "..."), w)
}
