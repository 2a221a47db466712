package cmd

import (
	"errors"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/abhisek/pathdash/internal/course"
)

var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "List and inspect courses",
}

var coursesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all courses",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		ds, src, closeFn, err := loadDataset(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer closeFn()

		out := cmd.OutOrStdout()
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			data, err := json.MarshalIndent(ds.Courses, "", "  ")
			if err != nil {
				return fmt.Errorf("encode courses: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		printCourseTable(out, ds.Courses)
		fmt.Fprintf(out, "source: %s\n", src.Describe())
		return nil
	},
}

var coursesShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show one course (exact, case-sensitive name)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		ds, _, closeFn, err := loadDataset(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer closeFn()

		rec, err := course.Select(ds.Courses, args[0])
		if err != nil {
			var nf *course.NotFoundError
			if errors.As(err, &nf) {
				return fmt.Errorf("%w (try: pathdash courses list)", err)
			}
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Name:        %s\n", rec.Label())
		fmt.Fprintf(out, "Progress:    %d%%\n", rec.Progress)
		fmt.Fprintf(out, "Completed:   %d of %d (%d%%)\n", rec.CoursesCompleted, rec.TotalCourses, rec.CompletionPercent())
		fmt.Fprintf(out, "Status:      %s\n", rec.DisplayStatus())
		fmt.Fprintf(out, "Featured:    %t\n", rec.Featured)
		return nil
	},
}

func init() {
	coursesListCmd.Flags().Bool("json", false, "Print courses as JSON")
	coursesCmd.AddCommand(coursesListCmd)
	coursesCmd.AddCommand(coursesShowCmd)
}
