package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/pathdash/internal/chart"
)

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export a chart (svg, png) or the full report (pdf)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		chartName, _ := cmd.Flags().GetString("chart")

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		ds, _, closeFn, err := loadDataset(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer closeFn()

		c, err := chart.ByName(chartName, ds)
		if err != nil {
			return err
		}

		path, err := chart.Save(chart.ExportOptions{
			Path:    args[0],
			Format:  format,
			Chart:   c,
			Dataset: ds,
			Title:   cfg.UI.Title,
		})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Wrote", path)
		return nil
	},
}

func init() {
	exportCmd.Flags().String("format", "", "Output format: svg, png or pdf (default from file extension)")
	exportCmd.Flags().String("chart", "weekly", "Chart to export: weekly, overall or courses")
}
