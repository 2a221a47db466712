package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/pathdash/internal/config"
	"github.com/abhisek/pathdash/internal/debug"
)

var rootCmd = &cobra.Command{
	Use:   "pathdash",
	Short: "CSE learning path dashboard",
	Long:  "pathdash is a terminal dashboard for tracking progress along a computer science learning path.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if p, _ := cmd.Flags().GetString("debug-log"); p != "" {
			if err := debug.SetFile(p); err != nil {
				return fmt.Errorf("open debug log: %w", err)
			}
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		debug.Close()
	},
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// Execute runs the root command. ctx is cancelled on interrupt.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default ~/.config/pathdash/config.yaml)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PATHDASH_DB env var)")
	rootCmd.PersistentFlags().String("data", "", "Path to a JSON or YAML course file (overrides PATHDASH_DATA env var)")
	rootCmd.PersistentFlags().String("chapters", "", "Directory of chapter notes (overrides PATHDASH_CHAPTERS env var)")
	rootCmd.PersistentFlags().String("debug-log", "", "Write debug logs to this file")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(coursesCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(chapterCmd)
	rootCmd.AddCommand(llmCmd)
}

// loadConfig reads the config file, then applies flag overrides. Flags win
// over environment variables, which win over the file.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	var (
		cfg config.Config
		err error
	)
	if p, _ := cmd.Flags().GetString("config"); p != "" {
		cfg, err = config.LoadFrom(p)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return cfg, err
	}

	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DBPath = p
	}
	if p, _ := cmd.Flags().GetString("data"); p != "" {
		cfg.DataFile = p
	}
	if p, _ := cmd.Flags().GetString("chapters"); p != "" {
		cfg.ChaptersDir = p
	}
	return cfg, nil
}
