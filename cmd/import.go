package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/pathdash/internal/dataset"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a JSON or YAML course file into the database",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		ds, err := dataset.File{Path: args[0]}.Load(ctx)
		if err != nil {
			return err
		}

		st, dbPath, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.DatasetRepo().Replace(ctx, ds); err != nil {
			return fmt.Errorf("import: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d courses and %d weekly points into %s\n",
			len(ds.Courses), len(ds.Weekly), dbPath)
		return nil
	},
}
