package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/abhisek/pathdash/internal/chapters"
	"github.com/abhisek/pathdash/internal/course"
	"github.com/abhisek/pathdash/internal/llm"
)

var chapterCmd = &cobra.Command{
	Use:   "chapter",
	Short: "Read or draft chapter notes for a course",
}

var chapterShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Render the chapter notes for a course",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		name := args[0]
		out := cmd.OutOrStdout()

		ch, ok, err := chapters.Lookup(cfg.ChaptersDir, name)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(out, chapters.Placeholder(cfg.ChaptersDir, name))
			return nil
		}

		if raw, _ := cmd.Flags().GetBool("raw"); raw || !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprint(out, ch.Content)
			return nil
		}

		width := 80
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
			width = min(w, 120)
		}
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return fmt.Errorf("create renderer: %w", err)
		}
		rendered, err := r.Render(ch.Content)
		if err != nil {
			return fmt.Errorf("render chapter: %w", err)
		}
		fmt.Fprint(out, rendered)
		return nil
	},
}

var chapterDraftCmd = &cobra.Command{
	Use:   "draft <name>",
	Short: "Draft chapter notes for a course with an LLM",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if cfg.ChaptersDir == "" {
			return errors.New("chapters_dir is not configured")
		}

		st, dbPath, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		ds, _, err := sourceChain(cfg, st, dbPath).Resolve(cmd.Context())
		if err != nil {
			return err
		}

		rec, err := course.Select(ds.Courses, args[0])
		if err != nil {
			return err
		}

		if _, ok, _ := chapters.Lookup(cfg.ChaptersDir, rec.Name); ok && !force {
			overwrite, err := confirmOverwrite(chapters.Path(cfg.ChaptersDir, rec.Name))
			if err != nil {
				return err
			}
			if !overwrite {
				fmt.Fprintln(cmd.OutOrStdout(), "Kept existing notes.")
				return nil
			}
			force = true
		}

		provider, err := llm.NewProviderFromEnv(cmd.Context(), st.LLMEventRepo())
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}

		draftCfg := chapters.DefaultDraftConfig()
		draftCfg.Force = force
		drafter := chapters.NewDrafter(provider, cfg.ChaptersDir, draftCfg)

		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
		defer cancel()

		fmt.Fprintf(cmd.OutOrStdout(), "Drafting notes for %s with %s...\n", rec.Name, provider.ModelID())
		path, err := drafter.Draft(ctx, rec)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Wrote", path)
		return nil
	},
}

// confirmOverwrite asks before replacing existing notes. Without a terminal
// the form falls back to accessible mode and reads the answer from stdin.
func confirmOverwrite(path string) (bool, error) {
	overwrite := false
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("%s already exists. Replace it?", path)).
				Value(&overwrite).
				Affirmative("Replace").
				Negative("Keep"),
		),
	).WithTheme(huh.ThemeDracula())
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		form = form.WithAccessible(true)
	}
	if err := form.Run(); err != nil {
		return false, err
	}
	return overwrite, nil
}

func init() {
	chapterShowCmd.Flags().Bool("raw", false, "Print the markdown without rendering")
	chapterDraftCmd.Flags().Bool("force", false, "Replace existing notes without asking")
	chapterCmd.AddCommand(chapterShowCmd)
	chapterCmd.AddCommand(chapterDraftCmd)
}
