package chapters

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/abhisek/pathdash/internal/course"
	"github.com/abhisek/pathdash/internal/llm"
)

var (
	// ErrExists is returned by Draft when notes already exist and Force is false.
	ErrExists = errors.New("chapter notes already exist")
	// ErrInvalidName is returned by Draft for a course name that does not
	// map to a file inside the chapters directory.
	ErrInvalidName = errors.New("invalid chapter name")
)

const draftSystemPrompt = `You write concise study notes for a computer science learning path. Respond with GitHub-flavored markdown only, no preamble.`

// DraftConfig holds chapter drafting settings.
type DraftConfig struct {
	MaxTokens   int
	Temperature float64
	Force       bool
}

// DefaultDraftConfig returns sensible defaults for chapter drafting.
func DefaultDraftConfig() DraftConfig {
	return DraftConfig{
		MaxTokens:   1024,
		Temperature: 0.4,
	}
}

// Drafter generates chapter notes with an LLM and writes them to a directory.
type Drafter struct {
	provider llm.Provider
	dir      string
	cfg      DraftConfig
}

// NewDrafter creates a Drafter writing into dir.
func NewDrafter(provider llm.Provider, dir string, cfg DraftConfig) *Drafter {
	return &Drafter{provider: provider, dir: dir, cfg: cfg}
}

// Draft generates notes for rec and returns the written file path.
func (d *Drafter) Draft(ctx context.Context, rec course.SkillRecord) (string, error) {
	path := Path(d.dir, rec.Name)
	if strings.TrimSpace(rec.Name) == "" || filepath.Dir(path) != filepath.Clean(d.dir) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, rec.Name)
	}
	if !d.cfg.Force {
		if _, err := os.Stat(path); err == nil {
			return path, ErrExists
		}
	}

	ctx = llm.WithPurpose(ctx, "chapter-draft")
	resp, err := d.provider.Generate(ctx, llm.Request{
		System: draftSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildDraftMessage(rec)},
		},
		MaxTokens:   d.cfg.MaxTokens,
		Temperature: d.cfg.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("generate chapter: %w", err)
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return "", &llm.ErrInvalidResponse{Text: resp.Text, Err: errors.New("empty chapter")}
	}

	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return "", fmt.Errorf("create chapters dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(text+"\n"), 0o644); err != nil {
		return "", fmt.Errorf("write chapter: %w", err)
	}
	return path, nil
}

func buildDraftMessage(rec course.SkillRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Topic: %s\n", rec.Name)
	fmt.Fprintf(&b, "Learner progress: %d%%\n", rec.Progress)
	fmt.Fprintf(&b, "Courses completed: %d of %d\n", rec.CoursesCompleted, rec.TotalCourses)
	b.WriteString(`
Write study notes with:
1. A one-paragraph overview of the topic.
2. A "Key concepts" bullet list (5-8 items).
3. A "Next steps" section suited to the learner's progress.
Keep it under 400 words.`)
	return b.String()
}
