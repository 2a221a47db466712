package chart

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/abhisek/pathdash/internal/course"
	"github.com/abhisek/pathdash/internal/debug"
)

// Export formats.
const (
	FormatSVG = "svg"
	FormatPNG = "png"
	FormatPDF = "pdf"
)

// ExportOptions controls a single chart export.
type ExportOptions struct {
	Path    string // Output path; format inferred from extension when Format empty
	Format  string // "svg", "png" or "pdf" (case-insensitive)
	Chart   Chart  // Rendered for svg and png
	Dataset *course.Dataset
	Title   string // PDF report title
}

// ResolveFormat returns the normalized export format and output path. A
// path without an extension gets one matching the format.
func ResolveFormat(path, format string) (string, string, error) {
	format = strings.ToLower(strings.TrimPrefix(format, "."))
	if format == "" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".png":
			format = FormatPNG
		case ".pdf":
			format = FormatPDF
		default:
			format = FormatSVG
		}
	}
	if format != FormatSVG && format != FormatPNG && format != FormatPDF {
		return "", "", fmt.Errorf("unsupported format %q (want svg, png or pdf)", format)
	}
	if path == "" {
		return "", "", fmt.Errorf("output path is required")
	}
	if filepath.Ext(path) == "" {
		path += "." + format
	}
	return format, path, nil
}

// Save writes a single export and returns the path written. The output
// replaces path only once it is complete; on failure an existing file at
// path is left untouched.
func Save(opts ExportOptions) (string, error) {
	st, err := stage(opts)
	if err != nil {
		return "", err
	}
	if err := st.commit(); err != nil {
		st.discard()
		return "", err
	}
	return st.path, nil
}

// SaveAll writes every export concurrently. The first failure cancels the
// rest and nothing is written; paths are returned in input order.
func SaveAll(ctx context.Context, exports []ExportOptions) ([]string, error) {
	pending := make([]*staged, len(exports))
	g, gctx := errgroup.WithContext(ctx)
	for i, opts := range exports {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			st, err := stage(opts)
			if err != nil {
				return err
			}
			pending[i] = st
			return nil
		})
	}
	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		for _, st := range pending {
			st.discard()
		}
		return nil, err
	}

	paths := make([]string, len(pending))
	for i, st := range pending {
		if err := st.commit(); err != nil {
			for _, rest := range pending[i:] {
				rest.discard()
			}
			return nil, err
		}
		paths[i] = st.path
	}
	return paths, nil
}

// staged is a finished export waiting in a temp file next to its target.
type staged struct {
	tmp  string
	path string
}

func stage(opts ExportOptions) (*staged, error) {
	format, path, err := ResolveFormat(opts.Path, opts.Format)
	if err != nil {
		return nil, err
	}

	var write func(io.Writer) error
	switch format {
	case FormatPDF:
		if opts.Dataset == nil {
			return nil, fmt.Errorf("export %s: no dataset to report", path)
		}
		write = func(w io.Writer) error {
			return WritePDFReport(w, opts.Dataset, ReportOptions{Title: opts.Title})
		}
	case FormatPNG:
		write = func(w io.Writer) error { return WritePNG(w, opts.Chart) }
	default:
		write = func(w io.Writer) error { return WriteSVG(w, opts.Chart) }
	}
	if format != FormatPDF {
		if err := opts.Chart.Validate(); err != nil {
			return nil, fmt.Errorf("export %s: %w", path, err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create parent dir: %w", err)
	}

	start := time.Now()
	defer func() { debug.LogTiming("export "+path, time.Since(start)) }()

	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return nil, fmt.Errorf("write %s: %w", path, err)
	}
	err = write(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(f.Name())
		return nil, fmt.Errorf("write %s: %w", path, err)
	}
	return &staged{tmp: f.Name(), path: path}, nil
}

func (s *staged) commit() error {
	if err := os.Chmod(s.tmp, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	if err := os.Rename(s.tmp, s.path); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}

// discard drops the temp file. Safe on nil and after commit.
func (s *staged) discard() {
	if s != nil {
		os.Remove(s.tmp)
	}
}
