// Package chapters looks up optional markdown notes for a course.
//
// Notes live in a flat directory, one file per course, named after the
// normalized course name: "Data Science" → data_science.md. A missing file
// is a normal "no notes yet" state, not an error.
package chapters

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Ext is the file extension for chapter notes.
const Ext = ".md"

// Chapter is the loaded content for one course.
type Chapter struct {
	Name    string
	Path    string
	Content string
}

var slugReplacer = strings.NewReplacer(
	" ", "_",
	"/", "_",
	`\`, "_",
	"&", "and",
)

// Slug normalizes a course name: lowercase, spaces and path separators
// become "_" and "&" becomes "and". The result is always a single path
// element.
func Slug(name string) string {
	return slugReplacer.Replace(strings.ToLower(name))
}

// FileName returns the chapter file name for a course.
func FileName(name string) string {
	return Slug(name) + Ext
}

// Path returns the chapter path for a course inside dir.
func Path(dir, name string) string {
	return filepath.Join(dir, FileName(name))
}

// Lookup reads the chapter for name from dir. ok is false when the file (or
// the directory) does not exist.
func Lookup(dir, name string) (Chapter, bool, error) {
	if dir == "" {
		return Chapter{}, false, nil
	}
	p := Path(dir, name)
	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Chapter{}, false, nil
		}
		return Chapter{}, false, fmt.Errorf("read chapter %s: %w", p, err)
	}
	return Chapter{Name: name, Path: p, Content: string(b)}, true, nil
}

// Placeholder returns the informational text shown when a course has no notes.
func Placeholder(dir, name string) string {
	if dir == "" {
		return fmt.Sprintf("No chapter notes for %s. Set chapters_dir in the config to add some.", name)
	}
	return fmt.Sprintf("No chapter notes for %s yet.\nAdd %s to %s, or run: pathdash chapter draft %q",
		name, FileName(name), dir, name)
}
