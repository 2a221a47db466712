package dataset

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/pathdash/internal/course"
	"github.com/abhisek/pathdash/internal/debug"
	"github.com/abhisek/pathdash/internal/store"
)

// Source supplies the dashboard dataset.
type Source interface {
	// Load returns the dataset, or nil when this source has nothing to offer.
	Load(ctx context.Context) (*course.Dataset, error)

	// Describe names the source for status lines and logs.
	Describe() string
}

// Static serves a fixed dataset.
type Static struct {
	Dataset *course.Dataset
	Name    string
}

func (s Static) Load(context.Context) (*course.Dataset, error) { return s.Dataset, nil }
func (s Static) Describe() string                              { return s.Name }

// Builtin returns the hard-coded dataset as a Source.
func Builtin() Source {
	return Static{Dataset: course.Builtin(), Name: "built-in"}
}

// Database reads the dataset imported into the SQLite store.
type Database struct {
	Repo store.DatasetRepo
	Path string
}

func (d Database) Load(ctx context.Context) (*course.Dataset, error) {
	return d.Repo.Load(ctx)
}

func (d Database) Describe() string { return d.Path }

// Chain tries each source in order and returns the first non-nil dataset.
type Chain []Source

func (c Chain) Load(ctx context.Context) (*course.Dataset, error) {
	ds, _, err := c.Resolve(ctx)
	return ds, err
}

// Describe lists the sources in lookup order. Use Resolve to learn which
// one served the data.
func (c Chain) Describe() string {
	if len(c) == 0 {
		return "empty"
	}
	names := make([]string, len(c))
	for i, s := range c {
		names[i] = s.Describe()
	}
	return strings.Join(names, " > ")
}

// Resolve returns the first non-nil dataset and the source that produced it.
func (c Chain) Resolve(ctx context.Context) (*course.Dataset, Source, error) {
	for _, s := range c {
		ds, err := s.Load(ctx)
		if err != nil {
			return nil, s, fmt.Errorf("load %s: %w", s.Describe(), err)
		}
		if ds != nil {
			debug.Log("dataset: %d courses from %s", len(ds.Courses), s.Describe())
			return ds, s, nil
		}
		debug.Log("dataset: %s is empty, trying next source", s.Describe())
	}
	return nil, nil, fmt.Errorf("no dataset available")
}

// Resolve loads src and reports the source that served the data. For a
// Chain that is the first member with data; any other source serves itself.
func Resolve(ctx context.Context, src Source) (*course.Dataset, Source, error) {
	if c, ok := src.(Chain); ok {
		return c.Resolve(ctx)
	}
	ds, err := src.Load(ctx)
	return ds, src, err
}
