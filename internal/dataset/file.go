package dataset

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	json "github.com/goccy/go-json"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/pathdash/internal/course"
)

//go:embed schema.json
var schemaJSON []byte

const schemaURL = "schema://pathdash/dataset.json"

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// File loads a dataset from a JSON or YAML file.
type File struct {
	Path string
}

func (f File) Describe() string {
	return f.Path
}

func (f File) Load(_ context.Context) (*course.Dataset, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	return Parse(data, filepath.Ext(f.Path))
}

// Parse decodes a dataset document. ext selects the format (".json",
// ".yaml" or ".yml"); anything else is treated as JSON. The document is
// checked against the dataset JSON Schema and the course invariants.
func Parse(data []byte, ext string) (*course.Dataset, error) {
	raw := data
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
		b, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("convert yaml: %w", err)
		}
		raw = b
	}

	if err := validateSchema(raw); err != nil {
		return nil, err
	}

	var ds course.Dataset
	if err := json.Unmarshal(raw, &ds); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return &ds, nil
}

// Encode writes ds as indented JSON.
func Encode(ds *course.Dataset) ([]byte, error) {
	return json.MarshalIndent(ds, "", "  ")
}

func validateSchema(raw []byte) error {
	schemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
		if err != nil {
			schemaErr = fmt.Errorf("parse schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(schemaURL)
	})
	if schemaErr != nil {
		return schemaErr
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("parse dataset: %w", err)
	}
	if err := compiledSchema.Validate(inst); err != nil {
		return fmt.Errorf("dataset schema validation failed: %w", err)
	}
	return nil
}
