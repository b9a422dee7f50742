// Package catalog provides infrastructure for loading framework catalog
// files. This package handles YAML parsing, file I/O, and schema validation.
package catalog

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/complyops/complyops/internal/application/dto"
	"github.com/complyops/complyops/internal/application/services"
)

// Ensure interface compliance
var _ services.CatalogLoader = (*Loader)(nil)

// Loader loads framework catalogs from YAML files, validating them against
// the catalog schema before handing them to the import use case.
type Loader struct {
	schema *jsonschema.Schema
}

// NewLoader creates a new catalog loader with a compiled schema.
func NewLoader() (*Loader, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020

	if err := compiler.AddResource("catalog.schema.json", bytes.NewReader([]byte(catalogSchema))); err != nil {
		return nil, fmt.Errorf("failed to add catalog schema resource: %w", err)
	}
	schema, err := compiler.Compile("catalog.schema.json")
	if err != nil {
		return nil, fmt.Errorf("failed to compile catalog schema: %w", err)
	}

	return &Loader{schema: schema}, nil
}

// Load loads and parses a catalog from a YAML file.
func (l *Loader) Load(path string) (*dto.FrameworkCatalog, error) {
	// Security: Use os.OpenRoot to prevent path traversal attacks
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog directory: %w", err)
	}
	defer func() {
		_ = root.Close() // Best-effort cleanup
	}()

	file, err := root.Open(base)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer func() {
		_ = file.Close() // Best-effort cleanup
	}()

	return l.LoadFromReader(file)
}

// LoadFromReader loads a catalog from an io.Reader.
func (l *Loader) LoadFromReader(r io.Reader) (*dto.FrameworkCatalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	// Validate the generic document against the schema first so that
	// structural errors surface with schema paths, not decode errors.
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode catalog YAML: %w", err)
	}
	if err := l.schema.Validate(doc); err != nil {
		if validationErr, ok := err.(*jsonschema.ValidationError); ok {
			return nil, formatSchemaError(validationErr)
		}
		return nil, fmt.Errorf("catalog validation failed: %w", err)
	}

	var catalog dto.FrameworkCatalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to decode catalog YAML: %w", err)
	}

	return &catalog, nil
}

// formatSchemaError flattens a JSON Schema validation error into a readable message.
func formatSchemaError(err *jsonschema.ValidationError) error {
	var messages []string
	for _, cause := range err.BasicOutput().Errors {
		if cause.Error == "" || strings.HasPrefix(cause.Error, "doesn't validate with") {
			continue
		}
		location := cause.InstanceLocation
		if location == "" {
			location = "/"
		}
		messages = append(messages, fmt.Sprintf("%s: %s", location, cause.Error))
	}
	if len(messages) == 0 {
		return fmt.Errorf("catalog validation failed: %v", err)
	}
	return fmt.Errorf("catalog validation failed:\n  - %s", strings.Join(messages, "\n  - "))
}
