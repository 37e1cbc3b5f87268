package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/osse101/DoughGuardian_Go/internal/domain"
	"github.com/osse101/DoughGuardian_Go/internal/validation"
)

// Loader reads catalog files and validates them
type Loader interface {
	Load(path string) (*domain.CatalogConfig, error)
	Validate(config *domain.CatalogConfig) error
}

type catalogLoader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &catalogLoader{
		schemaValidator: validation.NewSchemaValidator(),
	}
}

// Load reads a JSON or YAML catalog and checks it against the catalog schema.
// The format is picked from the file extension.
func (l *catalogLoader) Load(path string) (*domain.CatalogConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadCatalogFailed, err)
	}

	var config domain.CatalogConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := l.schemaValidator.ValidateBytes(data, validation.CatalogSchema); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", domain.ErrInvalidCatalog, path, err)
		}
		if err := json.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf(ErrMsgParseCatalogFailed, err)
		}
	case ".yaml", ".yml":
		var doc interface{}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf(ErrMsgParseCatalogFailed, err)
		}
		if err := l.schemaValidator.ValidateDocument(doc, validation.CatalogSchema); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", domain.ErrInvalidCatalog, path, err)
		}
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf(ErrMsgParseCatalogFailed, err)
		}
	default:
		return nil, fmt.Errorf("%w: "+ErrMsgUnsupportedFormat, domain.ErrInvalidCatalog, ext)
	}

	return &config, nil
}

// Validate checks the semantic rules the schema cannot express
func (l *catalogLoader) Validate(config *domain.CatalogConfig) error {
	return Validate(config)
}

// LoadFile loads, validates and builds a catalog in one step.
// An empty path yields the built-in catalog.
func LoadFile(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}

	loader := NewLoader()
	config, err := loader.Load(path)
	if err != nil {
		return nil, err
	}
	return New(*config)
}
