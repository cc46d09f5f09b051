package scheme

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"DCThemer/internal/apperr"
	"DCThemer/internal/constants"

	"gopkg.in/yaml.v3"
)

// Entry describes one scheme in the optional catalog file.
type Entry struct {
	Description string `yaml:"description"`
	Author      string `yaml:"author,omitempty"`
	// Dark marks schemes meant to be used with Double Commander's dark mode.
	Dark bool `yaml:"dark,omitempty"`
}

// Catalog maps scheme names to their descriptions.
type Catalog map[string]Entry

// LoadCatalog reads schemes.yaml from dir. A missing file yields an empty
// catalog.
func LoadCatalog(dir string) (Catalog, error) {
	path := filepath.Join(dir, constants.CatalogFileName)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Catalog{}, nil
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.KindIO, err, path, "Failed to read the scheme catalog")
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, apperr.Wrap(apperr.KindParse, err, path, "Failed to parse the scheme catalog")
	}
	if c == nil {
		c = Catalog{}
	}
	return c, nil
}

// Describe returns the description of name, or "" when it has none.
func (c Catalog) Describe(name string) string {
	return c[name].Description
}
