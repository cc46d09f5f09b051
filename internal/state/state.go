// Package state remembers the last scheme applied on this machine.
package state

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"DCThemer/internal/apperr"

	toml "github.com/pelletier/go-toml/v2"
)

// Record describes one successful apply.
type Record struct {
	Scheme    string    `toml:"scheme"`
	SchemeDir string    `toml:"scheme_dir"`
	AppliedAt time.Time `toml:"applied_at"`
	DarkMode  bool      `toml:"dark_mode"`
	Backup    bool      `toml:"backup"`
	Targets   Targets   `toml:"targets"`
}

// Targets are the resolved paths the scheme was written to.
type Targets struct {
	CFG  string `toml:"cfg"`
	JSON string `toml:"json"`
	XML  string `toml:"xml"`
}

// Paths returns the targets in apply order.
func (t Targets) Paths() []string {
	return []string{t.CFG, t.JSON, t.XML}
}

// Load reads the record at path. A missing file yields (nil, nil).
func Load(path string) (*Record, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.KindIO, err, path, "Failed to read state file")
	}

	var r Record
	if err := toml.Unmarshal(data, &r); err != nil {
		return nil, apperr.Wrap(apperr.KindParse, err, path, "Failed to parse state file")
	}
	return &r, nil
}

// Save writes r to path, replacing any previous record.
func Save(path string, r Record) error {
	data, err := toml.Marshal(r)
	if err != nil {
		return apperr.Wrap(apperr.KindIO, err, path, "Failed to encode state file")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return apperr.Wrap(apperr.KindIO, err, path, "Failed to write state file")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return apperr.Wrap(apperr.KindIO, err, path, "Failed to write state file")
	}
	return nil
}
