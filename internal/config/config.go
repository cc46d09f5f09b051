// Package config bootstraps the versioned user configuration file.
package config

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"DCThemer/internal/apperr"
	"DCThemer/internal/assets"
	"DCThemer/internal/constants"
	"DCThemer/internal/format"
	"DCThemer/internal/logger"
	"DCThemer/internal/paths"
	"DCThemer/internal/target"
	"DCThemer/internal/version"
)

// Config is the user configuration file. Field names are part of the file
// format and must not change without a configVersion bump.
type Config struct {
	ConfigVersion   int             `json:"configVersion"`
	DoubleCommander DoubleCommander `json:"doubleCommander"`
	Schemes         Schemes         `json:"schemes"`

	// path is the file the configuration was loaded from.
	path string
}

// DoubleCommander holds the settings about the live Double Commander files.
type DoubleCommander struct {
	BackupConfigs bool `json:"backupConfigs"`
	// AutoDarkMode forces DarkMode=1 on every apply unless overridden on the
	// command line.
	AutoDarkMode bool        `json:"autoDarkMode"`
	ConfigPaths  ConfigPaths `json:"configPaths"`
}

// ConfigPaths are path templates; see target.Expand for the syntax.
type ConfigPaths struct {
	CFG  string `json:"cfg"`
	JSON string `json:"json"`
	XML  string `json:"xml"`
}

// Schemes holds the scheme discovery settings.
type Schemes struct {
	Path       string   `json:"path"`
	Extensions []string `json:"extensions"`
	XMLTags    []string `json:"xmlTags"`
}

// Path returns the file the configuration was loaded from.
func (c *Config) Path() string { return c.path }

// SchemesDir returns the schemes directory. A relative path is taken from
// the directory of the configuration file.
func (c *Config) SchemesDir() string {
	return paths.ResolveRelative(c.path, target.Expand(c.Schemes.Path))
}

// Manager creates and reads the user configuration file at Path.
type Manager struct {
	// Default is the JSON written by CreateDefault.
	Default []byte
	Path    string
}

// Exists reports whether Path is a regular file with a .json extension.
func (m *Manager) Exists() bool {
	info, err := os.Stat(m.Path)
	return err == nil && info.Mode().IsRegular() && strings.HasSuffix(m.Path, ".json")
}

// CreateDefault writes Default to Path with 2-space indentation, creating
// parent directories as needed.
func (m *Manager) CreateDefault() error {
	doc, err := format.ParseJSON("default configuration", m.Default)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(m.Path), 0755); err != nil {
		return apperr.Wrap(apperr.KindIO, err, m.Path, "Failed to write default configuration")
	}
	if err := os.WriteFile(m.Path, doc.Bytes(), 0644); err != nil {
		return apperr.Wrap(apperr.KindIO, err, m.Path, "Failed to write default configuration")
	}
	return nil
}

// Load reads a user configuration file, repairing lenient JSON.
func Load(path string) (*Config, error) {
	doc, err := format.ReadJSON(path)
	if err != nil {
		return nil, err
	}
	cfg := &Config{path: path}
	if err := json.Unmarshal(doc.Bytes(), cfg); err != nil {
		return nil, apperr.Wrap(apperr.KindParse, err, path, "The configuration file does not contain a valid user configuration")
	}
	return cfg, nil
}

// Verify fails when the version found in the file is not the expected one.
func Verify(expected, found int) error {
	if expected != found {
		return apperr.New(apperr.KindVersionMismatch, "",
			"Configuration file version mismatch.\n"+
				"Please refer to the release notes for more information about application configuration breaking changes.\n"+
				"%s/releases\n"+
				"Expected version %d, found %d", version.RepoURL, expected, found)
	}
	return nil
}

// Bootstrap creates the default configuration at path if there is none, then
// loads and version-checks it.
func Bootstrap(ctx context.Context, path string) (*Config, error) {
	if !strings.HasSuffix(path, ".json") {
		return nil, apperr.New(apperr.KindPrecondition, path, "The configuration file must have a .json extension")
	}

	def, err := assets.DefaultUserConfig()
	if err != nil {
		return nil, err
	}
	m := &Manager{Default: def, Path: path}
	if !m.Exists() {
		logger.Notice(ctx, "Creating default configuration '{{_File_}}%s{{|-|}}'", path)
		if err := m.CreateDefault(); err != nil {
			return nil, err
		}
	}

	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	if err := Verify(constants.UserConfigVersion, cfg.ConfigVersion); err != nil {
		return nil, apperr.Wrap(apperr.KindVersionMismatch, err, path, "Unsupported configuration file")
	}
	logger.Debug(ctx, "Loaded configuration '{{_File_}}%s{{|-|}}'", path)
	return cfg, nil
}
