package paths

import (
	"os"
	"path/filepath"
	"runtime"

	"DCThemer/internal/constants"

	"github.com/adrg/xdg"
)

var (
	// ConfigHomeOverride allows overriding the config home for tests.
	ConfigHomeOverride string
	// StateHomeOverride allows overriding the state home for tests.
	StateHomeOverride string
)

// GetConfigDir returns the absolute path to the dc-themer configuration directory
// (e.g., ~/.config/dc-themer).
func GetConfigDir() string {
	if ConfigHomeOverride != "" {
		return filepath.Join(ConfigHomeOverride, constants.AppDirName)
	}
	if runtime.GOOS == "darwin" {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", constants.AppDirName)
	}
	return filepath.Join(xdg.ConfigHome, constants.AppDirName)
}

// GetConfigFilePath returns the default location of the user configuration file.
func GetConfigFilePath() string {
	return filepath.Join(GetConfigDir(), constants.UserConfigFileName)
}

// GetStateDir returns the absolute path to the dc-themer state directory.
// It uses xdg.StateHome (e.g., %LOCALAPPDATA% on Windows).
func GetStateDir() string {
	if StateHomeOverride != "" {
		return filepath.Join(StateHomeOverride, constants.AppDirName)
	}
	return filepath.Join(xdg.StateHome, constants.AppDirName)
}

// GetStateFilePath returns the file recording the last applied scheme.
func GetStateFilePath() string {
	return filepath.Join(GetStateDir(), constants.StateFileName)
}

// GetLogFilePath returns the application log file.
func GetLogFilePath() string {
	return filepath.Join(GetStateDir(), constants.LogFileName)
}

// ResolveRelative anchors a relative path from the user configuration to the
// directory holding that configuration file. Absolute paths are returned as is.
func ResolveRelative(configFile, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(filepath.Dir(configFile), p)
}
