package version

import (
	"os"
	"path/filepath"
	"strings"
)

// ApplicationName is the human-readable name of the application.
var ApplicationName = "DC Themer"

// CommandName is the name of the executable command.
// It is initialized dynamically from the executable filename.
var CommandName = "dc-themer"

// Version is the current version of the application.
// This is intended to be overwritten at build time using:
// -ldflags "-X DCThemer/internal/version.Version=v0.2.0"
var Version = "v0.0.0-dev"

// Commit is the git commit hash of the build.
var Commit = "none"

// BuildDate is the date the binary was built.
var BuildDate = "unknown"

// RepoURL is where the project and its release notes live.
const RepoURL = "https://github.com/t0mmili/dc-themer"

func init() {
	exePath := os.Args[0]
	baseName := filepath.Base(exePath)
	// Strip extension (e.g., .exe on Windows)
	CommandName = strings.TrimSuffix(baseName, filepath.Ext(baseName))

	// Go test binaries and `go run` builds get throwaway names
	if CommandName == "main" || strings.HasSuffix(CommandName, ".test") || CommandName == "" {
		CommandName = "dc-themer"
	}
}
