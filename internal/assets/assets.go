package assets

import (
	"embed"
	"runtime"
)

//go:embed defaults
var embeddedFS embed.FS

// DefaultUserConfig returns the default user configuration for this platform.
func DefaultUserConfig() ([]byte, error) {
	return DefaultUserConfigFor(runtime.GOOS)
}

// DefaultUserConfigFor returns the default user configuration for goos.
// Windows keeps Double Commander's settings under %APPDATA%, every other
// platform under the XDG config home.
func DefaultUserConfigFor(goos string) ([]byte, error) {
	if goos == "windows" {
		return embeddedFS.ReadFile("defaults/dc-themer.windows.json")
	}
	return embeddedFS.ReadFile("defaults/dc-themer.json")
}
