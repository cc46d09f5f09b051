package target

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"DCThemer/internal/apperr"

	"github.com/adrg/xdg"
)

// varRegex matches ${VAR}, $VAR and %VAR% references.
var varRegex = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}|\$([A-Za-z_][A-Za-z0-9_]*)|%([A-Za-z_][A-Za-z0-9_]*)%`)

// lookupVar returns the value of an environment variable. Empty or unset XDG
// base directories fall back to the platform defaults from xdg.
func lookupVar(name string) (string, bool) {
	if v, ok := os.LookupEnv(name); ok && v != "" {
		return v, true
	}
	switch name {
	case "XDG_CONFIG_HOME":
		return xdg.ConfigHome, true
	case "XDG_DATA_HOME":
		return xdg.DataHome, true
	case "XDG_STATE_HOME":
		return xdg.StateHome, true
	case "XDG_CACHE_HOME":
		return xdg.CacheHome, true
	case "HOME", "USERPROFILE":
		if home, err := os.UserHomeDir(); err == nil {
			return home, true
		}
	}
	return "", false
}

// Expand substitutes variables in template and a leading "~". References to
// variables that cannot be resolved are left as written.
func Expand(template string) string {
	out := varRegex.ReplaceAllStringFunc(template, func(match string) string {
		m := varRegex.FindStringSubmatch(match)
		name := m[1] + m[2] + m[3]
		if v, ok := lookupVar(name); ok {
			return v
		}
		return match
	})

	if out == "~" || strings.HasPrefix(out, "~/") || strings.HasPrefix(out, `~\`) {
		if home, err := os.UserHomeDir(); err == nil {
			out = home + out[1:]
		}
	}
	return out
}

// Resolve expands template and checks that it names an existing file.
func Resolve(template string) (string, error) {
	path := filepath.Clean(Expand(template))
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return "", apperr.Wrap(apperr.KindNotFound, notFoundCause(err), path, "Double Commander config file does not exist")
	}
	return path, nil
}

func notFoundCause(err error) error {
	if err != nil {
		return err
	}
	return os.ErrNotExist
}
