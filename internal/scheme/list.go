package scheme

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"DCThemer/internal/apperr"
)

// List returns the sorted names of the complete schemes in dir. A name is
// complete when a file exists for every extension in exts.
//
// Names with at least one but not all files are incomplete. When any exist,
// List returns the complete names together with a single KindNotFound error
// describing every incomplete scheme. Files whose extension is not in exts
// are ignored.
func List(dir string, exts []string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		if err == nil {
			err = os.ErrNotExist
		}
		return nil, apperr.Wrap(apperr.KindNotFound, err, dir, "The schemes dir does not exist")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindIO, err, dir, "Failed to read the schemes dir")
	}

	required := make([]string, 0, len(exts))
	for _, ext := range exts {
		required = append(required, strings.TrimPrefix(ext, "."))
	}

	found := make(map[string]map[string]bool)
	for _, e := range entries {
		// Stat follows symlinks into the schemes dir.
		fi, err := os.Stat(filepath.Join(dir, e.Name()))
		if err != nil || !fi.Mode().IsRegular() {
			continue
		}
		ext := strings.TrimPrefix(filepath.Ext(e.Name()), ".")
		if !slices.Contains(required, ext) {
			continue
		}
		base := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		if found[base] == nil {
			found[base] = make(map[string]bool)
		}
		found[base][ext] = true
	}

	var names, problems []string
	for _, base := range sortedKeys(found) {
		var missing []string
		for _, ext := range required {
			if !found[base][ext] {
				missing = append(missing, base+"."+ext)
			}
		}
		if len(missing) > 0 {
			problems = append(problems, "  "+base+": "+strings.Join(missing, ", "))
			continue
		}
		names = append(names, base)
	}

	if len(problems) > 0 {
		return names, apperr.New(apperr.KindNotFound, dir,
			"Missing required files for %d scheme(s):\n%s\nin the schemes dir", len(problems), strings.Join(problems, "\n"))
	}
	return names, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
