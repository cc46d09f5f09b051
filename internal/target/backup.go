package target

import (
	"os"
	"path/filepath"

	"DCThemer/internal/apperr"
	"DCThemer/internal/constants"
)

// BackupPath returns where the backup of path is kept.
func BackupPath(path string) string {
	return path + constants.BackupSuffix
}

// HasBackup reports whether a backup of path exists.
func HasBackup(path string) bool {
	info, err := os.Stat(BackupPath(path))
	return err == nil && info.Mode().IsRegular()
}

// Backup copies path next to itself with the backup suffix, replacing any
// previous backup. The new backup only becomes visible once fully written.
func Backup(path string) (string, error) {
	dst := BackupPath(path)
	if err := copyFile(path, dst); err != nil {
		return "", apperr.Wrap(apperr.KindIO, err, path, "Failed to back up configuration file")
	}
	return dst, nil
}

// Restore copies the backup of path back over path.
func Restore(path string) error {
	src := BackupPath(path)
	if !HasBackup(path) {
		return apperr.New(apperr.KindNotFound, src, "No backup found")
	}
	if err := copyFile(src, path); err != nil {
		return apperr.Wrap(apperr.KindIO, err, path, "Failed to restore configuration file")
	}
	return nil
}

// copyFile writes src to a temp file beside dst and renames it into place.
func copyFile(src, dst string) error {
	input, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	mode := os.FileMode(0644)
	if info, err := os.Stat(src); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(dst), "."+filepath.Base(dst)+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(input); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		return err
	}
	return os.Rename(tmpName, dst)
}
