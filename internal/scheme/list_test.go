package scheme

import (
	"os"
	"path/filepath"
	"testing"

	"DCThemer/internal/apperr"
	"DCThemer/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var requiredExts = []string{"cfg", "json", "xml"}

func TestListReportsIncompleteSchemes(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.cfg", "a.json", "a.xml", "b.cfg"} {
		testutils.WriteFile(t, dir, name, "")
	}

	names, err := List(dir, requiredExts)
	assert.Equal(t, []string{"a"}, names)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindNotFound), "got %v", err)
	assert.Contains(t, err.Error(), "b: b.json, b.xml")
	assert.NotContains(t, err.Error(), "  a:")
}

func TestListCompleteSchemes(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"night.cfg", "night.json", "night.xml",
		"day.cfg", "day.json", "day.xml",
		"README.md", "schemes.yaml",
	} {
		testutils.WriteFile(t, dir, name, "")
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "old.cfg"), 0755))

	names, err := List(dir, []string{".cfg", ".json", ".xml"})
	require.NoError(t, err)
	assert.Equal(t, []string{"day", "night"}, names)
}

func TestListFollowsSymlinks(t *testing.T) {
	src := t.TempDir()
	dir := t.TempDir()
	for _, name := range []string{"night.cfg", "night.json", "night.xml"} {
		target := testutils.WriteFile(t, src, name, "")
		if err := os.Symlink(target, filepath.Join(dir, name)); err != nil {
			t.Skipf("symlinks not supported: %v", err)
		}
	}
	require.NoError(t, os.Symlink(filepath.Join(src, "gone.cfg"), filepath.Join(dir, "gone.cfg")))

	names, err := List(dir, requiredExts)
	require.NoError(t, err, "dangling links are skipped")
	assert.Equal(t, []string{"night"}, names)
}

func TestListEmptyAndMissingDir(t *testing.T) {
	dir := t.TempDir()

	names, err := List(dir, requiredExts)
	require.NoError(t, err)
	assert.Empty(t, names)

	_, err = List(filepath.Join(dir, "none"), requiredExts)
	assert.True(t, apperr.Is(err, apperr.KindNotFound), "got %v", err)
	assert.Contains(t, err.Error(), "The schemes dir does not exist")
}

func TestLoadCatalog(t *testing.T) {
	dir := t.TempDir()

	c, err := LoadCatalog(dir)
	require.NoError(t, err)
	assert.Empty(t, c)

	testutils.WriteFile(t, dir, "schemes.yaml", "night:\n  description: Deep blue\n  author: someone\n  dark: true\n")
	c, err = LoadCatalog(dir)
	require.NoError(t, err)
	assert.Equal(t, "Deep blue", c.Describe("night"))
	assert.True(t, c["night"].Dark)
	assert.Equal(t, "", c.Describe("day"))

	testutils.WriteFile(t, dir, "schemes.yaml", "night: [unclosed\n")
	_, err = LoadCatalog(dir)
	assert.True(t, apperr.Is(err, apperr.KindParse), "got %v", err)
}
