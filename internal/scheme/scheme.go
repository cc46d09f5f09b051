// Package scheme merges a named colour scheme into the live Double Commander
// configuration.
//
// A scheme is a set of files sharing a base name in the schemes directory,
// one per format: <name>.cfg, <name>.json and <name>.xml. Each format has a
// fixed merge policy:
//
//   - cfg:  only DarkMode is replaced
//   - json: the matching style and the whole FileColors list are replaced
//   - xml:  each configured direct child of the root is replaced
//
// Everything else in the targets is left as it was.
package scheme

import (
	"context"
	"os"
	"path/filepath"

	"DCThemer/internal/apperr"
	"DCThemer/internal/logger"
	"DCThemer/internal/target"
)

// Targets holds the path templates of the live configuration files.
type Targets struct {
	CFG  string
	JSON string
	XML  string
}

// Options fully describes one merge run.
type Options struct {
	// Name is the scheme base name.
	Name string
	// Dir is the schemes directory.
	Dir     string
	Targets Targets
	// Backup copies each target to <target>.backup before it is written.
	Backup bool
	// DarkMode forces DarkMode=1 instead of the scheme's own value.
	DarkMode bool
	// XMLTags are the root children replaced in doublecmd.xml, in order.
	XMLTags []string
}

// Scheme applies one scheme. It keeps no state between calls.
type Scheme struct {
	opts Options
}

// New returns a Scheme for opts.
func New(opts Options) *Scheme {
	return &Scheme{opts: opts}
}

// Apply merges cfg, json and xml in that order. A failure stops the run;
// formats already written stay written.
func (s *Scheme) Apply(ctx context.Context) error {
	logger.Info(ctx, "Applying scheme '{{_Scheme_}}%s{{|-|}}'", s.opts.Name)
	if err := s.ApplyCfg(ctx); err != nil {
		return err
	}
	if err := s.ApplyJSON(ctx); err != nil {
		return err
	}
	return s.ApplyXML(ctx)
}

// sourcePath returns the scheme file for ext and checks that it exists.
func (s *Scheme) sourcePath(ext string) (string, error) {
	path := filepath.Join(s.opts.Dir, s.opts.Name+"."+ext)
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		if err == nil {
			err = os.ErrNotExist
		}
		return "", apperr.Wrap(apperr.KindNotFound, err, path, "Scheme file does not exist")
	}
	return path, nil
}

// paths returns the source and resolved target for one format.
func (s *Scheme) paths(ext, tmpl string) (string, string, error) {
	src, err := s.sourcePath(ext)
	if err != nil {
		return "", "", err
	}
	dst, err := target.Resolve(tmpl)
	if err != nil {
		return "", "", err
	}
	return src, dst, nil
}

func (s *Scheme) backup(ctx context.Context, path string) error {
	if !s.opts.Backup {
		return nil
	}
	dst, err := target.Backup(path)
	if err != nil {
		return err
	}
	logger.Debug(ctx, "Backed up '{{_File_}}%s{{|-|}}' to '{{_File_}}%s{{|-|}}'", path, dst)
	return nil
}
