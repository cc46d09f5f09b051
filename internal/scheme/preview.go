package scheme

import (
	"context"
	"os"

	"DCThemer/internal/apperr"
	"DCThemer/internal/constants"
	"DCThemer/internal/format"
	"DCThemer/internal/logger"
)

// Change is the content a target has now and the content Apply would write.
type Change struct {
	Format string
	Path   string
	Before string
	After  string
}

// Changed reports whether applying would modify the file.
func (c Change) Changed() bool { return c.Before != c.After }

// Preview computes the result of Apply for every format without writing
// anything, in cfg, json, xml order.
func (s *Scheme) Preview(ctx context.Context) ([]Change, error) {
	logger.Debug(ctx, "Previewing scheme '{{_Scheme_}}%s{{|-|}}'", s.opts.Name)
	var changes []Change

	c, err := s.previewCfg()
	if err != nil {
		return nil, err
	}
	changes = append(changes, c)

	if c, err = s.previewJSON(); err != nil {
		return nil, err
	}
	changes = append(changes, c)

	if c, err = s.previewXML(); err != nil {
		return nil, err
	}
	return append(changes, c), nil
}

func (s *Scheme) previewCfg() (Change, error) {
	src, dst, err := s.paths(constants.ExtCFG, s.opts.Targets.CFG)
	if err != nil {
		return Change{}, err
	}
	source, err := format.ReadCfg(src)
	if err != nil {
		return Change{}, err
	}
	current, err := format.ReadCfg(dst)
	if err != nil {
		return Change{}, err
	}
	merged, err := mergeCfg(source, current, s.opts.DarkMode)
	if err != nil {
		return Change{}, apperr.Wrap(apperr.KindPrecondition, err, src, "The cfg scheme cannot be applied")
	}
	return newChange(constants.ExtCFG, dst, merged.String())
}

func (s *Scheme) previewJSON() (Change, error) {
	src, dst, err := s.paths(constants.ExtJSON, s.opts.Targets.JSON)
	if err != nil {
		return Change{}, err
	}
	source, err := format.ReadJSON(src)
	if err != nil {
		return Change{}, err
	}
	current, err := format.ReadJSON(dst)
	if err != nil {
		return Change{}, err
	}
	merged, _, err := mergeJSON(source, current)
	if err != nil {
		return Change{}, apperr.Wrap(apperr.KindPrecondition, err, src, "The json scheme cannot be applied")
	}
	return newChange(constants.ExtJSON, dst, string(merged.Bytes()))
}

// previewXML merges every tag into one in-memory tree. The source is read
// once since Apply would read the same file for each tag.
func (s *Scheme) previewXML() (Change, error) {
	src, dst, err := s.paths(constants.ExtXML, s.opts.Targets.XML)
	if err != nil {
		return Change{}, err
	}
	if len(s.opts.XMLTags) == 0 {
		return newChange(constants.ExtXML, dst, "")
	}

	source, err := format.ReadXML(src)
	if err != nil {
		return Change{}, err
	}
	current, err := format.ReadXML(dst)
	if err != nil {
		return Change{}, err
	}
	for _, tag := range s.opts.XMLTags {
		if err := mergeXMLTag(source, current, tag); err != nil {
			return Change{}, apperr.Wrap(apperr.KindMissingTag, err, src, "The xml scheme cannot be applied")
		}
	}
	text, err := format.MarshalXML(current.Root())
	if err != nil {
		return Change{}, apperr.Wrap(apperr.KindIO, err, dst, "Failed to serialise xml configuration")
	}
	return newChange(constants.ExtXML, dst, text)
}

// newChange reads the current content of path. An empty after means the
// file would not be touched.
func newChange(kind, path, after string) (Change, error) {
	before, err := os.ReadFile(path)
	if err != nil {
		return Change{}, apperr.Wrap(apperr.KindIO, err, path, "Failed to read configuration file")
	}
	if after == "" {
		after = string(before)
	}
	return Change{Format: kind, Path: path, Before: string(before), After: after}, nil
}
