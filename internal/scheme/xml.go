package scheme

import (
	"context"

	"DCThemer/internal/apperr"
	"DCThemer/internal/constants"
	"DCThemer/internal/format"
	"DCThemer/internal/logger"

	"github.com/beevik/etree"
)

// ApplyXML replaces each configured tag of doublecmd.xml with the scheme's.
// Tags are processed one at a time, each with its own read and write, so a
// missing tag leaves the earlier ones committed.
func (s *Scheme) ApplyXML(ctx context.Context) error {
	src, dst, err := s.paths(constants.ExtXML, s.opts.Targets.XML)
	if err != nil {
		return err
	}
	if err := s.backup(ctx, dst); err != nil {
		return err
	}

	for _, tag := range s.opts.XMLTags {
		source, err := format.ReadXML(src)
		if err != nil {
			return err
		}
		current, err := format.ReadXML(dst)
		if err != nil {
			return err
		}

		if err := mergeXMLTag(source, current, tag); err != nil {
			return apperr.Wrap(apperr.KindMissingTag, err, src, "The xml scheme cannot be applied")
		}

		text, err := format.MarshalXML(current.Root())
		if err != nil {
			return apperr.Wrap(apperr.KindIO, err, dst, "Failed to serialise xml configuration")
		}
		if err := format.WriteXMLText(text, dst); err != nil {
			return err
		}
		logger.Debug(ctx, "Replaced <{{_Tag_}}%s{{|-|}}> in '{{_File_}}%s{{|-|}}'", tag, dst)
	}
	logger.Info(ctx, "Replaced %d xml tag(s) in '{{_File_}}%s{{|-|}}'", len(s.opts.XMLTags), dst)
	return nil
}

// mergeXMLTag moves a copy of source's root child tag to the end of target's
// root, dropping target's own child of that name first.
func mergeXMLTag(source, target *etree.Document, tag string) error {
	el := source.Root().SelectElement(tag)
	if el == nil {
		return apperr.New(apperr.KindMissingTag, "", "Tag '%s' does not exist in the source xml configuration data", tag)
	}
	root := target.Root()
	if old := root.SelectElement(tag); old != nil {
		root.RemoveChild(old)
	}
	root.AddChild(el.Copy())
	return nil
}
