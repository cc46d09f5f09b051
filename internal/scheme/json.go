package scheme

import (
	"context"
	"fmt"

	"DCThemer/internal/apperr"
	"DCThemer/internal/constants"
	"DCThemer/internal/format"
	"DCThemer/internal/logger"
)

// ApplyJSON replaces the target style named like the scheme's only style and
// the whole FileColors list in colors.json.
func (s *Scheme) ApplyJSON(ctx context.Context) error {
	src, dst, err := s.paths(constants.ExtJSON, s.opts.Targets.JSON)
	if err != nil {
		return err
	}
	source, err := format.ReadJSON(src)
	if err != nil {
		return err
	}
	current, err := format.ReadJSON(dst)
	if err != nil {
		return err
	}

	merged, replaced, err := mergeJSON(source, current)
	if err != nil {
		return apperr.Wrap(apperr.KindPrecondition, err, src, "The json scheme cannot be applied")
	}

	if err := s.backup(ctx, dst); err != nil {
		return err
	}
	if err := format.WriteJSON(merged, dst); err != nil {
		return err
	}
	if replaced == "" {
		logger.Info(ctx, "No matching style in '{{_File_}}%s{{|-|}}', only file colors replaced", dst)
	} else {
		logger.Info(ctx, "Replaced style '{{_Scheme_}}%s{{|-|}}' and file colors in '{{_File_}}%s{{|-|}}'", replaced, dst)
	}
	return nil
}

// mergeJSON returns a copy of target with the first style whose Name equals
// the source style's replaced, and FileColors replaced by the source list.
// The returned name is empty when no style matched.
func mergeJSON(source, target *format.JSONDocument) (*format.JSONDocument, string, error) {
	palette, err := source.Palette()
	if err != nil {
		return nil, "", fmt.Errorf("unexpected colour layout: %w", err)
	}
	if n := len(palette.Styles); n != 1 {
		return nil, "", apperr.New(apperr.KindPrecondition, "", "The scheme must define exactly one style, found %d", n)
	}
	fileColors := source.Get(constants.FileColorsKey)
	if !fileColors.IsArray() {
		return nil, "", apperr.New(apperr.KindPrecondition, "", "The scheme does not define %s", constants.FileColorsKey)
	}

	name := palette.Styles[0].Name
	style := source.Get(constants.StylesKey + ".0")

	out := target.Clone()
	replaced := ""
	for i, st := range target.Get(constants.StylesKey).Array() {
		if n := st.Get(constants.StyleNameKey); n.Exists() && n.String() == name {
			if err := out.SetRaw(fmt.Sprintf("%s.%d", constants.StylesKey, i), style.Raw); err != nil {
				return nil, "", err
			}
			replaced = name
			break
		}
	}

	if err := out.SetRaw(constants.FileColorsKey, fileColors.Raw); err != nil {
		return nil, "", err
	}
	return out, replaced, nil
}
