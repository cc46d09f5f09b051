package scheme

import (
	"context"

	"DCThemer/internal/apperr"
	"DCThemer/internal/constants"
	"DCThemer/internal/format"
	"DCThemer/internal/logger"
)

// ApplyCfg sets DarkMode in doublecmd.cfg.
func (s *Scheme) ApplyCfg(ctx context.Context) error {
	src, dst, err := s.paths(constants.ExtCFG, s.opts.Targets.CFG)
	if err != nil {
		return err
	}
	source, err := format.ReadCfg(src)
	if err != nil {
		return err
	}
	current, err := format.ReadCfg(dst)
	if err != nil {
		return err
	}

	merged, err := mergeCfg(source, current, s.opts.DarkMode)
	if err != nil {
		return apperr.Wrap(apperr.KindPrecondition, err, src, "The cfg scheme cannot be applied")
	}

	if err := s.backup(ctx, dst); err != nil {
		return err
	}
	if err := format.WriteCfg(merged, dst); err != nil {
		return err
	}
	v, _ := merged.Get(constants.DarkModeKey)
	logger.Info(ctx, "Set {{_Var_}}%s{{|-|}}=%s in '{{_File_}}%s{{|-|}}'", constants.DarkModeKey, v, dst)
	return nil
}

// mergeCfg returns a copy of target with DarkMode taken from source, or
// forced to "1".
func mergeCfg(source, target *format.CfgDocument, forceDark bool) (*format.CfgDocument, error) {
	value := constants.DarkModeForced
	if !forceDark {
		v, ok := source.Get(constants.DarkModeKey)
		if !ok {
			return nil, apperr.New(apperr.KindPrecondition, "", "The scheme does not define %s", constants.DarkModeKey)
		}
		value = v
	}
	out := target.Clone()
	out.Set(constants.DarkModeKey, value)
	return out, nil
}
