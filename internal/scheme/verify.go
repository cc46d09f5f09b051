package scheme

import (
	"context"
	"fmt"

	"DCThemer/internal/constants"
	"DCThemer/internal/format"
	"DCThemer/internal/logger"

	"github.com/Masterminds/semver/v3"
	"github.com/beevik/etree"
)

// VersionWarning reports that the scheme and the live doublecmd.xml were
// written by different configuration versions. It is advisory only.
type VersionWarning struct {
	// Source and Target are nil when the root has no ConfigVersion.
	Source *string
	Target *string
	// Newer is +1 when the scheme is newer than the target, -1 when older and
	// 0 when the two values cannot be compared.
	Newer int
}

func (w *VersionWarning) String() string {
	return fmt.Sprintf("XML configuration scheme version mismatch:\n\n"+
		"Source scheme: %s\n"+
		"Target scheme: %s\n\n"+
		"The apply process will continue.\n"+
		"In case of any issues, please verify your configuration files.",
		versionText(w.Source), versionText(w.Target))
}

func versionText(v *string) string {
	if v == nil {
		return "none"
	}
	return *v
}

// Verify runs every pre-apply check. Only the xml version is checked today.
func (s *Scheme) Verify(ctx context.Context) (*VersionWarning, error) {
	return s.VerifyXMLVersion(ctx)
}

// VerifyXMLVersion compares the ConfigVersion attribute of both xml roots.
func (s *Scheme) VerifyXMLVersion(ctx context.Context) (*VersionWarning, error) {
	src, dst, err := s.paths(constants.ExtXML, s.opts.Targets.XML)
	if err != nil {
		return nil, err
	}
	source, err := format.ReadXML(src)
	if err != nil {
		return nil, err
	}
	current, err := format.ReadXML(dst)
	if err != nil {
		return nil, err
	}

	sv := configVersion(source)
	w := compareVersions(sv, configVersion(current))
	if w == nil {
		logger.Debug(ctx, "XML configuration version matches: %s", versionText(sv))
	}
	return w, nil
}

func configVersion(doc *etree.Document) *string {
	attr := doc.Root().SelectAttr(constants.XMLConfigVersionKey)
	if attr == nil {
		return nil
	}
	v := attr.Value
	return &v
}

// compareVersions returns nil when both values are equal (or both absent).
func compareVersions(source, target *string) *VersionWarning {
	switch {
	case source == nil && target == nil:
		return nil
	case source != nil && target != nil && *source == *target:
		return nil
	}

	w := &VersionWarning{Source: source, Target: target}
	if source != nil && target != nil {
		sv, err1 := semver.NewVersion(*source)
		tv, err2 := semver.NewVersion(*target)
		if err1 == nil && err2 == nil {
			w.Newer = sv.Compare(tv)
		}
	}
	return w
}
