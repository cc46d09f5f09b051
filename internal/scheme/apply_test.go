package scheme

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"DCThemer/internal/apperr"
	"DCThemer/internal/format"
	"DCThemer/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyCfgDarkMode(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		override bool
		want     string
	}{
		{"source value", sourceCfg, false, "SplashForm=0\nDarkMode=2\nLanguage=en\n"},
		{"override", sourceCfg, true, "SplashForm=0\nDarkMode=1\nLanguage=en\n"},
		{"override without source value", "SplashForm=-1\n", true, "SplashForm=0\nDarkMode=1\nLanguage=en\n"},
		{"verbatim value", "DarkMode=auto\n", false, "SplashForm=0\nDarkMode=auto\nLanguage=en\n"},
	}

	var cases []testutils.TestCase
	for _, tt := range tests {
		f := newFixture(t, map[string]string{"schemes/night.cfg": tt.source})
		f.opts.DarkMode = tt.override

		err := New(f.opts).ApplyCfg(context.Background())
		require.NoError(t, err, tt.name)

		got := testutils.ReadFile(t, f.opts.Targets.CFG)
		cases = append(cases, testutils.TestCase{
			Name:     tt.name,
			Input:    tt.source,
			Expected: tt.want,
			Actual:   got,
			Pass:     got == tt.want,
		})
	}
	testutils.PrintTestTable(t, cases)
}

func TestApplyCfgAppendsMissingKey(t *testing.T) {
	f := newFixture(t, map[string]string{"dc/doublecmd.cfg": "SplashForm=0\n"})

	require.NoError(t, New(f.opts).ApplyCfg(context.Background()))
	assert.Equal(t, "SplashForm=0\nDarkMode=2\n", testutils.ReadFile(t, f.opts.Targets.CFG))
}

func TestApplyCfgSourceWithoutDarkMode(t *testing.T) {
	f := newFixture(t, map[string]string{"schemes/night.cfg": "SplashForm=-1\n"})

	err := New(f.opts).ApplyCfg(context.Background())
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindPrecondition), "got %v", err)
	assert.Equal(t, targetCfg, testutils.ReadFile(t, f.opts.Targets.CFG))
}

func TestApplyCfgRepeatedRoundTrip(t *testing.T) {
	f := newFixture(t, nil)
	s := New(f.opts)

	require.NoError(t, s.ApplyCfg(context.Background()))
	first := testutils.ReadFile(t, f.opts.Targets.CFG)
	require.NoError(t, s.ApplyCfg(context.Background()))
	assert.Equal(t, first, testutils.ReadFile(t, f.opts.Targets.CFG))
}

func TestApplyJSONReplacesMatchingStyle(t *testing.T) {
	f := newFixture(t, nil)

	require.NoError(t, New(f.opts).ApplyJSON(context.Background()))

	source, err := format.ReadJSON(filepath.Join(f.schemeDir, "night.json"))
	require.NoError(t, err)
	got, err := format.ReadJSON(f.opts.Targets.JSON)
	require.NoError(t, err)

	assert.JSONEq(t, source.Get("Styles.0").Raw, got.Get("Styles.1").Raw)
	assert.JSONEq(t, source.Get("FileColors").Raw, got.Get("FileColors").Raw)
	assert.Equal(t, "Light", got.Get("Styles.0.Name").String())
	assert.Equal(t, int64(1), got.Get("Styles.0.Log.InfoColor").Int(), "other styles are untouched")
	assert.True(t, got.Get("Extra.keep").Bool(), "unknown fields survive")
}

func TestApplyJSONWithoutMatchingStyle(t *testing.T) {
	target := `{"Styles":[{"Name":"Light","Log":{"InfoColor":1}}],"FileColors":[{"Name":"old"}]}`
	f := newFixture(t, map[string]string{"dc/colors.json": target})

	require.NoError(t, New(f.opts).ApplyJSON(context.Background()))

	got, err := format.ReadJSON(f.opts.Targets.JSON)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"Name":"Light","Log":{"InfoColor":1}}]`, got.Get("Styles").Raw)
	assert.Equal(t, "json", got.Get("FileColors.0.Name").String())
	assert.Len(t, got.Get("FileColors").Array(), 1)
}

func TestApplyJSONEmptySourceFileColors(t *testing.T) {
	f := newFixture(t, map[string]string{
		"schemes/night.json": `{"Styles":[{"Name":"Dark"}],"FileColors":[]}`,
		"dc/colors.json":     `{"Styles":[],"FileColors":[{"Name":"a"},{"Name":"b"}]}`,
	})

	require.NoError(t, New(f.opts).ApplyJSON(context.Background()))

	got, err := format.ReadJSON(f.opts.Targets.JSON)
	require.NoError(t, err)
	assert.Empty(t, got.Get("FileColors").Array())
}

func TestApplyJSONPreconditions(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{"no styles", `{"Styles":[],"FileColors":[]}`},
		{"two styles", `{"Styles":[{"Name":"Dark"},{"Name":"Light"}],"FileColors":[]}`},
		{"no file colors", `{"Styles":[{"Name":"Dark"}]}`},
		{"wrong shape", `{"Styles":"Dark","FileColors":[]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, map[string]string{"schemes/night.json": tt.source})
			f.opts.Backup = true

			err := New(f.opts).ApplyJSON(context.Background())
			require.Error(t, err)
			assert.True(t, apperr.Is(err, apperr.KindPrecondition), "got %v", err)
			assert.Equal(t, targetJSON, testutils.ReadFile(t, f.opts.Targets.JSON))
			assert.NoFileExists(t, f.opts.Targets.JSON+".backup")
		})
	}
}

func TestApplyXMLReplacesTags(t *testing.T) {
	f := newFixture(t, nil)

	require.NoError(t, New(f.opts).ApplyXML(context.Background()))

	src := filepath.Join(f.schemeDir, "night.xml")
	for _, tag := range f.opts.XMLTags {
		assert.Equal(t, canonicalElement(t, src, tag), canonicalElement(t, f.opts.Targets.XML, tag), tag)
	}
	assert.NotEmpty(t, canonicalElement(t, f.opts.Targets.XML, "Behaviours"), "untouched tags are kept")

	out := testutils.ReadFile(t, f.opts.Targets.XML)
	assert.Contains(t, out, `ConfigVersion="14"`, "root attributes come from the target")
	assert.NotContains(t, out, "\n\n")
}

func TestApplyXMLAppendsTagMissingInTarget(t *testing.T) {
	f := newFixture(t, map[string]string{"dc/doublecmd.xml": targetXMLNoColors})
	f.opts.XMLTags = []string{"Colors"}

	require.NoError(t, New(f.opts).ApplyXML(context.Background()))

	src := filepath.Join(f.schemeDir, "night.xml")
	assert.Equal(t, canonicalElement(t, src, "Colors"), canonicalElement(t, f.opts.Targets.XML, "Colors"))
	assert.Contains(t, canonicalElement(t, f.opts.Targets.XML, "Fonts"), "Consolas")
}

func TestApplyXMLMissingSourceTagKeepsEarlierTags(t *testing.T) {
	f := newFixture(t, nil)
	f.opts.XMLTags = []string{"Fonts", "Layout", "Colors"}

	err := New(f.opts).ApplyXML(context.Background())
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindMissingTag), "got %v", err)
	assert.Contains(t, err.Error(), "Layout")

	src := filepath.Join(f.schemeDir, "night.xml")
	assert.Equal(t, canonicalElement(t, src, "Fonts"), canonicalElement(t, f.opts.Targets.XML, "Fonts"), "earlier tag committed")
	assert.Contains(t, canonicalElement(t, f.opts.Targets.XML, "Colors"), "<UseCursorBorder>False</UseCursorBorder>", "later tag untouched")
}

func TestApplyBackupHoldsPreApplyContent(t *testing.T) {
	f := newFixture(t, nil)
	f.opts.Backup = true

	targets := []string{f.opts.Targets.CFG, f.opts.Targets.JSON, f.opts.Targets.XML}
	before := make(map[string]string)
	for _, p := range targets {
		before[p] = testutils.ReadFile(t, p)
	}

	require.NoError(t, New(f.opts).Apply(context.Background()))

	for _, p := range targets {
		assert.Equal(t, before[p], testutils.ReadFile(t, p+".backup"), p)
		assert.NotEqual(t, before[p], testutils.ReadFile(t, p), p)
	}
}

func TestApplyWithoutBackup(t *testing.T) {
	f := newFixture(t, nil)

	require.NoError(t, New(f.opts).Apply(context.Background()))

	for _, p := range []string{f.opts.Targets.CFG, f.opts.Targets.JSON, f.opts.Targets.XML} {
		assert.NoFileExists(t, p+".backup")
	}
}

func TestApplyMissingFiles(t *testing.T) {
	f := newFixture(t, nil)
	require.NoError(t, os.Remove(f.opts.Targets.JSON))

	err := New(f.opts).Apply(context.Background())
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindNotFound), "got %v", err)
	assert.Contains(t, testutils.ReadFile(t, f.opts.Targets.CFG), "DarkMode=2", "cfg ran before json failed")

	f = newFixture(t, nil)
	f.opts.Name = "absent"
	err = New(f.opts).Apply(context.Background())
	assert.True(t, apperr.Is(err, apperr.KindNotFound), "got %v", err)
}
