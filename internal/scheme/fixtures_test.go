package scheme

import (
	"path/filepath"
	"testing"

	"DCThemer/internal/testutils"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/require"
)

const (
	sourceCfg = "SplashForm=-1\nDarkMode=2\n"
	targetCfg = "SplashForm=0\nDarkMode=3\nLanguage=en\n"

	sourceJSON = `{
  Styles: [
    {Name: "Dark", Log: {InfoColor: 1234567, ErrorColor: 255, SuccessColor: 65280}}
  ],
  FileColors: [
    {Name: "json", Masks: "*.json", Colors: [0, 65280], Attributes: ""}
  ]
}`
	targetJSON = `{
  "Styles": [
    {"Name": "Light", "Log": {"InfoColor": 1, "ErrorColor": 2, "SuccessColor": 3}},
    {"Name": "Dark", "Log": {"InfoColor": 7654321, "ErrorColor": 4, "SuccessColor": 5}}
  ],
  "FileColors": [],
  "Extra": {"keep": true}
}`

	sourceXML = `<?xml version="1.0" encoding="UTF-8"?>
<doublecmd DCVersion="1.1.16 gamma" ConfigVersion="15">
  <Fonts>
    <Main>
      <Name>default</Name>
      <Size>10</Size>
      <Style>0</Style>
      <Quality>0</Quality>
    </Main>
  </Fonts>
  <Colors>
    <UseCursorBorder>True</UseCursorBorder>
    <UseFrameCursor>False</UseFrameCursor>
  </Colors>
</doublecmd>
`
	targetXML = `<?xml version="1.0" encoding="UTF-8"?>
<doublecmd DCVersion="1.1.15" ConfigVersion="14">
  <Behaviours>
    <GoToRoot>False</GoToRoot>
  </Behaviours>
  <Fonts>
    <Main>
      <Name>Consolas</Name>
      <Size>12</Size>
      <Style>1</Style>
      <Quality>2</Quality>
    </Main>
  </Fonts>
  <Colors>
    <UseCursorBorder>False</UseCursorBorder>
    <UseFrameCursor>True</UseFrameCursor>
  </Colors>
</doublecmd>
`
	// targetXMLNoColors lacks the Colors tag entirely.
	targetXMLNoColors = `<?xml version="1.0" encoding="UTF-8"?>
<doublecmd DCVersion="1.1.15" ConfigVersion="14">
  <Fonts>
    <Main>
      <Name>Consolas</Name>
    </Main>
  </Fonts>
</doublecmd>
`
)

type fixture struct {
	opts      Options
	schemeDir string
}

// newFixture lays out a "night" scheme and a set of live targets in a temp
// dir. Entries in files replace the default contents.
func newFixture(t *testing.T, files map[string]string) fixture {
	t.Helper()
	content := map[string]string{
		"schemes/night.cfg":  sourceCfg,
		"schemes/night.json": sourceJSON,
		"schemes/night.xml":  sourceXML,
		"dc/doublecmd.cfg":   targetCfg,
		"dc/colors.json":     targetJSON,
		"dc/doublecmd.xml":   targetXML,
	}
	for k, v := range files {
		content[k] = v
	}

	root := t.TempDir()
	for name, data := range content {
		testutils.WriteFile(t, root, name, data)
	}

	return fixture{
		schemeDir: filepath.Join(root, "schemes"),
		opts: Options{
			Name: "night",
			Dir:  filepath.Join(root, "schemes"),
			Targets: Targets{
				CFG:  filepath.Join(root, "dc", "doublecmd.cfg"),
				JSON: filepath.Join(root, "dc", "colors.json"),
				XML:  filepath.Join(root, "dc", "doublecmd.xml"),
			},
			XMLTags: []string{"Colors", "Fonts"},
		},
	}
}

// canonicalElement renders the named root child without indentation.
func canonicalElement(t *testing.T, path, tag string) string {
	t.Helper()
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromFile(path))
	el := doc.Root().SelectElement(tag)
	if el == nil {
		return ""
	}
	out := etree.NewDocument()
	out.SetRoot(el.Copy())
	out.Indent(etree.NoIndent)
	s, err := out.WriteToString()
	require.NoError(t, err)
	return s
}
