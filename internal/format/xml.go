package format

import (
	"os"
	"strings"

	"DCThemer/internal/apperr"

	"github.com/beevik/etree"
)

// xmlDeclaration is written in front of every serialised document.
const xmlDeclaration = `version="1.0" encoding="UTF-8"`

// ReadXML parses path into an element tree. Scheme files may come from
// anywhere, so parsing is strict: undefined entities are errors, external
// entities are never resolved and DTD entity declarations are refused.
func ReadXML(path string) (*etree.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindIO, err, path, "Failed to read xml configuration")
	}
	return ParseXML(path, data)
}

// ParseXML parses data; name is only used in error messages.
func ParseXML(name string, data []byte) (*etree.Document, error) {
	doc := etree.NewDocument()
	doc.ReadSettings = etree.ReadSettings{Permissive: false}
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, apperr.Wrap(apperr.KindParse, err, name, "Failed to parse xml configuration")
	}

	for _, tok := range doc.Child {
		if d, ok := tok.(*etree.Directive); ok && strings.Contains(strings.ToUpper(d.Data), "<!ENTITY") {
			return nil, apperr.New(apperr.KindParse, name, "Entity declarations are not allowed in xml configuration")
		}
	}
	if doc.Root() == nil {
		return nil, apperr.New(apperr.KindParse, name, "The xml configuration has no root element")
	}
	return doc, nil
}

// MarshalXML serialises root as a standalone document: XML declaration,
// 2-space indentation, no blank lines. Text only escapes &, < and >, and
// attribute values only &, < and ", so quotes in untouched text stay as
// Double Commander wrote them.
func MarshalXML(root *etree.Element) (string, error) {
	out := etree.NewDocument()
	out.WriteSettings.CanonicalText = true
	out.WriteSettings.CanonicalAttrVal = true
	out.CreateProcInst("xml", xmlDeclaration)
	out.SetRoot(root.Copy())
	out.Indent(2)

	text, err := out.WriteToString()
	if err != nil {
		return "", err
	}
	return stripBlankLines(text), nil
}

func stripBlankLines(text string) string {
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

// WriteXMLText writes already serialised XML verbatim.
func WriteXMLText(text, path string) error {
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return apperr.Wrap(apperr.KindIO, err, path, "Failed to write xml configuration")
	}
	return nil
}
