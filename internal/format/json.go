package format

import (
	"encoding/json"
	"fmt"
	"os"

	"DCThemer/internal/apperr"

	"github.com/kaptinlin/jsonrepair"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// LogColors is the log panel palette of a style.
type LogColors struct {
	InfoColor    int64 `json:"InfoColor"`
	ErrorColor   int64 `json:"ErrorColor"`
	SuccessColor int64 `json:"SuccessColor"`
}

// Style is one entry of the Styles array of colors.json. Name is the lookup key.
type Style struct {
	Name string     `json:"Name"`
	Log  *LogColors `json:"Log,omitempty"`
}

// FileColor is one file-type colouring rule.
type FileColor struct {
	Name       string  `json:"Name"`
	Masks      string  `json:"Masks"`
	Colors     []int64 `json:"Colors"`
	Attributes string  `json:"Attributes"`
}

// Palette is the typed view of the fields the theming rules care about.
type Palette struct {
	Styles     []Style     `json:"Styles"`
	FileColors []FileColor `json:"FileColors"`
}

// JSONDocument holds the repaired text of a colors.json file. Edits are made
// on the text by path, so fields without a typed counterpart survive as is.
type JSONDocument struct {
	raw []byte
}

// jsonIndent is the layout used when a document is written back.
var jsonIndent = &pretty.Options{
	Width:    0, // never fold arrays onto one line
	Prefix:   "",
	Indent:   "  ",
	SortKeys: false,
}

// ReadJSON reads path and repairs non-strict JSON (unquoted keys, trailing
// commas, single quotes) before parsing it.
func ReadJSON(path string) (*JSONDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindIO, err, path, "Failed to read json configuration")
	}
	return ParseJSON(path, data)
}

// ParseJSON repairs and validates data; name is only used in error messages.
// The top-level value must be an object.
func ParseJSON(name string, data []byte) (*JSONDocument, error) {
	repaired, err := jsonrepair.JSONRepair(string(data))
	if err != nil {
		return nil, apperr.Wrap(apperr.KindParse, err, name, "Failed to parse json configuration")
	}
	if !gjson.Valid(repaired) || !gjson.Parse(repaired).IsObject() {
		return nil, apperr.New(apperr.KindParse, name, "The configuration file does not contain valid json object data")
	}
	return &JSONDocument{raw: []byte(repaired)}, nil
}

// Get returns the value at a gjson path.
func (d *JSONDocument) Get(path string) gjson.Result {
	return gjson.GetBytes(d.raw, path)
}

// SetRaw replaces (or creates) the value at path with raw JSON.
func (d *JSONDocument) SetRaw(path, raw string) error {
	out, err := sjson.SetRawBytes(d.raw, path, []byte(raw))
	if err != nil {
		return fmt.Errorf("set %s: %w", path, err)
	}
	d.raw = out
	return nil
}

// Palette decodes the typed view of the document.
func (d *JSONDocument) Palette() (Palette, error) {
	var p Palette
	if err := json.Unmarshal(d.raw, &p); err != nil {
		return Palette{}, err
	}
	return p, nil
}

// Bytes returns the document with 2-space indentation, key order kept and
// non-ASCII characters left unescaped.
func (d *JSONDocument) Bytes() []byte {
	return pretty.PrettyOptions(d.raw, jsonIndent)
}

// Clone returns an independent copy.
func (d *JSONDocument) Clone() *JSONDocument {
	raw := make([]byte, len(d.raw))
	copy(raw, d.raw)
	return &JSONDocument{raw: raw}
}

// WriteJSON writes the indented document to path.
func WriteJSON(doc *JSONDocument, path string) error {
	if err := os.WriteFile(path, doc.Bytes(), 0644); err != nil {
		return apperr.Wrap(apperr.KindIO, err, path, "Failed to write json configuration")
	}
	return nil
}
