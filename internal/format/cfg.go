package format

import (
	"os"
	"strings"

	"DCThemer/internal/apperr"

	"gopkg.in/ini.v1"
)

// CfgDocument is an ordered key/value mapping read from a cfg file.
// Keys keep the order in which they first appeared.
type CfgDocument struct {
	keys   []string
	values map[string]string
}

// NewCfgDocument returns an empty document.
func NewCfgDocument() *CfgDocument {
	return &CfgDocument{values: make(map[string]string)}
}

// Get returns the value of key and whether it exists.
func (d *CfgDocument) Get(key string) (string, bool) {
	v, ok := d.values[key]
	return v, ok
}

// Set replaces the value of key in place, or appends the key when new.
func (d *CfgDocument) Set(key, value string) {
	if _, ok := d.values[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.values[key] = value
}

// Keys returns the keys in document order.
func (d *CfgDocument) Keys() []string {
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

// Len returns the number of keys.
func (d *CfgDocument) Len() int { return len(d.keys) }

// Clone returns an independent copy.
func (d *CfgDocument) Clone() *CfgDocument {
	c := NewCfgDocument()
	for _, k := range d.keys {
		c.Set(k, d.values[k])
	}
	return c
}

// String renders the document the way WriteCfg stores it.
func (d *CfgDocument) String() string {
	var b strings.Builder
	for _, k := range d.keys {
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(d.values[k])
		b.WriteByte('\n')
	}
	return b.String()
}

// ReadCfg parses a flat key=value file. Named sections are rejected because
// WriteCfg could not store them back.
func ReadCfg(path string) (*CfgDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindIO, err, path, "Failed to read cfg configuration")
	}
	return ParseCfg(path, data)
}

// ParseCfg parses cfg content; name is only used in error messages.
func ParseCfg(name string, data []byte) (*CfgDocument, error) {
	f, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment:     true,
		IgnoreContinuation:      true,
		PreserveSurroundedQuote: true,
		KeyValueDelimiters:      "=",
	}, data)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindParse, err, name, "Failed to parse cfg configuration")
	}

	for _, sec := range f.Sections() {
		if sec.Name() != ini.DefaultSection {
			return nil, apperr.New(apperr.KindParse, name, "Unsupported section [%s] in cfg configuration", sec.Name())
		}
	}

	doc := NewCfgDocument()
	for _, key := range f.Section(ini.DefaultSection).Keys() {
		doc.Set(key.Name(), key.Value())
	}
	return doc, nil
}

// WriteCfg writes one key=value line per key, overwriting path.
func WriteCfg(doc *CfgDocument, path string) error {
	if err := os.WriteFile(path, []byte(doc.String()), 0644); err != nil {
		return apperr.Wrap(apperr.KindIO, err, path, "Failed to write cfg configuration")
	}
	return nil
}
