// Package format reads and writes the three Double Commander configuration
// formats as generic documents, independent of any theming rules.
//
//   - cfg:  line-oriented key=value pairs (doublecmd.cfg)
//   - json: hand-edited, not always strict JSON (colors.json)
//   - xml:  an element tree (doublecmd.xml)
//
// Readers return *apperr.Error values of kind KindIO or KindParse.
package format
