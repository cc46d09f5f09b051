// Package strutil provides width-aware string helpers for terminal output.
package strutil

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Ellipsis marks text cut by Limit.
const Ellipsis = "…"

// Limit truncates s to width cells, ending it with Ellipsis when cut.
// Escape sequences take no cells.
func Limit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, Ellipsis)
}

// PadRight pads plain text s with spaces to width cells. Wide runes count
// as two cells.
func PadRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// Columns aligns rows of plain text into columns separated by gap spaces.
// The last column is never padded.
func Columns(rows [][]string, gap int) []string {
	var widths []int
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	sep := strings.Repeat(" ", max(gap, 0))
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		var b strings.Builder
		for i, cell := range row {
			if i == len(row)-1 {
				b.WriteString(cell)
				break
			}
			b.WriteString(PadRight(cell, widths[i]))
			b.WriteString(sep)
		}
		lines = append(lines, strings.TrimRight(b.String(), " "))
	}
	return lines
}
