package cmd

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

type diffLine struct {
	op      diffmatchpatch.Operation
	text    string
	newLine int
}

// lineDiff returns a line based diff of before and after with colour tags.
// Only changed lines and up to context unchanged lines around them are kept;
// each run of kept lines starts with a hunk marker.
func lineDiff(before, after string, context int) []string {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var entries []diffLine
	n := 0
	for _, d := range diffs {
		for _, text := range splitLines(d.Text) {
			if d.Type != diffmatchpatch.DiffDelete {
				n++
			}
			entries = append(entries, diffLine{op: d.Type, text: text, newLine: n})
		}
	}

	keep := make([]bool, len(entries))
	for i, e := range entries {
		if e.op == diffmatchpatch.DiffEqual {
			continue
		}
		for j := max(0, i-context); j <= min(len(entries)-1, i+context); j++ {
			keep[j] = true
		}
	}

	var out []string
	inHunk := false
	for i, e := range entries {
		if !keep[i] {
			inHunk = false
			continue
		}
		if !inHunk {
			out = append(out, fmt.Sprintf("{{_DiffHunk_}}@@ line %d @@{{|-|}}", max(e.newLine, 1)))
			inHunk = true
		}
		switch e.op {
		case diffmatchpatch.DiffInsert:
			out = append(out, "{{_DiffAdd_}}+"+e.text+"{{|-|}}")
		case diffmatchpatch.DiffDelete:
			out = append(out, "{{_DiffDel_}}-"+e.text+"{{|-|}}")
		default:
			out = append(out, " "+e.text)
		}
	}
	return out
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
