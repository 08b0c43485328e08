// Package diff renders the difference between the file on disk and the
// file aocgen was about to write, so an overwrite under --force shows
// exactly what it replaced.
package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// contextLines is how many unchanged lines survive on each side of a
// change. Longer equal runs are collapsed to "...".
const contextLines = 3

// Result holds diff output.
type Result struct {
	Old  string // old label
	New  string // new label
	Diff string // plain diff text
}

// Compute diffs oldContent against newContent line by line. Scaffold
// files are line-oriented, so the hunks are computed in go-diff's line
// mode rather than per character.
func Compute(oldContent, newContent, oldLabel, newLabel string) Result {
	dmp := diffmatchpatch.New()
	a, b, lineIndex := dmp.DiffLinesToChars(oldContent, newContent)
	hunks := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineIndex)

	var out strings.Builder
	for _, h := range hunks {
		writeHunk(&out, h)
	}

	return Result{Old: oldLabel, New: newLabel, Diff: out.String()}
}

// Empty reports whether the two contents were identical. Change markers
// only ever appear at the start of a line.
func (r Result) Empty() bool {
	for _, marker := range []string{"- ", "+ "} {
		if strings.HasPrefix(r.Diff, marker) || strings.Contains(r.Diff, "\n"+marker) {
			return false
		}
	}
	return true
}

// writeHunk emits one hunk with the marker its type dictates. Equal
// hunks longer than 2*contextLines keep only their edges.
func writeHunk(b *strings.Builder, h diffmatchpatch.Diff) {
	text := strings.TrimSuffix(h.Text, "\n")
	if text == "" {
		return
	}
	lines := strings.Split(text, "\n")

	switch h.Type {
	case diffmatchpatch.DiffDelete:
		writeLines(b, "- ", lines)
	case diffmatchpatch.DiffInsert:
		writeLines(b, "+ ", lines)
	case diffmatchpatch.DiffEqual:
		if len(lines) <= 2*contextLines {
			writeLines(b, "  ", lines)
			return
		}
		writeLines(b, "  ", lines[:contextLines])
		b.WriteString("  ...\n")
		writeLines(b, "  ", lines[len(lines)-contextLines:])
	}
}

func writeLines(b *strings.Builder, prefix string, lines []string) {
	for _, l := range lines {
		b.WriteString(prefix)
		b.WriteString(l)
		b.WriteString("\n")
	}
}

// Colourise paints deletions red and insertions green. Context lines
// pass through untouched.
func Colourise(d string) string {
	const reset = "\033[0m"

	var b strings.Builder
	for _, line := range strings.Split(d, "\n") {
		if line == "" {
			continue
		}
		if c := lineColour(line); c != "" {
			b.WriteString(c + line + reset + "\n")
			continue
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func lineColour(line string) string {
	switch {
	case strings.HasPrefix(line, "- "):
		return "\033[31m" // red
	case strings.HasPrefix(line, "+ "):
		return "\033[32m" // green
	default:
		return ""
	}
}

// Format returns the diff under a "--- old / +++ new" label header,
// coloured when requested.
func (r Result) Format(colour bool) string {
	header := fmt.Sprintf("--- %s\n+++ %s\n", r.Old, r.New)
	if colour {
		return header + Colourise(r.Diff)
	}
	return header + r.Diff
}
