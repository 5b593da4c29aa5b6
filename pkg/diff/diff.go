// Package diff provides unified diff generation for --diff output.
package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// contextLines is the number of unchanged lines shown around each hunk.
const contextLines = 3

// edit is one line of the line-level diff.
type edit struct {
	op     diffmatchpatch.Operation
	text   string
	oldIdx int // index in old lines (-1 for inserts).
	newIdx int // index in new lines (-1 for deletes).
}

// Unified generates a unified diff between oldText and newText.
// Returns an empty string if the inputs are identical.
func Unified(filename, oldText, newText string) string {
	if oldText == newText {
		return ""
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(oldText, newText)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	edits := splitLines(diffs)
	hunks := buildHunks(edits)
	if len(hunks) == 0 {
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "--- a/%s\n", filename)
	fmt.Fprintf(&sb, "+++ b/%s\n", filename)
	for _, h := range hunks {
		h.writeTo(&sb)
	}
	return sb.String()
}

// splitLines breaks chunk-level diffs into per-line edits with old/new
// line indices attached.
func splitLines(diffs []diffmatchpatch.Diff) []edit {
	var edits []edit
	oldIdx, newIdx := 0, 0
	for _, d := range diffs {
		for _, line := range splitAfter(d.Text) {
			e := edit{op: d.Type, text: line, oldIdx: -1, newIdx: -1}
			switch d.Type {
			case diffmatchpatch.DiffEqual:
				e.oldIdx, e.newIdx = oldIdx, newIdx
				oldIdx++
				newIdx++
			case diffmatchpatch.DiffDelete:
				e.oldIdx = oldIdx
				oldIdx++
			case diffmatchpatch.DiffInsert:
				e.newIdx = newIdx
				newIdx++
			}
			edits = append(edits, e)
		}
	}
	return edits
}

// splitAfter splits text into newline-terminated lines, keeping the
// terminators. An empty string produces zero lines.
func splitAfter(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// hunk is a group of changed lines plus surrounding context.
type hunk struct {
	oldStart, oldCount int
	newStart, newCount int
	edits              []edit
}

// buildHunks groups changed edits into hunks, merging hunks whose context
// windows would overlap.
func buildHunks(edits []edit) []hunk {
	type region struct{ start, end int }
	var regions []region
	for i, e := range edits {
		if e.op == diffmatchpatch.DiffEqual {
			continue
		}
		if n := len(regions); n > 0 && i-regions[n-1].end <= 2*contextLines+1 {
			regions[n-1].end = i
		} else {
			regions = append(regions, region{start: i, end: i})
		}
	}

	hunks := make([]hunk, 0, len(regions))
	for _, r := range regions {
		start := max(r.start-contextLines, 0)
		end := min(r.end+contextLines, len(edits)-1)

		h := hunk{edits: edits[start : end+1]}
		for _, e := range h.edits {
			switch e.op {
			case diffmatchpatch.DiffEqual:
				h.oldCount++
				h.newCount++
			case diffmatchpatch.DiffDelete:
				h.oldCount++
			case diffmatchpatch.DiffInsert:
				h.newCount++
			}
		}
		for _, e := range h.edits {
			if e.oldIdx >= 0 {
				h.oldStart = e.oldIdx
				break
			}
		}
		for _, e := range h.edits {
			if e.newIdx >= 0 {
				h.newStart = e.newIdx
				break
			}
		}
		hunks = append(hunks, h)
	}
	return hunks
}

// writeTo renders the hunk in unified diff format.
func (h *hunk) writeTo(sb *strings.Builder) {
	fmt.Fprintf(sb, "@@ -%d,%d +%d,%d @@\n",
		h.oldStart+1, h.oldCount, h.newStart+1, h.newCount)
	for _, e := range h.edits {
		switch e.op {
		case diffmatchpatch.DiffEqual:
			sb.WriteByte(' ')
		case diffmatchpatch.DiffDelete:
			sb.WriteByte('-')
		case diffmatchpatch.DiffInsert:
			sb.WriteByte('+')
		}
		sb.WriteString(ensureNewline(e.text))
	}
}

// ensureNewline terminates the line for diff output.
func ensureNewline(line string) string {
	if strings.HasSuffix(line, "\n") {
		return line
	}
	return line + "\n"
}
