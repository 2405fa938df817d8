// Package diff renders the before/after view of a path edit.
//
// Paths are single lines, so the diff is character-level: deletions are
// marked [-like this-] and insertions {+like this+}, or coloured red and
// green when writing to a terminal.
package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	red   = "\033[31m"
	green = "\033[32m"
	reset = "\033[0m"
)

// Result holds the diff of one edit.
type Result struct {
	Old   string // path before the edit
	New   string // path after the edit
	diffs []diffmatchpatch.Diff
}

// Compute returns the character diff between the old and new path.
func Compute(oldPath, newPath string) Result {
	dmp := diffmatchpatch.New()
	d := dmp.DiffMain(oldPath, newPath, false)
	d = dmp.DiffCleanupSemantic(d)
	return Result{Old: oldPath, New: newPath, diffs: d}
}

// Changed reports whether the edit altered the path.
func (r Result) Changed() bool {
	return r.Old != r.New
}

// Inline returns the merged path with changes marked.
func (r Result) Inline(colour bool) string {
	var b strings.Builder
	for _, d := range r.diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			if colour {
				b.WriteString(red + d.Text + reset)
			} else {
				b.WriteString("[-" + d.Text + "-]")
			}
		case diffmatchpatch.DiffInsert:
			if colour {
				b.WriteString(green + d.Text + reset)
			} else {
				b.WriteString("{+" + d.Text + "+}")
			}
		case diffmatchpatch.DiffEqual:
			b.WriteString(d.Text)
		}
	}
	return b.String()
}

// Format returns the full diff with header.
func (r Result) Format(colour bool) string {
	header := fmt.Sprintf("--- %s\n+++ %s\n", r.Old, r.New)
	if !r.Changed() {
		return header + "  (no change)\n"
	}
	return header + "  " + r.Inline(colour) + "\n"
}
