// Package progress reports how far through a batch of paths a command is.
// Output goes to stderr so stdout stays clean for piping, and nothing is
// written unless stderr is a terminal.
package progress

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// minItems is the smallest batch that gets a progress line.
const minItems = 5

// Progress tracks and displays batch progress.
type Progress struct {
	w       io.Writer
	label   string
	total   int
	current int
	enabled bool
	width   int
}

// New creates a progress reporter writing to w. Reporting is enabled only
// when w is a terminal and total is at least minItems.
func New(w io.Writer, label string, total int) *Progress {
	return &Progress{
		w:       w,
		label:   label,
		total:   total,
		enabled: total >= minItems && isTerminal(w),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Step advances the counter by one and redraws the line.
func (p *Progress) Step() {
	p.current++
	if !p.enabled {
		return
	}
	line := fmt.Sprintf("\r%s... %d/%d (%d%%)", p.label, p.current, p.total, p.current*100/p.total)
	p.width = max(p.width, len(line))
	fmt.Fprint(p.w, line)
}

// Done clears the progress line to make way for final output.
func (p *Progress) Done() {
	if !p.enabled || p.width == 0 {
		return
	}
	fmt.Fprintf(p.w, "\r%s\r", strings.Repeat(" ", p.width))
}

// Current returns the number of completed steps.
func (p *Progress) Current() int {
	return p.current
}
