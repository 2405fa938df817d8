// Package edit runs path operations for the CLI and writes their outcome.
package edit

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/jpl-au/pathcch/internal/diff"
	"github.com/jpl-au/pathcch/internal/service"
)

// Op runs one operation on one path. service.Service's Sep and Strip
// methods satisfy it.
type Op func(ctx context.Context, path string, size int) (service.Outcome, error)

// Options configures how an outcome is reported.
type Options struct {
	Size   int  // Buffer size in characters
	Diff   bool // Show the before/after view
	Colour bool // Colourise the diff
}

// Run executes op on path and writes one line describing the outcome,
// followed by the diff when requested. Operation failures are written and
// returned; validation failures are only returned.
func Run(ctx context.Context, w io.Writer, op Op, path string, opts Options) (service.Outcome, error) {
	o, err := op(ctx, path, opts.Size)
	if o.Status == "" {
		return o, err
	}

	fmt.Fprintln(w, Line(o))
	if opts.Diff {
		fmt.Fprint(w, diff.Compute(o.Input, o.Output).Format(opts.Colour))
	}
	return o, err
}

// Line formats an outcome as a single line of text.
//
//	C:\Users\  changed  offset=9 remaining=11
//	C:\Users  insufficient_buffer (0x8007007A)
func Line(o service.Outcome) string {
	var b strings.Builder
	b.WriteString(o.Output)
	b.WriteString("  ")
	b.WriteString(o.Status)
	if !o.Succeeded() {
		fmt.Fprintf(&b, " (%s)", o.HRESULT)
	}
	if o.Offset != nil && o.Remaining != nil {
		fmt.Fprintf(&b, "  offset=%d remaining=%d", *o.Offset, *o.Remaining)
	}
	return b.String()
}

// ReadPaths reads one path per line. Trailing carriage returns are removed
// so CRLF input from Windows tools works; blank lines are skipped.
func ReadPaths(r io.Reader) ([]string, error) {
	var paths []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		if line == "" {
			continue
		}
		paths = append(paths, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading paths: %w", err)
	}
	return paths, nil
}
