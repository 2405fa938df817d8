// paths.go implements Service on top of the pathcch core.
//
// Each call validates its input, builds a fresh buffer, runs one core
// operation and records the outcome in the audit log. The buffer is never
// reused between calls.

package service

import (
	"context"
	"fmt"

	"github.com/jpl-au/pathcch/internal/log"
	"github.com/jpl-au/pathcch/internal/pathcch"
	"github.com/jpl-au/pathcch/internal/validate"
)

// Options configures a Paths service.
type Options struct {
	Author string // recorded in the audit log
	Source string // log source prefix: "path" for the CLI, "mcp" for tools
}

// Paths runs path operations.
type Paths struct {
	opts Options
}

// Compile-time interface compliance.
var _ Service = (*Paths)(nil)

// New returns a Paths service.
func New(opts Options) *Paths {
	if opts.Source == "" {
		opts.Source = "path"
	}
	return &Paths{opts: opts}
}

// Sep implements Service.
func (p *Paths) Sep(ctx context.Context, path string, size int) (Outcome, error) {
	b, err := p.buffer(ctx, OpSep, path, size)
	if err != nil {
		return Outcome{Op: OpSep, Input: path, Size: size, Error: err.Error()}, err
	}

	r, tail, err := pathcch.EnsureTrailingSeparatorEx(b)
	o := newOutcome(OpSep, path, size, b, r, err)
	if err == nil {
		o.Offset = &tail.Offset
		o.Remaining = &tail.Remaining
	}

	p.record(OpSep, o, err)
	return o, wrap(OpSep, err)
}

// Strip implements Service.
func (p *Paths) Strip(ctx context.Context, path string, size int) (Outcome, error) {
	b, err := p.buffer(ctx, OpStrip, path, size)
	if err != nil {
		return Outcome{Op: OpStrip, Input: path, Size: size, Error: err.Error()}, err
	}

	r, err := pathcch.StripExtendedPrefix(b)
	o := newOutcome(OpStrip, path, size, b, r, err)

	p.record(OpStrip, o, err)
	return o, wrap(OpStrip, err)
}

// Classify implements Service.
func (p *Paths) Classify(ctx context.Context, path string) (Outcome, error) {
	if err := ctx.Err(); err != nil {
		return Outcome{Op: OpClassify, Input: path}, err
	}
	if err := validate.Path(path); err != nil {
		return Outcome{Op: OpClassify, Input: path, Error: err.Error()}, err
	}

	o := Outcome{
		Op:     OpClassify,
		Input:  path,
		Output: path,
		Kind:   pathcch.ClassifyString(path).String(),
	}
	log.Event(p.opts.Source+":"+OpClassify, OpClassify).
		Author(p.opts.Author).
		Path(path).
		Detail("kind", o.Kind).
		Write(nil)
	return o, nil
}

// buffer validates input and builds the buffer an operation runs in.
func (p *Paths) buffer(ctx context.Context, op, path string, size int) (*pathcch.Buffer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	err := validate.Path(path)
	if err == nil {
		err = validate.Size(size)
	}
	if err != nil {
		log.Event(p.opts.Source+":"+op, op).Author(p.opts.Author).Path(path).Size(size).Write(err)
		return nil, err
	}
	return pathcch.FromString(path, size)
}

func (p *Paths) record(op string, o Outcome, err error) {
	l := log.Event(p.opts.Source+":"+op, op).
		Author(p.opts.Author).
		Path(o.Input).
		Size(o.Size).
		Status(o.Status).
		Resolved(o.Output)
	if o.Remaining != nil {
		l.Detail("offset", *o.Offset).Detail("remaining", *o.Remaining)
	}
	l.Write(err)
}

// wrap adds the operation name while keeping the pathcch sentinel reachable.
func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", op, err)
}
