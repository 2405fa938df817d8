// Package service defines the shared interface for path operations.
// Commands, extensions and the MCP server depend on this interface rather
// than on the pathcch core directly, so validation, audit logging and
// result encoding happen in one place.
package service

import (
	"context"
	"fmt"

	"github.com/jpl-au/pathcch/internal/pathcch"
)

// Operation names, used for log actions and JSON output.
const (
	OpSep      = "sep"
	OpStrip    = "strip"
	OpClassify = "classify"
)

// Service defines all path operations.
//
// Example:
//
//	svc := service.New(service.Options{Author: "alice", Source: "path"})
//	o, err := svc.Sep(ctx, `C:\Users`, 20)
//	fmt.Println(o.Output, o.Status) // C:\Users\ changed
type Service interface {
	// Sep ensures path ends with a separator inside a buffer of size characters.
	// The outcome is filled in even when err is an operation failure.
	Sep(ctx context.Context, path string, size int) (Outcome, error)

	// Strip removes an extended-length prefix inside a buffer of size characters.
	Strip(ctx context.Context, path string, size int) (Outcome, error)

	// Classify reports the prefix kind of path without editing it.
	Classify(ctx context.Context, path string) (Outcome, error)
}

// Outcome is the result of one operation, shaped for JSON output.
type Outcome struct {
	Op        string `json:"op"`
	Input     string `json:"input"`
	Output    string `json:"output"`
	Size      int    `json:"size,omitempty"`
	Kind      string `json:"kind"`
	Status    string `json:"status,omitempty"`
	HRESULT   string `json:"hresult,omitempty"`
	Offset    *int   `json:"offset,omitempty"`
	Remaining *int   `json:"remaining,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Succeeded reports whether the operation counts as success.
func (o Outcome) Succeeded() bool {
	return o.Error == ""
}

// newOutcome fills the fields shared by every edit.
func newOutcome(op, input string, size int, b *pathcch.Buffer, r pathcch.Result, err error) Outcome {
	o := Outcome{
		Op:      op,
		Input:   input,
		Output:  b.String(),
		Size:    size,
		Kind:    pathcch.ClassifyString(input).String(),
		Status:  pathcch.Status(r, err),
		HRESULT: fmt.Sprintf("0x%08X", pathcch.HRESULT(r, err)),
	}
	if err != nil {
		o.Error = err.Error()
	}
	return o
}
