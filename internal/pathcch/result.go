// result.go defines operation outcomes and their external encodings.
//
// Failures are sentinel errors so callers can tell a recoverable
// ErrInsufficientBuffer (grow and retry) from ErrInvalidArgument (fix the
// call). Status and HRESULT translate an outcome for CLI and MCP output.

package pathcch

import "errors"

var (
	// ErrInsufficientBuffer is returned when the edit would overflow the capacity.
	ErrInsufficientBuffer = errors.New("insufficient buffer")
	// ErrInvalidArgument is returned for a nil buffer or an unacceptable capacity.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Result reports whether a successful operation wrote to the buffer.
type Result int

const (
	// Unchanged means the postcondition already held and nothing was written.
	Unchanged Result = iota
	// Changed means the buffer was rewritten.
	Changed
)

func (r Result) String() string {
	if r == Changed {
		return "changed"
	}
	return "unchanged"
}

// Tail locates the end of the string after EnsureTrailingSeparatorEx so
// further writes can be chained without rescanning. Offset is the index of
// the terminator; Remaining is the capacity left from Offset onwards.
type Tail struct {
	Offset    int `json:"offset"`
	Remaining int `json:"remaining"`
}

// Status names of an outcome.
const (
	StatusChanged            = "changed"
	StatusUnchanged          = "unchanged"
	StatusInsufficientBuffer = "insufficient_buffer"
	StatusInvalidArgument    = "invalid_argument"
	StatusError              = "error"
)

// Status returns the stable name of an outcome.
func Status(r Result, err error) string {
	switch {
	case err == nil:
		return r.String()
	case errors.Is(err, ErrInsufficientBuffer):
		return StatusInsufficientBuffer
	case errors.Is(err, ErrInvalidArgument):
		return StatusInvalidArgument
	default:
		return StatusError
	}
}

// Windows result codes for the outcomes above.
const (
	SOk                        uint32 = 0x00000000
	SFalse                     uint32 = 0x00000001
	EInvalidArg                uint32 = 0x80070057
	StrsafeEInsufficientBuffer uint32 = 0x8007007A
	EFail                      uint32 = 0x80004005
)

// HRESULT returns the Windows result code of an outcome.
func HRESULT(r Result, err error) uint32 {
	switch {
	case err == nil && r == Changed:
		return SOk
	case err == nil:
		return SFalse
	case errors.Is(err, ErrInsufficientBuffer):
		return StrsafeEInsufficientBuffer
	case errors.Is(err, ErrInvalidArgument):
		return EInvalidArg
	default:
		return EFail
	}
}
