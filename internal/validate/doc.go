// Package validate checks user input before it reaches a path buffer.
//
// The pathcch core trusts its Buffer: it measures the string up to the first
// NUL and never questions the declared size. Input arriving from the CLI or an
// MCP client is checked here first so that a stray NUL does not silently
// truncate a path, and a requested size cannot force a huge allocation.
//
// # Error Handling
//
// All validation errors wrap one of the sentinel errors defined in errors.go.
// Use errors.Is() for type-safe checking:
//
//	if errors.Is(err, validate.ErrInvalidPath) {
//	    // handle invalid path
//	}
package validate
