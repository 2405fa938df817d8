package validate

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxSize bounds the buffer size a caller may request, in characters.
// Sizes above pathcch.MaxCch are still accepted so that the strip
// operation's own rejection can be observed.
const MaxSize = 1 << 20

// Path validates path text destined for a buffer.
//
// Validation rules:
//   - Null bytes rejected (the buffer would end at the first one)
//   - Invalid UTF-8 rejected (cannot be encoded as UTF-16 faithfully)
//
// Empty paths are valid input; both operations define their behaviour.
func Path(p string) error {
	if strings.ContainsRune(p, 0) {
		return fmt.Errorf("%w: null byte in path", ErrInvalidPath)
	}
	if !utf8.ValidString(p) {
		return fmt.Errorf("%w: not valid UTF-8", ErrInvalidPath)
	}
	return nil
}

// Size validates a requested buffer size in characters.
// Zero is allowed; it is the caller asking what an empty buffer does.
// pathcch.Unbounded (-1) is rejected with the other negatives: requested
// sizes always allocate a buffer, which needs a finite size.
func Size(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d is negative", ErrInvalidSize, n)
	}
	if n > MaxSize {
		return fmt.Errorf("%w: %d exceeds %d", ErrInvalidSize, n, MaxSize)
	}
	return nil
}
