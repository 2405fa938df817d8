// strip.go removes an extended-length prefix, rewriting the path in place.

package pathcch

import "fmt"

// StripExtendedPrefix rewrites `\\?\UNC\server\share` to `\\server\share`
// and `\\?\C:\dir` to `C:\dir`. Paths without a recognised prefix are
// Unchanged.
//
// The declared capacity must be between 1 and MaxCch; Unbounded is refused.
// If the capacity cannot hold the rewritten string the call fails with
// ErrInvalidArgument and the buffer is left as it was.
func StripExtendedPrefix(b *Buffer) (Result, error) {
	if b == nil || b.size == Unbounded || b.size == 0 || b.size > MaxCch {
		return Unchanged, ErrInvalidArgument
	}

	s := b.content()
	switch classify(s) {
	case PrefixUNC:
		// \\?\UNC\a -> \\a
		rest := len(s) - len(uncPrefix)
		if b.size < rest+3 {
			return Unchanged, fmt.Errorf("%w: %d characters cannot hold %d", ErrInvalidArgument, b.size, rest+3)
		}
		shift(b.chars, 2, len(uncPrefix), len(s))
		return Changed, nil

	case PrefixDisk:
		// \\?\C:\ -> C:\
		rest := len(s) - len(diskPrefix)
		if b.size < rest+1 {
			return Unchanged, fmt.Errorf("%w: %d characters cannot hold %d", ErrInvalidArgument, b.size, rest+1)
		}
		shift(b.chars, 0, len(diskPrefix), len(s))
		return Changed, nil

	default:
		return Unchanged, nil
	}
}

// shift moves chars[from:end] down to dst and terminates it. The ranges
// overlap; copy has memmove semantics.
func shift(chars []uint16, dst, from, end int) {
	n := copy(chars[dst:], chars[from:end])
	chars[dst+n] = 0
}
