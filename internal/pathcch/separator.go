// separator.go ensures a path ends with a single trailing separator.

package pathcch

// EnsureTrailingSeparator appends a separator to a non-empty path that does
// not already end with one. It is EnsureTrailingSeparatorEx without the tail.
func EnsureTrailingSeparator(b *Buffer) (Result, error) {
	r, _, err := EnsureTrailingSeparatorEx(b)
	return r, err
}

// EnsureTrailingSeparatorEx appends a separator in place and reports where
// the string now ends.
//
// An empty path, or one already ending in a separator, is Unchanged as long
// as its terminator fits. Otherwise the separator and a new terminator are
// written at Len and Len+1. ErrInsufficientBuffer is returned, with a zero
// Tail and the buffer untouched, when the result would not fit.
func EnsureTrailingSeparatorEx(b *Buffer) (Result, Tail, error) {
	if b == nil {
		return Unchanged, Tail{}, ErrInvalidArgument
	}

	size := b.limit()
	n := b.Len()
	needsSeparator := size > 0 && n > 0 && b.chars[n-1] != Separator

	want := n
	if needsSeparator {
		want = n + 1
	}
	if want >= size {
		return Unchanged, Tail{}, ErrInsufficientBuffer
	}

	if !needsSeparator {
		return Unchanged, Tail{Offset: n, Remaining: size - n}, nil
	}

	b.chars[n] = Separator
	b.chars[n+1] = 0
	return Changed, Tail{Offset: n + 1, Remaining: size - n - 1}, nil
}
