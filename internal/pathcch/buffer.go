// Package pathcch edits Windows path strings in place inside caller-owned,
// fixed-capacity UTF-16 buffers.
//
// Every operation takes a [Buffer], which pairs the backing storage with the
// declared capacity in characters (terminating NUL included). Capacity is
// checked before any write, so a failed call never leaves a partial edit.
//
// Outcomes are reported as a [Result] plus an error:
//   - Changed: the buffer was rewritten
//   - Unchanged: the postcondition already held, nothing was written
//   - ErrInsufficientBuffer: the edit would not fit
//   - ErrInvalidArgument: nil buffer or a capacity the operation refuses
//
// Changed and Unchanged are both success. The package never allocates inside
// an operation and never logs.
package pathcch

import (
	"fmt"
	"unicode/utf16"
)

// Separator is the path component delimiter.
const Separator = '\\'

// Unbounded declares that the caller does not know the capacity. The
// overflow check then falls back to the length of the backing slice.
const Unbounded = -1

// MaxCch is the largest capacity StripExtendedPrefix accepts (PATHCCH_MAX_CCH).
const MaxCch = 32768

// Buffer is a mutable view over caller-owned UTF-16 storage with a declared
// capacity. Writes never reach past the capacity; reads may see the whole
// backing slice, so a string that already overruns the declared capacity is
// measured as it is and then rejected.
type Buffer struct {
	chars []uint16
	size  int
}

// Wrap builds a Buffer over chars with the declared capacity size.
// size may be Unbounded; otherwise it must lie within the backing slice.
func Wrap(chars []uint16, size int) (*Buffer, error) {
	if size != Unbounded && (size < 0 || size > len(chars)) {
		return nil, fmt.Errorf("%w: size %d outside backing storage of %d", ErrInvalidArgument, size, len(chars))
	}
	return &Buffer{chars: chars, size: size}, nil
}

// FromString allocates a NUL-terminated buffer holding s with declared
// capacity size. The backing storage grows past size when s does not fit,
// which lets callers observe how an operation treats an overlong string.
func FromString(s string, size int) (*Buffer, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: size %d", ErrInvalidArgument, size)
	}
	u := utf16.Encode([]rune(s))
	chars := make([]uint16, max(size, len(u)+1))
	copy(chars, u)
	return &Buffer{chars: chars, size: size}, nil
}

// Size returns the declared capacity, possibly Unbounded.
func (b *Buffer) Size() int {
	return b.size
}

// limit is the finite capacity enforced for writes.
func (b *Buffer) limit() int {
	if b.size == Unbounded {
		return len(b.chars)
	}
	return b.size
}

// Len returns the number of characters before the first NUL.
// Unterminated storage reports its full length.
func (b *Buffer) Len() int {
	for i, c := range b.chars {
		if c == 0 {
			return i
		}
	}
	return len(b.chars)
}

// String decodes the current content.
func (b *Buffer) String() string {
	return string(utf16.Decode(b.chars[:b.Len()]))
}

// Chars exposes the writable region, bounded by the enforced capacity.
func (b *Buffer) Chars() []uint16 {
	return b.chars[:b.limit()]
}

// content returns the current string without its terminator.
func (b *Buffer) content() []uint16 {
	return b.chars[:b.Len()]
}
