// prefix.go classifies the extended-length prefix at the start of a path.

package pathcch

import "unicode/utf16"

// PrefixKind classifies the leading characters of a path.
type PrefixKind int

const (
	// PrefixNone means no extended-length prefix was recognised.
	PrefixNone PrefixKind = iota
	// PrefixUNC is `\\?\UNC\`, matched case-insensitively.
	PrefixUNC
	// PrefixDisk is `\\?\` followed by a drive letter and a colon.
	PrefixDisk
)

func (k PrefixKind) String() string {
	switch k {
	case PrefixUNC:
		return "unc"
	case PrefixDisk:
		return "disk"
	default:
		return "none"
	}
}

var (
	uncPrefix  = []uint16{'\\', '\\', '?', '\\', 'U', 'N', 'C', '\\'}
	diskPrefix = []uint16{'\\', '\\', '?', '\\'}
)

// Classify returns the prefix kind of the buffer's content.
// UNC is checked first; no string matches both.
func Classify(b *Buffer) PrefixKind {
	if b == nil {
		return PrefixNone
	}
	return classify(b.content())
}

// HasUNCPrefix reports whether the content starts with `\\?\UNC\`,
// ignoring ASCII case.
func HasUNCPrefix(b *Buffer) bool {
	return b != nil && isPrefixedUNC(b.content())
}

// HasDiskPrefix reports whether the content starts with `\\?\` followed by
// an ASCII drive letter and a colon.
func HasDiskPrefix(b *Buffer) bool {
	return b != nil && isPrefixedDisk(b.content())
}

// ClassifyString is Classify for a Go string.
func ClassifyString(s string) PrefixKind {
	return classify(utf16.Encode([]rune(s)))
}

func classify(s []uint16) PrefixKind {
	switch {
	case isPrefixedUNC(s):
		return PrefixUNC
	case isPrefixedDisk(s):
		return PrefixDisk
	default:
		return PrefixNone
	}
}

func isPrefixedUNC(s []uint16) bool {
	if len(s) < len(uncPrefix) {
		return false
	}
	for i, c := range uncPrefix {
		if upperASCII(s[i]) != c {
			return false
		}
	}
	return true
}

func isPrefixedDisk(s []uint16) bool {
	if len(s) < len(diskPrefix)+2 {
		return false
	}
	for i, c := range diskPrefix {
		if s[i] != c {
			return false
		}
	}
	return isASCIILetter(s[4]) && s[5] == ':'
}

func upperASCII(c uint16) uint16 {
	if 'a' <= c && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

func isASCIILetter(c uint16) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
