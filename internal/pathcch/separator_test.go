package pathcch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureTrailingSeparatorEx(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		size    int
		want    string
		result  Result
		tail    Tail
		wantErr error
	}{
		{"adds separator", `C:\Users`, 20, `C:\Users\`, Changed, Tail{Offset: 9, Remaining: 11}, nil},
		{"already terminated", `C:\Users\`, 20, `C:\Users\`, Unchanged, Tail{Offset: 9, Remaining: 11}, nil},
		{"no room for separator", `C:\Users`, 9, `C:\Users`, Unchanged, Tail{}, ErrInsufficientBuffer},
		{"exact fit", `C:\Users`, 10, `C:\Users\`, Changed, Tail{Offset: 9, Remaining: 1}, nil},
		{"terminated exact fit", `C:\`, 4, `C:\`, Unchanged, Tail{Offset: 3, Remaining: 1}, nil},
		{"terminated without room for NUL", `C:\`, 3, `C:\`, Unchanged, Tail{}, ErrInsufficientBuffer},
		{"empty path", ``, 5, ``, Unchanged, Tail{Offset: 0, Remaining: 5}, nil},
		{"empty path size one", ``, 1, ``, Unchanged, Tail{Offset: 0, Remaining: 1}, nil},
		{"single character", `a`, 3, `a\`, Changed, Tail{Offset: 2, Remaining: 1}, nil},
		{"forward slash is not a separator", `C:/Users/`, 20, `C:/Users/\`, Changed, Tail{Offset: 10, Remaining: 10}, nil},
		{"string overruns size", `C:\Users\Public`, 8, `C:\Users\Public`, Unchanged, Tail{}, ErrInsufficientBuffer},
		{"unc root", `\\server\share`, 30, `\\server\share\`, Changed, Tail{Offset: 15, Remaining: 15}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := FromString(tt.path, tt.size)
			require.NoError(t, err)

			got, tail, err := EnsureTrailingSeparatorEx(b)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.result, got)
			assert.Equal(t, tt.tail, tail)
			assert.Equal(t, tt.want, b.String())
		})
	}
}

func TestEnsureTrailingSeparator(t *testing.T) {
	b, err := FromString(`C:\Users`, 20)
	require.NoError(t, err)

	r, err := EnsureTrailingSeparator(b)
	require.NoError(t, err)
	assert.Equal(t, Changed, r)
	assert.Equal(t, `C:\Users\`, b.String())
}

func TestEnsureTrailingSeparator_Idempotent(t *testing.T) {
	for _, p := range []string{`C:\Users`, `C:\`, ``, `\\?\UNC\server\share`, `relative\path`} {
		t.Run(p, func(t *testing.T) {
			b, err := FromString(p, 64)
			require.NoError(t, err)

			_, err = EnsureTrailingSeparator(b)
			require.NoError(t, err)
			once := b.String()

			r, err := EnsureTrailingSeparator(b)
			require.NoError(t, err)
			assert.Equal(t, Unchanged, r)
			assert.Equal(t, once, b.String())
		})
	}
}

func TestEnsureTrailingSeparator_ZeroSize(t *testing.T) {
	b, err := Wrap([]uint16{}, 0)
	require.NoError(t, err)

	_, tail, err := EnsureTrailingSeparatorEx(b)
	assert.ErrorIs(t, err, ErrInsufficientBuffer)
	assert.Equal(t, Tail{}, tail)
}

func TestEnsureTrailingSeparator_Nil(t *testing.T) {
	_, err := EnsureTrailingSeparator(nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestEnsureTrailingSeparator_Unbounded(t *testing.T) {
	t.Run("room in backing storage", func(t *testing.T) {
		chars := make([]uint16, 8)
		copy(chars, []uint16{'C', ':'})
		b, err := Wrap(chars, Unbounded)
		require.NoError(t, err)

		r, tail, err := EnsureTrailingSeparatorEx(b)
		require.NoError(t, err)
		assert.Equal(t, Changed, r)
		assert.Equal(t, Tail{Offset: 3, Remaining: 5}, tail)
		assert.Equal(t, `C:\`, b.String())
	})

	t.Run("backing storage full", func(t *testing.T) {
		chars := []uint16{'C', ':', 0}
		b, err := Wrap(chars, Unbounded)
		require.NoError(t, err)

		_, err = EnsureTrailingSeparator(b)
		assert.ErrorIs(t, err, ErrInsufficientBuffer)
		assert.Equal(t, []uint16{'C', ':', 0}, chars)
	})
}

// Writes must stay below the declared size for every size, whether or not
// the operation succeeds.
func TestEnsureTrailingSeparator_NoWriteBeyondSize(t *testing.T) {
	const guard = 0xBEEF
	for _, p := range []string{`C:\Users`, `C:\Users\`, `x`, ``} {
		for size := 0; size <= len(p)+3; size++ {
			chars := make([]uint16, len(p)+4)
			for i := range chars {
				chars[i] = guard
			}
			for i, c := range p {
				chars[i] = uint16(c)
			}
			chars[len(p)] = 0

			b, err := Wrap(chars, size)
			require.NoError(t, err)

			before := append([]uint16(nil), chars...)
			_, _, err = EnsureTrailingSeparatorEx(b)

			assert.Equal(t, before[size:], chars[size:], "path %q size %d wrote past capacity", p, size)
			if err == nil {
				assert.Less(t, b.Len(), size, "path %q size %d", p, size)
			} else {
				assert.Equal(t, before, chars, "path %q size %d mutated on failure", p, size)
			}
		}
	}
}

func TestEnsureTrailingSeparatorEx_Chaining(t *testing.T) {
	b, err := FromString(`C:\Users`, 16)
	require.NoError(t, err)

	_, tail, err := EnsureTrailingSeparatorEx(b)
	require.NoError(t, err)

	// Append after the tail without rescanning.
	chars := b.Chars()
	name := []uint16{'b', 'o', 'b'}
	require.Less(t, len(name), tail.Remaining)
	n := copy(chars[tail.Offset:], name)
	chars[tail.Offset+n] = 0

	assert.Equal(t, `C:\Users\bob`, b.String())
}
