package pathcch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyString(t *testing.T) {
	tests := []struct {
		input string
		want  PrefixKind
	}{
		{`\\?\UNC\server\share`, PrefixUNC},
		{`\\?\unc\server\share`, PrefixUNC},
		{`\\?\UNC\`, PrefixUNC},
		{`\\?\C:\Temp`, PrefixDisk},
		{`\\?\z:`, PrefixDisk},
		{`\\?\C:`, PrefixDisk},
		{`\\?\C`, PrefixNone},
		{`\\?\UNC`, PrefixNone},
		{`\\?\1:\`, PrefixNone},
		{`\\?\Volume{0b1a}\`, PrefixNone},
		{`\\server\share`, PrefixNone},
		{`C:\Temp`, PrefixNone},
		{``, PrefixNone},
		{`\\?\Ä:\`, PrefixNone},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyString(tt.input))
		})
	}
}

func TestClassify(t *testing.T) {
	b, err := FromString(`\\?\UNC\server\share`, 32)
	require.NoError(t, err)
	assert.Equal(t, PrefixUNC, Classify(b))

	_, err = StripExtendedPrefix(b)
	require.NoError(t, err)
	assert.Equal(t, PrefixNone, Classify(b))

	assert.Equal(t, PrefixNone, Classify(nil))
}

func TestHasPrefix(t *testing.T) {
	tests := []struct {
		input string
		unc   bool
		disk  bool
	}{
		{`\\?\UNC\server\share`, true, false},
		{`\\?\uNc\server`, true, false},
		{`\\?\C:\Temp`, false, true},
		{`\\?\c:`, false, true},
		{`\\?\Volume{0b1a}\`, false, false},
		{`\\server\share`, false, false},
		{``, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			b, err := FromString(tt.input, 64)
			require.NoError(t, err)
			assert.Equal(t, tt.unc, HasUNCPrefix(b))
			assert.Equal(t, tt.disk, HasDiskPrefix(b))
		})
	}

	assert.False(t, HasUNCPrefix(nil))
	assert.False(t, HasDiskPrefix(nil))
}

func TestPrefixKind_String(t *testing.T) {
	assert.Equal(t, "none", PrefixNone.String())
	assert.Equal(t, "unc", PrefixUNC.String())
	assert.Equal(t, "disk", PrefixDisk.String())
}
