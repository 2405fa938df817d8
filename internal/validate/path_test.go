package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"disk path", `C:\Users`, false},
		{"extended prefix", `\\?\UNC\server\share`, false},
		{"empty", "", false},
		{"unicode", `C:\Ünïcödé`, false},
		{"null byte", "C:\\a\x00b", true},
		{"invalid utf8", "C:\\\xff", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Path(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPath)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSize(t *testing.T) {
	assert.NoError(t, Size(0))
	assert.NoError(t, Size(260))
	assert.NoError(t, Size(MaxSize))
	assert.NoError(t, Size(32769), "above MaxCch is left for strip to reject")
	assert.ErrorIs(t, Size(-1), ErrInvalidSize, "unbounded is not a requestable size")
	assert.ErrorIs(t, Size(-2), ErrInvalidSize)
	assert.ErrorIs(t, Size(MaxSize+1), ErrInvalidSize)
}
