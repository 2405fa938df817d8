// errors.go defines sentinel errors for validation failures.

package validate

import "errors"

var (
	ErrInvalidPath = errors.New("invalid path")
	ErrInvalidSize = errors.New("invalid buffer size")
)
