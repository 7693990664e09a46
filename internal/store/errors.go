package store

import (
	"errors"
	"fmt"
)

// ErrEmptyPath is returned when a store is constructed without a backing file path
var ErrEmptyPath = errors.New("storage path cannot be empty")

// MalformedStoreError reports a backing file that exists but does not hold a
// valid task collection. The file is never rewritten when this is returned.
type MalformedStoreError struct {
	Path string // backing file location
	Err  error  // underlying decode or validation failure
}

func (e *MalformedStoreError) Error() string {
	return fmt.Sprintf("malformed task file %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *MalformedStoreError) Unwrap() error {
	return e.Err
}

// IsMalformed reports whether err is or wraps a MalformedStoreError
func IsMalformed(err error) bool {
	var malformed *MalformedStoreError
	return errors.As(err, &malformed)
}
