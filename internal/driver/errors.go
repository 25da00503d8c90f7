package driver

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrInputNotFound marks a missing diagnostics log.
var ErrInputNotFound = errors.New("input not found")

// InputNotFoundError carries the path that could not be opened.
type InputNotFoundError struct {
	Path string
	Err  error
}

func (e *InputNotFoundError) Error() string {
	return fmt.Sprintf("file %q not found", e.Path)
}

func (e *InputNotFoundError) Unwrap() error { return e.Err }

// Is matches both ErrInputNotFound and fs.ErrNotExist.
func (e *InputNotFoundError) Is(target error) bool {
	return target == ErrInputNotFound || target == fs.ErrNotExist
}

// IsInputNotFound reports whether err is, or wraps, a missing-input error.
func IsInputNotFound(err error) bool {
	return errors.Is(err, ErrInputNotFound)
}
