package core

import (
	"errors"
	"fmt"
)

// Error kinds reported by the service and repositories.
var (
	// ErrValidation is returned for empty titles or keywords. Storage is never touched.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound is returned when no note carries the requested ID.
	ErrNotFound = errors.New("note not found")
	// ErrInvalidID is returned when an ID cannot be parsed.
	// Callers report it the same way as ErrNotFound.
	ErrInvalidID = errors.New("invalid note ID")
	// ErrIO matches any *IOError via errors.Is.
	ErrIO = errors.New("storage failure")
)

// IOError signals that the underlying storage could not be read or written.
// The failed operation is abandoned; nothing is retried.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrIO) true for every IOError.
func (e *IOError) Is(target error) bool { return target == ErrIO }
