package service

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a task index is out of range.
	ErrNotFound = errors.New("task not found")

	// ErrInvalidDescription is returned when a description cannot be stored.
	ErrInvalidDescription = errors.New("invalid description")

	// ErrMalformedLine is returned when a stored line cannot be decoded.
	ErrMalformedLine = errors.New("malformed line")

	// ErrLocked is returned when another session holds the backing file.
	ErrLocked = errors.New("task file is in use by another session")
)

// StorageError reports a failure reading, parsing or writing the backing file.
type StorageError struct {
	Op   string // "load", "save" or "lock"
	Path string
	Line int // 1-based line number for parse failures, 0 otherwise
	Err  error
}

func (e *StorageError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s %s: line %d: %v", e.Op, e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// IsStorageError reports whether err is, or wraps, a *StorageError.
func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
