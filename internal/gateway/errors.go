package gateway

import (
	"errors"
	"fmt"
)

// Sentinel errors for gateway operations.
var (
	// ErrSourceTooLarge is returned for files past the practical
	// size limit, before any decode is attempted.
	ErrSourceTooLarge = errors.New("unsupported file size")

	// ErrIsDirectory is returned when the path names a directory.
	ErrIsDirectory = errors.New("path is a directory")

	// ErrReadFailed is returned when the file cannot be read.
	ErrReadFailed = errors.New("failed reading file")

	// ErrWriteFailed is returned when the file cannot be written.
	ErrWriteFailed = errors.New("failed writing file")

	// ErrNoPath is returned when saving a document that has never
	// been given a path.
	ErrNoPath = errors.New("document has no path")
)

// PathError wraps an error with the operation and path it occurred on.
type PathError struct {
	Op   string
	Path string
	Err  error
}

// Error returns the formatted error message.
func (e *PathError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *PathError) Unwrap() error {
	return e.Err
}
