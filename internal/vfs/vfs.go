// Package vfs provides a small file system abstraction for the file
// gateway, enabling tests to run against an in-memory implementation.
package vfs

import (
	"io/fs"
	"time"
)

// FS is the file surface the gateway needs: whole-file reads and
// writes plus metadata. There is no streaming access; documents are
// loaded and saved in full.
type FS interface {
	// ReadFile reads the entire file content.
	ReadFile(path string) ([]byte, error)

	// WriteFile writes data to a file, creating it if necessary.
	WriteFile(path string, data []byte, perm fs.FileMode) error

	// Stat returns file information.
	Stat(path string) (FileInfo, error)

	// Abs returns the absolute path.
	Abs(path string) (string, error)

	// Exists returns true if the path exists.
	Exists(path string) bool
}

// FileInfo describes a file.
type FileInfo struct {
	// Path is the file path.
	Path string

	// Size is the file size in bytes.
	Size int64

	// ModTime is the last modification time.
	ModTime time.Time

	// IsDir is true for directories.
	IsDir bool
}
