// Package gateway moves documents between disk bytes and session
// state. Loading detects the encoding and decodes to canonical text;
// saving re-encodes with the document's retained tag and writes the
// bytes back. The gateway owns all file I/O; the core conversion and
// search packages never touch the disk.
package gateway

import (
	"fmt"

	"github.com/dshills/retropad/internal/session"
	"github.com/dshills/retropad/internal/textenc"
	"github.com/dshills/retropad/internal/vfs"
)

// DefaultMaxFileSize is the practical whole-file load limit. File
// sizes past it are rejected before any decode is attempted.
const DefaultMaxFileSize = int64(1<<32 - 1) // 4 GiB

// filePerm is the mode for newly created files.
const filePerm = 0o644

// Gateway performs file load and save for the editor.
type Gateway struct {
	fs          vfs.FS
	maxFileSize int64
}

// Option configures a Gateway.
type Option func(*Gateway)

// WithMaxFileSize sets the maximum file size accepted by Load.
func WithMaxFileSize(size int64) Option {
	return func(g *Gateway) {
		g.maxFileSize = size
	}
}

// New creates a Gateway over the given file system.
func New(fs vfs.FS, opts ...Option) *Gateway {
	g := &Gateway{
		fs:          fs,
		maxFileSize: DefaultMaxFileSize,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Load reads a file, detects its encoding, and returns a decoded
// document with the tag retained for save. An empty file
// short-circuits to an empty UTF-8 document without invoking
// detection or decoding.
func (g *Gateway) Load(path string) (*session.Document, error) {
	absPath, err := g.fs.Abs(path)
	if err != nil {
		return nil, &PathError{Op: "load", Path: path, Err: err}
	}

	info, err := g.fs.Stat(absPath)
	if err != nil {
		return nil, &PathError{Op: "load", Path: path, Err: err}
	}
	if info.IsDir {
		return nil, &PathError{Op: "load", Path: path, Err: ErrIsDirectory}
	}
	if g.maxFileSize > 0 && info.Size > g.maxFileSize {
		return nil, &PathError{Op: "load", Path: path, Err: ErrSourceTooLarge}
	}

	data, err := g.fs.ReadFile(absPath)
	if err != nil {
		return nil, &PathError{Op: "load", Path: path, Err: fmt.Errorf("%w: %v", ErrReadFailed, err)}
	}

	doc := session.New()
	if len(data) == 0 {
		doc.Reset(absPath, doc.Text, textenc.TagUTF8, info.ModTime)
		return doc, nil
	}

	tag := textenc.Detect(data)
	text, err := textenc.Decode(data, tag)
	if err != nil {
		return nil, &PathError{Op: "load", Path: path, Err: err}
	}

	doc.Reset(absPath, text, tag, info.ModTime)
	return doc, nil
}

// Save encodes the document with its retained tag and writes it to
// its path. After a successful save the document is relabeled (a
// UTF-16 BE tag becomes UTF-8, matching the bytes that were written)
// and its modified flag clears.
func (g *Gateway) Save(doc *session.Document) error {
	if doc.Path == "" {
		return &PathError{Op: "save", Path: "", Err: ErrNoPath}
	}
	return g.SaveAs(doc, doc.Path)
}

// SaveAs saves the document to a new path, updating the document's
// path on success.
func (g *Gateway) SaveAs(doc *session.Document, path string) error {
	absPath, err := g.fs.Abs(path)
	if err != nil {
		return &PathError{Op: "save", Path: path, Err: err}
	}

	data, err := textenc.Encode(doc.Text, doc.Encoding)
	if err != nil {
		return &PathError{Op: "save", Path: path, Err: err}
	}

	if err := g.fs.WriteFile(absPath, data, filePerm); err != nil {
		return &PathError{Op: "save", Path: path, Err: fmt.Errorf("%w: %v", ErrWriteFailed, err)}
	}

	modTime := doc.DiskModTime
	if info, err := g.fs.Stat(absPath); err == nil {
		modTime = info.ModTime
	}
	doc.MarkSaved(absPath, modTime)
	return nil
}

// HasExternalChanges reports whether the file on disk has been
// modified since the document was loaded or last saved.
func (g *Gateway) HasExternalChanges(doc *session.Document) bool {
	if doc.Path == "" {
		return false
	}
	info, err := g.fs.Stat(doc.Path)
	if err != nil {
		return false
	}
	return !info.ModTime.Equal(doc.DiskModTime)
}
