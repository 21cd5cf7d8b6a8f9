package vfs

import (
	"io/fs"
	"path"
	"sync"
	"time"
)

// MemFS is an in-memory FS implementation for tests.
type MemFS struct {
	mu    sync.RWMutex
	files map[string]*memFile
	now   func() time.Time
}

type memFile struct {
	data    []byte
	modTime time.Time
}

// NewMemFS creates an empty in-memory file system.
func NewMemFS() *MemFS {
	return &MemFS{
		files: make(map[string]*memFile),
		now:   time.Now,
	}
}

// Ensure MemFS implements FS.
var _ FS = (*MemFS)(nil)

// normalize maps all paths onto a rooted, cleaned form.
func normalize(p string) string {
	if !path.IsAbs(p) {
		p = "/" + p
	}
	return path.Clean(p)
}

// ReadFile reads the entire file content.
func (f *MemFS) ReadFile(p string) ([]byte, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	file, ok := f.files[normalize(p)]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: p, Err: fs.ErrNotExist}
	}
	data := make([]byte, len(file.data))
	copy(data, file.data)
	return data, nil
}

// WriteFile writes data to a file, creating it if necessary.
func (f *MemFS) WriteFile(p string, data []byte, perm fs.FileMode) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	f.files[normalize(p)] = &memFile{data: stored, modTime: f.now()}
	return nil
}

// Stat returns file information.
func (f *MemFS) Stat(p string) (FileInfo, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	file, ok := f.files[normalize(p)]
	if !ok {
		return FileInfo{}, &fs.PathError{Op: "stat", Path: p, Err: fs.ErrNotExist}
	}
	return FileInfo{
		Path:    normalize(p),
		Size:    int64(len(file.data)),
		ModTime: file.modTime,
	}, nil
}

// Abs returns the absolute path.
func (f *MemFS) Abs(p string) (string, error) {
	return normalize(p), nil
}

// Exists returns true if the path exists.
func (f *MemFS) Exists(p string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	_, ok := f.files[normalize(p)]
	return ok
}

// Touch updates a file's modification time without changing content.
// Used by tests to simulate an external change.
func (f *MemFS) Touch(p string, t time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if file, ok := f.files[normalize(p)]; ok {
		file.modTime = t
	}
}
