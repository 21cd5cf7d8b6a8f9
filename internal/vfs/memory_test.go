package vfs

import (
	"errors"
	"io/fs"
	"testing"
	"time"
)

func TestMemFSReadWrite(t *testing.T) {
	m := NewMemFS()

	if err := m.WriteFile("/doc.txt", []byte("hello"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	data, err := m.ReadFile("/doc.txt")
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "hello" {
		t.Errorf("ReadFile() = %q, want %q", data, "hello")
	}

	// Relative paths resolve to the same file.
	if !m.Exists("doc.txt") {
		t.Error("relative path should resolve to the same file")
	}
}

func TestMemFSNotExist(t *testing.T) {
	m := NewMemFS()

	_, err := m.ReadFile("/missing.txt")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ReadFile() error = %v, want fs.ErrNotExist", err)
	}

	_, err = m.Stat("/missing.txt")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Stat() error = %v, want fs.ErrNotExist", err)
	}
}

func TestMemFSStatAndTouch(t *testing.T) {
	m := NewMemFS()
	if err := m.WriteFile("/doc.txt", []byte("abc"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	info, err := m.Stat("/doc.txt")
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if info.Size != 3 {
		t.Errorf("Size = %d, want 3", info.Size)
	}

	later := info.ModTime.Add(time.Minute)
	m.Touch("/doc.txt", later)

	info, err = m.Stat("/doc.txt")
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if !info.ModTime.Equal(later) {
		t.Errorf("ModTime = %v, want %v", info.ModTime, later)
	}
}

func TestMemFSIsolation(t *testing.T) {
	m := NewMemFS()
	data := []byte("abc")
	if err := m.WriteFile("/doc.txt", data, 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	data[0] = 'z'
	got, err := m.ReadFile("/doc.txt")
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(got) != "abc" {
		t.Error("stored content should be isolated from the caller's slice")
	}
}
