// Package textenc converts between raw file bytes and canonical text.
//
// It provides BOM-based encoding detection, whole-buffer decoding and
// encoding for the four encodings the editor supports: UTF-8, UTF-16
// little endian, UTF-16 big endian, and the single-byte ANSI code page
// (Windows-1252). Detection never fails; decode and encode failures
// are all-or-nothing and never hand back a partial buffer.
package textenc

import (
	"bytes"
	"errors"
	"unicode/utf8"
)

// Tag identifies a character encoding. A document retains its tag for
// its whole lifetime; only an explicit save-as action changes it.
type Tag string

const (
	// TagUTF8 is UTF-8, the default for new and empty documents.
	TagUTF8 Tag = "utf-8"

	// TagUTF16LE is UTF-16 little endian.
	TagUTF16LE Tag = "utf-16le"

	// TagUTF16BE is UTF-16 big endian. Read-only: saves downgrade it
	// to UTF-8 (see SaveTag).
	TagUTF16BE Tag = "utf-16be"

	// TagANSI is the single-byte legacy code page (Windows-1252).
	TagANSI Tag = "ansi"
)

// Common errors.
var (
	// ErrDecodeFailed is returned when bytes cannot be converted to
	// canonical text.
	ErrDecodeFailed = errors.New("unable to decode file content")

	// ErrEncodeFailed is returned when canonical text is malformed,
	// such as an unpaired surrogate fed to the UTF-8 path.
	ErrEncodeFailed = errors.New("unable to encode text")
)

// BOM (Byte Order Mark) constants.
var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// Detect examines file content and returns its encoding. It checks
// BOM markers first (UTF-16 before UTF-8), then attempts strict UTF-8
// validation, and falls back to ANSI, which accepts any byte sequence.
// Detect never fails; empty content detects as UTF-8.
func Detect(data []byte) Tag {
	if bytes.HasPrefix(data, bomUTF16LE) {
		return TagUTF16LE
	}
	if bytes.HasPrefix(data, bomUTF16BE) {
		return TagUTF16BE
	}
	if bytes.HasPrefix(data, bomUTF8) {
		return TagUTF8
	}
	if utf8.Valid(data) {
		return TagUTF8
	}
	return TagANSI
}

// SaveTag returns the tag actually written for a save. UTF-16 BE is
// not produced on save; it is downgraded to UTF-8 for compatibility,
// and the document's tag is updated after a successful save.
func SaveTag(tag Tag) Tag {
	if tag == TagUTF16BE {
		return TagUTF8
	}
	return tag
}

// Valid reports whether t is one of the four supported tags.
func (t Tag) Valid() bool {
	switch t {
	case TagUTF8, TagUTF16LE, TagUTF16BE, TagANSI:
		return true
	}
	return false
}

// String returns the tag name.
func (t Tag) String() string {
	return string(t)
}

// ParseTag converts a tag name to a Tag.
func ParseTag(s string) (Tag, bool) {
	t := Tag(s)
	if t.Valid() {
		return t, true
	}
	return "", false
}
