package textbuf

import (
	"unicode"
	"unicode/utf16"
)

// Text is a sequence of UTF-16 code units. The length is len(t);
// no sentinel terminator is stored.
type Text []uint16

// Surrogate range boundaries for 16-bit code units.
const (
	surrMin = 0xD800
	surrMax = 0xDFFF
)

// FromString converts a Go string to canonical text.
// Characters outside the basic plane become surrogate pairs.
func FromString(s string) Text {
	if s == "" {
		return Text{}
	}
	return Text(utf16.Encode([]rune(s)))
}

// String converts canonical text back to a Go string.
// Unpaired surrogate units decode as U+FFFD.
func (t Text) String() string {
	if len(t) == 0 {
		return ""
	}
	return string(utf16.Decode(t))
}

// Len returns the length in code units.
func (t Text) Len() int {
	return len(t)
}

// IsEmpty returns true if the text has no code units.
func (t Text) IsEmpty() bool {
	return len(t) == 0
}

// Clone returns an independent copy of the text.
func (t Text) Clone() Text {
	if t == nil {
		return nil
	}
	c := make(Text, len(t))
	copy(c, t)
	return c
}

// Equal reports whether two texts contain the same code units.
func (t Text) Equal(other Text) bool {
	if len(t) != len(other) {
		return false
	}
	for i := range t {
		if t[i] != other[i] {
			return false
		}
	}
	return true
}

// Fold returns a lower-cased scratch copy of the text for
// case-insensitive comparison. The fold is applied per code unit, so
// it is always length-preserving; surrogate halves pass through
// unchanged. The receiver is never modified.
func (t Text) Fold() Text {
	folded := make(Text, len(t))
	for i, u := range t {
		folded[i] = foldUnit(u)
	}
	return folded
}

// foldUnit lower-cases a single code unit where the mapping stays
// within 16 bits.
func foldUnit(u uint16) uint16 {
	if u >= surrMin && u <= surrMax {
		return u
	}
	lower := unicode.ToLower(rune(u))
	if lower < 0 || lower > 0xFFFF {
		return u
	}
	return uint16(lower)
}

// Index returns the offset of the first occurrence of needle in t at
// or after from, or -1 if there is none. An empty needle never
// matches.
func Index(t, needle Text, from int) int {
	if len(needle) == 0 {
		return -1
	}
	if from < 0 {
		from = 0
	}
	for i := from; i+len(needle) <= len(t); i++ {
		if t[i] != needle[0] {
			continue
		}
		match := true
		for j := 1; j < len(needle); j++ {
			if t[i+j] != needle[j] {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}

// Concat returns a new text containing the given parts in order.
func Concat(parts ...Text) Text {
	total := 0
	for _, p := range parts {
		total += len(p)
	}
	out := make(Text, 0, total)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
