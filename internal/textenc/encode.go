package textenc

import (
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/dshills/retropad/internal/textbuf"
)

// ansiSubstitute replaces code units the ANSI code page cannot
// represent, matching the platform default character.
const ansiSubstitute = '?'

// Encode serializes canonical text to raw bytes for the given tag,
// prepending the appropriate byte-order mark. UTF-16 BE is never
// produced: that tag takes the UTF-8 path, and the caller is expected
// to relabel the document with SaveTag after a successful save.
// Failure is all-or-nothing.
func Encode(text textbuf.Text, tag Tag) ([]byte, error) {
	switch tag {
	case TagUTF16LE:
		return encodeUTF16LE(text), nil
	case TagANSI:
		return encodeANSI(text), nil
	case TagUTF8, TagUTF16BE:
		return encodeUTF8(text)
	default:
		return nil, fmt.Errorf("%w: unknown encoding %q", ErrEncodeFailed, tag)
	}
}

// encodeUTF16LE writes the FF FE mark followed by each code unit as
// two little-endian bytes.
func encodeUTF16LE(text textbuf.Text) []byte {
	out := make([]byte, 0, 2+len(text)*2)
	out = append(out, bomUTF16LE...)
	for _, u := range text {
		out = append(out, byte(u), byte(u>>8))
	}
	return out
}

// encodeUTF8 writes the EF BB BF mark followed by the UTF-8
// transcoding of the text. Unlike decoding, the encode path is
// strict: an unpaired surrogate unit means the canonical text is
// malformed, and the whole encode fails.
func encodeUTF8(text textbuf.Text) ([]byte, error) {
	out := make([]byte, 0, 3+len(text))
	out = append(out, bomUTF8...)

	var buf [utf8.UTFMax]byte
	for i := 0; i < len(text); i++ {
		u := text[i]
		r := rune(u)
		if utf16.IsSurrogate(r) {
			if i+1 >= len(text) {
				return nil, fmt.Errorf("%w: unpaired surrogate %04X at %d", ErrEncodeFailed, u, i)
			}
			r = utf16.DecodeRune(rune(u), rune(text[i+1]))
			if r == utf8.RuneError {
				return nil, fmt.Errorf("%w: unpaired surrogate %04X at %d", ErrEncodeFailed, u, i)
			}
			i++
		}
		n := utf8.EncodeRune(buf[:], r)
		out = append(out, buf[:n]...)
	}
	return out, nil
}

// encodeANSI converts each code unit to the Windows-1252 code page
// without a mark. Unmappable units become the substitution byte; a
// surrogate pair collapses to a single substitute, the same way a
// one-character-per-unit converter treats a pair as one character.
// This path is lossy by design.
func encodeANSI(text textbuf.Text) []byte {
	out := make([]byte, 0, len(text))
	for i := 0; i < len(text); i++ {
		u := text[i]
		r := rune(u)
		if utf16.IsSurrogate(r) {
			if i+1 < len(text) {
				if paired := utf16.DecodeRune(rune(u), rune(text[i+1])); paired != utf8.RuneError {
					i++
				}
			}
			out = append(out, ansiSubstitute)
			continue
		}
		if b, ok := charmap.Windows1252.EncodeRune(r); ok {
			out = append(out, b)
		} else {
			out = append(out, ansiSubstitute)
		}
	}
	return out
}
