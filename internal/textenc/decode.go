package textenc

import (
	"bytes"
	"fmt"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/dshills/retropad/internal/textbuf"
)

// Decode converts raw file bytes to canonical text according to the
// given tag. Failure is all-or-nothing: on error no partial text is
// returned.
func Decode(data []byte, tag Tag) (textbuf.Text, error) {
	switch tag {
	case TagUTF16LE:
		return decodeUTF16LE(data), nil
	case TagUTF16BE:
		return decodeUTF16BE(data), nil
	case TagUTF8:
		return decodeUTF8(data)
	case TagANSI:
		return decodeANSI(data), nil
	default:
		return nil, fmt.Errorf("%w: unknown encoding %q", ErrDecodeFailed, tag)
	}
}

// decodeUTF16LE copies little-endian byte pairs through unchanged,
// skipping a leading FF FE mark. A trailing odd byte is dropped
// rather than treated as an error.
func decodeUTF16LE(data []byte) textbuf.Text {
	offset := 0
	if bytes.HasPrefix(data, bomUTF16LE) {
		offset = 2
	}
	units := (len(data) - offset) / 2
	if units <= 0 {
		return textbuf.Text{}
	}
	text := make(textbuf.Text, units)
	for i := 0; i < units; i++ {
		lo := data[offset+i*2]
		hi := data[offset+i*2+1]
		text[i] = uint16(hi)<<8 | uint16(lo)
	}
	return text
}

// decodeUTF16BE reassembles big-endian byte pairs high-byte-first,
// skipping a leading FE FF mark. The swap is done per 16-bit unit,
// which is also correct for surrogate pairs: each half of the pair is
// independently byte-swapped.
func decodeUTF16BE(data []byte) textbuf.Text {
	offset := 0
	if bytes.HasPrefix(data, bomUTF16BE) {
		offset = 2
	}
	units := (len(data) - offset) / 2
	if units <= 0 {
		return textbuf.Text{}
	}
	text := make(textbuf.Text, units)
	for i := 0; i < units; i++ {
		hi := data[offset+i*2]
		lo := data[offset+i*2+1]
		text[i] = uint16(hi)<<8 | uint16(lo)
	}
	return text
}

// decodeUTF8 transcodes UTF-8 bytes to canonical text, skipping a
// leading EF BB BF mark. The transcode is lenient: invalid sequences
// become U+FFFD. It fails only when the transcoder produces no output
// for non-empty input.
func decodeUTF8(data []byte) (textbuf.Text, error) {
	body := data
	if bytes.HasPrefix(body, bomUTF8) {
		body = body[3:]
	}
	if len(body) == 0 {
		return textbuf.Text{}, nil
	}

	decoded, err := unicode.UTF8.NewDecoder().Bytes(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeFailed, err)
	}

	text := textbuf.FromString(string(decoded))
	if text.IsEmpty() {
		return nil, ErrDecodeFailed
	}
	return text, nil
}

// decodeANSI maps every input byte to exactly one code unit via the
// Windows-1252 table. Unmapped bytes become the replacement character;
// this path never fails.
func decodeANSI(data []byte) textbuf.Text {
	text := make(textbuf.Text, len(data))
	for i, b := range data {
		r := charmap.Windows1252.DecodeByte(b)
		text[i] = uint16(r)
	}
	return text
}
