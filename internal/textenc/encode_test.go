package textenc

import (
	"bytes"
	"errors"
	"testing"

	"github.com/dshills/retropad/internal/textbuf"
)

func TestEncodeUTF16LE(t *testing.T) {
	data, err := Encode(textbuf.FromString("Hi"), TagUTF16LE)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	want := []byte{0xFF, 0xFE, 0x48, 0x00, 0x69, 0x00}
	if !bytes.Equal(data, want) {
		t.Errorf("Encode() = % X, want % X", data, want)
	}
}

func TestEncodeUTF16LEEmpty(t *testing.T) {
	data, err := Encode(textbuf.Text{}, TagUTF16LE)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	// An empty document still gets its mark.
	if !bytes.Equal(data, []byte{0xFF, 0xFE}) {
		t.Errorf("Encode() = % X, want FF FE", data)
	}
}

func TestEncodeUTF8(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []byte
	}{
		{
			name: "ASCII",
			in:   "Hi",
			want: []byte{0xEF, 0xBB, 0xBF, 0x48, 0x69},
		},
		{
			name: "multibyte",
			in:   "€",
			want: []byte{0xEF, 0xBB, 0xBF, 0xE2, 0x82, 0xAC},
		},
		{
			name: "surrogate pair",
			in:   "\U0001D11E",
			want: []byte{0xEF, 0xBB, 0xBF, 0xF0, 0x9D, 0x84, 0x9E},
		},
		{
			name: "empty",
			in:   "",
			want: []byte{0xEF, 0xBB, 0xBF},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := Encode(textbuf.FromString(tt.in), TagUTF8)
			if err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			if !bytes.Equal(data, tt.want) {
				t.Errorf("Encode() = % X, want % X", data, tt.want)
			}
		})
	}
}

func TestEncodeUTF8UnpairedSurrogate(t *testing.T) {
	tests := []struct {
		name string
		text textbuf.Text
	}{
		{name: "lone high surrogate", text: textbuf.Text{0xD834}},
		{name: "lone low surrogate", text: textbuf.Text{0xDD1E, 0x48}},
		{name: "high followed by non-low", text: textbuf.Text{0xD834, 0x0041}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := Encode(tt.text, TagUTF8)
			if !errors.Is(err, ErrEncodeFailed) {
				t.Errorf("error = %v, want ErrEncodeFailed", err)
			}
			if data != nil {
				t.Error("failed encode must not return partial bytes")
			}
		})
	}
}

func TestEncodeUTF16BEDowngradesToUTF8(t *testing.T) {
	// A document tagged UTF-16 BE is written as UTF-8 with the EF BB
	// BF mark; the caller relabels the tag via SaveTag afterwards.
	data, err := Encode(textbuf.FromString("Hi"), TagUTF16BE)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	want := []byte{0xEF, 0xBB, 0xBF, 0x48, 0x69}
	if !bytes.Equal(data, want) {
		t.Errorf("Encode() = % X, want % X", data, want)
	}
}

func TestEncodeANSI(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []byte
	}{
		{
			name: "ASCII passthrough without mark",
			in:   "Hi",
			want: []byte{0x48, 0x69},
		},
		{
			name: "windows-1252 specials",
			in:   "€“",
			want: []byte{0x80, 0x93},
		},
		{
			name: "unmappable becomes substitute",
			in:   "A世B",
			want: []byte{0x41, 0x3F, 0x42},
		},
		{
			name: "surrogate pair collapses to one substitute",
			in:   "A\U0001D11EB",
			want: []byte{0x41, 0x3F, 0x42},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := Encode(textbuf.FromString(tt.in), TagANSI)
			if err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			if !bytes.Equal(data, tt.want) {
				t.Errorf("Encode() = % X, want % X", data, tt.want)
			}
		})
	}
}

func TestEncodeANSILoneSurrogate(t *testing.T) {
	// The lossy ANSI path substitutes rather than failing.
	data, err := Encode(textbuf.Text{0xD834}, TagANSI)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if !bytes.Equal(data, []byte{0x3F}) {
		t.Errorf("Encode() = % X, want 3F", data)
	}
}

// Round trip: Decode(Encode(text, T)) == text for every tag except
// UTF-16 BE, with encoding detection run on the encoded bytes.
func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		tag  Tag
		in   string
	}{
		{name: "utf-8 ascii", tag: TagUTF8, in: "The quick fox."},
		{name: "utf-8 multibyte", tag: TagUTF8, in: "café 世界 \U0001D11E"},
		{name: "utf-16le ascii", tag: TagUTF16LE, in: "The quick fox."},
		{name: "utf-16le surrogates", tag: TagUTF16LE, in: "\U0001D11E\U0001F600"},
		{name: "ansi ascii", tag: TagANSI, in: "The quick fox."},
		{name: "ansi latin-1", tag: TagANSI, in: "café résumé"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			original := textbuf.FromString(tt.in)

			data, err := Encode(original, tt.tag)
			if err != nil {
				t.Fatalf("Encode() error = %v", err)
			}

			// Detection-aware decode: pure ASCII bytes from the ANSI
			// path detect as UTF-8, which restores the same text.
			decoded, err := Decode(data, Detect(data))
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if !decoded.Equal(original) {
				t.Errorf("round trip = %q, want %q", decoded.String(), tt.in)
			}
		})
	}
}
