package textbuf

import "testing"

func TestLineCount(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{name: "empty", in: "", want: 1},
		{name: "single line", in: "hello", want: 1},
		{name: "two lines LF", in: "a\nb", want: 2},
		{name: "two lines CRLF", in: "a\r\nb", want: 2},
		{name: "two lines CR", in: "a\rb", want: 2},
		{name: "trailing newline", in: "a\n", want: 2},
		{name: "mixed", in: "a\nb\r\nc\rd", want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromString(tt.in).LineCount()
			if got != tt.want {
				t.Errorf("LineCount(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestPointAt(t *testing.T) {
	text := FromString("ab\ncde\r\nf")

	tests := []struct {
		name   string
		offset int
		want   Point
	}{
		{name: "start", offset: 0, want: Point{Line: 1, Column: 1}},
		{name: "mid first line", offset: 1, want: Point{Line: 1, Column: 2}},
		{name: "start second line", offset: 3, want: Point{Line: 2, Column: 1}},
		{name: "end second line", offset: 6, want: Point{Line: 2, Column: 4}},
		{name: "between CR and LF stays on old line", offset: 7, want: Point{Line: 2, Column: 5}},
		{name: "after CRLF", offset: 8, want: Point{Line: 3, Column: 1}},
		{name: "end of text", offset: 9, want: Point{Line: 3, Column: 2}},
		{name: "clamped negative", offset: -1, want: Point{Line: 1, Column: 1}},
		{name: "clamped past end", offset: 100, want: Point{Line: 3, Column: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := text.PointAt(tt.offset)
			if got != tt.want {
				t.Errorf("PointAt(%d) = %+v, want %+v", tt.offset, got, tt.want)
			}
		})
	}
}

func TestLineStart(t *testing.T) {
	text := FromString("ab\ncde\r\nf")

	tests := []struct {
		name string
		line int
		want int
	}{
		{name: "first", line: 1, want: 0},
		{name: "second", line: 2, want: 3},
		{name: "third", line: 3, want: 8},
		{name: "past end clamps to last", line: 10, want: 8},
		{name: "below one", line: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := text.LineStart(tt.line)
			if got != tt.want {
				t.Errorf("LineStart(%d) = %d, want %d", tt.line, got, tt.want)
			}
		})
	}
}
