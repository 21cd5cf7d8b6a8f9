package textbuf

// Point is a 1-based line and column position, matching what the
// status line displays. Column is measured in code units from the
// start of the line.
type Point struct {
	Line   int
	Column int
}

// Line break units recognized by the position helpers. A CR LF pair
// counts as a single break.
const (
	unitLF = 0x000A
	unitCR = 0x000D
)

// LineCount returns the number of lines in the text. An empty text
// has one line, mirroring how an edit control reports it.
func (t Text) LineCount() int {
	lines := 1
	for i := 0; i < len(t); i++ {
		if t[i] == unitCR {
			lines++
			if i+1 < len(t) && t[i+1] == unitLF {
				i++
			}
		} else if t[i] == unitLF {
			lines++
		}
	}
	return lines
}

// PointAt returns the 1-based line and column of a code-unit offset.
// Offsets outside [0, len] are clamped.
func (t Text) PointAt(offset int) Point {
	if offset < 0 {
		offset = 0
	}
	if offset > len(t) {
		offset = len(t)
	}

	line := 1
	lineStart := 0
	for i := 0; i < offset; i++ {
		if t[i] == unitCR {
			if i+1 < offset && t[i+1] == unitLF {
				i++
			} else if i+1 == offset && i+1 < len(t) && t[i+1] == unitLF {
				// Offset splits a CR LF pair; treat it as before the break.
				continue
			}
			line++
			lineStart = i + 1
		} else if t[i] == unitLF {
			line++
			lineStart = i + 1
		}
	}
	return Point{Line: line, Column: offset - lineStart + 1}
}

// LineStart returns the code-unit offset of the first unit of the
// given 1-based line. Lines past the end yield the start of the last
// line; lines before 1 yield 0.
func (t Text) LineStart(line int) int {
	if line <= 1 {
		return 0
	}

	current := 1
	start := 0
	for i := 0; i < len(t); i++ {
		broke := false
		if t[i] == unitCR {
			if i+1 < len(t) && t[i+1] == unitLF {
				i++
			}
			broke = true
		} else if t[i] == unitLF {
			broke = true
		}
		if broke {
			current++
			start = i + 1
			if current == line {
				return start
			}
		}
	}
	return start
}
