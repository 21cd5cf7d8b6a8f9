package textbuf

// LineEnding is the line ending style of a text.
type LineEnding string

const (
	// LineEndingLF is Unix-style (\n), the default for empty text.
	LineEndingLF LineEnding = "lf"

	// LineEndingCRLF is Windows-style (\r\n).
	LineEndingCRLF LineEnding = "crlf"

	// LineEndingCR is old Mac-style (\r).
	LineEndingCR LineEnding = "cr"

	// LineEndingMixed indicates multiple styles with significant
	// presence.
	LineEndingMixed LineEnding = "mixed"
)

// DetectLineEnding returns the dominant line ending style of the
// text. A style counts toward "mixed" when it makes up at least a
// tenth of all breaks; below that it is noise and the dominant style
// wins. Text with no breaks at all reports LF.
func DetectLineEnding(t Text) LineEnding {
	var lf, crlf, cr int

	for i := 0; i < len(t); i++ {
		if t[i] == unitCR {
			if i+1 < len(t) && t[i+1] == unitLF {
				crlf++
				i++
			} else {
				cr++
			}
		} else if t[i] == unitLF {
			lf++
		}
	}

	total := lf + crlf + cr
	if total == 0 {
		return LineEndingLF
	}

	threshold := total / 10
	if threshold < 1 {
		threshold = 1
	}
	significant := 0
	if lf >= threshold {
		significant++
	}
	if crlf >= threshold {
		significant++
	}
	if cr >= threshold {
		significant++
	}
	if significant > 1 {
		return LineEndingMixed
	}

	if crlf >= lf && crlf >= cr {
		return LineEndingCRLF
	}
	if cr > lf {
		return LineEndingCR
	}
	return LineEndingLF
}
