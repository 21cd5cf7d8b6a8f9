// Package search provides substring search and replace-all over
// canonical text. Matching is either exact or case-folded; the fold
// is applied to scratch copies only, so the caller's buffer is never
// mutated by a search.
package search

import (
	"github.com/dshills/retropad/internal/textbuf"
)

// Match is a half-open [Start, End) span of code-unit offsets. The
// span length always equals the needle's length: case folding changes
// only casing, never character count.
type Match struct {
	Start int
	End   int
}

// Options configures a Find call.
type Options struct {
	// MatchCase makes the comparison exact instead of case-folded.
	MatchCase bool

	// Forward searches toward the end of the text; false searches
	// toward the beginning.
	Forward bool

	// From is the code-unit offset to start from. It is clamped into
	// [0, len(text)].
	From int
}

// Find locates the next occurrence of needle in text. An empty needle
// never matches. Both directions wrap: a forward search that exhausts
// the tail restarts from the top of the buffer, and a backward search
// that finds nothing before From returns the last occurrence at or
// after it.
func Find(text, needle textbuf.Text, opts Options) (Match, bool) {
	if needle.IsEmpty() {
		return Match{}, false
	}

	hay := text
	pat := needle
	if !opts.MatchCase {
		hay = text.Fold()
		pat = needle.Fold()
	}

	from := opts.From
	if from < 0 {
		from = 0
	}
	if from > len(hay) {
		from = len(hay)
	}

	var start int
	if opts.Forward {
		start = textbuf.Index(hay, pat, from)
		if start < 0 && from > 0 {
			// Restart from the top; the wrapped scan covers the whole
			// buffer and may re-find the same occurrence.
			start = textbuf.Index(hay, pat, 0)
		}
	} else {
		start = lastIndexBefore(hay, pat, from)
		if start < 0 && from < len(hay) {
			start = lastIndexAtOrAfter(hay, pat, from)
		}
	}

	if start < 0 {
		return Match{}, false
	}
	return Match{Start: start, End: start + len(pat)}, true
}

// lastIndexBefore returns the greatest match offset strictly less
// than limit, or -1.
func lastIndexBefore(hay, pat textbuf.Text, limit int) int {
	found := -1
	pos := 0
	for {
		i := textbuf.Index(hay, pat, pos)
		if i < 0 || i >= limit {
			break
		}
		found = i
		pos = i + 1
	}
	return found
}

// lastIndexAtOrAfter returns the greatest match offset at or after
// from, or -1.
func lastIndexAtOrAfter(hay, pat textbuf.Text, from int) int {
	found := -1
	pos := from
	for {
		i := textbuf.Index(hay, pat, pos)
		if i < 0 {
			break
		}
		found = i
		pos = i + 1
	}
	return found
}
