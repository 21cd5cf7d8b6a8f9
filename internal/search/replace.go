package search

import (
	"github.com/dshills/retropad/internal/textbuf"
)

// ReplaceAll replaces every non-overlapping occurrence of needle in
// text with replacement and returns the result with the number of
// replacements made. Matching honors matchCase the same way Find
// does; untouched spans keep their original casing even when the
// match was case-folded. With no matches (or an empty needle) the
// original text is returned unchanged with count 0. On success the
// result is a brand-new buffer; the input is never mutated.
func ReplaceAll(text, needle, replacement textbuf.Text, matchCase bool) (textbuf.Text, int) {
	if needle.IsEmpty() {
		return text, 0
	}

	hay := text
	pat := needle
	if !matchCase {
		hay = text.Fold()
		pat = needle.Fold()
	}

	// Pass 1: count non-overlapping occurrences, advancing past each
	// match by the needle's length.
	count := 0
	for pos := 0; ; {
		i := textbuf.Index(hay, pat, pos)
		if i < 0 {
			break
		}
		count++
		pos = i + len(pat)
	}
	if count == 0 {
		return text, 0
	}

	// The result length is known exactly.
	newLen := len(text) - count*len(needle) + count*len(replacement)
	result := make(textbuf.Text, 0, newLen)

	// Pass 2: walk the fold-scan positions and the original text in
	// lock-step, copying untouched spans from the case-preserved
	// original.
	pos := 0
	for {
		i := textbuf.Index(hay, pat, pos)
		if i < 0 {
			break
		}
		result = append(result, text[pos:i]...)
		result = append(result, replacement...)
		pos = i + len(pat)
	}
	result = append(result, text[pos:]...)

	return result, count
}
