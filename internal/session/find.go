package session

import (
	"fmt"

	"github.com/dshills/retropad/internal/search"
	"github.com/dshills/retropad/internal/textbuf"
)

// SetFindPattern stores the needle and options used by FindNext and
// Replace. An empty needle leaves the previous pattern in place, the
// way the find dialog keeps its last entry.
func (d *Document) SetFindPattern(needle textbuf.Text, matchCase, down bool) {
	if !needle.IsEmpty() {
		d.findText = needle.Clone()
	}
	d.matchCase = matchCase
	d.searchDown = down
}

// SetReplaceWith stores the replacement text used by Replace and
// ReplaceAll.
func (d *Document) SetReplaceWith(replacement textbuf.Text) {
	d.replaceText = replacement.Clone()
}

// HasFindPattern reports whether a previous search pattern exists.
func (d *Document) HasFindPattern() bool {
	return !d.findText.IsEmpty()
}

// FindNext searches for the stored pattern relative to the current
// selection: forward searches start at the selection end, backward
// searches at the selection start. reverse flips the stored
// direction for one call (Shift+F3). On a hit the match becomes the
// selection.
func (d *Document) FindNext(reverse bool) (search.Match, bool) {
	if d.findText.IsEmpty() {
		return search.Match{}, false
	}

	down := d.searchDown
	if reverse {
		down = !down
	}

	from := d.selStart
	if down {
		from = d.selEnd
	}

	m, ok := search.Find(d.Text, d.findText, search.Options{
		MatchCase: d.matchCase,
		Forward:   down,
		From:      from,
	})
	if !ok {
		return search.Match{}, false
	}

	d.selStart = m.Start
	d.selEnd = m.End
	return m, true
}

// Replace finds the stored pattern at or after the selection start,
// replaces that one occurrence with the stored replacement, and
// leaves the caret after it. Returns false when no occurrence exists.
func (d *Document) Replace() bool {
	if d.findText.IsEmpty() {
		return false
	}

	m, ok := search.Find(d.Text, d.findText, search.Options{
		MatchCase: d.matchCase,
		Forward:   d.searchDown,
		From:      d.selStart,
	})
	if !ok {
		return false
	}

	d.selStart = m.Start
	d.selEnd = m.End
	d.ReplaceSelection(d.replaceText)
	return true
}

// ReplaceAll replaces every occurrence of the stored pattern with the
// stored replacement and installs the result as the document text.
// Returns the number of replacements; zero leaves the document
// untouched and unmodified.
func (d *Document) ReplaceAll() int {
	result, count := search.ReplaceAll(d.Text, d.findText, d.replaceText, d.matchCase)
	if count == 0 {
		return 0
	}
	d.Text = result
	d.Modified = true
	d.clampSelection()
	return count
}

// ReplaceAllSummary formats the result message shown after a
// Replace All.
func ReplaceAllSummary(count int) string {
	plural := "s"
	if count == 1 {
		plural = ""
	}
	return fmt.Sprintf("Replaced %d occurrence%s.", count, plural)
}

// StatusLine formats the status bar text for the current caret
// position.
func (d *Document) StatusLine() string {
	point, lines := d.Position()
	return fmt.Sprintf("Ln %d, Col %d    Lines: %d", point.Line, point.Column, lines)
}
