// Package session holds the editor-session state for a single open
// document: its text, path, retained encoding, modified flag, and the
// selection and find state the UI layer operates through.
//
// A Document is owned by one caller at a time. It does no locking and
// no I/O; the gateway package moves documents to and from disk.
package session

import (
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/retropad/internal/textbuf"
	"github.com/dshills/retropad/internal/textenc"
)

// untitledName is shown for documents that have never been saved.
const untitledName = "Untitled"

// appTitle is the application name used in the window title.
const appTitle = "retropad"

// timeDateFormat renders the Time/Date insertion stamp, time first.
const timeDateFormat = "3:04 PM 1/2/2006"

// Document is one open document and its session state.
type Document struct {
	// ID uniquely identifies this document instance.
	ID string

	// Path is the file path, empty for a new unsaved document.
	Path string

	// Text is the canonical document text.
	Text textbuf.Text

	// Encoding is the tag the document was loaded with. It is
	// retained for the document's lifetime and used again on save.
	Encoding textenc.Tag

	// Modified is true when the text differs from what is on disk.
	Modified bool

	// DiskModTime is the file's modification time at load or last
	// save, used to detect external changes.
	DiskModTime time.Time

	selStart int
	selEnd   int

	// Find state carried between Find Next invocations.
	findText    textbuf.Text
	replaceText textbuf.Text
	matchCase   bool
	searchDown  bool
}

// New creates an empty untitled UTF-8 document.
func New() *Document {
	return &Document{
		ID:         uuid.NewString(),
		Text:       textbuf.Text{},
		Encoding:   textenc.TagUTF8,
		searchDown: true,
	}
}

// Reset installs freshly loaded content, replacing all session state
// except the find state. The document comes out unmodified.
func (d *Document) Reset(path string, text textbuf.Text, tag textenc.Tag, diskModTime time.Time) {
	d.Path = path
	d.Text = text
	d.Encoding = tag
	d.Modified = false
	d.DiskModTime = diskModTime
	d.selStart = 0
	d.selEnd = 0
}

// Name returns the display name: the base of the path, or Untitled.
func (d *Document) Name() string {
	if d.Path == "" {
		return untitledName
	}
	return filepath.Base(d.Path)
}

// Title returns the window title, prefixed with * when modified.
func (d *Document) Title() string {
	prefix := ""
	if d.Modified {
		prefix = "*"
	}
	return prefix + d.Name() + " - " + appTitle
}

// SetText replaces the document text and marks it modified.
func (d *Document) SetText(text textbuf.Text) {
	d.Text = text
	d.Modified = true
	d.clampSelection()
}

// MarkSaved records a successful save: the retained encoding is
// relabeled if the save downgraded it, and the modified flag clears.
func (d *Document) MarkSaved(path string, diskModTime time.Time) {
	d.Path = path
	d.Encoding = textenc.SaveTag(d.Encoding)
	d.Modified = false
	d.DiskModTime = diskModTime
}

// Select sets the selection, clamping both ends into the text.
func (d *Document) Select(start, end int) {
	if start > end {
		start, end = end, start
	}
	d.selStart = clamp(start, 0, len(d.Text))
	d.selEnd = clamp(end, 0, len(d.Text))
}

// Selection returns the current selection span.
func (d *Document) Selection() (start, end int) {
	return d.selStart, d.selEnd
}

// Caret returns the caret position (the selection start).
func (d *Document) Caret() int {
	return d.selStart
}

// ReplaceSelection splices text in place of the current selection and
// leaves the caret after the inserted text. The document is marked
// modified.
func (d *Document) ReplaceSelection(insert textbuf.Text) {
	prefix := d.Text[:d.selStart]
	suffix := d.Text[d.selEnd:]
	d.Text = textbuf.Concat(prefix, insert, suffix)
	caret := d.selStart + len(insert)
	d.selStart = caret
	d.selEnd = caret
	d.Modified = true
}

// InsertTimeDate inserts a locale-style time/date stamp at the caret,
// replacing any selection.
func (d *Document) InsertTimeDate(now time.Time) {
	d.ReplaceSelection(textbuf.FromString(now.Format(timeDateFormat)))
}

// GoToLine moves the caret to the start of the given 1-based line.
// Out-of-range lines clamp to the first or last line.
func (d *Document) GoToLine(line int) {
	if line < 1 {
		line = 1
	}
	if last := d.Text.LineCount(); line > last {
		line = last
	}
	offset := d.Text.LineStart(line)
	d.selStart = offset
	d.selEnd = offset
}

// LineEnding reports the document's dominant line ending style.
func (d *Document) LineEnding() textbuf.LineEnding {
	return textbuf.DetectLineEnding(d.Text)
}

// Position returns the caret's 1-based line/column and the total line
// count for the status line.
func (d *Document) Position() (point textbuf.Point, lines int) {
	return d.Text.PointAt(d.selStart), d.Text.LineCount()
}

func (d *Document) clampSelection() {
	d.selStart = clamp(d.selStart, 0, len(d.Text))
	d.selEnd = clamp(d.selEnd, 0, len(d.Text))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
