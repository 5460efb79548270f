// Package document implements the editor's row store: an ordered,
// contiguously indexed sequence of lines, each owning its raw content
// and the derived render and highlight forms, plus the cursor and
// viewport state that travel with the buffer.
package document

import (
	"bufio"
	"bytes"
	"errors"
	"os"
	"strings"

	"github.com/dshills/yate/internal/syntax"
)

// Errors returned by document operations.
var (
	// ErrNoFileName indicates a save was attempted on an unnamed buffer.
	ErrNoFileName = errors.New("document has no file name")
)

// Document owns the row store together with the cursor position
// (CX is a raw byte index, CY a row number), the derived render column
// RX, the viewport scroll offsets, the dirty flag, the file path, and
// the active language. Mutating operations keep row indices contiguous
// and regenerate derived row state synchronously, so readers always
// observe consistent rows.
type Document struct {
	rows []*Row

	// CX, CY locate the cursor in raw coordinates; RX is the derived
	// render column, recomputed on scroll.
	CX, CY int
	RX     int

	// RowOffset and ColOffset are the viewport scroll position.
	RowOffset int
	ColOffset int

	dirty    bool
	fileName string
	lang     *syntax.Language
	tabStop  int
}

// New creates an empty document with the given tab-stop width.
func New(tabStop int) *Document {
	if tabStop < 1 {
		tabStop = 1
	}
	return &Document{tabStop: tabStop}
}

// RowCount returns the number of rows.
func (d *Document) RowCount() int { return len(d.rows) }

// Row returns the row at index i, or nil when out of range.
func (d *Document) Row(i int) *Row {
	if i < 0 || i >= len(d.rows) {
		return nil
	}
	return d.rows[i]
}

// Dirty reports whether the buffer has unsaved changes.
func (d *Document) Dirty() bool { return d.dirty }

// FileName returns the file path, or "" for an unnamed buffer.
func (d *Document) FileName() string { return d.fileName }

// SetFileName names an unnamed buffer (used by save-as).
func (d *Document) SetFileName(name string) { d.fileName = name }

// TabStop returns the tab-stop width used for rendering.
func (d *Document) TabStop() int { return d.tabStop }

// Language returns the active language, or nil.
func (d *Document) Language() *syntax.Language { return d.lang }

// SetLanguage switches the active language and re-highlights every row.
func (d *Document) SetLanguage(lang *syntax.Language) {
	d.lang = lang
	for i := range d.rows {
		seed := i > 0 && d.rows[i-1].openComment
		d.rows[i].hl, d.rows[i].openComment = syntax.ScanLine(d.rows[i].render, lang, seed)
	}
}

// InsertRow inserts a new row at index at. Out-of-range indices are a
// silent no-op (defensive bound, not a user-visible error).
func (d *Document) InsertRow(at int, text []byte) {
	if at < 0 || at > len(d.rows) {
		return
	}
	row := &Row{index: at, raw: append([]byte(nil), text...)}
	d.rows = append(d.rows, nil)
	copy(d.rows[at+1:], d.rows[at:])
	d.rows[at] = row
	for i := at + 1; i < len(d.rows); i++ {
		d.rows[i].index = i
	}
	d.updateRow(row)
	d.dirty = true
}

// DeleteRow removes the row at index at and renumbers the rows after
// it. Out-of-range indices are a silent no-op.
func (d *Document) DeleteRow(at int) {
	if at < 0 || at >= len(d.rows) {
		return
	}
	d.rows = append(d.rows[:at], d.rows[at+1:]...)
	for i := at; i < len(d.rows); i++ {
		d.rows[i].index = i
	}
	// The removed row may have fed block-comment state into its
	// successor.
	if at < len(d.rows) {
		d.highlightFrom(at)
	}
	d.dirty = true
}

// InsertChar inserts c at raw position at in row, clamping at to the
// row bounds. No-op when row is out of range.
func (d *Document) InsertChar(row, at int, c byte) {
	r := d.Row(row)
	if r == nil {
		return
	}
	r.insertChar(at, c)
	d.updateRow(r)
	d.dirty = true
}

// DeleteChar removes the byte at raw position at in row. Out-of-range
// positions are a silent no-op.
func (d *Document) DeleteChar(row, at int) {
	r := d.Row(row)
	if r == nil || !r.deleteChar(at) {
		return
	}
	d.updateRow(r)
	d.dirty = true
}

// AppendToRow appends text to the end of row (used when merging a row
// into its predecessor).
func (d *Document) AppendToRow(row int, text []byte) {
	r := d.Row(row)
	if r == nil {
		return
	}
	r.appendBytes(text)
	d.updateRow(r)
	d.dirty = true
}

// SplitRow splits row at raw position at: the tail moves to a new row
// inserted directly below. Used by newline insertion.
func (d *Document) SplitRow(row, at int) {
	r := d.Row(row)
	if r == nil {
		return
	}
	if at < 0 {
		at = 0
	}
	if at > len(r.raw) {
		at = len(r.raw)
	}
	tail := append([]byte(nil), r.raw[at:]...)
	r.raw = r.raw[:at]
	d.updateRow(r)
	d.InsertRow(row+1, tail)
	d.dirty = true
}

// Contents flattens the row store to newline-joined text, with a
// terminator after every row. Used for saving.
func (d *Document) Contents() []byte {
	var buf bytes.Buffer
	for _, r := range d.rows {
		buf.Write(r.raw)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// Open loads the file at path into the document, one row per input
// line with trailing line terminators stripped. The document is left
// clean with its cursor at the origin. The caller selects the language
// afterwards.
func (d *Document) Open(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		d.InsertRow(len(d.rows), []byte(line))
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	d.fileName = path
	d.dirty = false
	d.CX, d.CY = 0, 0
	return nil
}

// Save writes the flattened document over its file with a full
// truncate-and-rewrite, returning the number of bytes written. A failed
// save leaves the buffer dirty so nothing is silently lost.
func (d *Document) Save() (int, error) {
	if d.fileName == "" {
		return 0, ErrNoFileName
	}
	content := d.Contents()

	f, err := os.OpenFile(d.fileName, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	if err := f.Truncate(int64(len(content))); err != nil {
		return 0, err
	}
	n, err := f.Write(content)
	if err != nil {
		return n, err
	}
	d.dirty = false
	return n, nil
}

// updateRow regenerates the row's render form and re-highlights from
// the row onward. Derived state is consistent before this returns; no
// lazy invalidation.
func (d *Document) updateRow(r *Row) {
	r.updateRender(d.tabStop)
	d.highlightFrom(r.index)
}

// highlightFrom re-highlights the row at index at and cascades to the
// following rows for as long as a row's trailing block-comment state
// keeps changing. This is the one place a single edit can re-color the
// whole remaining document. Explicit loop rather than recursion so the
// cascade cannot grow the stack on pathological files.
func (d *Document) highlightFrom(at int) {
	for i := at; i < len(d.rows); i++ {
		r := d.rows[i]
		seed := i > 0 && d.rows[i-1].openComment
		hl, open := syntax.ScanLine(r.render, d.lang, seed)
		changed := open != r.openComment
		r.hl = hl
		r.openComment = open
		if !changed {
			break
		}
	}
}
