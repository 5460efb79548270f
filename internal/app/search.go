package app

import (
	"bytes"

	"github.com/dshills/yate/internal/syntax"
	"github.com/dshills/yate/internal/term"
)

// findState carries incremental-search progress across prompt
// keystrokes: the row of the last hit, the scan direction, and the
// saved highlight of the currently marked match.
type findState struct {
	e         *Editor
	lastMatch int
	direction int
	savedRow  int
	savedHl   []syntax.Highlight
}

func newFindState(e *Editor) *findState {
	return &findState{
		e:         e,
		lastMatch: -1,
		direction: 1,
		savedRow:  -1,
	}
}

// OnKeystroke advances the search after every prompt keystroke. The
// previous match's highlight is restored first, so at most one match
// is ever marked.
func (f *findState) OnKeystroke(query string, k term.Key) {
	doc := f.e.doc

	if f.savedHl != nil {
		if row := doc.Row(f.savedRow); row != nil {
			row.RestoreHighlight(f.savedHl)
		}
		f.savedHl = nil
		f.savedRow = -1
	}

	switch {
	case k == term.KeyEnter || k == term.KeyEscape:
		f.lastMatch = -1
		f.direction = 1
		return
	case k == term.KeyArrowRight || k == term.KeyArrowDown:
		f.direction = 1
	case k == term.KeyArrowLeft || k == term.KeyArrowUp:
		f.direction = -1
	default:
		// Query edited: restart from the top.
		f.lastMatch = -1
		f.direction = 1
	}

	if query == "" || doc.RowCount() == 0 {
		return
	}
	if f.lastMatch == -1 {
		f.direction = 1
	}

	needle := []byte(query)
	current := f.lastMatch
	for i := 0; i < doc.RowCount(); i++ {
		current += f.direction
		if current == -1 {
			current = doc.RowCount() - 1
		} else if current == doc.RowCount() {
			current = 0
		}

		row := doc.Row(current)
		rx := bytes.Index(row.Render(), needle)
		if rx < 0 {
			continue
		}

		f.lastMatch = current
		doc.CY = current
		doc.CX = row.RxToCx(rx, doc.TabStop())
		// Force the next scroll to put the match row at the top of the
		// screen.
		doc.RowOffset = doc.RowCount()

		f.savedRow = current
		f.savedHl = row.MarkMatch(rx, len(needle))
		return
	}
}

// find runs the incremental-search prompt. Cancelling restores the
// cursor and viewport to where they were before the search began.
func (e *Editor) find() {
	doc := e.doc
	savedCX, savedCY := doc.CX, doc.CY
	savedColOff, savedRowOff := doc.ColOffset, doc.RowOffset

	state := newFindState(e)
	if _, ok := e.prompt("Search: %s (Use ESC/Arrows/Enter)", state); !ok {
		doc.CX, doc.CY = savedCX, savedCY
		doc.ColOffset, doc.RowOffset = savedColOff, savedRowOff
	}
}
