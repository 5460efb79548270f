package app

import (
	"github.com/dshills/yate/internal/term"
)

// Run drives the editor: compose a frame, wait for one key event,
// apply it, repeat. It returns ErrQuit on a normal exit and the
// underlying error on a terminal failure.
func (e *Editor) Run() error {
	for {
		if err := e.refresh(); err != nil {
			return err
		}
		k, ok := term.ReadKey(e.term)
		if !ok {
			// Read timed out with no input; redraw picks up timed
			// status-message expiry.
			continue
		}
		if err := e.processKey(k); err != nil {
			return err
		}
	}
}

// processKey applies one key event to the editor state.
func (e *Editor) processKey(k term.Key) error {
	switch k {
	case term.KeyEnter:
		e.insertNewline()

	case term.Ctrl('q'):
		if e.doc.Dirty() && e.quitTimes > 0 {
			e.setStatus("WARNING!!! File has unsaved changes. Press Ctrl-Q %d more times to quit.", e.quitTimes)
			e.quitTimes--
			return nil
		}
		return ErrQuit

	case term.Ctrl('s'):
		e.save()

	case term.Ctrl('f'):
		e.find()

	case term.Ctrl('h'):
		e.setStatus(helpMessage)

	case term.Ctrl('d'):
		e.yankRow()
		e.deleteRow()

	case term.Ctrl('y'):
		e.yankRow()

	case term.Ctrl('p'):
		e.pasteRow()

	case term.Ctrl('o'):
		e.openPrompt()

	case term.KeyHome:
		e.doc.CX = 0

	case term.KeyEnd:
		if row := e.doc.Row(e.doc.CY); row != nil {
			e.doc.CX = row.Len()
		}

	case term.KeyPageUp, term.KeyPageDown:
		e.movePage(k)

	case term.KeyArrowUp, term.KeyArrowDown, term.KeyArrowLeft, term.KeyArrowRight:
		e.moveCursor(k)

	case term.KeyBackspace, term.KeyDelete:
		if k == term.KeyDelete {
			e.moveCursor(term.KeyArrowRight)
		}
		e.deleteChar()

	case term.Ctrl('l'), term.KeyEscape:
		// Swallowed: the screen redraws every iteration anyway, and a
		// stray escape must not insert bytes.

	default:
		if k.IsPrintable() || k == '\t' {
			e.insertChar(byte(k))
		}
	}

	// Any key other than Ctrl-Q rearms the unsaved-changes quit gate.
	if k != term.Ctrl('q') {
		e.quitTimes = quitConfirmations
	}
	return nil
}
