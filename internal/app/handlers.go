package app

import (
	"github.com/dshills/yate/internal/term"
)

// moveCursor applies one arrow-key movement in raw coordinates, with
// line wrapping at row edges. After any move the column snaps to the
// destination row's length.
func (e *Editor) moveCursor(k term.Key) {
	doc := e.doc
	row := doc.Row(doc.CY)

	switch k {
	case term.KeyArrowLeft:
		if doc.CX != 0 {
			doc.CX--
		} else if doc.CY > 0 {
			doc.CY--
			doc.CX = doc.Row(doc.CY).Len()
		}
	case term.KeyArrowRight:
		if row != nil && doc.CX < row.Len() {
			doc.CX++
		} else if row != nil && doc.CX == row.Len() {
			doc.CY++
			doc.CX = 0
		}
	case term.KeyArrowUp:
		if doc.CY != 0 {
			doc.CY--
		}
	case term.KeyArrowDown:
		if doc.CY < doc.RowCount() {
			doc.CY++
		}
	}

	rowLen := 0
	if row = doc.Row(doc.CY); row != nil {
		rowLen = row.Len()
	}
	if doc.CX > rowLen {
		doc.CX = rowLen
	}
}

// movePage jumps one screen up or down by repeating single-row moves,
// so the column-snap rules apply exactly as they do for arrows.
func (e *Editor) movePage(k term.Key) {
	doc := e.doc
	if k == term.KeyPageUp {
		doc.CY = doc.RowOffset
	} else {
		doc.CY = doc.RowOffset + e.textRows - 1
		if doc.CY > doc.RowCount() {
			doc.CY = doc.RowCount()
		}
	}

	arrow := term.KeyArrowDown
	if k == term.KeyPageUp {
		arrow = term.KeyArrowUp
	}
	for times := e.textRows; times > 0; times-- {
		e.moveCursor(arrow)
	}
}

// insertChar inserts one byte at the cursor, growing the document by a
// row when the cursor sits on the phantom line past the last row.
func (e *Editor) insertChar(c byte) {
	if e.doc.CY == e.doc.RowCount() {
		e.doc.InsertRow(e.doc.RowCount(), nil)
	}
	e.doc.InsertChar(e.doc.CY, e.doc.CX, c)
	e.doc.CX++
}

// insertNewline breaks the current row at the cursor.
func (e *Editor) insertNewline() {
	if e.doc.CX == 0 {
		e.doc.InsertRow(e.doc.CY, nil)
	} else {
		e.doc.SplitRow(e.doc.CY, e.doc.CX)
	}
	e.doc.CY++
	e.doc.CX = 0
}

// deleteChar removes the byte left of the cursor, merging the row into
// its predecessor at column zero.
func (e *Editor) deleteChar() {
	doc := e.doc
	if doc.CY == doc.RowCount() {
		return
	}
	if doc.CX == 0 && doc.CY == 0 {
		return
	}

	if doc.CX > 0 {
		doc.DeleteChar(doc.CY, doc.CX-1)
		doc.CX--
		return
	}

	prev := doc.Row(doc.CY - 1)
	doc.CX = prev.Len()
	doc.AppendToRow(doc.CY-1, doc.Row(doc.CY).Raw())
	doc.DeleteRow(doc.CY)
	doc.CY--
}

// yankRow copies the current row into the clip buffer.
func (e *Editor) yankRow() {
	if row := e.doc.Row(e.doc.CY); row != nil {
		e.clip.Write(row.Raw())
	}
}

// deleteRow removes the current row.
func (e *Editor) deleteRow() {
	e.doc.DeleteRow(e.doc.CY)
	if e.doc.CY > e.doc.RowCount() {
		e.doc.CY = e.doc.RowCount()
	}
	e.doc.CX = 0
}

// pasteRow inserts the clip buffer as a new row above the cursor.
func (e *Editor) pasteRow() {
	if e.clip.Len() == 0 {
		return
	}
	e.doc.InsertRow(e.doc.CY, e.clip.Bytes())
}

// save writes the buffer to disk, prompting for a name first when the
// buffer is unnamed. Naming the buffer also selects its language.
func (e *Editor) save() {
	if e.doc.FileName() == "" {
		name, ok := e.prompt("Save as: %s (ESC to cancel)", nil)
		if !ok {
			e.setStatus("Save aborted")
			return
		}
		e.doc.SetFileName(name)
		e.doc.SetLanguage(e.registry.Detect(name))
	}

	n, err := e.doc.Save()
	if err != nil {
		e.setStatus("Can't save! I/O error: %v", err)
		e.logger.WithComponent("document").Error("%v", NewOperationError("save", e.doc.FileName(), err))
		return
	}
	e.setStatus("%d bytes written to disk", n)
	e.logger.WithComponent("document").Debug("saved %d bytes to %s", n, e.doc.FileName())
}

// openPrompt asks for a path and loads it, replacing the current
// buffer. A dirty buffer refuses to be replaced; a failed load keeps
// the current buffer and reports the error in the status bar.
func (e *Editor) openPrompt() {
	if e.doc.Dirty() {
		e.setStatus("File has unsaved changes. Save before opening another file.")
		return
	}
	path, ok := e.prompt("Open file: %s (ESC to cancel)", nil)
	if !ok {
		return
	}
	if err := e.loadFile(path); err != nil {
		e.setStatus("Can't open %s: %v", path, err)
		e.logger.WithComponent("document").Warn("%v", NewOperationError("open", path, err))
		return
	}
	e.setStatus(helpMessage)
}
