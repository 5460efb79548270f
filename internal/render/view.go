// Package render composes screen frames: it walks the visible window
// of the document, emits styled text into a frame buffer, and draws the
// status and message bars. One Compose call produces one complete frame
// that the terminal flushes in a single write.
package render

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/dshills/yate/internal/document"
	"github.com/dshills/yate/internal/syntax"
	"github.com/dshills/yate/internal/term"
)

const editorName = "Yate"

// Cursor-control and styling sequences shared by the composer.
const (
	seqHideCursor = "\x1b[?25l"
	seqShowCursor = "\x1b[?25h"
	seqCursorHome = "\x1b[H"
	seqEraseLine  = "\x1b[K"
	seqInvertOn   = "\x1b[7m"
	seqReset      = "\x1b[m"
	seqResetColor = "\x1b[39;49m"
)

// StatusMessage is the timed message shown under the status bar.
type StatusMessage struct {
	Text  string
	SetAt time.Time
}

// Options configures a Composer.
type Options struct {
	Theme *syntax.Theme

	// MessageTimeout is how long a status message stays visible.
	MessageTimeout time.Duration

	// TextRows and Cols give the text area size. TextRows excludes the
	// status and message bars.
	TextRows int
	Cols     int

	// Version is shown on the welcome screen.
	Version string
}

// Composer builds frames from the document and the active theme.
type Composer struct {
	theme          *syntax.Theme
	messageTimeout time.Duration
	textRows       int
	cols           int
	version        string
}

// NewComposer creates a frame composer.
func NewComposer(opts Options) *Composer {
	theme := opts.Theme
	if theme == nil {
		theme = syntax.DefaultTheme()
	}
	return &Composer{
		theme:          theme,
		messageTimeout: opts.MessageTimeout,
		textRows:       opts.TextRows,
		cols:           opts.Cols,
		version:        opts.Version,
	}
}

// Scroll recomputes the document's render column from its cursor and
// clamps the viewport offsets so the cursor stays visible.
func (c *Composer) Scroll(doc *document.Document) {
	doc.RX = 0
	if row := doc.Row(doc.CY); row != nil {
		doc.RX = row.CxToRx(doc.CX, doc.TabStop())
	}
	if doc.CY < doc.RowOffset {
		doc.RowOffset = doc.CY
	}
	if doc.CY >= doc.RowOffset+c.textRows {
		doc.RowOffset = doc.CY - c.textRows + 1
	}
	if doc.RX < doc.ColOffset {
		doc.ColOffset = doc.RX
	}
	if doc.RX >= doc.ColOffset+c.cols {
		doc.ColOffset = doc.RX - c.cols + 1
	}
}

// Compose builds one full frame: text rows, status bar, message bar,
// and the cursor position. The cursor is hidden for the duration of the
// frame write to avoid flicker.
func (c *Composer) Compose(buf *term.FrameBuffer, doc *document.Document, msg StatusMessage) {
	buf.AppendString(seqHideCursor)
	buf.AppendString(seqCursorHome)

	c.drawRows(buf, doc)
	c.drawStatusBar(buf, doc)
	c.drawMessageBar(buf, msg)

	fmt.Fprintf(buf, "\x1b[%d;%dH", doc.CY-doc.RowOffset+1, doc.RX-doc.ColOffset+1)
	buf.AppendString(seqShowCursor)
}

// drawRows emits every row of the text area.
func (c *Composer) drawRows(buf *term.FrameBuffer, doc *document.Document) {
	for y := 0; y < c.textRows; y++ {
		fileRow := y + doc.RowOffset
		if fileRow >= doc.RowCount() {
			band := c.textRows / 3
			if doc.RowCount() == 0 && y >= band && y <= band+7 {
				c.drawWelcomeRow(buf, y-band)
			} else {
				buf.AppendString("~")
			}
		} else {
			c.drawTextRow(buf, doc.Row(fileRow), doc.ColOffset)
		}
		buf.AppendString(seqEraseLine)
		buf.AppendString("\r\n")
	}
}

// drawTextRow emits the visible slice of one document row, switching
// colors only when the highlight tag's color differs from the previous
// byte's. Control bytes render as an inverse-video mnemonic glyph.
func (c *Composer) drawTextRow(buf *term.FrameBuffer, row *document.Row, colOffset int) {
	render := row.Render()
	hl := row.Highlight()
	if colOffset >= len(render) {
		buf.AppendString(seqResetColor)
		return
	}
	render = render[colOffset:]
	hl = hl[colOffset:]
	if len(render) > c.cols {
		render = render[:c.cols]
		hl = hl[:c.cols]
	}

	var current syntax.Color
	colored := false
	for i, ch := range render {
		switch {
		case ch < 32 || ch == 127:
			sym := byte('?')
			if ch <= 26 {
				sym = '@' + ch
			}
			buf.AppendString(seqInvertOn)
			buf.AppendByte(sym)
			buf.AppendString(seqReset)
			if colored {
				// The full reset dropped the run's color; restore it.
				appendColor(buf, current)
			}
		case hl[i] == syntax.HighlightNormal:
			if colored {
				buf.AppendString(seqResetColor)
				colored = false
			}
			buf.AppendByte(ch)
		default:
			color, ok := c.theme.Color(hl[i])
			if !ok {
				buf.AppendByte(ch)
				continue
			}
			if !colored || color != current {
				appendColor(buf, color)
				current = color
				colored = true
			}
			buf.AppendByte(ch)
		}
	}
	buf.AppendString(seqResetColor)
}

// appendColor emits the 24-bit SGR sequence for a theme color.
func appendColor(buf *term.FrameBuffer, c syntax.Color) {
	layer := 38
	if c.Background {
		layer = 48
	}
	fmt.Fprintf(buf, "\x1b[%d;2;%d;%d;%dm", layer, c.R, c.G, c.B)
}

// drawWelcomeRow emits one row of the centered welcome band shown when
// the document is empty. Rows 1 and 5 are blank separators.
func (c *Composer) drawWelcomeRow(buf *term.FrameBuffer, index int) {
	var line string
	switch index {
	case 0:
		line = editorName + " - Yet another text editor"
	case 1, 5:
		return
	case 2:
		line = "version " + c.version
	case 3:
		line = "by the " + editorName + " authors"
	case 4:
		line = editorName + " is open source and freely distributable"
	case 6:
		line = "Press \x1b[38;2;255;230;102mCtrl-q\x1b[39;49m to exit"
	case 7:
		line = "Press \x1b[38;2;255;230;102mCtrl-h\x1b[39;49m to show the help"
	default:
		return
	}
	if len(line) > c.cols {
		line = line[:c.cols]
	}
	padding := (c.cols - len(line)) / 2
	if index > 5 {
		// The key-hint lines carry invisible color escapes that
		// inflate their byte length; compensate to keep them centered.
		padding += 13
	}
	if padding > 0 {
		buf.AppendString("~")
		padding--
	}
	for ; padding > 0; padding-- {
		buf.AppendString(" ")
	}
	buf.AppendString(line)
}

// drawStatusBar emits the inverse-video status bar: file name, line
// count, modified flag on the left; language and cursor position on the
// right.
func (c *Composer) drawStatusBar(buf *term.FrameBuffer, doc *document.Document) {
	buf.AppendString(seqInvertOn)

	name := "[No file name]"
	if doc.FileName() != "" {
		name = doc.FileName()
		if abs, err := filepath.Abs(name); err == nil {
			name = abs
		}
		if len(name) > 80 {
			name = name[:80]
		}
	}
	modified := ""
	if doc.Dirty() {
		modified = "(modified)"
	}
	left := fmt.Sprintf("%s - %d lines %s", name, doc.RowCount(), modified)

	langName := ""
	if lang := doc.Language(); lang != nil {
		langName = lang.Name
	}
	right := fmt.Sprintf("%s | %d/%d", langName, doc.CY+1, doc.RowCount())

	if len(left) > c.cols {
		left = left[:c.cols]
	}
	buf.AppendString(left)
	for pad := len(left); pad < c.cols; pad++ {
		if c.cols-pad == len(right) {
			buf.AppendString(right)
			break
		}
		buf.AppendString(" ")
	}

	buf.AppendString(seqReset)
	buf.AppendString("\r\n")
}

// drawMessageBar emits the timed status message until it expires.
func (c *Composer) drawMessageBar(buf *term.FrameBuffer, msg StatusMessage) {
	buf.AppendString(seqEraseLine)
	if msg.Text == "" || time.Since(msg.SetAt) >= c.messageTimeout {
		return
	}
	text := msg.Text
	if len(text) > c.cols {
		text = text[:c.cols]
	}
	buf.AppendString(text)
}
