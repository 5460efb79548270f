package render

import (
	"strings"
	"testing"
	"time"

	"github.com/dshills/yate/internal/document"
	"github.com/dshills/yate/internal/syntax"
	"github.com/dshills/yate/internal/term"
)

func testComposer(textRows, cols int) *Composer {
	return NewComposer(Options{
		MessageTimeout: 5 * time.Second,
		TextRows:       textRows,
		Cols:           cols,
		Version:        "1.2.3",
	})
}

func composeFrame(c *Composer, doc *document.Document, msg StatusMessage) string {
	var buf term.FrameBuffer
	c.Scroll(doc)
	c.Compose(&buf, doc, msg)
	return string(buf.Bytes())
}

func TestCompose_FrameEnvelope(t *testing.T) {
	doc := document.New(4)
	frame := composeFrame(testComposer(10, 40), doc, StatusMessage{})

	if !strings.HasPrefix(frame, "\x1b[?25l\x1b[H") {
		t.Error("frame must start by hiding the cursor and homing")
	}
	if !strings.HasSuffix(frame, "\x1b[?25h") {
		t.Error("frame must end by showing the cursor")
	}
	if !strings.Contains(frame, "\x1b[1;1H") {
		t.Error("expected the cursor positioned at the origin")
	}
}

func TestCompose_WelcomeBand(t *testing.T) {
	doc := document.New(4)
	frame := composeFrame(testComposer(24, 80), doc, StatusMessage{})

	if !strings.Contains(frame, "Yate - Yet another text editor") {
		t.Error("expected the welcome banner on an empty document")
	}
	if !strings.Contains(frame, "version 1.2.3") {
		t.Error("expected the version line")
	}
	if !strings.Contains(frame, "Ctrl-q") || !strings.Contains(frame, "Ctrl-h") {
		t.Error("expected the key hints")
	}
}

func TestCompose_NoWelcomeWithContent(t *testing.T) {
	doc := document.New(4)
	doc.InsertRow(0, []byte("hello"))
	frame := composeFrame(testComposer(24, 80), doc, StatusMessage{})

	if strings.Contains(frame, "Yet another text editor") {
		t.Error("the welcome band must disappear once the document has rows")
	}
	if !strings.Contains(frame, "hello") {
		t.Error("expected the document row in the frame")
	}
}

func TestCompose_TildeRows(t *testing.T) {
	doc := document.New(4)
	doc.InsertRow(0, []byte("only"))
	frame := composeFrame(testComposer(5, 20), doc, StatusMessage{})

	if got := strings.Count(frame, "~\x1b[K"); got != 4 {
		t.Errorf("counted %d tilde rows, expected 4", got)
	}
}

func TestCompose_StatusBar(t *testing.T) {
	doc := document.New(4)
	frame := composeFrame(testComposer(10, 60), doc, StatusMessage{})

	if !strings.Contains(frame, "[No file name]") {
		t.Error("expected the unnamed-buffer placeholder")
	}
	if !strings.Contains(frame, "\x1b[7m") {
		t.Error("expected inverse video for the status bar")
	}
}

func TestCompose_StatusBarModified(t *testing.T) {
	doc := document.New(4)
	doc.InsertRow(0, []byte("x"))
	frame := composeFrame(testComposer(10, 60), doc, StatusMessage{})

	if !strings.Contains(frame, "(modified)") {
		t.Error("expected the modified marker on a dirty buffer")
	}
}

func TestCompose_MessageBar(t *testing.T) {
	doc := document.New(4)
	c := testComposer(10, 60)

	frame := composeFrame(c, doc, StatusMessage{Text: "hello there", SetAt: time.Now()})
	if !strings.Contains(frame, "hello there") {
		t.Error("expected a fresh message shown")
	}

	stale := StatusMessage{Text: "hello there", SetAt: time.Now().Add(-time.Minute)}
	frame = composeFrame(c, doc, stale)
	if strings.Contains(frame, "hello there") {
		t.Error("expected an expired message hidden")
	}
}

func TestCompose_HighlightColors(t *testing.T) {
	lang := &syntax.Language{
		Name:      "Test",
		FileMatch: []string{".tst"},
		Keywords:  []string{"if"},
	}
	doc := document.New(4)
	doc.InsertRow(0, []byte("if x"))
	doc.SetLanguage(lang)

	frame := composeFrame(testComposer(5, 20), doc, StatusMessage{})

	kw, _ := syntax.DefaultTheme().Color(syntax.HighlightKeyword1)
	want := "\x1b[38;2;211;33;45mif"
	if kw.R != 211 || !strings.Contains(frame, want) {
		t.Errorf("expected the keyword colored with %q", want)
	}
	if !strings.Contains(frame, "\x1b[39;49m") {
		t.Error("expected a color reset after the row")
	}
}

func TestCompose_ControlBytesInvert(t *testing.T) {
	doc := document.New(4)
	doc.InsertRow(0, []byte{'a', 1, 'b'})
	frame := composeFrame(testComposer(5, 20), doc, StatusMessage{})

	if !strings.Contains(frame, "\x1b[7mA\x1b[m") {
		t.Error("expected the control byte rendered as inverse-video mnemonic")
	}
}

func TestScroll_ClampsOffsets(t *testing.T) {
	c := testComposer(5, 10)
	doc := document.New(4)
	for i := 0; i < 20; i++ {
		doc.InsertRow(i, []byte("0123456789abcdef"))
	}

	doc.CY = 15
	doc.CX = 14
	c.Scroll(doc)
	if doc.RowOffset != 11 {
		t.Errorf("RowOffset = %d, expected 11", doc.RowOffset)
	}
	if doc.ColOffset != 5 {
		t.Errorf("ColOffset = %d, expected 5", doc.ColOffset)
	}

	doc.CY = 0
	doc.CX = 0
	c.Scroll(doc)
	if doc.RowOffset != 0 || doc.ColOffset != 0 {
		t.Errorf("offsets = %d,%d after moving home, expected 0,0", doc.RowOffset, doc.ColOffset)
	}
}

func TestScroll_ComputesRenderColumn(t *testing.T) {
	c := testComposer(5, 80)
	doc := document.New(4)
	doc.InsertRow(0, []byte("\tx"))

	doc.CX = 1
	c.Scroll(doc)
	if doc.RX != 4 {
		t.Errorf("RX = %d, expected the tab expanded to 4", doc.RX)
	}
}
