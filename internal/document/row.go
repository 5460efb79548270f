package document

import "github.com/dshills/yate/internal/syntax"

// Row is one logical line of the document. The raw bytes are the
// authoritative content (no trailing newline); the render form expands
// tabs to the tab-stop boundary and the highlight tags classify each
// render byte. Render and highlight are derived state, regenerated by
// the owning Document whenever the raw bytes change; they are never
// edited directly. len(hl) == len(render) always holds.
type Row struct {
	index       int
	raw         []byte
	render      []byte
	hl          []syntax.Highlight
	openComment bool
}

// Index returns the row's position in the document.
func (r *Row) Index() int { return r.index }

// Raw returns the authoritative row content.
func (r *Row) Raw() []byte { return r.raw }

// Render returns the tab-expanded display form.
func (r *Row) Render() []byte { return r.render }

// Highlight returns one classification tag per render byte.
func (r *Row) Highlight() []syntax.Highlight { return r.hl }

// Len returns the raw length in bytes.
func (r *Row) Len() int { return len(r.raw) }

// RenderLen returns the rendered length in bytes.
func (r *Row) RenderLen() int { return len(r.render) }

// EndsInBlockComment reports whether a multi-line comment was still
// open at the end of this row's highlighting pass.
func (r *Row) EndsInBlockComment() bool { return r.openComment }

// CxToRx converts a raw byte index to a render column.
func (r *Row) CxToRx(cx, tabStop int) int {
	rx := 0
	for j := 0; j < cx && j < len(r.raw); j++ {
		if r.raw[j] == '\t' {
			rx += (tabStop - 1) - (rx % tabStop)
		}
		rx++
	}
	return rx
}

// RxToCx converts a render column back to a raw byte index.
func (r *Row) RxToCx(rx, tabStop int) int {
	cur := 0
	for cx := 0; cx < len(r.raw); cx++ {
		if r.raw[cx] == '\t' {
			cur += (tabStop - 1) - (cur % tabStop)
		}
		cur++
		if cur > rx {
			return cx
		}
	}
	return len(r.raw)
}

// MarkMatch temporarily overwrites the highlight tags in
// [at, at+length) with the search-match tag and returns the previous
// tags so the caller can restore them.
func (r *Row) MarkMatch(at, length int) []syntax.Highlight {
	saved := make([]syntax.Highlight, len(r.hl))
	copy(saved, r.hl)
	for i := at; i < at+length && i < len(r.hl); i++ {
		r.hl[i] = syntax.HighlightMatch
	}
	return saved
}

// RestoreHighlight puts back tags previously returned by MarkMatch.
// A length mismatch means the row was edited since; the snapshot is
// stale and is dropped.
func (r *Row) RestoreHighlight(saved []syntax.Highlight) {
	if len(saved) != len(r.hl) {
		return
	}
	copy(r.hl, saved)
}

// updateRender regenerates the render form from the raw bytes. Each tab
// expands to at least one space, out to the next tab-stop boundary.
func (r *Row) updateRender(tabStop int) {
	tabs := 0
	for _, c := range r.raw {
		if c == '\t' {
			tabs++
		}
	}
	render := make([]byte, 0, len(r.raw)+tabs*(tabStop-1))
	for _, c := range r.raw {
		if c == '\t' {
			render = append(render, ' ')
			for len(render)%tabStop != 0 {
				render = append(render, ' ')
			}
		} else {
			render = append(render, c)
		}
	}
	r.render = render
}

// insertChar inserts c at position at in the raw bytes, clamping at to
// the row bounds.
func (r *Row) insertChar(at int, c byte) {
	if at < 0 || at > len(r.raw) {
		at = len(r.raw)
	}
	r.raw = append(r.raw, 0)
	copy(r.raw[at+1:], r.raw[at:])
	r.raw[at] = c
}

// deleteChar removes the byte at position at. Out-of-range positions
// are a no-op; ok reports whether anything was removed.
func (r *Row) deleteChar(at int) bool {
	if at < 0 || at >= len(r.raw) {
		return false
	}
	r.raw = append(r.raw[:at], r.raw[at+1:]...)
	return true
}

// appendBytes appends text to the raw bytes.
func (r *Row) appendBytes(text []byte) {
	r.raw = append(r.raw, text...)
}
