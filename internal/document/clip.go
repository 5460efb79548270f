package document

// ClipBuffer holds one line's worth of yanked text. Each yank
// overwrites the previous contents; yanks are never merged.
type ClipBuffer struct {
	buf []byte
}

// Write replaces the clip contents with a copy of text.
func (c *ClipBuffer) Write(text []byte) {
	c.buf = append(c.buf[:0], text...)
}

// Bytes returns the clip contents, or nil when empty.
func (c *ClipBuffer) Bytes() []byte { return c.buf }

// Len returns the clip length in bytes.
func (c *ClipBuffer) Len() int { return len(c.buf) }

// Clear releases the clip contents.
func (c *ClipBuffer) Clear() {
	c.buf = nil
}
