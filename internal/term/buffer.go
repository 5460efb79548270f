package term

// FrameBuffer accumulates one full screen frame so it can be flushed
// in a single write. Append-only between resets; growth is amortized
// by the underlying slice.
type FrameBuffer struct {
	buf []byte
}

// Append appends raw bytes to the frame.
func (b *FrameBuffer) Append(p []byte) {
	b.buf = append(b.buf, p...)
}

// Write implements io.Writer so formatted output can target the frame.
func (b *FrameBuffer) Write(p []byte) (int, error) {
	b.buf = append(b.buf, p...)
	return len(p), nil
}

// AppendString appends a string to the frame.
func (b *FrameBuffer) AppendString(s string) {
	b.buf = append(b.buf, s...)
}

// AppendByte appends a single byte to the frame.
func (b *FrameBuffer) AppendByte(c byte) {
	b.buf = append(b.buf, c)
}

// Bytes returns the accumulated frame.
func (b *FrameBuffer) Bytes() []byte { return b.buf }

// Len returns the accumulated length in bytes.
func (b *FrameBuffer) Len() int { return len(b.buf) }

// Reset empties the frame, keeping the allocation for the next one.
func (b *FrameBuffer) Reset() {
	b.buf = b.buf[:0]
}
