// Package term is the terminal collaborator: it switches the tty into
// byte-oriented raw mode with a short read timeout, reports the window
// size, decodes key events from the raw byte stream, and flushes
// composed frames in single writes. The editor core assumes raw mode is
// already active and only goes through this package for terminal I/O.
package term

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
	xterm "golang.org/x/term"
)

// readTimeout is VTIME in tenths of a second: reads block for at most
// 100ms, so escape-sequence disambiguation and the main loop never
// stall indefinitely.
const readTimeout = 1

// Terminal owns the raw-mode tty. Open switches modes; Restore must be
// reachable from every exit path, including fatal aborts.
type Terminal struct {
	in    *os.File
	out   *os.File
	fd    int
	state *xterm.State

	// Rows and Cols are the window size measured at Open.
	Rows, Cols int
}

// Open puts the terminal into raw mode with a 100ms read timeout and
// measures the window. Failure here is fatal for the editor: it cannot
// render without a working terminal.
func Open() (*Terminal, error) {
	t := &Terminal{
		in:  os.Stdin,
		out: os.Stdout,
	}
	t.fd = int(t.in.Fd())

	state, err := xterm.MakeRaw(t.fd)
	if err != nil {
		return nil, fmt.Errorf("enable raw mode: %w", err)
	}
	t.state = state

	// MakeRaw leaves reads fully blocking (VMIN=1); switch to timed
	// reads so a lone escape byte can be told apart from a sequence.
	tio, err := unix.IoctlGetTermios(t.fd, unix.TCGETS)
	if err != nil {
		t.Restore()
		return nil, fmt.Errorf("read termios: %w", err)
	}
	tio.Cc[unix.VMIN] = 0
	tio.Cc[unix.VTIME] = readTimeout
	if err := unix.IoctlSetTermios(t.fd, unix.TCSETS, tio); err != nil {
		t.Restore()
		return nil, fmt.Errorf("set read timeout: %w", err)
	}

	if t.Rows, t.Cols, err = t.Size(); err != nil {
		t.Restore()
		return nil, err
	}
	return t, nil
}

// Restore returns the terminal to the mode it was in before Open.
// Safe to call more than once.
func (t *Terminal) Restore() error {
	if t.state == nil {
		return nil
	}
	state := t.state
	t.state = nil
	return xterm.Restore(t.fd, state)
}

// Size measures the current window, returning rows and columns.
func (t *Terminal) Size() (int, int, error) {
	cols, rows, err := xterm.GetSize(int(t.out.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("window size: %w", err)
	}
	return rows, cols, nil
}

// ReadByte reads one input byte. ok is false when the read timed out
// with no input available.
func (t *Terminal) ReadByte() (byte, bool) {
	var buf [1]byte
	n, err := unix.Read(t.fd, buf[:])
	if err != nil || n != 1 {
		return 0, false
	}
	return buf[0], true
}

// WriteFrame flushes a composed frame in a single write.
func (t *Terminal) WriteFrame(b *FrameBuffer) error {
	_, err := t.out.Write(b.Bytes())
	return err
}

// WriteString writes raw bytes to the terminal, bypassing frame
// batching (used for the final screen clear on exit).
func (t *Terminal) WriteString(s string) error {
	_, err := t.out.WriteString(s)
	return err
}
