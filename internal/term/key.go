package term

// Key is one decoded input event: a printable or control byte carries
// its own value, named special keys decoded from escape sequences live
// above the byte range.
type Key int32

// Ctrl returns the control-combination key for a letter (e.g. Ctrl('q')).
func Ctrl(c byte) Key {
	return Key(c) & 0x1f
}

// Byte-valued keys.
const (
	KeyEnter     Key = '\r'
	KeyEscape    Key = '\x1b'
	KeyBackspace Key = 127
)

// Named keys decoded from escape sequences.
const (
	KeyArrowLeft Key = 1000 + iota
	KeyArrowRight
	KeyArrowUp
	KeyArrowDown
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
)

// IsPrintable reports whether the key is an ordinary text byte.
func (k Key) IsPrintable() bool {
	return k >= 32 && k < 127
}

// ByteSource supplies raw input bytes. ok is false when no byte
// arrived within the read timeout.
type ByteSource interface {
	ReadByte() (c byte, ok bool)
}

// ReadKey decodes exactly one key event from src. ok is false when the
// initial read timed out with no input; the caller loops on that. A
// lone escape byte, or an escape whose follow-up bytes do not arrive
// within the timeout, decodes to KeyEscape — a short read is treated as
// the user pressing the escape key, never as a reason to block.
func ReadKey(src ByteSource) (Key, bool) {
	c, ok := src.ReadByte()
	if !ok {
		return 0, false
	}
	if c != byte(KeyEscape) {
		return Key(c), true
	}

	b0, ok := src.ReadByte()
	if !ok {
		return KeyEscape, true
	}
	b1, ok := src.ReadByte()
	if !ok {
		return KeyEscape, true
	}

	switch b0 {
	case '[':
		if b1 >= '0' && b1 <= '9' {
			b2, ok := src.ReadByte()
			if !ok || b2 != '~' {
				return KeyEscape, true
			}
			switch b1 {
			case '1', '7':
				return KeyHome, true
			case '3':
				return KeyDelete, true
			case '4', '8':
				return KeyEnd, true
			case '5':
				return KeyPageUp, true
			case '6':
				return KeyPageDown, true
			}
			return KeyEscape, true
		}
		switch b1 {
		case 'A':
			return KeyArrowUp, true
		case 'B':
			return KeyArrowDown, true
		case 'C':
			return KeyArrowRight, true
		case 'D':
			return KeyArrowLeft, true
		case 'H':
			return KeyHome, true
		case 'F':
			return KeyEnd, true
		}
	case 'O':
		switch b1 {
		case 'H':
			return KeyHome, true
		case 'F':
			return KeyEnd, true
		}
	}
	return KeyEscape, true
}
