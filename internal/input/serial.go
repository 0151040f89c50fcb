package input

// EscapeChar starts a terminal escape sequence.
const EscapeChar = 0x1b

// EscapeDecoder turns a raw terminal byte stream into commands. Cursor keys
// arrive as the three bytes ESC [ X and are only acted on once the final
// byte is seen.
type EscapeDecoder struct {
	into int // bytes of the current escape sequence consumed so far
}

// Feed consumes one byte and returns the command it completes, or None.
func (d *EscapeDecoder) Feed(b byte) Command {
	switch {
	case d.into == 0 && b == EscapeChar:
		d.into++
		return None
	case d.into == 1 && b == '[':
		d.into++
		return None
	case d.into == 2:
		d.into = 0
		return cursorCommand(b)
	}

	// Not part of a sequence, or a bad second byte: treat it as plain input.
	d.into = 0
	return plainCommand(b)
}

// Pending reports whether the decoder is part way through a sequence.
func (d *EscapeDecoder) Pending() bool {
	return d.into > 0
}

func cursorCommand(b byte) Command {
	switch b {
	case 'A':
		return Rotate
	case 'B':
		return SoftDrop
	case 'C':
		return MoveRight
	case 'D':
		return MoveLeft
	}
	return None
}

func plainCommand(b byte) Command {
	switch b {
	case ' ':
		return HardDrop
	case 'p', 'P':
		return Pause
	case 'r', 'R':
		return Restart
	case 'q', 'Q', 0x03:
		return Quit
	}
	return None
}
