// Package input turns raw key presses, serial bytes and joystick samples into
// abstract game commands.
package input

// Command is an abstract request from the player.
type Command int

const (
	None Command = iota
	MoveLeft
	MoveRight
	Rotate
	SoftDrop
	HardDrop
	Pause
	Restart
	Quit
)

func (c Command) String() string {
	switch c {
	case None:
		return "none"
	case MoveLeft:
		return "moveLeft"
	case MoveRight:
		return "moveRight"
	case Rotate:
		return "rotate"
	case SoftDrop:
		return "softDrop"
	case HardDrop:
		return "hardDrop"
	case Pause:
		return "pause"
	case Restart:
		return "restart"
	case Quit:
		return "quit"
	default:
		return "unknown"
	}
}

// Gameplay reports whether c acts on the falling piece. Gameplay commands are
// ignored while paused.
func (c Command) Gameplay() bool {
	switch c {
	case MoveLeft, MoveRight, Rotate, SoftDrop, HardDrop:
		return true
	}
	return false
}
