package piece

import (
	"fmt"

	"go-tetris/internal/board"
)

// Kind is one of the seven tetrominoes.
type Kind uint8

const (
	I Kind = iota
	O
	T
	S
	Z
	J
	L
)

// NumKinds is the number of distinct tetrominoes.
const NumKinds = 7

// NumRotations is the number of rotation states of every kind.
const NumRotations = 4

// Kinds lists every kind in table order.
var Kinds = [NumKinds]Kind{I, O, T, S, Z, J, L}

var kindNames = [NumKinds]string{"I", "O", "T", "S", "Z", "J", "L"}

var kindColors = [NumKinds]board.Color{
	board.ColorCyan,
	board.ColorYellow,
	board.ColorPurple,
	board.ColorGreen,
	board.ColorRed,
	board.ColorBlue,
	board.ColorOrange,
}

// boxSizes is the side of the bounding box each kind rotates in.
var boxSizes = [NumKinds]int{4, 4, 3, 3, 3, 3, 3}

// shapes holds the occupied offsets of every kind and rotation, clockwise
// from the spawn orientation. Offsets are {Col, Row} inside the bounding box.
var shapes = [NumKinds][NumRotations][4]board.Point{
	I: {
		{{Col: 0, Row: 1}, {Col: 1, Row: 1}, {Col: 2, Row: 1}, {Col: 3, Row: 1}},
		{{Col: 2, Row: 0}, {Col: 2, Row: 1}, {Col: 2, Row: 2}, {Col: 2, Row: 3}},
		{{Col: 0, Row: 2}, {Col: 1, Row: 2}, {Col: 2, Row: 2}, {Col: 3, Row: 2}},
		{{Col: 1, Row: 0}, {Col: 1, Row: 1}, {Col: 1, Row: 2}, {Col: 1, Row: 3}},
	},
	O: {
		{{Col: 1, Row: 1}, {Col: 2, Row: 1}, {Col: 1, Row: 2}, {Col: 2, Row: 2}},
		{{Col: 1, Row: 1}, {Col: 2, Row: 1}, {Col: 1, Row: 2}, {Col: 2, Row: 2}},
		{{Col: 1, Row: 1}, {Col: 2, Row: 1}, {Col: 1, Row: 2}, {Col: 2, Row: 2}},
		{{Col: 1, Row: 1}, {Col: 2, Row: 1}, {Col: 1, Row: 2}, {Col: 2, Row: 2}},
	},
	T: {
		{{Col: 1, Row: 0}, {Col: 0, Row: 1}, {Col: 1, Row: 1}, {Col: 2, Row: 1}},
		{{Col: 1, Row: 0}, {Col: 1, Row: 1}, {Col: 2, Row: 1}, {Col: 1, Row: 2}},
		{{Col: 0, Row: 1}, {Col: 1, Row: 1}, {Col: 2, Row: 1}, {Col: 1, Row: 2}},
		{{Col: 1, Row: 0}, {Col: 0, Row: 1}, {Col: 1, Row: 1}, {Col: 1, Row: 2}},
	},
	S: {
		{{Col: 1, Row: 0}, {Col: 2, Row: 0}, {Col: 0, Row: 1}, {Col: 1, Row: 1}},
		{{Col: 1, Row: 0}, {Col: 1, Row: 1}, {Col: 2, Row: 1}, {Col: 2, Row: 2}},
		{{Col: 1, Row: 1}, {Col: 2, Row: 1}, {Col: 0, Row: 2}, {Col: 1, Row: 2}},
		{{Col: 0, Row: 0}, {Col: 0, Row: 1}, {Col: 1, Row: 1}, {Col: 1, Row: 2}},
	},
	Z: {
		{{Col: 0, Row: 0}, {Col: 1, Row: 0}, {Col: 1, Row: 1}, {Col: 2, Row: 1}},
		{{Col: 2, Row: 0}, {Col: 1, Row: 1}, {Col: 2, Row: 1}, {Col: 1, Row: 2}},
		{{Col: 0, Row: 1}, {Col: 1, Row: 1}, {Col: 1, Row: 2}, {Col: 2, Row: 2}},
		{{Col: 1, Row: 0}, {Col: 0, Row: 1}, {Col: 1, Row: 1}, {Col: 0, Row: 2}},
	},
	J: {
		{{Col: 0, Row: 0}, {Col: 0, Row: 1}, {Col: 1, Row: 1}, {Col: 2, Row: 1}},
		{{Col: 1, Row: 0}, {Col: 2, Row: 0}, {Col: 1, Row: 1}, {Col: 1, Row: 2}},
		{{Col: 0, Row: 1}, {Col: 1, Row: 1}, {Col: 2, Row: 1}, {Col: 2, Row: 2}},
		{{Col: 1, Row: 0}, {Col: 1, Row: 1}, {Col: 0, Row: 2}, {Col: 1, Row: 2}},
	},
	L: {
		{{Col: 2, Row: 0}, {Col: 0, Row: 1}, {Col: 1, Row: 1}, {Col: 2, Row: 1}},
		{{Col: 1, Row: 0}, {Col: 1, Row: 1}, {Col: 1, Row: 2}, {Col: 2, Row: 2}},
		{{Col: 0, Row: 1}, {Col: 1, Row: 1}, {Col: 2, Row: 1}, {Col: 0, Row: 2}},
		{{Col: 0, Row: 0}, {Col: 1, Row: 0}, {Col: 1, Row: 1}, {Col: 1, Row: 2}},
	},
}

func (k Kind) valid() bool {
	return k < NumKinds
}

func (k Kind) mustValid() {
	if !k.valid() {
		panic(fmt.Sprintf("piece: invalid kind %d", uint8(k)))
	}
}

func (k Kind) String() string {
	if !k.valid() {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return kindNames[k]
}

// Color returns the display color of k.
func (k Kind) Color() board.Color {
	k.mustValid()
	return kindColors[k]
}

// BoxSize returns the side of the square k rotates in.
func (k Kind) BoxSize() int {
	k.mustValid()
	return boxSizes[k]
}

// Offsets returns the occupied cells of k in rotation rot, relative to the
// anchor. rot must be in [0, NumRotations).
func (k Kind) Offsets(rot int) [4]board.Point {
	k.mustValid()
	if rot < 0 || rot >= NumRotations {
		panic(fmt.Sprintf("piece: rotation %d out of range for %s", rot, k))
	}
	return shapes[k][rot]
}
