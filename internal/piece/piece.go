package piece

import "go-tetris/internal/board"

// SpawnCol is the anchor column new pieces appear at. It centers a 4-wide
// bounding box on the board.
const SpawnCol = (board.Width - 4) / 2

// SpawnAnchor is where every new piece is placed.
var SpawnAnchor = board.Point{Col: SpawnCol, Row: 0}

// Piece is a placed tetromino: its kind, rotation index and the anchor its
// offsets are relative to.
type Piece struct {
	Kind     Kind
	Rotation int
	Anchor   board.Point
}

// New returns a piece of kind k in spawn position.
func New(k Kind) Piece {
	k.mustValid()
	return Piece{Kind: k, Anchor: SpawnAnchor}
}

// Cells returns the absolute board cells the piece covers.
func (p Piece) Cells() []board.Point {
	offsets := p.Kind.Offsets(p.Rotation)
	cells := make([]board.Point, len(offsets))
	for i, o := range offsets {
		cells[i] = p.Anchor.Add(o)
	}
	return cells
}

// Color is the display color of the piece.
func (p Piece) Color() board.Color {
	return p.Kind.Color()
}

// Shifted returns the piece moved by dc columns and dr rows.
func (p Piece) Shifted(dc, dr int) Piece {
	p.Anchor = p.Anchor.Add(board.Point{Col: dc, Row: dr})
	return p
}

// Rotated returns the piece turned one step clockwise about the same anchor.
func (p Piece) Rotated() Piece {
	p.Rotation = (p.Rotation + 1) % NumRotations
	return p
}

// Fits reports whether p can occupy b: every cell in bounds and free.
func Fits(b *board.Board, p Piece) bool {
	return b.Fits(p.Cells())
}

// Landing returns p dropped as far as it legally goes on b.
func Landing(b *board.Board, p Piece) Piece {
	for {
		next := p.Shifted(0, 1)
		if !Fits(b, next) {
			return p
		}
		p = next
	}
}
