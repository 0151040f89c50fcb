package board

import "fmt"

// Playfield dimensions. Row 0 is the top row.
const (
	Width = 10
	Rows  = 20
)

// Color tags an occupied cell. ColorNone marks an empty cell.
type Color uint8

const (
	ColorNone Color = iota
	ColorCyan
	ColorYellow
	ColorPurple
	ColorGreen
	ColorRed
	ColorBlue
	ColorOrange
)

func (c Color) String() string {
	switch c {
	case ColorNone:
		return "none"
	case ColorCyan:
		return "cyan"
	case ColorYellow:
		return "yellow"
	case ColorPurple:
		return "purple"
	case ColorGreen:
		return "green"
	case ColorRed:
		return "red"
	case ColorBlue:
		return "blue"
	case ColorOrange:
		return "orange"
	default:
		return fmt.Sprintf("Color(%d)", uint8(c))
	}
}

// Point is a column/row pair. It is used both for shape offsets and for
// absolute board positions.
type Point struct {
	Col int
	Row int
}

// Add returns p translated by o.
func (p Point) Add(o Point) Point {
	return Point{Col: p.Col + o.Col, Row: p.Row + o.Row}
}

// Grid is a copy of the board cells handed out to readers.
type Grid [Rows][Width]Color

// Board owns the locked cells of the playfield.
type Board struct {
	cells Grid
}

// New returns an empty board.
func New() *Board {
	return &Board{}
}

// InBounds reports whether p lies inside the playfield.
func InBounds(p Point) bool {
	return p.Col >= 0 && p.Col < Width && p.Row >= 0 && p.Row < Rows
}

// At returns the color at p, or ColorNone when p is out of bounds.
func (b *Board) At(p Point) Color {
	if !InBounds(p) {
		return ColorNone
	}
	return b.cells[p.Row][p.Col]
}

// Occupied reports whether the in-bounds cell p holds a locked block.
func (b *Board) Occupied(p Point) bool {
	return b.At(p) != ColorNone
}

// Fits reports whether every cell is in bounds and free.
func (b *Board) Fits(cells []Point) bool {
	for _, c := range cells {
		if !InBounds(c) || b.cells[c.Row][c.Col] != ColorNone {
			return false
		}
	}
	return true
}

// Lock writes cells into the board with color c. The placement must already
// be legal; locking over an occupied or out-of-bounds cell is a bug in the
// caller and panics.
func (b *Board) Lock(cells []Point, c Color) {
	if c == ColorNone {
		panic("board: lock with ColorNone")
	}
	if !b.Fits(cells) {
		panic(fmt.Sprintf("board: lock of illegal placement %v", cells))
	}
	for _, p := range cells {
		b.cells[p.Row][p.Col] = c
	}
}

// IsRowComplete reports whether every column of row is occupied.
func (b *Board) IsRowComplete(row int) bool {
	if row < 0 || row >= Rows {
		panic(fmt.Sprintf("board: row %d out of range", row))
	}
	for _, c := range b.cells[row] {
		if c == ColorNone {
			return false
		}
	}
	return true
}

// ClearCompletedRows removes every complete row and drops the rows above
// them, returning how many rows were removed. Surviving rows keep their
// relative order and the top is padded with empty rows.
func (b *Board) ClearCompletedRows() int {
	var next Grid
	dst := Rows - 1
	for row := Rows - 1; row >= 0; row-- {
		if b.IsRowComplete(row) {
			continue
		}
		next[dst] = b.cells[row]
		dst--
	}
	removed := dst + 1
	if removed > 0 {
		b.cells = next
	}
	return removed
}

// Clear empties the board.
func (b *Board) Clear() {
	b.cells = Grid{}
}

// Snapshot returns a copy of the cells.
func (b *Board) Snapshot() Grid {
	return b.cells
}

// Height returns the number of rows from the highest occupied cell down to
// the floor, or 0 for an empty board.
func (b *Board) Height() int {
	for row := 0; row < Rows; row++ {
		for _, c := range b.cells[row] {
			if c != ColorNone {
				return Rows - row
			}
		}
	}
	return 0
}
