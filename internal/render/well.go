package render

import (
	"fmt"
	"strings"

	"go-tetris/internal/board"
	"go-tetris/internal/piece"

	"github.com/charmbracelet/lipgloss"
)

// DangerHeight is the stack height at which the well border turns red.
const DangerHeight = board.Rows - 4

// Frame is everything needed to draw one screen of play.
type Frame struct {
	Grid     board.Grid    // locked cells with the active piece merged in
	Ghost    []board.Point // landing cells of the active piece, may be nil
	Height   int           // stack height of the locked cells
	Next     piece.Kind
	ShowNext bool
	Counts   [piece.NumKinds]int
	Total    int
	Score    uint32
	Rows     int
	Paused   bool
}

// Well draws the playfield.
func Well(grid board.Grid, ghost []board.Point, height int) string {
	ghosted := make(map[board.Point]bool, len(ghost))
	for _, p := range ghost {
		ghosted[p] = true
	}

	var b strings.Builder
	for row := 0; row < board.Rows; row++ {
		for col := 0; col < board.Width; col++ {
			c := grid[row][col]
			p := board.Point{Col: col, Row: row}
			if c == board.ColorNone && ghosted[p] {
				b.WriteString(dimStyle.Render(ghostGlyph))
				continue
			}
			b.WriteString(cell(c))
		}
		if row < board.Rows-1 {
			b.WriteByte('\n')
		}
	}

	style := wellBorder
	if height >= DangerHeight {
		style = dangerBorder
	}
	return style.Render(b.String())
}

// Preview draws kind in its spawn rotation inside a 4x2 box.
func Preview(kind piece.Kind) string {
	var grid [2][4]bool
	top := board.Rows
	for _, o := range kind.Offsets(0) {
		top = min(top, o.Row)
	}
	for _, o := range kind.Offsets(0) {
		grid[o.Row-top][o.Col] = true
	}

	lines := make([]string, 0, len(grid))
	for _, row := range grid {
		var b strings.Builder
		for _, filled := range row {
			if filled {
				b.WriteString(cell(kind.Color()))
			} else {
				b.WriteString("  ")
			}
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}

// Stats lists how many pieces of each kind have spawned.
func Stats(counts [piece.NumKinds]int) string {
	lines := make([]string, 0, piece.NumKinds)
	for _, k := range piece.Kinds {
		swatch := lipgloss.NewStyle().Foreground(palette[k.Color()]).Render(k.String())
		lines = append(lines, fmt.Sprintf("%s %3d", swatch, counts[k]))
	}
	return strings.Join(lines, "\n")
}

// Status is the score line under the cleared-rows counter.
func Status(score uint32, paused bool) string {
	line := scoreStyle.Render(fmt.Sprintf("SCORE %d", score))
	if paused {
		line += "\n" + boldStyle.Render("PAUSED")
	}
	return line
}

// Game lays out the well and its side panel.
func Game(f Frame) string {
	side := []string{
		boldStyle.Render("LINES"),
		SevenSegment(f.Rows),
		"",
		Status(f.Score, f.Paused),
	}
	if f.ShowNext {
		side = append(side, "", boldStyle.Render("NEXT"), Preview(f.Next))
	}
	side = append(side, "", boldStyle.Render(fmt.Sprintf("PIECES %d", f.Total)), Stats(f.Counts))

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		Well(f.Grid, f.Ghost, f.Height),
		panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, side...)),
	)
}
