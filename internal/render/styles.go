// Package render draws game frames as terminal strings with lipgloss.
package render

import (
	"go-tetris/internal/board"

	"github.com/charmbracelet/lipgloss"
)

var (
	scoreStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	redStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	greenStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	boldStyle  = lipgloss.NewStyle().Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	panelStyle = lipgloss.NewStyle().Padding(0, 1)

	wellBorder = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color("7"))
	dangerBorder = wellBorder.BorderForeground(lipgloss.Color("9"))
)

// Terminal palette index for each cell color.
var palette = map[board.Color]lipgloss.Color{
	board.ColorCyan:   lipgloss.Color("14"),
	board.ColorYellow: lipgloss.Color("11"),
	board.ColorPurple: lipgloss.Color("13"),
	board.ColorGreen:  lipgloss.Color("10"),
	board.ColorRed:    lipgloss.Color("9"),
	board.ColorBlue:   lipgloss.Color("12"),
	board.ColorOrange: lipgloss.Color("208"),
}

// Cell glyphs, two columns wide so cells look square.
const (
	blockGlyph = "██"
	ghostGlyph = "░░"
	emptyGlyph = " ."
)

func cell(c board.Color) string {
	if c == board.ColorNone {
		return dimStyle.Render(emptyGlyph)
	}
	return lipgloss.NewStyle().Foreground(palette[c]).Render(blockGlyph)
}
