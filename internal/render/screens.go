package render

import (
	"fmt"
	"strings"

	"go-tetris/internal/scoring"

	"github.com/charmbracelet/lipgloss"
)

// Colors the splash banner cycles through.
var splashColors = []lipgloss.Color{"9", "10", "12", "11"}

// Randomizer picks the next splash color.
type Randomizer interface {
	IntN(n int) int
}

// Splash is the title screen. Its banner scrolls one character per Advance
// and switches to a random color after each full pass.
type Splash struct {
	text   []rune
	width  int
	offset int
	color  int
	rng    Randomizer
}

// NewSplash scrolls text through a window width characters wide.
func NewSplash(text string, width int, rng Randomizer) *Splash {
	padding := []rune(strings.Repeat(" ", width))
	return &Splash{
		text:  append(padding, []rune(text)...),
		width: width,
		rng:   rng,
	}
}

// Advance scrolls the banner by one character.
func (s *Splash) Advance() {
	s.offset++
	if s.offset >= len(s.text) {
		s.offset = 0
		s.color = s.rng.IntN(len(splashColors))
	}
}

// Color returns the current banner color.
func (s *Splash) Color() lipgloss.Color {
	return splashColors[s.color]
}

// Window returns the visible part of the banner.
func (s *Splash) Window() string {
	out := make([]rune, s.width)
	for i := range out {
		out[i] = s.text[(s.offset+i)%len(s.text)]
	}
	return string(out)
}

func (s *Splash) View() string {
	banner := lipgloss.NewStyle().Foreground(s.Color()).Render(s.Window())
	return wellBorder.Padding(1, 2).Render(
		lipgloss.JoinVertical(lipgloss.Center, boldStyle.Render("T E T R I S"), "", banner),
	)
}

// GameOver shows the final result and the best rounds so far. history must
// already include final.
func GameOver(final scoring.HistoryEntry, history scoring.History, top int, newBest bool) string {
	lines := []string{
		redStyle.Render("GAME OVER"),
		"Press a key to start again",
		"",
		scoreStyle.Render(fmt.Sprintf("Final score: %d | Lines: %d", final.Score, final.Lines)),
	}

	if newBest {
		lines = append(lines, greenStyle.Render("New best score!"))
	}

	if entries := history.GetNScoreEntries(top); len(entries) > 0 {
		lines = append(lines, "", fmt.Sprintf("Top %d of %d rounds:", len(entries), history.Attempts()))
		for _, e := range entries {
			lines = append(lines, fmt.Sprintf("  * %d (%d lines) on %s", e.Score, e.Lines, e.Timestamp))
		}
	}
	return strings.Join(lines, "\n")
}
