package render

import "strings"

// Segment bits of a seven-segment digit, a..g.
const (
	segA = 1 << iota // top
	segB             // upper right
	segC             // lower right
	segD             // bottom
	segE             // lower left
	segF             // upper left
	segG             // middle
)

var digitSegments = [10]uint8{63, 6, 91, 79, 102, 109, 125, 7, 127, 111}

func lit(segs uint8, bit uint8, on string) string {
	if segs&bit != 0 {
		return on
	}
	return " "
}

// Digit draws d (0-9) as three lines of three characters.
func Digit(d int) [3]string {
	s := digitSegments[d]
	return [3]string{
		" " + lit(s, segA, "_") + " ",
		lit(s, segF, "|") + lit(s, segG, "_") + lit(s, segB, "|"),
		lit(s, segE, "|") + lit(s, segD, "_") + lit(s, segC, "|"),
	}
}

// SevenSegment draws n as a two-digit display. Values outside 0-99 are
// clamped.
func SevenSegment(n int) string {
	n = max(0, min(n, 99))
	tens, units := Digit(n/10), Digit(n%10)

	lines := make([]string, 3)
	for i := range lines {
		lines[i] = tens[i] + " " + units[i]
	}
	return scoreStyle.Render(strings.Join(lines, "\n"))
}
