package game

import (
	"io"
	"testing"
	"time"

	"go-tetris/internal/board"
	"go-tetris/internal/input"
	"go-tetris/internal/piece"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// repeat always draws the same kind.
type repeat piece.Kind

func (r repeat) IntN(n int) int { return int(r) % n }

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newTestGame(t *testing.T, kind piece.Kind, opts Options) *Game {
	t.Helper()
	g := NewGame(repeat(kind), opts, quietLogger())
	g.Init(t0)
	require.False(t, g.IsOver())
	return g
}

func activeRow(t *testing.T, g *Game) int {
	t.Helper()
	p, ok := g.State.Active()
	require.True(t, ok)
	return p.Anchor.Row
}

func at(ms int) time.Time {
	return t0.Add(time.Duration(ms) * time.Millisecond)
}

func TestGame_Init(t *testing.T) {
	g := newTestGame(t, piece.T, DefaultOptions())

	assert.Equal(t, 0, activeRow(t, g))
	assert.Equal(t, uint32(0), g.Score.Score())
	assert.False(t, g.IsPaused())
	assert.Equal(t, 600*time.Millisecond, g.DropInterval())
}

func TestGame_DropInterval(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		cleared int
		want    time.Duration
	}{
		{name: "no rows", opts: DefaultOptions(), cleared: 0, want: 600 * time.Millisecond},
		{name: "four rows", opts: DefaultOptions(), cleared: 4, want: 480 * time.Millisecond},
		{name: "floor", opts: Options{DropBase: 600 * time.Millisecond, DropStep: 30 * time.Millisecond, DropMin: 500 * time.Millisecond}, cleared: 4, want: 500 * time.Millisecond},
		{name: "never negative", opts: DefaultOptions(), cleared: 99, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, piece.T, tt.opts)
			g.Score.NotifyClear(tt.cleared)
			assert.Equal(t, tt.want, g.DropInterval())
		})
	}
}

func TestGame_TickDropsOnInterval(t *testing.T) {
	g := newTestGame(t, piece.T, DefaultOptions())

	g.HandleTick(at(599))
	assert.Equal(t, 0, activeRow(t, g))
	g.HandleTick(at(600))
	assert.Equal(t, 1, activeRow(t, g))
	g.HandleTick(at(1199))
	assert.Equal(t, 1, activeRow(t, g))
	g.HandleTick(at(1200))
	assert.Equal(t, 2, activeRow(t, g))
}

func TestGame_PauseShiftsDropTimer(t *testing.T) {
	g := newTestGame(t, piece.T, DefaultOptions())

	g.HandleCommand(input.Pause, at(100))
	require.True(t, g.IsPaused())

	// While paused nothing but Pause is accepted.
	g.HandleTick(at(700))
	g.HandleCommand(input.MoveLeft, at(800))
	g.HandleCommand(input.HardDrop, at(900))
	p, _ := g.State.Active()
	assert.Equal(t, piece.New(piece.T), p)

	// Resume after one second: the next drop is due one second late.
	g.HandleCommand(input.Pause, at(1100))
	require.False(t, g.IsPaused())
	g.HandleTick(at(1599))
	assert.Equal(t, 0, activeRow(t, g))
	g.HandleTick(at(1600))
	assert.Equal(t, 1, activeRow(t, g))
}

func TestGame_Commands(t *testing.T) {
	g := newTestGame(t, piece.T, DefaultOptions())
	start, _ := g.State.Active()

	g.HandleCommand(input.MoveLeft, t0)
	p, _ := g.State.Active()
	assert.Equal(t, start.Anchor.Col-1, p.Anchor.Col)

	g.HandleCommand(input.MoveRight, t0)
	g.HandleCommand(input.MoveRight, t0)
	p, _ = g.State.Active()
	assert.Equal(t, start.Anchor.Col+1, p.Anchor.Col)

	g.HandleCommand(input.Rotate, t0)
	p, _ = g.State.Active()
	assert.Equal(t, 1, p.Rotation)

	g.HandleCommand(input.SoftDrop, t0)
	assert.Equal(t, 1, activeRow(t, g))

	// Non-gameplay commands are left to the caller.
	g.HandleCommand(input.Restart, t0)
	g.HandleCommand(input.Quit, t0)
	assert.Equal(t, 1, activeRow(t, g))
}

func TestGame_SoftDropLocksOnFloor(t *testing.T) {
	g := newTestGame(t, piece.O, DefaultOptions())
	for i := 0; i < 17; i++ {
		g.HandleCommand(input.SoftDrop, t0)
	}
	assert.Equal(t, 17, activeRow(t, g))

	g.HandleCommand(input.SoftDrop, t0)
	assert.Equal(t, 0, activeRow(t, g), "a new piece spawned")
	assert.Equal(t, board.ColorYellow, g.State.Board()[19][4])
	assert.Equal(t, 2, g.State.Queue().Count(piece.O))
}

func TestGame_HardDropResetsTimer(t *testing.T) {
	g := newTestGame(t, piece.O, DefaultOptions())

	g.HandleCommand(input.HardDrop, at(500))
	assert.Equal(t, board.ColorYellow, g.State.Board()[18][5])
	assert.Equal(t, 0, activeRow(t, g))

	g.HandleTick(at(1099))
	assert.Equal(t, 0, activeRow(t, g))
	g.HandleTick(at(1100))
	assert.Equal(t, 1, activeRow(t, g))
}

func TestGame_SoftDropResetsTimer(t *testing.T) {
	g := newTestGame(t, piece.T, DefaultOptions())

	g.HandleCommand(input.SoftDrop, at(590))
	assert.Equal(t, 1, activeRow(t, g))

	// Gravity waits a full interval after the player's drop.
	g.HandleTick(at(600))
	assert.Equal(t, 1, activeRow(t, g))
	g.HandleTick(at(1189))
	assert.Equal(t, 1, activeRow(t, g))
	g.HandleTick(at(1190))
	assert.Equal(t, 2, activeRow(t, g))
}

func TestGame_GameOver(t *testing.T) {
	g := newTestGame(t, piece.O, DefaultOptions())

	drops := 0
	for !g.IsOver() && drops < 20 {
		g.HandleCommand(input.HardDrop, t0)
		drops++
	}
	require.True(t, g.IsOver())
	assert.Equal(t, 9, drops, "nine O pieces fill columns 4 and 5 up to the spawn rows")

	before := g.State.Board()
	for _, cmd := range []input.Command{input.MoveLeft, input.Rotate, input.SoftDrop, input.HardDrop, input.Pause} {
		g.HandleCommand(cmd, t0)
	}
	g.HandleTick(at(10_000))
	assert.Equal(t, before, g.State.Board())
	assert.False(t, g.IsPaused(), "pause is ignored after game over")

	g.Init(at(20_000))
	assert.False(t, g.IsOver())
	assert.Equal(t, board.Grid{}, g.State.Board())
}

func TestGame_Frame(t *testing.T) {
	g := newTestGame(t, piece.O, DefaultOptions())

	f := g.Frame(true, true)
	assert.Equal(t, board.ColorYellow, f.Grid[1][4])
	assert.Len(t, f.Ghost, 4)
	assert.Equal(t, piece.O, f.Next)
	assert.True(t, f.ShowNext)
	assert.Equal(t, 1, f.Counts[piece.O])
	assert.Equal(t, 1, f.Total)
	assert.Equal(t, 0, f.Height)

	f = g.Frame(false, false)
	assert.Nil(t, f.Ghost)
	assert.False(t, f.ShowNext)
}
