package game

import (
	"time"

	"go-tetris/internal/input"
	"go-tetris/internal/piece"
	"go-tetris/internal/render"
	"go-tetris/internal/scoring"
	"go-tetris/internal/state"

	"github.com/sirupsen/logrus"
)

// Options is the gravity policy. The drop interval shrinks by DropStep for
// every cleared row and never goes below DropMin.
type Options struct {
	DropBase time.Duration
	DropStep time.Duration
	DropMin  time.Duration
}

// DefaultOptions returns the classic speed curve.
func DefaultOptions() Options {
	return Options{
		DropBase: 600 * time.Millisecond,
		DropStep: 30 * time.Millisecond,
	}
}

// Game encapsulates the core game logic, independent of the UI. It owns the
// drop timer and the pause flag and turns commands into state machine calls.
type Game struct {
	State *state.State
	Score *scoring.Scoring

	opts     Options
	lastDrop time.Time
	paused   bool
	pausedAt time.Time
	log      logrus.FieldLogger
}

// NewGame builds a game drawing pieces from rng. Call Init before use.
func NewGame(rng piece.Randomizer, opts Options, log logrus.FieldLogger) *Game {
	if log == nil {
		log = logrus.StandardLogger()
	}
	sc := scoring.InitScoring()
	return &Game{
		State: state.NewState(sc, piece.NewQueue(rng), log),
		Score: sc,
		opts:  opts,
		log:   log.WithField("component", "game"),
	}
}

// Init starts a fresh round at now.
func (g *Game) Init(now time.Time) {
	g.paused = false
	g.lastDrop = now
	if !g.State.Reset() {
		g.log.Warn("first spawn blocked")
	}
}

// DropInterval is the current time between automatic drops.
func (g *Game) DropInterval() time.Duration {
	d := g.opts.DropBase - time.Duration(g.Score.ClearedRows())*g.opts.DropStep
	return max(d, g.opts.DropMin, 0)
}

// HandleTick drops the active piece one row once the drop interval has
// elapsed since the last drop.
func (g *Game) HandleTick(now time.Time) {
	if g.paused || g.IsOver() {
		return
	}
	if now.Sub(g.lastDrop) < g.DropInterval() {
		return
	}
	g.lastDrop = now
	g.dropOrLock()
}

// HandleCommand applies a player command. Everything except Pause is
// ignored while paused, and gameplay commands are ignored after game over.
func (g *Game) HandleCommand(cmd input.Command, now time.Time) {
	if cmd == input.Pause {
		g.togglePause(now)
		return
	}
	if g.paused || !cmd.Gameplay() || g.IsOver() {
		return
	}

	switch cmd {
	case input.MoveLeft:
		g.State.AttemptMove(state.Left)
	case input.MoveRight:
		g.State.AttemptMove(state.Right)
	case input.Rotate:
		g.State.AttemptRotation()
	case input.SoftDrop:
		g.dropOrLock()
		g.lastDrop = now
	case input.HardDrop:
		g.State.HardDrop()
		g.lastDrop = now
	}
}

func (g *Game) dropOrLock() {
	if g.State.AttemptDropBlockOneRow() {
		return
	}
	if !g.State.FixBlockToBoardAndAddNewBlock() {
		g.log.WithFields(logrus.Fields{
			"score": g.Score.Score(),
			"rows":  g.Score.ClearedRows(),
		}).Info("game over")
	}
}

func (g *Game) togglePause(now time.Time) {
	if g.IsOver() {
		return
	}
	if !g.paused {
		g.paused = true
		g.pausedAt = now
		g.log.Debug("paused")
		return
	}
	// The time spent paused does not count towards the next drop.
	g.lastDrop = g.lastDrop.Add(now.Sub(g.pausedAt))
	g.paused = false
	g.log.Debug("resumed")
}

// IsPaused reports whether play is suspended.
func (g *Game) IsPaused() bool {
	return g.paused
}

// IsOver reports whether the round has ended.
func (g *Game) IsOver() bool {
	return g.State.IsGameOver()
}

// Frame collects what the renderer needs for one screen.
func (g *Game) Frame(showGhost, showNext bool) render.Frame {
	f := render.Frame{
		Grid:     g.State.Frame(),
		Height:   g.State.StackHeight(),
		Next:     g.State.Next(),
		ShowNext: showNext,
		Score:    g.Score.Score(),
		Rows:     g.Score.ClearedRows(),
		Paused:   g.paused,
		Total:    g.State.Queue().Total(),
	}
	if showGhost {
		if _, ok := g.State.Active(); ok {
			f.Ghost = g.State.Ghost().Cells()
		}
	}
	for _, k := range piece.Kinds {
		f.Counts[k] = g.State.Queue().Count(k)
	}
	return f
}
