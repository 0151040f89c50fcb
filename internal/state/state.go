package state

import (
	"context"
	"fmt"

	"go-tetris/internal/board"
	"go-tetris/internal/piece"

	"github.com/looplab/fsm"
	"github.com/sirupsen/logrus"
)

// Machine states.
const (
	StateStart    = "start"
	StateSpawning = "spawning"
	StateFalling  = "falling"
	StateLocking  = "locking"
	StateGameOver = "gameOver"
)

// Direction is a horizontal move request.
type Direction int

const (
	Left  Direction = -1
	Right Direction = 1
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Accumulator receives the number of rows cleared by every lock.
type Accumulator interface {
	Init()
	NotifyClear(rows int)
}

// State owns the board, the falling piece and the piece queue. It is the
// only mutator of all three.
type State struct {
	board       *board.Board
	active      piece.Piece
	queue       *piece.Queue
	score       Accumulator
	lastCleared int
	FSM         *fsm.FSM
	log         logrus.FieldLogger
}

// NewState builds a machine in StateStart. Call Reset to spawn the first
// piece.
func NewState(score Accumulator, queue *piece.Queue, log logrus.FieldLogger) *State {
	if log == nil {
		log = logrus.StandardLogger()
	}
	s := &State{
		board: board.New(),
		queue: queue,
		score: score,
		log:   log.WithField("component", "state"),
	}

	s.FSM = fsm.NewFSM(
		StateStart,
		getStateTransitions(),
		getStateCallbacks(s),
	)

	return s
}

// Reset empties the board and the queue, restarts the score and spawns the
// first piece. It reports false if that spawn is already blocked.
func (s *State) Reset() bool {
	s.board.Clear()
	s.queue.Reset()
	s.score.Init()
	s.lastCleared = 0
	s.fire("reset")
	return s.FSM.Is(StateFalling)
}

// AttemptMove shifts the active piece one column. The piece is unchanged
// when the move is illegal.
func (s *State) AttemptMove(dir Direction) bool {
	if dir != Left && dir != Right {
		panic(fmt.Sprintf("state: invalid direction %d", int(dir)))
	}
	return s.attempt(s.active.Shifted(int(dir), 0))
}

// AttemptRotation turns the active piece clockwise in place. There is no
// wall-kick: if the turned piece does not fit at the same anchor the
// rotation fails.
func (s *State) AttemptRotation() bool {
	return s.attempt(s.active.Rotated())
}

// AttemptDropBlockOneRow moves the active piece down one row. A false
// result means the piece has landed and the caller must follow with
// FixBlockToBoardAndAddNewBlock.
func (s *State) AttemptDropBlockOneRow() bool {
	return s.attempt(s.active.Shifted(0, 1))
}

// FixBlockToBoardAndAddNewBlock locks the active piece, clears complete
// rows, reports them to the accumulator and spawns the next piece. It
// returns false when the new piece cannot be placed: the game is over.
func (s *State) FixBlockToBoardAndAddNewBlock() bool {
	if !s.FSM.Is(StateFalling) {
		return false
	}
	s.fire("land")
	return s.FSM.Is(StateFalling)
}

// HardDrop drops the active piece until it lands, then locks it. It returns
// the rows fallen and whether play continues.
func (s *State) HardDrop() (int, bool) {
	if !s.FSM.Is(StateFalling) {
		return 0, false
	}
	fallen := 0
	for s.AttemptDropBlockOneRow() {
		fallen++
	}
	return fallen, s.FixBlockToBoardAndAddNewBlock()
}

// IsGameOver reports whether the last spawn was blocked.
func (s *State) IsGameOver() bool {
	return s.FSM.Is(StateGameOver)
}

func (s *State) attempt(candidate piece.Piece) bool {
	if !s.FSM.Is(StateFalling) {
		return false
	}
	if !piece.Fits(s.board, candidate) {
		return false
	}
	s.active = candidate
	return true
}

func (s *State) fire(event string) {
	s.fireOn(context.Background(), s.FSM, event)
}

// fireOn sends event to f, logging a rejection. Chained events from inside
// callbacks go through here too.
func (s *State) fireOn(ctx context.Context, f *fsm.FSM, event string) {
	if err := f.Event(ctx, event); err != nil {
		s.log.WithError(err).WithFields(logrus.Fields{
			"event": event,
			"state": f.Current(),
		}).Error("state machine rejected event")
	}
}

func getStateTransitions() []fsm.EventDesc {
	return fsm.Events{
		{Name: "reset", Src: []string{StateStart, StateFalling, StateGameOver}, Dst: StateSpawning},

		// Lock transition: falling -> locking -> spawning -> falling | gameOver
		{Name: "land", Src: []string{StateFalling}, Dst: StateLocking},
		{Name: "cleared", Src: []string{StateLocking}, Dst: StateSpawning},
		{Name: "spawned", Src: []string{StateSpawning}, Dst: StateFalling},
		{Name: "toppedOut", Src: []string{StateSpawning}, Dst: StateGameOver},
	}
}

func getStateCallbacks(s *State) map[string]fsm.Callback {
	return fsm.Callbacks{
		"enter_state": func(_ context.Context, e *fsm.Event) {
			s.log.WithFields(logrus.Fields{
				"event": e.Event,
				"from":  e.Src,
				"to":    e.Dst,
			}).Debug("transition")
		},
		"enter_locking": func(ctx context.Context, e *fsm.Event) {
			if !piece.Fits(s.board, s.active) {
				panic(fmt.Sprintf("state: active piece %+v overlaps the board", s.active))
			}
			s.board.Lock(s.active.Cells(), s.active.Color())

			s.lastCleared = s.board.ClearCompletedRows()
			s.score.NotifyClear(s.lastCleared)
			if s.lastCleared > 0 {
				s.log.WithField("rows", s.lastCleared).Info("rows cleared")
			}

			s.fireOn(ctx, e.FSM, "cleared")
		},
		"enter_spawning": func(ctx context.Context, e *fsm.Event) {
			candidate := s.queue.Spawn()
			if !piece.Fits(s.board, candidate) {
				s.log.WithField("kind", candidate.Kind).Info("spawn blocked, game over")
				s.fireOn(ctx, e.FSM, "toppedOut")
				return
			}
			s.active = candidate
			s.fireOn(ctx, e.FSM, "spawned")
		},
	}
}
