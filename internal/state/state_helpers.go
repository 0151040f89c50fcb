package state

import (
	"go-tetris/internal/board"
	"go-tetris/internal/piece"
)

// Active returns the falling piece. ok is false before the first Reset and
// after game over.
func (s *State) Active() (p piece.Piece, ok bool) {
	return s.active, s.FSM.Is(StateFalling)
}

// Ghost returns where the active piece would land.
func (s *State) Ghost() piece.Piece {
	return piece.Landing(s.board, s.active)
}

// Board returns a copy of the locked cells.
func (s *State) Board() board.Grid {
	return s.board.Snapshot()
}

// Next returns the kind that will spawn after the active piece.
func (s *State) Next() piece.Kind {
	return s.queue.Peek()
}

// Queue exposes the spawn statistics.
func (s *State) Queue() *piece.Queue {
	return s.queue
}

// LastCleared returns how many rows the most recent lock cleared.
func (s *State) LastCleared() int {
	return s.lastCleared
}

// Current returns the machine state name.
func (s *State) Current() string {
	return s.FSM.Current()
}

// Frame merges the board and the active piece into one grid for display.
// The active piece is omitted when nothing is falling.
func (s *State) Frame() board.Grid {
	grid := s.board.Snapshot()
	if p, ok := s.Active(); ok {
		for _, c := range p.Cells() {
			grid[c.Row][c.Col] = p.Color()
		}
	}
	return grid
}

// StackHeight returns the height of the locked stack in rows.
func (s *State) StackHeight() int {
	return s.board.Height()
}
