package scoring

import (
	"time"
)

// MaxClearedRows is where the cleared-rows counter saturates. The counter
// feeds a two-digit display.
const MaxClearedRows = 99

// Scoring accumulates the score and cleared-row count of one round.
type Scoring struct {
	score       uint32
	clearedRows uint8
	lines       int // uncapped, for the round history
	scoreTable  map[string]uint32
	started     time.Time
}

// InitScoring creates a Scoring ready for a new round.
func InitScoring() *Scoring {
	s := &Scoring{
		scoreTable: getScoreTable(),
	}
	s.Init()
	return s
}

// Init zeroes both counters.
func (s *Scoring) Init() {
	s.score = 0
	s.clearedRows = 0
	s.lines = 0
	s.started = time.Now()
}

// NotifyClear records that n rows were cleared by a single lock. n may be 0.
func (s *Scoring) NotifyClear(n int) {
	if n <= 0 {
		return
	}
	s.ScoreEvent(clearEvent(n))
	for i := 0; i < n; i++ {
		s.incrementClearedRows()
	}
	s.lines += n
}

// ScoreEvent adds the points for a named event. Unknown events score nothing.
func (s *Scoring) ScoreEvent(event string) {
	s.AddToScore(s.scoreTable[event])
}

// AddToScore adds value to the score.
func (s *Scoring) AddToScore(value uint32) {
	s.score += value
}

func (s *Scoring) incrementClearedRows() {
	if s.clearedRows < MaxClearedRows {
		s.clearedRows++
	}
}

// Score returns the total score.
func (s *Scoring) Score() uint32 {
	return s.score
}

// ClearedRows returns the cleared-row count, saturated at MaxClearedRows.
func (s *Scoring) ClearedRows() int {
	return int(s.clearedRows)
}

// Entry summarizes the round so far for the history table.
func (s *Scoring) Entry() HistoryEntry {
	return HistoryEntry{
		Score:     s.score,
		Lines:     s.lines,
		Timestamp: s.started.Format(time.RFC3339),
	}
}

func clearEvent(n int) string {
	switch n {
	case 1:
		return "single"
	case 2:
		return "double"
	case 3:
		return "triple"
	default:
		return "tetris"
	}
}

// getScoreTable returns the points awarded for each clearing event.
func getScoreTable() map[string]uint32 {
	return map[string]uint32{
		"single": 100,
		"double": 300,
		"triple": 500,
		"tetris": 800,
	}
}
