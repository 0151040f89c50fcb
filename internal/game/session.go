package game

import (
	"time"

	"go-tetris/internal/piece"
	"go-tetris/internal/scoring"

	"github.com/sirupsen/logrus"
)

// Session runs consecutive rounds on one Game and remembers their results
// for as long as the process lives.
type Session struct {
	CurrentGame *Game
	History     scoring.History
	Round       int
	NewBest     bool // the last recorded round beat every earlier one

	recorded bool
	log      logrus.FieldLogger
}

// NewSession creates the game and starts the first round at now.
func NewSession(rng piece.Randomizer, opts Options, log logrus.FieldLogger, now time.Time) *Session {
	if log == nil {
		log = logrus.StandardLogger()
	}
	s := &Session{
		CurrentGame: NewGame(rng, opts, log),
		log:         log.WithField("component", "session"),
	}
	s.NextRound(now)
	return s
}

// NextRound abandons whatever is in progress and starts a new round.
func (s *Session) NextRound(now time.Time) {
	s.Round++
	s.recorded = false
	s.CurrentGame.Init(now)
	s.log.WithField("round", s.Round).Info("round started")
}

// Update records the round in the history the first time it is seen to be
// over. It reports whether that happened on this call.
func (s *Session) Update() bool {
	if s.recorded || !s.CurrentGame.IsOver() {
		return false
	}
	entry := s.CurrentGame.Score.Entry()
	s.NewBest = s.History.Attempts() > 0 && s.History.GotHighScore(entry)
	s.History.Add(entry)
	s.recorded = true
	s.log.WithFields(logrus.Fields{
		"round": s.Round,
		"score": entry.Score,
		"lines": entry.Lines,
		"best":  s.NewBest,
	}).Info("round finished")
	return true
}

// IsRoundOver reports whether the current round has ended.
func (s *Session) IsRoundOver() bool {
	return s.CurrentGame.IsOver()
}

// LastEntry returns the most recently recorded round.
func (s *Session) LastEntry() (scoring.HistoryEntry, bool) {
	if len(s.History.Entries) == 0 {
		return scoring.HistoryEntry{}, false
	}
	return s.History.Entries[len(s.History.Entries)-1], true
}
