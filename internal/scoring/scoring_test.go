package scoring

import (
	"testing"
)

// TestInitScoring verifies that a fresh Scoring starts at zero.
func TestInitScoring(t *testing.T) {
	s := InitScoring()

	if s.Score() != 0 {
		t.Errorf("expected initial score of 0, but got %d", s.Score())
	}
	if s.ClearedRows() != 0 {
		t.Errorf("expected 0 cleared rows, but got %d", s.ClearedRows())
	}
}

// TestNotifyClear checks the points and row count for each clear size.
func TestNotifyClear(t *testing.T) {
	tests := []struct {
		rows      int
		wantScore uint32
	}{
		{0, 0},
		{1, 100},
		{2, 300},
		{3, 500},
		{4, 800},
	}

	for _, tt := range tests {
		s := InitScoring()
		s.NotifyClear(tt.rows)
		if s.Score() != tt.wantScore {
			t.Errorf("%d rows: expected score %d, got %d", tt.rows, tt.wantScore, s.Score())
		}
		if s.ClearedRows() != tt.rows {
			t.Errorf("%d rows: expected cleared rows %d, got %d", tt.rows, tt.rows, s.ClearedRows())
		}
	}
}

// TestClearedRowsSaturates verifies the counter clamps at 99 while the score
// keeps growing.
func TestClearedRowsSaturates(t *testing.T) {
	s := InitScoring()
	for i := 0; i < 30; i++ {
		s.NotifyClear(4)
	}

	if s.ClearedRows() != MaxClearedRows {
		t.Errorf("expected cleared rows to saturate at %d, got %d", MaxClearedRows, s.ClearedRows())
	}
	if s.Score() != 30*800 {
		t.Errorf("expected score %d, got %d", 30*800, s.Score())
	}
	if s.Entry().Lines != 120 {
		t.Errorf("expected 120 lines in history entry, got %d", s.Entry().Lines)
	}

	s.NotifyClear(1)
	if s.ClearedRows() != MaxClearedRows {
		t.Errorf("counter must not wrap, got %d", s.ClearedRows())
	}
}

// TestInitResets verifies Init starts a new round.
func TestInitResets(t *testing.T) {
	s := InitScoring()
	s.NotifyClear(2)
	s.AddToScore(5)

	s.Init()
	if s.Score() != 0 || s.ClearedRows() != 0 {
		t.Errorf("expected counters reset, got score %d rows %d", s.Score(), s.ClearedRows())
	}
}

// TestScoreEvent_Unknown checks unknown events leave the score alone.
func TestScoreEvent_Unknown(t *testing.T) {
	s := InitScoring()
	s.ScoreEvent("softDrop")
	if s.Score() != 0 {
		t.Errorf("expected score 0, got %d", s.Score())
	}
}

// TestHistory verifies high score tracking and ordering.
func TestHistory(t *testing.T) {
	var h History

	if !h.GotHighScore(HistoryEntry{Score: 0}) {
		t.Error("an empty history makes any entry a high score")
	}

	h.Add(HistoryEntry{Score: 100})
	h.Add(HistoryEntry{Score: 300})
	h.Add(HistoryEntry{Score: 200})

	if h.Attempts() != 3 {
		t.Errorf("expected 3 attempts, got %d", h.Attempts())
	}
	if h.HighScoreEntry == nil || h.HighScoreEntry.Score != 300 {
		t.Fatalf("expected high score 300, got %v", h.HighScoreEntry)
	}
	if h.GotHighScore(HistoryEntry{Score: 299}) {
		t.Error("299 is not a high score")
	}
	if !h.GotHighScore(HistoryEntry{Score: 300}) {
		t.Error("matching the high score counts")
	}

	entries := h.GetNScoreEntries(2)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Score != 300 || entries[1].Score != 200 {
		t.Errorf("unexpected order: %v", entries)
	}
	if len(h.GetNScoreEntries(10)) != 3 {
		t.Error("asking for more entries than exist returns all of them")
	}
	if h.Entries[0].Score != 100 {
		t.Error("GetNScoreEntries must not reorder the history")
	}
}
