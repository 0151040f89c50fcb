package scoring

import (
	"sort"
)

// History keeps the results of the rounds played in this process. Nothing is
// written to disk.
type History struct {
	Entries        []HistoryEntry
	HighScoreEntry *HistoryEntry
}

// HistoryEntry is the outcome of one round.
type HistoryEntry struct {
	Score     uint32
	Lines     int
	Timestamp string
}

// Add records a finished round.
func (h *History) Add(entry HistoryEntry) {
	h.Entries = append(h.Entries, entry)
	if h.HighScoreEntry == nil || entry.Score > h.HighScoreEntry.Score {
		e := entry
		h.HighScoreEntry = &e
	}
}

// Attempts returns the number of finished rounds.
func (h History) Attempts() int {
	return len(h.Entries)
}

// GetNScoreEntries returns the top N entries, sorted by score.
func (h History) GetNScoreEntries(n int) []HistoryEntry {
	// Make a copy to avoid modifying the original slice.
	entriesCopy := make([]HistoryEntry, len(h.Entries))
	copy(entriesCopy, h.Entries)

	sort.SliceStable(entriesCopy, func(i, j int) bool {
		return entriesCopy[i].Score > entriesCopy[j].Score
	})

	if len(entriesCopy) < n {
		return entriesCopy
	}
	return entriesCopy[:n]
}

// GotHighScore checks if entry is at least as good as every recorded round.
func (h History) GotHighScore(entry HistoryEntry) bool {
	if h.HighScoreEntry == nil {
		return true
	}
	return entry.Score >= h.HighScoreEntry.Score
}
