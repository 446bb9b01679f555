package scoring

import (
	"sort"

	"go-blocks/internal/persist"
)

// MaxHighScores is how many entries the leaderboard keeps.
const MaxHighScores = 10

// HighScoreTable is the leaderboard, highest score first.
type HighScoreTable struct {
	Entries []persist.HighScore
}

// NewHighScoreTable sorts and truncates loaded entries.
func NewHighScoreTable(entries []persist.HighScore) *HighScoreTable {
	t := &HighScoreTable{Entries: append([]persist.HighScore{}, entries...)}
	t.normalize()
	return t
}

// Qualifies reports whether score would make the table.
func (t *HighScoreTable) Qualifies(score int) bool {
	if len(t.Entries) < MaxHighScores {
		return true
	}
	return score > t.Entries[len(t.Entries)-1].Score
}

// Insert adds entry and returns its 1-based rank, or 0 if it fell off the
// bottom. Ties rank below existing entries.
func (t *HighScoreTable) Insert(entry persist.HighScore) int {
	if !t.Qualifies(entry.Score) {
		return 0
	}
	pos := sort.Search(len(t.Entries), func(i int) bool {
		return t.Entries[i].Score < entry.Score
	})
	t.Entries = append(t.Entries, persist.HighScore{})
	copy(t.Entries[pos+1:], t.Entries[pos:])
	t.Entries[pos] = entry
	t.normalize()
	return pos + 1
}

// Best returns the top entry, or nil when the table is empty.
func (t *HighScoreTable) Best() *persist.HighScore {
	if len(t.Entries) == 0 {
		return nil
	}
	return &t.Entries[0]
}

// Top returns up to n entries from the top of the table.
func (t *HighScoreTable) Top(n int) []persist.HighScore {
	if n > len(t.Entries) {
		n = len(t.Entries)
	}
	out := make([]persist.HighScore, n)
	copy(out, t.Entries[:n])
	return out
}

func (t *HighScoreTable) normalize() {
	sort.SliceStable(t.Entries, func(i, j int) bool {
		return t.Entries[i].Score > t.Entries[j].Score
	})
	if len(t.Entries) > MaxHighScores {
		t.Entries = t.Entries[:MaxHighScores]
	}
}
