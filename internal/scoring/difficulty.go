package scoring

import "strings"

// Difficulty names a progression profile.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// MinDropIntervalMs is the fastest level-derived gravity interval.
const MinDropIntervalMs = 100

// Profile drives the level and speed curve.
type Profile struct {
	InitialMs     int
	DecrementMs   int
	LinesPerLevel int
}

var profiles = map[Difficulty]Profile{
	Easy:   {InitialMs: 1000, DecrementMs: 50, LinesPerLevel: 5},
	Medium: {InitialMs: 800, DecrementMs: 60, LinesPerLevel: 10},
	Hard:   {InitialMs: 500, DecrementMs: 70, LinesPerLevel: 15},
}

// ParseDifficulty maps a settings value to a Difficulty. Anything unknown
// is Medium.
func ParseDifficulty(s string) Difficulty {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := profiles[d]; ok {
		return d
	}
	return Medium
}

// ProfileFor returns the profile for d, falling back to Medium.
func ProfileFor(d Difficulty) Profile {
	if p, ok := profiles[d]; ok {
		return p
	}
	return profiles[Medium]
}

// LevelFor returns the level reached after lines cleared lines.
func (p Profile) LevelFor(lines int) int {
	if p.LinesPerLevel <= 0 {
		return 1
	}
	return lines/p.LinesPerLevel + 1
}

// IntervalFor returns the gravity interval at level, never below
// MinDropIntervalMs.
func (p Profile) IntervalFor(level int) int {
	return max(MinDropIntervalMs, p.InitialMs-(level-1)*p.DecrementMs)
}
