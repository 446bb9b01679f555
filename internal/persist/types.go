package persist

// Settings are the player preferences. Only Difficulty matters to the
// simulation; the rest is for the host.
type Settings struct {
	Difficulty string `json:"difficulty"`
	Sound      bool   `json:"sound"`
	Music      bool   `json:"music"`
	Theme      string `json:"theme"`
	GameBg     string `json:"gameBg"`
	BlockStyle string `json:"blockStyle"`
}

// DefaultSettings is what a first run, or an unreadable settings file,
// starts from.
func DefaultSettings() Settings {
	return Settings{
		Difficulty: "medium",
		Sound:      true,
		Music:      true,
		Theme:      "classic",
		GameBg:     "white",
		BlockStyle: "classic",
	}
}

// Stats accumulate across sessions.
type Stats struct {
	PiecesPlaced      int `json:"piecesPlaced"`
	SpecialPiecesUsed int `json:"specialPiecesUsed"`
	TotalScore        int `json:"totalScore"`
	MaxCombo          int `json:"maxCombo"`
	TotalLines        int `json:"totalLines"`
	TimePlayed        int `json:"timePlayed"` // seconds
	GamesPlayed       int `json:"gamesPlayed"`
}

// HighScore is one leaderboard row. Date is RFC 3339.
type HighScore struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
	Date  string `json:"date"`
}

// Achievement is a milestone; Target is unused by one-off achievements.
type Achievement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	Target      int    `json:"target,omitempty"`
}

// AchievementSet groups achievements by the statistic they watch.
type AchievementSet struct {
	Score   []Achievement `json:"scoreAchievements"`
	Combo   []Achievement `json:"comboAchievements"`
	Lines   []Achievement `json:"lineAchievements"`
	Special []Achievement `json:"specialAchievements"`
}

// DefaultAchievements returns the full, uncompleted set.
func DefaultAchievements() AchievementSet {
	return AchievementSet{
		Score: []Achievement{
			{ID: "score_1000", Name: "Getting Started", Description: "Score over 1000 points in total", Target: 1000},
			{ID: "score_10000", Name: "Skilled", Description: "Score over 10000 points in total", Target: 10000},
			{ID: "score_50000", Name: "Expert", Description: "Score over 50000 points in total", Target: 50000},
		},
		Combo: []Achievement{
			{ID: "combo_5", Name: "Combo Starter", Description: "Reach a 5 combo", Target: 5},
			{ID: "combo_10", Name: "Combo Master", Description: "Reach a 10 combo", Target: 10},
			{ID: "combo_15", Name: "Combo Legend", Description: "Reach a 15 combo", Target: 15},
		},
		Lines: []Achievement{
			{ID: "line_50", Name: "Line Cleaner", Description: "Clear 50 lines in total", Target: 50},
			{ID: "line_100", Name: "Line Sweeper", Description: "Clear 100 lines in total", Target: 100},
			{ID: "line_500", Name: "Line Destroyer", Description: "Clear 500 lines in total", Target: 500},
		},
		Special: []Achievement{
			{ID: "special_first", Name: "First Special", Description: "Use a special piece"},
			{ID: "special_10", Name: "Specialist", Description: "Use 10 special pieces", Target: 10},
		},
	}
}

// Store is the persistence collaborator. Load methods return usable
// defaults alongside any error so callers can carry on.
type Store interface {
	LoadSettings() (Settings, error)
	SaveSettings(Settings) error
	LoadStats() (Stats, error)
	SaveStats(Stats) error
	LoadHighScores() ([]HighScore, error)
	SaveHighScores([]HighScore) error
	LoadAchievements() (AchievementSet, error)
	SaveAchievements(AchievementSet) error
}
