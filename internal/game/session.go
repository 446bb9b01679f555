package game

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go-blocks/internal/persist"
	"go-blocks/internal/scoring"

	"go.uber.org/zap"
)

// DefaultPlayerName is used for high scores when the host supplies none.
const DefaultPlayerName = "Player"

// Result is what the last finished game produced.
type Result struct {
	SessionID string
	Reason    string
	Score     int
	Lines     int
	Level     int
	MaxCombo  int
	// Rank is the 1-based leaderboard position, 0 if it did not place.
	Rank     int
	Unlocked []persist.Achievement
	// SaveErr holds any persistence failure while recording the game.
	SaveErr error
}

// Session owns a Game plus everything that outlives it: settings,
// cumulative stats, achievements and the leaderboard.
type Session struct {
	Game         *Game
	Settings     persist.Settings
	Stats        persist.Stats
	Achievements persist.AchievementSet
	HighScores   *scoring.HighScoreTable
	PlayerName   string
	LastResult   *Result

	store  persist.Store
	logger *zap.Logger
	now    func() time.Time
}

// NewSession loads persisted data and builds a game for the stored
// difficulty. Load failures fall back to defaults and are logged, never
// returned; opts are passed through to the game.
func NewSession(store persist.Store, logger *zap.Logger, opts ...Option) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Session{
		PlayerName: DefaultPlayerName,
		store:      store,
		logger:     logger,
		now:        time.Now,
	}

	var err error
	if s.Settings, err = store.LoadSettings(); err != nil {
		logger.Warn("using default settings", zap.Error(err))
	}
	if s.Stats, err = store.LoadStats(); err != nil {
		logger.Warn("using empty stats", zap.Error(err))
	}
	if s.Achievements, err = store.LoadAchievements(); err != nil {
		logger.Warn("using default achievements", zap.Error(err))
	}
	scores, err := store.LoadHighScores()
	if err != nil {
		logger.Warn("using empty high scores", zap.Error(err))
	}
	s.HighScores = scoring.NewHighScoreTable(scores)

	opts = append([]Option{WithLogger(logger)}, opts...)
	s.Game = NewGame(scoring.ParseDifficulty(s.Settings.Difficulty), opts...)
	s.Game.OnGameOver(s.record)
	return s
}

// UpdateSettings applies fn to the settings, saves them and switches the
// game's difficulty when it is not mid-game.
func (s *Session) UpdateSettings(fn func(*persist.Settings)) error {
	fn(&s.Settings)
	s.Settings.Difficulty = string(scoring.ParseDifficulty(s.Settings.Difficulty))
	s.Game.SetDifficulty(scoring.Difficulty(s.Settings.Difficulty))
	if err := s.store.SaveSettings(s.Settings); err != nil {
		return fmt.Errorf("could not save settings: %w", err)
	}
	return nil
}

// RenameHighScore sets the name on the last game's leaderboard entry.
func (s *Session) RenameHighScore(name string) error {
	name = strings.TrimSpace(name)
	if s.LastResult == nil || s.LastResult.Rank == 0 || name == "" {
		return nil
	}
	s.HighScores.Entries[s.LastResult.Rank-1].Name = name
	s.PlayerName = name
	if err := s.store.SaveHighScores(s.HighScores.Entries); err != nil {
		return fmt.Errorf("could not save high scores: %w", err)
	}
	return nil
}

// record folds a finished game into the cross-session data and saves it.
func (s *Session) record(reason string) {
	st := s.Game.State
	res := &Result{
		SessionID: st.SessionID,
		Reason:    reason,
		Score:     st.Score.CurrentScore,
		Lines:     st.Score.Lines,
		Level:     st.Score.Level,
		MaxCombo:  st.Score.MaxCombo,
	}

	s.Stats.GamesPlayed++
	s.Stats.PiecesPlaced += st.PiecesPlaced
	s.Stats.SpecialPiecesUsed += st.SpecialPiecesUsed
	s.Stats.TotalScore += st.Score.CurrentScore
	s.Stats.TotalLines += st.Score.Lines
	s.Stats.TimePlayed += st.ElapsedMs / 1000
	s.Stats.MaxCombo = max(s.Stats.MaxCombo, st.Score.MaxCombo)

	res.Unlocked = scoring.CheckAchievements(&s.Achievements, s.Stats)
	for _, a := range res.Unlocked {
		s.logger.Info("achievement unlocked", zap.String("id", a.ID), zap.String("session", st.SessionID))
	}

	res.Rank = s.HighScores.Insert(persist.HighScore{
		Name:  s.PlayerName,
		Score: st.Score.CurrentScore,
		Date:  s.now().UTC().Format(time.RFC3339),
	})

	var errs []error
	if err := s.store.SaveStats(s.Stats); err != nil {
		errs = append(errs, fmt.Errorf("could not save stats: %w", err))
	}
	if err := s.store.SaveAchievements(s.Achievements); err != nil {
		errs = append(errs, fmt.Errorf("could not save achievements: %w", err))
	}
	if res.Rank > 0 {
		if err := s.store.SaveHighScores(s.HighScores.Entries); err != nil {
			errs = append(errs, fmt.Errorf("could not save high scores: %w", err))
		}
	}
	res.SaveErr = errors.Join(errs...)
	if res.SaveErr != nil {
		s.logger.Warn("could not persist game", zap.Error(res.SaveErr))
	}

	s.LastResult = res
}
