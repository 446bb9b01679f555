package persist

import "sync"

// MemoryStore keeps everything in memory. It backs headless runs and
// tests; nothing survives the process.
type MemoryStore struct {
	mu           sync.Mutex
	settings     *Settings
	stats        Stats
	scores       []HighScore
	achievements *AchievementSet
}

// NewMemoryStore returns an empty store that reads back defaults.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) LoadSettings() (Settings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.settings == nil {
		return DefaultSettings(), nil
	}
	return *m.settings, nil
}

func (m *MemoryStore) SaveSettings(settings Settings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings = &settings
	return nil
}

func (m *MemoryStore) LoadStats() (Stats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stats, nil
}

func (m *MemoryStore) SaveStats(stats Stats) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stats = stats
	return nil
}

func (m *MemoryStore) LoadHighScores() ([]HighScore, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]HighScore{}, m.scores...), nil
}

func (m *MemoryStore) SaveHighScores(entries []HighScore) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scores = append([]HighScore{}, entries...)
	return nil
}

func (m *MemoryStore) LoadAchievements() (AchievementSet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.achievements == nil {
		return DefaultAchievements(), nil
	}
	return cloneAchievements(*m.achievements), nil
}

func (m *MemoryStore) SaveAchievements(set AchievementSet) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := cloneAchievements(set)
	m.achievements = &c
	return nil
}

func cloneAchievements(set AchievementSet) AchievementSet {
	return AchievementSet{
		Score:   append([]Achievement{}, set.Score...),
		Combo:   append([]Achievement{}, set.Combo...),
		Lines:   append([]Achievement{}, set.Lines...),
		Special: append([]Achievement{}, set.Special...),
	}
}
