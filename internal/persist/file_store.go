package persist

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const (
	settingsFile     = "settings.json"
	statsFile        = "stats.json"
	achievementsFile = "achievements.json"
	scoresFile       = "scores.json"
)

// FileStore keeps each record in its own JSON file under one directory.
type FileStore struct {
	dir string
}

// DefaultDir is the per-user configuration directory for the game.
func DefaultDir() (string, error) {
	root, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("could not get user config directory: %w", err)
	}
	return filepath.Join(root, "go-blocks"), nil
}

// NewFileStore creates a store rooted at dir. The directory is created on
// first save.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Dir returns the directory the store writes to.
func (fs *FileStore) Dir() string {
	return fs.dir
}

func (fs *FileStore) LoadSettings() (Settings, error) {
	settings := DefaultSettings()
	if err := fs.readJSON(settingsFile, &settings); err != nil {
		return DefaultSettings(), err
	}
	return settings, nil
}

func (fs *FileStore) SaveSettings(settings Settings) error {
	return fs.writeJSON(settingsFile, settings)
}

func (fs *FileStore) LoadStats() (Stats, error) {
	var stats Stats
	if err := fs.readJSON(statsFile, &stats); err != nil {
		return Stats{}, err
	}
	return stats, nil
}

func (fs *FileStore) SaveStats(stats Stats) error {
	return fs.writeJSON(statsFile, stats)
}

func (fs *FileStore) LoadAchievements() (AchievementSet, error) {
	set := DefaultAchievements()
	if err := fs.readJSON(achievementsFile, &set); err != nil {
		return DefaultAchievements(), err
	}
	return set, nil
}

func (fs *FileStore) SaveAchievements(set AchievementSet) error {
	return fs.writeJSON(achievementsFile, set)
}

// LoadHighScores decodes the score file, one JSON object per entry.
func (fs *FileStore) LoadHighScores() ([]HighScore, error) {
	file, err := os.Open(fs.path(scoresFile))
	// If the file doesn't exist, it's not an error; return an empty slice.
	if os.IsNotExist(err) {
		return []HighScore{}, nil
	}
	if err != nil {
		return []HighScore{}, fmt.Errorf("error opening scores file for reading: %w", err)
	}
	defer file.Close()

	entries := make([]HighScore, 0)
	decoder := json.NewDecoder(file)
	for decoder.More() {
		var entry HighScore
		if err := decoder.Decode(&entry); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return []HighScore{}, fmt.Errorf("error decoding score entry: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// SaveHighScores overwrites the score file with entries.
func (fs *FileStore) SaveHighScores(entries []HighScore) error {
	file, err := fs.create(scoresFile)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	encoder := json.NewEncoder(writer)
	for _, entry := range entries {
		if err := encoder.Encode(entry); err != nil {
			return fmt.Errorf("error encoding score entry: %w", err)
		}
	}

	return writer.Flush()
}

// readJSON decodes name into v. A missing file leaves v untouched.
func (fs *FileStore) readJSON(name string, v any) error {
	data, err := os.ReadFile(fs.path(name))
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("error reading %s: %w", name, err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("error decoding %s: %w", name, err)
	}
	return nil
}

func (fs *FileStore) writeJSON(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding %s: %w", name, err)
	}
	file, err := fs.create(name)
	if err != nil {
		return err
	}
	defer file.Close()
	if _, err := file.Write(data); err != nil {
		return fmt.Errorf("error writing %s: %w", name, err)
	}
	return nil
}

func (fs *FileStore) create(name string) (*os.File, error) {
	if err := os.MkdirAll(fs.dir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating data directory: %w", err)
	}
	file, err := os.OpenFile(fs.path(name), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("error opening %s for writing: %w", name, err)
	}
	return file, nil
}

func (fs *FileStore) path(name string) string {
	return filepath.Join(fs.dir, name)
}
