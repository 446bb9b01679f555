package ui

import (
	"time"

	"go-blocks/internal/game"
	"go-blocks/internal/persist"
	"go-blocks/internal/scoring"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

const (
	frameInterval = 16 * time.Millisecond
	// A frame longer than this, e.g. after the terminal was suspended,
	// advances the game by this much only.
	maxFrameMs = 100
)

type screen int

const (
	screenMenu screen = iota
	screenPlaying
	screenPaused
	screenGameOver
)

var difficulties = []scoring.Difficulty{scoring.Easy, scoring.Medium, scoring.Hard}

// Audio is what the model needs from the sound player.
type Audio interface {
	Playing(running bool)
	SetSound(on bool)
	SetMusic(on bool)
}

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model is the bubbletea host for a game session. It drives the simulation
// from frame ticks, turns keys into game commands and renders snapshots.
type Model struct {
	Session *game.Session

	audio  Audio
	logger *zap.Logger
	keys   keyMap
	help   help.Model
	name   textinput.Model
	naming bool
	notice string
	width  int
	height int
	last   time.Time
}

// New builds the model and hooks it to the session's game-over event.
// audio may be nil.
func New(sess *game.Session, audio Audio, logger *zap.Logger) *Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	ti := textinput.New()
	ti.Placeholder = game.DefaultPlayerName
	ti.CharLimit = 16
	ti.Width = 16

	m := &Model{
		Session: sess,
		audio:   audio,
		logger:  logger,
		keys:    defaultKeys(),
		help:    help.New(),
		name:    ti,
	}
	sess.Game.OnGameOver(m.gameOver)
	m.sync()
	return m
}

func (m *Model) Init() tea.Cmd {
	return tickCmd()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tickMsg:
		m.frame(time.Time(msg))
		cmd = tickCmd()
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
	case tea.KeyMsg:
		cmd = m.key(msg)
	}
	m.sync()
	return m, cmd
}

func (m *Model) screen() screen {
	st := m.Session.Game.State
	switch {
	case st.IsPlaying():
		return screenPlaying
	case st.IsPaused():
		return screenPaused
	case st.IsGameOver():
		return screenGameOver
	}
	return screenMenu
}

// frame advances the game by the time since the previous tick.
func (m *Model) frame(now time.Time) {
	if !m.last.IsZero() {
		elapsed := int(now.Sub(m.last).Milliseconds())
		m.Session.Game.Advance(min(max(elapsed, 0), maxFrameMs))
	}
	m.last = now
}

func (m *Model) key(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return m.quit()
	}
	if m.naming {
		return m.nameKey(msg)
	}
	g := m.Session.Game

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return nil
	}

	switch m.screen() {
	case screenMenu:
		m.menuKey(msg)
	case screenPlaying, screenPaused:
		for _, c := range m.keys.commands() {
			if key.Matches(msg, c.binding) {
				g.Handle(c.cmd)
				break
			}
		}
	case screenGameOver:
		switch {
		case key.Matches(msg, m.keys.Start):
			m.notice = ""
			g.Handle(game.CmdRestart)
		case key.Matches(msg, m.keys.Menu):
			m.notice = ""
			g.Handle(game.CmdToMenu)
		}
	}
	return nil
}

func (m *Model) menuKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Start):
		m.notice = ""
		m.Session.Game.Handle(game.CmdStart)
	case key.Matches(msg, m.keys.Difficulty):
		m.updateSettings(func(s *persist.Settings) {
			s.Difficulty = string(nextDifficulty(scoring.ParseDifficulty(s.Difficulty)))
		})
	case key.Matches(msg, m.keys.Theme):
		m.updateSettings(func(s *persist.Settings) { s.Theme = nextThemeName(s.Theme) })
	case key.Matches(msg, m.keys.Blocks):
		m.updateSettings(func(s *persist.Settings) { s.BlockStyle = nextBlockStyle(s.BlockStyle) })
	case key.Matches(msg, m.keys.Sound):
		m.updateSettings(func(s *persist.Settings) { s.Sound = !s.Sound })
		if m.audio != nil {
			m.audio.SetSound(m.Session.Settings.Sound)
		}
	case key.Matches(msg, m.keys.Music):
		m.updateSettings(func(s *persist.Settings) { s.Music = !s.Music })
		if m.audio != nil {
			m.audio.SetMusic(m.Session.Settings.Music)
		}
	}
}

func (m *Model) nameKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter:
		if err := m.Session.RenameHighScore(m.name.Value()); err != nil {
			m.logger.Warn("rename high score", zap.Error(err))
			m.notice = err.Error()
		}
		m.stopNaming()
		return nil
	case tea.KeyEsc:
		m.stopNaming()
		return nil
	}
	var cmd tea.Cmd
	m.name, cmd = m.name.Update(msg)
	return cmd
}

func (m *Model) stopNaming() {
	m.naming = false
	m.name.Blur()
}

// quit records a game in progress before leaving.
func (m *Model) quit() tea.Cmd {
	g := m.Session.Game
	if g.State.IsPaused() {
		_ = g.Resume()
	}
	if g.State.IsPlaying() {
		_ = g.End()
	}
	if m.audio != nil {
		m.audio.Playing(false)
	}
	return tea.Quit
}

func (m *Model) updateSettings(fn func(*persist.Settings)) {
	if err := m.Session.UpdateSettings(fn); err != nil {
		m.logger.Warn("save settings", zap.Error(err))
		m.notice = err.Error()
	}
}

func (m *Model) gameOver(string) {
	res := m.Session.LastResult
	if res == nil {
		return
	}
	if res.SaveErr != nil {
		m.notice = "could not save progress: " + res.SaveErr.Error()
	}
	if res.Rank > 0 {
		m.naming = true
		m.name.SetValue(m.Session.PlayerName)
		m.name.CursorEnd()
		m.name.Focus()
	}
}

// sync brings key help and music in line with the lifecycle.
func (m *Model) sync() {
	s := m.screen()
	m.keys.screen(s)
	if m.audio != nil {
		m.audio.Playing(s == screenPlaying)
	}
}

func nextDifficulty(d scoring.Difficulty) scoring.Difficulty {
	for i, v := range difficulties {
		if v == d {
			return difficulties[(i+1)%len(difficulties)]
		}
	}
	return scoring.Medium
}

func nextBlockStyle(style string) string {
	for i, s := range blockStyles {
		if s == style {
			return blockStyles[(i+1)%len(blockStyles)]
		}
	}
	return blockStyles[0]
}
