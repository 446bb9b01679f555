package ui

import (
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"go-blocks/internal/game"
	"go-blocks/internal/persist"
	"go-blocks/internal/piece"

	tea "github.com/charmbracelet/bubbletea"
)

type fakeAudio struct {
	running bool
	sound   bool
	music   bool
}

func (f *fakeAudio) Playing(running bool) { f.running = running }
func (f *fakeAudio) SetSound(on bool)     { f.sound = on }
func (f *fakeAudio) SetMusic(on bool)     { f.music = on }

func newTestModel(t *testing.T) (*Model, *persist.MemoryStore, *fakeAudio) {
	t.Helper()
	store := persist.NewMemoryStore()
	sess := game.NewSession(store, nil, game.WithRand(rand.New(rand.NewPCG(1, 2))))
	audio := &fakeAudio{sound: true, music: true}
	return New(sess, audio, nil), store, audio
}

func press(m *Model, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		_, cmd = m.Update(msg)
	}
	return cmd
}

func TestEnterStartsGame(t *testing.T) {
	m, _, audio := newTestModel(t)
	if m.screen() != screenMenu {
		t.Fatalf("expected menu, got %v", m.screen())
	}

	press(m, "enter")

	if !m.Session.Game.State.IsPlaying() {
		t.Fatalf("expected playing, got %s", m.Session.Game.State.Lifecycle())
	}
	if m.Session.Game.State.Active == nil {
		t.Error("expected an active piece after start")
	}
	if !audio.running {
		t.Error("expected music to follow the running game")
	}
}

func TestTicksAdvanceGame(t *testing.T) {
	m, _, _ := newTestModel(t)
	press(m, "enter")

	t0 := time.Unix(1000, 0)
	m.Update(tickMsg(t0))
	m.Update(tickMsg(t0.Add(50 * time.Millisecond)))
	if got := m.Session.Game.State.ElapsedMs; got != 50 {
		t.Errorf("expected 50ms elapsed, got %d", got)
	}

	// A long stall only counts as one capped frame.
	m.Update(tickMsg(t0.Add(10 * time.Second)))
	if got := m.Session.Game.State.ElapsedMs; got != 50+maxFrameMs {
		t.Errorf("expected %dms elapsed, got %d", 50+maxFrameMs, got)
	}
}

func TestPauseStopsTime(t *testing.T) {
	m, _, audio := newTestModel(t)
	press(m, "enter", "p")

	if !m.Session.Game.State.IsPaused() {
		t.Fatalf("expected paused, got %s", m.Session.Game.State.Lifecycle())
	}
	if audio.running {
		t.Error("expected music paused")
	}
	t0 := time.Unix(1000, 0)
	m.Update(tickMsg(t0))
	m.Update(tickMsg(t0.Add(80 * time.Millisecond)))
	if got := m.Session.Game.State.ElapsedMs; got != 0 {
		t.Errorf("expected no time to pass while paused, got %d", got)
	}

	press(m, "p")
	if !m.Session.Game.State.IsPlaying() {
		t.Errorf("expected resume, got %s", m.Session.Game.State.Lifecycle())
	}
}

func TestMovesReachTheGame(t *testing.T) {
	m, _, _ := newTestModel(t)
	press(m, "enter")
	before := m.Session.Game.State.Active.Col

	press(m, "h")
	if got := m.Session.Game.State.Active.Col; got != before-1 {
		t.Errorf("expected col %d after left, got %d", before-1, got)
	}
	press(m, "j")
	if got := m.Session.Game.State.Score.CurrentScore; got != 1 {
		t.Errorf("expected 1 point for the soft drop, got %d", got)
	}
}

func TestMenuKeysChangeSettings(t *testing.T) {
	m, store, audio := newTestModel(t)

	press(m, "d", "t", "b", "s", "n")

	saved, err := store.LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if saved.Difficulty != "hard" {
		t.Errorf("expected hard after medium, got %q", saved.Difficulty)
	}
	if saved.Theme != "neon" {
		t.Errorf("expected neon after classic, got %q", saved.Theme)
	}
	if saved.BlockStyle != "solid" {
		t.Errorf("expected solid after classic, got %q", saved.BlockStyle)
	}
	if saved.Sound || saved.Music {
		t.Errorf("expected sound and music off, got %+v", saved)
	}
	if audio.sound || audio.music {
		t.Error("expected the player to be told about the toggles")
	}
	if got := m.Session.Game.State.Options.Difficulty; got != "hard" {
		t.Errorf("expected game difficulty hard, got %q", got)
	}
}

func TestSettingKeysIgnoredInGame(t *testing.T) {
	m, _, _ := newTestModel(t)
	press(m, "enter", "t")

	if m.Session.Settings.Theme != "classic" {
		t.Errorf("expected theme unchanged while playing, got %q", m.Session.Settings.Theme)
	}
}

func TestGameOverAsksForName(t *testing.T) {
	m, store, _ := newTestModel(t)
	press(m, "enter", "esc")

	if !m.Session.Game.State.IsGameOver() {
		t.Fatalf("expected game over, got %s", m.Session.Game.State.Lifecycle())
	}
	if !m.naming {
		t.Fatal("expected name entry for a first high score")
	}

	m.name.SetValue("")
	press(m, "A", "n", "n", "enter")

	if m.naming {
		t.Error("expected name entry to close")
	}
	scores, _ := store.LoadHighScores()
	if len(scores) != 1 || scores[0].Name != "Ann" {
		t.Errorf("expected Ann on the leaderboard, got %+v", scores)
	}

	press(m, "enter")
	if !m.Session.Game.State.IsPlaying() {
		t.Errorf("expected restart, got %s", m.Session.Game.State.Lifecycle())
	}
}

func TestNameKeysDoNotLeak(t *testing.T) {
	m, _, _ := newTestModel(t)
	press(m, "enter", "esc")
	if !m.naming {
		t.Fatal("expected name entry")
	}

	// "m" is the menu key but belongs to the name here.
	press(m, "m", "q")
	if !m.Session.Game.State.IsGameOver() {
		t.Errorf("expected to stay on game over, got %s", m.Session.Game.State.Lifecycle())
	}
	if !strings.HasSuffix(m.name.Value(), "mq") {
		t.Errorf("expected keys typed into the name, got %q", m.name.Value())
	}

	press(m, "esc", "m")
	if !m.Session.Game.State.IsMenu() {
		t.Errorf("expected menu, got %s", m.Session.Game.State.Lifecycle())
	}
}

func TestQuitRecordsRunningGame(t *testing.T) {
	m, store, _ := newTestModel(t)
	press(m, "enter")

	cmd := press(m, "q")
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	stats, _ := store.LoadStats()
	if stats.GamesPlayed != 1 {
		t.Errorf("expected the game to be recorded, got %d games", stats.GamesPlayed)
	}
}

func TestViewShowsScreens(t *testing.T) {
	m, _, _ := newTestModel(t)
	if out := m.View(); !strings.Contains(out, "G O   B L O C K S") {
		t.Errorf("expected menu title, got:\n%s", out)
	}
	if out := m.help.View(m.keys); strings.Contains(out, "hard drop") {
		t.Errorf("expected no game keys in menu help, got %q", out)
	}

	press(m, "enter")
	out := m.View()
	for _, want := range []string{"Next", "Score", "Level", "Lines"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in game view", want)
		}
	}

	press(m, "esc")
	if out := m.View(); !strings.Contains(out, "GAME OVER") || !strings.Contains(out, "High scores") {
		t.Errorf("expected game over panel, got:\n%s", out)
	}
}

func TestPreviewTrimsShape(t *testing.T) {
	out := renderPreview(piece.KindI, themes[0], "classic")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected the I preview on one line, got %d:\n%s", len(lines), out)
	}
	if n := strings.Count(out, "[]"); n != 4 {
		t.Errorf("expected 4 blocks, got %d", n)
	}
}

func TestThemeFallback(t *testing.T) {
	if got := themeByName("nope").Name; got != "classic" {
		t.Errorf("expected classic fallback, got %q", got)
	}
	if got := nextThemeName("mono"); got != "classic" {
		t.Errorf("expected wraparound to classic, got %q", got)
	}
	if got := nextBlockStyle("round"); got != "classic" {
		t.Errorf("expected wraparound to classic, got %q", got)
	}
}
