package ui

import (
	"go-blocks/internal/game"

	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Left       key.Binding
	Right      key.Binding
	Down       key.Binding
	Rotate     key.Binding
	Drop       key.Binding
	Pause      key.Binding
	End        key.Binding
	Start      key.Binding
	Menu       key.Binding
	Difficulty key.Binding
	Theme      key.Binding
	Blocks     key.Binding
	Sound      key.Binding
	Music      key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Left:       key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "soft drop")),
		Rotate:     key.NewBinding(key.WithKeys("up", "k", "x"), key.WithHelp("↑/x", "rotate")),
		Drop:       key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "hard drop")),
		Pause:      key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
		End:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "end game")),
		Start:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "play")),
		Menu:       key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "menu")),
		Difficulty: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "difficulty")),
		Theme:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Blocks:     key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "blocks")),
		Sound:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sound")),
		Music:      key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "music")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "keys")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// commands maps the in-game bindings to game commands.
func (k keyMap) commands() []struct {
	binding key.Binding
	cmd     game.Command
} {
	return []struct {
		binding key.Binding
		cmd     game.Command
	}{
		{k.Left, game.CmdMoveLeft},
		{k.Right, game.CmdMoveRight},
		{k.Down, game.CmdMoveDown},
		{k.Rotate, game.CmdRotate},
		{k.Drop, game.CmdHardDrop},
		{k.Pause, game.CmdTogglePause},
		{k.End, game.CmdEnd},
	}
}

// screen enables only the bindings that do something on the given screen
// so help lists the right ones.
func (k *keyMap) screen(s screen) {
	playing := s == screenPlaying
	for _, b := range []*key.Binding{&k.Left, &k.Right, &k.Down, &k.Rotate, &k.Drop, &k.End} {
		b.SetEnabled(playing)
	}
	k.Pause.SetEnabled(playing || s == screenPaused)
	k.Start.SetEnabled(s == screenMenu || s == screenGameOver)
	k.Menu.SetEnabled(s == screenGameOver)
	for _, b := range []*key.Binding{&k.Difficulty, &k.Theme, &k.Blocks, &k.Sound, &k.Music} {
		b.SetEnabled(s == screenMenu)
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Rotate, k.Drop, k.Pause, k.Menu, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Down, k.Rotate, k.Drop},
		{k.Start, k.Pause, k.End, k.Menu},
		{k.Difficulty, k.Theme, k.Blocks, k.Sound, k.Music},
		{k.Help, k.Quit},
	}
}
