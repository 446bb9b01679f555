package ui

import (
	"fmt"
	"strings"

	"go-blocks/internal/piece"
	"go-blocks/internal/playfield"
	"go-blocks/internal/scoring"
	"go-blocks/internal/state"

	"github.com/charmbracelet/lipgloss"
)

var reasons = map[string]string{
	state.EventTopOut: "Topped out",
	state.EventEnd:    "Game ended",
}

func (m *Model) View() string {
	settings := m.Session.Settings
	theme := themeByName(settings.Theme)

	var content string
	switch m.screen() {
	case screenMenu:
		content = m.viewMenu(theme)
	default:
		snap := m.Session.Game.Snapshot()
		board := renderBoard(snap, theme, settings.BlockStyle, settings.GameBg)
		var side string
		if m.screen() == screenGameOver {
			side = m.viewGameOver(theme)
		} else {
			side = m.viewInfo(snap, theme)
		}
		content = lipgloss.JoinHorizontal(lipgloss.Top, board, lipgloss.NewStyle().PaddingLeft(2).Render(side))
	}
	if m.notice != "" {
		content += "\n" + warnStyle.Render(m.notice)
	}
	content += "\n\n" + m.help.View(m.keys)
	return center(m.width, m.height, content)
}

func (m *Model) viewMenu(theme Theme) string {
	s := m.Session.Settings
	var b strings.Builder
	b.WriteString(theme.title().Render("G O   B L O C K S"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Difficulty  %s\n", scoring.ParseDifficulty(s.Difficulty))
	fmt.Fprintf(&b, "Theme       %s\n", themeByName(s.Theme).Name)
	fmt.Fprintf(&b, "Blocks      %s\n", s.BlockStyle)
	fmt.Fprintf(&b, "Sound       %s\n", onOff(s.Sound))
	fmt.Fprintf(&b, "Music       %s\n", onOff(s.Music))
	b.WriteString("\n")
	if best := m.Session.HighScores.Best(); best != nil {
		fmt.Fprintf(&b, "Best  %d by %s\n", best.Score, best.Name)
	}
	st := m.Session.Stats
	fmt.Fprintf(&b, "Games %d  Lines %d  Time %s\n", st.GamesPlayed, st.TotalLines, clock(st.TimePlayed))
	b.WriteString("\n")
	b.WriteString(theme.help().Render("Press enter to play"))
	return b.String()
}

func (m *Model) viewInfo(snap state.Snapshot, theme Theme) string {
	var b strings.Builder
	b.WriteString(theme.title().Render("Next"))
	b.WriteString("\n")
	b.WriteString(renderPreview(snap.Next, theme, m.Session.Settings.BlockStyle))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Score  %d\n", snap.Score)
	fmt.Fprintf(&b, "Level  %d\n", snap.Level)
	fmt.Fprintf(&b, "Lines  %d\n", snap.Lines)
	fmt.Fprintf(&b, "Time   %s\n", clock(snap.ElapsedMs/1000))
	if last := m.Session.Game.LastLock; last.Cleared > 0 {
		gain := last.Outcome.LinePoints + last.Outcome.ComboBonus
		b.WriteString(theme.title().Render(fmt.Sprintf("%s +%d", clearLabel(last.Cleared), gain)))
		b.WriteString("\n")
	}
	if snap.Combo > 1 {
		b.WriteString(theme.title().Render(fmt.Sprintf("Combo x%d", snap.Combo)))
		b.WriteString("\n")
	}
	if snap.Effect.Active() {
		label := fmt.Sprintf("%s %.1fs", effectLabel(snap.Effect.Kind), float64(snap.Effect.RemainingMs)/1000)
		b.WriteString(theme.title().Render(label))
		b.WriteString("\n")
	}
	if snap.Lifecycle == state.Paused {
		b.WriteString("\n")
		b.WriteString(theme.title().Render("PAUSED"))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) viewGameOver(theme Theme) string {
	var b strings.Builder
	b.WriteString(theme.title().Render("GAME OVER"))
	b.WriteString("\n")
	res := m.Session.LastResult
	if res != nil {
		b.WriteString(theme.help().Render(reasons[res.Reason]))
		b.WriteString("\n\n")
		fmt.Fprintf(&b, "Score  %d\nLines  %d\nLevel  %d\nCombo  %d\n", res.Score, res.Lines, res.Level, res.MaxCombo)
		if res.Rank > 0 {
			b.WriteString("\n")
			b.WriteString(theme.title().Render(fmt.Sprintf("New high score! #%d", res.Rank)))
			b.WriteString("\n")
		}
		if m.naming {
			b.WriteString("Name: ")
			b.WriteString(m.name.View())
			b.WriteString("\n")
		}
		if len(res.Unlocked) > 0 {
			b.WriteString("\n")
			b.WriteString(theme.title().Render("Unlocked"))
			b.WriteString("\n")
			for _, a := range res.Unlocked {
				fmt.Fprintf(&b, "* %s\n", a.Name)
			}
		}
	}
	b.WriteString("\n")
	b.WriteString(theme.title().Render("High scores"))
	b.WriteString("\n")
	for i, e := range m.Session.HighScores.Top(5) {
		fmt.Fprintf(&b, "%2d. %-12s %7d\n", i+1, e.Name, e.Score)
	}
	return b.String()
}

// renderBoard draws locked cells, the ghost and the active piece inside a
// bordered box.
func renderBoard(snap state.Snapshot, theme Theme, style, bg string) string {
	var overlay [playfield.Rows][playfield.Cols]int // 1 ghost, 2 active
	if a := snap.Active; a != nil {
		drop := snap.GhostRow - a.Row
		for _, p := range a.Cells() {
			if inField(p.Row+drop, p.Col) {
				overlay[p.Row+drop][p.Col] = 1
			}
		}
		for _, p := range a.Cells() {
			if inField(p.Row, p.Col) {
				overlay[p.Row][p.Col] = 2
			}
		}
	}

	var b strings.Builder
	for row := range playfield.Rows {
		for col := range playfield.Cols {
			cell := snap.Grid.At(row, col)
			switch {
			case overlay[row][col] == 2:
				b.WriteString(theme.block(snap.Active.Kind, col, style))
			case cell.Occupied:
				b.WriteString(theme.block(cell.Kind, col, style))
			case overlay[row][col] == 1:
				b.WriteString(theme.ghost(snap.Active.Kind, col))
			default:
				b.WriteString(theme.empty(bg))
			}
		}
		if row < playfield.Rows-1 {
			b.WriteString("\n")
		}
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(b.String())
}

// renderPreview draws kind's spawn shape without its empty margins,
// centered in a box that fits every piece.
func renderPreview(kind piece.Kind, theme Theme, style string) string {
	shape := piece.Lookup(kind).Shape
	rows, cols := piece.TrimBounds(shape)
	top, left := firstSet(shape)

	var b strings.Builder
	for i := top; i < top+rows; i++ {
		for j := left; j < left+cols; j++ {
			if shape[i][j] {
				b.WriteString(theme.block(kind, j, style))
			} else {
				b.WriteString("  ")
			}
		}
		if i < top+rows-1 {
			b.WriteString("\n")
		}
	}
	return lipgloss.Place(8, 3, lipgloss.Center, lipgloss.Center, b.String())
}

// firstSet returns the topmost row and leftmost column holding a set cell.
func firstSet(m piece.Matrix) (row, col int) {
	row, col = -1, -1
	for i, r := range m {
		for j, set := range r {
			if !set {
				continue
			}
			if row == -1 {
				row = i
			}
			if col == -1 || j < col {
				col = j
			}
		}
	}
	return max(row, 0), max(col, 0)
}

func inField(row, col int) bool {
	return row >= 0 && row < playfield.Rows && col >= 0 && col < playfield.Cols
}

func effectLabel(k scoring.EffectKind) string {
	switch k {
	case scoring.EffectSpeedBoost:
		return "Speed boost"
	case scoring.EffectSlowMotion:
		return "Slow motion"
	case scoring.EffectBottomClear:
		return "Bottom clear"
	}
	return ""
}

func clearLabel(lines int) string {
	switch lines {
	case 1:
		return "Single"
	case 2:
		return "Double"
	case 3:
		return "Triple"
	}
	return "Tetris"
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func clock(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

func center(width, height int, content string) string {
	if width == 0 || height == 0 {
		return content
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
