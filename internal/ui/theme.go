package ui

import (
	"strings"

	"go-blocks/internal/piece"

	"github.com/charmbracelet/lipgloss"
)

// Theme is a palette for the board and panels. Kinds indexes by piece.Kind
// for the seven standard pieces.
type Theme struct {
	Name   string
	Border lipgloss.Color
	Text   lipgloss.Color
	Accent lipgloss.Color
	Kinds  [7]lipgloss.Color
}

var themes = []Theme{
	{
		Name:   "classic",
		Border: lipgloss.Color("15"),
		Text:   lipgloss.Color("250"),
		Accent: lipgloss.Color("226"),
		Kinds:  [7]lipgloss.Color{"51", "21", "208", "226", "46", "93", "196"},
	},
	{
		Name:   "neon",
		Border: lipgloss.Color("201"),
		Text:   lipgloss.Color("159"),
		Accent: lipgloss.Color("51"),
		Kinds:  [7]lipgloss.Color{"87", "63", "214", "228", "118", "171", "203"},
	},
	{
		Name:   "pastel",
		Border: lipgloss.Color("189"),
		Text:   lipgloss.Color("254"),
		Accent: lipgloss.Color("218"),
		Kinds:  [7]lipgloss.Color{"159", "147", "223", "229", "157", "183", "217"},
	},
	{
		Name:   "mono",
		Border: lipgloss.Color("250"),
		Text:   lipgloss.Color("245"),
		Accent: lipgloss.Color("255"),
		Kinds:  [7]lipgloss.Color{"255", "252", "249", "246", "243", "240", "237"},
	},
}

// The paint piece cycles through these by column.
var rainbow = []lipgloss.Color{"196", "208", "226", "46", "51", "21", "129"}

var backgrounds = map[string]lipgloss.Color{
	"black": "0",
	"grey":  "236",
	"navy":  "17",
}

var blockStyles = []string{"classic", "solid", "round"}

// themeByName falls back to the first theme.
func themeByName(name string) Theme {
	for _, t := range themes {
		if strings.EqualFold(t.Name, name) {
			return t
		}
	}
	return themes[0]
}

func nextThemeName(name string) string {
	for i, t := range themes {
		if strings.EqualFold(t.Name, name) {
			return themes[(i+1)%len(themes)].Name
		}
	}
	return themes[0].Name
}

func (t Theme) color(kind piece.Kind, col int) lipgloss.Color {
	switch {
	case kind == piece.KindPaint:
		return rainbow[col%len(rainbow)]
	case kind == piece.KindBomb:
		return lipgloss.Color(kind.Color())
	case int(kind) < len(t.Kinds):
		return t.Kinds[kind]
	}
	return t.Text
}

// block renders one occupied cell two columns wide in the given style.
func (t Theme) block(kind piece.Kind, col int, style string) string {
	c := t.color(kind, col)
	switch style {
	case "solid":
		return lipgloss.NewStyle().Background(c).Render("  ")
	case "round":
		return lipgloss.NewStyle().Foreground(c).Bold(true).Render("()")
	}
	return lipgloss.NewStyle().Foreground(c).Bold(true).Render("[]")
}

func (t Theme) ghost(kind piece.Kind, col int) string {
	return lipgloss.NewStyle().Foreground(t.color(kind, col)).Faint(true).Render("::")
}

func (t Theme) empty(bg string) string {
	s := lipgloss.NewStyle()
	if c, ok := backgrounds[bg]; ok {
		s = s.Background(c)
	}
	return s.Render(" .")
}

func (t Theme) title() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
}

func (t Theme) help() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Text)
}

var warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
