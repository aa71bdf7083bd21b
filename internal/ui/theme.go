package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RollForge theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconDie      = "🎲"
	IconSword    = "⚔️"
	IconShield   = "🛡️"
	IconScroll   = "📜"
	IconSparkle  = "✨"
	IconPlus     = "➕"
	IconTrash    = "🗑️"
	IconPortrait = "🖼️"
	IconInfo     = "ℹ️"
	IconWarn     = "⚠️"
	IconError    = "🧨"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold)
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// Mod renders a roll modifier with its sign, green for bonuses and red
// for penalties.
func Mod(value int) string {
	s := fmt.Sprintf("%+d", value)
	switch {
	case value > 0:
		return Good.Render(s)
	case value < 0:
		return Bad.Render(s)
	default:
		return Muted.Render(s)
	}
}

// ProficiencyMark returns the sheet marker for a skill: a filled dot
// when the character is trained in it.
func ProficiencyMark(proficient bool) string {
	if proficient {
		return Gold.Render("●")
	}
	return Muted.Render("○")
}
