package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains the reusable Lipgloss styles for the TUI.
type Styles struct {
	Header       lipgloss.Style
	Subtitle     lipgloss.Style
	ListItem     lipgloss.Style
	ListSelected lipgloss.Style
	Muted        lipgloss.Style
	Badge        lipgloss.Style
	BadgeDone    lipgloss.Style
	BadgeMark    lipgloss.Style
	Footer       lipgloss.Style
	Status       lipgloss.Style
}

// DefaultStyles returns the default style set.
func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1),
		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		ListItem: lipgloss.NewStyle().
			PaddingLeft(2),
		ListSelected: lipgloss.NewStyle().
			PaddingLeft(0).
			Bold(true).
			Foreground(lipgloss.Color("212")),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
		Badge: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")),
		BadgeDone: lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")),
		BadgeMark: lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")),
		Footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			MarginTop(1),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")),
	}
}
