package ui

import "github.com/charmbracelet/lipgloss"

const (
	colorPrimary = lipgloss.Color("#2b648b")
	colorMuted   = lipgloss.Color("245")
	colorError   = lipgloss.Color("196")
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	mutedStyle    = lipgloss.NewStyle().Foreground(colorMuted)
	errorStyle    = lipgloss.NewStyle().Foreground(colorError)
	deleteStyle   = lipgloss.NewStyle().Foreground(colorError)
	activeTab     = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(colorPrimary).Padding(0, 2)
	inactiveTab   = lipgloss.NewStyle().Foreground(colorMuted).Padding(0, 2)
	buttonStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")).Background(colorPrimary).Padding(0, 2)
	disabledStyle = lipgloss.NewStyle().Foreground(colorMuted).Background(lipgloss.Color("236")).Padding(0, 2)
	cardStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorMuted).Padding(0, 1)
	selectedCard  = cardStyle.BorderForeground(colorPrimary)
)

func button(label string, enabled bool) string {
	if enabled {
		return buttonStyle.Render(label)
	}
	return disabledStyle.Render(label)
}
