package tui

import "github.com/charmbracelet/lipgloss"

var (
	StyleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			Padding(0, 1)

	StyleHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	StyleSubtitle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	StyleCard = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2)

	StyleStatusGood = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	StyleStatusBad = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)
