package tui

import "github.com/charmbracelet/lipgloss"

var (
	previewBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#7D56F4")).
				Padding(0, 1)

	previewTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FFFFFF")).
				Bold(true)

	previewInfoStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#626262"))

	previewErrorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FF5555"))

	helpBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			PaddingLeft(2)
)
