package ui

import "github.com/charmbracelet/lipgloss"

// Color palette for terminal output
var (
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple - headers, group titles
	AccentColor  = lipgloss.Color("#43BF6D") // Green - protocol names
	ErrorColor   = lipgloss.Color("#FF5555") // Red - errors
	WarningColor = lipgloss.Color("#FFA500") // Orange - fit notices
	MutedColor   = lipgloss.Color("#626262") // Gray - descriptions, hints
	TextColor    = lipgloss.Color("#FFFFFF") // White - main content
)

// Shared styles for CLI output
var (
	// TitleStyle is for the heading above the protocol listing
	TitleStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true)

	// GroupStyle is for protocol group titles (e.g., "Layer 4 (Transport)")
	GroupStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			PaddingLeft(2)

	// NameStyle is for protocol names in the listing
	NameStyle = lipgloss.NewStyle().
			Foreground(AccentColor)

	// DescStyle is for protocol descriptions
	DescStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	// HintStyle is for usage hints under the listing
	HintStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	// ErrorStyle is for error messages on stderr
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	// NoticeStyle is for the terminal-fit warning
	NoticeStyle = lipgloss.NewStyle().
			Foreground(WarningColor)
)
