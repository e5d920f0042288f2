package main

import "github.com/charmbracelet/lipgloss"

// Layout constants
const (
	cellW           = 7  // width of each grid cell in characters
	gridPanelHeight = 12 // grid + scanner row of panels
	controlsHeight  = 4  // bottom help bar
)

// Lipgloss styles used across the TUI. The palette follows the war-room
// theme: brass titles, sonar green, alert red.
var (
	gridStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#FFD700")).
			Padding(0, 1)

	scannerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#FF00FF")).
			Padding(0, 1)

	logStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#FFD700")).
			Padding(0, 1)

	controlsStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#9ece6a")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFD700"))

	unknownCellStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#00FF00"))

	clearCellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#444444"))

	shipCellStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#FF0000"))

	cursorCellStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff9e64"))

	scannerReadyStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#bb9af7"))

	scannerUsedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#565f89"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7dcfff"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e0af68"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#565f89"))
)
