package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorBlack lipgloss.Color = "#121212"
	colorCream lipgloss.Color = "#F5F2ED"
	colorGold  lipgloss.Color = "#D9BF80"
	colorGray  lipgloss.Color = "#8A8A8A"
	colorError lipgloss.Color = "#f38ba8"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Underline(true)
	brandStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorCream).Background(colorBlack).Padding(0, 2)
	stepStyle     = lipgloss.NewStyle().Bold(true).Foreground(colorGold).Width(9)
	categoryStyle = lipgloss.NewStyle().Foreground(colorGray)
	cursorStyle   = lipgloss.NewStyle().Foreground(colorGold).Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(colorGray)
	errorStyle    = lipgloss.NewStyle().Foreground(colorError)
	helpStyle     = mutedStyle
	modalStyle    = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(colorGold).Padding(0, 1)
	selectedStyle = lipgloss.NewStyle().Foreground(colorBlack).Background(colorGold)
)
