package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Color palette
	primaryColor   = lipgloss.Color("#E8A87C") // warm orange
	secondaryColor = lipgloss.Color("#85DCB0") // mint green
	warningColor   = lipgloss.Color("#F6AE2D") // amber warning
	errorColor     = lipgloss.Color("#E85D75") // soft red
	mutedColor     = lipgloss.Color("#6B7280") // gray
	dimTextColor   = lipgloss.Color("#9CA3AF") // dim text

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	pathStyle = lipgloss.NewStyle().
			Foreground(dimTextColor).
			Italic(true)

	questionStyle = lipgloss.NewStyle().
			Foreground(warningColor).
			Bold(true).
			MarginBottom(1)

	buttonStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(0, 2)

	activeButtonStyle = buttonStyle.
				BorderForeground(primaryColor).
				Foreground(primaryColor).
				Bold(true)

	overwriteActiveStyle = activeButtonStyle.
				BorderForeground(errorColor).
				Foreground(errorColor)

	skipActiveStyle = activeButtonStyle.
			BorderForeground(secondaryColor).
			Foreground(secondaryColor)

	helpStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true).
			MarginTop(1)

	iconOverride = "⚠"
	iconFolder   = "📁"
)
