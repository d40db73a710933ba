package ui

import "github.com/charmbracelet/lipgloss"

// Palette shared by the status printer and the report header.
var (
	brandColor   = lipgloss.Color("#7D56F4")
	runningColor = lipgloss.Color("86")  // Cyan/Teal
	scoreColor   = lipgloss.Color("46")  // Green
	errorColor   = lipgloss.Color("196") // Red
	mutedColor   = lipgloss.Color("252") // Light Gray
)

type styles struct {
	header  lipgloss.Style
	running lipgloss.Style
	score   lipgloss.Style
	failure lipgloss.Style
	info    lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		header: r.NewStyle().
			Foreground(lipgloss.Color("#FFF")).
			Background(brandColor).
			Bold(true).
			Padding(0, 1),
		running: r.NewStyle().Foreground(runningColor),
		score:   r.NewStyle().Foreground(scoreColor).Bold(true),
		failure: r.NewStyle().Foreground(errorColor).Bold(true),
		info:    r.NewStyle().Foreground(mutedColor),
	}
}
