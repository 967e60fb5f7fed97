package main

import "github.com/charmbracelet/lipgloss"

// palette
var (
	colorAccent  = lipgloss.Color("#20B9B4")
	colorSuccess = lipgloss.Color("#2CD7C7")
	colorWarning = lipgloss.Color("#F4D03F")
	colorError   = lipgloss.Color("#E74C3C")
	colorMuted   = lipgloss.Color("#6C7A89")
)

var styles = struct {
	Title    lipgloss.Style
	Found    lipgloss.Style
	NotFound lipgloss.Style
	Error    lipgloss.Style
	Muted    lipgloss.Style
	Path     lipgloss.Style
}{
	Title:    lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
	Found:    lipgloss.NewStyle().Foreground(colorSuccess),
	NotFound: lipgloss.NewStyle().Foreground(colorWarning),
	Error:    lipgloss.NewStyle().Foreground(colorError),
	Muted:    lipgloss.NewStyle().Foreground(colorMuted),
	Path:     lipgloss.NewStyle().Bold(true),
}

// statusStyle picks the style for a report's outcome.
func statusStyle(r report) lipgloss.Style {
	switch {
	case r.Err != nil:
		return styles.Error
	case r.Found:
		return styles.Found
	default:
		return styles.NotFound
	}
}
