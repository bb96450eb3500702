package main

import "github.com/charmbracelet/lipgloss"

// Color palette shared by every rendered line.
const (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorMuted   = lipgloss.Color("#6B7280")
	colorSuccess = lipgloss.Color("#10B981")
	colorError   = lipgloss.Color("#EF4444")
	colorWarning = lipgloss.Color("#F59E0B")
	colorVerbose = lipgloss.Color("#9CA3AF")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	passStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorSuccess)

	failStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorError)

	// errorStyle is for files that could not be read at all.
	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWarning)

	kindStyle = lipgloss.NewStyle().
			Foreground(colorWarning)

	detailStyle = lipgloss.NewStyle().
			Foreground(colorVerbose).
			PaddingLeft(6)
)
