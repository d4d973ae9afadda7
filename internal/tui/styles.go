package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorAccent  = lipgloss.Color("#F59E0B")
	colorMuted   = lipgloss.Color("#6B7280")
	colorFg      = lipgloss.Color("#F9FAFB")
)

// Styles
var (
	// AppStyle frames the whole browser view
	AppStyle = lipgloss.NewStyle().
			Padding(1, 2)

	// TitleStyle renders the list title
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorFg).
			Background(colorPrimary).
			Padding(0, 1)

	// SelectedTitleStyle highlights the selected alias
	SelectedTitleStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder(), false, false, false, true).
				BorderForeground(colorAccent).
				Foreground(colorAccent).
				Padding(0, 0, 0, 1)

	// SelectedDescStyle highlights the selected path
	SelectedDescStyle = SelectedTitleStyle.
				Foreground(colorMuted)

	// AliasStyle renders aliases in non-interactive listings
	AliasStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	// PathStyle renders paths in non-interactive listings
	PathStyle = lipgloss.NewStyle().
			Foreground(colorMuted)
)
