package tui

import "github.com/charmbracelet/lipgloss"

// Palette. Green-forward, matching the GreenPrint identity.
var (
	ColorPrimary   = lipgloss.Color("35")  // green
	ColorHighlight = lipgloss.Color("42")  // bright green
	ColorWarn      = lipgloss.Color("203") // red, above-average marker
	ColorLabel     = lipgloss.Color("245") // gray
	ColorValue     = lipgloss.Color("252") // near-white
	ColorMuted     = lipgloss.Color("240")
)

// Shared styles.
var (
	TitleStyle = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)

	HeaderStyle = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true).Underline(true)

	LabelStyle = lipgloss.NewStyle().Foreground(ColorLabel)

	ValueStyle = lipgloss.NewStyle().Foreground(ColorValue).Bold(true)

	SubtleStyle = lipgloss.NewStyle().Foreground(ColorMuted).Italic(true)

	WarnStyle = lipgloss.NewStyle().Foreground(ColorWarn).Bold(true)

	TabStyle = lipgloss.NewStyle().Foreground(ColorLabel).Padding(0, 1)

	ActiveTabStyle = lipgloss.NewStyle().Foreground(ColorHighlight).Bold(true).Padding(0, 1).Underline(true)

	SelectedRowStyle = lipgloss.NewStyle().Foreground(ColorHighlight).Bold(true)

	BoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(ColorPrimary).Padding(0, 1)

	HelpStyle = lipgloss.NewStyle().Foreground(ColorMuted)
)
