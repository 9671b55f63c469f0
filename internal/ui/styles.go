package ui

import "github.com/charmbracelet/lipgloss"

// Color palette.
var (
	ColorSuccess   = lipgloss.Color("#00D26A") // success
	ColorWord      = lipgloss.Color("#00B4D8") // hex words
	ColorValue     = lipgloss.Color("#FFFFFF") // decoded values
	ColorMeta      = lipgloss.Color("#555555") // metadata
	ColorBorder    = lipgloss.Color("#1E3A5F") // UI chrome
	ColorMode      = lipgloss.Color("#9B5DE5") // mode names
	ColorHighlight = lipgloss.Color("#F15BB5") // headers
)

// Base styles.
var (
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
	StyleWord    = lipgloss.NewStyle().Foreground(ColorWord)
	StyleValue   = lipgloss.NewStyle().Foreground(ColorValue).Bold(true)
	StyleMeta    = lipgloss.NewStyle().Foreground(ColorMeta)
	StyleMode    = lipgloss.NewStyle().Foreground(ColorMode).Bold(true)

	StyleBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	StyleTitle = lipgloss.NewStyle().
			Foreground(ColorMode).
			Bold(true).
			MarginBottom(1)
)

// Success formats a success message.
func Success(msg string) string { return StyleSuccess.Render("✓ " + msg) }

// Word formats a raw hex word.
func Word(w string) string { return StyleWord.Render(w) }

// Val formats a value.
func Val(v string) string { return StyleValue.Render(v) }

// Meta formats metadata text.
func Meta(m string) string { return StyleMeta.Render(m) }

// ModeName formats a mode name.
func ModeName(m string) string { return StyleMode.Render(m) }
