// Package styles provides colour themes and styling for the palette.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette and styling for the palette UI.
type Theme struct {
	// Primary is the main accent colour.
	Primary lipgloss.Color

	// Secondary is the secondary accent colour.
	Secondary lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Success indicates positive outcomes.
	Success lipgloss.Color

	// Error indicates problems.
	Error lipgloss.Color

	// Border is the border colour.
	Border lipgloss.Color

	// StatusBackground backs the status bar.
	StatusBackground lipgloss.Color
}

// DarkTheme returns the dark colour theme.
func DarkTheme() *Theme {
	return &Theme{
		Primary:          lipgloss.Color("#7C3AED"), // Purple
		Secondary:        lipgloss.Color("#06B6D4"), // Cyan
		Foreground:       lipgloss.Color("#CDD6F4"), // Light gray
		Muted:            lipgloss.Color("#6C7086"), // Medium gray
		Success:          lipgloss.Color("#A6E3A1"), // Green
		Error:            lipgloss.Color("#F38BA8"), // Red
		Border:           lipgloss.Color("#45475A"), // Border gray
		StatusBackground: lipgloss.Color("#181825"),
	}
}

// LightTheme returns the light colour theme.
func LightTheme() *Theme {
	return &Theme{
		Primary:          lipgloss.Color("#6D28D9"),
		Secondary:        lipgloss.Color("#0E7490"),
		Foreground:       lipgloss.Color("#1E1E2E"),
		Muted:            lipgloss.Color("#8C8FA1"),
		Success:          lipgloss.Color("#40A02B"),
		Error:            lipgloss.Color("#D20F39"),
		Border:           lipgloss.Color("#ACB0BE"),
		StatusBackground: lipgloss.Color("#E6E9EF"),
	}
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return DarkTheme()
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	// Title style for headers.
	Title lipgloss.Style

	// Subtitle style for secondary headers.
	Subtitle lipgloss.Style

	// Normal style for regular text.
	Normal lipgloss.Style

	// Muted style for less important text.
	Muted lipgloss.Style

	// Selected style for the highlighted result.
	Selected lipgloss.Style

	// Error style for error messages.
	Error lipgloss.Style

	// Success style for success messages.
	Success lipgloss.Style

	// InputField style for the query input.
	InputField lipgloss.Style

	// StatusBar style for the status bar.
	StatusBar lipgloss.Style

	// Border style for bordered containers.
	Border lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Subtitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Secondary),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground).
			Background(theme.Primary),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		Success: lipgloss.NewStyle().
			Foreground(theme.Success),

		InputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(theme.StatusBackground).
			Padding(0, 1),

		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}
