package domain

import "fmt"

const unknownDescription = "Unknown"

// Theme selects the UI colour scheme.
type Theme string

// Available themes.
const (
	// ThemeLight forces the light colour scheme.
	ThemeLight Theme = "light"

	// ThemeDark forces the dark colour scheme.
	ThemeDark Theme = "dark"

	// ThemeSystem follows the OS preference.
	ThemeSystem Theme = "system"
)

// IsValid returns true if the theme is recognised.
func (t Theme) IsValid() bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (t Theme) String() string {
	return string(t)
}

// Description returns a human-readable description of the theme.
func (t Theme) Description() string {
	switch t {
	case ThemeLight:
		return "Light"
	case ThemeDark:
		return "Dark"
	case ThemeSystem:
		return "Follow system preference"
	default:
		return unknownDescription
	}
}

// AllThemes returns all available themes.
func AllThemes() []Theme {
	return []Theme{ThemeLight, ThemeDark, ThemeSystem}
}

// ProviderToggles controls which search providers are registered.
// The web-search fallback is always on and has no toggle.
type ProviderToggles struct {
	// Files enables file search (native index or fallback walker).
	Files bool

	// Applications enables installed-application search.
	Applications bool

	// QuickActions enables system commands (lock, shutdown, ...).
	QuickActions bool

	// Calculator enables inline arithmetic evaluation.
	Calculator bool

	// Clipboard enables clipboard history search.
	Clipboard bool

	// Bookmarks enables browser bookmark search.
	Bookmarks bool

	// RecentFiles enables recently-opened file suggestions.
	RecentFiles bool
}

// AppSettings holds all user-facing configuration.
type AppSettings struct {
	// Hotkey is the global activation shortcut, owned by the host shell.
	Hotkey string

	// Theme selects the colour scheme.
	Theme Theme

	// MaxResults is how many results the presentation layer shows.
	// The engine's own global cap is separate and fixed.
	MaxResults int

	// Providers toggles individual search providers.
	Providers ProviderToggles

	// SearchDelayMS is the keystroke debounce before searching.
	SearchDelayMS int

	// Autostart launches the finder at login.
	Autostart bool
}

// DefaultAppSettings returns settings with sensible defaults.
// Every provider starts enabled.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Hotkey:     "Ctrl+K",
		Theme:      ThemeSystem,
		MaxResults: 8,
		Providers: ProviderToggles{
			Files:        true,
			Applications: true,
			QuickActions: true,
			Calculator:   true,
			Clipboard:    true,
			Bookmarks:    true,
			RecentFiles:  true,
		},
		SearchDelayMS: 150,
		Autostart:     false,
	}
}

// Validate checks the settings for out-of-range values.
func (s *AppSettings) Validate() error {
	if s.Hotkey == "" {
		return fmt.Errorf("%w: hotkey cannot be empty", ErrInvalidInput)
	}
	if s.MaxResults < 1 || s.MaxResults > 50 {
		return fmt.Errorf("%w: max results must be between 1 and 50", ErrInvalidInput)
	}
	if s.SearchDelayMS < 0 || s.SearchDelayMS > 1000 {
		return fmt.Errorf("%w: search delay must be between 0 and 1000ms", ErrInvalidInput)
	}
	if !s.Theme.IsValid() {
		return fmt.Errorf("%w: theme %q", ErrInvalidInput, string(s.Theme))
	}
	return nil
}
