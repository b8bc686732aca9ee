package driving

import "github.com/CodeZobac/better.finder/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	// Missing keys fall back to defaults.
	Get() (*domain.AppSettings, error)

	// Save validates and persists application settings.
	Save(settings *domain.AppSettings) error

	// SetTheme updates the UI theme.
	SetTheme(theme domain.Theme) error

	// SetMaxResults updates how many results the presentation layer shows.
	SetMaxResults(n int) error

	// SetProviderEnabled toggles a search provider by its settings key
	// (files, applications, quick_actions, calculator, clipboard,
	// bookmarks, recent_files).
	SetProviderEnabled(name string, enabled bool) error

	// Validate checks if current settings are valid.
	Validate() error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
