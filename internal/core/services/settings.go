package services

import (
	"fmt"

	"github.com/CodeZobac/better.finder/internal/core/domain"
	"github.com/CodeZobac/better.finder/internal/core/ports/driven"
	"github.com/CodeZobac/better.finder/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyHotkey        = "general.hotkey"
	keyTheme         = "general.theme"
	keyAutostart     = "general.autostart"
	keyMaxResults    = "search.max_results"
	keySearchDelayMS = "search.delay_ms"

	keyProviderFiles        = "providers.files"
	keyProviderApplications = "providers.applications"
	keyProviderQuickActions = "providers.quick_actions"
	keyProviderCalculator   = "providers.calculator"
	keyProviderClipboard    = "providers.clipboard"
	keyProviderBookmarks    = "providers.bookmarks"
	keyProviderRecentFiles  = "providers.recent_files"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings.
// Keys missing from the store fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Hotkey:     s.getString(keyHotkey, defaults.Hotkey),
		Theme:      s.getTheme(defaults.Theme),
		MaxResults: s.getInt(keyMaxResults, defaults.MaxResults),
		Providers: domain.ProviderToggles{
			Files:        s.getBool(keyProviderFiles, defaults.Providers.Files),
			Applications: s.getBool(keyProviderApplications, defaults.Providers.Applications),
			QuickActions: s.getBool(keyProviderQuickActions, defaults.Providers.QuickActions),
			Calculator:   s.getBool(keyProviderCalculator, defaults.Providers.Calculator),
			Clipboard:    s.getBool(keyProviderClipboard, defaults.Providers.Clipboard),
			Bookmarks:    s.getBool(keyProviderBookmarks, defaults.Providers.Bookmarks),
			RecentFiles:  s.getBool(keyProviderRecentFiles, defaults.Providers.RecentFiles),
		},
		SearchDelayMS: s.getInt(keySearchDelayMS, defaults.SearchDelayMS),
		Autostart:     s.getBool(keyAutostart, defaults.Autostart),
	}

	return settings, nil
}

// Save validates and persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("validate settings: %w", err)
	}

	if err := s.configStore.Set(keyHotkey, settings.Hotkey); err != nil {
		return fmt.Errorf("save hotkey: %w", err)
	}
	if err := s.configStore.Set(keyTheme, settings.Theme.String()); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	if err := s.configStore.Set(keyMaxResults, settings.MaxResults); err != nil {
		return fmt.Errorf("save max results: %w", err)
	}
	if err := s.configStore.Set(keySearchDelayMS, settings.SearchDelayMS); err != nil {
		return fmt.Errorf("save search delay: %w", err)
	}
	if err := s.configStore.Set(keyAutostart, settings.Autostart); err != nil {
		return fmt.Errorf("save autostart: %w", err)
	}

	toggles := map[string]bool{
		keyProviderFiles:        settings.Providers.Files,
		keyProviderApplications: settings.Providers.Applications,
		keyProviderQuickActions: settings.Providers.QuickActions,
		keyProviderCalculator:   settings.Providers.Calculator,
		keyProviderClipboard:    settings.Providers.Clipboard,
		keyProviderBookmarks:    settings.Providers.Bookmarks,
		keyProviderRecentFiles:  settings.Providers.RecentFiles,
	}
	for key, enabled := range toggles {
		if err := s.configStore.Set(key, enabled); err != nil {
			return fmt.Errorf("save %s: %w", key, err)
		}
	}

	return nil
}

// SetTheme updates the UI theme.
func (s *SettingsService) SetTheme(theme domain.Theme) error {
	if !theme.IsValid() {
		return fmt.Errorf("%w: theme %q", domain.ErrInvalidInput, string(theme))
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.Theme = theme
	return s.Save(settings)
}

// SetMaxResults updates how many results the presentation layer shows.
func (s *SettingsService) SetMaxResults(n int) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.MaxResults = n
	return s.Save(settings)
}

// SetProviderEnabled toggles a search provider by its settings key.
func (s *SettingsService) SetProviderEnabled(name string, enabled bool) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	switch name {
	case "files":
		settings.Providers.Files = enabled
	case "applications":
		settings.Providers.Applications = enabled
	case "quick_actions":
		settings.Providers.QuickActions = enabled
	case "calculator":
		settings.Providers.Calculator = enabled
	case "clipboard":
		settings.Providers.Clipboard = enabled
	case "bookmarks":
		settings.Providers.Bookmarks = enabled
	case "recent_files":
		settings.Providers.RecentFiles = enabled
	default:
		return fmt.Errorf("%w: unknown provider %q", domain.ErrInvalidInput, name)
	}

	return s.Save(settings)
}

// Validate checks if current settings are valid.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	return settings.Validate()
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	// Existence check rather than zero check: 0 is a valid stored value
	// for search.delay_ms.
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetInt(key)
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getTheme(defaultVal domain.Theme) domain.Theme {
	val := s.configStore.GetString(keyTheme)
	if val == "" {
		return defaultVal
	}
	theme := domain.Theme(val)
	if !theme.IsValid() {
		return defaultVal
	}
	return theme
}
