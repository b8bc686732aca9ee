package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTheme_IsValid tests all valid and invalid themes
func TestTheme_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		theme    Theme
		expected bool
	}{
		{
			name:     "light is valid",
			theme:    ThemeLight,
			expected: true,
		},
		{
			name:     "dark is valid",
			theme:    ThemeDark,
			expected: true,
		},
		{
			name:     "system is valid",
			theme:    ThemeSystem,
			expected: true,
		},
		{
			name:     "empty string is invalid",
			theme:    Theme(""),
			expected: false,
		},
		{
			name:     "unknown theme is invalid",
			theme:    Theme("sepia"),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.theme.IsValid()
			assert.Equal(t, tt.expected, result)
		})
	}
}

// TestTheme_String tests string representation
func TestTheme_String(t *testing.T) {
	assert.Equal(t, "light", ThemeLight.String())
	assert.Equal(t, "dark", ThemeDark.String())
	assert.Equal(t, "system", ThemeSystem.String())
	assert.Equal(t, "sepia", Theme("sepia").String())
}

// TestTheme_Description tests human-readable descriptions
func TestTheme_Description(t *testing.T) {
	tests := []struct {
		name     string
		theme    Theme
		expected string
	}{
		{
			name:     "light description",
			theme:    ThemeLight,
			expected: "Light",
		},
		{
			name:     "dark description",
			theme:    ThemeDark,
			expected: "Dark",
		},
		{
			name:     "system description",
			theme:    ThemeSystem,
			expected: "Follow system preference",
		},
		{
			name:     "unknown returns Unknown",
			theme:    Theme("sepia"),
			expected: unknownDescription,
		},
		{
			name:     "empty string returns Unknown",
			theme:    Theme(""),
			expected: unknownDescription,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.theme.Description()
			assert.Equal(t, tt.expected, result)
		})
	}
}

// TestAllThemes tests complete list of themes
func TestAllThemes(t *testing.T) {
	themes := AllThemes()

	require.Len(t, themes, 3)
	assert.Contains(t, themes, ThemeLight)
	assert.Contains(t, themes, ThemeDark)
	assert.Contains(t, themes, ThemeSystem)

	// Verify all themes are valid
	for _, theme := range themes {
		assert.True(t, theme.IsValid(), "Theme %s should be valid", theme)
	}
}

// TestDefaultAppSettings tests default settings creation
func TestDefaultAppSettings(t *testing.T) {
	settings := DefaultAppSettings()

	assert.Equal(t, "Ctrl+K", settings.Hotkey)
	assert.Equal(t, ThemeSystem, settings.Theme)
	assert.Equal(t, 8, settings.MaxResults)
	assert.Equal(t, 150, settings.SearchDelayMS)
	assert.False(t, settings.Autostart)

	// Every provider starts enabled
	assert.True(t, settings.Providers.Files)
	assert.True(t, settings.Providers.Applications)
	assert.True(t, settings.Providers.QuickActions)
	assert.True(t, settings.Providers.Calculator)
	assert.True(t, settings.Providers.Clipboard)
	assert.True(t, settings.Providers.Bookmarks)
	assert.True(t, settings.Providers.RecentFiles)

	// Defaults must pass their own validation
	require.NoError(t, settings.Validate())
}

// TestAppSettings_Validate tests range checks on every field
func TestAppSettings_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*AppSettings)
		wantErr bool
	}{
		{
			name:    "defaults are valid",
			mutate:  func(*AppSettings) {},
			wantErr: false,
		},
		{
			name:    "empty hotkey",
			mutate:  func(s *AppSettings) { s.Hotkey = "" },
			wantErr: true,
		},
		{
			name:    "max results too low",
			mutate:  func(s *AppSettings) { s.MaxResults = 0 },
			wantErr: true,
		},
		{
			name:    "max results too high",
			mutate:  func(s *AppSettings) { s.MaxResults = 51 },
			wantErr: true,
		},
		{
			name:    "max results at lower bound",
			mutate:  func(s *AppSettings) { s.MaxResults = 1 },
			wantErr: false,
		},
		{
			name:    "max results at upper bound",
			mutate:  func(s *AppSettings) { s.MaxResults = 50 },
			wantErr: false,
		},
		{
			name:    "negative search delay",
			mutate:  func(s *AppSettings) { s.SearchDelayMS = -1 },
			wantErr: true,
		},
		{
			name:    "search delay too high",
			mutate:  func(s *AppSettings) { s.SearchDelayMS = 1001 },
			wantErr: true,
		},
		{
			name:    "zero search delay is valid",
			mutate:  func(s *AppSettings) { s.SearchDelayMS = 0 },
			wantErr: false,
		},
		{
			name:    "invalid theme",
			mutate:  func(s *AppSettings) { s.Theme = Theme("sepia") },
			wantErr: true,
		},
		{
			name:    "all providers disabled is still valid",
			mutate:  func(s *AppSettings) { s.Providers = ProviderToggles{} },
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := DefaultAppSettings()
			tt.mutate(&settings)

			err := settings.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidInput))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
