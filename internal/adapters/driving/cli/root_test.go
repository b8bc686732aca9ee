package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/CodeZobac/better.finder/internal/core/domain"
	"github.com/CodeZobac/better.finder/internal/core/ports/driving"
)

// mockEngine is a hand-rolled SearchEngine for command tests.
type mockEngine struct {
	results     []domain.SearchResult
	executed    []*domain.SearchResult
	executeErr  error
	invalidated bool
	info        []driving.ProviderInfo
}

func (m *mockEngine) Search(_ context.Context, _ string) []domain.SearchResult {
	return m.results
}

func (m *mockEngine) ExecuteResult(_ context.Context, result *domain.SearchResult) error {
	if m.executeErr != nil {
		return m.executeErr
	}
	m.executed = append(m.executed, result)
	return nil
}

func (m *mockEngine) InvalidateCache() { m.invalidated = true }

func (m *mockEngine) ProviderCount() int { return len(m.info) }

func (m *mockEngine) ProviderNames() []string {
	names := make([]string, len(m.info))
	for i, p := range m.info {
		names[i] = p.Name
	}
	return names
}

func (m *mockEngine) Providers() []driving.ProviderInfo { return m.info }

// mockSettings is an in-memory SettingsService.
type mockSettings struct {
	settings domain.AppSettings
	saveErr  error
}

func newMockSettings() *mockSettings {
	return &mockSettings{settings: domain.DefaultAppSettings()}
}

func (m *mockSettings) Get() (*domain.AppSettings, error) {
	s := m.settings
	return &s, nil
}

func (m *mockSettings) Save(settings *domain.AppSettings) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.settings = *settings
	return nil
}

func (m *mockSettings) SetTheme(theme domain.Theme) error {
	if !theme.IsValid() {
		return fmt.Errorf("%w: unknown theme %q", domain.ErrInvalidInput, theme)
	}
	m.settings.Theme = theme
	return nil
}

func (m *mockSettings) SetMaxResults(n int) error {
	if n < 1 || n > 50 {
		return fmt.Errorf("%w: max results out of range", domain.ErrInvalidInput)
	}
	m.settings.MaxResults = n
	return nil
}

func (m *mockSettings) SetProviderEnabled(name string, enabled bool) error {
	switch name {
	case "files":
		m.settings.Providers.Files = enabled
	case "applications":
		m.settings.Providers.Applications = enabled
	case "quick_actions":
		m.settings.Providers.QuickActions = enabled
	case "calculator":
		m.settings.Providers.Calculator = enabled
	case "clipboard":
		m.settings.Providers.Clipboard = enabled
	case "bookmarks":
		m.settings.Providers.Bookmarks = enabled
	case "recent_files":
		m.settings.Providers.RecentFiles = enabled
	default:
		return fmt.Errorf("%w: unknown provider %q", domain.ErrInvalidInput, name)
	}
	return nil
}

func (m *mockSettings) Validate() error { return m.settings.Validate() }

func (m *mockSettings) GetDefaults() domain.AppSettings { return domain.DefaultAppSettings() }

// setupTestServices swaps the package services for mocks and returns a
// cleanup that restores them.
func setupTestServices() (engine *mockEngine, settings *mockSettings, cleanup func()) {
	oldEngine := engineService
	oldSettings := settingsService

	engine = &mockEngine{
		results: []domain.SearchResult{
			{
				ID:       "file:/home/user/report.pdf",
				Title:    "report.pdf",
				Subtitle: "/home/user",
				Type:     domain.ResultTypeFile,
				Score:    175,
				Action:   domain.OpenFileAction("/home/user/report.pdf"),
			},
			{
				ID:     "calc:2+2",
				Title:  "4",
				Type:   domain.ResultTypeCalculator,
				Score:  100,
				Action: domain.CopyToClipboardAction("4"),
			},
		},
		info: []driving.ProviderInfo{
			{Name: "Calculator", Priority: 90, Enabled: true},
			{Name: "Web Search", Priority: 1, Enabled: true},
		},
	}
	settings = newMockSettings()

	engineService = engine
	settingsService = settings

	return engine, settings, func() {
		engineService = oldEngine
		settingsService = oldSettings
	}
}

var errMockFailure = errors.New("mock failure")
