package mcp

import (
	"context"

	"github.com/CodeZobac/better.finder/internal/core/domain"
	"github.com/CodeZobac/better.finder/internal/core/ports/driving"
)

// mockEngine is a canned SearchEngine for server tests.
type mockEngine struct {
	results    []domain.SearchResult
	executed   []domain.SearchResult
	executeErr error
	info       []driving.ProviderInfo
}

func (m *mockEngine) Search(_ context.Context, _ string) []domain.SearchResult {
	return m.results
}

func (m *mockEngine) ExecuteResult(_ context.Context, result *domain.SearchResult) error {
	if m.executeErr != nil {
		return m.executeErr
	}
	m.executed = append(m.executed, *result)
	return nil
}

func (m *mockEngine) InvalidateCache() {}

func (m *mockEngine) ProviderCount() int { return len(m.info) }

func (m *mockEngine) ProviderNames() []string {
	names := make([]string, len(m.info))
	for i, p := range m.info {
		names[i] = p.Name
	}
	return names
}

func (m *mockEngine) Providers() []driving.ProviderInfo { return m.info }

// mockSettingsService serves fixed settings.
type mockSettingsService struct {
	settings domain.AppSettings
	err      error
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	if m.err != nil {
		return nil, m.err
	}
	s := m.settings
	return &s, nil
}

func (m *mockSettingsService) Save(*domain.AppSettings) error { return nil }

func (m *mockSettingsService) SetTheme(domain.Theme) error { return nil }

func (m *mockSettingsService) SetMaxResults(int) error { return nil }

func (m *mockSettingsService) SetProviderEnabled(string, bool) error { return nil }

func (m *mockSettingsService) Validate() error { return nil }

func (m *mockSettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}
