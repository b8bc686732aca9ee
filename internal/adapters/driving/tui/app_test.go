package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodeZobac/better.finder/internal/adapters/driving/tui/messages"
	"github.com/CodeZobac/better.finder/internal/core/domain"
	"github.com/CodeZobac/better.finder/internal/core/ports/driving"
)

// mockEngine is a canned SearchEngine for palette tests.
type mockEngine struct {
	results    []domain.SearchResult
	executed   []domain.SearchResult
	executeErr error
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

func (m *mockEngine) ProviderCount() int { return 0 }

func (m *mockEngine) ProviderNames() []string { return nil }

func (m *mockEngine) Providers() []driving.ProviderInfo { return nil }

func testResults() []domain.SearchResult {
	return []domain.SearchResult{
		{
			ID:     "app:/usr/share/applications/firefox.desktop",
			Title:  "Firefox",
			Type:   domain.ResultTypeApplication,
			Score:  175,
			Action: domain.LaunchAppAction("/usr/share/applications/firefox.desktop"),
		},
		{
			ID:     "file:/home/user/notes.txt",
			Title:  "notes.txt",
			Type:   domain.ResultTypeFile,
			Score:  80,
			Action: domain.OpenFileAction("/home/user/notes.txt"),
		},
	}
}

func newTestApp(t *testing.T, engine *mockEngine) *App {
	t.Helper()
	app, err := NewApp(&Ports{Engine: engine})
	require.NoError(t, err)
	app.SetDimensions(80, 24)
	return app
}

func TestNewAppRequiresEngine(t *testing.T) {
	_, err := NewApp(&Ports{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingEngine)
}

func TestAppSearchFlow(t *testing.T) {
	engine := &mockEngine{results: testResults()}
	app := newTestApp(t, engine)

	// Type a character: the debounce timer starts.
	model, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}})
	app = model.(*App)
	require.NotNil(t, cmd)

	// Timer fires with the current sequence.
	model, cmd = app.Update(messages.DebounceElapsed{Seq: app.seq})
	app = model.(*App)
	require.NotNil(t, cmd)

	// The search command produces the completion message.
	msg := cmd()
	completed, ok := msg.(messages.SearchCompleted)
	require.True(t, ok)
	assert.Equal(t, "f", completed.Query)
	require.Len(t, completed.Results, 2)

	model, _ = app.Update(completed)
	app = model.(*App)
	assert.Len(t, app.Results(), 2)
	assert.Equal(t, 0, app.SelectedIndex())
}

func TestAppIgnoresStaleDebounce(t *testing.T) {
	engine := &mockEngine{results: testResults()}
	app := newTestApp(t, engine)

	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}})
	app = model.(*App)

	_, cmd := app.Update(messages.DebounceElapsed{Seq: app.seq - 1})

	assert.Nil(t, cmd)
}

func TestAppIgnoresStaleResults(t *testing.T) {
	engine := &mockEngine{results: testResults()}
	app := newTestApp(t, engine)
	app.query = "current"

	model, _ := app.Update(messages.SearchCompleted{
		Query:   "stale",
		Results: testResults(),
	})
	app = model.(*App)

	assert.Empty(t, app.Results())
}

func TestAppNavigation(t *testing.T) {
	engine := &mockEngine{results: testResults()}
	app := newTestApp(t, engine)
	app.query = "f"
	model, _ := app.Update(messages.SearchCompleted{Query: "f", Results: testResults()})
	app = model.(*App)

	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyDown})
	app = model.(*App)
	assert.Equal(t, 1, app.SelectedIndex())

	// Down at the bottom stays put.
	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyDown})
	app = model.(*App)
	assert.Equal(t, 1, app.SelectedIndex())

	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyUp})
	app = model.(*App)
	assert.Equal(t, 0, app.SelectedIndex())
}

func TestAppExecuteSelected(t *testing.T) {
	engine := &mockEngine{results: testResults()}
	app := newTestApp(t, engine)
	app.query = "f"
	model, _ := app.Update(messages.SearchCompleted{Query: "f", Results: testResults()})
	app = model.(*App)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg := cmd()
	executed, ok := msg.(messages.ResultExecuted)
	require.True(t, ok)
	assert.NoError(t, executed.Err)
	assert.Equal(t, "Firefox", executed.Result.Title)
	require.Len(t, engine.executed, 1)
}

func TestAppQuitsAfterSuccessfulExecute(t *testing.T) {
	engine := &mockEngine{}
	app := newTestApp(t, engine)

	_, cmd := app.Update(messages.ResultExecuted{Result: testResults()[0]})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestAppShowsExecuteError(t *testing.T) {
	engine := &mockEngine{}
	app := newTestApp(t, engine)

	model, cmd := app.Update(messages.ResultExecuted{
		Result: testResults()[0],
		Err:    errors.New("file vanished"),
	})
	app = model.(*App)

	assert.Nil(t, cmd)
	assert.Error(t, app.Err())
}

func TestAppEnterWithNoResults(t *testing.T) {
	engine := &mockEngine{}
	app := newTestApp(t, engine)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
}

func TestAppEscClearsThenQuits(t *testing.T) {
	engine := &mockEngine{results: testResults()}
	app := newTestApp(t, engine)

	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}})
	app = model.(*App)

	// First esc clears the query.
	model, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	app = model.(*App)
	assert.Nil(t, cmd)
	assert.Empty(t, app.Results())

	// Second esc quits.
	_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestAppCtrlCQuits(t *testing.T) {
	engine := &mockEngine{}
	app := newTestApp(t, engine)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestAppViewBeforeReady(t *testing.T) {
	engine := &mockEngine{}
	app, err := NewApp(&Ports{Engine: engine})
	require.NoError(t, err)

	assert.Contains(t, app.View(), "Initialising")
}

func TestAppViewRendersResults(t *testing.T) {
	engine := &mockEngine{results: testResults()}
	app := newTestApp(t, engine)
	app.query = "f"
	model, _ := app.Update(messages.SearchCompleted{Query: "f", Results: testResults()})
	app = model.(*App)

	view := app.View()

	assert.Contains(t, view, "Firefox")
	assert.Contains(t, view, "notes.txt")
	assert.Contains(t, view, "2 results")
}
