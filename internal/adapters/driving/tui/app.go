package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/CodeZobac/better.finder/internal/adapters/driving/tui/components/input"
	"github.com/CodeZobac/better.finder/internal/adapters/driving/tui/components/list"
	"github.com/CodeZobac/better.finder/internal/adapters/driving/tui/components/status"
	"github.com/CodeZobac/better.finder/internal/adapters/driving/tui/keymap"
	"github.com/CodeZobac/better.finder/internal/adapters/driving/tui/messages"
	"github.com/CodeZobac/better.finder/internal/adapters/driving/tui/styles"
	"github.com/CodeZobac/better.finder/internal/core/domain"
)

// App is the palette application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the palette styles.
	styles *styles.Styles

	// keys holds the keybindings.
	keys *keymap.KeyMap

	// queryInput is the query entry field.
	queryInput *input.QueryInput

	// resultList shows the ranked results.
	resultList *list.ResultList

	// statusBar shows state and keybinding hints.
	statusBar *status.Bar

	// debounce is the pause after the last keystroke before searching.
	debounce time.Duration

	// seq identifies the latest edit; stale debounce timers carry an
	// older value and are dropped.
	seq int

	// query is the query the last dispatched search ran with.
	query string

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new palette application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	settings := domain.DefaultAppSettings()
	if ports.Settings != nil {
		if loaded, err := ports.Settings.Get(); err == nil && loaded != nil {
			settings = *loaded
		}
	}

	theme := styles.DarkTheme()
	if settings.Theme == domain.ThemeLight {
		theme = styles.LightTheme()
	}
	s := styles.NewStyles(theme)
	km := keymap.DefaultKeyMap()

	return &App{
		ports:      ports,
		ctx:        context.Background(),
		styles:     s,
		keys:       km,
		queryInput: input.NewQueryInput(s),
		resultList: list.NewResultList(s, settings.MaxResults),
		statusBar:  status.NewBar(s, km),
		debounce:   time.Duration(settings.SearchDelayMS) * time.Millisecond,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("better.finder"),
		a.queryInput.Init(),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.queryInput.SetWidth(msg.Width)
		a.resultList.SetWidth(msg.Width)
		a.statusBar.SetWidth(msg.Width)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case messages.DebounceElapsed:
		if msg.Seq != a.seq {
			return a, nil
		}
		return a, a.searchCmd(a.queryInput.Value())

	case messages.SearchCompleted:
		if msg.Query != a.query {
			return a, nil
		}
		a.resultList.SetResults(msg.Results)
		a.statusBar.SetResultCount(len(msg.Results))
		a.statusBar.SetState(status.StateResults)
		return a, nil

	case messages.ResultExecuted:
		if msg.Err != nil {
			a.err = msg.Err
			a.statusBar.SetState(status.StateError)
			a.statusBar.SetMessage(msg.Err.Error())
			return a, nil
		}
		// The launcher's job is done once the action ran.
		return a, tea.Quit

	case messages.Quit:
		return a, tea.Quit
	}

	return a, nil
}

// handleKey routes key presses to navigation, execution, or the input.
func (a *App) handleKey(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return a, nil
	}
	keyStr := keyMsg.String()

	switch {
	case keymap.Matches(keyStr, a.keys.Quit):
		return a, tea.Quit

	case keymap.Matches(keyStr, a.keys.Clear):
		if a.queryInput.Value() == "" {
			return a, tea.Quit
		}
		a.clearQuery()
		return a, nil

	case keymap.Matches(keyStr, a.keys.Up):
		a.resultList.MoveUp()
		return a, nil

	case keymap.Matches(keyStr, a.keys.Down):
		a.resultList.MoveDown()
		return a, nil

	case keymap.Matches(keyStr, a.keys.Execute):
		selected := a.resultList.SelectedResult()
		if selected == nil {
			return a, nil
		}
		return a, a.executeCmd(*selected)
	}

	// Everything else edits the query.
	before := a.queryInput.Value()
	var cmd tea.Cmd
	a.queryInput, cmd = a.queryInput.Update(msg)
	after := a.queryInput.Value()

	if after == before {
		return a, cmd
	}
	if strings.TrimSpace(after) == "" {
		a.clearResults()
		return a, cmd
	}

	// Restart the debounce clock on every edit.
	a.seq++
	seq := a.seq
	a.statusBar.SetState(status.StateSearching)
	return a, tea.Batch(cmd, tea.Tick(a.debounce, func(time.Time) tea.Msg {
		return messages.DebounceElapsed{Seq: seq}
	}))
}

// searchCmd dispatches the query to the engine off the update loop.
func (a *App) searchCmd(query string) tea.Cmd {
	a.query = query
	return func() tea.Msg {
		results := a.ports.Engine.Search(a.ctx, query)
		return messages.SearchCompleted{Query: query, Results: results}
	}
}

// executeCmd runs the selected result's action off the update loop.
func (a *App) executeCmd(result domain.SearchResult) tea.Cmd {
	return func() tea.Msg {
		err := a.ports.Engine.ExecuteResult(a.ctx, &result)
		return messages.ResultExecuted{Result: result, Err: err}
	}
}

// clearQuery resets the palette to its empty state.
func (a *App) clearQuery() {
	a.queryInput.Reset()
	a.clearResults()
}

// clearResults drops results and invalidates any in-flight search.
func (a *App) clearResults() {
	a.seq++
	a.query = ""
	a.err = nil
	a.resultList.Clear()
	a.statusBar.Clear()
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	sections := []string{
		a.queryInput.View(),
		"",
		a.resultList.View(),
	}

	body := lipgloss.JoinVertical(lipgloss.Left, sections...)

	// Pin the status bar to the bottom.
	bodyHeight := lipgloss.Height(body)
	gap := a.height - bodyHeight - 1
	if gap < 0 {
		gap = 0
	}

	return body + strings.Repeat("\n", gap+1) + a.statusBar.View()
}

// Run starts the palette application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Query returns the query the last search ran with.
func (a *App) Query() string {
	return a.query
}

// Results returns the current search results.
func (a *App) Results() []domain.SearchResult {
	return a.resultList.Results()
}

// SelectedIndex returns the currently selected result index.
func (a *App) SelectedIndex() int {
	return a.resultList.Selected()
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.queryInput.SetWidth(width)
	a.resultList.SetWidth(width)
	a.statusBar.SetWidth(width)
}
