// Package list provides the result list component for the palette.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CodeZobac/better.finder/internal/adapters/driving/tui/styles"
	"github.com/CodeZobac/better.finder/internal/core/domain"
)

// ResultList displays search results in a navigable list.
type ResultList struct {
	results    []domain.SearchResult
	selected   int
	styles     *styles.Styles
	width      int
	maxVisible int
}

// NewResultList creates a new result list component. maxVisible caps
// how many results are rendered at once.
func NewResultList(s *styles.Styles, maxVisible int) *ResultList {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if maxVisible < 1 {
		maxVisible = 8
	}

	return &ResultList{
		styles:     s,
		width:      80,
		maxVisible: maxVisible,
	}
}

// Init initialises the result list.
func (r *ResultList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (r *ResultList) Update(msg tea.Msg) (*ResultList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "ctrl+p":
			r.MoveUp()
		case "down", "ctrl+n":
			r.MoveDown()
		}
	}
	return r, nil
}

// View renders the result list.
func (r *ResultList) View() string {
	if len(r.results) == 0 {
		return r.styles.Muted.Render("No results")
	}

	// Keep the selection inside the visible window.
	start := 0
	if r.selected >= r.maxVisible {
		start = r.selected - r.maxVisible + 1
	}
	end := start + r.maxVisible
	if end > len(r.results) {
		end = len(r.results)
	}

	lines := make([]string, 0, (end-start)*2)
	for i := start; i < end; i++ {
		lines = append(lines, r.renderResult(i, &r.results[i]))
	}

	return strings.Join(lines, "\n")
}

// renderResult formats a single search result as a two-line entry.
func (r *ResultList) renderResult(index int, result *domain.SearchResult) string {
	indicator := "  "
	if index == r.selected {
		indicator = "> "
	}

	title := result.Title
	if title == "" {
		title = "(untitled)"
	}
	title = truncate(title, r.width-16)

	kind := string(result.Type)

	var titleLine string
	if index == r.selected {
		titleLine = r.styles.Selected.Render(fmt.Sprintf("%s%s", indicator, title)) +
			"  " + r.styles.Subtitle.Render(kind)
	} else {
		titleLine = r.styles.Normal.Render(fmt.Sprintf("%s%s", indicator, title)) +
			"  " + r.styles.Muted.Render(kind)
	}

	if result.Subtitle == "" {
		return titleLine
	}
	subtitle := truncate(result.Subtitle, r.width-6)
	return titleLine + "\n" + r.styles.Muted.Render("    "+subtitle)
}

// SetResults replaces the list contents and resets the selection.
func (r *ResultList) SetResults(results []domain.SearchResult) {
	r.results = results
	r.selected = 0
}

// Results returns the current results.
func (r *ResultList) Results() []domain.SearchResult {
	return r.results
}

// MoveUp moves the selection up, stopping at the top.
func (r *ResultList) MoveUp() {
	if r.selected > 0 {
		r.selected--
	}
}

// MoveDown moves the selection down, stopping at the bottom.
func (r *ResultList) MoveDown() {
	if r.selected < len(r.results)-1 {
		r.selected++
	}
}

// Selected returns the selected index.
func (r *ResultList) Selected() int {
	return r.selected
}

// SelectedResult returns the selected result, or nil when empty.
func (r *ResultList) SelectedResult() *domain.SearchResult {
	if len(r.results) == 0 {
		return nil
	}
	return &r.results[r.selected]
}

// Len returns the number of results.
func (r *ResultList) Len() int {
	return len(r.results)
}

// SetWidth sets the render width.
func (r *ResultList) SetWidth(width int) {
	r.width = width
}

// Clear empties the list.
func (r *ResultList) Clear() {
	r.results = nil
	r.selected = 0
}

func truncate(s string, maxLen int) string {
	if maxLen < 10 {
		maxLen = 10
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}
