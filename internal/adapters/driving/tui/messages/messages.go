// Package messages defines Bubbletea message types for the palette.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/CodeZobac/better.finder/internal/core/domain"
)

// QueryChanged is sent when the query input changes.
type QueryChanged struct {
	Query string
}

// DebounceElapsed fires when the keystroke debounce timer runs out.
// Seq identifies which edit scheduled it; stale timers are ignored.
type DebounceElapsed struct {
	Seq int
}

// SearchCompleted carries search results back to the model.
type SearchCompleted struct {
	Query   string
	Results []domain.SearchResult
}

// ResultExecuted reports the outcome of executing the selected result.
type ResultExecuted struct {
	Result domain.SearchResult
	Err    error
}

// Quit requests application exit.
type Quit struct{}
