package driven

import (
	"context"

	"github.com/CodeZobac/better.finder/internal/core/domain"
)

// SearchProvider is one source of search results.
// Each provider type (calculator, bookmarks, file search, etc.) implements
// this interface and is registered with the engine at startup.
type SearchProvider interface {
	// Name returns the provider's unique display name.
	Name() string

	// Priority orders providers, 0 to 100. Higher-priority providers are
	// consulted first when executing a result.
	Priority() int

	// Search returns results for the query. Queries the provider does not
	// serve yield an empty slice, not an error. The engine never cancels
	// the context to abort siblings; providers may still honour it for
	// their own I/O.
	Search(ctx context.Context, query string) ([]domain.SearchResult, error)

	// Execute performs the action for a result this provider produced.
	// Returns an error wrapping domain.ErrWrongResultType when the result
	// belongs to a different provider.
	Execute(ctx context.Context, result *domain.SearchResult) error

	// IsEnabled reports whether the provider should be consulted.
	// Disabled providers stay registered but are skipped by Search.
	IsEnabled() bool

	// Initialize prepares the provider: loads persisted state, warms
	// indexes, starts background refresh.
	Initialize(ctx context.Context) error

	// Shutdown flushes state and releases resources.
	Shutdown(ctx context.Context) error
}
