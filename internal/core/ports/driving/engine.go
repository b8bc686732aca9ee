package driving

import (
	"context"

	"github.com/CodeZobac/better.finder/internal/core/domain"
)

// SearchEngine is the aggregation pipeline external actors query.
type SearchEngine interface {
	// Search runs the query across all enabled providers and returns
	// ranked, capped results. Search never fails from the caller's view:
	// provider errors are logged and their results dropped.
	Search(ctx context.Context, query string) []domain.SearchResult

	// ExecuteResult performs the result's action, trying providers in
	// priority order before falling back to the default action handling.
	ExecuteResult(ctx context.Context, result *domain.SearchResult) error

	// InvalidateCache drops all cached search results.
	InvalidateCache()

	// ProviderCount returns the number of registered providers.
	ProviderCount() int

	// ProviderNames returns registered provider names in priority order,
	// highest first.
	ProviderNames() []string

	// Providers returns registration metadata in priority order,
	// highest first.
	Providers() []ProviderInfo
}

// ProviderInfo describes one registered provider.
type ProviderInfo struct {
	// Name is the provider's display name.
	Name string

	// Priority is the provider's registration priority, 0 to 100.
	Priority int

	// Enabled reports whether the provider currently answers queries.
	Enabled bool
}
