package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"sync"
	"unicode"

	"github.com/CodeZobac/better.finder/internal/core/domain"
	"github.com/CodeZobac/better.finder/internal/core/ports/driven"
	"github.com/CodeZobac/better.finder/internal/core/ports/driving"
	"github.com/CodeZobac/better.finder/internal/logger"
)

// Ensure SearchEngine implements the interface.
var _ driving.SearchEngine = (*SearchEngine)(nil)

// Result limits.
const (
	// maxResultsPerProvider caps what a single provider contributes.
	maxResultsPerProvider = 20

	// maxTotalResults caps the merged, ranked result set.
	maxTotalResults = 50

	// maxQueryRunes caps the sanitized query length.
	maxQueryRunes = 256
)

// SearchEngine coordinates search across multiple providers: it fans a
// query out to every enabled provider in parallel, merges and ranks what
// comes back, and serves repeated queries from a short-lived cache.
type SearchEngine struct {
	mu        sync.RWMutex
	providers []driven.SearchProvider

	trackerMu sync.RWMutex
	tracker   driven.FileAccessTracker

	cache    *ResultCache
	platform driven.PlatformServices
}

// NewSearchEngine creates an engine with an empty registry and a fresh
// result cache. The platform services back the default action fallback
// of ExecuteResult.
func NewSearchEngine(platform driven.PlatformServices) *SearchEngine {
	logger.Debug("Initializing search engine with result cache")
	return &SearchEngine{
		cache:    NewResultCache(defaultCacheCapacity, defaultCacheTTL),
		platform: platform,
	}
}

// RegisterProvider adds a provider to the registry and re-sorts it by
// priority, highest first. Registration invalidates the result cache:
// cached results no longer reflect what a query can return.
func (e *SearchEngine) RegisterProvider(provider driven.SearchProvider) {
	name := provider.Name()
	priority := provider.Priority()

	e.mu.Lock()
	e.providers = append(e.providers, provider)
	sort.SliceStable(e.providers, func(i, j int) bool {
		return e.providers[i].Priority() > e.providers[j].Priority()
	})
	e.mu.Unlock()

	e.cache.InvalidateAll()

	logger.Info("Registered provider %q with priority %d", name, priority)
}

// SetFileAccessTracker replaces the tracker notified after a file result
// executes successfully. Pass nil to disable tracking.
func (e *SearchEngine) SetFileAccessTracker(tracker driven.FileAccessTracker) {
	e.trackerMu.Lock()
	e.tracker = tracker
	e.trackerMu.Unlock()
	logger.Info("File access tracker registered")
}

// Search runs the query across all enabled providers and returns ranked,
// capped results. Provider failures are logged and their results dropped;
// Search itself never fails.
func (e *SearchEngine) Search(ctx context.Context, query string) []domain.SearchResult {
	if strings.TrimSpace(query) == "" {
		logger.Debug("Empty query, returning no results")
		return []domain.SearchResult{}
	}

	sanitized := SanitizeQuery(query)
	logger.Debug("Searching for: %q", sanitized)

	if cached, ok := e.cache.Get(sanitized); ok {
		logger.Debug("Returning %d cached results for query %q", len(cached), sanitized)
		return cached
	}

	// Snapshot enabled providers so in-flight searches never hold the
	// registry lock.
	e.mu.RLock()
	enabled := make([]driven.SearchProvider, 0, len(e.providers))
	for _, provider := range e.providers {
		if !provider.IsEnabled() {
			logger.Debug("Skipping disabled provider: %s", provider.Name())
			continue
		}
		enabled = append(enabled, provider)
	}
	e.mu.RUnlock()

	// Fan out to every enabled provider. Failures never abort the
	// search and there is no per-provider timeout: a slow provider
	// delays the response rather than being cut off.
	perProvider := make([][]domain.SearchResult, len(enabled))
	searchErrs := make([]error, len(enabled))

	var wg sync.WaitGroup
	wg.Add(len(enabled))
	for i, provider := range enabled {
		go func(i int, provider driven.SearchProvider) {
			defer wg.Done()
			results, err := provider.Search(ctx, sanitized)
			if err != nil {
				searchErrs[i] = err
				return
			}
			if len(results) > maxResultsPerProvider {
				results = results[:maxResultsPerProvider]
			}
			perProvider[i] = results
		}(i, provider)
	}
	wg.Wait()

	var all []domain.SearchResult
	for i, provider := range enabled {
		if searchErrs[i] != nil {
			logger.Warn("Provider %q search failed: %v", provider.Name(), searchErrs[i])
			continue
		}
		logger.Debug("Provider %q returned %d results", provider.Name(), len(perProvider[i]))
		all = append(all, perProvider[i]...)
	}

	ranked := RankResults(all, sanitized)
	if len(ranked) > maxTotalResults {
		ranked = ranked[:maxTotalResults]
	}

	logger.Debug("Search completed: %d total results", len(ranked))
	e.cache.Put(sanitized, ranked)

	return ranked
}

// ExecuteResult performs the result's action. Enabled providers are tried
// in priority order; the first success wins. When every provider declines,
// the engine falls back to handling the action itself. The returned error
// aggregates every failed attempt.
func (e *SearchEngine) ExecuteResult(ctx context.Context, result *domain.SearchResult) error {
	if result == nil {
		return fmt.Errorf("%w: nil result", domain.ErrInvalidInput)
	}

	logger.Info("Executing result: %s (type: %s)", result.Title, result.Type)

	e.mu.RLock()
	providers := make([]driven.SearchProvider, len(e.providers))
	copy(providers, e.providers)
	e.mu.RUnlock()

	var attempts []error
	for _, provider := range providers {
		if !provider.IsEnabled() {
			continue
		}

		err := provider.Execute(ctx, result)
		if err == nil {
			logger.Debug("Result executed by provider %q", provider.Name())
			e.trackFileAccess(result)
			return nil
		}
		logger.Debug("Provider %q could not execute result: %v", provider.Name(), err)
		attempts = append(attempts, fmt.Errorf("%s: %w", provider.Name(), err))
	}

	// No provider claimed the result; fall back to the action itself.
	if err := e.executeDefaultAction(result.Action); err != nil {
		attempts = append(attempts, err)
		return fmt.Errorf("%w: %w", domain.ErrExecutionFailed, errors.Join(attempts...))
	}

	e.trackFileAccess(result)
	return nil
}

// InvalidateCache drops all cached search results.
func (e *SearchEngine) InvalidateCache() {
	e.cache.InvalidateAll()
	logger.Debug("Search result cache invalidated")
}

// ProviderCount returns the number of registered providers.
func (e *SearchEngine) ProviderCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.providers)
}

// ProviderNames returns registered provider names in priority order,
// highest first.
func (e *SearchEngine) ProviderNames() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	names := make([]string, len(e.providers))
	for i, provider := range e.providers {
		names[i] = provider.Name()
	}
	return names
}

// Providers returns registration metadata in priority order, highest first.
func (e *SearchEngine) Providers() []driving.ProviderInfo {
	e.mu.RLock()
	defer e.mu.RUnlock()

	infos := make([]driving.ProviderInfo, len(e.providers))
	for i, provider := range e.providers {
		infos[i] = driving.ProviderInfo{
			Name:     provider.Name(),
			Priority: provider.Priority(),
			Enabled:  provider.IsEnabled(),
		}
	}
	return infos
}

// executeDefaultAction handles an action no provider claimed.
func (e *SearchEngine) executeDefaultAction(action domain.ResultAction) error {
	// Clipboard copy is a provider concern; without a clipboard provider
	// there is nothing to fall back to.
	if action.Type == domain.ActionCopyToClipboard {
		return fmt.Errorf("%w: clipboard copy", domain.ErrNotImplemented)
	}

	if e.platform == nil {
		return fmt.Errorf("%w: no platform services wired", domain.ErrPlatformUnsupported)
	}

	switch action.Type {
	case domain.ActionOpenFile:
		logger.Info("Opening file: %s", action.Path)
		if err := e.platform.OpenPath(action.Path); err != nil {
			return fmt.Errorf("open file: %w", err)
		}
		return nil

	case domain.ActionLaunchApp:
		logger.Info("Launching application: %s", action.Path)
		if err := e.platform.LaunchApp(action.Path); err != nil {
			return fmt.Errorf("launch app: %w", err)
		}
		return nil

	case domain.ActionExecuteCommand:
		logger.Info("Executing command: %s %v", action.Command, action.Args)
		if err := e.platform.RunCommand(action.Command, action.Args); err != nil {
			return fmt.Errorf("execute command: %w", err)
		}
		return nil

	case domain.ActionOpenURL:
		logger.Info("Opening URL: %s", action.URL)
		if err := e.platform.OpenURL(action.URL); err != nil {
			return fmt.Errorf("open url: %w", err)
		}
		return nil

	case domain.ActionWebSearch:
		logger.Info("Performing web search: %s", action.Query)
		searchURL := "https://www.google.com/search?q=" + url.QueryEscape(action.Query)
		if err := e.platform.OpenURL(searchURL); err != nil {
			return fmt.Errorf("web search: %w", err)
		}
		return nil

	default:
		return fmt.Errorf("%w: %q", domain.ErrUnknownAction, string(action.Type))
	}
}

// trackFileAccess notifies the tracker after a file result executed.
// Notification happens on its own goroutine so execution latency never
// includes tracker I/O.
func (e *SearchEngine) trackFileAccess(result *domain.SearchResult) {
	if result.Type != domain.ResultTypeFile {
		return
	}

	path := result.FilePath()
	if path == "" {
		return
	}

	e.trackerMu.RLock()
	tracker := e.tracker
	e.trackerMu.RUnlock()

	if tracker == nil {
		return
	}

	logger.Debug("Tracking file access for: %s", path)
	go tracker.TrackAccess(path)
}

// SanitizeQuery normalises raw input into the form providers receive and
// the cache is keyed by: surrounding whitespace trimmed, control runes
// removed, length capped.
func SanitizeQuery(query string) string {
	trimmed := strings.TrimSpace(query)

	var b strings.Builder
	b.Grow(len(trimmed))
	kept := 0
	for _, r := range trimmed {
		if unicode.IsControl(r) {
			continue
		}
		if kept == maxQueryRunes {
			break
		}
		b.WriteRune(r)
		kept++
	}
	return b.String()
}

// RankResults boosts result scores by how well the title matches the
// query, then sorts by score, highest first. The bonuses stack: an exact
// title match also counts as a prefix and a substring match.
func RankResults(results []domain.SearchResult, query string) []domain.SearchResult {
	queryLower := strings.ToLower(query)

	ranked := make([]domain.SearchResult, len(results))
	copy(ranked, results)

	for i := range ranked {
		titleLower := strings.ToLower(ranked[i].Title)

		if titleLower == queryLower {
			ranked[i].Score += 100
		}
		if strings.HasPrefix(titleLower, queryLower) {
			ranked[i].Score += 50
		}
		if strings.Contains(titleLower, queryLower) {
			ranked[i].Score += 25
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	return ranked
}
