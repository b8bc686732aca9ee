package websearch

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/CodeZobac/better.finder/internal/core/domain"
	"github.com/CodeZobac/better.finder/internal/core/ports/driven"
	"github.com/CodeZobac/better.finder/internal/logger"
)

// Ensure Provider implements the interface.
var _ driven.SearchProvider = (*Provider)(nil)

// minQueryRunes is the shortest query that gets a web search fallback.
const minQueryRunes = 3

// questionPattern detects queries phrased as questions.
var questionPattern = regexp.MustCompile(`(?i)^\s*(how|what|why|when|where|who)\b`)

// Provider offers a "search the web" fallback result.
type Provider struct {
	platform driven.PlatformServices
	enabled  bool
}

// New creates a web search provider. Executing a result opens the
// browser through platform.
func New(platform driven.PlatformServices) *Provider {
	return &Provider{platform: platform, enabled: true}
}

// Name returns the provider's display name.
func (p *Provider) Name() string { return "WebSearch" }

// Priority returns the lowest priority: web search is the fallback
// option when nothing local matches.
func (p *Provider) Priority() int { return 1 }

// IsEnabled reports whether the provider is consulted.
func (p *Provider) IsEnabled() bool { return p.enabled }

// Search returns a single web search result for queries long enough to
// be worth searching. The low baseline score keeps it below local
// results after ranking.
func (p *Provider) Search(_ context.Context, query string) ([]domain.SearchResult, error) {
	trimmed := strings.TrimSpace(query)

	if HasQuestionWords(trimmed) {
		logger.Debug("Web search result for question query: %q", trimmed)
		return []domain.SearchResult{buildResult(trimmed)}, nil
	}

	if utf8.RuneCountInString(trimmed) >= minQueryRunes {
		return []domain.SearchResult{buildResult(trimmed)}, nil
	}

	return []domain.SearchResult{}, nil
}

// Execute opens the search URL in the default browser.
func (p *Provider) Execute(_ context.Context, result *domain.SearchResult) error {
	if result.Type != domain.ResultTypeWebSearch {
		return fmt.Errorf("%w: %s", domain.ErrWrongResultType, result.Type)
	}
	if result.Action.Type != domain.ActionWebSearch {
		return fmt.Errorf("%w: web search results carry web_search actions", domain.ErrInvalidInput)
	}
	if p.platform == nil {
		return fmt.Errorf("%w: no platform services wired", domain.ErrPlatformUnsupported)
	}

	searchURL := SearchURL(result.Action.Query)
	logger.Info("Opening web search: %s", searchURL)
	if err := p.platform.OpenURL(searchURL); err != nil {
		return fmt.Errorf("open web search: %w", err)
	}
	return nil
}

// Initialize prepares the provider.
func (p *Provider) Initialize(context.Context) error {
	logger.Debug("Web search provider initialized")
	return nil
}

// Shutdown releases resources.
func (p *Provider) Shutdown(context.Context) error { return nil }

// HasQuestionWords reports whether the query starts with a question word
// (how, what, why, when, where, who).
func HasQuestionWords(query string) bool {
	return questionPattern.MatchString(query)
}

// ShouldTriggerWebSearch decides whether the presentation layer should
// surface a web search option. Question-style queries always qualify;
// multi-word queries qualify only when nothing local matched.
func ShouldTriggerWebSearch(query string, hasLocalResults bool) bool {
	trimmed := strings.TrimSpace(query)
	runes := utf8.RuneCountInString(trimmed)

	if runes < minQueryRunes {
		return false
	}
	if HasQuestionWords(trimmed) {
		return true
	}
	return !hasLocalResults && strings.Contains(trimmed, " ") && runes > 5
}

// SearchURL builds the Google search URL for query.
func SearchURL(query string) string {
	return "https://www.google.com/search?q=" + url.QueryEscape(query)
}

func buildResult(query string) domain.SearchResult {
	return domain.SearchResult{
		ID:       "web_search:" + query,
		Title:    fmt.Sprintf("Search Google for %q", query),
		Subtitle: "Press Enter to search on the web",
		Icon:     "web",
		Type:     domain.ResultTypeWebSearch,
		Score:    10,
		Metadata: map[string]any{
			"query":         query,
			"search_engine": "Google",
		},
		Action: domain.WebSearchAction(query),
	}
}
