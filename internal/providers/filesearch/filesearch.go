package filesearch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/CodeZobac/better.finder/internal/core/domain"
	"github.com/CodeZobac/better.finder/internal/core/ports/driven"
	"github.com/CodeZobac/better.finder/internal/logger"
)

// Ensure Provider implements the interface.
var _ driven.SearchProvider = (*Provider)(nil)

// maxResults caps how many files one query returns.
const maxResults = 20

// Provider searches files through a native index (OS search service,
// locate database). It is disabled when no index is available on this
// host; the fallback walker provider covers that case.
type Provider struct {
	index    driven.FileIndex
	platform driven.PlatformServices
	enabled  bool
}

// New creates a file search provider fronting index and opening files
// through platform.
func New(index driven.FileIndex, platform driven.PlatformServices) *Provider {
	return &Provider{
		index:    index,
		platform: platform,
		enabled:  true,
	}
}

// Name returns the provider's display name.
func (p *Provider) Name() string { return "FileSearch" }

// Priority returns the provider priority.
func (p *Provider) Priority() int { return 90 }

// IsEnabled reports whether the backing index can serve queries.
func (p *Provider) IsEnabled() bool {
	return p.enabled && p.index != nil && p.index.Available()
}

// Search queries the index and scores matches by name relevance,
// recency and size.
func (p *Provider) Search(ctx context.Context, query string) ([]domain.SearchResult, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return []domain.SearchResult{}, nil
	}
	if p.index == nil {
		return []domain.SearchResult{}, nil
	}

	entries, err := p.index.Query(ctx, trimmed, maxResults)
	if err != nil {
		return nil, fmt.Errorf("%w: file index query: %w", domain.ErrProviderFailure, err)
	}

	results := make([]domain.SearchResult, 0, len(entries))
	for _, entry := range entries {
		results = append(results, buildResult(entry, ScoreFile(entry, trimmed, time.Now())))
	}

	logger.Debug("File index returned %d entries", len(results))
	return results, nil
}

// Execute opens the file with the OS default handler. A file that has
// disappeared since the search is reported, not opened.
func (p *Provider) Execute(_ context.Context, result *domain.SearchResult) error {
	if result.Type != domain.ResultTypeFile {
		return fmt.Errorf("%w: %s", domain.ErrWrongResultType, result.Type)
	}
	if result.Action.Type != domain.ActionOpenFile {
		return fmt.Errorf("%w: file results carry open_file actions", domain.ErrInvalidInput)
	}

	path := result.Action.Path
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("%w: file %s", domain.ErrNotFound, path)
	}
	if p.platform == nil {
		return fmt.Errorf("%w: no platform services wired", domain.ErrPlatformUnsupported)
	}

	logger.Info("Opening file: %s", path)
	if err := p.platform.OpenPath(path); err != nil {
		return fmt.Errorf("open file: %w", err)
	}
	return nil
}

// Initialize prepares the provider.
func (p *Provider) Initialize(context.Context) error {
	if p.IsEnabled() {
		logger.Debug("File search provider initialized with native index")
	} else {
		logger.Info("No native file index available; file search disabled")
	}
	return nil
}

// Shutdown releases resources.
func (p *Provider) Shutdown(context.Context) error { return nil }

// ScoreFile computes a file's baseline relevance: name match quality
// plus a recency bonus, minus a penalty for huge files.
func ScoreFile(entry driven.FileEntry, query string, now time.Time) float64 {
	score := 50.0

	nameLower := strings.ToLower(entry.Name)
	queryLower := strings.ToLower(query)
	if nameLower == queryLower {
		score += 100
	} else if strings.HasPrefix(nameLower, queryLower) {
		score += 50
	} else if strings.Contains(nameLower, queryLower) {
		score += 25
	}

	age := now.Sub(entry.Modified)
	switch {
	case age < 7*24*time.Hour:
		score += 10
	case age < 30*24*time.Hour:
		score += 5
	}

	if entry.Size > 1<<30 {
		score -= 5
	}

	return score
}

func buildResult(entry driven.FileEntry, score float64) domain.SearchResult {
	return domain.SearchResult{
		ID:       "file:" + entry.Path,
		Title:    entry.Name,
		Subtitle: filepath.Dir(entry.Path),
		Icon:     domain.FileIcon(entry.Path),
		Type:     domain.ResultTypeFile,
		Score:    score,
		Metadata: map[string]any{
			"path":     entry.Path,
			"size":     entry.Size,
			"modified": entry.Modified.Format(time.RFC3339),
		},
		Action: domain.OpenFileAction(entry.Path),
	}
}
