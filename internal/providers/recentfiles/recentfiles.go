package recentfiles

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/CodeZobac/better.finder/internal/core/domain"
	"github.com/CodeZobac/better.finder/internal/core/ports/driven"
	"github.com/CodeZobac/better.finder/internal/logger"
)

// Ensure Provider implements the interface.
var _ driven.SearchProvider = (*Provider)(nil)

// maxResults caps how many recent files are suggested.
const maxResults = 5

// Provider suggests recently opened files when the search field is
// empty. Non-empty queries yield nothing: typed queries belong to the
// file search provider.
type Provider struct {
	store    driven.RecentFileStore
	platform driven.PlatformServices
	enabled  bool
}

// New creates a recent files provider reading from store and opening
// files through platform.
func New(store driven.RecentFileStore, platform driven.PlatformServices) *Provider {
	return &Provider{
		store:    store,
		platform: platform,
		enabled:  true,
	}
}

// Name returns the provider's display name.
func (p *Provider) Name() string { return "Recent Files" }

// Priority returns the provider priority.
func (p *Provider) Priority() int { return 90 }

// IsEnabled reports whether the provider is consulted.
func (p *Provider) IsEnabled() bool { return p.enabled && p.store != nil }

// Search returns the most recently opened files, newest first, for the
// empty query only. Entries whose file has disappeared are skipped.
func (p *Provider) Search(ctx context.Context, query string) ([]domain.SearchResult, error) {
	if strings.TrimSpace(query) != "" {
		return []domain.SearchResult{}, nil
	}
	if p.store == nil {
		return []domain.SearchResult{}, nil
	}

	recent, err := p.store.Recent(ctx, maxResults)
	if err != nil {
		return nil, fmt.Errorf("%w: load recent files: %w", domain.ErrProviderFailure, err)
	}

	results := make([]domain.SearchResult, 0, len(recent))
	for _, file := range recent {
		if _, err := os.Stat(file.Path); err != nil {
			logger.Debug("Skipping missing recent file: %s", file.Path)
			continue
		}
		results = append(results, buildResult(file, len(results)))
	}

	logger.Debug("Returning %d recent files", len(results))
	return results, nil
}

// Execute opens the file with the OS default handler.
func (p *Provider) Execute(_ context.Context, result *domain.SearchResult) error {
	if result.Type != domain.ResultTypeRecentFile {
		return fmt.Errorf("%w: %s", domain.ErrWrongResultType, result.Type)
	}
	if result.Action.Type != domain.ActionOpenFile {
		return fmt.Errorf("%w: recent file results carry open_file actions", domain.ErrInvalidInput)
	}

	path := result.Action.Path
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("%w: file %s", domain.ErrNotFound, path)
	}
	if p.platform == nil {
		return fmt.Errorf("%w: no platform services wired", domain.ErrPlatformUnsupported)
	}

	logger.Info("Opening recent file: %s", path)
	if err := p.platform.OpenPath(path); err != nil {
		return fmt.Errorf("open recent file: %w", err)
	}
	return nil
}

// Initialize sweeps entries whose file no longer exists.
func (p *Provider) Initialize(ctx context.Context) error {
	if p.store == nil {
		return nil
	}

	removed, err := p.store.RemoveMissing(ctx)
	if err != nil {
		return fmt.Errorf("clean recent files: %w", err)
	}
	if removed > 0 {
		logger.Info("Removed %d missing recent files", removed)
	}
	logger.Debug("Recent files provider initialized")
	return nil
}

// Shutdown releases resources. The store is owned by the host and
// closed there.
func (p *Provider) Shutdown(context.Context) error { return nil }

func buildResult(file domain.RecentFile, index int) domain.SearchResult {
	// Newer entries score higher so ranking preserves recency order.
	score := float64(95 - 2*index)

	return domain.SearchResult{
		ID:       "recent:" + file.Path,
		Title:    filepath.Base(file.Path),
		Subtitle: fmt.Sprintf("%s • %s", filepath.Dir(file.Path), file.FormattedTimestamp()),
		Icon:     domain.FileIcon(file.Path),
		Type:     domain.ResultTypeRecentFile,
		Score:    score,
		Metadata: map[string]any{
			"path":         file.Path,
			"access_count": file.AccessCount,
		},
		Action: domain.OpenFileAction(file.Path),
	}
}
