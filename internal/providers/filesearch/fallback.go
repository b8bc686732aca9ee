package filesearch

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/CodeZobac/better.finder/internal/core/domain"
	"github.com/CodeZobac/better.finder/internal/core/ports/driven"
	"github.com/CodeZobac/better.finder/internal/logger"
)

// Ensure FallbackProvider implements the interface.
var _ driven.SearchProvider = (*FallbackProvider)(nil)

const (
	// maxWalkDepth bounds how deep the fallback walker descends below
	// its root.
	maxWalkDepth = 4

	// maxWalkEntries bounds how many directory entries one search visits.
	maxWalkEntries = 10000

	// maxFallbackResults caps what one fallback search returns.
	maxFallbackResults = 15
)

// FallbackProvider is a bounded home-directory walker used when no
// native file index is available. Slower and shallower than a real
// index, but always present.
type FallbackProvider struct {
	root     string
	platform driven.PlatformServices
	enabled  bool
}

// NewFallback creates a fallback file search walking root. An empty
// root defaults to the user's home directory.
func NewFallback(root string, platform driven.PlatformServices) *FallbackProvider {
	if root == "" {
		if home, err := os.UserHomeDir(); err == nil {
			root = home
		}
	}
	return &FallbackProvider{
		root:     root,
		platform: platform,
		enabled:  true,
	}
}

// Name returns the provider's display name.
func (p *FallbackProvider) Name() string { return "FallbackFileSearch" }

// Priority returns the provider priority, just below the indexed file
// search so the index wins execute dispatch when both are registered.
func (p *FallbackProvider) Priority() int { return 85 }

// IsEnabled reports whether the provider is consulted.
func (p *FallbackProvider) IsEnabled() bool { return p.enabled && p.root != "" }

// Search walks the root looking for file names containing the query,
// case-insensitively. The walk is bounded in depth and entry count, so
// a huge home directory degrades to partial results instead of a stall.
func (p *FallbackProvider) Search(ctx context.Context, query string) ([]domain.SearchResult, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" || p.root == "" {
		return []domain.SearchResult{}, nil
	}
	queryLower := strings.ToLower(trimmed)

	var results []domain.SearchResult
	visited := 0

	err := filepath.WalkDir(p.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable directories are skipped, not fatal.
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if ctx.Err() != nil {
			return fs.SkipAll
		}

		visited++
		if visited > maxWalkEntries || len(results) >= maxFallbackResults {
			return fs.SkipAll
		}

		name := d.Name()
		if d.IsDir() {
			if path == p.root {
				return nil
			}
			if strings.HasPrefix(name, ".") || walkDepth(p.root, path) >= maxWalkDepth {
				return fs.SkipDir
			}
			return nil
		}

		if strings.HasPrefix(name, ".") {
			return nil
		}
		if !strings.Contains(strings.ToLower(name), queryLower) {
			return nil
		}

		score := float64(50 - 2*len(results))
		results = append(results, p.buildResult(path, name, score))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: walk %s: %w", domain.ErrProviderFailure, p.root, err)
	}

	logger.Debug("Fallback walker visited %d entries, matched %d", visited, len(results))
	return results, nil
}

// Execute opens the file with the OS default handler.
func (p *FallbackProvider) Execute(_ context.Context, result *domain.SearchResult) error {
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
func (p *FallbackProvider) Initialize(context.Context) error {
	logger.Debug("Fallback file search initialized over %s", p.root)
	return nil
}

// Shutdown releases resources.
func (p *FallbackProvider) Shutdown(context.Context) error { return nil }

func (p *FallbackProvider) buildResult(path, name string, score float64) domain.SearchResult {
	var size int64
	var modified time.Time
	if info, err := os.Stat(path); err == nil {
		size = info.Size()
		modified = info.ModTime()
	}

	return buildResult(driven.FileEntry{
		Path:     path,
		Name:     name,
		Size:     size,
		Modified: modified,
	}, score)
}

// walkDepth counts how many levels path sits below root.
func walkDepth(root, path string) int {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return 0
	}
	return strings.Count(rel, string(filepath.Separator)) + 1
}
