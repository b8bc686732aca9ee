package appsearch

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/CodeZobac/better.finder/internal/core/domain"
	"github.com/CodeZobac/better.finder/internal/core/ports/driven"
	"github.com/CodeZobac/better.finder/internal/logger"
	"github.com/CodeZobac/better.finder/internal/providers"
)

// Ensure Provider implements the interface.
var _ driven.SearchProvider = (*Provider)(nil)

const (
	// maxResults caps how many applications one query returns.
	maxResults = 20

	// rescanInterval is how often the application list is rebuilt.
	rescanInterval = 5 * time.Minute
)

// Provider searches installed applications. The application list is
// scanned on Initialize and rebuilt periodically in the background.
type Provider struct {
	scanner  driven.AppScanner
	platform driven.PlatformServices

	mu   sync.RWMutex
	apps []domain.AppEntry

	rescanMu sync.Mutex
	stopCh   chan struct{}
	wg       sync.WaitGroup

	enabled bool
}

// New creates an app search provider scanning through scanner and
// launching through platform.
func New(scanner driven.AppScanner, platform driven.PlatformServices) *Provider {
	return &Provider{
		scanner:  scanner,
		platform: platform,
		enabled:  true,
	}
}

// Name returns the provider's display name.
func (p *Provider) Name() string { return "AppSearch" }

// Priority returns the provider priority.
func (p *Provider) Priority() int { return 85 }

// IsEnabled reports whether the provider is consulted.
func (p *Provider) IsEnabled() bool { return p.enabled && p.scanner != nil }

// Search matches the query against application names, best matches
// first. Acronyms work too: "vsc" finds "Visual Studio Code".
func (p *Provider) Search(_ context.Context, query string) ([]domain.SearchResult, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return []domain.SearchResult{}, nil
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	results := make([]domain.SearchResult, 0, maxResults)
	for _, app := range p.apps {
		score, ok := matchScore(trimmed, app.Name)
		if !ok {
			continue
		}
		results = append(results, buildResult(app, score))
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > maxResults {
		results = results[:maxResults]
	}

	logger.Debug("Found %d matching applications", len(results))
	return results, nil
}

// Execute launches the application.
func (p *Provider) Execute(_ context.Context, result *domain.SearchResult) error {
	if result.Type != domain.ResultTypeApplication {
		return fmt.Errorf("%w: %s", domain.ErrWrongResultType, result.Type)
	}
	if result.Action.Type != domain.ActionLaunchApp {
		return fmt.Errorf("%w: application results carry launch_app actions", domain.ErrInvalidInput)
	}
	if p.platform == nil {
		return fmt.Errorf("%w: no platform services wired", domain.ErrPlatformUnsupported)
	}

	logger.Info("Launching application: %s", result.Title)
	if err := p.platform.LaunchApp(result.Action.Path); err != nil {
		return fmt.Errorf("launch application: %w", err)
	}
	return nil
}

// Initialize scans applications and starts the periodic rescan.
func (p *Provider) Initialize(ctx context.Context) error {
	if err := p.Rescan(ctx); err != nil {
		// The rescan loop retries; starting with an empty list is
		// better than failing startup.
		logger.Warn("Initial application scan failed: %v", err)
	}
	p.startRescan()
	return nil
}

// Shutdown stops the periodic rescan.
func (p *Provider) Shutdown(context.Context) error {
	p.stopRescan()
	return nil
}

// Count returns how many applications are currently known.
func (p *Provider) Count() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.apps)
}

// Rescan rebuilds the application list now. Entries are deduplicated
// by path.
func (p *Provider) Rescan(ctx context.Context) error {
	if p.scanner == nil {
		return nil
	}

	apps, err := p.scanner.Scan(ctx)
	if err != nil {
		return fmt.Errorf("scan applications: %w", err)
	}

	seen := make(map[string]struct{}, len(apps))
	deduped := apps[:0]
	for _, app := range apps {
		if _, dup := seen[app.Path]; dup {
			continue
		}
		seen[app.Path] = struct{}{}
		deduped = append(deduped, app)
	}

	p.mu.Lock()
	p.apps = deduped
	p.mu.Unlock()

	logger.Debug("Scanned %d applications", len(deduped))
	return nil
}

// SetApps replaces the known applications. Exposed for tests.
func (p *Provider) SetApps(apps []domain.AppEntry) {
	p.mu.Lock()
	p.apps = apps
	p.mu.Unlock()
}

func (p *Provider) startRescan() {
	p.rescanMu.Lock()
	defer p.rescanMu.Unlock()

	if p.stopCh != nil || p.scanner == nil {
		return
	}
	p.stopCh = make(chan struct{})

	p.wg.Add(1)
	go p.rescanLoop(p.stopCh)
}

func (p *Provider) stopRescan() {
	p.rescanMu.Lock()
	stopCh := p.stopCh
	p.stopCh = nil
	p.rescanMu.Unlock()

	if stopCh == nil {
		return
	}
	close(stopCh)
	p.wg.Wait()
}

func (p *Provider) rescanLoop(stopCh <-chan struct{}) {
	defer p.wg.Done()

	ticker := time.NewTicker(rescanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			if err := p.Rescan(ctx); err != nil {
				logger.Warn("Application rescan failed: %v", err)
			}
			cancel()
		}
	}
}

// matchScore scores how well query matches an application name. Match
// classes are exclusive: the best one wins.
func matchScore(query, name string) (float64, bool) {
	queryLower := strings.ToLower(query)
	nameLower := strings.ToLower(name)

	switch {
	case nameLower == queryLower:
		return 100, true
	case strings.HasPrefix(nameLower, queryLower):
		return 90, true
	case strings.Contains(nameLower, queryLower):
		return 70, true
	case providers.MatchesAcronym(name, query):
		return 60, true
	case providers.ContainsInOrder(name, query):
		return 40, true
	default:
		return 0, false
	}
}

func buildResult(app domain.AppEntry, score float64) domain.SearchResult {
	subtitle := app.Description
	if subtitle == "" {
		subtitle = app.Path
	}

	metadata := map[string]any{
		"path":        app.Path,
		"is_shortcut": app.IsShortcut,
	}
	if app.Description != "" {
		metadata["description"] = app.Description
	}

	return domain.SearchResult{
		ID:       "app:" + app.Path,
		Title:    app.Name,
		Subtitle: subtitle,
		Icon:     "app",
		Type:     domain.ResultTypeApplication,
		Score:    score,
		Metadata: metadata,
		Action:   domain.LaunchAppAction(app.Path),
	}
}
