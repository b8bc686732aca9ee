package bookmarks

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/errgroup"

	"github.com/CodeZobac/better.finder/internal/core/domain"
	"github.com/CodeZobac/better.finder/internal/core/ports/driven"
	"github.com/CodeZobac/better.finder/internal/logger"
)

// Ensure Provider implements the interface.
var _ driven.SearchProvider = (*Provider)(nil)

const (
	// maxBookmarks caps how many bookmarks are held across all browsers.
	maxBookmarks = 1000

	// maxResults caps how many bookmarks one query returns.
	maxResults = 10

	// refreshInterval is how often bookmarks are reloaded regardless of
	// file events.
	refreshInterval = 5 * time.Minute
)

// loadFunc loads all bookmarks. Swapped in tests.
type loadFunc func(ctx context.Context) ([]domain.Bookmark, error)

// Provider searches browser bookmarks from Chrome-family JSON files and
// Firefox's places database. Bookmarks are loaded up front and
// refreshed periodically and on file change.
type Provider struct {
	platform driven.PlatformServices
	favicons *FaviconFetcher
	load     loadFunc

	mu        sync.RWMutex
	bookmarks []domain.Bookmark

	refreshMu sync.Mutex
	stopCh    chan struct{}
	wg        sync.WaitGroup

	enabled bool
}

// New creates a bookmarks provider opening URLs through platform.
func New(platform driven.PlatformServices) *Provider {
	return &Provider{
		platform: platform,
		favicons: NewFaviconFetcher(),
		load:     loadAllBookmarks,
		enabled:  true,
	}
}

// Name returns the provider's display name.
func (p *Provider) Name() string { return "Bookmarks" }

// Priority returns the provider priority.
func (p *Provider) Priority() int { return 50 }

// IsEnabled reports whether the provider is consulted.
func (p *Provider) IsEnabled() bool { return p.enabled }

// Search matches the query against bookmark titles and URLs, best
// matches first.
func (p *Provider) Search(_ context.Context, query string) ([]domain.SearchResult, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return []domain.SearchResult{}, nil
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	results := make([]domain.SearchResult, 0, maxResults)
	for _, bookmark := range p.bookmarks {
		score, ok := matchScore(trimmed, bookmark)
		if !ok {
			continue
		}
		results = append(results, buildResult(bookmark, score))
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > maxResults {
		results = results[:maxResults]
	}

	logger.Debug("Found %d matching bookmarks", len(results))
	return results, nil
}

// Execute opens the bookmark in the default browser.
func (p *Provider) Execute(_ context.Context, result *domain.SearchResult) error {
	if result.Type != domain.ResultTypeBookmark {
		return fmt.Errorf("%w: %s", domain.ErrWrongResultType, result.Type)
	}
	if result.Action.Type != domain.ActionOpenURL {
		return fmt.Errorf("%w: bookmark results carry open_url actions", domain.ErrInvalidInput)
	}
	if p.platform == nil {
		return fmt.Errorf("%w: no platform services wired", domain.ErrPlatformUnsupported)
	}

	logger.Info("Opening bookmark: %s", result.Action.URL)
	if err := p.platform.OpenURL(result.Action.URL); err != nil {
		return fmt.Errorf("open bookmark: %w", err)
	}
	return nil
}

// Initialize loads bookmarks and starts the background refresh.
func (p *Provider) Initialize(ctx context.Context) error {
	if err := p.Refresh(ctx); err != nil {
		// Partial or failed loads leave an empty list; the refresh loop
		// retries later.
		logger.Warn("Initial bookmark load failed: %v", err)
	}
	p.startRefresh()
	return nil
}

// Shutdown stops the background refresh.
func (p *Provider) Shutdown(context.Context) error {
	p.stopRefresh()
	return nil
}

// Count returns how many bookmarks are currently loaded.
func (p *Provider) Count() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.bookmarks)
}

// Favicon returns the cached or freshly fetched favicon for a
// bookmark's site as a data URI, or "" when unavailable. Intended for
// the presentation layer; search results carry the generic icon name
// so searching never waits on the network.
func (p *Provider) Favicon(ctx context.Context, bookmarkURL string) string {
	return p.favicons.Fetch(ctx, domainOf(bookmarkURL))
}

// Refresh reloads bookmarks from every browser now.
func (p *Provider) Refresh(ctx context.Context) error {
	bookmarks, err := p.load(ctx)
	if err != nil {
		return err
	}
	if len(bookmarks) > maxBookmarks {
		bookmarks = bookmarks[:maxBookmarks]
	}

	p.mu.Lock()
	p.bookmarks = bookmarks
	p.mu.Unlock()

	logger.Debug("Loaded %d bookmarks", len(bookmarks))
	return nil
}

// SetBookmarks replaces the loaded bookmarks. Exposed for tests.
func (p *Provider) SetBookmarks(bookmarks []domain.Bookmark) {
	p.mu.Lock()
	p.bookmarks = bookmarks
	p.mu.Unlock()
}

// loadAllBookmarks reads every browser concurrently. One browser
// failing does not lose the others' bookmarks.
func loadAllBookmarks(ctx context.Context) ([]domain.Bookmark, error) {
	var (
		mu  sync.Mutex
		all []domain.Bookmark
	)
	collect := func(bookmarks []domain.Bookmark, err error, browser domain.Browser) error {
		if err != nil {
			logger.Warn("Loading %s bookmarks failed: %v", browser, err)
			return nil
		}
		mu.Lock()
		all = append(all, bookmarks...)
		mu.Unlock()
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, browser := range []domain.Browser{domain.BrowserChrome, domain.BrowserChromium, domain.BrowserEdge} {
		g.Go(func() error {
			bookmarks, err := loadChromeBookmarks(browser)
			return collect(bookmarks, err, browser)
		})
	}
	g.Go(func() error {
		bookmarks, err := loadFirefoxBookmarks(ctx)
		return collect(bookmarks, err, domain.BrowserFirefox)
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return all, nil
}

// startRefresh begins the periodic and file-triggered reloads.
func (p *Provider) startRefresh() {
	p.refreshMu.Lock()
	defer p.refreshMu.Unlock()

	if p.stopCh != nil {
		return
	}
	p.stopCh = make(chan struct{})

	watcher := newBookmarkWatcher()

	p.wg.Add(1)
	go p.refreshLoop(p.stopCh, watcher)
}

// stopRefresh halts the reload loop and waits for it to exit.
func (p *Provider) stopRefresh() {
	p.refreshMu.Lock()
	stopCh := p.stopCh
	p.stopCh = nil
	p.refreshMu.Unlock()

	if stopCh == nil {
		return
	}
	close(stopCh)
	p.wg.Wait()
}

func (p *Provider) refreshLoop(stopCh <-chan struct{}, watcher *fsnotify.Watcher) {
	defer p.wg.Done()
	if watcher != nil {
		defer watcher.Close() //nolint:errcheck
	}

	ticker := time.NewTicker(refreshInterval)
	defer ticker.Stop()

	var events <-chan fsnotify.Event
	var watchErrs <-chan error
	if watcher != nil {
		events = watcher.Events
		watchErrs = watcher.Errors
	}

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			p.refreshQuietly()
		case event, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				logger.Debug("Bookmark file changed: %s", event.Name)
				p.refreshQuietly()
			}
		case err, ok := <-watchErrs:
			if !ok {
				watchErrs = nil
				continue
			}
			logger.Warn("Bookmark watcher error: %v", err)
		}
	}
}

func (p *Provider) refreshQuietly() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := p.Refresh(ctx); err != nil {
		logger.Warn("Bookmark refresh failed: %v", err)
	}
}

// newBookmarkWatcher watches every known bookmark file. Returns nil
// when no file exists or the watcher cannot start; the periodic refresh
// still covers those hosts.
func newBookmarkWatcher() *fsnotify.Watcher {
	var paths []string
	for _, browser := range []domain.Browser{domain.BrowserChrome, domain.BrowserChromium, domain.BrowserEdge} {
		if path := chromeBookmarkFile(browser); path != "" {
			paths = append(paths, path)
		}
	}
	if path := firefoxPlacesFile(); path != "" {
		paths = append(paths, path)
	}
	if len(paths) == 0 {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		logger.Warn("Bookmark watcher unavailable: %v", err)
		return nil
	}

	watched := 0
	for _, path := range paths {
		if err := watcher.Add(path); err != nil {
			logger.Debug("Cannot watch bookmark file %s: %v", path, err)
			continue
		}
		watched++
	}
	if watched == 0 {
		watcher.Close() //nolint:errcheck
		return nil
	}

	logger.Debug("Watching %d bookmark files", watched)
	return watcher
}

// matchScore scores how well query matches a bookmark. Match classes
// are exclusive: the best one wins. URL matches rank below any title
// match.
func matchScore(query string, bookmark domain.Bookmark) (float64, bool) {
	queryLower := strings.ToLower(query)
	titleLower := strings.ToLower(bookmark.Title)
	urlLower := strings.ToLower(bookmark.URL)

	switch {
	case titleLower == queryLower:
		return 100, true
	case strings.HasPrefix(titleLower, queryLower):
		return 90, true
	case strings.Contains(titleLower, queryLower):
		return 70, true
	case strings.Contains(urlLower, queryLower):
		return 50, true
	default:
		return 0, false
	}
}

func buildResult(bookmark domain.Bookmark, score float64) domain.SearchResult {
	subtitle := bookmark.URL
	if bookmark.Folder != "" {
		subtitle = bookmark.URL + " • " + bookmark.Folder
	}

	return domain.SearchResult{
		ID:       fmt.Sprintf("bookmark:%s:%s", bookmark.Browser, bookmark.URL),
		Title:    bookmark.Title,
		Subtitle: subtitle,
		Icon:     "bookmark",
		Type:     domain.ResultTypeBookmark,
		Score:    score,
		Metadata: map[string]any{
			"url":     bookmark.URL,
			"folder":  bookmark.Folder,
			"browser": bookmark.Browser.String(),
		},
		Action: domain.OpenURLAction(bookmark.URL),
	}
}
