package bookmarks

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"
)

const (
	// faviconCacheSize bounds how many favicons are kept in memory.
	faviconCacheSize = 256

	// maxFaviconBytes rejects oversized icon downloads.
	maxFaviconBytes = 64 * 1024

	// faviconTimeout bounds one favicon download.
	faviconTimeout = 3 * time.Second
)

// FaviconFetcher downloads site favicons and caches them as data URIs.
// Fetches are rate limited so scrolling a long bookmark list never
// floods the network; failures are cached as empty entries to avoid
// re-fetching dead hosts.
type FaviconFetcher struct {
	client  *http.Client
	limiter *rate.Limiter

	mu    sync.Mutex
	cache *lru.Cache[string, string]
}

// NewFaviconFetcher creates a fetcher allowing two downloads per second
// with small bursts.
func NewFaviconFetcher() *FaviconFetcher {
	cache, err := lru.New[string, string](faviconCacheSize)
	if err != nil {
		// Only reachable with a non-positive size constant.
		panic(fmt.Sprintf("failed to create favicon cache: %v", err))
	}

	return &FaviconFetcher{
		client:  &http.Client{Timeout: faviconTimeout},
		limiter: rate.NewLimiter(rate.Limit(2), 4),
		cache:   cache,
	}
}

// Fetch returns the favicon of host as a data URI, or "" when the host
// has none reachable. Results, including failures, are cached.
func (f *FaviconFetcher) Fetch(ctx context.Context, host string) string {
	if host == "" {
		return ""
	}

	f.mu.Lock()
	cached, ok := f.cache.Get(host)
	f.mu.Unlock()
	if ok {
		return cached
	}

	icon := f.download(ctx, host)

	f.mu.Lock()
	f.cache.Add(host, icon)
	f.mu.Unlock()
	return icon
}

func (f *FaviconFetcher) download(ctx context.Context, host string) string {
	if err := f.limiter.Wait(ctx); err != nil {
		return ""
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "https://"+host+"/favicon.ico", nil)
	if err != nil {
		return ""
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return ""
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return ""
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxFaviconBytes))
	if err != nil || len(data) == 0 {
		return ""
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/x-icon"
	}
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
