package services

import (
	"fmt"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/CodeZobac/better.finder/internal/core/domain"
)

// Result cache sizing.
const (
	defaultCacheCapacity = 100
	defaultCacheTTL      = 5 * time.Second
)

// cacheEntry pairs cached results with their creation time.
type cacheEntry struct {
	results   []domain.SearchResult
	timestamp time.Time
}

// ResultCache is a TTL-bounded LRU cache of search results, keyed by the
// sanitized query. Reading an entry refreshes its recency; entries older
// than the TTL are dropped lazily on access. Safe for concurrent use.
type ResultCache struct {
	mu  sync.RWMutex
	lru *lru.Cache[string, *cacheEntry]
	ttl time.Duration
}

// NewResultCache creates a cache holding up to capacity entries that
// expire ttl after insertion. Non-positive arguments fall back to the
// defaults (100 entries, 5s).
func NewResultCache(capacity int, ttl time.Duration) *ResultCache {
	if capacity <= 0 {
		capacity = defaultCacheCapacity
	}
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}

	cache, err := lru.New[string, *cacheEntry](capacity)
	if err != nil {
		// This should never happen with valid size parameter
		panic(fmt.Sprintf("failed to create LRU cache: %v", err))
	}

	return &ResultCache{
		lru: cache,
		ttl: ttl,
	}
}

// Get returns the cached results for key, or false on a miss.
// Expired entries count as misses and are removed. The returned slice is
// a copy; callers may mutate it freely.
func (c *ResultCache) Get(key string) ([]domain.SearchResult, bool) {
	now := time.Now()

	c.mu.RLock()
	entry, found := c.lru.Get(key)

	if !found {
		c.mu.RUnlock()
		return nil, false
	}

	// Check expiry while holding the read lock to avoid a race with Put.
	if now.Sub(entry.timestamp) > c.ttl {
		c.mu.RUnlock()

		// Remove expired entry - need write lock
		c.mu.Lock()
		c.lru.Remove(key)
		c.mu.Unlock()
		return nil, false
	}

	// Copy while still holding the read lock so the entry cannot change
	// under us.
	results := make([]domain.SearchResult, len(entry.results))
	copy(results, entry.results)
	c.mu.RUnlock()

	return results, true
}

// Put stores results under key, evicting the least recently used entry
// when the cache is full. The slice is copied on the way in.
func (c *ResultCache) Put(key string, results []domain.SearchResult) {
	stored := make([]domain.SearchResult, len(results))
	copy(stored, results)

	c.mu.Lock()
	c.lru.Add(key, &cacheEntry{
		results:   stored,
		timestamp: time.Now(),
	})
	c.mu.Unlock()
}

// Invalidate removes a single entry.
func (c *ResultCache) Invalidate(key string) {
	c.mu.Lock()
	c.lru.Remove(key)
	c.mu.Unlock()
}

// InvalidateAll empties the cache.
func (c *ResultCache) InvalidateAll() {
	c.mu.Lock()
	c.lru.Purge()
	c.mu.Unlock()
}

// Len returns the number of live entries, including any that have
// expired but not yet been swept.
func (c *ResultCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lru.Len()
}

// IsEmpty reports whether the cache holds no entries.
func (c *ResultCache) IsEmpty() bool {
	return c.Len() == 0
}
