package clipboard

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/CodeZobac/better.finder/internal/core/domain"
	"github.com/CodeZobac/better.finder/internal/core/ports/driven"
	"github.com/CodeZobac/better.finder/internal/logger"
)

// Ensure Provider implements the interface.
var _ driven.SearchProvider = (*Provider)(nil)

const (
	// maxHistory caps how many clipboard entries are kept.
	maxHistory = 20

	// maxResults caps how many entries one query returns.
	maxResults = 10

	// pollInterval is how often the monitor samples the clipboard.
	pollInterval = 500 * time.Millisecond

	// queryPrefix gates clipboard search: only "clip:" queries touch
	// the history, so pasted text never leaks into ordinary results.
	queryPrefix = "clip:"
)

// Provider keeps a rolling history of clipboard contents and serves it
// for "clip:"-prefixed queries.
type Provider struct {
	platform driven.PlatformServices
	store    driven.ClipboardStore

	mu      sync.RWMutex
	history []domain.ClipboardItem

	monitorMu sync.Mutex
	stopCh    chan struct{}
	wg        sync.WaitGroup

	enabled bool
}

// New creates a clipboard history provider. The platform supplies
// clipboard reads and writes; store persists history across runs and
// may be nil for an in-memory-only history.
func New(platform driven.PlatformServices, store driven.ClipboardStore) *Provider {
	return &Provider{
		platform: platform,
		store:    store,
		enabled:  true,
	}
}

// Name returns the provider's display name.
func (p *Provider) Name() string { return "Clipboard History" }

// Priority returns the provider priority.
func (p *Provider) Priority() int { return 60 }

// IsEnabled reports whether the provider is consulted.
func (p *Provider) IsEnabled() bool { return p.enabled && p.platform != nil }

// Search serves queries carrying the "clip:" prefix. A bare prefix
// lists the most recent entries; anything after it filters the history
// by substring, case-insensitively. All other queries yield nothing.
func (p *Provider) Search(_ context.Context, query string) ([]domain.SearchResult, error) {
	trimmed := strings.TrimSpace(query)
	lowered := strings.ToLower(trimmed)
	if !strings.HasPrefix(lowered, queryPrefix) {
		return []domain.SearchResult{}, nil
	}
	term := strings.TrimSpace(trimmed[len(queryPrefix):])

	p.mu.RLock()
	defer p.mu.RUnlock()

	results := make([]domain.SearchResult, 0, maxResults)
	for _, item := range p.history {
		if len(results) == maxResults {
			break
		}

		var score float64
		if term == "" {
			score = float64(70 - 2*len(results))
		} else {
			if !strings.Contains(strings.ToLower(item.Content), strings.ToLower(term)) {
				continue
			}
			score = float64(80 - 2*len(results))
		}
		results = append(results, buildResult(item, score))
	}

	logger.Debug("Clipboard history matched %d entries", len(results))
	return results, nil
}

// Execute restores the entry's content to the clipboard.
func (p *Provider) Execute(_ context.Context, result *domain.SearchResult) error {
	if result.Type != domain.ResultTypeClipboard {
		return fmt.Errorf("%w: %s", domain.ErrWrongResultType, result.Type)
	}
	if result.Action.Type != domain.ActionCopyToClipboard {
		return fmt.Errorf("%w: clipboard results carry copy_to_clipboard actions", domain.ErrInvalidInput)
	}
	if p.platform == nil {
		return domain.ErrClipboardUnavailable
	}

	logger.Info("Restoring clipboard entry %s", result.ID)
	if err := p.platform.CopyText(result.Action.Content); err != nil {
		return fmt.Errorf("restore clipboard: %w", err)
	}
	return nil
}

// Initialize loads persisted history and starts the poll monitor.
func (p *Provider) Initialize(context.Context) error {
	if p.store != nil {
		items, err := p.store.Load()
		if err != nil {
			return fmt.Errorf("load clipboard history: %w", err)
		}
		p.mu.Lock()
		p.history = items
		p.mu.Unlock()
		logger.Debug("Loaded %d clipboard history entries", len(items))
	}

	p.startMonitor()
	return nil
}

// Shutdown stops the monitor and persists the history.
func (p *Provider) Shutdown(context.Context) error {
	p.stopMonitor()

	if p.store == nil {
		return nil
	}

	p.mu.RLock()
	items := make([]domain.ClipboardItem, len(p.history))
	copy(items, p.history)
	p.mu.RUnlock()

	if err := p.store.Save(items); err != nil {
		return fmt.Errorf("save clipboard history: %w", err)
	}
	logger.Debug("Saved %d clipboard history entries", len(items))
	return nil
}

// History returns a copy of the current history, newest first.
func (p *Provider) History() []domain.ClipboardItem {
	p.mu.RLock()
	defer p.mu.RUnlock()
	items := make([]domain.ClipboardItem, len(p.history))
	copy(items, p.history)
	return items
}

// Capture records content at the head of the history. Empty content and
// repeats of the newest entry are skipped; the history is trimmed to
// its cap.
func (p *Provider) Capture(content string) {
	if strings.TrimSpace(content) == "" {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.history) > 0 && p.history[0].Content == content {
		return
	}

	item := domain.ClipboardItem{
		ID:        uuid.NewString(),
		Content:   content,
		Timestamp: time.Now(),
	}
	p.history = append([]domain.ClipboardItem{item}, p.history...)
	if len(p.history) > maxHistory {
		p.history = p.history[:maxHistory]
	}
}

// startMonitor begins polling the clipboard. Safe to call once per
// Initialize; a second call while running is a no-op.
func (p *Provider) startMonitor() {
	p.monitorMu.Lock()
	defer p.monitorMu.Unlock()

	if p.stopCh != nil || p.platform == nil {
		return
	}
	p.stopCh = make(chan struct{})

	p.wg.Add(1)
	go p.monitor(p.stopCh)
	logger.Debug("Clipboard monitor started")
}

// stopMonitor halts polling and waits for the monitor to exit.
func (p *Provider) stopMonitor() {
	p.monitorMu.Lock()
	stopCh := p.stopCh
	p.stopCh = nil
	p.monitorMu.Unlock()

	if stopCh == nil {
		return
	}
	close(stopCh)
	p.wg.Wait()
	logger.Debug("Clipboard monitor stopped")
}

func (p *Provider) monitor(stopCh <-chan struct{}) {
	defer p.wg.Done()

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			content, err := p.platform.ReadText()
			if err != nil {
				// Clipboard access can fail transiently (headless
				// session, locked desktop); keep polling.
				continue
			}
			p.Capture(content)
		}
	}
}

func buildResult(item domain.ClipboardItem, score float64) domain.SearchResult {
	return domain.SearchResult{
		ID:       "clipboard:" + item.ID,
		Title:    item.Preview(),
		Subtitle: "Copied " + domain.FormatRelativeTime(item.Timestamp, time.Now()),
		Icon:     "clipboard",
		Type:     domain.ResultTypeClipboard,
		Score:    score,
		Metadata: map[string]any{
			"item_id":   item.ID,
			"timestamp": item.Timestamp.Format(time.RFC3339),
		},
		Action: domain.CopyToClipboardAction(item.Content),
	}
}
