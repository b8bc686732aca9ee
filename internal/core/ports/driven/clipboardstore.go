package driven

import "github.com/CodeZobac/better.finder/internal/core/domain"

// ClipboardStore persists clipboard history across runs.
type ClipboardStore interface {
	// Load reads the persisted history, newest first.
	// A missing store yields an empty slice, not an error.
	Load() ([]domain.ClipboardItem, error)

	// Save writes the full history, replacing what was stored.
	Save(items []domain.ClipboardItem) error
}
