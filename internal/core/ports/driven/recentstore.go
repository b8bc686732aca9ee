package driven

import (
	"context"

	"github.com/CodeZobac/better.finder/internal/core/domain"
)

// RecentFileStore persists the files opened through the finder.
type RecentFileStore interface {
	// RecordAccess inserts the path or bumps its access count and
	// timestamp, then prunes the store to its retention cap.
	RecordAccess(ctx context.Context, path string) error

	// Recent returns up to limit entries, most recently accessed first.
	Recent(ctx context.Context, limit int) ([]domain.RecentFile, error)

	// RemoveMissing drops entries whose path no longer exists on disk.
	// Returns the number of entries removed.
	RemoveMissing(ctx context.Context) (int, error)

	// Close releases the underlying database.
	Close() error
}
