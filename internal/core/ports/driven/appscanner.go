package driven

import (
	"context"

	"github.com/CodeZobac/better.finder/internal/core/domain"
)

// AppScanner enumerates applications installed for the current user.
type AppScanner interface {
	// Scan walks the platform's application roots and returns the
	// launchable entries it finds, deduplicated by path.
	Scan(ctx context.Context) ([]domain.AppEntry, error)
}
