package driven

import (
	"context"
	"time"
)

// FileIndex abstracts a native file-search index (OS search service,
// locate database, third-party indexer). The file search provider fronts
// whichever implementation the platform offers.
type FileIndex interface {
	// Available reports whether the index can serve queries on this host.
	Available() bool

	// Query returns entries whose name matches term, at most limit.
	Query(ctx context.Context, term string, limit int) ([]FileEntry, error)
}

// FileEntry is one file surfaced by a file index.
type FileEntry struct {
	// Path is the absolute file path.
	Path string

	// Name is the base name.
	Name string

	// Size is the file size in bytes.
	Size int64

	// Modified is the last modification time.
	Modified time.Time
}
