package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/CodeZobac/better.finder/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/CodeZobac/better.finder/internal/core/domain"
	"github.com/CodeZobac/better.finder/internal/core/ports/driven"
	"github.com/CodeZobac/better.finder/internal/logger"
)

// Ensure Store implements the driven ports.
var (
	_ driven.RecentFileStore   = (*Store)(nil)
	_ driven.FileAccessTracker = (*Store)(nil)
)

// maxRecentEntries caps how many recent files are retained; older
// entries are pruned on each insert.
const maxRecentEntries = 50

// Store is the SQLite-backed recent files store. It doubles as the
// engine's FileAccessTracker, so every opened file lands here without
// the providers knowing about it.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.betterfinder/data/finder.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".betterfinder", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "finder.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close() //nolint:errcheck
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// RecordAccess inserts the path or bumps its access count and
// timestamp, then prunes the table to its retention cap.
func (s *Store) RecordAccess(ctx context.Context, path string) error {
	if path == "" {
		return fmt.Errorf("%w: empty path", domain.ErrInvalidInput)
	}

	now := time.Now().UTC()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO recent_files (path, last_accessed, access_count)
		VALUES (?, ?, 1)
		ON CONFLICT(path) DO UPDATE SET
			last_accessed = excluded.last_accessed,
			access_count = access_count + 1
	`, path, now)
	if err != nil {
		return fmt.Errorf("recording access: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		DELETE FROM recent_files WHERE id NOT IN (
			SELECT id FROM recent_files
			ORDER BY last_accessed DESC
			LIMIT ?
		)
	`, maxRecentEntries)
	if err != nil {
		return fmt.Errorf("pruning recent files: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, most recently accessed first.
func (s *Store) Recent(ctx context.Context, limit int) ([]domain.RecentFile, error) {
	if limit <= 0 {
		limit = maxRecentEntries
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT path, last_accessed, access_count
		FROM recent_files
		ORDER BY last_accessed DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying recent files: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var files []domain.RecentFile
	for rows.Next() {
		var file domain.RecentFile
		if err := rows.Scan(&file.Path, &file.LastAccessed, &file.AccessCount); err != nil {
			return nil, fmt.Errorf("scanning recent file: %w", err)
		}
		files = append(files, file)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading recent files: %w", err)
	}
	return files, nil
}

// RemoveMissing drops entries whose path no longer exists on disk.
// Returns the number of entries removed.
func (s *Store) RemoveMissing(ctx context.Context) (int, error) {
	files, err := s.Recent(ctx, maxRecentEntries)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, file := range files {
		if _, err := os.Stat(file.Path); err == nil {
			continue
		}
		if _, err := s.db.ExecContext(ctx,
			`DELETE FROM recent_files WHERE path = ?`, file.Path); err != nil {
			return removed, fmt.Errorf("removing missing file: %w", err)
		}
		removed++
	}
	return removed, nil
}

// TrackAccess implements driven.FileAccessTracker. Errors are logged,
// not returned: tracking is best-effort and must never surface as an
// execution failure.
func (s *Store) TrackAccess(path string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.RecordAccess(ctx, path); err != nil {
		logger.Warn("Failed to track file access for %s: %v", path, err)
	}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	// Sort and run migrations
	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_recent_files.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		// Read and execute migration
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(
			"INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}
