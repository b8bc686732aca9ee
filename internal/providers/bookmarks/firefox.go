package bookmarks

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/CodeZobac/better.finder/internal/core/domain"
)

// QueryFirefoxPlaces reads bookmarks out of a Firefox places.sqlite
// database. Only http(s) bookmarks are returned; folder paths are
// slash-joined from the bookmark tree.
func QueryFirefoxPlaces(ctx context.Context, dbPath string) ([]domain.Bookmark, error) {
	// immutable opens the database read-only without touching Firefox's
	// own lock files.
	dsn := "file:" + dbPath + "?immutable=1&mode=ro"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open places database: %w", err)
	}
	defer db.Close() //nolint:errcheck

	rows, err := db.QueryContext(ctx, `
		SELECT b.id, b.parent, b.type, COALESCE(b.title, ''), COALESCE(p.url, '')
		FROM moz_bookmarks b
		LEFT JOIN moz_places p ON b.fk = p.id
	`)
	if err != nil {
		return nil, fmt.Errorf("query places database: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	type node struct {
		id     int64
		parent int64
		typ    int
		title  string
		url    string
	}

	nodes := make(map[int64]node)
	for rows.Next() {
		var n node
		if err := rows.Scan(&n.id, &n.parent, &n.typ, &n.title, &n.url); err != nil {
			return nil, fmt.Errorf("scan bookmark row: %w", err)
		}
		nodes[n.id] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read bookmark rows: %w", err)
	}

	// Walk each bookmark's ancestor chain to build its folder path.
	// Type 1 is a bookmark, type 2 a folder.
	folderPath := func(parent int64) string {
		var parts []string
		for depth := 0; depth < 32; depth++ {
			n, ok := nodes[parent]
			if !ok || n.typ != 2 {
				break
			}
			if n.title != "" {
				parts = append([]string{n.title}, parts...)
			}
			parent = n.parent
		}
		return strings.Join(parts, "/")
	}

	var bookmarks []domain.Bookmark
	for _, n := range nodes {
		if n.typ != 1 {
			continue
		}
		if !strings.HasPrefix(n.url, "http://") && !strings.HasPrefix(n.url, "https://") {
			continue
		}
		bookmarks = append(bookmarks, domain.Bookmark{
			Title:   n.title,
			URL:     n.url,
			Folder:  folderPath(n.parent),
			Browser: domain.BrowserFirefox,
		})
	}
	return bookmarks, nil
}

// firefoxPlacesFile locates the places.sqlite of the default Firefox
// profile. Returns "" when Firefox has no profile on this host.
func firefoxPlacesFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	var profilesDir string
	switch runtime.GOOS {
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData == "" {
			appData = filepath.Join(home, "AppData", "Roaming")
		}
		profilesDir = filepath.Join(appData, "Mozilla", "Firefox", "Profiles")
	case "darwin":
		profilesDir = filepath.Join(home, "Library", "Application Support", "Firefox", "Profiles")
	default:
		profilesDir = filepath.Join(home, ".mozilla", "firefox")
	}

	entries, err := os.ReadDir(profilesDir)
	if err != nil {
		return ""
	}

	// Prefer the default-release profile, fall back to any profile
	// carrying a places database.
	var fallback string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		places := filepath.Join(profilesDir, entry.Name(), "places.sqlite")
		if _, err := os.Stat(places); err != nil {
			continue
		}
		if strings.HasSuffix(entry.Name(), ".default-release") || strings.HasSuffix(entry.Name(), ".default") {
			return places
		}
		if fallback == "" {
			fallback = places
		}
	}
	return fallback
}

// loadFirefoxBookmarks reads the default profile's bookmarks. A missing
// profile yields an empty list.
func loadFirefoxBookmarks(ctx context.Context) ([]domain.Bookmark, error) {
	path := firefoxPlacesFile()
	if path == "" {
		return nil, nil
	}
	return QueryFirefoxPlaces(ctx, path)
}
