package bookmarks

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodeZobac/better.finder/internal/core/domain"
)

// newPlacesDB builds a minimal places.sqlite with the tables the
// bookmark query touches.
func newPlacesDB(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "places.sqlite")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close() //nolint:errcheck

	_, err = db.Exec(`
		CREATE TABLE moz_places (id INTEGER PRIMARY KEY, url TEXT);
		CREATE TABLE moz_bookmarks (
			id INTEGER PRIMARY KEY,
			type INTEGER,
			parent INTEGER,
			fk INTEGER,
			title TEXT
		);

		INSERT INTO moz_places (id, url) VALUES
			(1, 'https://go.dev'),
			(2, 'https://news.example.com'),
			(3, 'place:type=6&sort=14');

		-- 1=bookmark, 2=folder. Row 1 is the root, 2 a "Dev" folder.
		INSERT INTO moz_bookmarks (id, type, parent, fk, title) VALUES
			(1, 2, 0, NULL, ''),
			(2, 2, 1, NULL, 'Dev'),
			(3, 1, 2, 1, 'Go'),
			(4, 1, 1, 2, 'News'),
			(5, 1, 1, 3, 'Smart folder');
	`)
	require.NoError(t, err)
	return path
}

func TestQueryFirefoxPlaces(t *testing.T) {
	path := newPlacesDB(t)

	bookmarks, err := QueryFirefoxPlaces(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, bookmarks, 2, "place: pseudo-URLs are excluded")

	byTitle := map[string]domain.Bookmark{}
	for _, b := range bookmarks {
		byTitle[b.Title] = b
	}

	goBookmark, ok := byTitle["Go"]
	require.True(t, ok)
	assert.Equal(t, "https://go.dev", goBookmark.URL)
	assert.Equal(t, "Dev", goBookmark.Folder)
	assert.Equal(t, domain.BrowserFirefox, goBookmark.Browser)

	news, ok := byTitle["News"]
	require.True(t, ok)
	assert.Equal(t, "", news.Folder)
}

func TestQueryFirefoxPlaces_MissingDatabase(t *testing.T) {
	_, err := QueryFirefoxPlaces(context.Background(), filepath.Join(t.TempDir(), "absent.sqlite"))
	assert.Error(t, err)
}
