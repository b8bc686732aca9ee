package domain

// Browser identifies the browser a bookmark came from.
type Browser string

// Supported browsers.
const (
	BrowserChrome   Browser = "Chrome"
	BrowserChromium Browser = "Chromium"
	BrowserEdge     Browser = "Edge"
	BrowserFirefox  Browser = "Firefox"
)

// String returns the string representation.
func (b Browser) String() string {
	return string(b)
}

// Bookmark is a browser bookmark surfaced by the bookmarks provider.
type Bookmark struct {
	// Title is the bookmark's display name.
	Title string

	// URL is the bookmarked address.
	URL string

	// Folder is the slash-joined folder path inside the browser's
	// bookmark tree (empty for top-level bookmarks).
	Folder string

	// Browser is where the bookmark was read from.
	Browser Browser
}

