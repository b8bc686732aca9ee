package bookmarks

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/CodeZobac/better.finder/internal/core/domain"
)

// chromeNode is one node of the Chrome bookmarks JSON tree.
type chromeNode struct {
	Type     string       `json:"type"`
	Name     string       `json:"name"`
	URL      string       `json:"url"`
	Children []chromeNode `json:"children"`
}

// chromeFile is the top-level shape of a Chrome Bookmarks file.
type chromeFile struct {
	Roots map[string]chromeNode `json:"roots"`
}

// chromeRootOrder fixes the iteration order over the bookmark roots so
// loads are deterministic.
var chromeRootOrder = []string{"bookmark_bar", "other", "synced"}

// ParseChromeBookmarks decodes a Chrome-family Bookmarks JSON document
// into a flat bookmark list. Folder paths are slash-joined from the
// root down; the root names themselves are not part of the path.
func ParseChromeBookmarks(data []byte, browser domain.Browser) ([]domain.Bookmark, error) {
	var file chromeFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse %s bookmarks: %w", browser, err)
	}

	var bookmarks []domain.Bookmark
	for _, root := range chromeRootOrder {
		node, ok := file.Roots[root]
		if !ok {
			continue
		}
		collectChromeNode(node.Children, "", browser, &bookmarks)
	}
	return bookmarks, nil
}

func collectChromeNode(nodes []chromeNode, folder string, browser domain.Browser, out *[]domain.Bookmark) {
	for _, node := range nodes {
		switch node.Type {
		case "url":
			if node.URL == "" {
				continue
			}
			*out = append(*out, domain.Bookmark{
				Title:   node.Name,
				URL:     node.URL,
				Folder:  folder,
				Browser: browser,
			})
		case "folder":
			child := node.Name
			if folder != "" {
				child = folder + "/" + node.Name
			}
			collectChromeNode(node.Children, child, browser, out)
		}
	}
}

// chromeBookmarkFile locates the Bookmarks file of one Chrome-family
// browser for the current user. Returns "" when the browser has no
// profile on this host.
func chromeBookmarkFile(browser domain.Browser) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	var candidates []string
	switch runtime.GOOS {
	case "windows":
		local := os.Getenv("LOCALAPPDATA")
		if local == "" {
			local = filepath.Join(home, "AppData", "Local")
		}
		switch browser {
		case domain.BrowserChrome:
			candidates = append(candidates, filepath.Join(local, "Google", "Chrome", "User Data", "Default", "Bookmarks"))
		case domain.BrowserChromium:
			candidates = append(candidates, filepath.Join(local, "Chromium", "User Data", "Default", "Bookmarks"))
		case domain.BrowserEdge:
			candidates = append(candidates, filepath.Join(local, "Microsoft", "Edge", "User Data", "Default", "Bookmarks"))
		}
	case "darwin":
		support := filepath.Join(home, "Library", "Application Support")
		switch browser {
		case domain.BrowserChrome:
			candidates = append(candidates, filepath.Join(support, "Google", "Chrome", "Default", "Bookmarks"))
		case domain.BrowserChromium:
			candidates = append(candidates, filepath.Join(support, "Chromium", "Default", "Bookmarks"))
		case domain.BrowserEdge:
			candidates = append(candidates, filepath.Join(support, "Microsoft Edge", "Default", "Bookmarks"))
		}
	default:
		config := os.Getenv("XDG_CONFIG_HOME")
		if config == "" {
			config = filepath.Join(home, ".config")
		}
		switch browser {
		case domain.BrowserChrome:
			candidates = append(candidates, filepath.Join(config, "google-chrome", "Default", "Bookmarks"))
		case domain.BrowserChromium:
			candidates = append(candidates, filepath.Join(config, "chromium", "Default", "Bookmarks"))
		case domain.BrowserEdge:
			candidates = append(candidates, filepath.Join(config, "microsoft-edge", "Default", "Bookmarks"))
		}
	}

	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}

// loadChromeBookmarks reads and parses one Chrome-family browser's
// bookmarks. A missing profile yields an empty list.
func loadChromeBookmarks(browser domain.Browser) ([]domain.Bookmark, error) {
	path := chromeBookmarkFile(browser)
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s bookmarks: %w", browser, err)
	}
	return ParseChromeBookmarks(data, browser)
}

// domainOf extracts the host part of a URL for favicon lookup.
func domainOf(rawURL string) string {
	rest, ok := strings.CutPrefix(rawURL, "https://")
	if !ok {
		rest, ok = strings.CutPrefix(rawURL, "http://")
		if !ok {
			return ""
		}
	}
	if i := strings.IndexAny(rest, "/?#"); i >= 0 {
		rest = rest[:i]
	}
	return rest
}
