package exec

import (
	"bufio"
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/CodeZobac/better.finder/internal/core/domain"
	"github.com/CodeZobac/better.finder/internal/core/ports/driven"
	"github.com/CodeZobac/better.finder/internal/logger"
)

// Ensure AppScanner implements the interface.
var _ driven.AppScanner = (*AppScanner)(nil)

// scanDepth bounds how deep the scanner descends below each root.
const scanDepth = 2

// AppScanner discovers installed applications in the platform's
// standard locations: .desktop entries in XDG data dirs on Linux,
// /Applications bundles on macOS, Start Menu shortcuts on Windows.
type AppScanner struct {
	goos  string
	roots []string
}

// NewAppScanner creates a scanner over the current platform's
// application roots.
func NewAppScanner() *AppScanner {
	return &AppScanner{
		goos:  runtime.GOOS,
		roots: applicationRoots(runtime.GOOS),
	}
}

// Scan walks the application roots concurrently and returns the
// launchable entries found, deduplicated by path. A missing or
// unreadable root is skipped, not an error.
func (s *AppScanner) Scan(ctx context.Context) ([]domain.AppEntry, error) {
	results := make([][]domain.AppEntry, len(s.roots))

	g, ctx := errgroup.WithContext(ctx)
	for i, root := range s.roots {
		g.Go(func() error {
			results[i] = s.scanRoot(ctx, root)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var apps []domain.AppEntry
	for _, entries := range results {
		for _, app := range entries {
			if _, dup := seen[app.Path]; dup {
				continue
			}
			seen[app.Path] = struct{}{}
			apps = append(apps, app)
		}
	}

	logger.Debug("Application scan found %d entries across %d roots", len(apps), len(s.roots))
	return apps, nil
}

func (s *AppScanner) scanRoot(ctx context.Context, root string) []domain.AppEntry {
	var apps []domain.AppEntry

	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if ctx.Err() != nil {
			return fs.SkipAll
		}

		if d.IsDir() {
			if path != root && depthBelow(root, path) >= scanDepth {
				return fs.SkipDir
			}
			// macOS .app bundles are directories; record and do not
			// descend into them.
			if s.goos == "darwin" && strings.HasSuffix(path, ".app") {
				apps = append(apps, domain.AppEntry{
					Name: strings.TrimSuffix(filepath.Base(path), ".app"),
					Path: path,
				})
				return fs.SkipDir
			}
			return nil
		}

		if app, ok := s.entryFromFile(path); ok {
			apps = append(apps, app)
		}
		return nil
	})

	return apps
}

func (s *AppScanner) entryFromFile(path string) (domain.AppEntry, bool) {
	switch s.goos {
	case "windows":
		if strings.EqualFold(filepath.Ext(path), ".lnk") {
			return domain.AppEntry{
				Name:       strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
				Path:       path,
				IsShortcut: true,
			}, true
		}
		return domain.AppEntry{}, false
	default:
		if !isDesktopEntry(path) {
			return domain.AppEntry{}, false
		}
		return parseDesktopEntry(path)
	}
}

// parseDesktopEntry extracts the display fields of a freedesktop
// .desktop file. Hidden and NoDisplay entries are rejected.
func parseDesktopEntry(path string) (domain.AppEntry, bool) {
	f, err := os.Open(path)
	if err != nil {
		return domain.AppEntry{}, false
	}
	defer f.Close() //nolint:errcheck

	app := domain.AppEntry{
		Path:       path,
		IsShortcut: true,
	}

	inDesktopGroup := false
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "[Desktop Entry]":
			inDesktopGroup = true
			continue
		case strings.HasPrefix(line, "["):
			// Fields after the first group belong to actions, not the app.
			if inDesktopGroup {
				inDesktopGroup = false
			}
			continue
		}
		if !inDesktopGroup {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		switch key {
		case "Name":
			if app.Name == "" {
				app.Name = value
			}
		case "Comment":
			if app.Description == "" {
				app.Description = value
			}
		case "NoDisplay", "Hidden":
			if value == "true" {
				return domain.AppEntry{}, false
			}
		case "Type":
			if value != "Application" {
				return domain.AppEntry{}, false
			}
		}
	}

	if app.Name == "" {
		return domain.AppEntry{}, false
	}
	return app, true
}

// applicationRoots returns the directories holding launchable
// applications on each platform.
func applicationRoots(goos string) []string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}

	switch goos {
	case "windows":
		var roots []string
		if programData := os.Getenv("ProgramData"); programData != "" {
			roots = append(roots, filepath.Join(programData, "Microsoft", "Windows", "Start Menu", "Programs"))
		}
		if appData := os.Getenv("APPDATA"); appData != "" {
			roots = append(roots, filepath.Join(appData, "Microsoft", "Windows", "Start Menu", "Programs"))
		}
		return roots
	case "darwin":
		roots := []string{"/Applications", "/System/Applications"}
		if home != "" {
			roots = append(roots, filepath.Join(home, "Applications"))
		}
		return roots
	default:
		roots := []string{"/usr/share/applications", "/usr/local/share/applications"}
		dataHome := os.Getenv("XDG_DATA_HOME")
		if dataHome == "" && home != "" {
			dataHome = filepath.Join(home, ".local", "share")
		}
		if dataHome != "" {
			roots = append(roots, filepath.Join(dataHome, "applications"))
		}
		return roots
	}
}

// isDesktopEntry reports whether path is a freedesktop launcher file.
func isDesktopEntry(path string) bool {
	return strings.HasSuffix(path, ".desktop")
}

// desktopEntryID is the launcher id gtk-launch expects: the file name
// without its extension.
func desktopEntryID(path string) string {
	return strings.TrimSuffix(filepath.Base(path), ".desktop")
}

// depthBelow counts how many levels path sits below root.
func depthBelow(root, path string) int {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return 0
	}
	return strings.Count(rel, string(filepath.Separator)) + 1
}
