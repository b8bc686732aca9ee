package exec

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"

	"github.com/CodeZobac/better.finder/internal/core/ports/driven"
	"github.com/CodeZobac/better.finder/internal/logger"
)

// Ensure LocateIndex implements the interface.
var _ driven.FileIndex = (*LocateIndex)(nil)

// locateBinaries are the locate implementations probed, preferred
// first.
var locateBinaries = []string{"plocate", "mlocate", "locate"}

// LocateIndex fronts the locate(1) family of file databases as a
// driven.FileIndex. Availability is probed once: hosts without a
// locate database fall back to the walker provider.
type LocateIndex struct {
	probeOnce sync.Once
	binary    string
}

// NewLocateIndex creates a file index backed by the locate database.
func NewLocateIndex() *LocateIndex {
	return &LocateIndex{}
}

// Available reports whether a locate binary is installed.
func (l *LocateIndex) Available() bool {
	l.probeOnce.Do(func() {
		for _, name := range locateBinaries {
			if _, err := exec.LookPath(name); err == nil {
				l.binary = name
				logger.Debug("Using %s as file index", name)
				return
			}
		}
		logger.Debug("No locate binary found; file index unavailable")
	})
	return l.binary != ""
}

// Query runs locate and stats each hit for size and modification time.
// Paths that vanished since the database was built are dropped.
func (l *LocateIndex) Query(ctx context.Context, term string, limit int) ([]driven.FileEntry, error) {
	if !l.Available() {
		return nil, fmt.Errorf("no locate binary installed")
	}
	if strings.TrimSpace(term) == "" {
		return []driven.FileEntry{}, nil
	}
	if limit <= 0 {
		limit = 20
	}

	// --basename matches the file name, not the whole path, mirroring
	// what a launcher query means.
	cmd := exec.CommandContext(ctx, l.binary,
		"--ignore-case", "--basename", "--limit", fmt.Sprint(limit*2), "--", term)
	out, err := cmd.Output()
	if err != nil {
		// locate exits 1 on zero matches.
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 && len(out) == 0 {
			return []driven.FileEntry{}, nil
		}
		return nil, fmt.Errorf("running %s: %w", l.binary, err)
	}

	return parseLocateOutput(out, limit), nil
}

// parseLocateOutput stats each returned path and keeps plain files that
// still exist, up to limit.
func parseLocateOutput(out []byte, limit int) []driven.FileEntry {
	entries := make([]driven.FileEntry, 0, limit)

	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		if len(entries) == limit {
			break
		}
		path := strings.TrimSpace(scanner.Text())
		if path == "" {
			continue
		}

		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		entries = append(entries, driven.FileEntry{
			Path:     path,
			Name:     info.Name(),
			Size:     info.Size(),
			Modified: info.ModTime(),
		})
	}
	return entries
}
