// Package jsonfile provides JSON-file-backed implementations of driven
// port interfaces for small datasets that do not warrant a database.
package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/CodeZobac/better.finder/internal/core/domain"
	"github.com/CodeZobac/better.finder/internal/core/ports/driven"
)

// Ensure ClipboardStore implements the interface.
var _ driven.ClipboardStore = (*ClipboardStore)(nil)

// ClipboardStore persists clipboard history as a JSON file.
type ClipboardStore struct {
	mu       sync.Mutex
	filePath string
}

// NewClipboardStore creates a clipboard store in dataDir. If dataDir is
// empty, defaults to ~/.betterfinder/data/clipboard_history.json.
func NewClipboardStore(dataDir string) (*ClipboardStore, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".betterfinder", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &ClipboardStore{
		filePath: filepath.Join(dataDir, "clipboard_history.json"),
	}, nil
}

// Load reads the persisted history, newest first. A missing file yields
// an empty history, not an error.
func (s *ClipboardStore) Load() ([]domain.ClipboardItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.ClipboardItem{}, nil
		}
		return nil, fmt.Errorf("reading clipboard history: %w", err)
	}

	var items []domain.ClipboardItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parsing clipboard history: %w", err)
	}
	return items, nil
}

// Save writes the full history, replacing what was stored. Clipboard
// contents are sensitive, so the file is written with user-only
// permissions.
func (s *ClipboardStore) Save(items []domain.ClipboardItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if items == nil {
		items = []domain.ClipboardItem{}
	}

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding clipboard history: %w", err)
	}

	if err := os.WriteFile(s.filePath, data, 0600); err != nil {
		return fmt.Errorf("writing clipboard history: %w", err)
	}
	return nil
}

// Path returns the history file path.
func (s *ClipboardStore) Path() string {
	return s.filePath
}
