package domain

import "time"

// maxPreviewRunes bounds clipboard preview titles.
const maxPreviewRunes = 100

// ClipboardItem is one captured clipboard entry.
type ClipboardItem struct {
	// ID uniquely identifies the item.
	ID string `json:"id"`

	// Content is the full clipboard text.
	Content string `json:"content"`

	// Timestamp is when the content was captured.
	Timestamp time.Time `json:"timestamp"`
}

// Preview returns the content truncated for display, with whole runes
// preserved and an ellipsis appended when truncated.
func (c *ClipboardItem) Preview() string {
	runes := []rune(c.Content)
	if len(runes) <= maxPreviewRunes {
		return c.Content
	}
	return string(runes[:maxPreviewRunes]) + "..."
}
