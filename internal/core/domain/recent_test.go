package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestFormatRelativeTime tests each age bucket
func TestFormatRelativeTime(t *testing.T) {
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		instant  time.Time
		expected string
	}{
		{
			name:     "seconds ago is just now",
			instant:  now.Add(-30 * time.Second),
			expected: "Just now",
		},
		{
			name:     "same instant is just now",
			instant:  now,
			expected: "Just now",
		},
		{
			name:     "minutes ago",
			instant:  now.Add(-5 * time.Minute),
			expected: "5 min ago",
		},
		{
			name:     "just under an hour",
			instant:  now.Add(-59 * time.Minute),
			expected: "59 min ago",
		},
		{
			name:     "hours ago",
			instant:  now.Add(-3 * time.Hour),
			expected: "3 hours ago",
		},
		{
			name:     "just under a day",
			instant:  now.Add(-23 * time.Hour),
			expected: "23 hours ago",
		},
		{
			name:     "days ago",
			instant:  now.Add(-2 * 24 * time.Hour),
			expected: "2 days ago",
		},
		{
			name:     "just under a week",
			instant:  now.Add(-6 * 24 * time.Hour),
			expected: "6 days ago",
		},
		{
			name:     "older than a week falls back to the date",
			instant:  now.Add(-10 * 24 * time.Hour),
			expected: "Mar 5, 2025",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatRelativeTime(tt.instant, now)
			assert.Equal(t, tt.expected, result)
		})
	}
}

// TestRecentFile_FormattedTimestamp tests the method against the wall clock
func TestRecentFile_FormattedTimestamp(t *testing.T) {
	f := RecentFile{
		Path:         "/home/u/notes.txt",
		LastAccessed: time.Now().Add(-10 * time.Minute),
		AccessCount:  3,
	}

	got := f.FormattedTimestamp()
	assert.True(t, strings.HasSuffix(got, "min ago"), "got %q", got)
}
