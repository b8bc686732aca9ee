package domain

import (
	"fmt"
	"time"
)

// RecentFile records a file the user opened through the finder.
type RecentFile struct {
	// Path is the absolute file path.
	Path string

	// LastAccessed is the most recent open time.
	LastAccessed time.Time

	// AccessCount is how many times the file was opened.
	AccessCount int
}

// FormatRelativeTime renders an instant as a coarse human-readable age
// relative to now: "Just now", "5 min ago", "3 hours ago", "2 days ago",
// or the date for anything older than a week.
func FormatRelativeTime(t time.Time, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "Just now"
	case d < time.Hour:
		return fmt.Sprintf("%d min ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%d hours ago", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%d days ago", int(d.Hours()/24))
	default:
		return t.Format("Jan 2, 2006")
	}
}

// FormattedTimestamp returns the file's last access as a relative time.
func (f *RecentFile) FormattedTimestamp() string {
	return FormatRelativeTime(f.LastAccessed, time.Now())
}
