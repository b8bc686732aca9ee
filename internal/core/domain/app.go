package domain

// AppEntry is an installed application discovered by the app scanner.
type AppEntry struct {
	// Name is the application's display name.
	Name string

	// Path is the launchable path (executable, .desktop entry, shortcut).
	Path string

	// Description is an optional one-line summary.
	Description string

	// IsShortcut reports whether Path is a shortcut/launcher file rather
	// than the executable itself.
	IsShortcut bool
}
