package driven

import "github.com/CodeZobac/better.finder/internal/core/domain"

// PlatformServices covers everything OS-facing that executing a result
// needs: opening files and URLs, launching applications, running commands
// and touching the clipboard.
//
// Launch-style operations start a detached process and return without
// waiting for the launched program.
type PlatformServices interface {
	// OpenPath opens a file or directory with the OS default handler.
	OpenPath(path string) error

	// LaunchApp starts an application given its executable or launcher path.
	LaunchApp(path string) error

	// OpenURL opens a URL in the default browser.
	OpenURL(url string) error

	// RunCommand runs an arbitrary command with arguments.
	RunCommand(name string, args []string) error

	// RunSystemCommand performs a system-level action (lock, shutdown, ...).
	RunSystemCommand(cmd domain.SystemCommand) error

	// CopyText places text on the system clipboard.
	CopyText(text string) error

	// ReadText returns the current clipboard text.
	ReadText() (string, error)
}
