// Package exec implements the OS-facing driven ports by shelling out to
// the platform's standard tools: xdg-open / open / cmd start for files
// and URLs, systemctl and friends for system commands, and the system
// clipboard via atotto/clipboard.
package exec

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/atotto/clipboard"

	"github.com/CodeZobac/better.finder/internal/core/domain"
	"github.com/CodeZobac/better.finder/internal/core/ports/driven"
	"github.com/CodeZobac/better.finder/internal/logger"
)

// Ensure Platform implements the interface.
var _ driven.PlatformServices = (*Platform)(nil)

// runFunc starts a detached command. Swapped in tests.
type runFunc func(name string, args ...string) error

// Platform is the real OS implementation of driven.PlatformServices.
type Platform struct {
	goos string
	run  runFunc
}

// New creates platform services for the current OS.
func New() *Platform {
	return &Platform{
		goos: runtime.GOOS,
		run:  startDetached,
	}
}

// startDetached launches a command without waiting for it: opened
// files and applications outlive the finder process.
func startDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	// Reap the child when it exits so it never lingers as a zombie.
	go cmd.Wait() //nolint:errcheck
	return nil
}

// OpenPath opens a file or directory with the OS default handler.
func (p *Platform) OpenPath(path string) error {
	if path == "" {
		return fmt.Errorf("%w: empty path", domain.ErrInvalidInput)
	}
	return p.open(path)
}

// LaunchApp starts an application given its executable or launcher path.
func (p *Platform) LaunchApp(path string) error {
	if path == "" {
		return fmt.Errorf("%w: empty application path", domain.ErrInvalidInput)
	}

	switch p.goos {
	case "linux":
		// .desktop entries need the desktop launcher; plain executables
		// start directly.
		if isDesktopEntry(path) {
			if _, err := exec.LookPath("gtk-launch"); err == nil {
				return p.run("gtk-launch", desktopEntryID(path))
			}
			return p.run("xdg-open", path)
		}
		return p.run(path)
	case "darwin":
		return p.run("open", "-a", path)
	case "windows":
		return p.run("cmd", "/c", "start", "", path)
	default:
		return fmt.Errorf("%w: launch on %s", domain.ErrPlatformUnsupported, p.goos)
	}
}

// OpenURL opens a URL in the default browser.
func (p *Platform) OpenURL(url string) error {
	if url == "" {
		return fmt.Errorf("%w: empty url", domain.ErrInvalidInput)
	}
	return p.open(url)
}

// RunCommand runs an arbitrary command with arguments.
func (p *Platform) RunCommand(name string, args []string) error {
	if name == "" {
		return fmt.Errorf("%w: empty command", domain.ErrInvalidInput)
	}

	// system: commands are quick actions routed through the dedicated
	// handler so their per-OS translation lives in one place.
	if cmd, ok := domain.ParseSystemCommand(name); ok {
		return p.RunSystemCommand(cmd)
	}

	logger.Debug("Running command: %s %v", name, args)
	return p.run(name, args...)
}

// RunSystemCommand performs a system-level action (lock, shutdown, ...).
func (p *Platform) RunSystemCommand(cmd domain.SystemCommand) error {
	name, args, err := p.systemCommandLine(cmd)
	if err != nil {
		return err
	}

	logger.Info("Running system command: %s -> %s %v", cmd, name, args)
	return p.run(name, args...)
}

// CopyText places text on the system clipboard.
func (p *Platform) CopyText(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrClipboardUnavailable, err)
	}
	return nil
}

// ReadText returns the current clipboard text.
func (p *Platform) ReadText() (string, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrClipboardUnavailable, err)
	}
	return text, nil
}

// open routes a path or URL to the OS default handler.
func (p *Platform) open(target string) error {
	switch p.goos {
	case "linux":
		return p.run("xdg-open", target)
	case "darwin":
		return p.run("open", target)
	case "windows":
		return p.run("cmd", "/c", "start", "", target)
	default:
		return fmt.Errorf("%w: open on %s", domain.ErrPlatformUnsupported, p.goos)
	}
}

// systemCommandLine translates a system command into the platform's
// command line.
func (p *Platform) systemCommandLine(cmd domain.SystemCommand) (string, []string, error) {
	switch p.goos {
	case "linux":
		switch cmd {
		case domain.SystemShutdown:
			return "systemctl", []string{"poweroff"}, nil
		case domain.SystemRestart:
			return "systemctl", []string{"reboot"}, nil
		case domain.SystemSleep:
			return "systemctl", []string{"suspend"}, nil
		case domain.SystemHibernate:
			return "systemctl", []string{"hibernate"}, nil
		case domain.SystemLock:
			return "loginctl", []string{"lock-session"}, nil
		case domain.SystemLogOff:
			return "loginctl", []string{"terminate-user", ""}, nil
		}
	case "darwin":
		switch cmd {
		case domain.SystemShutdown:
			return "osascript", []string{"-e", `tell app "System Events" to shut down`}, nil
		case domain.SystemRestart:
			return "osascript", []string{"-e", `tell app "System Events" to restart`}, nil
		case domain.SystemSleep:
			return "pmset", []string{"sleepnow"}, nil
		case domain.SystemLock:
			return "pmset", []string{"displaysleepnow"}, nil
		case domain.SystemLogOff:
			return "osascript", []string{"-e", `tell app "System Events" to log out`}, nil
		case domain.SystemHibernate:
			return "", nil, fmt.Errorf("%w: hibernate on darwin", domain.ErrPlatformUnsupported)
		}
	case "windows":
		switch cmd {
		case domain.SystemShutdown:
			return "shutdown", []string{"/s", "/t", "0"}, nil
		case domain.SystemRestart:
			return "shutdown", []string{"/r", "/t", "0"}, nil
		case domain.SystemHibernate:
			return "shutdown", []string{"/h"}, nil
		case domain.SystemLock:
			return "rundll32.exe", []string{"user32.dll,LockWorkStation"}, nil
		case domain.SystemLogOff:
			return "shutdown", []string{"/l"}, nil
		case domain.SystemSleep:
			return "rundll32.exe", []string{"powrprof.dll,SetSuspendState", "0,1,0"}, nil
		}
	}
	return "", nil, fmt.Errorf("%w: %s on %s", domain.ErrPlatformUnsupported, cmd, p.goos)
}
