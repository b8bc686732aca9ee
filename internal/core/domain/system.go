package domain

import "strings"

// SystemCommand identifies a system-level quick action.
type SystemCommand string

// All system commands.
const (
	SystemShutdown  SystemCommand = "shutdown"
	SystemRestart   SystemCommand = "restart"
	SystemLock      SystemCommand = "lock"
	SystemSleep     SystemCommand = "sleep"
	SystemHibernate SystemCommand = "hibernate"
	SystemLogOff    SystemCommand = "log_off"
)

// commandPrefix namespaces system commands inside ExecuteCommand actions.
const commandPrefix = "system:"

// AllSystemCommands returns every system command, in display order.
func AllSystemCommands() []SystemCommand {
	return []SystemCommand{
		SystemShutdown,
		SystemRestart,
		SystemLock,
		SystemSleep,
		SystemHibernate,
		SystemLogOff,
	}
}

// IsValid returns true if the command is recognised.
func (c SystemCommand) IsValid() bool {
	switch c {
	case SystemShutdown, SystemRestart, SystemLock,
		SystemSleep, SystemHibernate, SystemLogOff:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (c SystemCommand) String() string {
	return string(c)
}

// DisplayName returns the human-readable name for the command.
func (c SystemCommand) DisplayName() string {
	switch c {
	case SystemShutdown:
		return "Shutdown"
	case SystemRestart:
		return "Restart"
	case SystemLock:
		return "Lock Screen"
	case SystemSleep:
		return "Sleep"
	case SystemHibernate:
		return "Hibernate"
	case SystemLogOff:
		return "Log Off"
	default:
		return unknownDescription
	}
}

// Description returns a one-line explanation of what the command does.
func (c SystemCommand) Description() string {
	switch c {
	case SystemShutdown:
		return "Shut down the computer"
	case SystemRestart:
		return "Restart the computer"
	case SystemLock:
		return "Lock the screen"
	case SystemSleep:
		return "Put the computer to sleep"
	case SystemHibernate:
		return "Hibernate the computer"
	case SystemLogOff:
		return "Log off the current user"
	default:
		return unknownDescription
	}
}

// Icon returns the icon name associated with the command.
func (c SystemCommand) Icon() string {
	switch c {
	case SystemShutdown:
		return "power-off"
	case SystemRestart:
		return "refresh-cw"
	case SystemLock:
		return "lock"
	case SystemSleep:
		return "moon"
	case SystemHibernate:
		return "archive"
	case SystemLogOff:
		return "log-out"
	default:
		return "zap"
	}
}

// RequiresConfirmation reports whether the presentation layer should ask
// before executing this command.
func (c SystemCommand) RequiresConfirmation() bool {
	switch c {
	case SystemShutdown, SystemRestart, SystemLogOff:
		return true
	default:
		return false
	}
}

// CommandString returns the namespaced command carried by an
// ExecuteCommand action, e.g. "system:shutdown".
func (c SystemCommand) CommandString() string {
	return commandPrefix + string(c)
}

// ParseSystemCommand extracts the SystemCommand from a namespaced
// command string. The second return is false when the string is not a
// valid system command.
func ParseSystemCommand(command string) (SystemCommand, bool) {
	rest, ok := strings.CutPrefix(command, commandPrefix)
	if !ok {
		return "", false
	}
	cmd := SystemCommand(rest)
	return cmd, cmd.IsValid()
}
