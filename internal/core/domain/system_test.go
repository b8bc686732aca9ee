package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSystemCommand_IsValid tests all valid and invalid system commands
func TestSystemCommand_IsValid(t *testing.T) {
	for _, cmd := range AllSystemCommands() {
		assert.True(t, cmd.IsValid(), "Command %s should be valid", cmd)
	}

	assert.False(t, SystemCommand("").IsValid())
	assert.False(t, SystemCommand("reboot").IsValid())
	assert.False(t, SystemCommand("logoff").IsValid(), "underscore form is canonical")
}

// TestAllSystemCommands tests complete list of system commands
func TestAllSystemCommands(t *testing.T) {
	commands := AllSystemCommands()

	require.Len(t, commands, 6)
	assert.Contains(t, commands, SystemShutdown)
	assert.Contains(t, commands, SystemRestart)
	assert.Contains(t, commands, SystemLock)
	assert.Contains(t, commands, SystemSleep)
	assert.Contains(t, commands, SystemHibernate)
	assert.Contains(t, commands, SystemLogOff)
}

// TestSystemCommand_DisplayName tests human-readable names
func TestSystemCommand_DisplayName(t *testing.T) {
	tests := []struct {
		name     string
		command  SystemCommand
		expected string
	}{
		{
			name:     "shutdown display name",
			command:  SystemShutdown,
			expected: "Shutdown",
		},
		{
			name:     "restart display name",
			command:  SystemRestart,
			expected: "Restart",
		},
		{
			name:     "lock display name",
			command:  SystemLock,
			expected: "Lock Screen",
		},
		{
			name:     "sleep display name",
			command:  SystemSleep,
			expected: "Sleep",
		},
		{
			name:     "hibernate display name",
			command:  SystemHibernate,
			expected: "Hibernate",
		},
		{
			name:     "log off display name",
			command:  SystemLogOff,
			expected: "Log Off",
		},
		{
			name:     "unknown returns Unknown",
			command:  SystemCommand("reboot"),
			expected: unknownDescription,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.command.DisplayName()
			assert.Equal(t, tt.expected, result)
		})
	}
}

// TestSystemCommand_Icon tests the icon mapping
func TestSystemCommand_Icon(t *testing.T) {
	assert.Equal(t, "power-off", SystemShutdown.Icon())
	assert.Equal(t, "refresh-cw", SystemRestart.Icon())
	assert.Equal(t, "lock", SystemLock.Icon())
	assert.Equal(t, "moon", SystemSleep.Icon())
	assert.Equal(t, "archive", SystemHibernate.Icon())
	assert.Equal(t, "log-out", SystemLogOff.Icon())
	assert.Equal(t, "zap", SystemCommand("reboot").Icon())
}

// TestSystemCommand_RequiresConfirmation tests destructive command gating
func TestSystemCommand_RequiresConfirmation(t *testing.T) {
	tests := []struct {
		name     string
		command  SystemCommand
		expected bool
	}{
		{
			name:     "shutdown requires confirmation",
			command:  SystemShutdown,
			expected: true,
		},
		{
			name:     "restart requires confirmation",
			command:  SystemRestart,
			expected: true,
		},
		{
			name:     "log off requires confirmation",
			command:  SystemLogOff,
			expected: true,
		},
		{
			name:     "lock does not require confirmation",
			command:  SystemLock,
			expected: false,
		},
		{
			name:     "sleep does not require confirmation",
			command:  SystemSleep,
			expected: false,
		},
		{
			name:     "hibernate does not require confirmation",
			command:  SystemHibernate,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.command.RequiresConfirmation()
			assert.Equal(t, tt.expected, result)
		})
	}
}

// TestSystemCommand_CommandString tests the namespaced command form
func TestSystemCommand_CommandString(t *testing.T) {
	assert.Equal(t, "system:shutdown", SystemShutdown.CommandString())
	assert.Equal(t, "system:log_off", SystemLogOff.CommandString())
}

// TestParseSystemCommand tests round-tripping through the command string
func TestParseSystemCommand(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    SystemCommand
		wantOK  bool
	}{
		{
			name:   "valid shutdown",
			input:  "system:shutdown",
			want:   SystemShutdown,
			wantOK: true,
		},
		{
			name:   "valid log off",
			input:  "system:log_off",
			want:   SystemLogOff,
			wantOK: true,
		},
		{
			name:   "missing prefix",
			input:  "shutdown",
			wantOK: false,
		},
		{
			name:   "unknown command behind prefix",
			input:  "system:reboot",
			wantOK: false,
		},
		{
			name:   "empty string",
			input:  "",
			wantOK: false,
		},
		{
			name:   "prefix only",
			input:  "system:",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseSystemCommand(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

// TestParseSystemCommand_Roundtrip tests every command parses back
func TestParseSystemCommand_Roundtrip(t *testing.T) {
	for _, cmd := range AllSystemCommands() {
		got, ok := ParseSystemCommand(cmd.CommandString())
		require.True(t, ok, "Command %s should parse back", cmd)
		assert.Equal(t, cmd, got)
	}
}
