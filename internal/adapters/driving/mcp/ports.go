package mcp

import (
	"github.com/CodeZobac/better.finder/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Engine answers queries and executes results.
	Engine driving.SearchEngine

	// Settings exposes launcher settings as a resource. Optional.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Engine == nil {
		return ErrMissingEngine
	}
	return nil
}
