// Package tui provides the interactive search palette. It implements a
// driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/CodeZobac/better.finder/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces the palette needs.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Engine answers queries and executes results.
	Engine driving.SearchEngine

	// Settings supplies presentation preferences: theme, result count,
	// debounce delay. Optional; defaults apply when nil.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(engine driving.SearchEngine, settings driving.SettingsService) *Ports {
	return &Ports{
		Engine:   engine,
		Settings: settings,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Engine == nil {
		return ErrMissingEngine
	}
	return nil
}
