// Package driving defines interfaces that external actors (TUI, CLI, MCP)
// use to interact with core services. These are the "driving" ports in
// hexagonal architecture terminology - they drive the application.
//
// Implementations of these interfaces live in internal/core/services.
// Assembly-time operations (provider registration, tracker wiring) are
// methods on the concrete services and are done in the composition root
// before the services are handed to adapters behind these interfaces.
package driving
