// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// SearchEngine is the central service: it owns the provider registry,
// the parallel fan-out and ranking pipeline, and the result cache.
// SettingsService persists user preferences through a ConfigStore.
package services
