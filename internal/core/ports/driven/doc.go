// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// (and the provider packages) implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - SearchProvider: One source of search results; the engine fans out over all of them
//   - PlatformServices: OS-facing operations (open, launch, clipboard, system commands)
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These back individual providers and can be absent when the provider is
// disabled or the platform has no implementation:
//
//   - FileIndex: Native file-search index. Without it, the bounded home-directory walker serves file queries.
//   - AppScanner: Installed-application enumeration for the app search provider.
//   - RecentFileStore: Recently-opened file persistence (SQLite).
//   - FileAccessTracker: Post-execution file access notification. The recent-file store implements it.
//   - ClipboardStore: Clipboard history persistence (JSON).
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or provider package
package driven
