// Package sqlite provides the SQLite-backed recent files store.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO, enabling easy cross-compilation. The store implements both
// driven.RecentFileStore (read side, consumed by the recent files provider)
// and driven.FileAccessTracker (write side, notified by the search engine
// after a file result executes).
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory.
//
// # Data Location
//
// By default, the database is stored at ~/.betterfinder/data/finder.db
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level locking
// provided by SQLite in WAL mode.
package sqlite
