// Package domain defines the core business entities for the finder.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - SearchResult: A ranked hit produced by a provider
//   - ResultAction: What executing a result does (tagged variant)
//   - RecentFile / ClipboardItem / Bookmark / AppEntry: provider entities
//   - AppSettings: user-facing configuration
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
