// Package providers contains the search provider implementations.
// Each subpackage serves one result source (calculator, applications,
// bookmarks, ...) behind the driven.SearchProvider port and is
// registered with the search engine at startup.
//
// The package itself holds the matching helpers shared by providers
// that score free-text queries against entry names.
package providers
