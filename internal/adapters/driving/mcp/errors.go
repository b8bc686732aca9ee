// Package mcp provides an MCP (Model Context Protocol) server adapter for
// the launcher. It lets AI assistants search and act on the same providers
// the palette uses.
package mcp

import "errors"

// ErrMissingEngine is returned when the search engine is not provided.
var ErrMissingEngine = errors.New("mcp: search engine is required")
