package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/CodeZobac/better.finder/internal/core/domain"
)

// SearchInput is the input schema for the search tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"the search query, e.g. an app name, file name, or calculation"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 10)"`
}

// SearchOutput is the output schema for the search tool.
type SearchOutput struct {
	Results []SearchResultOutput `json:"results"`
	Count   int                  `json:"count"`
}

// SearchResultOutput represents a single search result. Raw carries the
// full result JSON accepted by the execute tool.
type SearchResultOutput struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Subtitle string          `json:"subtitle,omitempty"`
	Type     string          `json:"type"`
	Score    float64         `json:"score"`
	Raw      json.RawMessage `json:"raw"`
}

// ExecuteInput is the input schema for the execute tool.
type ExecuteInput struct {
	Result json.RawMessage `json:"result" jsonschema:"a full search result as returned in the raw field of the search tool"`
}

// ExecuteOutput is the output schema for the execute tool.
type ExecuteOutput struct {
	Executed bool   `json:"executed"`
	Title    string `json:"title"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search",
		Description: "Search across applications, files, bookmarks, clipboard history, and more",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "execute",
		Description: "Execute a search result: open the file, launch the app, copy the text",
	}, s.handleExecute)
}

// handleSearch handles the search tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 10
	}

	results := s.ports.Engine.Search(ctx, input.Query)
	if len(results) > limit {
		results = results[:limit]
	}

	output := SearchOutput{
		Results: make([]SearchResultOutput, len(results)),
		Count:   len(results),
	}

	for i := range results {
		raw, err := json.Marshal(results[i])
		if err != nil {
			return nil, SearchOutput{}, fmt.Errorf("marshalling result: %w", err)
		}
		output.Results[i] = SearchResultOutput{
			ID:       results[i].ID,
			Title:    results[i].Title,
			Subtitle: results[i].Subtitle,
			Type:     string(results[i].Type),
			Score:    results[i].Score,
			Raw:      raw,
		}
	}

	return nil, output, nil
}

// handleExecute handles the execute tool invocation.
func (s *Server) handleExecute(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ExecuteInput,
) (*mcp.CallToolResult, ExecuteOutput, error) {
	if len(input.Result) == 0 {
		return nil, ExecuteOutput{}, fmt.Errorf("%w: empty result", domain.ErrInvalidInput)
	}

	var result domain.SearchResult
	if err := json.Unmarshal(input.Result, &result); err != nil {
		return nil, ExecuteOutput{}, fmt.Errorf("parsing result: %w", err)
	}

	if err := s.ports.Engine.ExecuteResult(ctx, &result); err != nil {
		return nil, ExecuteOutput{}, err
	}

	return nil, ExecuteOutput{Executed: true, Title: result.Title}, nil
}
