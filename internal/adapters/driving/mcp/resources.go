package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// uriScheme is the custom URI scheme for launcher resources.
const uriScheme = "finder://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for the registered providers.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "providers",
		Name:        "providers",
		Description: "Registered search providers with priority and enabled state",
		MIMEType:    "application/json",
	}, s.handleProvidersResource)

	// Static resource for the launcher settings.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "settings",
		Name:        "settings",
		Description: "Current launcher settings",
		MIMEType:    "application/json",
	}, s.handleSettingsResource)
}

// handleProvidersResource returns the registered providers.
func (s *Server) handleProvidersResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	type providerInfo struct {
		Name     string `json:"name"`
		Priority int    `json:"priority"`
		Enabled  bool   `json:"enabled"`
	}

	providers := s.ports.Engine.Providers()
	infos := make([]providerInfo, len(providers))
	for i, p := range providers {
		infos[i] = providerInfo{
			Name:     p.Name,
			Priority: p.Priority,
			Enabled:  p.Enabled,
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling providers: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleSettingsResource returns the current launcher settings.
func (s *Server) handleSettingsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Settings == nil {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     "{}",
			}},
		}, nil
	}

	settings, err := s.ports.Settings.Get()
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling settings: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
