package mcp

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodeZobac/better.finder/internal/core/domain"
	"github.com/CodeZobac/better.finder/internal/core/ports/driving"
)

// Helper to create a ReadResourceRequest with the given URI.
func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

func TestServer_handleProvidersResource(t *testing.T) {
	ctx := context.Background()

	engine := &mockEngine{
		info: []driving.ProviderInfo{
			{Name: "Calculator", Priority: 90, Enabled: true},
			{Name: "Bookmarks", Priority: 50, Enabled: false},
		},
	}
	server, err := NewServer(&Ports{Engine: engine})
	require.NoError(t, err)

	result, err := server.handleProvidersResource(ctx, makeReadResourceRequest("finder://providers"))

	require.NoError(t, err)
	require.Len(t, result.Contents, 1)
	assert.Contains(t, result.Contents[0].Text, "Calculator")
	assert.Contains(t, result.Contents[0].Text, `"priority": 90`)
	assert.Contains(t, result.Contents[0].Text, `"enabled": false`)
}

func TestServer_handleSettingsResource(t *testing.T) {
	ctx := context.Background()

	t.Run("nil settings service returns empty object", func(t *testing.T) {
		server, err := NewServer(&Ports{Engine: &mockEngine{}})
		require.NoError(t, err)

		result, err := server.handleSettingsResource(ctx, makeReadResourceRequest("finder://settings"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "{}", result.Contents[0].Text)
	})

	t.Run("returns settings", func(t *testing.T) {
		settings := &mockSettingsService{settings: domain.DefaultAppSettings()}
		server, err := NewServer(&Ports{Engine: &mockEngine{}, Settings: settings})
		require.NoError(t, err)

		result, err := server.handleSettingsResource(ctx, makeReadResourceRequest("finder://settings"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Contains(t, result.Contents[0].Text, "Ctrl+K")
	})
}
