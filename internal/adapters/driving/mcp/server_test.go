package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	server, err := NewServer(&Ports{Engine: &mockEngine{}})

	require.NoError(t, err)
	assert.NotNil(t, server)
}

func TestNewServerMissingEngine(t *testing.T) {
	_, err := NewServer(&Ports{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingEngine)
}

func TestPortsValidate(t *testing.T) {
	ports := &Ports{Engine: &mockEngine{}}

	assert.NoError(t, ports.Validate())
}

func TestPortsValidateSettingsOptional(t *testing.T) {
	ports := &Ports{Engine: &mockEngine{}, Settings: nil}

	assert.NoError(t, ports.Validate())
}
