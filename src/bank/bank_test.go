package bank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlaidClient(t *testing.T) {
	client, err := NewPlaidClient("client-id", "secret", "sandbox")
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestNewPlaidClient_UnknownEnvironment(t *testing.T) {
	_, err := NewPlaidClient("client-id", "secret", "staging")
	assert.Error(t, err)
}
