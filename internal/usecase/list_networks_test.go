package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/divaprotocol/diva-deploy/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockNetworkResolver struct {
	networks map[string]string
}

func (m *mockNetworkResolver) GetNetworks(ctx context.Context) []string {
	names := make([]string, 0, len(m.networks))
	for name := range m.networks {
		names = append(names, name)
	}
	return names
}

func (m *mockNetworkResolver) ResolveNetwork(ctx context.Context, name string) (*domain.Network, error) {
	url := m.networks[name]
	if url == "" {
		return nil, errors.New("RPC URL is empty")
	}
	return &domain.Network{Name: name, RPCURL: url}, nil
}

func TestListNetworks(t *testing.T) {
	resolver := &mockNetworkResolver{networks: map[string]string{
		"sepolia": "https://eth-sepolia.g.alchemy.com/v2/secret-key",
		"anvil":   "http://localhost:8545",
		"mainnet": "",
	}}

	result, err := NewListNetworks(resolver).Run(context.Background(), ListNetworksParams{})
	require.NoError(t, err)
	require.Len(t, result.Networks, 3)

	assert.Equal(t, "anvil", result.Networks[0].Name)
	assert.Equal(t, "http://localhost:8545", result.Networks[0].Host)

	assert.Equal(t, "mainnet", result.Networks[1].Name)
	assert.Error(t, result.Networks[1].Error)

	assert.Equal(t, "sepolia", result.Networks[2].Name)
	assert.Equal(t, "https://eth-sepolia.g.alchemy.com", result.Networks[2].Host)
	assert.NotContains(t, result.Networks[2].Host, "secret-key")
}
