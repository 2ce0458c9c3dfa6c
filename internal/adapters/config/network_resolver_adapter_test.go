package config

import (
	"context"
	"testing"

	"github.com/divaprotocol/diva-deploy/internal/config"
	"github.com/divaprotocol/diva-deploy/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetworkResolverAdapter(t *testing.T) {
	cfg := &config.RuntimeConfig{
		FoundryConfig: &config.FoundryConfig{
			RpcEndpoints: map[string]string{
				"sepolia": "https://sepolia.example.org",
				"mainnet": "",
			},
		},
	}
	adapter := NewNetworkResolverAdapter(cfg)
	ctx := context.Background()

	assert.ElementsMatch(t, []string{"sepolia", "mainnet"}, adapter.GetNetworks(ctx))

	network, err := adapter.ResolveNetwork(ctx, "sepolia")
	require.NoError(t, err)
	assert.Equal(t, "https://sepolia.example.org", network.RPCURL)

	_, err = adapter.ResolveNetwork(ctx, "mainnet")
	var cfgErr *domain.ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestNetworkResolverAdapter_NoFoundryProject(t *testing.T) {
	adapter := NewNetworkResolverAdapter(&config.RuntimeConfig{})
	assert.Empty(t, adapter.GetNetworks(context.Background()))
}
