package config

import (
	"context"

	"github.com/divaprotocol/diva-deploy/internal/config"
	"github.com/divaprotocol/diva-deploy/internal/domain"
	"github.com/divaprotocol/diva-deploy/internal/usecase"
)

// NetworkResolverAdapter resolves networks from foundry.toml [rpc_endpoints]
type NetworkResolverAdapter struct {
	foundry *config.FoundryConfig
}

// NewNetworkResolverAdapter creates a new adapter
func NewNetworkResolverAdapter(cfg *config.RuntimeConfig) *NetworkResolverAdapter {
	return &NetworkResolverAdapter{
		foundry: cfg.FoundryConfig,
	}
}

// GetNetworks returns all configured network names
func (a *NetworkResolverAdapter) GetNetworks(ctx context.Context) []string {
	if a.foundry == nil {
		return nil
	}

	names := make([]string, 0, len(a.foundry.RpcEndpoints))
	for name := range a.foundry.RpcEndpoints {
		names = append(names, name)
	}
	return names
}

// ResolveNetwork resolves a network name to its configuration
func (a *NetworkResolverAdapter) ResolveNetwork(ctx context.Context, networkName string) (*domain.Network, error) {
	network, err := config.ResolveNetwork("", networkName, a.foundry)
	if err != nil {
		return nil, err
	}
	return network, nil
}

// Ensure the adapter implements the interface
var _ usecase.NetworkResolver = (*NetworkResolverAdapter)(nil)
