//go:build wireinject
// +build wireinject

package app

import (
	"github.com/divaprotocol/diva-deploy/internal/adapters"
	"github.com/divaprotocol/diva-deploy/internal/config"
	"github.com/divaprotocol/diva-deploy/internal/logging"
	"github.com/divaprotocol/diva-deploy/internal/usecase"
	"github.com/google/wire"
	"github.com/spf13/viper"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper) (*App, error) {
	wire.Build(
		// Configuration
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewCheckTxStatus,
		usecase.NewDeployContracts,
		usecase.NewListDeployments,
		usecase.NewListTargets,
		usecase.NewListNetworks,

		// App
		NewApp,
	)
	return nil, nil
}
