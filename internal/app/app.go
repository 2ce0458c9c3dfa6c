package app

import (
	"log/slog"

	"github.com/divaprotocol/diva-deploy/internal/config"
	"github.com/divaprotocol/diva-deploy/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Log    *slog.Logger

	// Use cases
	CheckTxStatus   *usecase.CheckTxStatus
	DeployContracts *usecase.DeployContracts
	ListDeployments *usecase.ListDeployments
	ListTargets     *usecase.ListTargets
	ListNetworks    *usecase.ListNetworks
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	log *slog.Logger,
	checkTxStatus *usecase.CheckTxStatus,
	deployContracts *usecase.DeployContracts,
	listDeployments *usecase.ListDeployments,
	listTargets *usecase.ListTargets,
	listNetworks *usecase.ListNetworks,
) (*App, error) {
	return &App{
		Config:          cfg,
		Log:             log,
		CheckTxStatus:   checkTxStatus,
		DeployContracts: deployContracts,
		ListDeployments: listDeployments,
		ListTargets:     listTargets,
		ListNetworks:    listNetworks,
	}, nil
}
