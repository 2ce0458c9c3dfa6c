package adapters

import (
	"github.com/divaprotocol/diva-deploy/internal/adapters/blockchain"
	internalconfig "github.com/divaprotocol/diva-deploy/internal/adapters/config"
	"github.com/divaprotocol/diva-deploy/internal/adapters/forge"
	"github.com/divaprotocol/diva-deploy/internal/adapters/interactive"
	"github.com/divaprotocol/diva-deploy/internal/adapters/progress"
	"github.com/divaprotocol/diva-deploy/internal/adapters/registry"
	"github.com/divaprotocol/diva-deploy/internal/adapters/targets"
	"github.com/divaprotocol/diva-deploy/internal/usecase"
	"github.com/google/wire"
)

// BlockchainSet provides the ledger node reader
var BlockchainSet = wire.NewSet(
	blockchain.NewReaderAdapter,
	wire.Bind(new(usecase.TransactionReader), new(*blockchain.ReaderAdapter)),
)

// ForgeSet provides forge-based implementations
var ForgeSet = wire.NewSet(
	forge.NewDeployerAdapter,
	wire.Bind(new(usecase.ContractDeployer), new(*forge.DeployerAdapter)),
)

// TargetsSet provides the deployment target table
var TargetsSet = wire.NewSet(
	targets.NewRepository,
	wire.Bind(new(usecase.TargetRepository), new(*targets.Repository)),
)

// RegistrySet provides the local deployment registry
var RegistrySet = wire.NewSet(
	registry.NewStore,
	wire.Bind(new(usecase.DeploymentStore), new(*registry.Store)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewSelectorAdapter,
	wire.Bind(new(usecase.TargetSelector), new(*interactive.SelectorAdapter)),
)

// ConfigSet provides configuration-based implementations
var ConfigSet = wire.NewSet(
	internalconfig.NewNetworkResolverAdapter,
	wire.Bind(new(usecase.NetworkResolver), new(*internalconfig.NetworkResolverAdapter)),
)

// ProgressSet provides the progress sink
var ProgressSet = wire.NewSet(
	progress.ProvideProgressSink,
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	BlockchainSet,
	ForgeSet,
	TargetsSet,
	RegistrySet,
	InteractiveSet,
	ConfigSet,
	ProgressSet,
)
