package usecase

import (
	"context"

	"github.com/divaprotocol/diva-deploy/internal/domain"
)

// TransactionReader is the read-only view of a remote ledger node
type TransactionReader interface {
	Connect(ctx context.Context, rpcURL string) error
	// TransactionByHash returns nil, nil when the node has no such transaction
	TransactionByHash(ctx context.Context, hash string) (*domain.TxRecord, error)
	// TransactionReceipt returns nil, nil when the node has no receipt yet
	TransactionReceipt(ctx context.Context, hash string) (*domain.ReceiptRecord, error)
	Close()
}

// DeployRequest is a single invocation of the external deployment helper
type DeployRequest struct {
	Target          *domain.DeploymentTarget
	RPCURL          string
	Account         string
	Verify          bool
	EtherscanAPIKey string
}

// ContractDeployer deploys one contract artifact through the external helper
type ContractDeployer interface {
	Deploy(ctx context.Context, req DeployRequest) (*domain.DeploymentResult, error)
	// Command returns the helper invocation Deploy would run
	Command(req DeployRequest) []string
}

// TargetRepository provides the declarative deployment table
type TargetRepository interface {
	ListTargets(ctx context.Context) ([]*domain.DeploymentTarget, error)
	GetTarget(ctx context.Context, name string) (*domain.DeploymentTarget, error)
	Source() string
}

// DeploymentStore keeps the record of finished deployments
type DeploymentStore interface {
	SaveDeployment(ctx context.Context, record *domain.DeploymentRecord) error
	ListDeployments(ctx context.Context) ([]*domain.DeploymentRecord, error)
}

// TargetSelector handles interactive selection of deployment targets
type TargetSelector interface {
	SelectTarget(ctx context.Context, targets []*domain.DeploymentTarget, prompt string) (*domain.DeploymentTarget, error)
	// SelectTargets returns the picked targets in declaration order
	SelectTargets(ctx context.Context, targets []*domain.DeploymentTarget, prompt string) ([]*domain.DeploymentTarget, error)
}

// NetworkResolver handles network configuration resolution
type NetworkResolver interface {
	GetNetworks(ctx context.Context) []string
	ResolveNetwork(ctx context.Context, networkName string) (*domain.Network, error)
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage    string
	Current  int
	Total    int
	Message  string
	Spinner  bool
	Metadata interface{}
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
	Done()
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}
func (NopProgress) Done()                                     {}
