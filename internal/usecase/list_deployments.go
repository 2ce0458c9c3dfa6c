package usecase

import (
	"context"

	"github.com/divaprotocol/diva-deploy/internal/domain"
)

// ListDeploymentsParams contains parameters for listing recorded deployments
type ListDeploymentsParams struct {
	Network string
	Target  string
}

// ListDeploymentsResult contains the recorded deployments and a per-network count
type ListDeploymentsResult struct {
	Deployments []*domain.DeploymentRecord
	ByNetwork   map[string]int
}

// ListDeployments is the use case for listing recorded deployments
type ListDeployments struct {
	store DeploymentStore
	sink  ProgressSink
}

// NewListDeployments creates a new ListDeployments use case
func NewListDeployments(store DeploymentStore, sink ProgressSink) *ListDeployments {
	return &ListDeployments{
		store: store,
		sink:  sink,
	}
}

// Run executes the list deployments use case
func (uc *ListDeployments) Run(ctx context.Context, params ListDeploymentsParams) (*ListDeploymentsResult, error) {
	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "loading",
		Message: "Loading deployments from registry",
		Spinner: true,
	})

	records, err := uc.store.ListDeployments(ctx)
	if err != nil {
		return nil, err
	}

	result := &ListDeploymentsResult{
		Deployments: make([]*domain.DeploymentRecord, 0, len(records)),
		ByNetwork:   make(map[string]int),
	}
	for _, record := range records {
		if params.Network != "" && record.Network != params.Network {
			continue
		}
		if params.Target != "" && record.Target != params.Target {
			continue
		}
		result.Deployments = append(result.Deployments, record)
		result.ByNetwork[record.Network]++
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "complete",
		Current: len(result.Deployments),
		Total:   len(result.Deployments),
		Message: "Deployments loaded",
	})

	return result, nil
}
