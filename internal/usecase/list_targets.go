package usecase

import (
	"context"

	"github.com/divaprotocol/diva-deploy/internal/domain"
)

// ListTargetsResult contains the deployment table and where it came from
type ListTargetsResult struct {
	Source  string
	Targets []*domain.DeploymentTarget
}

// ListTargets is a use case for listing deployment targets
type ListTargets struct {
	repo TargetRepository
}

// NewListTargets creates a new ListTargets use case
func NewListTargets(repo TargetRepository) *ListTargets {
	return &ListTargets{repo: repo}
}

// Run executes the use case
func (uc *ListTargets) Run(ctx context.Context) (*ListTargetsResult, error) {
	targets, err := uc.repo.ListTargets(ctx)
	if err != nil {
		return nil, err
	}

	return &ListTargetsResult{
		Source:  uc.repo.Source(),
		Targets: targets,
	}, nil
}
