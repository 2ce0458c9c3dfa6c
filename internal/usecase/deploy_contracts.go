package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/divaprotocol/diva-deploy/internal/config"
	"github.com/divaprotocol/diva-deploy/internal/domain"
	"github.com/samber/lo"
)

// DeployContractsParams contains parameters for a deployment run
type DeployContractsParams struct {
	Targets []string
	All     bool
}

// DeployContractsResult contains the deployments performed (or planned) so far
type DeployContractsResult struct {
	Network *domain.Network
	DryRun  bool
	Results []*domain.DeploymentResult
}

// DeployContracts iterates deployment targets and hands each one to the deployer
type DeployContracts struct {
	config   *config.RuntimeConfig
	repo     TargetRepository
	deployer ContractDeployer
	store    DeploymentStore
	selector TargetSelector
	progress ProgressSink
	log      *slog.Logger
}

// NewDeployContracts creates a new DeployContracts use case
func NewDeployContracts(
	cfg *config.RuntimeConfig,
	repo TargetRepository,
	deployer ContractDeployer,
	store DeploymentStore,
	selector TargetSelector,
	progress ProgressSink,
	log *slog.Logger,
) *DeployContracts {
	return &DeployContracts{
		config:   cfg,
		repo:     repo,
		deployer: deployer,
		store:    store,
		selector: selector,
		progress: progress,
		log:      log.With("component", "DeployContracts"),
	}
}

// Run executes the use case. Targets are deployed one at a time; the first
// failure stops the run and the results gathered so far are returned with it.
func (uc *DeployContracts) Run(ctx context.Context, params DeployContractsParams) (*DeployContractsResult, error) {
	if !params.All && len(params.Targets) == 0 && uc.config.NonInteractive {
		return nil, &domain.UsageError{
			Usage:   "diva deploy <target>... | --all",
			Message: "no deployment target given",
		}
	}

	// Environment problems surface before any prompt is shown
	if !uc.config.DryRun {
		if uc.config.RPCURL == "" {
			return nil, &domain.ConfigError{
				Key:    "rpc_url",
				Reason: "deploying needs a node endpoint (use --network, --rpc-url or DIVA_RPC_URL)",
			}
		}
		if !uc.config.IsFoundryRoot {
			return nil, &domain.ConfigError{
				Key:    "project_root",
				Reason: "deploy must run inside a Foundry project (foundry.toml not found)",
			}
		}
	}

	targets, err := uc.resolveTargets(ctx, params)
	if err != nil {
		return nil, err
	}

	result := &DeployContractsResult{
		Network: uc.config.Network,
		DryRun:  uc.config.DryRun,
	}
	defer uc.progress.Done()

	for i, target := range targets {
		req := uc.buildRequest(target)

		uc.progress.OnProgress(ctx, ProgressEvent{
			Stage:   "deploy",
			Current: i + 1,
			Total:   len(targets),
			Message: fmt.Sprintf("Deploying %s (%s)", target.Name, target.Artifact),
			Spinner: true,
		})

		if uc.config.DryRun {
			result.Results = append(result.Results, &domain.DeploymentResult{
				Target:  target,
				DryRun:  true,
				Command: uc.deployer.Command(req),
			})
			continue
		}

		uc.log.Debug("deploying target", "target", target.Name, "artifact", target.Artifact, "args", target.ConstructorArgs)
		deployed, err := uc.deployer.Deploy(ctx, req)
		if err != nil {
			uc.progress.Error(fmt.Sprintf("%s failed", target.Name))
			return result, fmt.Errorf("failed to deploy %s: %w", target.Name, err)
		}
		uc.progress.Info(fmt.Sprintf("%s deployed at %s", target.Name, deployed.Address))
		result.Results = append(result.Results, deployed)

		// The contract is on chain either way, so a registry write failure only warns
		if err := uc.store.SaveDeployment(ctx, uc.record(deployed)); err != nil {
			uc.log.Warn("failed to record deployment", "target", target.Name, "address", deployed.Address, "error", err)
		}
	}

	return result, nil
}

func (uc *DeployContracts) record(deployed *domain.DeploymentResult) *domain.DeploymentRecord {
	network := "custom"
	if uc.config.Network != nil {
		network = uc.config.Network.Name
	}

	return &domain.DeploymentRecord{
		Network:  network,
		Target:   deployed.Target.Name,
		Artifact: deployed.Target.Artifact,
		Address:  deployed.Address,
		TxHash:   deployed.TxHash,
		Deployer: deployed.Deployer,
		Verified: deployed.Verified,
	}
}

func (uc *DeployContracts) buildRequest(target *domain.DeploymentTarget) DeployRequest {
	verify := uc.config.Verify || target.Verify
	if verify && uc.config.EtherscanAPIKey == "" {
		// Explorer verification is best-effort
		uc.log.Warn("skipping verification, no explorer API key configured", "target", target.Name)
		verify = false
	}

	return DeployRequest{
		Target:          target,
		RPCURL:          uc.config.RPCURL,
		Account:         uc.config.Account,
		Verify:          verify,
		EtherscanAPIKey: uc.config.EtherscanAPIKey,
	}
}

func (uc *DeployContracts) resolveTargets(ctx context.Context, params DeployContractsParams) ([]*domain.DeploymentTarget, error) {
	if params.All {
		return uc.repo.ListTargets(ctx)
	}

	if len(params.Targets) == 0 {
		all, err := uc.repo.ListTargets(ctx)
		if err != nil {
			return nil, err
		}
		return uc.selector.SelectTargets(ctx, all, "Select deployment targets")
	}

	targets := make([]*domain.DeploymentTarget, 0, len(params.Targets))
	for _, name := range lo.Uniq(params.Targets) {
		target, err := uc.repo.GetTarget(ctx, name)
		if err != nil {
			if target, err = uc.pickSuggestion(ctx, err); err != nil {
				return nil, err
			}
		}
		targets = append(targets, target)
	}

	return lo.UniqBy(targets, func(t *domain.DeploymentTarget) string { return t.Name }), nil
}

// pickSuggestion lets the user choose among close matches for a mistyped
// target name. Outside interactive mode the lookup error is returned as is.
func (uc *DeployContracts) pickSuggestion(ctx context.Context, lookupErr error) (*domain.DeploymentTarget, error) {
	var unknown domain.UnknownTargetErr
	if uc.config.NonInteractive || !errors.As(lookupErr, &unknown) || len(unknown.Suggestions) == 0 {
		return nil, lookupErr
	}

	candidates := lo.FilterMap(unknown.Suggestions, func(name string, _ int) (*domain.DeploymentTarget, bool) {
		target, err := uc.repo.GetTarget(ctx, name)
		return target, err == nil
	})
	if len(candidates) == 0 {
		return nil, lookupErr
	}

	return uc.selector.SelectTarget(ctx, candidates, fmt.Sprintf("Unknown target '%s', did you mean", unknown.Name))
}
