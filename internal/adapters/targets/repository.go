package targets

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/divaprotocol/diva-deploy/internal/config"
	"github.com/divaprotocol/diva-deploy/internal/domain"
	"github.com/divaprotocol/diva-deploy/internal/usecase"
	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is looked up in the project root when no file is configured
const DefaultFileName = "deployments.yaml"

// BuiltinSource names the compiled-in table in listings
const BuiltinSource = "built-in"

// builtinTargets are the contracts this project deploys
var builtinTargets = []domain.DeploymentTarget{
	{
		Name:            "divas-zk-airdrop",
		Artifact:        "DivasZkAirdrop",
		ConstructorArgs: []string{"0x2dED74483a067d8040E6c08a013007a929312e82"},
	},
	{
		Name:     "erc20v2-claim",
		Artifact: "ERC20V2Claim",
		ConstructorArgs: []string{
			"0x45656c02Aae856443717C34159870b90D1288203",
			"0x2dED74483a067d8040E6c08a013007a929312e82",
		},
	},
	{
		Name:            "diva-staking",
		Artifact:        "DIVAStaking",
		ConstructorArgs: []string{"0x45656c02Aae856443717C34159870b90D1288203"},
	},
}

type targetsFile struct {
	Targets []domain.DeploymentTarget `yaml:"targets"`
}

// Repository serves deployment targets from a YAML file or the built-in table
type Repository struct {
	path    string
	targets []*domain.DeploymentTarget
	loaded  bool
}

// NewRepository creates a repository. An explicitly configured file must
// exist; the default deployments.yaml is optional.
func NewRepository(cfg *config.RuntimeConfig) *Repository {
	path := cfg.TargetsFile
	if path == "" {
		candidate := filepath.Join(cfg.ProjectRoot, DefaultFileName)
		if _, err := os.Stat(candidate); err == nil {
			path = candidate
		}
	}
	return &Repository{path: path}
}

// Source describes where targets come from
func (r *Repository) Source() string {
	if r.path == "" {
		return BuiltinSource
	}
	return r.path
}

// ListTargets returns all targets in declaration order
func (r *Repository) ListTargets(ctx context.Context) ([]*domain.DeploymentTarget, error) {
	if err := r.load(); err != nil {
		return nil, err
	}
	return r.targets, nil
}

// GetTarget looks a target up by name, suggesting close names when it is unknown
func (r *Repository) GetTarget(ctx context.Context, name string) (*domain.DeploymentTarget, error) {
	if err := r.load(); err != nil {
		return nil, err
	}

	if target, ok := lo.Find(r.targets, func(t *domain.DeploymentTarget) bool { return t.Name == name }); ok {
		return target, nil
	}

	names := lo.Map(r.targets, func(t *domain.DeploymentTarget, _ int) string { return t.Name })
	matches := fuzzy.Find(name, names)
	suggestions := lo.Map(matches, func(m fuzzy.Match, _ int) string { return m.Str })

	return nil, domain.UnknownTargetErr{Name: name, Suggestions: suggestions}
}

func (r *Repository) load() error {
	if r.loaded {
		return nil
	}

	if r.path == "" {
		r.targets = lo.Map(builtinTargets, func(t domain.DeploymentTarget, _ int) *domain.DeploymentTarget {
			target := t
			target.ConstructorArgs = append([]string(nil), t.ConstructorArgs...)
			return &target
		})
		r.loaded = true
		return nil
	}

	targets, err := loadFile(r.path)
	if err != nil {
		return err
	}
	r.targets = targets
	r.loaded = true
	return nil
}

// loadFile parses and validates a targets file
func loadFile(path string) ([]*domain.DeploymentTarget, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user-configured path
	if err != nil {
		return nil, fmt.Errorf("failed to read targets file: %w", err)
	}

	var file targetsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}

	if len(file.Targets) == 0 {
		return nil, &domain.ConfigError{Key: "targets", Reason: fmt.Sprintf("%s defines no targets", path)}
	}

	var errs []error
	seen := make(map[string]bool, len(file.Targets))
	targets := make([]*domain.DeploymentTarget, 0, len(file.Targets))
	for i := range file.Targets {
		target := file.Targets[i]
		switch {
		case target.Name == "":
			errs = append(errs, fmt.Errorf("target #%d: name is required", i+1))
		case target.Artifact == "":
			errs = append(errs, fmt.Errorf("target %s: artifact is required", target.Name))
		case seen[target.Name]:
			errs = append(errs, fmt.Errorf("target %s: defined more than once", target.Name))
		}
		seen[target.Name] = true
		targets = append(targets, &target)
	}

	if len(errs) > 0 {
		return nil, &domain.ConfigError{Key: "targets", Reason: errors.Join(errs...).Error()}
	}

	return targets, nil
}

// Ensure the repository implements the interface
var _ usecase.TargetRepository = (*Repository)(nil)
