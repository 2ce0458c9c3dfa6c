package domain

import (
	"strings"
	"time"
)

// DeploymentTarget is a named contract deployment: an artifact plus the
// constructor arguments it is always deployed with
type DeploymentTarget struct {
	Name            string   `yaml:"name" json:"name"`
	Artifact        string   `yaml:"artifact" json:"artifact"`
	Path            string   `yaml:"path,omitempty" json:"path,omitempty"` // source file, e.g. src/Staking.sol
	ConstructorArgs []string `yaml:"args,omitempty" json:"args,omitempty"`
	Verify          bool     `yaml:"verify,omitempty" json:"verify,omitempty"`
}

// ContractRef returns the reference handed to the deployment helper
func (t *DeploymentTarget) ContractRef() string {
	if t.Path == "" {
		return t.Artifact
	}
	return t.Path + ":" + t.Artifact
}

// DisplayArgs renders the constructor arguments on one line
func (t *DeploymentTarget) DisplayArgs() string {
	if len(t.ConstructorArgs) == 0 {
		return "-"
	}
	return strings.Join(t.ConstructorArgs, ", ")
}

// DeploymentResult describes one finished (or planned) deployment
type DeploymentResult struct {
	Target   *DeploymentTarget `json:"target"`
	Address  string            `json:"address,omitempty"`
	TxHash   string            `json:"transactionHash,omitempty"`
	Deployer string            `json:"deployer,omitempty"`
	Verified bool              `json:"verified"`
	DryRun   bool              `json:"dryRun,omitempty"`
	Command  []string          `json:"command,omitempty"`
}

// DeploymentRecord is a finished deployment as kept in the local registry.
// Redeploying a target on the same network replaces its record.
type DeploymentRecord struct {
	Network    string    `json:"network"`
	Target     string    `json:"target"`
	Artifact   string    `json:"artifact"`
	Address    string    `json:"address"`
	TxHash     string    `json:"transactionHash"`
	Deployer   string    `json:"deployer,omitempty"`
	Verified   bool      `json:"verified"`
	DeployedAt time.Time `json:"deployedAt"`
}
