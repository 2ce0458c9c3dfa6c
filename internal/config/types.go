package config

import (
	"time"

	"github.com/divaprotocol/diva-deploy/internal/domain"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot   string
	IsFoundryRoot bool // foundry.toml found at ProjectRoot

	// Connection settings
	Network *domain.Network // nil when no RPC URL could be resolved
	RPCURL  string

	// Execution settings
	Debug          bool
	NonInteractive bool
	JSON           bool
	Verbose        bool
	Timeout        time.Duration

	// Status settings
	PendingSentinel domain.PendingSentinel

	// Deployment settings
	DryRun          bool
	Verify          bool
	Account         string // foundry keystore account passed to the helper
	EtherscanAPIKey string
	TargetsFile     string

	// Resolved configurations
	FoundryConfig *FoundryConfig // nil outside a Foundry project
}

// FoundryConfig represents the parts of foundry.toml the CLI reads
type FoundryConfig struct {
	RpcEndpoints map[string]string
	Etherscan    map[string]EtherscanConfig
}

// EtherscanConfig represents Etherscan configuration for a network
type EtherscanConfig struct {
	Key string
	URL string
}
