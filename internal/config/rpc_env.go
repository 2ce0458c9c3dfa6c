package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/divaprotocol/diva-deploy/internal/domain"
)

// LegacyRPCEnvVar is the node URL variable used by the earlier status script
const LegacyRPCEnvVar = "APP_ETHERMAIN_RPC_URL"

// envVarPattern matches ${VAR_NAME} patterns in TOML values
var envVarPattern = regexp.MustCompile(`^\$\{([A-Za-z_][A-Za-z0-9_]*)\}$`)

// DetectEnvVar checks if a raw TOML value is a simple ${VAR_NAME} reference.
// Returns the variable name and true if the value is a pure env var reference.
func DetectEnvVar(rawValue string) (string, bool) {
	matches := envVarPattern.FindStringSubmatch(rawValue)
	if len(matches) == 2 {
		return matches[1], true
	}
	return "", false
}

// GenerateEnvVarName generates a conventional env var name for a network's RPC URL.
// Examples: sepolia -> SEPOLIA_RPC_URL, celo-sepolia -> CELO_SEPOLIA_RPC_URL
func GenerateEnvVarName(networkName string) string {
	name := strings.ToUpper(networkName)
	name = strings.NewReplacer("-", "_", ".", "_").Replace(name)
	return name + "_RPC_URL"
}

// LoadRawRPCEndpoints reads foundry.toml and returns RPC endpoints without env var expansion.
func LoadRawRPCEndpoints(projectRoot string) (map[string]string, error) {
	foundryPath := filepath.Join(projectRoot, "foundry.toml")

	var raw FoundryTOML
	if _, err := toml.DecodeFile(foundryPath, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse foundry.toml: %w", err)
	}

	return raw.RpcEndpoints, nil
}

// ResolveNetwork picks the node endpoint. An explicit URL wins, then a named
// foundry.toml endpoint, then the legacy environment variable. It returns
// nil, nil when nothing is configured; callers that need a node turn that
// into a ConfigError.
func ResolveNetwork(rpcURL, networkName string, foundry *FoundryConfig) (*domain.Network, error) {
	if rpcURL != "" {
		return &domain.Network{Name: "custom", RPCURL: rpcURL}, nil
	}

	if networkName != "" {
		if foundry == nil {
			return nil, &domain.ConfigError{
				Key:    "network",
				Reason: fmt.Sprintf("network '%s' requested but no foundry.toml was found", networkName),
			}
		}
		url, ok := foundry.RpcEndpoints[networkName]
		if !ok {
			return nil, &domain.ConfigError{
				Key:    "network",
				Reason: fmt.Sprintf("network '%s' not found in foundry.toml [rpc_endpoints]", networkName),
			}
		}
		if url == "" || strings.Contains(url, "${") {
			return nil, &domain.ConfigError{
				Key:    "network",
				Reason: fmt.Sprintf("RPC URL for '%s' is empty; set %s", networkName, GenerateEnvVarName(networkName)),
			}
		}
		return &domain.Network{Name: networkName, RPCURL: url}, nil
	}

	if url := os.Getenv(LegacyRPCEnvVar); url != "" {
		return &domain.Network{Name: "default", RPCURL: url}, nil
	}

	return nil, nil
}

// EtherscanKey returns the explorer API key for a network, falling back to ETHERSCAN_API_KEY
func EtherscanKey(foundry *FoundryConfig, networkName string) string {
	if foundry != nil {
		if ec, ok := foundry.Etherscan[networkName]; ok && ec.Key != "" {
			return ec.Key
		}
	}
	return os.Getenv("ETHERSCAN_API_KEY")
}
