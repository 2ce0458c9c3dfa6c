package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// FoundryTOML represents the raw foundry.toml structure
type FoundryTOML struct {
	RpcEndpoints map[string]string            `toml:"rpc_endpoints"`
	Etherscan    map[string]map[string]string `toml:"etherscan"`
}

// loadDotEnv loads .env files from dir. Variables already set in the
// process environment win.
func loadDotEnv(dir string) {
	envFiles := []string{
		filepath.Join(dir, ".env"),
		filepath.Join(dir, ".env.local"),
	}

	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				// Log warning but don't fail
				fmt.Fprintf(os.Stderr, "Warning: Failed to load %s: %v\n", envFile, err)
			}
		}
	}
}

// loadFoundryConfig loads and parses foundry.toml, expanding ${VAR} references
func loadFoundryConfig(projectRoot string) (*FoundryConfig, error) {
	foundryPath := filepath.Join(projectRoot, "foundry.toml")
	var raw FoundryTOML

	if _, err := toml.DecodeFile(foundryPath, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse foundry.toml: %w", err)
	}

	cfg := &FoundryConfig{
		RpcEndpoints: make(map[string]string),
		Etherscan:    make(map[string]EtherscanConfig),
	}

	for name, url := range raw.RpcEndpoints {
		cfg.RpcEndpoints[name] = os.ExpandEnv(url)
	}

	for network, ethConfig := range raw.Etherscan {
		ec := EtherscanConfig{}
		if url, ok := ethConfig["url"]; ok {
			ec.URL = os.ExpandEnv(url)
		}
		if key, ok := ethConfig["key"]; ok {
			ec.Key = os.ExpandEnv(key)
		}
		cfg.Etherscan[network] = ec
	}

	return cfg, nil
}
