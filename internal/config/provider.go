package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/divaprotocol/diva-deploy/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		projectRoot, _ = FindProjectRoot()
	}

	sentinel, err := domain.ParsePendingSentinel(v.GetString("pending_sentinel"))
	if err != nil {
		return nil, err
	}

	cfg := &RuntimeConfig{
		ProjectRoot:     projectRoot,
		Debug:           v.GetBool("debug"),
		NonInteractive:  v.GetBool("non_interactive"),
		JSON:            v.GetBool("json"),
		Verbose:         v.GetBool("verbose"),
		Timeout:         v.GetDuration("timeout"),
		PendingSentinel: sentinel,
		DryRun:          v.GetBool("dry_run"),
		Verify:          v.GetBool("verify"),
		Account:         v.GetString("account"),
		TargetsFile:     v.GetString("targets_file"),
	}

	if cfg.TargetsFile != "" && !filepath.IsAbs(cfg.TargetsFile) {
		cfg.TargetsFile = filepath.Join(projectRoot, cfg.TargetsFile)
	}

	if _, err := os.Stat(filepath.Join(projectRoot, "foundry.toml")); err == nil {
		foundryConfig, err := loadFoundryConfig(projectRoot)
		if err != nil {
			return nil, fmt.Errorf("failed to load foundry config: %w", err)
		}
		cfg.FoundryConfig = foundryConfig
		cfg.IsFoundryRoot = true
	}

	network, err := ResolveNetwork(v.GetString("rpc_url"), v.GetString("network"), cfg.FoundryConfig)
	if err != nil {
		return nil, err
	}
	if network != nil {
		cfg.Network = network
		cfg.RPCURL = network.RPCURL
		cfg.EtherscanAPIKey = EtherscanKey(cfg.FoundryConfig, network.Name)
	} else {
		cfg.EtherscanAPIKey = EtherscanKey(cfg.FoundryConfig, "")
	}

	return cfg, nil
}

// FindProjectRoot walks up from the current directory to find foundry.toml.
// Outside a Foundry project it returns the current directory and an error.
func FindProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return ".", err
	}

	dir := cwd
	for {
		if _, err := os.Stat(filepath.Join(dir, "foundry.toml")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd, fmt.Errorf("not in a Foundry project (foundry.toml not found)")
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string, cmd *cobra.Command) *viper.Viper {
	// .env first so both viper's env lookup and foundry.toml expansion see it
	loadDotEnv(projectRoot)

	v := viper.New()

	v.SetConfigName("diva")
	v.SetConfigType("yaml")
	v.AddConfigPath(projectRoot)

	v.SetEnvPrefix("DIVA")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	v.SetDefault("timeout", "30s")
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("pending_sentinel", string(domain.PendingSentinelZero))
	v.SetDefault("project_root", projectRoot)

	// Try to read config file (ignore error if not found)
	_ = v.ReadInConfig()

	if cmd != nil {
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			key := strings.ReplaceAll(f.Name, "-", "_")
			if err := v.BindPFlag(key, f); err != nil {
				panic(err)
			}
		})
	}

	return v
}
