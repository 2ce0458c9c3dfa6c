package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/divaprotocol/diva-deploy/internal/app"
	"github.com/divaprotocol/diva-deploy/internal/config"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// initApp builds the app container; tests swap it for a hand-wired one
var initApp = app.InitApp

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "diva",
		Short: "DIVA contract deployment and transaction status tool",
		Long: `diva deploys the DIVA contracts through Foundry and checks the status of
transactions on an Ethereum node.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			// Outside a Foundry project the current directory is used
			projectRoot, _ := config.FindProjectRoot()

			v := config.SetupViper(projectRoot, cmd)

			appInstance, err := initApp(v)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			ctx := context.WithValue(cmd.Context(), appKey, appInstance)
			cmd.SetContext(ctx)

			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")
	rootCmd.PersistentFlags().StringP("network", "n", "", "Network from foundry.toml [rpc_endpoints] (e.g., mainnet, sepolia)")
	rootCmd.PersistentFlags().String("rpc-url", "", "Node RPC URL (overrides --network and APP_ETHERMAIN_RPC_URL)")
	rootCmd.PersistentFlags().Duration("timeout", 0, "Timeout for each node request (default 30s)")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "main",
		Title: "Main Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands",
	})

	txStatusCmd := NewTxStatusCmd()
	txStatusCmd.GroupID = "main"
	rootCmd.AddCommand(txStatusCmd)

	deployCmd := NewDeployCmd()
	deployCmd.GroupID = "main"
	rootCmd.AddCommand(deployCmd)

	deploymentsCmd := NewDeploymentsCmd()
	deploymentsCmd.GroupID = "main"
	rootCmd.AddCommand(deploymentsCmd)

	targetsCmd := NewTargetsCmd()
	targetsCmd.GroupID = "management"
	rootCmd.AddCommand(targetsCmd)

	networksCmd := NewNetworksCmd()
	networksCmd.GroupID = "management"
	rootCmd.AddCommand(networksCmd)

	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}
