package cli

import (
	"github.com/spf13/cobra"

	"github.com/divaprotocol/diva-deploy/internal/cli/render"
	"github.com/divaprotocol/diva-deploy/internal/usecase"
)

// NewDeployCmd creates the deploy command
func NewDeployCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "deploy [target...]",
		Short: "Deploy contracts with forge create",
		Long: `Deploy one or more deployment targets. Each target names a contract artifact
and its constructor arguments; see 'diva targets' for the table in use.

Targets are deployed one after another. The first failure stops the run.
Without arguments a picker lets you choose targets; a mistyped name offers the
closest matches. Both prompts are skipped with --non-interactive.`,
		Example: `  diva deploy diva-staking --network sepolia --account deployer
  diva deploy --all --network mainnet --verify
  diva deploy erc20v2-claim --dry-run`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.DeployContracts.Run(cmd.Context(), usecase.DeployContractsParams{
				Targets: args,
				All:     all,
			})
			if result != nil {
				renderer := render.NewDeployRenderer(cmd.OutOrStdout(), app.Config.JSON)
				if renderErr := renderer.RenderDeployResult(result); renderErr != nil && err == nil {
					err = renderErr
				}
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Deploy every target in declaration order")
	cmd.Flags().Bool("dry-run", false, "Print the forge commands without running them")
	cmd.Flags().Bool("verify", false, "Verify on the block explorer (needs an etherscan key)")
	cmd.Flags().String("account", "", "Foundry keystore account used by forge")
	cmd.Flags().String("targets-file", "", "Deployment table to use instead of deployments.yaml")

	return cmd
}
