package cli

import (
	"github.com/spf13/cobra"

	"github.com/divaprotocol/diva-deploy/internal/cli/render"
	"github.com/divaprotocol/diva-deploy/internal/usecase"
)

// NewDeploymentsCmd creates the deployments command
func NewDeploymentsCmd() *cobra.Command {
	var target string

	cmd := &cobra.Command{
		Use:   "deployments",
		Short: "List recorded deployments",
		Long: `List the deployments recorded in .diva/deployments.json. Every successful
'diva deploy' records the target's address, transaction hash and verification
state per network.`,
		Example: `  diva deployments
  diva deployments --network sepolia
  diva deployments --target diva-staking --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.ListDeploymentsParams{Target: target}
			if f := cmd.Flag("network"); f != nil && f.Changed {
				params.Network = f.Value.String()
			}

			result, err := app.ListDeployments.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			renderer := render.NewDeploymentsRenderer(cmd.OutOrStdout(), app.Config.JSON)
			return renderer.RenderDeploymentList(result)
		},
	}

	cmd.Flags().StringVar(&target, "target", "", "Only show this deployment target")

	return cmd
}
