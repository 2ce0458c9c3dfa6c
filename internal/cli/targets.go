package cli

import (
	"github.com/spf13/cobra"

	"github.com/divaprotocol/diva-deploy/internal/cli/render"
)

// NewTargetsCmd creates the targets command
func NewTargetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "targets",
		Short: "List deployment targets",
		Long: `List the deployment targets in declaration order. The table comes from
deployments.yaml in the project root when present, otherwise the built-in table.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListTargets.Run(cmd.Context())
			if err != nil {
				return err
			}

			renderer := render.NewTargetsRenderer(cmd.OutOrStdout(), app.Config.JSON)
			return renderer.RenderTargets(result)
		},
	}

	cmd.Flags().String("targets-file", "", "Deployment table to use instead of deployments.yaml")

	return cmd
}
