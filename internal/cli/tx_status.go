package cli

import (
	"github.com/spf13/cobra"

	"github.com/divaprotocol/diva-deploy/internal/cli/render"
	"github.com/divaprotocol/diva-deploy/internal/domain"
	"github.com/divaprotocol/diva-deploy/internal/usecase"
)

// NewTxStatusCmd creates the tx-status command
func NewTxStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx-status <transactionHash>",
		Short: "Check whether a transaction is pending, succeeded or failed",
		Long: `Look up a transaction on the configured node and report one of:

  NotFound   the node does not know the hash
  Pending    the transaction has not been mined yet
  Succeeded  the transaction was mined and its receipt status is 1
  Failed     the transaction was mined and reverted

The node is taken from --rpc-url, DIVA_RPC_URL, --network (foundry.toml) or
APP_ETHERMAIN_RPC_URL, in that order.`,
		Example: `  diva tx-status 0x5c504ed432cb51138bcf09aa5e8a410dd4a1e204ef84bfed1be16dfba1b22060
  diva tx-status --network sepolia --verbose 0x5c50...2060
  diva tx-status --json 0x5c50...2060`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return &domain.UsageError{
					Usage:   usecase.TxStatusUsage,
					Message: "expected exactly one transaction hash",
				}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			report, err := app.CheckTxStatus.Run(cmd.Context(), usecase.CheckTxStatusParams{
				Hash: args[0],
			})
			if err != nil {
				return err
			}

			renderer := render.NewTxStatusRenderer(cmd.OutOrStdout(), app.Config.JSON, app.Config.Verbose)
			return renderer.Render(report)
		},
	}

	cmd.Flags().BoolP("verbose", "v", false, "Print transaction and receipt details")
	cmd.Flags().String("pending-sentinel", string(domain.PendingSentinelZero), "Block number that marks a pending transaction: zero or null")

	return cmd
}
