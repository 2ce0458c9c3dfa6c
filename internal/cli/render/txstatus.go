package render

import (
	"fmt"
	"io"

	"github.com/divaprotocol/diva-deploy/internal/domain"
	"github.com/fatih/color"
)

var (
	labelStyle   = color.New(color.FgWhite, color.Faint)
	hashStyle    = color.New(color.FgCyan)
	pendingStyle = color.New(color.FgYellow, color.Bold)
	successStyle = color.New(color.FgGreen, color.Bold)
	failedStyle  = color.New(color.FgRed, color.Bold)
	missingStyle = color.New(color.FgWhite, color.Bold)
)

// TxStatusRenderer renders transaction status reports
type TxStatusRenderer struct {
	out     io.Writer
	json    bool
	verbose bool
}

// NewTxStatusRenderer creates a new status renderer
func NewTxStatusRenderer(out io.Writer, asJSON, verbose bool) *TxStatusRenderer {
	return &TxStatusRenderer{
		out:     out,
		json:    asJSON,
		verbose: verbose,
	}
}

// Render prints the report: one status line, optionally preceded by details
func (r *TxStatusRenderer) Render(report *domain.TxStatusReport) error {
	if r.json {
		return writeJSON(r.out, report)
	}

	if report.State == domain.TxStateNotFound {
		_, err := fmt.Fprintf(r.out, "Transaction not found: %s (%s)\n", hashStyle.Sprint(report.Hash), stateStyle(report.State).Sprint(report.State))
		return err
	}

	if r.verbose {
		r.renderDetails(report)
	}

	_, err := fmt.Fprintf(r.out, "Transaction hash: %s, status: %s\n", hashStyle.Sprint(report.Hash), stateStyle(report.State).Sprint(report.State))
	return err
}

func (r *TxStatusRenderer) renderDetails(report *domain.TxStatusReport) {
	if tx := report.Transaction; tx != nil {
		if tx.From != nil {
			fmt.Fprintf(r.out, "%s %s\n", labelStyle.Sprint("From:       "), tx.From.Hex())
		}
		if tx.To != nil {
			fmt.Fprintf(r.out, "%s %s\n", labelStyle.Sprint("To:         "), tx.To.Hex())
		} else {
			fmt.Fprintf(r.out, "%s %s\n", labelStyle.Sprint("To:         "), "(contract creation)")
		}
		fmt.Fprintf(r.out, "%s %d\n", labelStyle.Sprint("Nonce:      "), tx.Nonce)
		if tx.Value != nil {
			fmt.Fprintf(r.out, "%s %s wei\n", labelStyle.Sprint("Value:      "), tx.Value.String())
		}
		if tx.BlockNumber != nil {
			fmt.Fprintf(r.out, "%s %s\n", labelStyle.Sprint("Block:      "), tx.BlockNumber.String())
		} else {
			fmt.Fprintf(r.out, "%s %s\n", labelStyle.Sprint("Block:      "), "(none)")
		}
	}
	if receipt := report.Receipt; receipt != nil {
		fmt.Fprintf(r.out, "%s %d\n", labelStyle.Sprint("Gas used:   "), receipt.GasUsed)
		fmt.Fprintf(r.out, "%s %d\n", labelStyle.Sprint("Status code:"), receipt.Status)
	}
}

func stateStyle(state domain.TxState) *color.Color {
	switch state {
	case domain.TxStatePending:
		return pendingStyle
	case domain.TxStateSucceeded:
		return successStyle
	case domain.TxStateFailed:
		return failedStyle
	default:
		return missingStyle
	}
}

var _ Renderer[*domain.TxStatusReport] = (*TxStatusRenderer)(nil)
