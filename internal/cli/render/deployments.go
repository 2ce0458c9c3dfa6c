package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/divaprotocol/diva-deploy/internal/usecase"
)

var (
	networkHeader  = color.New(color.BgCyan, color.FgBlack, color.Bold)
	timestampStyle = color.New(color.Faint)
)

// DeploymentsRenderer renders recorded deployments grouped by network
type DeploymentsRenderer struct {
	out  io.Writer
	json bool
}

// NewDeploymentsRenderer creates a new deployments renderer
func NewDeploymentsRenderer(out io.Writer, asJSON bool) *DeploymentsRenderer {
	return &DeploymentsRenderer{
		out:  out,
		json: asJSON,
	}
}

// RenderDeploymentList renders one table per network. Records arrive sorted by network.
func (r *DeploymentsRenderer) RenderDeploymentList(result *usecase.ListDeploymentsResult) error {
	if r.json {
		return writeJSON(r.out, result.Deployments)
	}

	if len(result.Deployments) == 0 {
		fmt.Fprintln(r.out, "No deployments found")
		return nil
	}

	var tw table.Writer
	current := ""
	for _, dep := range result.Deployments {
		if tw == nil || dep.Network != current {
			if tw != nil {
				tw.Render()
				fmt.Fprintln(r.out)
			}
			current = dep.Network
			fmt.Fprintf(r.out, "%s %s\n\n", networkHeader.Sprintf(" %s ", current), timestampStyle.Sprintf("(%d)", result.ByNetwork[current]))
			tw = newPlainTable(r.out)
		}

		verified := notVerifiedStyle.Sprint("✗")
		if dep.Verified {
			verified = verifiedStyle.Sprint("✓")
		}
		tw.AppendRow(table.Row{
			nameStyle.Sprint(dep.Target),
			addressStyle.Sprint(dep.Address),
			verified,
			timestampStyle.Sprint(dep.DeployedAt.Format("2006-01-02 15:04:05")),
		})
	}
	tw.Render()

	return nil
}
