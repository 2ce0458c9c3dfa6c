package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/divaprotocol/diva-deploy/internal/usecase"
)

var (
	addressStyle     = color.New(color.FgWhite)
	commandStyle     = color.New(color.FgHiBlack)
	notVerifiedStyle = color.New(color.FgRed)
)

// DeployRenderer renders the outcome of a deployment run
type DeployRenderer struct {
	out  io.Writer
	json bool
}

// NewDeployRenderer creates a new deploy renderer
func NewDeployRenderer(out io.Writer, asJSON bool) *DeployRenderer {
	return &DeployRenderer{
		out:  out,
		json: asJSON,
	}
}

// RenderDeployResult renders finished deployments as a table, or planned ones as commands
func (r *DeployRenderer) RenderDeployResult(result *usecase.DeployContractsResult) error {
	if r.json {
		return writeJSON(r.out, result.Results)
	}

	if len(result.Results) == 0 {
		fmt.Fprintln(r.out, "Nothing deployed")
		return nil
	}

	if result.DryRun {
		return r.renderPlan(result)
	}

	network := "custom"
	if result.Network != nil {
		network = cases.Title(language.English).String(result.Network.Name)
	}
	fmt.Fprintf(r.out, "%s\n\n", sectionHeaderStyle.Sprintf("Deployments on %s:", network))

	tw := newPlainTable(r.out)
	for _, res := range result.Results {
		verified := notVerifiedStyle.Sprint("✗")
		if res.Verified {
			verified = verifiedStyle.Sprint("✓")
		}
		tw.AppendRow(table.Row{
			nameStyle.Sprint(res.Target.Name),
			addressStyle.Sprint(res.Address),
			argsStyle.Sprint(shortHex(res.TxHash)),
			verified,
		})
	}
	tw.Render()
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Deployed %d contract(s)", len(result.Results))))
	return nil
}

func (r *DeployRenderer) renderPlan(result *usecase.DeployContractsResult) error {
	fmt.Fprintf(r.out, "%s\n\n", sectionHeaderStyle.Sprint("Dry run, planned deployments:"))
	for _, res := range result.Results {
		fmt.Fprintf(r.out, "  %s %s\n", nameStyle.Sprint(res.Target.Name), artifactStyle.Sprint(res.Target.Artifact))
		fmt.Fprintf(r.out, "    %s\n", commandStyle.Sprint(strings.Join(res.Command, " ")))
	}
	return nil
}
