package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/divaprotocol/diva-deploy/internal/usecase"
)

var (
	sectionHeaderStyle = color.New(color.Bold, color.FgHiWhite)
	nameStyle          = color.New(color.FgCyan, color.Bold)
	artifactStyle      = color.New(color.FgYellow)
	argsStyle          = color.New(color.Faint)
	verifiedStyle      = color.New(color.FgGreen)
)

// TargetsRenderer renders the deployment target table
type TargetsRenderer struct {
	out  io.Writer
	json bool
}

// NewTargetsRenderer creates a new targets renderer
func NewTargetsRenderer(out io.Writer, asJSON bool) *TargetsRenderer {
	return &TargetsRenderer{
		out:  out,
		json: asJSON,
	}
}

// RenderTargets renders the targets in declaration order
func (r *TargetsRenderer) RenderTargets(result *usecase.ListTargetsResult) error {
	if r.json {
		return writeJSON(r.out, result.Targets)
	}

	if len(result.Targets) == 0 {
		fmt.Fprintln(r.out, "No deployment targets defined")
		return nil
	}

	fmt.Fprintf(r.out, "%s\n\n", sectionHeaderStyle.Sprintf("Deployment Targets (%s):", result.Source))

	tw := newPlainTable(r.out)
	for _, target := range result.Targets {
		verify := ""
		if target.Verify {
			verify = verifiedStyle.Sprint("verify")
		}
		tw.AppendRow(table.Row{
			nameStyle.Sprint(target.Name),
			artifactStyle.Sprint(target.ContractRef()),
			argsStyle.Sprint(target.DisplayArgs()),
			verify,
		})
	}
	tw.Render()
	return nil
}

// newPlainTable returns a borderless, left-aligned table writer
func newPlainTable(out io.Writer) table.Writer {
	tw := table.NewWriter()
	tw.SetOutputMirror(out)
	tw.SetStyle(table.StyleLight)
	tw.Style().Options.SeparateRows = false
	tw.Style().Options.DrawBorder = false
	tw.Style().Options.SeparateHeader = false
	tw.Style().Options.SeparateColumns = false
	tw.Style().Box.PaddingLeft = ""
	tw.Style().Box.PaddingRight = "   "
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft},
		{Number: 3, Align: text.AlignLeft},
		{Number: 4, Align: text.AlignLeft},
	})
	return tw
}
