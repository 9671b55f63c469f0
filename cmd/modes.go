package cmd

import (
	"fmt"
	"strings"

	"github.com/Mohsinsiddi/fixgen/internal/fixture"
	"github.com/Mohsinsiddi/fixgen/internal/ui"
	"github.com/spf13/cobra"
)

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List the supported encoding modes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s\n\n", ui.StyleTitle.Render("Encoding Modes"))
		fmt.Fprint(out, modesTable(fixture.Modes()).Render())
		return nil
	},
}

// modesTable lays out one row per mode. The layout column lists the
// words in order with their ABI types.
func modesTable(modes []fixture.Mode) *ui.Table {
	tbl := ui.NewTable(
		ui.Column{Title: "Mode", Style: ui.ModeName},
		ui.Column{Title: "Words"},
		ui.Column{Title: "Scale"},
		ui.Column{Title: "txType", Style: ui.Meta},
		ui.Column{Title: "Layout", Style: ui.Meta},
	)
	for _, m := range modes {
		scale, flag := "-", "-"
		if !m.IsLength() {
			scale = fmt.Sprintf("1e%d", m.Decimals)
		}
		layout := make([]string, len(m.Columns))
		for i, c := range m.Columns {
			layout[i] = c.Name + ":" + c.Type
			if c.Kind == fixture.KindFlag {
				flag = c.Type
			}
		}
		tbl.AddRow(m.Name, fmt.Sprintf("%d", len(m.Columns)), scale, flag, strings.Join(layout, " "))
	}
	return tbl
}
