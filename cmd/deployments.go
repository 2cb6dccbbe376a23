package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smolder-dev/smolderctl/internal/ui"
)

var deploymentsCmd = &cobra.Command{
	Use:   "deployments",
	Short: "List deployments known to the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := newClient().ListDeployments(cmd.Context())
		if err != nil {
			return fmt.Errorf("listing deployments: %w", err)
		}
		if len(deps) == 0 {
			fmt.Println(ui.Info("No deployments yet."))
			fmt.Println(ui.Hint("Deploy one with: smolderctl deploy <artifact> --network <name> --wallet <name>"))
			return nil
		}

		t := ui.NewTable([]ui.Column{
			{Title: "ID", Width: 5},
			{Title: "Contract", Width: 20},
			{Title: "Network", Width: 14},
			{Title: "Address", Width: 44},
			{Title: "Ver", Width: 4},
			{Title: "Current", Width: 8},
		})
		for _, d := range deps {
			current := ""
			if d.IsCurrent {
				current = "yes"
			}
			t.AddRow(ui.Row{
				fmt.Sprintf("%d", d.ID),
				ui.Val(d.ContractName),
				ui.NetworkName(d.NetworkName),
				ui.Addr(d.Address),
				fmt.Sprintf("%d", d.Version),
				current,
			})
		}
		fmt.Println(t.Render())
		fmt.Println(ui.Meta(fmt.Sprintf("%d deployment(s)", len(deps))))
		return nil
	},
}
