package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smolder-dev/smolderctl/internal/ui"
)

var walletsCmd = &cobra.Command{
	Use:   "wallets",
	Short: "List the server's wallets",
	RunE: func(cmd *cobra.Command, args []string) error {
		wallets, err := newClient().ListWallets(cmd.Context())
		if err != nil {
			return fmt.Errorf("listing wallets: %w", err)
		}
		if len(wallets) == 0 {
			fmt.Println(ui.Info("The server has no wallets."))
			return nil
		}

		t := ui.NewTable([]ui.Column{
			{Title: "Name", Width: 16},
			{Title: "Address", Width: 44},
			{Title: "Default", Width: 8},
		})
		for _, w := range wallets {
			def := ""
			if w.Name == cfg.DefaultWallet {
				def = "yes"
			}
			t.AddRow(ui.Row{ui.Val(w.Name), ui.Addr(w.Address), def})
		}
		fmt.Println(t.Render())
		return nil
	},
}

var networksCmd = &cobra.Command{
	Use:   "networks",
	Short: "List the server's networks",
	RunE: func(cmd *cobra.Command, args []string) error {
		networks, err := newClient().ListNetworks(cmd.Context())
		if err != nil {
			return fmt.Errorf("listing networks: %w", err)
		}
		if len(networks) == 0 {
			fmt.Println(ui.Info("The server has no networks configured."))
			return nil
		}

		t := ui.NewTable([]ui.Column{
			{Title: "Name", Width: 16},
			{Title: "Chain ID", Width: 10},
			{Title: "RPC URL", Width: 48},
		})
		for _, n := range networks {
			t.AddRow(ui.Row{ui.NetworkName(n.Name), fmt.Sprintf("%d", n.ChainID), n.RPCURL})
		}
		fmt.Println(t.Render())
		return nil
	},
}
