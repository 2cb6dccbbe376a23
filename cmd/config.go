package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smolder-dev/smolderctl/internal/config"
	"github.com/smolder-dev/smolderctl/internal/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change smolderctl settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		token := "(not set)"
		if config.DefaultKeystore().Token() != "" {
			token = "(set, stored in OS keychain)"
		}
		fmt.Println(ui.KeyValueBlock("Config", [][2]string{
			{"Server", cfg.ServerURL},
			{"Default Wallet", cfg.DefaultWallet},
			{"Default Network", cfg.DefaultNetwork},
			{"API Token", token},
			{"Directory", cfg.Dir()},
		}))
		return nil
	},
}

var configSetServerCmd = &cobra.Command{
	Use:   "set-server <url>",
	Short: "Persist the server URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg.ServerURL = args[0]
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Println(ui.Success("server set to " + args[0]))
		return nil
	},
}

var configSetWalletCmd = &cobra.Command{
	Use:   "set-default-wallet <name>",
	Short: "Persist the default signing wallet for writes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg.DefaultWallet = args[0]
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Println(ui.Success("default wallet set to " + args[0]))
		return nil
	},
}

var configSetNetworkCmd = &cobra.Command{
	Use:   "set-default-network <name>",
	Short: "Persist the default network for deploys",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg.DefaultNetwork = args[0]
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Println(ui.Success("default network set to " + args[0]))
		return nil
	},
}

var configSetTokenCmd = &cobra.Command{
	Use:   "set-token <token>",
	Short: "Store the server API token in the OS keychain",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.DefaultKeystore().SetToken(args[0]); err != nil {
			return fmt.Errorf("storing token: %w", err)
		}
		fmt.Println(ui.Success("API token stored"))
		return nil
	},
}

var configClearTokenCmd = &cobra.Command{
	Use:   "clear-token",
	Short: "Remove the stored server API token",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.DefaultKeystore().ClearToken(); err != nil {
			return fmt.Errorf("clearing token: %w", err)
		}
		fmt.Println(ui.Success("API token removed"))
		return nil
	},
}

func init() {
	configCmd.AddCommand(
		configSetServerCmd,
		configSetWalletCmd,
		configSetNetworkCmd,
		configSetTokenCmd,
		configClearTokenCmd,
	)
}
