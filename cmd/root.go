package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smolder-dev/smolderctl/internal/api"
	"github.com/smolder-dev/smolderctl/internal/config"
)

// Version is the current release. Overridable via build ldflags:
//
//	go build -ldflags "-X github.com/smolder-dev/smolderctl/cmd.Version=1.2.3" .
var Version = "0.1.0"

var (
	cfgDir    string
	cfg       *config.Config
	serverURL string
	verbose   bool
)

// rootCmd is the top-level command.
var rootCmd = &cobra.Command{
	Use:   "smolderctl",
	Short: "Terminal client for a smolder contract server",
	Long: `smolderctl — call, send and deploy smart contracts through a smolder server.

  Browse deployments, inspect their read/write functions, invoke them with
  typed parameters (interactively or from flags), deploy artifacts, and
  follow call history as transactions confirm.

The server owns networks, wallets, contracts and history; smolderctl only
talks to its HTTP API. Point it at a server with --server or persist one
with: smolderctl config set-server <url>`,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		var err error
		cfg, err = config.Load(cfgDir)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if serverURL != "" {
			cfg.ServerURL = serverURL
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newClient builds the API client for the configured server, attaching the
// keyring-stored token when one exists.
func newClient() *api.Client {
	return api.New(cfg.ServerURL, config.DefaultKeystore().Token())
}

// parseParams turns repeated "-p name=value" flags into a raw input map.
// Parameters not mentioned stay absent and coerce to their empty defaults.
func parseParams(pairs []string) (map[string]string, error) {
	inputs := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid parameter %q — expected name=value", pair)
		}
		inputs[name] = value
	}
	return inputs, nil
}

func init() {
	// SMOLDERCTL_CONFIG_DIR env var overrides --config flag.
	if envDir := os.Getenv("SMOLDERCTL_CONFIG_DIR"); envDir != "" {
		cfgDir = envDir
	}

	rootCmd.PersistentFlags().StringVar(&cfgDir, "config", cfgDir, "config directory (default: ~/.smolderctl)")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "server URL (default: config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Register all sub-commands.
	rootCmd.AddCommand(
		deploymentsCmd,
		functionsCmd,
		callCmd,
		sendCmd,
		deployCmd,
		artifactsCmd,
		historyCmd,
		walletsCmd,
		networksCmd,
		studioCmd,
		configCmd,
	)
}
