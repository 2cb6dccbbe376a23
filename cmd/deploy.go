package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smolder-dev/smolderctl/internal/api"
	"github.com/smolder-dev/smolderctl/internal/schema"
	"github.com/smolder-dev/smolderctl/internal/ui"
)

var (
	deployParams  []string
	deployNetwork string
	deployWallet  string
	deployValue   string
	deployYes     bool
)

var deployCmd = &cobra.Command{
	Use:   "deploy <artifact>",
	Short: "Deploy a compiled artifact",
	Long: `Deploy a compiled contract artifact through the server.

Constructor arguments are given exactly like function parameters: repeated
-p name=value flags, coerced against the constructor schema from the
artifact. A payable constructor accepts --value <wei>.

Examples:
  smolderctl deploy Counter --network local --wallet deployer
  smolderctl deploy Token --network sepolia --wallet deployer \
      -p name=MyToken -p symbol=MTK -p initialSupply=1000000`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		artifact := args[0]

		network := deployNetwork
		if network == "" {
			network = cfg.DefaultNetwork
		}
		if network == "" {
			return fmt.Errorf("no network — pass --network or persist one with `smolderctl config set-default-network`")
		}
		wallet := deployWallet
		if wallet == "" {
			wallet = cfg.DefaultWallet
		}
		if wallet == "" {
			return fmt.Errorf("no wallet — a deployment must be signed; pass --wallet")
		}

		inputs, err := parseParams(deployParams)
		if err != nil {
			return err
		}
		value, err := schema.ParseValue(deployValue)
		if err != nil {
			return err
		}

		client := newClient()
		details, err := client.GetArtifactDetails(cmd.Context(), artifact)
		if err != nil {
			return fmt.Errorf("fetching artifact: %w", err)
		}
		if !details.HasBytecode {
			return fmt.Errorf("artifact %q has no bytecode — interfaces and abstract contracts cannot be deployed", artifact)
		}

		// The constructor schema drives the same marshaller as function
		// calls; no constructor means no arguments.
		var ctorInputs []schema.ParamSchema
		if details.Constructor != nil {
			ctorInputs = details.Constructor.Inputs
			if value != "" && !details.Constructor.IsPayable() {
				return fmt.Errorf("constructor of %q is not payable — drop --value", artifact)
			}
		} else if value != "" {
			return fmt.Errorf("%q has no constructor — drop --value", artifact)
		}
		printHints(schema.Lint(ctorInputs, inputs))
		ctorArgs := schema.Marshal(ctorInputs, inputs)

		if !deployYes && !ui.Confirm(fmt.Sprintf("Deploy %s to %s signed by %q?", artifact, network, wallet)) {
			fmt.Println(ui.Meta("aborted"))
			return nil
		}

		spin := ui.NewSpinner(fmt.Sprintf("Deploying %s to %s...", artifact, network))
		spin.Start()
		resp, err := client.Deploy(cmd.Context(), api.DeployRequest{
			ArtifactName:    artifact,
			NetworkName:     network,
			WalletName:      wallet,
			ConstructorArgs: ctorArgs,
			Value:           value,
		})
		spin.Stop()
		if err != nil {
			fmt.Println(ui.Err(err.Error()))
			return fmt.Errorf("deploy failed")
		}

		pairs := [][2]string{
			{"Artifact", artifact},
			{"Network", network},
			{"Tx Hash", resp.TxHash},
		}
		if resp.ContractAddress != "" {
			pairs = append(pairs, [2]string{"Address", resp.ContractAddress})
		}
		if resp.DeploymentID != nil {
			pairs = append(pairs, [2]string{"Deployment", fmt.Sprintf("%d", *resp.DeploymentID)})
		}
		fmt.Println(ui.KeyValueBlock("Deployment", pairs))
		if resp.DeploymentID != nil {
			fmt.Println(ui.Hint(fmt.Sprintf("Explore it with: smolderctl studio %d", *resp.DeploymentID)))
		}
		return nil
	},
}

func init() {
	deployCmd.Flags().StringArrayVarP(&deployParams, "param", "p", nil, "constructor argument as name=value (repeatable)")
	deployCmd.Flags().StringVar(&deployNetwork, "network", "", "target network (default: config)")
	deployCmd.Flags().StringVar(&deployWallet, "wallet", "", "signing wallet name (default: config)")
	deployCmd.Flags().StringVar(&deployValue, "value", "", "wei to attach (payable constructors only)")
	deployCmd.Flags().BoolVarP(&deployYes, "yes", "y", false, "skip the confirmation prompt")
}
