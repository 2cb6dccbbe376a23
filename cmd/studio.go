package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smolder-dev/smolderctl/internal/api"
	"github.com/smolder-dev/smolderctl/internal/invoke"
	"github.com/smolder-dev/smolderctl/internal/ui"
)

var studioCmd = &cobra.Command{
	Use:   "studio <deployment-id>",
	Short: "Interactive TUI for exploring and invoking a deployment",
	Long: `Open the deployment studio: browse the contract's read and write
functions, fill in parameters in a form, submit, and watch the call history
refresh as transactions confirm.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseDeploymentID(args[0])
		if err != nil {
			return err
		}

		client := newClient()
		ctx := cmd.Context()

		deps, err := client.ListDeployments(ctx)
		if err != nil {
			return fmt.Errorf("listing deployments: %w", err)
		}
		var dep *api.Deployment
		for i := range deps {
			if deps[i].ID == id {
				dep = &deps[i]
				break
			}
		}
		if dep == nil {
			return fmt.Errorf("deployment %d not found — run `smolderctl deployments`", id)
		}

		funcs, err := client.ListFunctions(ctx, id)
		if err != nil {
			return fmt.Errorf("listing functions: %w", err)
		}
		wallets, err := client.ListWallets(ctx)
		if err != nil {
			return fmt.Errorf("listing wallets: %w", err)
		}

		dispatcher := &invoke.Dispatcher{Client: client}
		reconciler := invoke.NewReconciler(client)

		// Navigator → form → back to navigator, until the user quits.
		for {
			entry, err := ui.RunStudio(ui.NewStudioModel(*dep, funcs))
			if err != nil {
				return err
			}
			if entry == nil {
				return nil
			}

			form := ui.NewFormModel(*dep, *entry, wallets, cfg.DefaultWallet,
				dispatcher, reconciler, ctx)
			if err := ui.RunForm(form); err != nil {
				return err
			}
		}
	},
}
