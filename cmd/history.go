package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smolder-dev/smolderctl/internal/ui"
)

var historyCmd = &cobra.Command{
	Use:   "history <deployment-id>",
	Short: "Show a deployment's call history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseDeploymentID(args[0])
		if err != nil {
			return err
		}

		entries, err := newClient().ListHistory(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("listing history: %w", err)
		}
		if len(entries) == 0 {
			fmt.Println(ui.Info("No calls recorded for this deployment yet."))
			return nil
		}

		fmt.Println(ui.HistoryTable(entries).Render())
		fmt.Println(ui.HistorySummary(entries))
		return nil
	},
}
