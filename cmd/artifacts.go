package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smolder-dev/smolderctl/internal/ui"
)

var artifactsCmd = &cobra.Command{
	Use:   "artifacts [name]",
	Short: "List compiled artifacts, or show one artifact's constructor",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()

		if len(args) == 0 {
			artifacts, err := client.ListArtifacts(cmd.Context())
			if err != nil {
				return fmt.Errorf("listing artifacts: %w", err)
			}
			if len(artifacts) == 0 {
				fmt.Println(ui.Info("No artifacts found — has the project been built?"))
				return nil
			}
			t := ui.NewTable([]ui.Column{
				{Title: "Name", Width: 24},
				{Title: "Source", Width: 36},
				{Title: "Deployable", Width: 10},
			})
			for _, a := range artifacts {
				deployable := ""
				if a.HasBytecode {
					deployable = "yes"
				}
				t.AddRow(ui.Row{ui.Val(a.Name), ui.Meta(a.SourcePath), deployable})
			}
			fmt.Println(t.Render())
			fmt.Println(ui.Meta(fmt.Sprintf("%d artifact(s)", len(artifacts))))
			return nil
		}

		details, err := client.GetArtifactDetails(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("fetching artifact: %w", err)
		}

		pairs := [][2]string{
			{"Name", details.Name},
			{"Source", details.SourcePath},
			{"Deployable", fmt.Sprintf("%v", details.HasBytecode)},
			{"In Registry", fmt.Sprintf("%v", details.InRegistry)},
		}
		if details.Constructor == nil {
			pairs = append(pairs, [2]string{"Constructor", "(none)"})
		} else {
			pairs = append(pairs,
				[2]string{"Constructor", "(" + ui.ParamSig(details.Constructor.Inputs) + ")"},
				[2]string{"Payable", fmt.Sprintf("%v", details.Constructor.IsPayable())},
			)
		}
		fmt.Println(ui.KeyValueBlock("Artifact", pairs))
		return nil
	},
}
