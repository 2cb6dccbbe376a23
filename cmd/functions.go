package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/smolder-dev/smolderctl/internal/api"
	"github.com/smolder-dev/smolderctl/internal/ui"
)

var functionsCmd = &cobra.Command{
	Use:   "functions <deployment-id>",
	Short: "List a deployment's read and write functions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseDeploymentID(args[0])
		if err != nil {
			return err
		}

		funcs, err := newClient().ListFunctions(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("listing functions: %w", err)
		}

		fmt.Println(ui.StyleHeader.Render("Read Functions:"))
		if len(funcs.Read) == 0 {
			fmt.Println(ui.Meta("  (none)"))
		}
		for _, fn := range funcs.Read {
			fmt.Printf("  %s  %s(%s)\n",
				ui.Meta(ui.Selector(fn.Signature)),
				ui.Val(fn.Name),
				ui.Meta(ui.ParamSig(fn.Inputs)),
			)
		}

		fmt.Println()
		fmt.Println(ui.StyleHeader.Render("Write Functions:"))
		if len(funcs.Write) == 0 {
			fmt.Println(ui.Meta("  (none)"))
		}
		for _, fn := range funcs.Write {
			payable := ""
			if fn.IsPayable() {
				payable = ui.StyleWarning.Render("  payable")
			}
			fmt.Printf("  %s  %s(%s)%s\n",
				ui.Meta(ui.Selector(fn.Signature)),
				ui.Warn(fn.Name),
				ui.Meta(ui.ParamSig(fn.Inputs)),
				payable,
			)
		}
		return nil
	},
}

func parseDeploymentID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid deployment id %q — run `smolderctl deployments` to see ids", arg)
	}
	return id, nil
}

// findFunction looks a function up by name across both sections.
func findFunction(funcs *api.FunctionList, name string) (api.FunctionSchema, bool, error) {
	for _, fn := range funcs.Read {
		if fn.Name == name {
			return fn, false, nil
		}
	}
	for _, fn := range funcs.Write {
		if fn.Name == name {
			return fn, true, nil
		}
	}
	return api.FunctionSchema{}, false, fmt.Errorf("function %q not found on this deployment", name)
}
