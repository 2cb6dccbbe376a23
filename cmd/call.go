package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smolder-dev/smolderctl/internal/invoke"
	"github.com/smolder-dev/smolderctl/internal/schema"
	"github.com/smolder-dev/smolderctl/internal/ui"
)

var callParams []string

var callCmd = &cobra.Command{
	Use:   "call <deployment-id> <function>",
	Short: "Call a read-only contract function",
	Long: `Call a read-only (view/pure) function on a deployment.

Parameters are given as repeated -p name=value flags. Array and struct
parameters take one JSON literal for the whole value; parameters left out
default to empty (false / "0" / "").

Examples:
  smolderctl call 3 totalSupply
  smolderctl call 3 balanceOf -p account=0xYourAddress
  smolderctl call 3 slotOf -p ids='[1,2,3]' -p config='{"owner":"0xabc","cap":"5"}'`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseDeploymentID(args[0])
		if err != nil {
			return err
		}
		funcName := args[1]

		inputs, err := parseParams(callParams)
		if err != nil {
			return err
		}

		client := newClient()
		funcs, err := client.ListFunctions(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("listing functions: %w", err)
		}
		fn, isWrite, err := findFunction(funcs, funcName)
		if err != nil {
			return err
		}
		if isWrite {
			return fmt.Errorf("%q changes state — use `smolderctl send` for write functions", funcName)
		}

		printHints(schema.Lint(fn.Inputs, inputs))
		printPayload(fn.Inputs, inputs)

		spin := ui.NewSpinner(fmt.Sprintf("Calling %s()...", funcName))
		spin.Start()
		d := invoke.Dispatcher{Client: client}
		out := d.Dispatch(cmd.Context(), invoke.Request{
			Mode:         invoke.Read,
			DeploymentID: id,
			Function:     fn,
			Inputs:       inputs,
		})
		spin.Stop()

		if !out.OK {
			fmt.Println(ui.Err(out.Err))
			return fmt.Errorf("call failed")
		}

		fmt.Println(ui.KeyValueBlock("Contract Call", [][2]string{
			{"Function", fn.Signature},
			{"Result", string(out.Payload)},
		}))
		return nil
	},
}

func printHints(hints []schema.Hint) {
	for _, h := range hints {
		fmt.Println(ui.Warn(h.Param + ": " + h.Message))
	}
}

// printPayload shows the coerced parameter payload under --verbose.
func printPayload(params []schema.ParamSchema, inputs map[string]string) {
	if !verbose {
		return
	}
	body, err := json.Marshal(schema.Marshal(params, inputs))
	if err != nil {
		return
	}
	fmt.Println(ui.Meta("params: " + string(body)))
}

func init() {
	callCmd.Flags().StringArrayVarP(&callParams, "param", "p", nil, "parameter as name=value (repeatable)")
}
