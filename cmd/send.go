package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smolder-dev/smolderctl/internal/api"
	"github.com/smolder-dev/smolderctl/internal/invoke"
	"github.com/smolder-dev/smolderctl/internal/schema"
	"github.com/smolder-dev/smolderctl/internal/ui"
)

var (
	sendParams []string
	sendWallet string
	sendValue  string
	sendNoWait bool
	sendYes    bool
)

var sendCmd = &cobra.Command{
	Use:   "send <deployment-id> <function>",
	Short: "Send a state-changing contract transaction",
	Long: `Invoke a write (nonpayable/payable) function on a deployment. The server
signs with the named wallet and broadcasts the transaction.

Parameters work like in call: repeated -p name=value flags, with one JSON
literal per array/struct parameter. Payable functions accept --value <wei>.

Examples:
  smolderctl send 3 transfer -p to=0xRecipient -p amount=1000 --wallet deployer
  smolderctl send 3 fund --wallet deployer --value 50000000000000000`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseDeploymentID(args[0])
		if err != nil {
			return err
		}
		funcName := args[1]

		wallet := sendWallet
		if wallet == "" {
			wallet = cfg.DefaultWallet
		}

		inputs, err := parseParams(sendParams)
		if err != nil {
			return err
		}

		value, err := schema.ParseValue(sendValue)
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
		if !isWrite {
			return fmt.Errorf("%q is read-only — use `smolderctl call` instead", funcName)
		}
		if value != "" && !fn.IsPayable() {
			return fmt.Errorf("%q is not payable — drop --value", funcName)
		}

		printHints(schema.Lint(fn.Inputs, inputs))
		printPayload(fn.Inputs, inputs)

		if !sendYes && !ui.Confirm(fmt.Sprintf("Send %s() signed by %q?", funcName, wallet)) {
			fmt.Println(ui.Meta("aborted"))
			return nil
		}

		spin := ui.NewSpinner(fmt.Sprintf("Sending %s()...", funcName))
		spin.Start()
		d := invoke.Dispatcher{Client: client}
		out := d.Dispatch(cmd.Context(), invoke.Request{
			Mode:         invoke.Write,
			DeploymentID: id,
			Function:     fn,
			Inputs:       inputs,
			Wallet:       wallet,
			Value:        value,
		})
		spin.Stop()

		if !out.OK {
			fmt.Println(ui.Err(out.Err))
			return fmt.Errorf("send failed")
		}

		fmt.Println(ui.Success("transaction submitted"))
		fmt.Printf("  %s %s\n", ui.Meta("Tx Hash: "), ui.Addr(out.TxHash))

		if sendNoWait {
			return nil
		}

		// Follow the history until the transaction settles (or we time out).
		spin = ui.NewSpinner("Waiting for confirmation...")
		spin.Start()
		var latest []api.HistoryEntry
		invoke.NewReconciler(client).Refresh(cmd.Context(), id, func(entries []api.HistoryEntry) {
			latest = entries
		})
		spin.Stop()

		for _, h := range latest {
			if h.ID == out.HistoryID {
				fmt.Printf("  %s %s\n", ui.Meta("Status:  "), historyStatusText(h))
				break
			}
		}
		return nil
	},
}

func historyStatusText(h api.HistoryEntry) string {
	switch h.Status {
	case "success":
		return ui.StyleSuccess.Render(h.Status)
	case "failed", "reverted":
		msg := h.Status
		if h.ErrorMessage != "" {
			msg += " — " + h.ErrorMessage
		}
		return ui.StyleError.Render(msg)
	default:
		return ui.StyleWarning.Render(h.Status)
	}
}

func init() {
	sendCmd.Flags().StringArrayVarP(&sendParams, "param", "p", nil, "parameter as name=value (repeatable)")
	sendCmd.Flags().StringVar(&sendWallet, "wallet", "", "signing wallet name (default: config)")
	sendCmd.Flags().StringVar(&sendValue, "value", "", "wei to attach (payable functions only)")
	sendCmd.Flags().BoolVar(&sendNoWait, "no-wait", false, "return immediately, don't poll for confirmation")
	sendCmd.Flags().BoolVarP(&sendYes, "yes", "y", false, "skip the confirmation prompt")
}
