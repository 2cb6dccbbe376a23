// Package invoke routes marshalled arguments to the server and reduces the
// asynchronous outcome. One Dispatcher serves every call site — the call and
// send commands, the deploy flows and the interactive studio all feed it the
// same way, so the coercion and dispatch rules cannot drift between them.
package invoke

import (
	"context"

	"github.com/smolder-dev/smolderctl/internal/api"
	"github.com/smolder-dev/smolderctl/internal/schema"
)

// Mode selects between a side-effect-free call and a signed transaction.
type Mode int

const (
	Read Mode = iota
	Write
)

// Request is one function invocation. Inputs is keyed by parameter name;
// missing keys coerce to the parameter's empty default. Wallet and Value are
// only meaningful for Write.
type Request struct {
	Mode         Mode
	DeploymentID int64
	Function     api.FunctionSchema
	Inputs       map[string]string
	Wallet       string
	Value        string
}

// Outcome is the reduced result of one dispatch. A new submission replaces
// any prior outcome; outcomes are never merged. Exactly one of Payload
// (reads) or TxHash (writes) is set when OK.
type Outcome struct {
	OK        bool
	Payload   []byte // decoded read result, raw JSON
	TxHash    string
	HistoryID int64
	Err       string
}

func failure(msg string) Outcome {
	if msg == "" {
		msg = "request failed"
	}
	return Outcome{Err: msg}
}

// Dispatcher validates, marshals and executes invocations against the server.
// It holds no state between calls and does not serialize concurrent
// dispatches; a caller showing a result UI is expected to disable
// resubmission while one is in flight.
type Dispatcher struct {
	Client *api.Client
}

// Dispatch runs one invocation end to end. It is total: transport errors,
// server-reported errors and local validation failures all come back as a
// failed Outcome, never as a panic or a Go error — the dispatcher stays
// usable for the next submission.
func (d *Dispatcher) Dispatch(ctx context.Context, req Request) Outcome {
	if req.Mode == Write && req.Wallet == "" {
		// Local validation only — the server is never contacted for a
		// request already known to be invalid.
		return failure("no wallet selected — a write invocation must be signed")
	}

	params := schema.Marshal(req.Function.Inputs, req.Inputs)

	switch req.Mode {
	case Write:
		resp, err := d.Client.Send(ctx, req.DeploymentID, api.SendRequest{
			FunctionName: req.Function.Name,
			Params:       params,
			WalletName:   req.Wallet,
			Value:        req.Value,
		})
		if err != nil {
			return failure(err.Error())
		}
		return Outcome{OK: true, TxHash: resp.TxHash, HistoryID: resp.HistoryID}

	default:
		resp, err := d.Client.Call(ctx, req.DeploymentID, api.CallRequest{
			FunctionName: req.Function.Name,
			Params:       params,
		})
		if err != nil {
			return failure(err.Error())
		}
		return Outcome{OK: true, Payload: resp.Result}
	}
}
