package invoke

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smolder-dev/smolderctl/internal/api"
	"github.com/smolder-dev/smolderctl/internal/schema"
)

// mockServer counts hits and replays canned responses per path suffix.
type mockServer struct {
	calls atomic.Int64
	sends atomic.Int64
	srv   *httptest.Server

	lastSendBody map[string]json.RawMessage
}

func newMockServer(t *testing.T, callBody, sendBody string, status int) *mockServer {
	t.Helper()
	m := &mockServer{}
	m.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/api/deployments/1/call":
			m.calls.Add(1)
			w.WriteHeader(status)
			w.Write([]byte(callBody))
		case r.URL.Path == "/api/deployments/1/send":
			m.sends.Add(1)
			json.NewDecoder(r.Body).Decode(&m.lastSendBody)
			w.WriteHeader(status)
			w.Write([]byte(sendBody))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(m.srv.Close)
	return m
}

func (m *mockServer) client() *api.Client { return api.New(m.srv.URL, "") }

var transferFn = api.FunctionSchema{
	Name:      "transfer",
	Signature: "transfer(address,uint256)",
	Inputs: []schema.ParamSchema{
		{Name: "to", TypeTag: "address"},
		{Name: "amount", TypeTag: "uint256"},
	},
	StateMutability: "nonpayable",
}

var balanceFn = api.FunctionSchema{
	Name:      "balanceOf",
	Signature: "balanceOf(address)",
	Inputs: []schema.ParamSchema{
		{Name: "account", TypeTag: "address"},
	},
	StateMutability: "view",
}

func TestDispatchReadSuccess(t *testing.T) {
	m := newMockServer(t, `{"result":"999"}`, ``, http.StatusOK)
	d := Dispatcher{Client: m.client()}

	out := d.Dispatch(context.Background(), Request{
		Mode:         Read,
		DeploymentID: 1,
		Function:     balanceFn,
		Inputs:       map[string]string{"account": "0xabc"},
	})

	assert.True(t, out.OK)
	assert.Equal(t, `"999"`, string(out.Payload))
	assert.Equal(t, int64(1), m.calls.Load())
	assert.Equal(t, int64(0), m.sends.Load())
}

func TestDispatchWriteSuccess(t *testing.T) {
	m := newMockServer(t, ``, `{"tx_hash":"0xbeef","history_id":9}`, http.StatusOK)
	d := Dispatcher{Client: m.client()}

	out := d.Dispatch(context.Background(), Request{
		Mode:         Write,
		DeploymentID: 1,
		Function:     transferFn,
		Inputs:       map[string]string{"to": "0xabc", "amount": "5"},
		Wallet:       "deployer",
	})

	require.True(t, out.OK)
	assert.Equal(t, "0xbeef", out.TxHash)
	assert.Equal(t, int64(9), out.HistoryID)
	assert.Equal(t, int64(1), m.sends.Load())

	// Marshalled params rode along in schema order.
	var params []json.RawMessage
	require.NoError(t, json.Unmarshal(m.lastSendBody["params"], &params))
	require.Len(t, params, 2)
	assert.Equal(t, `"0xabc"`, string(params[0]))
	assert.Equal(t, `"5"`, string(params[1]))
}

func TestDispatchWriteWithoutWalletFailsLocally(t *testing.T) {
	m := newMockServer(t, ``, `{"tx_hash":"0x1","history_id":1}`, http.StatusOK)
	d := Dispatcher{Client: m.client()}

	out := d.Dispatch(context.Background(), Request{
		Mode:         Write,
		DeploymentID: 1,
		Function:     transferFn,
		Inputs:       map[string]string{"to": "0xabc", "amount": "5"},
	})

	assert.False(t, out.OK)
	assert.Contains(t, out.Err, "wallet")
	// The server was never contacted.
	assert.Equal(t, int64(0), m.sends.Load())
	assert.Equal(t, int64(0), m.calls.Load())
}

func TestDispatchReadIgnoresWallet(t *testing.T) {
	m := newMockServer(t, `{"result":null}`, ``, http.StatusOK)
	d := Dispatcher{Client: m.client()}

	out := d.Dispatch(context.Background(), Request{
		Mode:         Read,
		DeploymentID: 1,
		Function:     balanceFn,
		Inputs:       map[string]string{},
		// No wallet — fine for reads.
	})
	assert.True(t, out.OK)
	assert.Equal(t, int64(1), m.calls.Load())
}

func TestDispatchServerErrorBecomesFailure(t *testing.T) {
	msg := "Function 'transfer' is a read function. Use /call for read operations."
	m := newMockServer(t, ``, msg, http.StatusBadRequest)
	d := Dispatcher{Client: m.client()}

	out := d.Dispatch(context.Background(), Request{
		Mode:         Write,
		DeploymentID: 1,
		Function:     transferFn,
		Inputs:       map[string]string{},
		Wallet:       "deployer",
	})

	assert.False(t, out.OK)
	assert.Equal(t, msg, out.Err)
}

func TestDispatchTransportErrorBecomesFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections
	d := Dispatcher{Client: api.New(srv.URL, "")}

	out := d.Dispatch(context.Background(), Request{
		Mode:         Read,
		DeploymentID: 1,
		Function:     balanceFn,
	})

	assert.False(t, out.OK)
	assert.NotEmpty(t, out.Err)
}

// A fresh dispatch after a failure works: the dispatcher carries no state.
func TestDispatcherReusableAfterFailure(t *testing.T) {
	m := newMockServer(t, `{"result":"1"}`, ``, http.StatusOK)
	d := Dispatcher{Client: m.client()}

	out := d.Dispatch(context.Background(), Request{Mode: Write, DeploymentID: 1, Function: transferFn})
	require.False(t, out.OK)

	out = d.Dispatch(context.Background(), Request{Mode: Read, DeploymentID: 1, Function: balanceFn})
	assert.True(t, out.OK)
}
