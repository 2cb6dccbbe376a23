package ui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smolder-dev/smolderctl/internal/api"
	"github.com/smolder-dev/smolderctl/internal/invoke"
	"github.com/smolder-dev/smolderctl/internal/schema"
)

func testFormModel(t *testing.T, entry StudioEntry, wallets []api.Wallet, defaultWallet string) FormModel {
	t.Helper()
	// Points at nothing — these tests never reach the network.
	client := api.New("http://127.0.0.1:1", "")
	return NewFormModel(
		api.Deployment{ID: 1, ContractName: "Token"},
		entry, wallets, defaultWallet,
		&invoke.Dispatcher{Client: client},
		invoke.NewReconciler(client),
		context.Background(),
	)
}

func keyMsg(s string) tea.KeyMsg {
	if s == "enter" {
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	if s == "tab" {
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var mintEntry = StudioEntry{
	IsWrite: true,
	Fn: api.FunctionSchema{
		Name:      "mint",
		Signature: "mint(address,uint256)",
		Inputs: []schema.ParamSchema{
			{Name: "to", TypeTag: "address"},
			{Name: "amount", TypeTag: "uint256"},
		},
		StateMutability: "nonpayable",
	},
}

func TestFormTypingFillsFocusedInput(t *testing.T) {
	m := testFormModel(t, mintEntry, nil, "")

	next, _ := m.Update(keyMsg("0xab"))
	fm := next.(FormModel)
	inputs := fm.rawInputs()
	assert.Equal(t, "0xab", inputs["to"])
	assert.Equal(t, "", inputs["amount"])

	next, _ = fm.Update(keyMsg("tab"))
	fm = next.(FormModel)
	next, _ = fm.Update(keyMsg("7"))
	fm = next.(FormModel)
	assert.Equal(t, "7", fm.rawInputs()["amount"])
}

func TestFormSkipsValueFieldForNonPayable(t *testing.T) {
	m := testFormModel(t, mintEntry, []api.Wallet{{Name: "deployer"}}, "deployer")

	// mint is a write but not payable: value is inactive, wallet is active.
	assert.False(t, m.fieldActive(m.valuePos()))
	assert.True(t, m.fieldActive(m.walletPos()))

	// Cursor walks to, amount, wallet, submit — never the value field.
	pos := m.nextField(len(m.inputs)-1, +1)
	assert.Equal(t, m.walletPos(), pos)
}

func TestFormReadHasNoWalletOrValue(t *testing.T) {
	entry := StudioEntry{Fn: api.FunctionSchema{
		Name:            "balanceOf",
		Inputs:          []schema.ParamSchema{{Name: "account", TypeTag: "address"}},
		StateMutability: "view",
	}}
	m := testFormModel(t, entry, nil, "")

	assert.False(t, m.fieldActive(m.valuePos()))
	assert.False(t, m.fieldActive(m.walletPos()))
	assert.Equal(t, m.submitPos(), m.nextField(0, +1))
}

func TestFormSubmitWithoutWalletProducesLocalFailure(t *testing.T) {
	m := testFormModel(t, mintEntry, nil, "")
	m.focus = m.submitPos()

	next, cmd := m.Update(keyMsg("enter"))
	fm := next.(FormModel)
	require.True(t, fm.submitting)
	require.NotNil(t, cmd)

	// The dispatch runs inside the command; no wallet means it fails
	// before any network I/O.
	msg := cmd()
	out, ok := msg.(outcomeMsg)
	require.True(t, ok)
	assert.False(t, out.out.OK)
	assert.Contains(t, out.out.Err, "wallet")

	next, _ = fm.Update(out)
	fm = next.(FormModel)
	assert.False(t, fm.submitting)
	require.NotNil(t, fm.outcome)
	assert.False(t, fm.outcome.OK)
}

func TestFormIgnoresKeysWhileSubmitting(t *testing.T) {
	m := testFormModel(t, mintEntry, nil, "")
	m.submitting = true

	next, _ := m.Update(keyMsg("x"))
	fm := next.(FormModel)
	assert.Equal(t, "", fm.rawInputs()["to"])
}

func TestFormDefaultWalletPreselected(t *testing.T) {
	wallets := []api.Wallet{{Name: "alice"}, {Name: "bob"}}
	m := testFormModel(t, mintEntry, wallets, "bob")
	assert.Equal(t, 1, m.walletIdx)

	m = testFormModel(t, mintEntry, wallets, "nobody")
	assert.Equal(t, -1, m.walletIdx)
}
