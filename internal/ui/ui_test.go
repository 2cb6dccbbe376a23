package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smolder-dev/smolderctl/internal/api"
	"github.com/smolder-dev/smolderctl/internal/schema"
)

func TestSelector(t *testing.T) {
	tests := []struct {
		sig      string
		expected string
	}{
		{"transfer(address,uint256)", "0xa9059cbb"},
		{"balanceOf(address)", "0x70a08231"},
		{"totalSupply()", "0x18160ddd"},
		{"approve(address,uint256)", "0x095ea7b3"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.sig, func(t *testing.T) {
			assert.Equal(t, tt.expected, Selector(tt.sig))
		})
	}
}

func TestTruncateAddr(t *testing.T) {
	assert.Equal(t, "0x1234…5678", TruncateAddr("0x12345678901234567890123456789012345678"))
	assert.Equal(t, "0xshort", TruncateAddr("0xshort"))
}

func TestParamSig(t *testing.T) {
	params := []schema.ParamSchema{
		{Name: "to", TypeTag: "address"},
		{Name: "", TypeTag: "uint256"},
	}
	assert.Equal(t, "address to, uint256", ParamSig(params))
	assert.Equal(t, "", ParamSig(nil))
}

func TestTableRenderPadsAndTruncates(t *testing.T) {
	table := NewTable([]Column{
		{Title: "Name", Width: 6},
		{Title: "Value", Width: 4},
	})
	table.AddRow(Row{"much-too-long", "ok"})

	out := table.Render()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3) // header, divider, one row
	assert.Contains(t, lines[2], "much-t")
	assert.NotContains(t, lines[2], "much-too")
}

func TestPlaceholder(t *testing.T) {
	tests := []struct {
		name string
		p    schema.ParamSchema
		want string
	}{
		{"bool", schema.ParamSchema{TypeTag: "bool"}, "true | false"},
		{"numeric", schema.ParamSchema{TypeTag: "uint256"}, "0"},
		{"address", schema.ParamSchema{TypeTag: "address"}, "0x… (20 bytes)"},
		{"bytes", schema.ParamSchema{TypeTag: "bytes"}, "0x…"},
		{"string", schema.ParamSchema{TypeTag: "string"}, "text"},
		{"array", schema.ParamSchema{TypeTag: "uint256[]"}, "[…, …]"},
		{
			"tuple lists its fields",
			schema.ParamSchema{TypeTag: "tuple", Fields: []schema.ParamSchema{
				{Name: "to", TypeTag: "address"},
				{Name: "amount", TypeTag: "uint256"},
			}},
			`{"to": …, "amount": …}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, placeholder(tt.p))
		})
	}
}

func TestHistoryTable(t *testing.T) {
	entries := []api.HistoryEntry{
		{CreatedAt: "2026-08-28 10:00", FunctionName: "mint", CallType: "write", Status: "pending", TxHash: "0x1234567890abcdef", WalletName: "deployer"},
		{CreatedAt: "2026-08-28 09:00", FunctionName: "balanceOf", CallType: "read", Status: "success"},
	}

	out := HistoryTable(entries).Render()
	assert.Contains(t, out, "mint")
	assert.Contains(t, out, "balanceOf")
	assert.Contains(t, out, "deployer")

	assert.Contains(t, HistorySummary(entries), "2 call(s), 1 pending")
	assert.Contains(t, HistorySummary(entries[1:]), "1 call(s)")
}

// Every status the server's history schema allows renders somewhere visible
// in both the table cell and the form's history line.
func TestHistoryStatusStyling(t *testing.T) {
	for _, status := range []string{"pending", "success", "failed", "reverted"} {
		h := api.HistoryEntry{Status: status}
		assert.Contains(t, historyStatus(h), status)
		assert.Contains(t, historyLine(h), status)
	}
	assert.Contains(t, historyStatus(api.HistoryEntry{Status: "odd"}), "odd")
}

func TestNewStudioModelOrdersReadsFirst(t *testing.T) {
	funcs := &api.FunctionList{
		Read:  []api.FunctionSchema{{Name: "peek"}},
		Write: []api.FunctionSchema{{Name: "poke"}, {Name: "mint"}},
	}
	m := NewStudioModel(api.Deployment{ID: 1}, funcs)

	require.Len(t, m.Entries, 3)
	assert.Equal(t, "peek", m.Entries[0].Fn.Name)
	assert.False(t, m.Entries[0].IsWrite)
	assert.True(t, m.Entries[1].IsWrite)
	assert.True(t, m.Entries[2].IsWrite)
}
