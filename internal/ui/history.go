package ui

import (
	"fmt"

	"github.com/smolder-dev/smolderctl/internal/api"
)

// HistoryTable renders a deployment's call history, newest first, the way
// the server returns it.
func HistoryTable(entries []api.HistoryEntry) *Table {
	t := NewTable([]Column{
		{Title: "When", Width: 20},
		{Title: "Function", Width: 24},
		{Title: "Type", Width: 6},
		{Title: "Status", Width: 10},
		{Title: "Tx", Width: 14},
		{Title: "Wallet", Width: 12},
	})
	for _, h := range entries {
		tx := ""
		if h.TxHash != "" {
			tx = TruncateAddr(h.TxHash)
		}
		t.AddRow(Row{
			h.CreatedAt,
			h.FunctionName,
			h.CallType,
			historyStatus(h),
			Addr(tx),
			h.WalletName,
		})
	}
	return t
}

func historyStatus(h api.HistoryEntry) string {
	switch h.Status {
	case "success":
		return StyleSuccess.Render(h.Status)
	case "failed", "reverted":
		return StyleError.Render(h.Status)
	case "pending":
		return StyleWarning.Render(h.Status)
	default:
		return h.Status
	}
}

// HistorySummary is the one-line footer under the history table.
func HistorySummary(entries []api.HistoryEntry) string {
	pending := 0
	for _, e := range entries {
		if e.Pending() {
			pending++
		}
	}
	if pending == 0 {
		return Meta(fmt.Sprintf("%d call(s)", len(entries)))
	}
	return Meta(fmt.Sprintf("%d call(s), %d pending", len(entries), pending))
}
