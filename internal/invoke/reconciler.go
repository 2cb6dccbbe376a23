package invoke

import (
	"context"
	"time"

	"github.com/smolder-dev/smolderctl/internal/api"
)

// Reconciler refreshes a deployment's history after a successful write. A
// transaction confirms some time after the send returns, so the first
// refresh waits a fixed delay, then polling continues until the pending
// entry settles or the overall timeout lapses. Refreshes are best-effort:
// fetch errors are swallowed and the stale list simply remains on screen.
type Reconciler struct {
	Client       *api.Client
	Delay        time.Duration // before the first refresh
	PollInterval time.Duration // between follow-up refreshes
	Timeout      time.Duration // total budget after the first refresh
}

// NewReconciler returns a Reconciler with the stock timings: first refresh
// after 2s, then every 3s for up to 30s.
func NewReconciler(client *api.Client) *Reconciler {
	return &Reconciler{
		Client:       client,
		Delay:        2 * time.Second,
		PollInterval: 3 * time.Second,
		Timeout:      30 * time.Second,
	}
}

// ScheduleRefresh arranges for the deployment's history to be re-fetched and
// handed to apply. It returns immediately; the work runs in a goroutine.
// Each successful write schedules its own independent refresh — overlapping
// writes overlap here too, with no de-duplication. Cancelling ctx stops the
// cycle, which is the caller's liveness guard: a torn-down view cancels its
// context and apply is never invoked afterwards.
func (r *Reconciler) ScheduleRefresh(ctx context.Context, deploymentID int64, apply func([]api.HistoryEntry)) {
	go r.Refresh(ctx, deploymentID, apply)
}

// Refresh is the synchronous form of ScheduleRefresh, for callers that want
// to block until the history settles (the one-shot commands do).
func (r *Reconciler) Refresh(ctx context.Context, deploymentID int64, apply func([]api.HistoryEntry)) {
	select {
	case <-ctx.Done():
		return
	case <-time.After(r.Delay):
	}

	deadline := time.Now().Add(r.Timeout)
	for {
		entries, err := r.Client.ListHistory(ctx, deploymentID)
		if err == nil {
			apply(entries)
			if !anyPending(entries) {
				return
			}
		}
		if time.Now().After(deadline) {
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(r.PollInterval):
		}
	}
}

func anyPending(entries []api.HistoryEntry) bool {
	for _, e := range entries {
		if e.Pending() {
			return true
		}
	}
	return false
}
