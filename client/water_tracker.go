package client

import (
	"context"
	"sync"
)

// WaterTracker keeps one day's water logs with optimistic add and remove.
// An add shows immediately as a draft row and is swapped for the server's
// canonical row on success; a remove disappears immediately and reappears
// unless the server confirms with 204.
type WaterTracker struct {
	client *Client
	userID int64

	mu     sync.Mutex
	logs   []WaterLog
	errMsg string

	// draftID labels optimistic rows that don't exist server-side yet.
	// Negative so it can never collide with a real BIGSERIAL id.
	draftID int64
}

func NewWaterTracker(client *Client, userID int64) *WaterTracker {
	return &WaterTracker{client: client, userID: userID, draftID: -1}
}

// Refresh replaces local state with the server's list for the given day.
func (t *WaterTracker) Refresh(ctx context.Context, day string) error {
	logs, err := t.client.WaterLogs(ctx, t.userID, day)
	if err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.logs = logs
	t.errMsg = ""
	return nil
}

// Logs returns a copy of the current rows, drafts included.
func (t *WaterTracker) Logs() []WaterLog {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]WaterLog(nil), t.logs...)
}

// Total sums the visible amounts in milliliters.
func (t *WaterTracker) Total() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	total := 0
	for _, log := range t.logs {
		total += log.AmountMl
	}
	return total
}

func (t *WaterTracker) ErrorMessage() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.errMsg
}

// Add appends a draft row, sends the request, and replaces the draft with
// the server's canonical row. On failure the draft is removed so the total
// never counts water the backend didn't record.
func (t *WaterTracker) Add(ctx context.Context, amountMl int) error {
	t.mu.Lock()
	draft := WaterLog{ID: t.draftID, UserID: t.userID, AmountMl: amountMl}
	t.draftID--
	t.logs = append(t.logs, draft)
	t.errMsg = ""
	t.mu.Unlock()

	created, err := t.client.AddWater(ctx, t.userID, amountMl)

	t.mu.Lock()
	defer t.mu.Unlock()
	for i := range t.logs {
		if t.logs[i].ID == draft.ID {
			if err != nil {
				t.logs = append(t.logs[:i], t.logs[i+1:]...)
			} else {
				t.logs[i] = created
			}
			break
		}
	}
	if err != nil {
		t.errMsg = "We couldn't log your drink. Please try again."
		return err
	}
	return nil
}

// Remove hides the row immediately and deletes it server-side. Any outcome
// other than a confirmed delete restores the row where it was.
func (t *WaterTracker) Remove(ctx context.Context, logID int64) error {
	t.mu.Lock()
	idx := -1
	for i := range t.logs {
		if t.logs[i].ID == logID {
			idx = i
			break
		}
	}
	if idx < 0 {
		t.mu.Unlock()
		return nil
	}
	mutation := BeginMutation(t.logs[idx])
	t.logs = append(t.logs[:idx], t.logs[idx+1:]...)
	t.errMsg = ""
	t.mu.Unlock()

	err := t.client.DeleteWaterLog(ctx, logID)

	t.mu.Lock()
	defer t.mu.Unlock()
	if err != nil {
		restored := mutation.Rollback()
		if idx > len(t.logs) {
			idx = len(t.logs)
		}
		t.logs = append(t.logs[:idx], append([]WaterLog{restored}, t.logs[idx:]...)...)
		t.errMsg = "We couldn't remove that entry. Please try again."
		return err
	}
	mutation.Commit()
	return nil
}
