package client

import (
	"context"
	"sync"
	"time"
)

// defaultSettleDelay gives the backend a beat to commit a toggle before the
// calendar re-reads history. Tests shrink it to keep runs fast.
const defaultSettleDelay = 300 * time.Millisecond

// HistoryView backs the per-habit calendar: the streak counter plus the set
// of completed days. Toggling a past day waits for the write to settle and
// then re-fetches, so the streak always comes from the server, never from
// local arithmetic.
type HistoryView struct {
	client      *Client
	habitID     int64
	settleDelay time.Duration

	mu      sync.Mutex
	history HabitHistory
	loaded  bool
}

func NewHistoryView(client *Client, habitID int64) *HistoryView {
	return &HistoryView{client: client, habitID: habitID, settleDelay: defaultSettleDelay}
}

// Refresh reloads streak and completed days from the server.
func (v *HistoryView) Refresh(ctx context.Context) error {
	history, err := v.client.HabitHistory(ctx, v.habitID)
	if err != nil {
		return err
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.history = history
	v.loaded = true
	return nil
}

// History returns the current streak and completed days.
func (v *HistoryView) History() (HabitHistory, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	out := v.history
	out.CompletedDates = append([]string(nil), v.history.CompletedDates...)
	return out, v.loaded
}

// ToggleDay flips completion for one calendar day, waits for the settle
// delay, and refreshes. The toggle error wins over a refresh error; a stale
// calendar is recoverable, a lost toggle is not.
func (v *HistoryView) ToggleDay(ctx context.Context, day string) error {
	if err := v.client.ToggleHabit(ctx, v.habitID, day); err != nil {
		return err
	}

	select {
	case <-time.After(v.settleDelay):
	case <-ctx.Done():
		return ctx.Err()
	}

	return v.Refresh(ctx)
}
