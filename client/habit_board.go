package client

import (
	"context"
	"sync"
)

const habitToggleFailureMessage = "We couldn't save your habit change. Please try again."

// HabitBoard holds the home screen's habit list and applies optimistic
// toggles against it. Each habit flips locally the moment the user taps,
// then either stays (server confirmed) or flips back (request failed).
type HabitBoard struct {
	client *Client
	userID int64

	mu       sync.Mutex
	snapshot DashboardSnapshot
	loaded   bool
	errMsg   string

	// toggleLocks serializes in-flight toggles per habit so a rapid
	// double tap cannot interleave two mutations on the same row.
	toggleLocks sync.Map
}

func NewHabitBoard(client *Client, userID int64) *HabitBoard {
	return &HabitBoard{client: client, userID: userID}
}

// Refresh replaces the board with the server's view of the given day.
func (b *HabitBoard) Refresh(ctx context.Context, day string) error {
	snapshot, err := b.client.Dashboard(ctx, b.userID, day)
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.snapshot = snapshot
	b.loaded = true
	b.errMsg = ""
	return nil
}

// Snapshot returns a copy of the current board state.
func (b *HabitBoard) Snapshot() (DashboardSnapshot, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := b.snapshot
	out.Habits = append([]Habit(nil), b.snapshot.Habits...)
	return out, b.loaded
}

// ErrorMessage returns the user-facing message from the last failed toggle,
// empty when the board is clean.
func (b *HabitBoard) ErrorMessage() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.errMsg
}

// Toggle optimistically flips the habit's completion, sends the request,
// and rolls the flip back if the server rejects it. Concurrent toggles on
// different habits proceed in parallel; same habit runs one at a time.
func (b *HabitBoard) Toggle(ctx context.Context, habitID int64, day string) error {
	lockAny, _ := b.toggleLocks.LoadOrStore(habitID, &sync.Mutex{})
	lock := lockAny.(*sync.Mutex)
	lock.Lock()
	defer lock.Unlock()

	b.mu.Lock()
	idx := -1
	for i := range b.snapshot.Habits {
		if b.snapshot.Habits[i].ID == habitID {
			idx = i
			break
		}
	}
	if idx < 0 {
		b.mu.Unlock()
		return nil
	}

	mutation := BeginMutation(b.snapshot.Habits[idx].IsCompleted)
	b.snapshot.Habits[idx].IsCompleted = !b.snapshot.Habits[idx].IsCompleted
	b.errMsg = ""
	b.mu.Unlock()

	err := b.client.ToggleHabit(ctx, habitID, day)

	b.mu.Lock()
	defer b.mu.Unlock()
	if err != nil {
		for i := range b.snapshot.Habits {
			if b.snapshot.Habits[i].ID == habitID {
				b.snapshot.Habits[i].IsCompleted = mutation.Rollback()
				break
			}
		}
		b.errMsg = habitToggleFailureMessage
		return err
	}
	mutation.Commit()
	return nil
}

// AddHabit creates the habit and then refreshes so the board carries server
// state, not a locally fabricated row.
func (b *HabitBoard) AddHabit(ctx context.Context, name, icon string) error {
	if _, err := b.client.AddHabit(ctx, b.userID, name, icon); err != nil {
		return err
	}
	return b.Refresh(ctx, "")
}
