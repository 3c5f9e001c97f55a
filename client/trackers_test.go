package client

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const boardDashboardBody = `{
	"user_name": "Maya",
	"activity": {"steps": 1200},
	"sleep": {"duration": "8h00min"},
	"daily_insight": "",
	"habits": [
		{"id": 1, "user_id": 7, "name": "Stretch", "icon": "🧘", "is_completed": false, "date": "2026-08-29"},
		{"id": 2, "user_id": 7, "name": "Read", "icon": "📖", "is_completed": true, "date": "2026-08-29"}
	]
}`

func TestHabitBoardToggleCommits(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/dashboard/") {
			w.Write([]byte(boardDashboardBody))
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))

	board := NewHabitBoard(c, 7)
	require.NoError(t, board.Refresh(context.Background(), ""))

	require.NoError(t, board.Toggle(context.Background(), 1, "2026-08-29"))

	snapshot, loaded := board.Snapshot()
	require.True(t, loaded)
	assert.True(t, snapshot.Habits[0].IsCompleted, "toggle should stick after server confirms")
	assert.Empty(t, board.ErrorMessage())
}

func TestHabitBoardToggleRollsBackOnFailure(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/dashboard/") {
			w.Write([]byte(boardDashboardBody))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "Failed to toggle habit"}`))
	}))

	board := NewHabitBoard(c, 7)
	require.NoError(t, board.Refresh(context.Background(), ""))

	err := board.Toggle(context.Background(), 1, "2026-08-29")
	require.Error(t, err)

	snapshot, _ := board.Snapshot()
	assert.False(t, snapshot.Habits[0].IsCompleted, "failed toggle must restore the original state")
	assert.True(t, snapshot.Habits[1].IsCompleted, "other habits are untouched")
	assert.Equal(t, "We couldn't save your habit change. Please try again.", board.ErrorMessage())
}

func TestHabitBoardToggleUnknownHabitIsNoop(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/dashboard/") {
			w.Write([]byte(boardDashboardBody))
			return
		}
		t.Error("no toggle request expected for a habit the board doesn't hold")
	}))

	board := NewHabitBoard(c, 7)
	require.NoError(t, board.Refresh(context.Background(), ""))
	assert.NoError(t, board.Toggle(context.Background(), 999, ""))
}

func TestWaterTrackerAddSwapsDraftForCanonicalRow(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": 41, "user_id": 7, "amount_ml": 500, "log_date": "2026-08-29"}`))
	}))

	tracker := NewWaterTracker(c, 7)
	require.NoError(t, tracker.Add(context.Background(), 500))

	logs := tracker.Logs()
	require.Len(t, logs, 1)
	assert.Equal(t, int64(41), logs[0].ID, "draft row is replaced by the server's")
	assert.Equal(t, 500, tracker.Total())
}

func TestWaterTrackerAddFailureLeavesTotalUntouched(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	tracker := NewWaterTracker(c, 7)
	err := tracker.Add(context.Background(), 500)
	require.Error(t, err)

	assert.Equal(t, 0, tracker.Total(), "failed add must not count water the backend never recorded")
	assert.Empty(t, tracker.Logs())
	assert.NotEmpty(t, tracker.ErrorMessage())
}

func TestWaterTrackerRemoveRollsBackWithout204(t *testing.T) {
	delete200 := func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.Write([]byte(`[{"id": 41, "user_id": 7, "amount_ml": 500, "log_date": "2026-08-29"}]`))
	}

	c, _ := newTestClient(t, http.HandlerFunc(delete200))
	tracker := NewWaterTracker(c, 7)
	require.NoError(t, tracker.Refresh(context.Background(), ""))

	err := tracker.Remove(context.Background(), 41)
	require.Error(t, err)

	logs := tracker.Logs()
	require.Len(t, logs, 1, "row must come back when the delete isn't confirmed")
	assert.Equal(t, int64(41), logs[0].ID)
}

func TestWaterTrackerRemoveConfirmed(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.Write([]byte(`[{"id": 41, "user_id": 7, "amount_ml": 500, "log_date": "2026-08-29"}]`))
	}))

	tracker := NewWaterTracker(c, 7)
	require.NoError(t, tracker.Refresh(context.Background(), ""))
	require.NoError(t, tracker.Remove(context.Background(), 41))
	assert.Empty(t, tracker.Logs())
}

func TestCoachChatTranscript(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"answer": "Try a glass of water when you wake up."}`))
	}))

	chat := NewCoachChat(c, 7)

	messages := chat.Messages()
	require.Len(t, messages, 1, "chat opens with the coach's greeting")
	assert.Equal(t, RoleModel, messages[0].Role)

	require.NoError(t, chat.Send(context.Background(), "How do I drink more water?"))

	messages = chat.Messages()
	require.Len(t, messages, 3)
	assert.Equal(t, RoleUser, messages[1].Role)
	assert.Equal(t, RoleModel, messages[2].Role)
	assert.Equal(t, "Try a glass of water when you wake up.", messages[2].Content)
}

func TestCoachChatFailureAppendsApology(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	chat := NewCoachChat(c, 7)
	err := chat.Send(context.Background(), "hello?")
	require.Error(t, err)

	messages := chat.Messages()
	require.Len(t, messages, 3, "user message stays and the coach apologizes")
	assert.Equal(t, RoleModel, messages[2].Role)
	assert.Equal(t, coachFailureMessage, messages[2].Content)
}

func TestCoachChatEmptyMessageIgnored(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("empty messages must not reach the server")
	}))

	chat := NewCoachChat(c, 7)
	assert.NoError(t, chat.Send(context.Background(), ""))
	assert.Len(t, chat.Messages(), 1)
}

func TestHistoryViewToggleDayRefreshesAfterSettle(t *testing.T) {
	toggled := false
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/toggle") {
			toggled = true
			w.WriteHeader(http.StatusNoContent)
			return
		}
		if toggled {
			w.Write([]byte(`{"current_streak": 3, "completed_dates": ["2026-08-29", "2026-08-28", "2026-08-27"]}`))
			return
		}
		w.Write([]byte(`{"current_streak": 2, "completed_dates": ["2026-08-28", "2026-08-27"]}`))
	}))

	view := NewHistoryView(c, 5)
	view.settleDelay = time.Millisecond

	require.NoError(t, view.Refresh(context.Background()))
	history, _ := view.History()
	assert.Equal(t, 2, history.CurrentStreak)

	require.NoError(t, view.ToggleDay(context.Background(), "2026-08-29"))
	history, loaded := view.History()
	require.True(t, loaded)
	assert.Equal(t, 3, history.CurrentStreak, "streak comes from the refetch, not local math")
	assert.Len(t, history.CompletedDates, 3)
}

func TestMutationLifecycle(t *testing.T) {
	m := BeginMutation(true)
	assert.Equal(t, MutationPending, m.State())

	m.Commit()
	assert.Equal(t, MutationCommitted, m.State())

	m2 := BeginMutation(42)
	assert.Equal(t, 42, m2.Rollback())
	assert.Equal(t, MutationRolledBack, m2.State())

	// Settled mutations don't change state again.
	m2.Commit()
	assert.Equal(t, MutationRolledBack, m2.State())
}

func TestSessionLifecycle(t *testing.T) {
	s := NewSession()

	_, ok := s.UserID()
	assert.False(t, ok)

	s.SetUser(7)
	id, ok := s.UserID()
	assert.True(t, ok)
	assert.Equal(t, int64(7), id)
	assert.False(t, s.Onboarded())

	s.CompleteOnboarding()
	assert.True(t, s.Onboarded())

	s.Clear()
	_, ok = s.UserID()
	assert.False(t, ok)
	assert.False(t, s.Onboarded())
}
