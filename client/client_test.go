package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c, err := New(server.URL)
	require.NoError(t, err)
	return c, server
}

func TestNewRejectsRelativeURL(t *testing.T) {
	_, err := New("localhost:8080/api")
	assert.Error(t, err)

	_, err = New("/just/a/path")
	assert.Error(t, err)
}

func TestLoginDecodesUser(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/users/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Maya", body["name"])
		assert.Equal(t, "maya@example.com", body["email"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": 7, "name": "Maya", "email": "maya@example.com", "main_goal": "sleep better"}`))
	}))

	u, err := c.Login(context.Background(), "Maya", "maya@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(7), u.ID)
	assert.Equal(t, "sleep better", u.MainGoal)
}

func TestServerErrorCarriesStatusAndDetail(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail": "User not found"}`))
	}))

	_, err := c.User(context.Background(), 99)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindServer))

	detail, ok := ErrorDetail(err)
	assert.True(t, ok)
	assert.Equal(t, "User not found", detail)

	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, http.StatusNotFound, e.Status)
}

func TestServerErrorWithoutBodyStillClassified(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := c.User(context.Background(), 1)
	assert.True(t, IsKind(err, KindServer))

	_, ok := ErrorDetail(err)
	assert.False(t, ok)
}

func TestMalformedSuccessBodyIsDecodeError(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id": "definitely not a number"`))
	}))

	_, err := c.User(context.Background(), 1)
	assert.True(t, IsKind(err, KindDecode))
}

func TestUnreachableServerIsTransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	c, err := New(url)
	require.NoError(t, err)

	_, err = c.User(context.Background(), 1)
	assert.True(t, IsKind(err, KindTransport))
}

func TestTimeoutIsTransportError(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	c.httpClient.Timeout = 20 * time.Millisecond

	_, err := c.User(context.Background(), 1)
	assert.True(t, IsKind(err, KindTransport))
}

func TestToggleHabitIgnoresResponseBody(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/habits/3/toggle", r.URL.Path)
		assert.Equal(t, "2026-08-29", r.URL.Query().Get("date_str"))
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`this is not json at all`))
	}))

	err := c.ToggleHabit(context.Background(), 3, "2026-08-29")
	assert.NoError(t, err)
}

func TestToggleHabitFailureIsServerError(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "Failed to toggle habit"}`))
	}))

	err := c.ToggleHabit(context.Background(), 3, "")
	assert.True(t, IsKind(err, KindServer))
}

func TestDeleteWaterLogRequiresNoContent(t *testing.T) {
	t.Run("204 succeeds", func(t *testing.T) {
		c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "/water/12", r.URL.Path)
			w.WriteHeader(http.StatusNoContent)
		}))
		assert.NoError(t, c.DeleteWaterLog(context.Background(), 12))
	})

	t.Run("200 is rejected", func(t *testing.T) {
		c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		err := c.DeleteWaterLog(context.Background(), 12)
		assert.True(t, IsKind(err, KindServer))
	})

	t.Run("404 is rejected", func(t *testing.T) {
		c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error": "Water log not found"}`))
		}))
		err := c.DeleteWaterLog(context.Background(), 12)
		assert.True(t, IsKind(err, KindServer))
	})
}

func TestDashboardFlattensWireShape(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/dashboard/user/7", r.URL.Path)
		assert.Equal(t, "2026-08-28", r.URL.Query().Get("date_str"))

		w.Write([]byte(`{
			"user_name": "Maya",
			"activity": {"steps": 6432},
			"sleep": {"duration": "7h45min"},
			"daily_insight": "Drink a glass of water first thing.",
			"habits": [{"id": 1, "user_id": 7, "name": "Stretch", "icon": "🧘", "is_completed": true, "date": "2026-08-28"}]
		}`))
	}))

	snapshot, err := c.Dashboard(context.Background(), 7, "2026-08-28")
	require.NoError(t, err)
	assert.Equal(t, "Maya", snapshot.UserName)
	assert.Equal(t, 6432, snapshot.StepCount)
	assert.Equal(t, "7h45min", snapshot.SleepDurationLabel)
	require.Len(t, snapshot.Habits, 1)
	assert.True(t, snapshot.Habits[0].IsCompleted)
}

func TestDashboardOmitsDateWhenEmpty(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("date_str"))
		w.Write([]byte(`{"user_name": "Maya", "activity": {"steps": 0}, "sleep": {"duration": "--"}, "daily_insight": "", "habits": []}`))
	}))

	_, err := c.Dashboard(context.Background(), 7, "")
	assert.NoError(t, err)
}

func TestAskCoachUnion(t *testing.T) {
	t.Run("answer on success", func(t *testing.T) {
		c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var body struct {
				CurrentMessage string        `json:"current_message"`
				History        []ChatMessage `json:"history"`
				UserID         int64         `json:"user_id"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "How do I sleep better?", body.CurrentMessage)
			assert.Equal(t, int64(7), body.UserID)

			w.Write([]byte(`{"answer": "Wind down an hour before bed."}`))
		}))

		answer, err := c.AskCoach(context.Background(), 7, "How do I sleep better?", nil)
		require.NoError(t, err)
		assert.Equal(t, "Wind down an hour before bed.", answer)
	})

	t.Run("detail body surfaces as server error", func(t *testing.T) {
		c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"detail": "The coach is unavailable right now"}`))
		}))

		_, err := c.AskCoach(context.Background(), 7, "hi", nil)
		require.True(t, IsKind(err, KindServer))

		detail, ok := ErrorDetail(err)
		assert.True(t, ok)
		assert.Equal(t, "The coach is unavailable right now", detail)
	})

	t.Run("2xx body matching neither shape is decode error", func(t *testing.T) {
		c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"reply": "wrong field"}`))
		}))

		_, err := c.AskCoach(context.Background(), 7, "hi", nil)
		assert.True(t, IsKind(err, KindDecode))
	})
}

func TestSaveNutritionLogSucceedsWithoutBody(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/nutrition", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
	}))

	err := c.SaveNutritionLog(context.Background(), NutritionLogCreate{UserID: 7, TotalCalories: 540})
	assert.NoError(t, err)
}

func TestCreateActivityWireShape(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/activities/", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "running", body["activity_type"])
		assert.Equal(t, float64(1800), body["duration"])
		assert.Equal(t, float64(7), body["owner_id"])
		assert.Equal(t, 5.2, body["distance"])

		// Success is status-only; the body should be ignored.
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`not json`))
	}))

	distance := 5.2
	err := c.CreateActivity(context.Background(), 7, Activity{
		Type:            ActivityRunning,
		DurationSeconds: 1800,
		DistanceKm:      &distance,
	})
	assert.NoError(t, err)
}

func TestSleepLogsPassesLimit(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/7/sleep", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		w.Write([]byte(`[]`))
	}))

	logs, err := c.SleepLogs(context.Background(), 7, 5)
	require.NoError(t, err)
	assert.Empty(t, logs)
}
