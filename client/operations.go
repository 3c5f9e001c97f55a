package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"harmoniaAPI/apidate"
)

// Login signs a user in, creating the account on first contact. The server
// matches on email, so the same address always resolves to the same user.
func (c *Client) Login(ctx context.Context, name, email string) (User, error) {
	body := struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}{Name: name, Email: email}

	var u User
	if err := c.doJSON(ctx, http.MethodPost, "/users/login", nil, body, &u); err != nil {
		return User{}, err
	}
	return u, nil
}

func (c *Client) User(ctx context.Context, id int64) (User, error) {
	var u User
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/users/%d", id), nil, nil, &u); err != nil {
		return User{}, err
	}
	return u, nil
}

// UpdateGoal patches the user's main goal and returns the updated record.
func (c *Client) UpdateGoal(ctx context.Context, id int64, goal string) (User, error) {
	body := struct {
		MainGoal string `json:"main_goal"`
	}{MainGoal: goal}

	var u User
	if err := c.doJSON(ctx, http.MethodPatch, fmt.Sprintf("/users/%d", id), nil, body, &u); err != nil {
		return User{}, err
	}
	return u, nil
}

// Dashboard fetches the home-screen aggregate for one day. An empty day
// means the server's current day.
func (c *Client) Dashboard(ctx context.Context, userID int64, day string) (DashboardSnapshot, error) {
	query := url.Values{}
	if day != "" {
		query.Set("date_str", day)
	}

	var wire dashboardWire
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/dashboard/user/%d", userID), query, nil, &wire); err != nil {
		return DashboardSnapshot{}, err
	}
	return wire.snapshot(), nil
}

// ToggleHabit flips a habit's completion for the given day. Success is a
// 2xx status alone; any response body is ignored.
func (c *Client) ToggleHabit(ctx context.Context, habitID int64, day string) error {
	query := url.Values{}
	if day != "" {
		query.Set("date_str", day)
	}
	return c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/habits/%d/toggle", habitID), query, nil, nil)
}

func (c *Client) HabitHistory(ctx context.Context, habitID int64) (HabitHistory, error) {
	var h HabitHistory
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/habits/%d/history", habitID), nil, nil, &h); err != nil {
		return HabitHistory{}, err
	}
	return h, nil
}

func (c *Client) AddHabit(ctx context.Context, userID int64, name, icon string) (Habit, error) {
	body := struct {
		Name string `json:"name"`
		Icon string `json:"icon"`
	}{Name: name, Icon: icon}

	var h Habit
	if err := c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/users/%d/habits", userID), nil, body, &h); err != nil {
		return Habit{}, err
	}
	return h, nil
}

// SuggestHabits returns onboarding starter habits matched to the user's
// stated objective.
func (c *Client) SuggestHabits(ctx context.Context, objective string) ([]HabitSuggestion, error) {
	body := struct {
		Objective string `json:"objective"`
	}{Objective: objective}

	var suggestions []HabitSuggestion
	if err := c.doJSON(ctx, http.MethodPost, "/onboarding/suggest-habits", nil, body, &suggestions); err != nil {
		return nil, err
	}
	return suggestions, nil
}

func (c *Client) Activities(ctx context.Context, userID int64) ([]Activity, error) {
	var activities []Activity
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/users/%d/activities/", userID), nil, nil, &activities); err != nil {
		return nil, err
	}
	return activities, nil
}

// CreateActivity logs an activity. Success is a 2xx status; the response
// body is not read.
func (c *Client) CreateActivity(ctx context.Context, ownerID int64, activity Activity) error {
	body := struct {
		Activity
		OwnerID int64 `json:"owner_id"`
	}{Activity: activity, OwnerID: ownerID}

	return c.doJSON(ctx, http.MethodPost, "/activities/", nil, body, nil)
}

func (c *Client) AddSleep(ctx context.Context, userID int64, log SleepLog) (SleepLog, error) {
	body := struct {
		StartTime apidate.Time  `json:"start_time"`
		EndTime   apidate.Time  `json:"end_time"`
		Quality   *SleepQuality `json:"quality,omitempty"`
	}{StartTime: log.StartTime, EndTime: log.EndTime, Quality: log.Quality}

	var created SleepLog
	if err := c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/users/%d/sleep", userID), nil, body, &created); err != nil {
		return SleepLog{}, err
	}
	return created, nil
}

// SleepLogs returns recent sleep logs, newest first. A limit of 0 takes the
// server default.
func (c *Client) SleepLogs(ctx context.Context, userID int64, limit int) ([]SleepLog, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	var logs []SleepLog
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/users/%d/sleep", userID), query, nil, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// AddWater logs a drink for today and returns the server's canonical row.
func (c *Client) AddWater(ctx context.Context, userID int64, amountMl int) (WaterLog, error) {
	body := struct {
		AmountMl int `json:"amount_ml"`
	}{AmountMl: amountMl}

	var created WaterLog
	if err := c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/users/%d/water", userID), nil, body, &created); err != nil {
		return WaterLog{}, err
	}
	return created, nil
}

// WaterLogs lists one day's water entries. An empty day means today.
func (c *Client) WaterLogs(ctx context.Context, userID int64, day string) ([]WaterLog, error) {
	query := url.Values{}
	if day != "" {
		query.Set("log_date", day)
	}

	var logs []WaterLog
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/users/%d/water", userID), query, nil, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// DeleteWaterLog requires exactly 204. Anything else, 2xx included, is a
// server error: callers must not drop a row the backend may still hold.
func (c *Client) DeleteWaterLog(ctx context.Context, logID int64) error {
	status, data, err := c.doRead(ctx, http.MethodDelete, fmt.Sprintf("/water/%d", logID), nil, nil)
	if err != nil {
		return err
	}
	if status != http.StatusNoContent {
		return serverError(status, extractDetail(data))
	}
	return nil
}

func (c *Client) SaveJournalEntry(ctx context.Context, userID int64, mood Mood, content string, date apidate.Time) (JournalEntry, error) {
	body := struct {
		Mood    Mood         `json:"mood"`
		Content string       `json:"content"`
		Date    apidate.Time `json:"date"`
	}{Mood: mood, Content: content, Date: date}

	var entry JournalEntry
	if err := c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/users/%d/journal", userID), nil, body, &entry); err != nil {
		return JournalEntry{}, err
	}
	return entry, nil
}

func (c *Client) JournalEntries(ctx context.Context, userID int64) ([]JournalEntry, error) {
	var entries []JournalEntry
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/journal_entries/%d", userID), nil, nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// SaveNutritionLog persists a confirmed meal analysis. Success is a 2xx
// status; the response body, if any, is ignored.
func (c *Client) SaveNutritionLog(ctx context.Context, log NutritionLogCreate) error {
	return c.doJSON(ctx, http.MethodPost, "/nutrition", nil, log, nil)
}

// AskCoach sends one chat turn with recent history for context. The response
// is a union: {answer} on success, {detail} when the coach declined. A 2xx
// body matching neither shape is a decode error.
func (c *Client) AskCoach(ctx context.Context, userID int64, message string, history []ChatMessage) (string, error) {
	body := struct {
		CurrentMessage string        `json:"current_message"`
		History        []ChatMessage `json:"history"`
		UserID         int64         `json:"user_id"`
	}{CurrentMessage: message, History: history, UserID: userID}

	status, data, err := c.doRead(ctx, http.MethodPost, "/coach/ask", nil, body)
	if err != nil {
		return "", err
	}

	var union struct {
		Answer *string `json:"answer"`
		Detail *string `json:"detail"`
	}
	if unmarshalErr := json.Unmarshal(data, &union); unmarshalErr == nil {
		if status >= 200 && status <= 299 && union.Answer != nil {
			return *union.Answer, nil
		}
		if union.Detail != nil {
			return "", serverError(status, *union.Detail)
		}
	}

	if status < 200 || status > 299 {
		return "", serverError(status, "")
	}
	return "", decodeError(fmt.Errorf("coach response matched neither answer nor detail shape"))
}
