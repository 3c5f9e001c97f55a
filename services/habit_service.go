package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"harmoniaAPI/apidate"
	"harmoniaAPI/internal/types/habit"
)

var ErrHabitNotFound = errors.New("habit not found")

type HabitService struct {
	db *pgxpool.Pool
}

func NewHabitService(db *pgxpool.Pool) *HabitService {
	return &HabitService{db: db}
}

func (s *HabitService) CreateHabit(ctx context.Context, userID int64, req *habit.CreateHabitRequest) (*habit.HabitStatus, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errors.New("habit name is required")
	}

	var exists bool
	if err := s.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, userID).Scan(&exists); err != nil {
		return nil, fmt.Errorf("failed to check user: %w", err)
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	query := `
	INSERT INTO habits (user_id, name, icon, created_at)
	VALUES ($1, $2, $3, $4)
	RETURNING id
	`

	status := &habit.HabitStatus{
		UserID: userID,
		Name:   name,
		Icon:   req.Icon,
		Date:   apidate.Today(),
	}
	err := s.db.QueryRow(ctx, query, userID, name, req.Icon, time.Now().UTC()).Scan(&status.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create habit: %w", err)
	}

	return status, nil
}

// Toggle flips the completion of a habit for one calendar day. A completion
// row either exists for (habit, day) or it doesn't; there is no counter.
func (s *HabitService) Toggle(ctx context.Context, habitID int64, day time.Time) error {
	var exists bool
	if err := s.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM habits WHERE id = $1)`, habitID).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check habit: %w", err)
	}
	if !exists {
		return ErrHabitNotFound
	}

	tag, err := s.db.Exec(ctx,
		`DELETE FROM habit_completions WHERE habit_id = $1 AND completed_on = $2`,
		habitID, day)
	if err != nil {
		return fmt.Errorf("failed to toggle habit: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	_, err = s.db.Exec(ctx,
		`INSERT INTO habit_completions (habit_id, completed_on) VALUES ($1, $2)
		 ON CONFLICT (habit_id, completed_on) DO NOTHING`,
		habitID, day)
	if err != nil {
		return fmt.Errorf("failed to toggle habit: %w", err)
	}

	return nil
}

func (s *HabitService) History(ctx context.Context, habitID int64) (*habit.HistoryResponse, error) {
	var exists bool
	if err := s.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM habits WHERE id = $1)`, habitID).Scan(&exists); err != nil {
		return nil, fmt.Errorf("failed to check habit: %w", err)
	}
	if !exists {
		return nil, ErrHabitNotFound
	}

	rows, err := s.db.Query(ctx,
		`SELECT completed_on FROM habit_completions WHERE habit_id = $1 ORDER BY completed_on DESC`,
		habitID)
	if err != nil {
		return nil, fmt.Errorf("failed to get habit history: %w", err)
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("failed to scan completion date: %w", err)
		}
		dates = append(dates, d.UTC())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read habit history: %w", err)
	}

	resp := &habit.HistoryResponse{
		CurrentStreak:  currentStreak(dates, time.Now().UTC()),
		CompletedDates: make([]string, 0, len(dates)),
	}
	for _, d := range dates {
		resp.CompletedDates = append(resp.CompletedDates, apidate.DayString(d))
	}

	return resp, nil
}

// StatusesForDay lists a user's habits with their completion state for the
// given calendar day. Used by the dashboard read model.
func (s *HabitService) StatusesForDay(ctx context.Context, userID int64, day time.Time) ([]habit.HabitStatus, error) {
	query := `
	SELECT h.id, h.user_id, h.name, h.icon, (hc.habit_id IS NOT NULL) AS is_completed
	FROM habits h
	LEFT JOIN habit_completions hc
		ON hc.habit_id = h.id AND hc.completed_on = $2
	WHERE h.user_id = $1
	ORDER BY h.id
	`

	rows, err := s.db.Query(ctx, query, userID, day)
	if err != nil {
		return nil, fmt.Errorf("failed to list habits: %w", err)
	}
	defer rows.Close()

	dayStr := apidate.DayString(day)
	statuses := []habit.HabitStatus{}
	for rows.Next() {
		var st habit.HabitStatus
		if err := rows.Scan(&st.ID, &st.UserID, &st.Name, &st.Icon, &st.IsCompleted); err != nil {
			return nil, fmt.Errorf("failed to scan habit: %w", err)
		}
		st.Date = dayStr
		statuses = append(statuses, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read habits: %w", err)
	}

	return statuses, nil
}

// currentStreak counts consecutive completed days ending today, or ending
// yesterday when today hasn't been completed yet. Dates must be sorted
// descending and normalized to UTC midnight.
func currentStreak(dates []time.Time, now time.Time) int {
	if len(dates) == 0 {
		return 0
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	cursor := today
	if !dates[0].Equal(today) {
		cursor = today.AddDate(0, 0, -1)
	}

	streak := 0
	for _, d := range dates {
		if !d.Equal(cursor) {
			break
		}
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}

	return streak
}
