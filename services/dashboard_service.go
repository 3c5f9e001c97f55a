package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"harmoniaAPI/internal/types/dashboard"
)

// stepsPerKm is the walking-pace estimate used to derive a step count from
// logged distance, since no device step source exists in the API contract.
const stepsPerKm = 1400

type DashboardService struct {
	db      *pgxpool.Pool
	habits  *HabitService
	content *ContentService
}

func NewDashboardService(db *pgxpool.Pool, habits *HabitService, content *ContentService) *DashboardService {
	return &DashboardService{db: db, habits: habits, content: content}
}

// GetDashboard assembles the home-screen read model for one calendar day.
// Everything is computed fresh per request; responses for different days
// never share state.
func (s *DashboardService) GetDashboard(ctx context.Context, userID int64, day time.Time) (*dashboard.Response, error) {
	var name string
	err := s.db.QueryRow(ctx, `SELECT name FROM users WHERE id = $1`, userID).Scan(&name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	dayStart := day
	dayEnd := day.AddDate(0, 0, 1)

	var distanceKm float64
	err = s.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(distance_km), 0)
		FROM activities
		WHERE owner_id = $1
		  AND activity_type IN ('walking', 'running')
		  AND date >= $2 AND date < $3
	`, userID, dayStart, dayEnd).Scan(&distanceKm)
	if err != nil {
		return nil, fmt.Errorf("failed to get activity data: %w", err)
	}

	var sleepMinutes int
	err = s.db.QueryRow(ctx, `
		SELECT duration_minutes
		FROM sleep_logs
		WHERE user_id = $1 AND end_time >= $2 AND end_time < $3
		ORDER BY end_time DESC
		LIMIT 1
	`, userID, dayStart, dayEnd).Scan(&sleepMinutes)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to get sleep data: %w", err)
	}

	habits, err := s.habits.StatusesForDay(ctx, userID, day)
	if err != nil {
		return nil, err
	}

	return &dashboard.Response{
		UserName:     name,
		Activity:     dashboard.ActivityData{Steps: int(distanceKm * stepsPerKm)},
		Sleep:        dashboard.SleepData{Duration: formatSleepDuration(sleepMinutes)},
		DailyInsight: s.content.DailyInsight(day),
		Habits:       habits,
	}, nil
}

func formatSleepDuration(minutes int) string {
	return fmt.Sprintf("%dh%02dmin", minutes/60, minutes%60)
}
