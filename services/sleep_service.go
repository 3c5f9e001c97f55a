package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"harmoniaAPI/apidate"
	"harmoniaAPI/internal/types/sleep"
)

var (
	ErrInvalidSleepRange   = errors.New("end time must be after start time")
	ErrInvalidSleepQuality = errors.New("invalid sleep quality")
)

const (
	defaultSleepLimit = 30
	maxSleepLimit     = 100
)

type SleepService struct {
	db *pgxpool.Pool
}

func NewSleepService(db *pgxpool.Pool) *SleepService {
	return &SleepService{db: db}
}

func (s *SleepService) CreateSleepLog(ctx context.Context, userID int64, req *sleep.CreateSleepLogRequest) (*sleep.SleepLog, error) {
	if !req.EndTime.After(req.StartTime.Time) {
		return nil, ErrInvalidSleepRange
	}
	if req.Quality != nil && !req.Quality.Valid() {
		return nil, ErrInvalidSleepQuality
	}

	var exists bool
	if err := s.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, userID).Scan(&exists); err != nil {
		return nil, fmt.Errorf("failed to check user: %w", err)
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	duration := int(req.EndTime.Sub(req.StartTime.Time).Minutes())

	query := `
	INSERT INTO sleep_logs (user_id, start_time, end_time, duration_minutes, quality)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id
	`

	log := &sleep.SleepLog{
		UserID:          userID,
		StartTime:       apidate.New(req.StartTime.Time),
		EndTime:         apidate.New(req.EndTime.Time),
		DurationMinutes: duration,
		Quality:         req.Quality,
	}
	err := s.db.QueryRow(ctx, query, userID, req.StartTime.Time, req.EndTime.Time, duration, req.Quality).Scan(&log.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create sleep log: %w", err)
	}

	return log, nil
}

func (s *SleepService) ListSleepLogs(ctx context.Context, userID int64, limit int) ([]sleep.SleepLog, error) {
	if limit <= 0 {
		limit = defaultSleepLimit
	}
	if limit > maxSleepLimit {
		limit = maxSleepLimit
	}

	query := `
	SELECT id, user_id, start_time, end_time, duration_minutes, quality
	FROM sleep_logs
	WHERE user_id = $1
	ORDER BY start_time DESC
	LIMIT $2
	`

	rows, err := s.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list sleep logs: %w", err)
	}
	defer rows.Close()

	logs := []sleep.SleepLog{}
	for rows.Next() {
		var l sleep.SleepLog
		if err := rows.Scan(&l.ID, &l.UserID, &l.StartTime.Time, &l.EndTime.Time, &l.DurationMinutes, &l.Quality); err != nil {
			return nil, fmt.Errorf("failed to scan sleep log: %w", err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read sleep logs: %w", err)
	}

	return logs, nil
}
