package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"harmoniaAPI/apidate"
	"harmoniaAPI/internal/types/water"
)

var (
	ErrWaterLogNotFound   = errors.New("water log not found")
	ErrInvalidWaterAmount = errors.New("amount_ml must be positive")
)

type WaterService struct {
	db *pgxpool.Pool
}

func NewWaterService(db *pgxpool.Pool) *WaterService {
	return &WaterService{db: db}
}

// AddWaterLog records an intake for today (UTC). The server owns the log
// date; clients only send the amount.
func (s *WaterService) AddWaterLog(ctx context.Context, userID int64, amountMl int) (*water.WaterLog, error) {
	if amountMl <= 0 {
		return nil, ErrInvalidWaterAmount
	}

	var exists bool
	if err := s.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, userID).Scan(&exists); err != nil {
		return nil, fmt.Errorf("failed to check user: %w", err)
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	today, _ := apidate.ParseDay(apidate.Today())

	query := `
	INSERT INTO water_logs (user_id, amount_ml, log_date)
	VALUES ($1, $2, $3)
	RETURNING id
	`

	log := &water.WaterLog{
		UserID:   userID,
		AmountMl: amountMl,
		LogDate:  apidate.DayString(today),
	}
	err := s.db.QueryRow(ctx, query, userID, amountMl, today).Scan(&log.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to add water log: %w", err)
	}

	return log, nil
}

func (s *WaterService) ListWaterLogs(ctx context.Context, userID int64, day time.Time) ([]water.WaterLog, error) {
	query := `
	SELECT id, user_id, amount_ml, log_date
	FROM water_logs
	WHERE user_id = $1 AND log_date = $2
	ORDER BY id
	`

	rows, err := s.db.Query(ctx, query, userID, day)
	if err != nil {
		return nil, fmt.Errorf("failed to list water logs: %w", err)
	}
	defer rows.Close()

	logs := []water.WaterLog{}
	for rows.Next() {
		var l water.WaterLog
		var logDate time.Time
		if err := rows.Scan(&l.ID, &l.UserID, &l.AmountMl, &logDate); err != nil {
			return nil, fmt.Errorf("failed to scan water log: %w", err)
		}
		l.LogDate = apidate.DayString(logDate)
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read water logs: %w", err)
	}

	return logs, nil
}

func (s *WaterService) DeleteWaterLog(ctx context.Context, id int64) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM water_logs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete water log: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrWaterLogNotFound
	}
	return nil
}
