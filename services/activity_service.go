package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"harmoniaAPI/apidate"
	"harmoniaAPI/internal/types/activity"
)

var ErrInvalidActivityType = errors.New("invalid activity type")

type ActivityService struct {
	db *pgxpool.Pool
}

func NewActivityService(db *pgxpool.Pool) *ActivityService {
	return &ActivityService{db: db}
}

func (s *ActivityService) ListActivities(ctx context.Context, userID int64) ([]activity.Activity, error) {
	query := `
	SELECT id, activity_type, duration_seconds, distance_km, date
	FROM activities
	WHERE owner_id = $1
	ORDER BY date DESC
	`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	defer rows.Close()

	activities := []activity.Activity{}
	for rows.Next() {
		var a activity.Activity
		if err := rows.Scan(&a.ID, &a.ActivityType, &a.DurationSeconds, &a.DistanceKm, &a.Date.Time); err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read activities: %w", err)
	}

	return activities, nil
}

func (s *ActivityService) CreateActivity(ctx context.Context, req *activity.CreateActivityRequest) (*activity.Activity, error) {
	if !req.ActivityType.Valid() {
		return nil, ErrInvalidActivityType
	}
	if req.DurationSeconds <= 0 {
		return nil, errors.New("duration must be positive")
	}

	var exists bool
	if err := s.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, req.OwnerID).Scan(&exists); err != nil {
		return nil, fmt.Errorf("failed to check user: %w", err)
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	// Distance is meaningless for strength training; drop it on the way in.
	distance := req.DistanceKm
	if !req.ActivityType.HasDistance() {
		distance = nil
	}

	query := `
	INSERT INTO activities (owner_id, activity_type, duration_seconds, distance_km, date)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id
	`

	a := &activity.Activity{
		ActivityType:    req.ActivityType,
		DurationSeconds: req.DurationSeconds,
		DistanceKm:      distance,
		Date:            apidate.New(req.Date.Time),
	}
	var id int64
	err := s.db.QueryRow(ctx, query, req.OwnerID, req.ActivityType, req.DurationSeconds, distance, req.Date.Time).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("failed to create activity: %w", err)
	}
	a.ID = &id

	return a, nil
}
