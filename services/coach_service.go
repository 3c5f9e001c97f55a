package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"harmoniaAPI/internal/types/coach"
)

var ErrEmptyMessage = errors.New("message is required")

// CoachService answers chat messages by combining the user's live tracking
// data with advice snippets from the content catalog.
type CoachService struct {
	db      *pgxpool.Pool
	content *ContentService
}

func NewCoachService(db *pgxpool.Pool, content *ContentService) *CoachService {
	return &CoachService{db: db, content: content}
}

func (s *CoachService) Ask(ctx context.Context, req *coach.AskRequest) (string, error) {
	message := strings.TrimSpace(req.CurrentMessage)
	if message == "" {
		return "", ErrEmptyMessage
	}

	var name string
	err := s.db.QueryRow(ctx, `SELECT name FROM users WHERE id = $1`, req.UserID).Scan(&name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("failed to get user: %w", err)
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)

	var habitsDone, habitsTotal int
	err = s.db.QueryRow(ctx, `
		SELECT
			COUNT(hc.habit_id) FILTER (WHERE hc.completed_on = $2),
			COUNT(DISTINCT h.id)
		FROM habits h
		LEFT JOIN habit_completions hc ON hc.habit_id = h.id AND hc.completed_on = $2
		WHERE h.user_id = $1
	`, req.UserID, today).Scan(&habitsDone, &habitsTotal)
	if err != nil {
		return "", fmt.Errorf("failed to get habit stats: %w", err)
	}

	var waterMl int
	err = s.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount_ml), 0) FROM water_logs WHERE user_id = $1 AND log_date = $2`,
		req.UserID, today).Scan(&waterMl)
	if err != nil {
		return "", fmt.Errorf("failed to get water stats: %w", err)
	}

	return s.compose(name, message, len(req.History), habitsDone, habitsTotal, waterMl), nil
}

func (s *CoachService) compose(name, message string, historyLen, habitsDone, habitsTotal, waterMl int) string {
	var b strings.Builder

	if historyLen == 0 {
		firstName := name
		if i := strings.IndexByte(name, ' '); i > 0 {
			firstName = name[:i]
		}
		fmt.Fprintf(&b, "Hi %s! ", firstName)
	}

	b.WriteString(s.content.TopicAdvice(message))

	if habitsTotal > 0 {
		fmt.Fprintf(&b, " Today you've completed %d of %d habits", habitsDone, habitsTotal)
		if waterMl > 0 {
			fmt.Fprintf(&b, " and logged %dml of water", waterMl)
		}
		b.WriteString(".")
	} else if waterMl > 0 {
		fmt.Fprintf(&b, " You've logged %dml of water today.", waterMl)
	}

	return b.String()
}
