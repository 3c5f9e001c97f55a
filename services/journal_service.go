package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"harmoniaAPI/apidate"
	"harmoniaAPI/internal/types/journal"
)

var ErrInvalidMood = errors.New("invalid mood")

type JournalService struct {
	db *pgxpool.Pool
}

func NewJournalService(db *pgxpool.Pool) *JournalService {
	return &JournalService{db: db}
}

// SaveEntry upserts the entry for (user, calendar day). The app autosaves as
// soon as a mood is picked and again when the text is saved, so a mood-only
// write must not wipe out text saved earlier the same day.
func (s *JournalService) SaveEntry(ctx context.Context, userID int64, req *journal.CreateEntryRequest) (*journal.JournalEntry, error) {
	if !req.Mood.Valid() {
		return nil, ErrInvalidMood
	}

	var exists bool
	if err := s.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, userID).Scan(&exists); err != nil {
		return nil, fmt.Errorf("failed to check user: %w", err)
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	entryDate := req.Date.Time
	if entryDate.IsZero() {
		entryDate = time.Now().UTC()
	}
	day := apidate.DayOf(entryDate)

	query := `
	INSERT INTO journal_entries (user_id, entry_date, mood, content, recorded_at)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (user_id, entry_date) DO UPDATE
	SET mood = EXCLUDED.mood,
	    content = CASE WHEN EXCLUDED.content <> '' THEN EXCLUDED.content ELSE journal_entries.content END,
	    recorded_at = EXCLUDED.recorded_at
	RETURNING id, user_id, recorded_at, mood, content
	`

	entry := &journal.JournalEntry{}
	err := s.db.QueryRow(ctx, query, userID, day.Time, req.Mood, req.Content, entryDate).Scan(
		&entry.ID,
		&entry.UserID,
		&entry.Date.Time,
		&entry.Mood,
		&entry.Content,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to save journal entry: %w", err)
	}

	return entry, nil
}

func (s *JournalService) ListEntries(ctx context.Context, userID int64) ([]journal.JournalEntry, error) {
	query := `
	SELECT id, user_id, recorded_at, mood, content
	FROM journal_entries
	WHERE user_id = $1
	ORDER BY entry_date DESC
	`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	defer rows.Close()

	entries := []journal.JournalEntry{}
	for rows.Next() {
		var e journal.JournalEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Date.Time, &e.Mood, &e.Content); err != nil {
			return nil, fmt.Errorf("failed to scan journal entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read journal entries: %w", err)
	}

	return entries, nil
}
