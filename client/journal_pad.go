package client

import (
	"context"
	"sync"
	"time"

	"harmoniaAPI/apidate"
)

// JournalPad backs the journal screen: a mood picker, a free-text editor,
// and the saved history. Picking a mood autosaves immediately; the server
// keeps any text already saved for the day, so a mood-only autosave never
// erases words.
type JournalPad struct {
	client *Client
	userID int64

	mu      sync.Mutex
	mood    Mood
	content string
	history []JournalEntry
}

func NewJournalPad(client *Client, userID int64) *JournalPad {
	return &JournalPad{client: client, userID: userID}
}

// SetMood records the selection and autosaves when it changed. The autosave
// sends only the mood; the draft text stays local until an explicit Save.
func (p *JournalPad) SetMood(ctx context.Context, mood Mood) error {
	p.mu.Lock()
	if mood == p.mood {
		p.mu.Unlock()
		return nil
	}
	p.mood = mood
	p.mu.Unlock()

	_, err := p.client.SaveJournalEntry(ctx, p.userID, mood, "", apidate.New(time.Now()))
	return err
}

// SetContent updates the local draft without saving.
func (p *JournalPad) SetContent(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.content = text
}

// Save writes the full entry for today. An empty draft with no mood picked
// is a no-op; there is nothing to persist.
func (p *JournalPad) Save(ctx context.Context) error {
	p.mu.Lock()
	mood := p.mood
	content := p.content
	p.mu.Unlock()

	if content == "" && mood == "" {
		return nil
	}
	if mood == "" {
		mood = MoodNeutral
	}

	entry, err := p.client.SaveJournalEntry(ctx, p.userID, mood, content, apidate.New(time.Now()))
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.mood = entry.Mood
	p.content = entry.Content
	return nil
}

// RefreshHistory loads the saved entries, newest first.
func (p *JournalPad) RefreshHistory(ctx context.Context) error {
	entries, err := p.client.JournalEntries(ctx, p.userID)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.history = entries
	return nil
}

func (p *JournalPad) History() []JournalEntry {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]JournalEntry(nil), p.history...)
}

// Draft returns the unsaved mood and text.
func (p *JournalPad) Draft() (Mood, string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.mood, p.content
}
