package journal

import "harmoniaAPI/apidate"

// Mood is the five-point scale the journal records alongside free text.
type Mood string

const (
	MoodHappy   Mood = "happy"
	MoodGood    Mood = "good"
	MoodNeutral Mood = "neutral"
	MoodBad     Mood = "bad"
	MoodSad     Mood = "sad"
)

func (m Mood) Valid() bool {
	switch m {
	case MoodHappy, MoodGood, MoodNeutral, MoodBad, MoodSad:
		return true
	}
	return false
}

type JournalEntry struct {
	ID      int64        `json:"id"`
	UserID  int64        `json:"user_id"`
	Date    apidate.Time `json:"date"`
	Mood    Mood         `json:"mood"`
	Content string       `json:"content"`
}

// CreateEntryRequest allows empty content: a mood selection alone is a valid
// autosaved entry.
type CreateEntryRequest struct {
	Mood    Mood         `json:"mood"`
	Content string       `json:"content"`
	Date    apidate.Time `json:"date"`
}
