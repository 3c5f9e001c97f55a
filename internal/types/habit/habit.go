package habit

// HabitStatus is a habit joined with its completion state for one calendar
// day. IsCompleted only ever refers to the day the status was requested for.
type HabitStatus struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"user_id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	IsCompleted bool   `json:"is_completed"`
	Date        string `json:"date"`
}

type HistoryResponse struct {
	CurrentStreak  int      `json:"current_streak"`
	CompletedDates []string `json:"completed_dates"`
}

type CreateHabitRequest struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

type Suggestion struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

type SuggestHabitsRequest struct {
	Objective string `json:"objective"`
}
