package dashboard

import "harmoniaAPI/internal/types/habit"

type ActivityData struct {
	Steps int `json:"steps"`
}

type SleepData struct {
	Duration string `json:"duration"`
}

// Response is the aggregate read model for the home screen, scoped to a
// single calendar day. It is recomputed on every request; nothing is cached.
type Response struct {
	UserName     string              `json:"user_name"`
	Activity     ActivityData        `json:"activity"`
	Sleep        SleepData           `json:"sleep"`
	DailyInsight string              `json:"daily_insight"`
	Habits       []habit.HabitStatus `json:"habits"`
}
