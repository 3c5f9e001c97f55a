package client

import (
	"harmoniaAPI/apidate"
)

// Domain model used by callers. Field names follow Go conventions; the
// snake_case translation to the wire happens once, in the json tags here and
// in the private wire structs, never at call sites.

type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	MainGoal string `json:"main_goal,omitempty"`
}

// Habit is a habit with its completion state for one calendar day.
// IsCompleted refers only to the day the habit was fetched for.
type Habit struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"user_id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	IsCompleted bool   `json:"is_completed"`
	Date        string `json:"date"`
}

type HabitHistory struct {
	CurrentStreak  int      `json:"current_streak"`
	CompletedDates []string `json:"completed_dates"`
}

type HabitSuggestion struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// DashboardSnapshot is the flattened home-screen read model.
type DashboardSnapshot struct {
	UserName           string
	StepCount          int
	SleepDurationLabel string
	DailyInsight       string
	Habits             []Habit
}

// dashboardWire mirrors the nested shape the API actually sends.
type dashboardWire struct {
	UserName string `json:"user_name"`
	Activity struct {
		Steps int `json:"steps"`
	} `json:"activity"`
	Sleep struct {
		Duration string `json:"duration"`
	} `json:"sleep"`
	DailyInsight string  `json:"daily_insight"`
	Habits       []Habit `json:"habits"`
}

func (w dashboardWire) snapshot() DashboardSnapshot {
	return DashboardSnapshot{
		UserName:           w.UserName,
		StepCount:          w.Activity.Steps,
		SleepDurationLabel: w.Sleep.Duration,
		DailyInsight:       w.DailyInsight,
		Habits:             w.Habits,
	}
}

type ActivityType string

const (
	ActivityRunning          ActivityType = "running"
	ActivityWalking          ActivityType = "walking"
	ActivityCycling          ActivityType = "cycling"
	ActivityStrengthTraining ActivityType = "strength_training"
)

type Activity struct {
	ID              *int64       `json:"id,omitempty"`
	Type            ActivityType `json:"activity_type"`
	DurationSeconds float64      `json:"duration"`
	DistanceKm      *float64     `json:"distance,omitempty"` // nil for strength training
	Date            apidate.Time `json:"date"`
}

type SleepQuality string

const (
	SleepPoor SleepQuality = "poor"
	SleepOK   SleepQuality = "ok"
	SleepGood SleepQuality = "good"
)

type SleepLog struct {
	ID              int64         `json:"id"`
	UserID          int64         `json:"user_id"`
	StartTime       apidate.Time  `json:"start_time"`
	EndTime         apidate.Time  `json:"end_time"`
	DurationMinutes int           `json:"duration_minutes"`
	Quality         *SleepQuality `json:"quality,omitempty"`
}

type WaterLog struct {
	ID       int64  `json:"id"`
	UserID   int64  `json:"user_id"`
	AmountMl int    `json:"amount_ml"`
	LogDate  string `json:"log_date"`
}

type Mood string

const (
	MoodHappy   Mood = "happy"
	MoodGood    Mood = "good"
	MoodNeutral Mood = "neutral"
	MoodBad     Mood = "bad"
	MoodSad     Mood = "sad"
)

type JournalEntry struct {
	ID      int64        `json:"id"`
	UserID  int64        `json:"user_id"`
	Date    apidate.Time `json:"date"`
	Mood    Mood         `json:"mood"`
	Content string       `json:"content"`
}

type FoodItem struct {
	FoodName string  `json:"food_name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// NutritionAnalysis is the server's reading of a meal photo. It isn't
// persisted until confirmed with SaveNutritionLog.
type NutritionAnalysis struct {
	Foods         []FoodItem `json:"foods"`
	Insights      string     `json:"insights"`
	TotalCalories float64    `json:"total_calories"`
}

type NutritionLogCreate struct {
	UserID        int64        `json:"user_id"`
	LogDate       apidate.Time `json:"log_date"`
	TotalCalories float64      `json:"total_calories"`
	TotalProtein  float64      `json:"total_protein"`
	TotalCarbs    float64      `json:"total_carbs"`
	TotalFat      float64      `json:"total_fat"`
	Insights      string       `json:"insights"`
	Items         []FoodItem   `json:"items"`
}

// ChatMessage roles are "user" and "model".
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const (
	RoleUser  = "user"
	RoleModel = "model"
)
