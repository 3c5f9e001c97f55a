package user

import "time"

type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	MainGoal  string    `json:"main_goal,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type LoginRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type UpdateGoalRequest struct {
	MainGoal string `json:"main_goal"`
}
