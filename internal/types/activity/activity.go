package activity

import "harmoniaAPI/apidate"

type Type string

const (
	TypeRunning          Type = "running"
	TypeWalking          Type = "walking"
	TypeCycling          Type = "cycling"
	TypeStrengthTraining Type = "strength_training"
)

func (t Type) Valid() bool {
	switch t {
	case TypeRunning, TypeWalking, TypeCycling, TypeStrengthTraining:
		return true
	}
	return false
}

// HasDistance reports whether the type carries a meaningful distance.
func (t Type) HasDistance() bool {
	return t != TypeStrengthTraining
}

type Activity struct {
	ID              *int64       `json:"id,omitempty"`
	ActivityType    Type         `json:"activity_type"`
	DurationSeconds float64      `json:"duration"`
	DistanceKm      *float64     `json:"distance,omitempty"`
	Date            apidate.Time `json:"date"`
}

type CreateActivityRequest struct {
	ActivityType    Type         `json:"activity_type"`
	DurationSeconds float64      `json:"duration"`
	DistanceKm      *float64     `json:"distance,omitempty"`
	Date            apidate.Time `json:"date"`
	OwnerID         int64        `json:"owner_id"`
}
