package sleep

import "harmoniaAPI/apidate"

type Quality string

const (
	QualityPoor Quality = "poor"
	QualityOK   Quality = "ok"
	QualityGood Quality = "good"
)

func (q Quality) Valid() bool {
	switch q {
	case QualityPoor, QualityOK, QualityGood:
		return true
	}
	return false
}

type SleepLog struct {
	ID              int64        `json:"id"`
	UserID          int64        `json:"user_id"`
	StartTime       apidate.Time `json:"start_time"`
	EndTime         apidate.Time `json:"end_time"`
	DurationMinutes int          `json:"duration_minutes"`
	Quality         *Quality     `json:"quality,omitempty"`
}

type CreateSleepLogRequest struct {
	StartTime apidate.Time `json:"start_time"`
	EndTime   apidate.Time `json:"end_time"`
	Quality   *Quality     `json:"quality,omitempty"`
}
