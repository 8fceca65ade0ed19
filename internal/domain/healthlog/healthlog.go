package healthlog

import (
	"time"
)

// One submitted day's metrics. Date stays a plain YYYY-MM-DD string:
// streaks and charts care about calendar days, not instants, and the
// client submits a date picker value, not a timestamp.
type HealthLog struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Date        string    `json:"date"`
	SleepHours  float64   `json:"sleepHours"`
	WaterIntake float64   `json:"waterIntake"`
	Meals       string    `json:"meals,omitempty"`
	Mood        string    `json:"mood,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CreateLogRequest struct {
	Date        string  `json:"date" binding:"required,datetime=2006-01-02"`
	SleepHours  float64 `json:"sleepHours" binding:"omitempty,min=0,max=24"`
	WaterIntake float64 `json:"waterIntake" binding:"omitempty,min=0,max=20"`
	Meals       string  `json:"meals" binding:"omitempty,max=1000"`
	Mood        string  `json:"mood" binding:"omitempty,max=120"`
	Notes       string  `json:"notes" binding:"omitempty,max=2000"`

	// Filled from the session, never from the payload.
	UserID string `json:"-"`
}
