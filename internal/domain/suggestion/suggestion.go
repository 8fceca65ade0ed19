package suggestion

import (
	"time"
)

type Suggestion struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Week      string    `json:"week"`
	Text      string    `json:"suggestionText"`
	Fallback  bool      `json:"fallback"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type SaveSuggestionRequest struct {
	Week string `json:"week" binding:"required,min=1,max=40"`
	Text string `json:"suggestionText" binding:"required,min=1,max=4000"`

	// Filled from the session, never from the payload.
	UserID   string `json:"-"`
	Fallback bool   `json:"-"`
}

// The day's metrics the client wants advice on. Everything is optional;
// the prompt renders missing fields as "Not recorded".
type GenerateRequest struct {
	SleepHours  *float64 `json:"sleepHours" binding:"omitempty,min=0,max=24"`
	WaterIntake *float64 `json:"waterIntake" binding:"omitempty,min=0,max=20"`
	Meals       string   `json:"meals" binding:"omitempty,max=1000"`
	Mood        string   `json:"mood" binding:"omitempty,max=120"`
	Notes       string   `json:"notes" binding:"omitempty,max=2000"`
}
