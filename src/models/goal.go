package models

import "time"

// Goal is the single emergency-fund savings goal a user can hold.
type Goal struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"user_id"`
	TargetAmount    float64   `json:"target_amount"`
	CurrentAmount   float64   `json:"current_amount"`
	MonthlyBaseline float64   `json:"monthly_baseline"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
