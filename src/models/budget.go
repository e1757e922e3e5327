package models

import "time"

// Budget is a per-category spending limit for one month. Unique per
// (user, category, period_month, period_year).
type Budget struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Category    string    `json:"category"`
	LimitAmount float64   `json:"limit_amount"`
	PeriodMonth int       `json:"period_month"`
	PeriodYear  int       `json:"period_year"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
