package models

import "time"

// Card is a revolving credit card. Balance and rate are snapshots; the
// derived payoff numbers come from the finance package.
type Card struct {
	ID                int64     `json:"id"`
	UserID            int64     `json:"user_id"`
	Name              string    `json:"name"`
	Balance           float64   `json:"balance"`
	AnnualRatePercent float64   `json:"annual_rate_percent"`
	MinimumPayment    float64   `json:"minimum_payment"`
	CreditLimit       *float64  `json:"credit_limit"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
