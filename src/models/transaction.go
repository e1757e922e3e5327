package models

import "time"

const (
	KindIncome  = "income"
	KindExpense = "expense"
)

type Transaction struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Kind        string    `json:"kind"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
}
