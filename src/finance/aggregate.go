package finance

import (
	"strings"
	"time"

	"fintrack-server/src/models"
)

// Budget status tiers returned by UtilizationStatus.
const (
	StatusGood    = "good"
	StatusWarning = "warning"
	StatusOver    = "over"
)

// PeriodTotals summarizes ledger activity over a date range.
type PeriodTotals struct {
	TotalIncome  float64 `json:"total_income"`
	TotalExpense float64 `json:"total_expense"`
	Net          float64 `json:"net"`
}

// BudgetStatus describes how a month of spending compares to a budget limit.
type BudgetStatus struct {
	Spent        float64 `json:"spent"`
	Limit        float64 `json:"limit"`
	Percentage   int     `json:"percentage"`
	Status       string  `json:"status"`
	Remaining    float64 `json:"remaining"`
	IsOverBudget bool    `json:"is_over_budget"`
}

// Totals sums income and expenses for entries dated inside [start, end],
// inclusive on both ends. Amounts are summed at stored precision; callers
// round for display.
func Totals(entries []models.Transaction, start, end time.Time) PeriodTotals {
	var totals PeriodTotals
	for _, e := range entries {
		if e.Date.Before(start) || e.Date.After(end) {
			continue
		}
		switch e.Kind {
		case models.KindIncome:
			totals.TotalIncome += e.Amount
		case models.KindExpense:
			totals.TotalExpense += e.Amount
		}
	}
	totals.Net = totals.TotalIncome - totals.TotalExpense
	return totals
}

// SpendingForCategory sums expense entries in the given category (matched
// case-insensitively) whose date falls in the given month and year.
func SpendingForCategory(entries []models.Transaction, category string, month, year int) float64 {
	var spent float64
	for _, e := range entries {
		if e.Kind != models.KindExpense {
			continue
		}
		if !strings.EqualFold(e.Category, category) {
			continue
		}
		if int(e.Date.Month()) != month || e.Date.Year() != year {
			continue
		}
		spent += e.Amount
	}
	return spent
}

// UtilizationStatus tiers spending against a budget limit. Remaining is
// signed so over-budget months report how far over they went.
func UtilizationStatus(spent, limit float64) BudgetStatus {
	pct := 0
	if limit != 0 {
		pct = roundPercent(spent / limit * 100)
	}

	status := StatusGood
	switch {
	case pct > 100:
		status = StatusOver
	case pct >= 75:
		status = StatusWarning
	}

	return BudgetStatus{
		Spent:        spent,
		Limit:        limit,
		Percentage:   pct,
		Status:       status,
		Remaining:    limit - spent,
		IsOverBudget: spent > limit,
	}
}
