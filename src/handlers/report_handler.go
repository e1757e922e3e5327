package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	cache "fintrack-server/src/db"
	db "fintrack-server/src/db/sql"
	"fintrack-server/src/finance"
	"fintrack-server/src/util"

	"github.com/jackc/pgx/v5/pgxpool"
)

type budgetStatusReport struct {
	Budget finance.BudgetStatus `json:"status"`
	ID     int64                `json:"budget_id"`
	Name   string               `json:"category"`
}

// GetSummary reports income, expense, and net totals for an inclusive date
// range. Results are cached per user and range until the next ledger write.
func GetSummary(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		start, end, ok := parseDateRange(w, r)
		if !ok {
			return
		}

		cacheKey := fmt.Sprintf("summary:%d:%s:%s", userID, start.Format("2006-01-02"), end.Format("2006-01-02"))
		if cached, found := cache.Cache.Get(cacheKey); found {
			log.Printf("INFO: Summary cache hit for user %d", userID)
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(cached)
			return
		}

		entries, err := db.ListTransactions(r.Context(), pool, userID, db.TransactionFilter{Start: start, End: end})
		if err != nil {
			log.Printf("ERROR: Failed to list transactions for summary, user %d: %v", userID, err)
			http.Error(w, "failed to compute summary", http.StatusInternalServerError)
			return
		}

		totals := finance.Totals(entries, start, end)
		cache.SetSummaryCache(cacheKey, totals)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(totals)
	}
}

// GetBudgetsReport returns the utilization status of every budget in a
// period, cached per user and period.
func GetBudgetsReport(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		month, err := strconv.Atoi(r.URL.Query().Get("month"))
		if err != nil {
			http.Error(w, "invalid month", http.StatusBadRequest)
			return
		}
		year, err := strconv.Atoi(r.URL.Query().Get("year"))
		if err != nil {
			http.Error(w, "invalid year", http.StatusBadRequest)
			return
		}
		if !util.ValidatePeriod(month, year) {
			http.Error(w, "period must be a month 1-12 and a year 2020-2100", http.StatusBadRequest)
			return
		}

		cacheKey := fmt.Sprintf("budget_status:%d:%d:%d", userID, month, year)
		if cached, found := cache.Cache.Get(cacheKey); found {
			log.Printf("INFO: Budget status cache hit for user %d", userID)
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(cached)
			return
		}

		budgets, err := db.GetBudgetsForPeriod(r.Context(), pool, userID, month, year)
		if err != nil {
			log.Printf("ERROR: Failed to get budgets for period %d/%d, user %d: %v", month, year, userID, err)
			http.Error(w, "failed to get budgets", http.StatusInternalServerError)
			return
		}

		reports := make([]budgetStatusReport, 0, len(budgets))
		for _, budget := range budgets {
			status, err := budgetStatusForUser(r, pool, userID, &budget)
			if err != nil {
				log.Printf("ERROR: Failed to compute status for budget %d, user %d: %v", budget.ID, userID, err)
				http.Error(w, "failed to compute budget status", http.StatusInternalServerError)
				return
			}
			reports = append(reports, budgetStatusReport{
				Budget: status,
				ID:     budget.ID,
				Name:   budget.Category,
			})
		}
		cache.SetBudgetStatusCache(cacheKey, reports)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(reports)
	}
}

func parseDateRange(w http.ResponseWriter, r *http.Request) (time.Time, time.Time, bool) {
	startStr := r.URL.Query().Get("start")
	endStr := r.URL.Query().Get("end")
	start, err := time.Parse("2006-01-02", startStr)
	if err != nil {
		log.Printf("ERROR: Invalid start date: %s", startStr)
		http.Error(w, "start must be a YYYY-MM-DD date", http.StatusBadRequest)
		return time.Time{}, time.Time{}, false
	}
	end, err := time.Parse("2006-01-02", endStr)
	if err != nil {
		log.Printf("ERROR: Invalid end date: %s", endStr)
		http.Error(w, "end must be a YYYY-MM-DD date", http.StatusBadRequest)
		return time.Time{}, time.Time{}, false
	}
	if end.Before(start) {
		http.Error(w, "end must not be before start", http.StatusBadRequest)
		return time.Time{}, time.Time{}, false
	}
	// Make the end bound inclusive of the whole day.
	end = end.AddDate(0, 0, 1).Add(-time.Nanosecond)
	return start, end, true
}
