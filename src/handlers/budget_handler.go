package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	db "fintrack-server/src/db/sql"
	"fintrack-server/src/finance"
	"fintrack-server/src/models"
	"fintrack-server/src/util"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

type budgetRequest struct {
	Category    string  `json:"category"`
	LimitAmount float64 `json:"limit_amount"`
	PeriodMonth int     `json:"period_month"`
	PeriodYear  int     `json:"period_year"`
}

func (req *budgetRequest) validate() string {
	if req.Category == "" {
		return "category is required"
	}
	if req.LimitAmount < 0 {
		return "limit must not be negative"
	}
	if !util.ValidatePeriod(req.PeriodMonth, req.PeriodYear) {
		return "period must be a month 1-12 and a year 2020-2100"
	}
	return ""
}

func CreateBudget(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		var req budgetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create budget request body for user %d: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if msg := req.validate(); msg != "" {
			log.Printf("ERROR: Budget validation failed for user %d: %s", userID, msg)
			http.Error(w, msg, http.StatusBadRequest)
			return
		}

		budget := &models.Budget{
			UserID:      userID,
			Category:    req.Category,
			LimitAmount: req.LimitAmount,
			PeriodMonth: req.PeriodMonth,
			PeriodYear:  req.PeriodYear,
		}
		created, err := db.CreateBudget(r.Context(), pool, budget)
		if err != nil {
			if isUniqueViolation(err) {
				log.Printf("ERROR: Budget already exists for user %d, category %s, period %d/%d", userID, req.Category, req.PeriodMonth, req.PeriodYear)
				http.Error(w, "budget already exists for this category and period", http.StatusConflict)
				return
			}
			log.Printf("ERROR: Failed to create budget for user %d: %v", userID, err)
			http.Error(w, "failed to create budget", http.StatusInternalServerError)
			return
		}
		log.Printf("INFO: Created budget id %d for user %d, category %s", created.ID, userID, created.Category)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

func GetBudgetByID(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		budgetID, ok := parseBudgetID(w, r)
		if !ok {
			return
		}
		budget, err := db.GetBudgetByID(r.Context(), pool, userID, budgetID)
		if err != nil {
			log.Printf("ERROR: Budget id %d not found for user %d: %v", budgetID, userID, err)
			http.Error(w, "budget not found", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(budget)
	}
}

func GetAllBudgetsForUser(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		budgets, err := db.GetAllBudgetsForUser(r.Context(), pool, userID)
		if err != nil {
			log.Printf("ERROR: Failed to get budgets for user %d: %v", userID, err)
			http.Error(w, "failed to get budgets", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(budgets)
	}
}

// GetBudgetStatus compares a month of spending in the budget's category
// against its limit and reports the utilization tier.
func GetBudgetStatus(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		budgetID, ok := parseBudgetID(w, r)
		if !ok {
			return
		}
		budget, err := db.GetBudgetByID(r.Context(), pool, userID, budgetID)
		if err != nil {
			log.Printf("ERROR: Budget id %d not found for user %d: %v", budgetID, userID, err)
			http.Error(w, "budget not found", http.StatusNotFound)
			return
		}

		status, err := budgetStatusForUser(r, pool, userID, budget)
		if err != nil {
			log.Printf("ERROR: Failed to compute status for budget %d, user %d: %v", budgetID, userID, err)
			http.Error(w, "failed to compute budget status", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(status)
	}
}

func UpdateBudget(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		budgetID, ok := parseBudgetID(w, r)
		if !ok {
			return
		}
		var req budgetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode update budget request body for user %d: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if msg := req.validate(); msg != "" {
			log.Printf("ERROR: Budget validation failed for user %d: %s", userID, msg)
			http.Error(w, msg, http.StatusBadRequest)
			return
		}

		budget := &models.Budget{
			ID:          budgetID,
			UserID:      userID,
			Category:    req.Category,
			LimitAmount: req.LimitAmount,
			PeriodMonth: req.PeriodMonth,
			PeriodYear:  req.PeriodYear,
		}
		updated, err := db.UpdateBudget(r.Context(), pool, budget)
		if err != nil {
			log.Printf("ERROR: Failed to update budget %d for user %d: %v", budgetID, userID, err)
			http.Error(w, "budget not found", http.StatusNotFound)
			return
		}
		log.Printf("INFO: Updated budget id %d for user %d", budgetID, userID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(updated)
	}
}

func DeleteBudget(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		budgetID, ok := parseBudgetID(w, r)
		if !ok {
			return
		}
		if err := db.DeleteBudget(r.Context(), pool, userID, budgetID); err != nil {
			log.Printf("ERROR: Failed to delete budget %d for user %d: %v", budgetID, userID, err)
			http.Error(w, "budget not found", http.StatusNotFound)
			return
		}
		log.Printf("INFO: Deleted budget id %d for user %d", budgetID, userID)
		w.WriteHeader(http.StatusNoContent)
	}
}

// budgetStatusForUser pulls the month's expenses for the budget's category
// and runs them through the aggregation engine.
func budgetStatusForUser(r *http.Request, pool *pgxpool.Pool, userID int64, budget *models.Budget) (finance.BudgetStatus, error) {
	monthStart := time.Date(budget.PeriodYear, time.Month(budget.PeriodMonth), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Nanosecond)

	entries, err := db.ListTransactions(r.Context(), pool, userID, db.TransactionFilter{
		Start: monthStart,
		End:   monthEnd,
		Kind:  models.KindExpense,
	})
	if err != nil {
		return finance.BudgetStatus{}, err
	}

	spent := finance.SpendingForCategory(entries, budget.Category, budget.PeriodMonth, budget.PeriodYear)
	return finance.UtilizationStatus(spent, budget.LimitAmount), nil
}

func parseBudgetID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	budgetIDStr := chi.URLParam(r, "budget_id")
	budgetID, err := strconv.ParseInt(budgetIDStr, 10, 64)
	if err != nil {
		log.Printf("ERROR: Invalid budget id param: %s", budgetIDStr)
		http.Error(w, "invalid budget id", http.StatusBadRequest)
		return 0, false
	}
	return budgetID, true
}
