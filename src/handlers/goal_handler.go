package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	db "fintrack-server/src/db/sql"
	"fintrack-server/src/finance"
	"fintrack-server/src/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type goalRequest struct {
	TargetAmount    *float64 `json:"target_amount"`
	CurrentAmount   float64  `json:"current_amount"`
	MonthlyBaseline float64  `json:"monthly_baseline"`
}

type goalDeltaRequest struct {
	Delta float64 `json:"delta"`
}

type goalResponse struct {
	models.Goal
	ProgressPercentage int     `json:"progress_percentage"`
	RemainingAmount    float64 `json:"remaining_amount"`
	MonthsCovered      string  `json:"months_covered"`
	GoalMet            bool    `json:"goal_met"`
}

func goalWithProgress(goal *models.Goal) goalResponse {
	return goalResponse{
		Goal:               *goal,
		ProgressPercentage: finance.ProgressPercentage(goal.CurrentAmount, goal.TargetAmount),
		RemainingAmount:    finance.RemainingAmount(goal.CurrentAmount, goal.TargetAmount),
		MonthsCovered:      finance.MonthsCovered(goal.CurrentAmount, goal.MonthlyBaseline),
		GoalMet:            finance.IsGoalMet(goal.CurrentAmount, goal.TargetAmount),
	}
}

func GetGoal(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		goal, err := db.GetGoalForUser(r.Context(), pool, userID)
		if err != nil {
			if errors.Is(err, db.ErrGoalNotFound) {
				http.Error(w, "savings goal not found", http.StatusNotFound)
				return
			}
			log.Printf("ERROR: Failed to get savings goal for user %d: %v", userID, err)
			http.Error(w, "failed to get savings goal", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(goalWithProgress(goal))
	}
}

// UpsertGoal creates or replaces the user's savings goal. A missing target
// defaults to six months of the monthly baseline.
func UpsertGoal(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		var req goalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode goal request body for user %d: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if req.CurrentAmount < 0 || req.MonthlyBaseline < 0 {
			http.Error(w, "amounts must not be negative", http.StatusBadRequest)
			return
		}

		target := finance.RecommendedTarget(req.MonthlyBaseline, finance.DefaultTargetMonths)
		if req.TargetAmount != nil {
			if *req.TargetAmount < 0 {
				http.Error(w, "target must not be negative", http.StatusBadRequest)
				return
			}
			target = *req.TargetAmount
		}

		goal := &models.Goal{
			UserID:          userID,
			TargetAmount:    target,
			CurrentAmount:   req.CurrentAmount,
			MonthlyBaseline: req.MonthlyBaseline,
		}
		saved, err := db.UpsertGoal(r.Context(), pool, goal)
		if err != nil {
			log.Printf("ERROR: Failed to save savings goal for user %d: %v", userID, err)
			http.Error(w, "failed to save savings goal", http.StatusInternalServerError)
			return
		}
		log.Printf("INFO: Saved savings goal for user %d, target %.2f", userID, saved.TargetAmount)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(goalWithProgress(saved))
	}
}

// ApplyGoalDelta adjusts the saved amount by a signed delta, flooring at zero.
func ApplyGoalDelta(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		var req goalDeltaRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode goal delta request body for user %d: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		goal, err := db.GetGoalForUser(r.Context(), pool, userID)
		if err != nil {
			if errors.Is(err, db.ErrGoalNotFound) {
				http.Error(w, "savings goal not found", http.StatusNotFound)
				return
			}
			log.Printf("ERROR: Failed to get savings goal for user %d: %v", userID, err)
			http.Error(w, "failed to get savings goal", http.StatusInternalServerError)
			return
		}

		newAmount := finance.ApplyDelta(goal.CurrentAmount, req.Delta)
		updated, err := db.UpdateGoalAmount(r.Context(), pool, userID, newAmount)
		if err != nil {
			if errors.Is(err, db.ErrGoalNotFound) {
				http.Error(w, "savings goal not found", http.StatusNotFound)
				return
			}
			log.Printf("ERROR: Failed to update savings goal amount for user %d: %v", userID, err)
			http.Error(w, "failed to update savings goal", http.StatusInternalServerError)
			return
		}
		log.Printf("INFO: Applied delta %.2f to savings goal for user %d, new amount %.2f", req.Delta, userID, updated.CurrentAmount)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(goalWithProgress(updated))
	}
}

func DeleteGoal(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		if err := db.DeleteGoal(r.Context(), pool, userID); err != nil {
			if errors.Is(err, db.ErrGoalNotFound) {
				http.Error(w, "savings goal not found", http.StatusNotFound)
				return
			}
			log.Printf("ERROR: Failed to delete savings goal for user %d: %v", userID, err)
			http.Error(w, "failed to delete savings goal", http.StatusInternalServerError)
			return
		}
		log.Printf("INFO: Deleted savings goal for user %d", userID)
		w.WriteHeader(http.StatusNoContent)
	}
}
