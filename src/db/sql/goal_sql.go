package db

import (
	"context"
	"errors"

	"fintrack-server/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrGoalNotFound is returned when a user has no savings goal yet. Handlers
// surface it as a 404.
var ErrGoalNotFound = errors.New("savings goal not found")

func GetGoalForUser(ctx context.Context, pool *pgxpool.Pool, userID int64) (*models.Goal, error) {
	query := `
		SELECT id, user_id, target_amount, current_amount, monthly_baseline, created_at, updated_at
		FROM savings_goals WHERE user_id = $1
	`
	var g models.Goal
	err := pool.QueryRow(ctx, query, userID).
		Scan(&g.ID, &g.UserID, &g.TargetAmount, &g.CurrentAmount, &g.MonthlyBaseline, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrGoalNotFound
		}
		return nil, err
	}
	return &g, nil
}

// UpsertGoal creates or replaces the user's single goal. Uniqueness is
// enforced by the UNIQUE constraint on user_id.
func UpsertGoal(ctx context.Context, pool *pgxpool.Pool, goal *models.Goal) (*models.Goal, error) {
	query := `
		INSERT INTO savings_goals (user_id, target_amount, current_amount, monthly_baseline)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE
		SET target_amount = EXCLUDED.target_amount,
		    current_amount = EXCLUDED.current_amount,
		    monthly_baseline = EXCLUDED.monthly_baseline,
		    updated_at = NOW()
		RETURNING id, user_id, target_amount, current_amount, monthly_baseline, created_at, updated_at
	`
	var g models.Goal
	err := pool.QueryRow(ctx, query, goal.UserID, goal.TargetAmount, goal.CurrentAmount, goal.MonthlyBaseline).
		Scan(&g.ID, &g.UserID, &g.TargetAmount, &g.CurrentAmount, &g.MonthlyBaseline, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func UpdateGoalAmount(ctx context.Context, pool *pgxpool.Pool, userID int64, currentAmount float64) (*models.Goal, error) {
	query := `
		UPDATE savings_goals
		SET current_amount = $1, updated_at = NOW()
		WHERE user_id = $2
		RETURNING id, user_id, target_amount, current_amount, monthly_baseline, created_at, updated_at
	`
	var g models.Goal
	err := pool.QueryRow(ctx, query, currentAmount, userID).
		Scan(&g.ID, &g.UserID, &g.TargetAmount, &g.CurrentAmount, &g.MonthlyBaseline, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrGoalNotFound
		}
		return nil, err
	}
	return &g, nil
}

func DeleteGoal(ctx context.Context, pool *pgxpool.Pool, userID int64) error {
	tag, err := pool.Exec(ctx, "DELETE FROM savings_goals WHERE user_id = $1", userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrGoalNotFound
	}
	return nil
}
