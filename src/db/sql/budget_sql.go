package db

import (
	"context"
	"fmt"

	"fintrack-server/src/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

func CreateBudget(ctx context.Context, pool *pgxpool.Pool, budget *models.Budget) (*models.Budget, error) {
	query := `
		INSERT INTO budgets (user_id, category, limit_amount, period_month, period_year)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, category, limit_amount, period_month, period_year, created_at, updated_at
	`
	var b models.Budget
	err := pool.QueryRow(ctx, query, budget.UserID, budget.Category, budget.LimitAmount, budget.PeriodMonth, budget.PeriodYear).
		Scan(&b.ID, &b.UserID, &b.Category, &b.LimitAmount, &b.PeriodMonth, &b.PeriodYear, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func GetBudgetByID(ctx context.Context, pool *pgxpool.Pool, userID, budgetID int64) (*models.Budget, error) {
	query := `
		SELECT id, user_id, category, limit_amount, period_month, period_year, created_at, updated_at
		FROM budgets WHERE id = $1 AND user_id = $2
	`
	var b models.Budget
	err := pool.QueryRow(ctx, query, budgetID, userID).
		Scan(&b.ID, &b.UserID, &b.Category, &b.LimitAmount, &b.PeriodMonth, &b.PeriodYear, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func GetBudgetsForPeriod(ctx context.Context, pool *pgxpool.Pool, userID int64, month, year int) ([]models.Budget, error) {
	query := `
		SELECT id, user_id, category, limit_amount, period_month, period_year, created_at, updated_at
		FROM budgets WHERE user_id = $1 AND period_month = $2 AND period_year = $3
		ORDER BY category
	`
	rows, err := pool.Query(ctx, query, userID, month, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var budgets []models.Budget
	for rows.Next() {
		var b models.Budget
		err := rows.Scan(&b.ID, &b.UserID, &b.Category, &b.LimitAmount, &b.PeriodMonth, &b.PeriodYear, &b.CreatedAt, &b.UpdatedAt)
		if err != nil {
			return nil, err
		}
		budgets = append(budgets, b)
	}
	return budgets, rows.Err()
}

func GetAllBudgetsForUser(ctx context.Context, pool *pgxpool.Pool, userID int64) ([]models.Budget, error) {
	query := `
		SELECT id, user_id, category, limit_amount, period_month, period_year, created_at, updated_at
		FROM budgets WHERE user_id = $1
		ORDER BY period_year DESC, period_month DESC, category
	`
	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var budgets []models.Budget
	for rows.Next() {
		var b models.Budget
		err := rows.Scan(&b.ID, &b.UserID, &b.Category, &b.LimitAmount, &b.PeriodMonth, &b.PeriodYear, &b.CreatedAt, &b.UpdatedAt)
		if err != nil {
			return nil, err
		}
		budgets = append(budgets, b)
	}
	return budgets, rows.Err()
}

func UpdateBudget(ctx context.Context, pool *pgxpool.Pool, budget *models.Budget) (*models.Budget, error) {
	query := `
		UPDATE budgets
		SET category = $1, limit_amount = $2, period_month = $3, period_year = $4, updated_at = NOW()
		WHERE id = $5 AND user_id = $6
		RETURNING id, user_id, category, limit_amount, period_month, period_year, created_at, updated_at
	`
	var b models.Budget
	err := pool.QueryRow(ctx, query, budget.Category, budget.LimitAmount, budget.PeriodMonth, budget.PeriodYear, budget.ID, budget.UserID).
		Scan(&b.ID, &b.UserID, &b.Category, &b.LimitAmount, &b.PeriodMonth, &b.PeriodYear, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func DeleteBudget(ctx context.Context, pool *pgxpool.Pool, userID, budgetID int64) error {
	query := `DELETE FROM budgets WHERE id = $1 AND user_id = $2`
	cmd, err := pool.Exec(ctx, query, budgetID, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("budget not found")
	}
	return nil
}
