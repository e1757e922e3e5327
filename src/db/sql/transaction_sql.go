package db

import (
	"context"
	"fmt"
	"time"

	"fintrack-server/src/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// TransactionFilter narrows ListTransactions. Zero values mean "no filter".
type TransactionFilter struct {
	Start    time.Time
	End      time.Time
	Category string
	Kind     string
}

func CreateTransaction(ctx context.Context, pool *pgxpool.Pool, txn *models.Transaction) (*models.Transaction, error) {
	query := `
		INSERT INTO transactions (user_id, amount, description, category, kind, date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, amount, description, category, kind, date, created_at
	`
	var t models.Transaction
	err := pool.QueryRow(ctx, query, txn.UserID, txn.Amount, txn.Description, txn.Category, txn.Kind, txn.Date).
		Scan(&t.ID, &t.UserID, &t.Amount, &t.Description, &t.Category, &t.Kind, &t.Date, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func GetTransactionByID(ctx context.Context, pool *pgxpool.Pool, userID, txnID int64) (*models.Transaction, error) {
	query := `
		SELECT id, user_id, amount, description, category, kind, date, created_at
		FROM transactions WHERE id = $1 AND user_id = $2
	`
	var t models.Transaction
	err := pool.QueryRow(ctx, query, txnID, userID).
		Scan(&t.ID, &t.UserID, &t.Amount, &t.Description, &t.Category, &t.Kind, &t.Date, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func ListTransactions(ctx context.Context, pool *pgxpool.Pool, userID int64, filter TransactionFilter) ([]models.Transaction, error) {
	query := `
		SELECT id, user_id, amount, description, category, kind, date, created_at
		FROM transactions
		WHERE user_id = $1
		  AND ($2::timestamptz IS NULL OR date >= $2)
		  AND ($3::timestamptz IS NULL OR date <= $3)
		  AND ($4::text = '' OR LOWER(category) = LOWER($4))
		  AND ($5::text = '' OR kind = $5)
		ORDER BY date DESC, id DESC
	`
	var start, end interface{}
	if !filter.Start.IsZero() {
		start = filter.Start
	}
	if !filter.End.IsZero() {
		end = filter.End
	}

	rows, err := pool.Query(ctx, query, userID, start, end, filter.Category, filter.Kind)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txns []models.Transaction
	for rows.Next() {
		var t models.Transaction
		err := rows.Scan(&t.ID, &t.UserID, &t.Amount, &t.Description, &t.Category, &t.Kind, &t.Date, &t.CreatedAt)
		if err != nil {
			return nil, err
		}
		txns = append(txns, t)
	}
	return txns, rows.Err()
}

func UpdateTransaction(ctx context.Context, pool *pgxpool.Pool, txn *models.Transaction) (*models.Transaction, error) {
	query := `
		UPDATE transactions
		SET amount = $1, description = $2, category = $3, kind = $4, date = $5
		WHERE id = $6 AND user_id = $7
		RETURNING id, user_id, amount, description, category, kind, date, created_at
	`
	var t models.Transaction
	err := pool.QueryRow(ctx, query, txn.Amount, txn.Description, txn.Category, txn.Kind, txn.Date, txn.ID, txn.UserID).
		Scan(&t.ID, &t.UserID, &t.Amount, &t.Description, &t.Category, &t.Kind, &t.Date, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func DeleteTransaction(ctx context.Context, pool *pgxpool.Pool, userID, txnID int64) error {
	query := `DELETE FROM transactions WHERE id = $1 AND user_id = $2`
	cmd, err := pool.Exec(ctx, query, txnID, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("transaction not found")
	}
	return nil
}
