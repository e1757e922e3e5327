package db

import (
	"context"
	"fmt"
	"time"

	"fintrack-server/src/models"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/plaid/plaid-go/v41/plaid"
)

func SaveBankItem(ctx context.Context, pool *pgxpool.Pool, userID int64, itemID, accessToken, institution string) error {
	query := `
		INSERT INTO bank_items (user_id, item_id, access_token, institution)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (item_id) DO NOTHING
	`
	_, err := pool.Exec(ctx, query, userID, itemID, accessToken, institution)
	return err
}

func GetBankItems(ctx context.Context, pool *pgxpool.Pool, userID int64) ([]models.BankItem, error) {
	query := `SELECT id, user_id, item_id, access_token, institution, created_at FROM bank_items WHERE user_id = $1`

	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.BankItem
	for rows.Next() {
		var item models.BankItem
		err := rows.Scan(&item.ID, &item.UserID, &item.ItemID, &item.AccessToken, &item.Institution, &item.CreatedAt)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func GetBankItemAccessToken(ctx context.Context, pool *pgxpool.Pool, userID, itemID int64) (string, error) {
	query := `SELECT access_token FROM bank_items WHERE user_id = $1 AND id = $2`
	var accessToken string
	err := pool.QueryRow(ctx, query, userID, itemID).Scan(&accessToken)
	if err != nil {
		return "", err
	}
	return accessToken, nil
}

func DeleteBankItem(ctx context.Context, pool *pgxpool.Pool, userID, itemID int64) error {
	query := `DELETE FROM bank_items WHERE id = $1 AND user_id = $2`
	cmd, err := pool.Exec(ctx, query, itemID, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("bank item not found")
	}
	return nil
}

func GetSyncCursor(ctx context.Context, pool *pgxpool.Pool, itemID int64) (string, error) {
	query := `SELECT COALESCE(sync_cursor, '') FROM bank_items WHERE id = $1`
	var cursor string
	err := pool.QueryRow(ctx, query, itemID).Scan(&cursor)
	if err != nil {
		return "", err
	}
	return cursor, nil
}

func UpdateSyncCursor(ctx context.Context, pool *pgxpool.Pool, itemID int64, cursor string) error {
	query := `UPDATE bank_items SET sync_cursor = $1 WHERE id = $2`
	_, err := pool.Exec(ctx, query, cursor, itemID)
	return err
}

// bankLedgerEntry maps one Plaid transaction onto a ledger entry. Plaid
// reports outflows as positive amounts and inflows as negative, so the sign
// picks the kind and the stored amount is always positive. Zero-amount rows
// are skipped.
func bankLedgerEntry(userID int64, txn plaid.Transaction) (*models.Transaction, bool, error) {
	amount := txn.GetAmount()
	kind := models.KindExpense
	if amount < 0 {
		kind = models.KindIncome
		amount = -amount
	}
	if amount == 0 {
		return nil, false, nil
	}

	pfc := txn.GetPersonalFinanceCategory()
	category := pfc.GetPrimary()

	date, err := time.Parse("2006-01-02", txn.GetDate())
	if err != nil {
		return nil, false, fmt.Errorf("parse transaction date %q: %w", txn.GetDate(), err)
	}

	return &models.Transaction{
		UserID:      userID,
		Amount:      amount,
		Description: txn.GetName(),
		Category:    category,
		Kind:        kind,
		Date:        date,
	}, true, nil
}

// ImportBankTransactions writes added Plaid transactions into the ledger,
// deduplicated by Plaid transaction id.
func ImportBankTransactions(ctx context.Context, pool *pgxpool.Pool, userID int64, transactions []plaid.Transaction) (int, error) {
	imported := 0
	for _, txn := range transactions {
		entry, ok, err := bankLedgerEntry(userID, txn)
		if err != nil {
			return imported, err
		}
		if !ok {
			continue
		}

		query := `
			INSERT INTO transactions (user_id, amount, description, category, kind, date, external_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (external_id) DO NOTHING
		`
		cmd, err := pool.Exec(ctx, query,
			entry.UserID,
			entry.Amount,
			entry.Description,
			entry.Category,
			entry.Kind,
			entry.Date,
			txn.GetTransactionId(),
		)
		if err != nil {
			return imported, err
		}
		imported += int(cmd.RowsAffected())
	}

	return imported, nil
}
