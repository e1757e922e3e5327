package db

import (
	"context"
	"fmt"

	"fintrack-server/src/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

func CreateCard(ctx context.Context, pool *pgxpool.Pool, card *models.Card) (*models.Card, error) {
	query := `
		INSERT INTO cards (user_id, name, balance, annual_rate_percent, minimum_payment, credit_limit)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, name, balance, annual_rate_percent, minimum_payment, credit_limit, created_at, updated_at
	`
	var c models.Card
	err := pool.QueryRow(ctx, query, card.UserID, card.Name, card.Balance, card.AnnualRatePercent, card.MinimumPayment, card.CreditLimit).
		Scan(&c.ID, &c.UserID, &c.Name, &c.Balance, &c.AnnualRatePercent, &c.MinimumPayment, &c.CreditLimit, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func GetCardByID(ctx context.Context, pool *pgxpool.Pool, userID, cardID int64) (*models.Card, error) {
	query := `
		SELECT id, user_id, name, balance, annual_rate_percent, minimum_payment, credit_limit, created_at, updated_at
		FROM cards WHERE id = $1 AND user_id = $2
	`
	var c models.Card
	err := pool.QueryRow(ctx, query, cardID, userID).
		Scan(&c.ID, &c.UserID, &c.Name, &c.Balance, &c.AnnualRatePercent, &c.MinimumPayment, &c.CreditLimit, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func GetAllCardsForUser(ctx context.Context, pool *pgxpool.Pool, userID int64) ([]models.Card, error) {
	query := `
		SELECT id, user_id, name, balance, annual_rate_percent, minimum_payment, credit_limit, created_at, updated_at
		FROM cards WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cards []models.Card
	for rows.Next() {
		var c models.Card
		err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Balance, &c.AnnualRatePercent, &c.MinimumPayment, &c.CreditLimit, &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, rows.Err()
}

func UpdateCard(ctx context.Context, pool *pgxpool.Pool, card *models.Card) (*models.Card, error) {
	query := `
		UPDATE cards
		SET name = $1, balance = $2, annual_rate_percent = $3, minimum_payment = $4, credit_limit = $5, updated_at = NOW()
		WHERE id = $6 AND user_id = $7
		RETURNING id, user_id, name, balance, annual_rate_percent, minimum_payment, credit_limit, created_at, updated_at
	`
	var c models.Card
	err := pool.QueryRow(ctx, query, card.Name, card.Balance, card.AnnualRatePercent, card.MinimumPayment, card.CreditLimit, card.ID, card.UserID).
		Scan(&c.ID, &c.UserID, &c.Name, &c.Balance, &c.AnnualRatePercent, &c.MinimumPayment, &c.CreditLimit, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// UpdateCardBalance sets a new balance, clamped at zero in SQL so a payment
// larger than the balance cannot drive it negative.
func UpdateCardBalance(ctx context.Context, pool *pgxpool.Pool, userID, cardID int64, balance float64) (*models.Card, error) {
	query := `
		UPDATE cards
		SET balance = GREATEST(0, $1::numeric), updated_at = NOW()
		WHERE id = $2 AND user_id = $3
		RETURNING id, user_id, name, balance, annual_rate_percent, minimum_payment, credit_limit, created_at, updated_at
	`
	var c models.Card
	err := pool.QueryRow(ctx, query, balance, cardID, userID).
		Scan(&c.ID, &c.UserID, &c.Name, &c.Balance, &c.AnnualRatePercent, &c.MinimumPayment, &c.CreditLimit, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func DeleteCard(ctx context.Context, pool *pgxpool.Pool, userID, cardID int64) error {
	query := `DELETE FROM cards WHERE id = $1 AND user_id = $2`
	cmd, err := pool.Exec(ctx, query, cardID, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("card not found")
	}
	return nil
}
