package db

import (
	"context"
	"fmt"

	"fintrack-server/src/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

func CreateInvite(ctx context.Context, pool *pgxpool.Pool, email string) (*models.Invite, error) {
	query := `
		INSERT INTO signup_invites (email)
		VALUES ($1)
		RETURNING id, email, created_at, updated_at
	`
	var inv models.Invite
	err := pool.QueryRow(ctx, query, email).Scan(&inv.ID, &inv.Email, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func GetAllInvites(ctx context.Context, pool *pgxpool.Pool) ([]models.Invite, error) {
	query := `SELECT id, email, created_at, updated_at FROM signup_invites ORDER BY id`
	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invites []models.Invite
	for rows.Next() {
		var inv models.Invite
		if err := rows.Scan(&inv.ID, &inv.Email, &inv.CreatedAt, &inv.UpdatedAt); err != nil {
			return nil, err
		}
		invites = append(invites, inv)
	}
	return invites, rows.Err()
}

func IsEmailInvited(ctx context.Context, pool *pgxpool.Pool, email string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM signup_invites WHERE LOWER(email) = LOWER($1))`
	var invited bool
	err := pool.QueryRow(ctx, query, email).Scan(&invited)
	if err != nil {
		return false, err
	}
	return invited, nil
}

func DeleteInvite(ctx context.Context, pool *pgxpool.Pool, id int64) error {
	query := `DELETE FROM signup_invites WHERE id = $1`
	cmd, err := pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("invite not found")
	}
	return nil
}
