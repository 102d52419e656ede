package db

import (
	"cashflow-server/src/models"
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// GetTransactionsForUser returns the user's transactions newest first.
// The descending date order is load-bearing: the dashboard chart takes
// the head of this list as "the most recent ten".
func GetTransactionsForUser(ctx context.Context, pool *pgxpool.Pool, userID int64) ([]models.Transaction, error) {
	query := `
		SELECT id, user_id, type, amount, category, description, date, upi_id, created_at
		FROM transactions
		WHERE user_id = $1
		ORDER BY date DESC, id DESC
	`
	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}
	defer rows.Close()

	transactions := []models.Transaction{}
	for rows.Next() {
		var t models.Transaction
		err := rows.Scan(&t.ID, &t.UserID, &t.Type, &t.Amount, &t.Category, &t.Description, &t.Date, &t.UpiID, &t.CreatedAt)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}

func CreateTransaction(ctx context.Context, pool *pgxpool.Pool, req models.CreateTransactionRequest) (*models.Transaction, error) {
	query := `
		INSERT INTO transactions (user_id, type, amount, category, description, date, upi_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, user_id, type, amount, category, description, date, upi_id, created_at
	`
	var t models.Transaction
	err := pool.QueryRow(ctx, query,
		req.UserID,
		req.Type,
		req.Amount,
		req.Category,
		req.Description,
		req.Date,
		req.UpiID,
	).Scan(&t.ID, &t.UserID, &t.Type, &t.Amount, &t.Category, &t.Description, &t.Date, &t.UpiID, &t.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}
	return &t, nil
}
