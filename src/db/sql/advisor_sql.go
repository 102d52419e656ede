package db

import (
	"cashflow-server/src/models"
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

func GetAllAdvisors(ctx context.Context, pool *pgxpool.Pool) ([]models.Advisor, error) {
	query := `
		SELECT id, name, specialization, rating, bio, image
		FROM advisors
		ORDER BY id
	`
	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}
	defer rows.Close()

	advisors := []models.Advisor{}
	for rows.Next() {
		var a models.Advisor
		err := rows.Scan(&a.ID, &a.Name, &a.Specialization, &a.Rating, &a.Bio, &a.Image)
		if err != nil {
			return nil, err
		}
		advisors = append(advisors, a)
	}
	return advisors, rows.Err()
}

func AdvisorExists(ctx context.Context, pool *pgxpool.Pool, id int) (bool, error) {
	var exists bool
	err := pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM advisors WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("query error: %w", err)
	}
	return exists, nil
}
