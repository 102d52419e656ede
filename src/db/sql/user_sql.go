package db

import (
	"cashflow-server/src/models"
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrUserNotFound = errors.New("user not found")

const userColumns = `id, email, role, age, subscription, company_name, employee_count, gov_scheme, created_at`

func GetUserByEmail(ctx context.Context, pool *pgxpool.Pool, email string) (*models.User, error) {
	var user models.User
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE email = $1
	`
	err := pool.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Email,
		&user.Role,
		&user.Age,
		&user.Subscription,
		&user.CompanyName,
		&user.EmployeeCount,
		&user.GovScheme,
		&user.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("query error: %w", err)
	}
	return &user, nil
}

func GetUserByID(ctx context.Context, pool *pgxpool.Pool, id int64) (*models.User, error) {
	var user models.User
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1
	`
	err := pool.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Email,
		&user.Role,
		&user.Age,
		&user.Subscription,
		&user.CompanyName,
		&user.EmployeeCount,
		&user.GovScheme,
		&user.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("query error: %w", err)
	}
	return &user, nil
}

func GetUserPasswordHash(ctx context.Context, pool *pgxpool.Pool, email string) (*string, error) {
	var hash *string
	err := pool.QueryRow(ctx, `SELECT password_hash FROM users WHERE email = $1`, email).Scan(&hash)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("query error: %w", err)
	}
	return hash, nil
}

func CreateUser(ctx context.Context, pool *pgxpool.Pool, req models.LoginRequest, passwordHash *string) (*models.User, error) {
	query := `
		INSERT INTO users (email, password_hash, role, age, company_name, employee_count, gov_scheme)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + userColumns + `
	`
	var user models.User
	err := pool.QueryRow(ctx, query,
		req.Email,
		passwordHash,
		req.Role,
		req.Age,
		req.CompanyName,
		req.EmployeeCount,
		req.GovScheme,
	).Scan(
		&user.ID,
		&user.Email,
		&user.Role,
		&user.Age,
		&user.Subscription,
		&user.CompanyName,
		&user.EmployeeCount,
		&user.GovScheme,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}
