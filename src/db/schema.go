package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY GENERATED ALWAYS AS IDENTITY,
		email TEXT UNIQUE NOT NULL,
		password_hash TEXT,
		role TEXT NOT NULL DEFAULT 'individual',
		age INTEGER NOT NULL DEFAULT 18,
		company_name TEXT,
		employee_count INTEGER,
		gov_scheme TEXT,
		subscription TEXT NOT NULL DEFAULT 'free',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS transactions (
		id INTEGER PRIMARY KEY GENERATED ALWAYS AS IDENTITY,
		user_id INTEGER NOT NULL REFERENCES users(id),
		type TEXT NOT NULL,
		amount NUMERIC(14,2) NOT NULL,
		category TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		date TEXT NOT NULL,
		upi_id TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS advisors (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		specialization TEXT NOT NULL,
		rating NUMERIC(3,1) NOT NULL,
		bio TEXT NOT NULL,
		image TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id INTEGER PRIMARY KEY GENERATED ALWAYS AS IDENTITY,
		user_id INTEGER NOT NULL REFERENCES users(id),
		advisor_id INTEGER NOT NULL REFERENCES advisors(id),
		date TEXT NOT NULL,
		time TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`INSERT INTO advisors (id, name, specialization, rating, bio, image) VALUES
		(1, 'Sarah Jenkins', 'Wealth Management & Tax', 4.9,
			'Ex-Goldman Sachs advisor with 15 years of experience.',
			'https://picsum.photos/seed/sarah/200/200'),
		(2, 'David Chen', 'Business Cash Flow', 4.8,
			'Specializes in helping small business owners scale.',
			'https://picsum.photos/seed/david/200/200'),
		(3, 'Elena Rodriguez', 'Student Financial Planning', 5.0,
			'Dedicated to helping students manage debt.',
			'https://picsum.photos/seed/elena/200/200')
		ON CONFLICT (id) DO NOTHING`,
}

// InitSchema creates the four tables and seeds the fixed advisor roster.
// Safe to run on every startup.
func InitSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("schema init: %w", err)
		}
	}
	return nil
}
