package db

import (
	"cashflow-server/src/models"
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

func CreateBooking(ctx context.Context, pool *pgxpool.Pool, userID int64, req models.CreateBookingRequest) (*models.Booking, error) {
	query := `
		INSERT INTO bookings (user_id, advisor_id, date, time)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, advisor_id, date, time, status, created_at
	`
	var b models.Booking
	err := pool.QueryRow(ctx, query, userID, req.AdvisorID, req.Date, req.Time).
		Scan(&b.ID, &b.UserID, &b.AdvisorID, &b.Date, &b.Time, &b.Status, &b.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	return &b, nil
}

func GetBookingsForUser(ctx context.Context, pool *pgxpool.Pool, userID int64) ([]models.Booking, error) {
	query := `
		SELECT id, user_id, advisor_id, date, time, status, created_at
		FROM bookings
		WHERE user_id = $1
		ORDER BY date DESC, time DESC
	`
	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}
	defer rows.Close()

	bookings := []models.Booking{}
	for rows.Next() {
		var b models.Booking
		err := rows.Scan(&b.ID, &b.UserID, &b.AdvisorID, &b.Date, &b.Time, &b.Status, &b.CreatedAt)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func UpdateBookingStatus(ctx context.Context, pool *pgxpool.Pool, userID int64, bookingID int, status string) (*models.Booking, error) {
	query := `
		UPDATE bookings
		SET status = $1
		WHERE id = $2 AND user_id = $3
		RETURNING id, user_id, advisor_id, date, time, status, created_at
	`
	var b models.Booking
	err := pool.QueryRow(ctx, query, status, bookingID, userID).
		Scan(&b.ID, &b.UserID, &b.AdvisorID, &b.Date, &b.Time, &b.Status, &b.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("booking not found")
	}
	return &b, nil
}
