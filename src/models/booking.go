package models

import "time"

const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
)

type Booking struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	AdvisorID int       `json:"advisor_id"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateBookingRequest struct {
	AdvisorID int    `json:"advisor_id"`
	Date      string `json:"date"`
	Time      string `json:"time"`
}
