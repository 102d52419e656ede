package handlers

import (
	db "cashflow-server/src/db/sql"
	"cashflow-server/src/models"
	"cashflow-server/src/util"
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func CreateBooking(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		var req models.CreateBookingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create booking request body for user %d: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if err := validateBooking(&req); err != nil {
			log.Printf("ERROR: Booking validation failed for user %d: %v", userID, err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		exists, err := db.AdvisorExists(r.Context(), pool, req.AdvisorID)
		if err != nil {
			log.Printf("ERROR: Failed to check advisor %d: %v", req.AdvisorID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if !exists {
			http.Error(w, "advisor not found", http.StatusNotFound)
			return
		}

		created, err := db.CreateBooking(r.Context(), pool, userID, req)
		if err != nil {
			log.Printf("ERROR: Failed to create booking for user %d: %v", userID, err)
			http.Error(w, "failed to create booking", http.StatusInternalServerError)
			return
		}
		log.Printf("INFO: Created booking id %d for user %d with advisor %d", created.ID, userID, created.AdvisorID)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

func GetBookings(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		pathID, err := strconv.ParseInt(chi.URLParam(r, "user_id"), 10, 64)
		if err != nil {
			http.Error(w, "invalid user id", http.StatusBadRequest)
			return
		}
		if pathID != userID {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		bookings, err := db.GetBookingsForUser(r.Context(), pool, userID)
		if err != nil {
			log.Printf("ERROR: Failed to get bookings for user %d: %v", userID, err)
			http.Error(w, "failed to get bookings", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(bookings)
	}
}

func UpdateBookingStatus(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		bookingID, err := strconv.Atoi(chi.URLParam(r, "booking_id"))
		if err != nil {
			http.Error(w, "invalid booking id", http.StatusBadRequest)
			return
		}
		var req struct {
			Status string `json:"status"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode booking status request body for user %d: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if !util.ValidateBookingStatus(req.Status) {
			http.Error(w, "status: must be one of pending, confirmed, cancelled", http.StatusBadRequest)
			return
		}

		updated, err := db.UpdateBookingStatus(r.Context(), pool, userID, bookingID, req.Status)
		if err != nil {
			log.Printf("ERROR: Failed to update booking %d for user %d: %v", bookingID, userID, err)
			http.Error(w, "booking not found", http.StatusNotFound)
			return
		}
		log.Printf("INFO: Booking %d for user %d set to %s", bookingID, userID, req.Status)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(updated)
	}
}

func validateBooking(req *models.CreateBookingRequest) error {
	if req.AdvisorID <= 0 {
		return util.NewValidationError("advisor_id", "required")
	}
	if !util.ValidateDate(req.Date) {
		return util.NewValidationError("date", "must be YYYY-MM-DD")
	}
	if !util.ValidateTime(req.Time) {
		return util.NewValidationError("time", "must be HH:MM")
	}
	return nil
}
