package handlers

import (
	cache "cashflow-server/src/db"
	db "cashflow-server/src/db/sql"
	"cashflow-server/src/models"
	"cashflow-server/src/util"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func GetTransactions(pool *pgxpool.Pool) http.HandlerFunc {
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

		transactions, err := loadTransactions(r, pool, userID)
		if err != nil {
			log.Printf("ERROR: Failed to get transactions for user %d: %v", userID, err)
			http.Error(w, "failed to get transactions", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(transactions)
	}
}

func CreateTransaction(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		var req models.CreateTransactionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create transaction request body for user %d: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if req.UserID == 0 {
			req.UserID = int(userID)
		}
		if int64(req.UserID) != userID {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		if err := validateTransaction(&req); err != nil {
			log.Printf("ERROR: Transaction validation failed for user %d: %v", userID, err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		created, err := db.CreateTransaction(r.Context(), pool, req)
		if err != nil {
			log.Printf("ERROR: Failed to create transaction for user %d: %v", userID, err)
			http.Error(w, "failed to create transaction", http.StatusInternalServerError)
			return
		}
		// Drop the cached list so the next read reflects the write.
		cache.DelTransactionCache(cache.TransactionCacheKey(userID))
		log.Printf("INFO: Created transaction id %d for user %d, type %s, amount %.2f", created.ID, userID, created.Type, created.Amount)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]bool{"success": true})
	}
}

func validateTransaction(req *models.CreateTransactionRequest) error {
	if !util.ValidateTransactionType(req.Type) {
		return util.NewValidationError("type", "must be one of income, expense, petty_cash")
	}
	if !util.ValidateAmount(req.Amount) {
		return util.NewValidationError("amount", "must be a positive number")
	}
	req.Category = strings.TrimSpace(req.Category)
	if !util.ValidateCategory(req.Category) {
		return util.NewValidationError("category", "must be non-empty and at most 64 characters")
	}
	if !util.ValidateDate(req.Date) {
		return util.NewValidationError("date", "must be YYYY-MM-DD")
	}
	return nil
}

// loadTransactions serves a user's list through the cache; a miss falls
// back to the database and primes the cache.
func loadTransactions(r *http.Request, pool *pgxpool.Pool, userID int64) ([]models.Transaction, error) {
	key := cache.TransactionCacheKey(userID)
	if cached, found := cache.Cache.Get(key); found {
		if transactions, ok := cached.([]models.Transaction); ok {
			return transactions, nil
		}
	}
	transactions, err := db.GetTransactionsForUser(r.Context(), pool, userID)
	if err != nil {
		return nil, err
	}
	cache.SetTransactionCache(key, transactions)
	return transactions, nil
}
