package handlers

import (
	"cashflow-server/src/finance"
	"cashflow-server/src/util"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// GetInsights computes the dashboard summary for a user's transactions.
func GetInsights(pool *pgxpool.Pool) http.HandlerFunc {
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
			log.Printf("ERROR: Failed to get transactions for insights, user %d: %v", userID, err)
			http.Error(w, "failed to get transactions", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(finance.Summarize(transactions))
	}
}

// EstimateTax combines the user's tracked totals with manually entered
// income and deduction categories into a flat-rate estimate.
func EstimateTax(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		var input finance.TaxInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			log.Printf("ERROR: Failed to decode tax estimate request body for user %d: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		transactions, err := loadTransactions(r, pool, userID)
		if err != nil {
			log.Printf("ERROR: Failed to get transactions for tax estimate, user %d: %v", userID, err)
			http.Error(w, "failed to get transactions", http.StatusInternalServerError)
			return
		}

		summary := finance.Summarize(transactions)
		estimate := finance.EstimateTax(summary.TotalIncome, summary.TotalExpenses, input)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(estimate)
	}
}

// AnalyzePlan flags a planned spend as risky or safe from the user's
// current balance.
func AnalyzePlan(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		var req struct {
			Goal string `json:"goal"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode planner request body for user %d: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		req.Goal = strings.TrimSpace(req.Goal)
		if !util.ValidateCategory(req.Goal) {
			http.Error(w, "goal: must be non-empty and at most 64 characters", http.StatusBadRequest)
			return
		}

		transactions, err := loadTransactions(r, pool, userID)
		if err != nil {
			log.Printf("ERROR: Failed to get transactions for planner, user %d: %v", userID, err)
			http.Error(w, "failed to get transactions", http.StatusInternalServerError)
			return
		}

		summary := finance.Summarize(transactions)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(finance.AnalyzePlan(req.Goal, summary.Balance))
	}
}
