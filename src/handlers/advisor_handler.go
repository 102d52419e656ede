package handlers

import (
	cache "cashflow-server/src/db"
	db "cashflow-server/src/db/sql"
	"cashflow-server/src/models"
	"encoding/json"
	"log"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
)

const advisorCacheKey = "advisors:all"

// GetAdvisors returns the seeded advisor roster. The roster is static,
// so it sits in the cache after the first hit.
func GetAdvisors(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cached, found := cache.Cache.Get(advisorCacheKey); found {
			if advisors, ok := cached.([]models.Advisor); ok {
				w.Header().Set("Content-Type", "application/json")
				json.NewEncoder(w).Encode(advisors)
				return
			}
		}

		advisors, err := db.GetAllAdvisors(r.Context(), pool)
		if err != nil {
			log.Printf("ERROR: Failed to get advisors: %v", err)
			http.Error(w, "failed to get advisors", http.StatusInternalServerError)
			return
		}
		cache.SetAdvisorCache(advisorCacheKey, advisors)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(advisors)
	}
}
