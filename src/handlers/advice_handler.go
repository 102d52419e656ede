package handlers

import (
	"cashflow-server/src/ai"
	db "cashflow-server/src/db/sql"
	"cashflow-server/src/finance"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// GetAdvice answers a FlowBot chat prompt with the user's financial
// context attached.
func GetAdvice(pool *pgxpool.Pool, client *ai.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if client == nil {
			http.Error(w, "ai advisor is not configured", http.StatusServiceUnavailable)
			return
		}
		userID := r.Context().Value("user_id").(int64)
		var req struct {
			Prompt string `json:"prompt"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode advice request body for user %d: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		req.Prompt = strings.TrimSpace(req.Prompt)
		if req.Prompt == "" {
			http.Error(w, "prompt: required", http.StatusBadRequest)
			return
		}

		user, err := db.GetUserByID(r.Context(), pool, userID)
		if err != nil {
			log.Printf("ERROR: Failed to load user %d for advice: %v", userID, err)
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		transactions, err := loadTransactions(r, pool, userID)
		if err != nil {
			log.Printf("ERROR: Failed to get transactions for advice, user %d: %v", userID, err)
			http.Error(w, "failed to get transactions", http.StatusInternalServerError)
			return
		}

		summary := finance.Summarize(transactions)
		actx := ai.NewAdvisorContext(user, summary.TotalIncome, summary.TotalExpenses, transactions)

		reply, err := client.Chat(r.Context(), req.Prompt, actx)
		if err != nil {
			log.Printf("ERROR: FlowBot request failed for user %d: %v", userID, err)
			http.Error(w, "I'm sorry, I'm having trouble analyzing your data right now. Please try again later.", http.StatusBadGateway)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"reply": reply})
	}
}

// SubmitVideo starts a video-advisor generation job.
func SubmitVideo(jobs *ai.VideoJobs) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if jobs == nil {
			http.Error(w, "ai advisor is not configured", http.StatusServiceUnavailable)
			return
		}
		userID := r.Context().Value("user_id").(int64)
		var req struct {
			Prompt string `json:"prompt"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode video request body for user %d: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		req.Prompt = strings.TrimSpace(req.Prompt)
		if req.Prompt == "" {
			http.Error(w, "prompt: required", http.StatusBadRequest)
			return
		}

		job := jobs.Submit(req.Prompt)
		log.Printf("INFO: Submitted video job %s for user %d", job.ID, userID)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(job)
	}
}

// GetVideoJob reports a job's state.
func GetVideoJob(jobs *ai.VideoJobs) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if jobs == nil {
			http.Error(w, "ai advisor is not configured", http.StatusServiceUnavailable)
			return
		}
		job, ok := jobs.Get(chi.URLParam(r, "job_id"))
		if !ok {
			http.Error(w, "video job not found", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(job)
	}
}

// GetVideoResult streams the finished video for a done job.
func GetVideoResult(jobs *ai.VideoJobs, client *ai.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if jobs == nil || client == nil {
			http.Error(w, "ai advisor is not configured", http.StatusServiceUnavailable)
			return
		}
		job, ok := jobs.Get(chi.URLParam(r, "job_id"))
		if !ok {
			http.Error(w, "video job not found", http.StatusNotFound)
			return
		}
		if job.State != ai.JobDone {
			http.Error(w, "video job is not done", http.StatusConflict)
			return
		}

		body, err := client.FetchVideo(r.Context(), job.ResultURI)
		if err != nil {
			log.Printf("ERROR: Failed to fetch video for job %s: %v", job.ID, err)
			http.Error(w, "Failed to generate video. Please try again later.", http.StatusBadGateway)
			return
		}
		defer body.Close()

		w.Header().Set("Content-Type", "video/mp4")
		if _, err := io.Copy(w, body); err != nil {
			log.Printf("ERROR: Failed to stream video for job %s: %v", job.ID, err)
		}
	}
}
