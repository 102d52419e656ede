package api

import (
	"cashflow-server/src/ai"
	"cashflow-server/src/handlers"
	"cashflow-server/src/middleware"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRouter(pool *pgxpool.Pool, aiClient *ai.Client, videoJobs *ai.VideoJobs) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"status":"ok"}`))
		})
		r.Post("/auth/login", handlers.Login(pool))

		// Protected routes
		r.With(middleware.JWTAuthMiddleware).Group(func(r chi.Router) {
			// Transactions
			r.Get("/transactions/{user_id}", handlers.GetTransactions(pool))
			r.Post("/transactions", handlers.CreateTransaction(pool))

			// Advisors & bookings
			r.Get("/advisors", handlers.GetAdvisors(pool))
			r.Post("/bookings", handlers.CreateBooking(pool))
			r.Get("/bookings/{user_id}", handlers.GetBookings(pool))
			r.Put("/bookings/{booking_id}/status", handlers.UpdateBookingStatus(pool))

			// Derived metrics
			r.Get("/insights/{user_id}", handlers.GetInsights(pool))
			r.Post("/tax/estimate", handlers.EstimateTax(pool))
			r.Post("/planner/analyze", handlers.AnalyzePlan(pool))

			// FlowBot
			r.Post("/advice", handlers.GetAdvice(pool, aiClient))
			r.Post("/videos", handlers.SubmitVideo(videoJobs))
			r.Get("/videos/{job_id}", handlers.GetVideoJob(videoJobs))
			r.Get("/videos/{job_id}/result", handlers.GetVideoResult(videoJobs, aiClient))
		})
	})

	return r
}
