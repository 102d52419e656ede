package main

import (
	"cashflow-server/src/ai"
	"cashflow-server/src/api"
	"cashflow-server/src/config"
	"cashflow-server/src/db"
	"context"
	"log"
	"net/http"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	// Connect to database
	pool, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("DB connection failed: %v", err)
	}
	defer pool.Close()

	if err := db.InitSchema(ctx, pool); err != nil {
		log.Fatalf("Schema init failed: %v", err)
	}

	db.InitCache()

	var aiClient *ai.Client
	var videoJobs *ai.VideoJobs
	if cfg.GeminiAPIKey != "" {
		aiClient, err = ai.NewClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.VideoModel)
		if err != nil {
			log.Fatalf("AI client init failed: %v", err)
		}
		videoJobs = ai.NewVideoJobs(aiClient)
	} else {
		log.Println("GEMINI_API_KEY not set, advisor endpoints disabled")
	}

	// Router
	router := api.NewRouter(pool, aiClient, videoJobs)

	log.Println("API server running on port", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatal(err)
	}
}
