package main

import (
	"log"

	"github.com/careerlane/job-portal/internal/config"
	"github.com/careerlane/job-portal/internal/database"
	"github.com/careerlane/job-portal/internal/handlers"
)

func main() {
	// 1. Configuration (.env + environment)
	cfg := config.Load()

	// 2. Database Connection + migrations
	db := database.Connect(cfg.DatabaseDSN)

	// 3. Router with all services and handlers wired
	r := handlers.NewRouter(db, cfg)

	log.Println("Server starting on port " + cfg.Port + "...")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
