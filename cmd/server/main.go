package main

import (
	"log"

	"github.com/courtside/heatmap-backend-go/internal/api"
	"github.com/courtside/heatmap-backend-go/internal/config"
	"github.com/courtside/heatmap-backend-go/internal/database"
	"github.com/courtside/heatmap-backend-go/internal/handler"
	"github.com/courtside/heatmap-backend-go/internal/repository"
	"github.com/courtside/heatmap-backend-go/internal/service"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(database.Config{Path: cfg.DBPath})
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer db.Close()

	sessionRepo := repository.NewSessionRepository(db)
	sessionService := service.NewSessionService(sessionRepo)
	heatmapService := service.NewHeatmapService(sessionRepo)

	router := api.SetupRouter(cfg,
		handler.NewSessionHandler(sessionService),
		handler.NewHeatmapHandler(heatmapService),
	)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
