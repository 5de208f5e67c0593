package main

import (
	"github.com/rs/zerolog/log"

	"github.com/razorspoint/timeline-backend-go/internal/api"
	"github.com/razorspoint/timeline-backend-go/internal/config"
	"github.com/razorspoint/timeline-backend-go/internal/database"
	"github.com/razorspoint/timeline-backend-go/internal/handler"
	"github.com/razorspoint/timeline-backend-go/internal/logger"
	"github.com/razorspoint/timeline-backend-go/internal/repository"
	"github.com/razorspoint/timeline-backend-go/internal/routing"
	"github.com/razorspoint/timeline-backend-go/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger.Setup(cfg.LogLevel)

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("Failed to open database")
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	locationRepo := repository.NewLocationRepository(db)
	reportRepo := repository.NewReportRepository(db)

	osrm := routing.NewOSRMClient(cfg.RoutingBaseURL, cfg.RoutingTimeout)

	locationService := service.NewLocationService(locationRepo)
	analysisService := service.NewAnalysisService(locationRepo, reportRepo, osrm, service.AnalysisDefaults{
		CostPerKm:    cfg.CostPerKm,
		Profile:      cfg.RoutingProfile,
		RequestDelay: cfg.RoutingRequestDelay,
	})

	locationHandler := handler.NewLocationHandler(locationService)
	analysisHandler := handler.NewAnalysisHandler(analysisService)

	router := api.SetupRouter(locationHandler, analysisHandler)

	log.Info().Str("port", cfg.Port).Msg("Server starting")
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}
