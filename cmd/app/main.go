package main

import (
	"tatzy/config"
	"tatzy/di"
	"tatzy/helper"
	"tatzy/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Tatzy Taxi API
// @version 0.1.0
// @description Booking intake for the public site and booking management for dispatchers.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.Configure(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
