package main

import (
	"summit/config"
	"summit/di"
	"summit/helper"
	"summit/shared/logger"

	"github.com/rs/zerolog/log"
)

//go:generate go run github.com/swaggo/swag/cmd/swag init -g ./cmd/app/main.go -o ./docs --parseDependency

// @title Summit API
// @version 1.0
// @description Booking, pricing and review service for guided adventures.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.Init(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run migrations")
		}
	}

	http, err := di.InitializeService()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize service")
	}

	http.Serve()
}
