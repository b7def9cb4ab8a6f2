package main

import (
	"summit/config"
	"summit/di"
	"summit/internal/events"
	"summit/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.Init(cfg)

	if cfg.Rating.EventTransport != events.TransportKafka {
		log.Warn().Str("transport", cfg.Rating.EventTransport).Msg("Review events are not published to Kafka; the worker will sit idle")
	}

	di.InitializeWorker().Run()
}
