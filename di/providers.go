package di

import (
	"summit/config"
	"summit/infras/kafka"
	"summit/infras/otel"
	ratingService "summit/internal/domains/rating/service"
	"summit/internal/events"

	"github.com/rs/zerolog/log"
)

// NewEventPublisher picks how review events reach the rating aggregator. The local bus recomputes
// ratings before the review request returns; kafka hands them to the rating worker.
func NewEventPublisher(cfg *config.Config, client kafka.Client, ratings ratingService.Rating, otel otel.Otel) events.Publisher {
	if cfg.Rating.EventTransport == events.TransportKafka {
		log.Info().Str("topic", cfg.Kafka.Topics.ReviewEvents).Msg("Publishing review events to Kafka")

		return NewKafkaBus(cfg, client, otel)
	}

	bus := events.NewLocalBus(otel)
	bus.Subscribe(ratings.HandleReviewEvent)

	return bus
}

func NewKafkaBus(cfg *config.Config, client kafka.Client, otel otel.Otel) *events.KafkaBus {
	return events.NewKafkaBus(client, cfg.Kafka.Topics.ReviewEvents, otel)
}
