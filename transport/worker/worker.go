// Package worker runs the rating aggregator as a standalone Kafka consumer.
package worker

import (
	"context"
	"os"
	"os/signal"
	"summit/config"
	"summit/infras/kafka"
	ratingService "summit/internal/domains/rating/service"
	"summit/internal/events"
	"syscall"

	"github.com/rs/zerolog/log"
)

type Worker struct {
	Config  *config.Config
	client  kafka.Client
	bus     *events.KafkaBus
	ratings ratingService.Rating
}

func New(cfg *config.Config, client kafka.Client, bus *events.KafkaBus, ratings ratingService.Rating) *Worker {
	return &Worker{
		Config:  cfg,
		client:  client,
		bus:     bus,
		ratings: ratings,
	}
}

// Run consumes review events until SIGINT or SIGTERM.
func (w *Worker) Run() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w.Consume(ctx)

	if err := w.client.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close Kafka client")
	}

	log.Info().Msg("Rating worker stopped")
}

// Consume blocks until ctx is done.
func (w *Worker) Consume(ctx context.Context) {
	log.Info().
		Str("topic", w.Config.Kafka.Topics.ReviewEvents).
		Str("group", w.Config.Kafka.ConsumerGroup).
		Msg("Starting rating worker")

	w.bus.Consume(ctx, w.Config.Kafka.ConsumerGroup, w.ratings.HandleReviewEvent)
}
