package events

import (
	"context"
	"fmt"
	"summit/infras/kafka"
	"summit/infras/otel"
	"summit/shared/constant"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

// KafkaBus publishes events keyed by reviewed entity, so one consumer owns each entity.
type KafkaBus struct {
	client kafka.Client
	topic  string
	otel   otel.Otel
}

func NewKafkaBus(client kafka.Client, topic string, otel otel.Otel) *KafkaBus {
	return &KafkaBus{
		client: client,
		topic:  topic,
		otel:   otel,
	}
}

func (b *KafkaBus) Publish(ctx context.Context, event ReviewEvent) (err error) {
	ctx, scope := b.otel.NewScope(ctx, constant.OtelKafkaScopeName, constant.OtelKafkaScopeName+".KafkaBus.Publish")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("event.type", string(event.Type))
	scope.SetAttribute("event.key", event.Key())

	if err = b.client.SendMessages(ctx, b.topic, kafka.Message{Key: event.Key(), Value: event}); err != nil {
		return fmt.Errorf("failed to publish %s: %w", event.Type, err)
	}

	return nil
}

// Consume feeds every event on the topic to handler until ctx is cancelled.
func (b *KafkaBus) Consume(ctx context.Context, consumerGroup string, handler Handler) {
	b.client.Consume(ctx, consumerGroup, b.topic, func(ctx context.Context, message kafkaGo.Message) error {
		event, err := kafka.Decode[ReviewEvent](message)
		if err != nil {
			// A payload that cannot be decoded will never succeed, so it is skipped.
			log.Error().Err(err).Str("key", string(message.Key)).Msg("skipping undecodable review event")

			return nil
		}

		return handler(ctx, event)
	})
}
