package events

import (
	"context"
	"errors"
	"fmt"
	"summit/infras/otel"
	"summit/shared/constant"
	"sync"

	"github.com/rs/zerolog/log"
)

// LocalBus delivers events in-process before Publish returns.
type LocalBus struct {
	mu       sync.RWMutex
	handlers []Handler
	otel     otel.Otel
}

func NewLocalBus(otel otel.Otel) *LocalBus {
	return &LocalBus{otel: otel}
}

func (b *LocalBus) Subscribe(handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers = append(b.handlers, handler)
}

func (b *LocalBus) Publish(ctx context.Context, event ReviewEvent) (err error) {
	ctx, scope := b.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".LocalBus.Publish")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("event.type", string(event.Type))
	scope.SetAttribute("event.key", event.Key())

	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers...)
	b.mu.RUnlock()

	var errs []error

	for _, handler := range handlers {
		if hErr := handler(ctx, event); hErr != nil {
			log.Error().Err(hErr).Str("eventID", event.EventID).Str("type", string(event.Type)).Msg("event handler failed")

			errs = append(errs, hErr)
		}
	}

	if err = errors.Join(errs...); err != nil {
		return fmt.Errorf("failed to handle %s: %w", event.Type, err)
	}

	return nil
}
