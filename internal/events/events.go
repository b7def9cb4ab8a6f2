// Package events carries review changes to the components that derive data from them.
package events

//go:generate go run go.uber.org/mock/mockgen -source=./events.go -destination=./mocks/events_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
)

// Transports selectable through RATING_EVENT_TRANSPORT.
const (
	TransportLocal = "local"
	TransportKafka = "kafka"
)

type ReviewEventType string

const (
	ReviewCreated ReviewEventType = "review.created"
	ReviewUpdated ReviewEventType = "review.updated"
	ReviewDeleted ReviewEventType = "review.deleted"
)

type ReviewEvent struct {
	EventID    string          `json:"event_id"`
	Type       ReviewEventType `json:"type"`
	ReviewID   string          `json:"review_id"`
	BookingID  string          `json:"booking_id"`
	TargetType string          `json:"target_type"`
	TargetID   string          `json:"target_id"`
	OccurredAt time.Time       `json:"occurred_at"`
}

func NewReviewEvent(eventType ReviewEventType, reviewID, bookingID, targetType, targetID string, at time.Time) ReviewEvent {
	return ReviewEvent{
		EventID:    ulid.Make().String(),
		Type:       eventType,
		ReviewID:   reviewID,
		BookingID:  bookingID,
		TargetType: targetType,
		TargetID:   targetID,
		OccurredAt: at,
	}
}

// Key groups events by reviewed entity.
func (e ReviewEvent) Key() string {
	return fmt.Sprintf("%s:%s", e.TargetType, e.TargetID)
}

type Handler func(ctx context.Context, event ReviewEvent) error

type Publisher interface {
	Publish(ctx context.Context, event ReviewEvent) error
}
