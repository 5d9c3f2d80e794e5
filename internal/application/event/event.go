package event

import (
	"time"
)

const (
	EventVersion  = 1
	EventProducer = "catalog-service"

	RoutingKeyEventCancelled = "event.cancelled"
)

// DomainEventEnvelope is the stable contract for domain events emitted on the
// broker. Consumers should rely on: version/producer/message_id/occurred_at +
// payload. correlation_id is optional but recommended for tracing.
type DomainEventEnvelope[T any] struct {
	Version       int       `json:"version"`
	Producer      string    `json:"producer"`
	MessageID     string    `json:"message_id"`
	CorrelationID string    `json:"correlation_id,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
	Payload       T         `json:"payload"`
}

// EventCancelledPayload is the business payload for routing key: event.cancelled
type EventCancelledPayload struct {
	EventID     int64     `json:"event_id"`
	VenueID     int64     `json:"venue_id"`
	Title       string    `json:"title"`
	EventType   string    `json:"event_type"`
	CancelledAt time.Time `json:"cancelled_at"`
	Reason      string    `json:"reason"`
}
