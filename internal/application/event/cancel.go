package event

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	zlog "github.com/rs/zerolog/log"

	"github.com/PhaniVeludurthi/catalog-service/internal/correlation"
	"github.com/PhaniVeludurthi/catalog-service/internal/domain"
)

// Cancel moves an event to CANCELLED and persists it. Once the write has
// committed, the cancellation fact is handed off asynchronously: one webhook
// attempt plus a broker publish, both best-effort. Their outcome never reaches
// this caller; the durable state transition is the only correctness guarantee.
func (s *Service) Cancel(ctx context.Context, eventID int64) (*domain.Event, error) {
	ev, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	if err := ev.Cancel(now); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, ev); err != nil {
		return nil, domain.ErrPersistence("event update failed", err)
	}

	zlog.Info().
		Int64("event_id", ev.EventID).
		Str("correlation_id", correlation.FromContext(ctx)).
		Msg("event cancelled")

	s.invalidate(ctx, ev.EventID)

	// Detach from the request's cancellation but keep its values
	// (correlation id) for the outbound hop.
	go s.fanOutCancelled(context.WithoutCancel(ctx), ev)

	return ev, nil
}

func (s *Service) fanOutCancelled(ctx context.Context, ev *domain.Event) {
	s.notifier.NotifyCancelled(ctx, ev)

	env := DomainEventEnvelope[EventCancelledPayload]{
		Version:       EventVersion,
		Producer:      EventProducer,
		MessageID:     uuid.NewString(),
		CorrelationID: correlation.FromContext(ctx),
		OccurredAt:    s.clock.Now().UTC(),
		Payload: EventCancelledPayload{
			EventID:     ev.EventID,
			VenueID:     ev.VenueID,
			Title:       ev.Title,
			EventType:   ev.EventType,
			CancelledAt: *ev.CancelledAt,
			Reason:      domain.ReasonCancelledByOrganizer,
		},
	}

	body, err := json.Marshal(env)
	if err != nil {
		zlog.Error().Err(err).Int64("event_id", ev.EventID).Msg("envelope marshal failed")
		return
	}

	if err := s.pub.PublishEvent(ctx, RoutingKeyEventCancelled, env.MessageID, body); err != nil {
		zlog.Warn().Err(err).Int64("event_id", ev.EventID).Msg("broker publish failed")
	}
}

func (s *Service) invalidate(ctx context.Context, eventID int64) {
	if s.cache == nil {
		return
	}
	key := cacheKeyEventDetails(eventID)
	if err := s.cache.Delete(ctx, key); err != nil {
		zlog.Warn().Err(err).Str("key", key).Msg("cache invalidate failed")
	}
}
