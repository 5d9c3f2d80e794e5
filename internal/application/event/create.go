package event

import (
	"context"
	"fmt"
	"time"

	"github.com/PhaniVeludurthi/catalog-service/internal/domain"
)

type CreateCmd struct {
	VenueID   int64
	Title     string
	EventType string
	EventDate time.Time
	BasePrice float64
	Status    string
}

func (s *Service) Create(ctx context.Context, cmd CreateCmd) (*domain.Event, error) {
	ev, err := domain.NewEvent(cmd.VenueID, cmd.Title, cmd.EventType, cmd.EventDate, cmd.BasePrice, domain.EventStatus(cmd.Status))
	if err != nil {
		return nil, err
	}

	// An event created directly as CANCELLED still needs its timestamp:
	// cancelled_at is set iff the status is CANCELLED.
	if ev.Status == domain.StatusCancelled {
		t := s.clock.Now().UTC()
		ev.CancelledAt = &t
	}

	ok, err := s.venues.Exists(ctx, cmd.VenueID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrValidationMeta("venue does not exist", map[string]string{
			"venue_id": fmt.Sprintf("%d", cmd.VenueID),
		})
	}

	id, err := s.repo.Create(ctx, ev)
	if err != nil {
		return nil, domain.ErrPersistence("event create failed", err)
	}

	// Re-read to pick up the joined venue columns.
	return s.repo.GetByID(ctx, id)
}
