package event

import (
	"context"
	"time"

	"github.com/PhaniVeludurthi/catalog-service/internal/domain"
)

// UpdateCmd carries a partial update. Status is deliberately absent: the only
// legal status change is the cancellation transition, via Cancel.
type UpdateCmd struct {
	EventID   int64
	Title     *string
	EventType *string
	EventDate *time.Time
	BasePrice *float64
}

func (s *Service) Update(ctx context.Context, cmd UpdateCmd) (*domain.Event, error) {
	ev, err := s.repo.GetByID(ctx, cmd.EventID)
	if err != nil {
		return nil, err
	}

	if err := ev.ApplyUpdate(cmd.Title, cmd.EventType, cmd.EventDate, cmd.BasePrice); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, ev); err != nil {
		return nil, domain.ErrPersistence("event update failed", err)
	}

	s.invalidate(ctx, ev.EventID)
	return ev, nil
}

func (s *Service) Delete(ctx context.Context, eventID int64) error {
	if err := s.repo.Delete(ctx, eventID); err != nil {
		return err
	}
	s.invalidate(ctx, eventID)
	return nil
}
