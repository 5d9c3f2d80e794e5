package event

import (
	"context"
	"strings"

	zlog "github.com/rs/zerolog/log"

	"github.com/PhaniVeludurthi/catalog-service/internal/domain"
)

func (s *Service) Get(ctx context.Context, eventID int64) (*domain.Event, error) {
	key := cacheKeyEventDetails(eventID)

	if s.cache != nil {
		var cached domain.Event
		ok, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			zlog.Warn().Err(err).Str("key", key).Msg("cache read failed")
		} else if ok {
			return &cached, nil
		}
	}

	ev, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, ev, s.ttlDetails); err != nil {
			zlog.Warn().Err(err).Str("key", key).Msg("cache write failed")
		}
	}
	return ev, nil
}

func (s *Service) List(ctx context.Context) ([]*domain.Event, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByVenue(ctx context.Context, venueID int64) ([]*domain.Event, error) {
	return s.repo.ListByVenue(ctx, venueID)
}

func (s *Service) ListByStatus(ctx context.Context, status string) ([]*domain.Event, error) {
	st := domain.EventStatus(strings.ToUpper(strings.TrimSpace(status)))
	if !st.Valid() {
		return nil, domain.ErrValidationMeta("invalid status", map[string]string{
			"status": "must be one of: ACTIVE, CANCELLED",
		})
	}
	return s.repo.ListByStatus(ctx, st)
}

func (s *Service) ListByCity(ctx context.Context, city string) ([]*domain.Event, error) {
	return s.repo.ListByCity(ctx, city)
}

func (s *Service) Search(ctx context.Context, query string) ([]*domain.Event, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.ErrValidation("search query cannot be empty")
	}
	return s.repo.Search(ctx, query)
}
