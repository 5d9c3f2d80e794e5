package event

import (
	"context"
	"time"

	"github.com/PhaniVeludurthi/catalog-service/internal/domain"
)

type Clock interface{ Now() time.Time }

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Event, error)
	Update(ctx context.Context, e *domain.Event) error
	Delete(ctx context.Context, id int64) error

	List(ctx context.Context) ([]*domain.Event, error)
	ListByVenue(ctx context.Context, venueID int64) ([]*domain.Event, error)
	ListByStatus(ctx context.Context, status domain.EventStatus) ([]*domain.Event, error)
	ListByCity(ctx context.Context, city string) ([]*domain.Event, error)
	Search(ctx context.Context, query string) ([]*domain.Event, error)
}

// VenueDirectory is the slice of the venue store the event service needs.
type VenueDirectory interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// CancelNotifier delivers the cancellation fact downstream. Implementations own
// their outcome handling entirely; nothing they do reaches the caller.
type CancelNotifier interface {
	NotifyCancelled(ctx context.Context, e *domain.Event)
}

type EventPublisher interface {
	PublishEvent(ctx context.Context, routingKey, messageID string, body []byte) error
}

type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, val any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}
