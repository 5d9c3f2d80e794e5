package event

import (
	"context"

	"github.com/PhaniVeludurthi/catalog-service/internal/domain"
)

type NoopNotifier struct{}

func (NoopNotifier) NotifyCancelled(ctx context.Context, e *domain.Event) {}

type NoopPublisher struct{}

func (NoopPublisher) PublishEvent(ctx context.Context, routingKey, messageID string, body []byte) error {
	return nil
}
