package rabbitmq

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublisher_ArgumentValidation(t *testing.T) {
	p := &Publisher{exchange: DefaultExchange}

	t.Run("missing_routing_key", func(t *testing.T) {
		err := p.PublishEvent(context.Background(), "", "msg-1", []byte("{}"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "missing routingKey")
	})

	t.Run("missing_message_id", func(t *testing.T) {
		err := p.PublishEvent(context.Background(), "event.cancelled", "  ", []byte("{}"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "missing messageID")
	})

	t.Run("channel_not_ready", func(t *testing.T) {
		err := p.PublishEvent(context.Background(), "event.cancelled", "msg-1", []byte("{}"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not ready")
	})
}
