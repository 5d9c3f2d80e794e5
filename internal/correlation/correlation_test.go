package correlation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithID(t *testing.T) {
	t.Run("roundtrip", func(t *testing.T) {
		ctx := WithID(context.Background(), "abc-123")
		assert.Equal(t, "abc-123", FromContext(ctx))
	})

	t.Run("blank_id_is_ignored", func(t *testing.T) {
		ctx := WithID(context.Background(), "   ")
		assert.Equal(t, "", FromContext(ctx))
	})

	t.Run("survives_without_cancel", func(t *testing.T) {
		ctx, cancel := context.WithCancel(WithID(context.Background(), "abc-123"))
		detached := context.WithoutCancel(ctx)
		cancel()
		assert.Equal(t, "abc-123", FromContext(detached))
	})
}
