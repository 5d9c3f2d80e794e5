// Package correlation carries the per-request correlation id through context.
// The id links logs and outbound calls across services; it is seeded by HTTP
// middleware and read again by the webhook dispatcher.
package correlation

import (
	"context"
	"strings"
)

const Header = "X-Correlation-ID"

type ctxKey struct{}

// WithID returns a context carrying the given correlation id.
// Blank ids are ignored so downstream readers can rely on non-empty values.
func WithID(ctx context.Context, id string) context.Context {
	id = strings.TrimSpace(id)
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext returns the correlation id, or "" if none was set.
func FromContext(ctx context.Context) string {
	if v, ok := ctx.Value(ctxKey{}).(string); ok {
		return v
	}
	return ""
}
