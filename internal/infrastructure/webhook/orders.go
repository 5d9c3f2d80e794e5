// Package webhook delivers cancellation notices to the Order Service.
// Delivery is at-most-once: one POST, a hard deadline, no retry. Every outcome
// is logged and counted; none of them surfaces to the caller that cancelled
// the event.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"github.com/PhaniVeludurthi/catalog-service/internal/correlation"
	"github.com/PhaniVeludurthi/catalog-service/internal/domain"
	"github.com/PhaniVeludurthi/catalog-service/internal/infrastructure/metrics"
)

const (
	eventCancelledPath = "/api/webhooks/event-cancelled"

	DefaultTimeout = 10 * time.Second
)

// eventCancelledBody is the wire contract with the Order Service.
type eventCancelledBody struct {
	EventID     int64     `json:"eventId"`
	EventTitle  string    `json:"eventTitle"`
	CancelledAt time.Time `json:"cancelledAt"`
	Reason      string    `json:"reason"`
}

type OrderServiceClient struct {
	baseURL string
	client  *http.Client
	timeout time.Duration
}

// NewOrderServiceClient builds a dispatcher for the given Order Service base
// URL. The underlying transport is shared across dispatches; the correlation
// header is set on each request, never on the client, so concurrent dispatches
// cannot leak each other's ids.
func NewOrderServiceClient(baseURL string, timeout time.Duration) *OrderServiceClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &OrderServiceClient{
		baseURL: baseURL,
		client:  &http.Client{},
		timeout: timeout,
	}
}

// NotifyCancelled performs the single delivery attempt. The event must already
// be persisted as CANCELLED; CancelledAt is required by the wire contract.
func (c *OrderServiceClient) NotifyCancelled(ctx context.Context, ev *domain.Event) {
	log := zlog.With().
		Int64("event_id", ev.EventID).
		Str("correlation_id", correlation.FromContext(ctx)).
		Logger()

	if c.baseURL == "" {
		c.report(log, metrics.OutcomeMisconfigured, zerolog.ErrorLevel, "order service url not configured, dropping notification", nil, 0)
		return
	}

	cancelledAt := time.Time{}
	if ev.CancelledAt != nil {
		cancelledAt = ev.CancelledAt.UTC()
	}
	body, err := json.Marshal(eventCancelledBody{
		EventID:     ev.EventID,
		EventTitle:  ev.Title,
		CancelledAt: cancelledAt,
		Reason:      domain.ReasonCancelledByOrganizer,
	})
	if err != nil {
		c.report(log, metrics.OutcomeTransport, zerolog.ErrorLevel, "webhook payload marshal failed", err, 0)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+eventCancelledPath, bytes.NewReader(body))
	if err != nil {
		c.report(log, metrics.OutcomeTransport, zerolog.ErrorLevel, "webhook request build failed", err, 0)
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(correlation.Header, correlation.FromContext(ctx))

	resp, err := c.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			c.report(log, metrics.OutcomeTimedOut, zerolog.ErrorLevel, "order service notification timed out", err, 0)
			return
		}
		c.report(log, metrics.OutcomeTransport, zerolog.ErrorLevel, "order service notification failed", err, 0)
		return
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		c.report(log, metrics.OutcomeDelivered, zerolog.InfoLevel, "order service notified", nil, resp.StatusCode)
		return
	}
	c.report(log, metrics.OutcomeRejected, zerolog.WarnLevel, "order service rejected notification", nil, resp.StatusCode)
}

func (c *OrderServiceClient) report(log zerolog.Logger, outcome string, level zerolog.Level, msg string, err error, status int) {
	metrics.WebhookDeliveriesTotal.WithLabelValues(outcome).Inc()

	e := log.WithLevel(level).Str("outcome", outcome)
	if err != nil {
		e = e.Err(err)
	}
	if status != 0 {
		e = e.Int("status_code", status)
	}
	e.Msg(msg)
}
