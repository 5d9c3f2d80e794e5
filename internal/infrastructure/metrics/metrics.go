// Package metrics exposes the service's prometheus collectors. The webhook
// counter is the operational surface for notification outcomes, which never
// reach API callers.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeDelivered     = "delivered"
	OutcomeRejected      = "rejected"
	OutcomeTimedOut      = "timed_out"
	OutcomeTransport     = "transport_error"
	OutcomeMisconfigured = "misconfigured"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_http_requests_total",
		Help: "HTTP requests served, by method, route pattern and status class.",
	}, []string{"method", "route", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "catalog_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	WebhookDeliveriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_webhook_deliveries_total",
		Help: "Order Service cancellation webhook attempts, by outcome.",
	}, []string{"outcome"})
)
