package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DispatchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_dispatch_total",
			Help: "Total number of dispatched commands by intent",
		},
		[]string{"intent"},
	)

	DispatchFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_dispatch_failures_total",
			Help: "Dispatches converted to an Error: message at the boundary",
		},
		[]string{"intent", "kind"},
	)

	DispatchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "assistant_dispatch_duration_seconds",
			Help: "Dispatch duration in seconds",
		},
		[]string{"intent"},
	)

	RequestCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "assistant_http_request_duration_seconds",
			Help: "HTTP request duration in seconds",
		},
		[]string{"method", "endpoint"},
	)

	RateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "assistant_http_rate_limited_total",
			Help: "Requests rejected by the per-client rate limiter",
		},
	)
)

// Failure kinds for DispatchFailures.
const (
	FailureError = "error"
	FailurePanic = "panic"
)
