// Package metrics defines the Prometheus instrumentation for the
// roster API, registered on the default registry via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SignupTotal counts signup attempts by outcome
	// (ok, not_found, duplicate, full, invalid).
	SignupTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "activities_signup_total",
		Help: "Signup attempts partitioned by outcome.",
	}, []string{"outcome"})

	// UnregisterTotal counts unregister attempts by outcome
	// (ok, not_found, not_registered, invalid).
	UnregisterTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "activities_unregister_total",
		Help: "Unregister attempts partitioned by outcome.",
	}, []string{"outcome"})

	// RequestDuration observes HTTP request latency per route.
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "activities_http_request_duration_seconds",
		Help:    "HTTP request latency partitioned by method and route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})
)
