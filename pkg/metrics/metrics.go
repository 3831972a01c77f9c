// Package metrics holds the Prometheus collectors exposed on /metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "poskeeper",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "poskeeper",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		},
		[]string{"method", "route"},
	)

	orderPlacements = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "poskeeper",
			Subsystem: "orders",
			Name:      "placements_total",
			Help:      "Order placements by reconciliation outcome.",
		},
		[]string{"outcome"},
	)

	eventsPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "poskeeper",
			Subsystem: "events",
			Name:      "published_total",
			Help:      "Order events handed to the notification sinks.",
		},
		[]string{"event"},
	)
)

func init() {
	Registry.MustRegister(
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		httpRequests, httpDuration, orderPlacements, eventsPublished,
	)
}

func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

func ObserveHTTP(method, route string, status int, d time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// Order placement outcomes.
const (
	OutcomeCreated        = "created"
	OutcomeAppended       = "appended"
	OutcomeTableMismatch  = "table_mismatch"
	OutcomeTableOccupied  = "table_occupied"
	OutcomeMissingOrder   = "inconsistent_state"
	OutcomeInvalid        = "invalid"
	OutcomeInternalFailed = "error"
)

func RecordPlacement(outcome string) {
	orderPlacements.WithLabelValues(outcome).Inc()
}

func RecordEvent(event string) {
	eventsPublished.WithLabelValues(event).Inc()
}
