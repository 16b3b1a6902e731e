// Package observability defines and registers all custom Prometheus metrics
// for the fittrack API. It is the single source of truth for metric names,
// labels, and help strings.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "fittrack"

// ── Workout metrics ───────────────────────────────────────────────────────────

// WorkoutsCreatedTotal counts workouts successfully logged.
var WorkoutsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "workouts_created_total",
		Help:      "Total number of workouts successfully created.",
	},
)

// WorkoutsDeletedTotal counts workouts successfully deleted.
var WorkoutsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "workouts_deleted_total",
		Help:      "Total number of workouts successfully deleted.",
	},
)

// ── Upstream metrics ──────────────────────────────────────────────────────────

// UpstreamRequestsTotal counts outbound calls per upstream.
// Labels:
//   - upstream: "store", "auth", or "generator"
//   - outcome: "success" or "error"
var UpstreamRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_requests_total",
		Help:      "Total number of outbound upstream HTTP calls, by outcome.",
	},
	[]string{"upstream", "outcome"},
)

// UpstreamRequestDuration measures outbound call latency per upstream.
var UpstreamRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_request_duration_seconds",
		Help:      "Duration of outbound upstream HTTP calls.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"upstream"},
)

// ── Analysis metrics ──────────────────────────────────────────────────────────

// AnalysesTotal counts AI analysis requests.
// Label:
//   - outcome: "generated", "no_data", or "error"
var AnalysesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "analyses_total",
		Help:      "Total number of AI analysis requests, by outcome.",
	},
	[]string{"outcome"},
)

// ObserveUpstream records one outbound call against the upstream metrics.
func ObserveUpstream(upstream string, start time.Time, err error) {
	UpstreamRequestDuration.WithLabelValues(upstream).Observe(time.Since(start).Seconds())
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	UpstreamRequestsTotal.WithLabelValues(upstream, outcome).Inc()
}
