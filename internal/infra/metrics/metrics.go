// Package metrics exports pipeline and upstream request counters to Prometheus.
package metrics

import (
	"net/http"

	"poolscout/internal/domain/entity"
	"poolscout/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "poolscout_runs_total",
			Help: "Total pipeline runs by outcome",
		},
		[]string{"pipeline", "status"},
	)

	RunDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "poolscout_run_duration_seconds",
			Help:    "Pipeline run duration in seconds",
			Buckets: []float64{1, 5, 15, 60, 300, 900, 1800, 3600, 7200},
		},
		[]string{"pipeline"},
	)

	RowsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "poolscout_rows_total",
			Help: "Rows entering and leaving pipeline runs",
		},
		[]string{"pipeline", "direction"},
	)

	RowsDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "poolscout_rows_dropped_total",
			Help: "Rows dropped by pipeline and reason",
		},
		[]string{"pipeline", "reason"},
	)

	RowsCorrected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "poolscout_rows_corrected_total",
			Help: "Rows whose address was corrected by geocoding",
		},
		[]string{"pipeline"},
	)

	Matches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "poolscout_matches_total",
			Help: "Listing to property matches by strategy",
		},
		[]string{"pipeline", "strategy"},
	)

	GeocodeRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "poolscout_geocode_requests_total",
			Help: "Geocoding provider calls by outcome",
		},
		[]string{"provider", "operation", "status"},
	)

	OverpassRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "poolscout_overpass_requests_total",
			Help: "Overpass API calls by outcome",
		},
		[]string{"status"},
	)

	ListingSourceRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "poolscout_listing_source_requests_total",
			Help: "Listing search provider calls by outcome",
		},
		[]string{"status"},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "poolscout_http_requests_total",
			Help: "Worker HTTP requests",
		},
		[]string{"method", "route", "status"},
	)
)

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Request outcome labels shared by the upstream clients.
const (
	StatusOK        = "ok"
	StatusNoResult  = "no_result"
	StatusThrottled = "throttled"
	StatusSplit     = "split"
	StatusError     = "error"
)

// runObserver mirrors run summaries into the counters above.
type runObserver struct{}

// NewRunObserver creates the Prometheus run observer.
func NewRunObserver() service.RunObserver {
	return runObserver{}
}

// ObserveRun records the counts of a finished run.
func (runObserver) ObserveRun(summary *entity.RunSummary) {
	if summary == nil {
		return
	}

	pipeline := string(summary.Pipeline)
	status := "succeeded"
	if summary.Failed {
		status = "failed"
	}

	RunsTotal.WithLabelValues(pipeline, status).Inc()
	if !summary.FinishedAt.IsZero() && summary.FinishedAt.After(summary.StartedAt) {
		RunDuration.WithLabelValues(pipeline).Observe(summary.FinishedAt.Sub(summary.StartedAt).Seconds())
	}

	RowsTotal.WithLabelValues(pipeline, "in").Add(float64(summary.RowsIn))
	RowsTotal.WithLabelValues(pipeline, "out").Add(float64(summary.RowsOut))
	RowsCorrected.WithLabelValues(pipeline).Add(float64(summary.Corrected))

	for reason, n := range summary.Dropped {
		RowsDropped.WithLabelValues(pipeline, reason).Add(float64(n))
	}
	for strategy, n := range summary.Matches {
		Matches.WithLabelValues(pipeline, strategy).Add(float64(n))
	}
}
