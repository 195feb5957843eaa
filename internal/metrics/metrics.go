package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	queriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventhub_discovery_queries_total",
			Help: "Total number of discovery queries answered, by operation",
		},
		[]string{"operation"},
	)

	queryResults = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "eventhub_discovery_query_results",
			Help:    "Number of events matched by a discovery query before pagination",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250, 1000},
		},
		[]string{"operation"},
	)

	snapshotRefreshTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventhub_snapshot_refresh_total",
			Help: "Total number of snapshot refresh attempts, by result",
		},
		[]string{"result"},
	)

	snapshotEvents = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "eventhub_snapshot_events",
			Help: "Number of events in the current snapshot",
		},
	)

	snapshotAge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "eventhub_snapshot_fetched_timestamp_seconds",
			Help: "Unix time the current snapshot was fetched",
		},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "eventhub_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

// RecordQuery counts one discovery query and the size of its unpaginated result.
func RecordQuery(operation string, matched int) {
	queriesTotal.WithLabelValues(operation).Inc()
	queryResults.WithLabelValues(operation).Observe(float64(matched))
}

// RecordRefresh counts a snapshot refresh attempt; result is "ok", "cache" or "error".
func RecordRefresh(result string) {
	snapshotRefreshTotal.WithLabelValues(result).Inc()
}

// SetSnapshot publishes the size and fetch time of the snapshot now being served.
func SetSnapshot(events int, fetchedAt time.Time) {
	snapshotEvents.Set(float64(events))
	snapshotAge.Set(float64(fetchedAt.Unix()))
}

// RecordHTTPRequest observes one served request.
func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	httpRequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(duration.Seconds())
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
