package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Dataset query latency (seconds)
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dataset_query_duration_seconds",
			Help:    "Dataset repository operation duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12), // 0.5ms to ~1s
		},
		[]string{"operation", "status"},
	)

	// HTTP request latency (seconds)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "route", "status"},
	)

	// Mutations recorded, by kind
	MutationCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dataset_mutations_total",
			Help: "Total number of audited dataset mutations",
		},
		[]string{"kind"}, // kind: hide_by_body, hide_by_sender, delete_hidden
	)

	// Emails affected by mutations, by kind
	MutatedEmailCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dataset_mutated_emails_total",
			Help: "Total number of emails hidden or deleted by audited mutations",
		},
		[]string{"kind"},
	)
)

// RecordDBQuery records the duration of a repository operation.
func RecordDBQuery(operation string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	DBQueryDuration.WithLabelValues(operation, status).Observe(time.Since(start).Seconds())
}

// RecordHTTPRequestDuration records HTTP request latency.
func RecordHTTPRequestDuration(method, route, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, route, status).Observe(duration.Seconds())
}

// RecordMutation counts a committed mutation and the emails it touched.
func RecordMutation(kind string, affected int) {
	MutationCount.WithLabelValues(kind).Inc()
	MutatedEmailCount.WithLabelValues(kind).Add(float64(affected))
}
