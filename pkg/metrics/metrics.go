package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OperationBulkCreate = "bulk_create"
	OperationBulkStatus = "bulk_status"
)

var (
	BulkRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cctv_bulk_requests_total",
			Help: "Total number of bulk requests by classification",
		},
		[]string{"operation", "result"}, // result: full_success, partial_success, total_failure, error
	)

	BulkRecordsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cctv_bulk_records_total",
			Help: "Total number of bulk records by outcome bucket",
		},
		[]string{"operation", "outcome"},
	)

	BulkDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cctv_bulk_duration_seconds",
			Help:    "Duration of bulk requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	StatusTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cctv_status_transitions_total",
			Help: "Total number of camera status changes by new status",
		},
		[]string{"status"},
	)

	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cctv_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cctv_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)
)

// RecordBulk records one bulk request. outcomes maps a bucket name to the
// number of records that landed in it; empty buckets are skipped.
func RecordBulk(operation, result string, duration time.Duration, outcomes map[string]int) {
	BulkRequestsTotal.WithLabelValues(operation, result).Inc()
	BulkDuration.WithLabelValues(operation).Observe(duration.Seconds())
	for outcome, n := range outcomes {
		if n > 0 {
			BulkRecordsTotal.WithLabelValues(operation, outcome).Add(float64(n))
		}
	}
}

func RecordStatusTransition(status string) {
	StatusTransitionsTotal.WithLabelValues(status).Inc()
}

func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}
