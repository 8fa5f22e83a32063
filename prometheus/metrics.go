package prometheus

import (
	"time"

	"emunah-backend/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Database operation metrics
	DbOperationDuration prometheus.HistogramVec

	// Entity operation metrics
	EntityOperationsCounter prometheus.CounterVec

	// Business number issuance metrics
	NumbersIssuedCounter    prometheus.CounterVec
	NumberingRetriesCounter prometheus.CounterVec

	// Upload metrics
	UploadsCounter prometheus.Counter

	// initialized guards the helpers so they are safe before InitMetrics
	// runs (handler tests exercise handlers without metrics wiring)
	initialized bool
)

// InitMetrics initializes Prometheus metrics with configuration
func InitMetrics(config *config.Config) {
	// Use metric prefix from configuration
	prefix := config.Metrics.Prefix

	// Database operation metrics
	DbOperationDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation_type"},
	)

	// Entity operation metrics
	EntityOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_operations_total",
			Help: "Total number of entity operations",
		},
		[]string{"entity", "operation"},
	)

	// Business number issuance metrics
	NumbersIssuedCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_numbers_issued_total",
			Help: "Total number of business identifiers issued",
		},
		[]string{"kind"},
	)

	NumberingRetriesCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_numbering_retries_total",
			Help: "Total number of business identifier collision retries",
		},
		[]string{"kind"},
	)

	// Upload metrics
	UploadsCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_print_uploads_total",
			Help: "Total number of print image uploads",
		},
	)

	initialized = true
}

// TrackDBOperation returns a function that records the duration of a database operation
func TrackDBOperation(operationType string) func(startTime time.Time) {
	return func(startTime time.Time) {
		if !initialized {
			return
		}
		duration := time.Since(startTime).Seconds()
		DbOperationDuration.WithLabelValues(operationType).Observe(duration)
	}
}

// RecordEntityOperation increments the counter for operations on an entity kind
func RecordEntityOperation(entity, operation string) {
	if !initialized {
		return
	}
	EntityOperationsCounter.WithLabelValues(entity, operation).Inc()
}

// RecordNumberIssued increments the issued counter for a business number kind
func RecordNumberIssued(kind string) {
	if !initialized {
		return
	}
	NumbersIssuedCounter.WithLabelValues(kind).Inc()
}

// RecordNumberingRetry increments the collision retry counter for a business number kind
func RecordNumberingRetry(kind string) {
	if !initialized {
		return
	}
	NumberingRetriesCounter.WithLabelValues(kind).Inc()
}

// RecordUpload increments the print upload counter
func RecordUpload() {
	if !initialized {
		return
	}
	UploadsCounter.Inc()
}
