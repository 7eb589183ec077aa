package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "planttracker_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "planttracker_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// Domain metrics
	PlantOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "planttracker_plant_operations_total",
			Help: "Total number of plant operations",
		},
		[]string{"operation"},
	)

	ValidationFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "planttracker_validation_failures_total",
			Help: "Total number of rejected request payloads",
		},
	)
)

// RecordPlantOperation increments the counter for a plant operation
// (list, get, create, update, delete).
func RecordPlantOperation(operation string) {
	PlantOperationsTotal.WithLabelValues(operation).Inc()
}
