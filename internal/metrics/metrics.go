// Package metrics declares the Prometheus collectors of the service.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace prefixes every metric name.
const Namespace = "carbon_compass"

// Estimate outcomes.
const (
	OutcomeSuccess      = "success"
	OutcomeInvalidInput = "invalid_input"
	OutcomeError        = "error"
)

var (
	// HTTP metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests handled",
		},
		[]string{"route", "method", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
		},
		[]string{"route", "method"},
	)

	RateLimitExceeded = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "rate_limit_exceeded_total",
			Help:      "Total number of requests rejected by the rate limiter",
		},
	)

	// Estimator metrics
	EstimatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "estimates_total",
			Help:      "Total number of footprint estimates by outcome",
		},
		[]string{"outcome"},
	)

	EstimatedKg = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "estimated_kg_co2e",
			Help:      "Estimated monthly kg CO2e per category",
			Buckets:   []float64{0, 10, 25, 50, 100, 200, 400, 800, 1600},
		},
		[]string{"category"},
	)

	// Gamification
	PointsCreditedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "points_credited_total",
			Help:      "Total number of points credited to users",
		},
	)
)

// RecordHTTPRequest records one served request.
func RecordHTTPRequest(route, method string, status int, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(route, method).Observe(duration.Seconds())
}

// RecordEstimate counts an estimate outcome.
func RecordEstimate(outcome string) {
	EstimatesTotal.WithLabelValues(outcome).Inc()
}

// ObserveBreakdown records the per-category values of a successful estimate.
func ObserveBreakdown(transport, energy, diet, total float64) {
	EstimatedKg.WithLabelValues("transport").Observe(transport)
	EstimatedKg.WithLabelValues("energy").Observe(energy)
	EstimatedKg.WithLabelValues("diet").Observe(diet)
	EstimatedKg.WithLabelValues("total").Observe(total)
}

// RecordPointsCredited adds credited points.
func RecordPointsCredited(points int64) {
	if points > 0 {
		PointsCreditedTotal.Add(float64(points))
	}
}
