package http

import (
	"api-log-analytics/internal/shared/metrics"
)

const (
	labelMethod = "method"
	labelRoute  = "route"
	labelStatus = "status"
)

var (
	metricRequestsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubHTTP,
			Name:      "requests_total",
		},
		[]string{labelMethod, labelRoute, labelStatus, metrics.FieldErrorCode},
	)

	metricRequestDurationSeconds = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubHTTP,
			Name:      "request_duration_seconds",
			Buckets:   metrics.DefBuckets,
		},
		[]string{labelMethod, labelRoute, labelStatus},
	)

	// Report bodies grow with the number of endpoints and users in a dataset.
	metricResponseSizeBytes = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubHTTP,
			Name:      "response_size_bytes",
			Buckets:   metrics.SizeBuckets,
		},
		[]string{labelMethod, labelRoute},
	)

	metricInFlightRequests = metrics.NewGauge(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubHTTP,
			Name:      "in_flight_requests",
		},
	)
)
