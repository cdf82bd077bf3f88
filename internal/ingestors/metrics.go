package ingestors

import (
	"api-log-analytics/internal/shared/metrics"
)

var (
	metricBatchIngestedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "batch_ingested_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	// metricRecordsNormalizedTotal counts raw records by normalization outcome:
	// "ok" for accepted records, otherwise the rejection reason (e.g. "missing_field").
	metricRecordsNormalizedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "records_normalized_total",
		},
		[]string{metrics.FieldResult},
	)

	metricSummarizeDurationSeconds = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "summarize_duration_seconds",
			Buckets:   metrics.DefBuckets,
		},
		[]string{},
	)
)
