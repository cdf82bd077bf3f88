package analyzers

import (
	"api-log-analytics/internal/shared/metrics"
)

const (
	sourceBatch   = "batch"
	sourceDataset = "dataset"
)

var (
	// metricReportsGeneratedTotal counts report requests by source ("batch" for one-shot
	// analysis, "dataset" for rolled-up datasets) and outcome.
	metricReportsGeneratedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAnalysis,
			Name:      "reports_generated_total",
		},
		[]string{"source", metrics.FieldErrorCode},
	)

	metricReportAssembleDurationSeconds = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAnalysis,
			Name:      "report_assemble_duration_seconds",
			Buckets:   metrics.DefBuckets,
		},
		[]string{},
	)
)
