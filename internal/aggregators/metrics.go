package aggregators

import (
	"api-log-analytics/internal/shared/metrics"
)

// metricDatasetAccumulationCreatedTotal counts datasets whose first batch was rolled up.
//
// Example scenario:
//   - Batch "b1" of dataset "ds-checkout" is rolled up, no accumulation existed yet
//   - A new dataset accumulation is created and the metric is incremented
//   - Batch "b2" of the same dataset updates the existing accumulation and does NOT increment it
//
// metricRecordsRolledUpTotal counts the raw records (valid and invalid) merged into dataset accumulations.
var (
	metricDatasetAccumulationCreatedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "dataset_accumulation_created_total",
		},
		[]string{},
	)

	metricRecordsRolledUpTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "records_rolled_up_total",
		},
		[]string{},
	)
)
