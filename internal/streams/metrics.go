package streams

import (
	"api-log-analytics/internal/shared/metrics"
)

var (
	streamPartialAccumulation = "partial_accumulation"

	metricPartialAccumulationProducedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "partial_accumulation_published_total",
		},
		[]string{"stream_id"},
	)

	metricPartialAccumulationConsumedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "partial_accumulation_consumed_total",
		},
		[]string{"stream_id", metrics.FieldErrorCode},
	)

	// metricPartialAccumulationDrainedTotal counts events handled after Stop was called.
	metricPartialAccumulationDrainedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "partial_accumulation_drained_total",
		},
		[]string{"stream_id", metrics.FieldPartition},
	)
)
