package streams

import (
	"context"
	"time"

	"api-log-analytics/internal/events"
	"api-log-analytics/internal/models"
)

// PartialAccumulationProducer wraps the accumulation of one ingested batch into a
// PartialAccumulationEvent and publishes it to a partitioned queue.
//
// Partition Strategy for Race Condition Prevention, and achieving parallelism:
//
// The partition key is the dataset ID. Events of the same dataset are routed to the same
// partition, and the consumer processes each partition with a single worker goroutine, so:
//   - Batches of one dataset are rolled up one at a time, in publish order
//   - No concurrent read-merge-write cycles run on the same dataset accumulation
//   - No locking is needed around the accumulation store
//   - Different datasets are rolled up in parallel across partitions
//
//go:generate mockgen -source=partial_accumulation_producer.go -destination=./mocks/partial_accumulation_producer_mock.go -package=mocks
type PartialAccumulationProducer interface {
	Produce(ctx context.Context, datasetID string, batchID string, accumulation *models.Accumulation) error
}

type partialAccumulationProducer struct {
	queue *PartitionedQueue[events.PartialAccumulationEvent]
}

func NewPartialAccumulationProducer(queue *PartitionedQueue[events.PartialAccumulationEvent]) PartialAccumulationProducer {
	return &partialAccumulationProducer{
		queue: queue,
	}
}

func (producer *partialAccumulationProducer) Produce(ctx context.Context, datasetID string, batchID string, accumulation *models.Accumulation) error {
	event := events.PartialAccumulationEvent{
		DatasetID:    datasetID,
		BatchID:      batchID,
		ProducedAt:   time.Now().UTC(),
		Accumulation: accumulation,
	}

	// Partition by dataset (single-writer guarantee).
	if err := producer.queue.Publish(ctx, datasetID, event); err != nil {
		return err
	}
	metricPartialAccumulationProducedTotal.WithLabelValues(streamPartialAccumulation).Inc()
	return nil
}
