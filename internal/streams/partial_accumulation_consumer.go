package streams

import (
	"context"
	"fmt"
	"runtime/debug"
	"strconv"
	"sync"

	"api-log-analytics/internal/aggregators"
	"api-log-analytics/internal/events"
	"api-log-analytics/internal/shared/loggers"
	"api-log-analytics/internal/shared/metrics"
	"api-log-analytics/internal/shared/svcerrors"
	"api-log-analytics/internal/shared/ulid"
)

//go:generate mockgen -source=partial_accumulation_consumer.go -destination=./mocks/partial_accumulation_consumer_mock.go -package=mocks
type PartialAccumulationConsumer interface {
	Start(ctx context.Context)
	Stop()
}

type partialAccumulationConsumer struct {
	queue              *PartitionedQueue[events.PartialAccumulationEvent]
	aggregationService aggregators.AggregationService

	wg sync.WaitGroup

	stopOnce sync.Once
	stopCh   chan struct{}

	logger loggers.Logger
}

func NewPartialAccumulationConsumer(queue *PartitionedQueue[events.PartialAccumulationEvent], aggregationService aggregators.AggregationService, logger loggers.Logger) PartialAccumulationConsumer {
	return &partialAccumulationConsumer{
		queue:              queue,
		aggregationService: aggregationService,
		stopCh:             make(chan struct{}),
		logger:             logger,
	}
}

// Start spawns 1 worker goroutine per partition.
// Each partition is a single-writer lane for the datasets routed to it by the producer.
func (consumer *partialAccumulationConsumer) Start(ctx context.Context) {
	for partitionIndex := 0; partitionIndex < consumer.queue.PartitionCount(); partitionIndex++ {
		partitionIndex := partitionIndex
		ch := consumer.queue.partitions[partitionIndex]
		consumer.wg.Add(1)
		go func() {
			defer consumer.wg.Done()
			consumer.runPartitionWorker(ctx, partitionIndex, ch)
		}()
	}
}

// Stop makes workers handle what is already buffered, then waits for them to exit.
// Nothing may be published once Stop is called.
func (consumer *partialAccumulationConsumer) Stop() {
	consumer.stopOnce.Do(func() { close(consumer.stopCh) })
	consumer.wg.Wait()
}

func (consumer *partialAccumulationConsumer) runPartitionWorker(ctx context.Context, partitionIndex int, ch <-chan events.PartialAccumulationEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-consumer.stopCh:
			consumer.drain(ctx, partitionIndex, ch)
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			consumer.handle(ctx, partitionIndex, &event)
		}
	}
}

func (consumer *partialAccumulationConsumer) drain(ctx context.Context, partitionIndex int, ch <-chan events.PartialAccumulationEvent) {
	drained := metricPartialAccumulationDrainedTotal.WithLabelValues(streamPartialAccumulation, strconv.Itoa(partitionIndex))
	for {
		select {
		case event, ok := <-ch:
			if !ok {
				return
			}
			consumer.handle(ctx, partitionIndex, &event)
			drained.Inc()
		default:
			return
		}
	}
}

func (consumer *partialAccumulationConsumer) handle(ctx context.Context, partitionIndex int, event *events.PartialAccumulationEvent) {
	ctx = consumer.logger.With().
		Str(loggers.FieldPartitionId, strconv.Itoa(partitionIndex)).
		Str(loggers.FieldRequestID, ulid.NewULID()).
		Str(loggers.FieldDatasetID, event.DatasetID).
		Str(loggers.FieldBatchID, event.BatchID).
		Logger().WithContext(ctx)

	// Handle panic recovery to prevent worker goroutine from crashing
	defer func() {
		if r := recover(); r != nil {
			loggers.Ctx(ctx).Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Msg("consumer panic recovered")

			var panicErr error
			if err, ok := r.(error); ok {
				panicErr = err
			} else {
				panicErr = fmt.Errorf("%v", r)
			}
			svcErr := svcerrors.NewInternalErrorPanic(panicErr)
			metricPartialAccumulationConsumedTotal.WithLabelValues(streamPartialAccumulation, svcErr.Code).Inc()
		}
	}()

	svcError := consumer.aggregationService.Aggregate(ctx, event)
	if svcError != nil {
		loggers.Ctx(ctx).Error().
			Err(svcError.Cause).
			Str(loggers.FieldErrorCode, svcError.Code).
			Msg("failed to aggregate partial accumulation")
		metricPartialAccumulationConsumedTotal.WithLabelValues(streamPartialAccumulation, svcError.Code).Inc()
		return
	}
	metricPartialAccumulationConsumedTotal.WithLabelValues(streamPartialAccumulation, metrics.ValueNoError).Inc()
}
