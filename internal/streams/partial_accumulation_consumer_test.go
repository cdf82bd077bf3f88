package streams

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"api-log-analytics/internal/aggregators/mocks"
	"api-log-analytics/internal/events"
	"api-log-analytics/internal/shared/svcerrors"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPartialAccumulationConsumer_AggregatesInPublishOrder(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	queue := NewPartitionedQueue[events.PartialAccumulationEvent](2, 8)
	mockAggregationService := mocks.NewMockAggregationService(ctrl)

	var mu sync.Mutex
	var seen []string
	done := make(chan struct{})

	mockAggregationService.EXPECT().
		Aggregate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, event *events.PartialAccumulationEvent) *svcerrors.ServiceError {
			mu.Lock()
			defer mu.Unlock()
			seen = append(seen, event.BatchID)
			if len(seen) == 3 {
				close(done)
			}
			return nil
		}).
		Times(3)

	consumer := NewPartialAccumulationConsumer(queue, mockAggregationService, zerolog.Nop())
	consumer.Start(context.Background())

	ctx := context.Background()
	for _, batchID := range []string{"b1", "b2", "b3"} {
		require.NoError(t, queue.Publish(ctx, "ds-checkout", events.PartialAccumulationEvent{DatasetID: "ds-checkout", BatchID: batchID}))
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for events")
	}
	consumer.Stop()

	assert.Equal(t, []string{"b1", "b2", "b3"}, seen)
}

func TestPartialAccumulationConsumer_KeepsRunningAfterFailureAndPanic(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	queue := NewPartitionedQueue[events.PartialAccumulationEvent](1, 8)
	mockAggregationService := mocks.NewMockAggregationService(ctrl)
	done := make(chan struct{})

	gomock.InOrder(
		mockAggregationService.EXPECT().
			Aggregate(gomock.Any(), gomock.Any()).
			Return(svcerrors.NewInternalError("AGG_9001", errors.New("store down"))),
		mockAggregationService.EXPECT().
			Aggregate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, event *events.PartialAccumulationEvent) *svcerrors.ServiceError {
				panic("boom")
			}),
		mockAggregationService.EXPECT().
			Aggregate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, event *events.PartialAccumulationEvent) *svcerrors.ServiceError {
				close(done)
				return nil
			}),
	)

	consumer := NewPartialAccumulationConsumer(queue, mockAggregationService, zerolog.Nop())
	consumer.Start(context.Background())

	ctx := context.Background()
	for _, batchID := range []string{"b1", "b2", "b3"} {
		require.NoError(t, queue.Publish(ctx, "ds-checkout", events.PartialAccumulationEvent{DatasetID: "ds-checkout", BatchID: batchID}))
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for events")
	}
	consumer.Stop()
}

func TestPartialAccumulationConsumer_StopsWhenQueueClosed(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	queue := NewPartitionedQueue[events.PartialAccumulationEvent](2, 1)
	mockAggregationService := mocks.NewMockAggregationService(ctrl)

	consumer := NewPartialAccumulationConsumer(queue, mockAggregationService, zerolog.Nop())
	consumer.Start(context.Background())
	queue.Close()

	stopped := make(chan struct{})
	go func() {
		consumer.Stop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("consumer did not stop after queue was closed")
	}
}

func TestPartialAccumulationConsumer_StopDrainsBufferedEvents(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	queue := NewPartitionedQueue[events.PartialAccumulationEvent](1, 8)
	mockAggregationService := mocks.NewMockAggregationService(ctrl)

	var seen []string
	mockAggregationService.EXPECT().
		Aggregate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, event *events.PartialAccumulationEvent) *svcerrors.ServiceError {
			seen = append(seen, event.BatchID)
			return nil
		}).
		Times(3)

	ctx := context.Background()
	for _, batchID := range []string{"b1", "b2", "b3"} {
		require.NoError(t, queue.Publish(ctx, "ds-checkout", events.PartialAccumulationEvent{DatasetID: "ds-checkout", BatchID: batchID}))
	}

	consumer := NewPartialAccumulationConsumer(queue, mockAggregationService, zerolog.Nop())
	consumer.Start(ctx)
	consumer.Stop()

	assert.Equal(t, []string{"b1", "b2", "b3"}, seen)
}
