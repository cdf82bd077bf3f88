package aggregators

import (
	"context"

	"api-log-analytics/internal/events"
	"api-log-analytics/internal/shared/loggers"
	"api-log-analytics/internal/shared/svcerrors"
	"api-log-analytics/internal/stores"
)

//go:generate mockgen -source=aggregation_service.go -destination=./mocks/aggregation_service_mock.go -package=mocks
type AggregationService interface {
	Aggregate(ctx context.Context, partialAccumulationEvent *events.PartialAccumulationEvent) *svcerrors.ServiceError
}

type aggregationService struct {
	accumulationRolluper AccumulationRolluper
	accumulationStore    stores.AccumulationStore
}

func NewAggregationService(accumulationRolluper AccumulationRolluper, accumulationStore stores.AccumulationStore) AggregationService {
	return &aggregationService{accumulationRolluper: accumulationRolluper, accumulationStore: accumulationStore}
}

func (s *aggregationService) Aggregate(ctx context.Context, event *events.PartialAccumulationEvent) *svcerrors.ServiceError {
	logger := loggers.Ctx(ctx)
	logger.Debug().
		Str(loggers.FieldDatasetID, event.DatasetID).
		Str(loggers.FieldBatchID, event.BatchID).
		Msg("started aggregating partial accumulation event")

	if event.Accumulation == nil {
		return errInternalAccumulationRollupFailed(errMissingAccumulation)
	}

	datasetAccumulation, err := s.accumulationStore.Get(ctx, event.DatasetID, event.Accumulation.WindowSize, event.Accumulation.SizeTiers)
	if err != nil {
		return errInternalAccumulationStoreFailed(err)
	}
	isNewDataset := datasetAccumulation.IsNew()

	err = s.accumulationRolluper.Rollup(datasetAccumulation, event)
	if err != nil {
		return errInternalAccumulationRollupFailed(err)
	}
	err = s.accumulationStore.Upsert(ctx, datasetAccumulation)
	if err != nil {
		return errInternalAccumulationStoreFailed(err)
	}

	if isNewDataset {
		metricDatasetAccumulationCreatedTotal.WithLabelValues().Inc()
	}
	metricRecordsRolledUpTotal.WithLabelValues().Add(float64(event.Accumulation.TotalRecords()))

	logger.Debug().
		Str(loggers.FieldDatasetID, event.DatasetID).
		Int64(loggers.FieldBatchCount, datasetAccumulation.BatchCount).
		Msg("rolled up partial accumulation")
	return nil
}
