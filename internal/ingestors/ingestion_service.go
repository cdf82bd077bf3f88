package ingestors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"api-log-analytics/internal/models"
	"api-log-analytics/internal/shared/loggers"
	"api-log-analytics/internal/shared/metrics"
	"api-log-analytics/internal/shared/svcerrors"
	"api-log-analytics/internal/shared/ulid"
	"api-log-analytics/internal/shared/validators"
	"api-log-analytics/internal/stores"
	"api-log-analytics/internal/streams"
)

const (
	FormatJSON = "json"
)

// IngestResult represents the result of a batch ingestion operation.
type IngestResult struct {
	BatchID      string `json:"batch_id"`
	ValidCount   int64  `json:"valid_records"`
	InvalidCount int64  `json:"invalid_records"`
}

type ingestRequest struct {
	DatasetID string `validate:"required,resource_id"`
	BatchID   string `validate:"required,resource_id"`
}

//go:generate mockgen -source=ingestion_service.go -destination=./mocks/ingestion_service_mock.go -package=mocks
type IngestionService interface {
	// IngestBatch stores a JSON array of raw records for datasetID, summarizes it and publishes
	// the partial accumulation for rollup. A repeated idempotency key is rejected as a conflict.
	IngestBatch(ctx context.Context, datasetID string, idempotencyKey string, format string, r io.Reader) (*IngestResult, error)
}

type ingestionService struct {
	batchDecoder                BatchDecoder
	batchSummarizer             BatchSummarizer
	batchStore                  stores.LogBatchStore
	partialAccumulationProducer streams.PartialAccumulationProducer
	validate                    *validators.Validate
}

func NewIngestionService(batchDecoder BatchDecoder, batchSummarizer BatchSummarizer, batchStore stores.LogBatchStore, partialAccumulationProducer streams.PartialAccumulationProducer) IngestionService {
	return &ingestionService{
		batchDecoder:                batchDecoder,
		batchSummarizer:             batchSummarizer,
		batchStore:                  batchStore,
		partialAccumulationProducer: partialAccumulationProducer,
		validate:                    validators.New(),
	}
}

func (s *ingestionService) IngestBatch(ctx context.Context, datasetID string, idempotencyKey string, format string, r io.Reader) (*IngestResult, error) {
	logger := loggers.Ctx(ctx)
	logger.Debug().Msgf("started ingesting batch with dataset ID: %s, idempotency key: %s, format: %s", datasetID, idempotencyKey, format)

	receivedAt := time.Now().UTC()
	batchID := strings.TrimSpace(idempotencyKey)
	if batchID == "" {
		batchID = ulid.NewULIDAt(receivedAt)
	}

	records, err := s.validateLogBatch(datasetID, batchID, format, r)
	if err != nil {
		return nil, s.fail(err)
	}

	logBatch := &models.LogBatch{
		BatchID:    batchID,
		DatasetID:  datasetID,
		ReceivedAt: receivedAt,
		Records:    records,
	}

	// Store the raw batch; the store rejects a batch ID it has already seen
	err = s.batchStore.Put(ctx, logBatch)
	if err != nil {
		if errors.Is(err, stores.ErrLogBatchAlreadyExist) {
			return nil, s.fail(errLogBatchAlreadyProcessed(err))
		}
		return nil, s.fail(errInternalLogBatchStoreFailed(err))
	}

	accumulation, err := s.batchSummarizer.Summarize(ctx, records)
	if err != nil {
		return nil, s.fail(errInternalSummarizeFailed(err))
	}

	err = s.partialAccumulationProducer.Produce(ctx, datasetID, batchID, accumulation)
	if err != nil {
		return nil, s.fail(errInternalPartialAccumulationProducerFailed(err))
	}

	logger.Info().
		Str(loggers.FieldDatasetID, datasetID).
		Str(loggers.FieldBatchID, batchID).
		Int64(loggers.FieldValidRecords, accumulation.Global.ValidCount).
		Int64(loggers.FieldInvalidRecords, accumulation.Global.InvalidCount).
		Msg("batch ingested")
	metricBatchIngestedTotal.WithLabelValues(metrics.ValueNoError).Inc()

	return &IngestResult{
		BatchID:      batchID,
		ValidCount:   accumulation.Global.ValidCount,
		InvalidCount: accumulation.Global.InvalidCount,
	}, nil
}

func (s *ingestionService) validateLogBatch(datasetID, batchID, format string, r io.Reader) ([]models.RawRecord, error) {
	if err := s.validate.Struct(ingestRequest{DatasetID: datasetID, BatchID: batchID}); err != nil {
		var validationErrors validators.ValidationErrors
		if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
			fieldErr := validationErrors[0]
			return nil, errValidationFailed(fmt.Sprintf("invalid %s: must be 1-128 characters of [A-Za-z0-9._-]", fieldName(fieldErr)), err)
		}
		return nil, errValidationFailed("invalid request", err)
	}

	// Parse based on format (using contains for flexible matching, e.g. "application/json; charset=utf-8")
	if !strings.Contains(strings.ToLower(format), FormatJSON) {
		return nil, errValidationFailed(fmt.Sprintf("unsupported input format: %q", format), nil)
	}

	records, err := s.batchDecoder.Decode(r)
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, errValidationFailed("log records cannot be empty", nil)
	}

	return records, nil
}

// fail records the error code of a failed ingestion and passes the error through.
func (s *ingestionService) fail(err error) error {
	if svcErr, ok := svcerrors.AsServiceError(err); ok {
		metricBatchIngestedTotal.WithLabelValues(svcErr.Code).Inc()
	}
	return err
}

func fieldName(fieldErr validators.FieldError) string {
	switch fieldErr.Field() {
	case "DatasetID":
		return "dataset ID"
	case "BatchID":
		return "idempotency key"
	default:
		return fieldErr.Field()
	}
}
