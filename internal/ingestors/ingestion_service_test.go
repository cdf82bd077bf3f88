package ingestors_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"api-log-analytics/internal/ingestors"
	ingestormocks "api-log-analytics/internal/ingestors/mocks"
	"api-log-analytics/internal/models"
	"api-log-analytics/internal/shared/svcerrors"
	"api-log-analytics/internal/shared/ulid"
	"api-log-analytics/internal/stores"
	storemocks "api-log-analytics/internal/stores/mocks"
	streammocks "api-log-analytics/internal/streams/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testMaxBatchBytes = 2 * 1024 * 1024
	validJSON         = `[{"timestamp":"2025-01-15T10:00:00Z","endpoint":"/api/users","method":"GET","response_time_ms":245,"status_code":200,"user_id":"user_1","request_size_bytes":512,"response_size_bytes":1024}]`
)

var testSizeTiers = models.SizeTiers{SmallBytes: 1024, LargeBytes: 10240}

func newRealSummarizer() ingestors.BatchSummarizer {
	return ingestors.NewBatchSummarizer(ingestors.NewRecordNormalizer(), ingestors.BatchSummarizerOptions{
		WindowSize: models.WindowHour,
		SizeTiers:  testSizeTiers,
	})
}

func TestIngestBatch_ErrValidationFailed_InvalidFormat(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	batchSummarizer := ingestormocks.NewMockBatchSummarizer(ctrl)
	batchStore := storemocks.NewMockLogBatchStore(ctrl)
	partialAccumulationProducer := streammocks.NewMockPartialAccumulationProducer(ctrl)
	service := ingestors.NewIngestionService(ingestors.NewBatchDecoder(testMaxBatchBytes), batchSummarizer, batchStore, partialAccumulationProducer)

	ctx := context.Background()
	result, err := service.IngestBatch(ctx, "ds-checkout", "key1", "xml", strings.NewReader(validJSON))

	require.Error(t, err, "expected error")
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok, "expected ServiceError")
	assert.Equal(t, "ING_1000", svcErr.Code)
	assert.Equal(t, "invalid_argument", svcErr.Category)
	assert.Equal(t, `unsupported input format: "xml"`, svcErr.Message)
	assert.Nil(t, result, "expected nil result on error")
}

func TestIngestBatch_ErrValidationFailed_InvalidIdentifiers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		datasetID       string
		idempotencyKey  string
		expectedMessage string
	}{
		{
			name:            "missing dataset ID",
			datasetID:       "",
			idempotencyKey:  "key1",
			expectedMessage: "invalid dataset ID: must be 1-128 characters of [A-Za-z0-9._-]",
		},
		{
			name:            "dataset ID with path traversal",
			datasetID:       "../etc",
			idempotencyKey:  "key1",
			expectedMessage: "invalid dataset ID: must be 1-128 characters of [A-Za-z0-9._-]",
		},
		{
			name:            "idempotency key with slash",
			datasetID:       "ds-checkout",
			idempotencyKey:  "a/b",
			expectedMessage: "invalid idempotency key: must be 1-128 characters of [A-Za-z0-9._-]",
		},
		{
			name:            "idempotency key too long",
			datasetID:       "ds-checkout",
			idempotencyKey:  strings.Repeat("k", 129),
			expectedMessage: "invalid idempotency key: must be 1-128 characters of [A-Za-z0-9._-]",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := ingestors.NewIngestionService(
				ingestors.NewBatchDecoder(testMaxBatchBytes),
				ingestormocks.NewMockBatchSummarizer(ctrl),
				storemocks.NewMockLogBatchStore(ctrl),
				streammocks.NewMockPartialAccumulationProducer(ctrl),
			)

			result, err := service.IngestBatch(context.Background(), tt.datasetID, tt.idempotencyKey, "json", strings.NewReader(validJSON))

			require.Error(t, err)
			svcErr, ok := svcerrors.AsServiceError(err)
			require.True(t, ok, "expected ServiceError")
			assert.Equal(t, "ING_1000", svcErr.Code)
			assert.Equal(t, tt.expectedMessage, svcErr.Message)
			assert.Nil(t, result)
		})
	}
}

func TestIngestBatch_ErrValidationFailed_Body(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		body            string
		expectedMessage string
	}{
		{
			name:            "invalid json",
			body:            `{invalid json}`,
			expectedMessage: "invalid json: body must be an array of records",
		},
		{
			name:            "empty array",
			body:            `[]`,
			expectedMessage: "log records cannot be empty",
		},
		{
			name:            "empty body",
			body:            ``,
			expectedMessage: "empty request body",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := ingestors.NewIngestionService(
				ingestors.NewBatchDecoder(testMaxBatchBytes),
				ingestormocks.NewMockBatchSummarizer(ctrl),
				storemocks.NewMockLogBatchStore(ctrl),
				streammocks.NewMockPartialAccumulationProducer(ctrl),
			)

			result, err := service.IngestBatch(context.Background(), "ds-checkout", "key1", "application/json; charset=utf-8", strings.NewReader(tt.body))

			require.Error(t, err)
			svcErr, ok := svcerrors.AsServiceError(err)
			require.True(t, ok, "expected ServiceError")
			assert.Equal(t, "ING_1000", svcErr.Code)
			assert.Equal(t, "invalid_argument", svcErr.Category)
			assert.Equal(t, tt.expectedMessage, svcErr.Message)
			assert.Nil(t, result)
		})
	}
}

func TestIngestBatch_ErrValidationFailed_BatchTooLarge(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	batchSummarizer := ingestormocks.NewMockBatchSummarizer(ctrl)
	batchStore := storemocks.NewMockLogBatchStore(ctrl)
	partialAccumulationProducer := streammocks.NewMockPartialAccumulationProducer(ctrl)
	service := ingestors.NewIngestionService(ingestors.NewBatchDecoder(testMaxBatchBytes), batchSummarizer, batchStore, partialAccumulationProducer)

	largeBody := make([]byte, testMaxBatchBytes+1)
	_, err := service.IngestBatch(context.Background(), "ds-checkout", "key1", "json", bytes.NewReader(largeBody))

	require.Error(t, err, "expected error")
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok, "expected ServiceError")
	assert.Equal(t, "ING_1000", svcErr.Code)
	assert.Equal(t, "batch too large: must be <= 2097152 bytes", svcErr.Message)
}

func TestIngestBatch_ErrBatchPutFailed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name             string
		putError         error
		expectedCode     string
		expectedCategory string
	}{
		{
			name:             "log batch already exists",
			putError:         stores.ErrLogBatchAlreadyExist,
			expectedCode:     "ING_1001",
			expectedCategory: "resource_conflict",
		},
		{
			name:             "log batch put failed",
			putError:         assert.AnError,
			expectedCode:     "ING_9000",
			expectedCategory: "internal",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			batchSummarizer := ingestormocks.NewMockBatchSummarizer(ctrl)
			batchStore := storemocks.NewMockLogBatchStore(ctrl)
			partialAccumulationProducer := streammocks.NewMockPartialAccumulationProducer(ctrl)

			batchStore.EXPECT().Put(gomock.Any(), gomock.Any()).Return(tt.putError)

			service := ingestors.NewIngestionService(ingestors.NewBatchDecoder(testMaxBatchBytes), batchSummarizer, batchStore, partialAccumulationProducer)

			result, err := service.IngestBatch(context.Background(), "ds-checkout", "key1", "json", strings.NewReader(validJSON))

			require.Error(t, err, "expected error")
			svcErr, ok := svcerrors.AsServiceError(err)
			require.True(t, ok, "expected ServiceError")
			assert.Equal(t, tt.expectedCode, svcErr.Code)
			assert.Equal(t, tt.expectedCategory, svcErr.Category)
			assert.ErrorIs(t, err, tt.putError)
			assert.Nil(t, result, "expected nil result on error")
		})
	}
}

func TestIngestBatch_ErrSummarizeFailed(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	batchSummarizer := ingestormocks.NewMockBatchSummarizer(ctrl)
	batchStore := storemocks.NewMockLogBatchStore(ctrl)
	partialAccumulationProducer := streammocks.NewMockPartialAccumulationProducer(ctrl)

	batchStore.EXPECT().Put(gomock.Any(), gomock.Any()).Return(nil)
	batchSummarizer.EXPECT().Summarize(gomock.Any(), gomock.Any()).Return(nil, context.Canceled)

	service := ingestors.NewIngestionService(ingestors.NewBatchDecoder(testMaxBatchBytes), batchSummarizer, batchStore, partialAccumulationProducer)

	result, err := service.IngestBatch(context.Background(), "ds-checkout", "key1", "json", strings.NewReader(validJSON))

	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok, "expected ServiceError")
	assert.Equal(t, "ING_9001", svcErr.Code)
	assert.Equal(t, "internal", svcErr.Category)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, result)
}

func TestIngestBatch_ErrPartialAccumulationPublishFailed(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	batchSummarizer := ingestormocks.NewMockBatchSummarizer(ctrl)
	batchStore := storemocks.NewMockLogBatchStore(ctrl)
	partialAccumulationProducer := streammocks.NewMockPartialAccumulationProducer(ctrl)

	batchStore.EXPECT().Put(gomock.Any(), gomock.Any()).Return(nil)
	batchSummarizer.EXPECT().Summarize(gomock.Any(), gomock.Any()).
		Return(models.NewAccumulation(models.WindowHour, testSizeTiers), nil)
	partialAccumulationProducer.EXPECT().Produce(gomock.Any(), "ds-checkout", "key1", gomock.Any()).
		Return(assert.AnError)

	service := ingestors.NewIngestionService(ingestors.NewBatchDecoder(testMaxBatchBytes), batchSummarizer, batchStore, partialAccumulationProducer)

	result, err := service.IngestBatch(context.Background(), "ds-checkout", "key1", "json", strings.NewReader(validJSON))

	require.Error(t, err, "expected error")
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok, "expected ServiceError")
	assert.Equal(t, "ING_9002", svcErr.Code)
	assert.Equal(t, "internal", svcErr.Category)
	assert.Nil(t, result, "expected nil result on error")
}

func TestIngestBatch_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	batchStore := storemocks.NewMockLogBatchStore(ctrl)
	partialAccumulationProducer := streammocks.NewMockPartialAccumulationProducer(ctrl)

	var storedBatch *models.LogBatch
	var publishedAccumulation *models.Accumulation

	batchStore.EXPECT().Put(gomock.Any(), gomock.Any()).
		Do(func(ctx context.Context, batch *models.LogBatch) {
			storedBatch = batch
		}).
		Return(nil)

	partialAccumulationProducer.EXPECT().Produce(gomock.Any(), "ds-checkout", "key1", gomock.Any()).
		Do(func(ctx context.Context, datasetID string, batchID string, accumulation *models.Accumulation) {
			publishedAccumulation = accumulation
		}).
		Return(nil)

	service := ingestors.NewIngestionService(ingestors.NewBatchDecoder(testMaxBatchBytes), newRealSummarizer(), batchStore, partialAccumulationProducer)

	body := `[
		{"timestamp":"2025-01-15T10:00:00Z","endpoint":"/api/users","method":"GET","response_time_ms":245,"status_code":200,"user_id":"user_1","request_size_bytes":512,"response_size_bytes":1024},
		{"timestamp":"2025-01-15T10:01:00Z","endpoint":"/api/users","method":"GET","response_time_ms":255,"user_id":"user_2","request_size_bytes":512,"response_size_bytes":1024},
		"garbage"
	]`
	result, err := service.IngestBatch(context.Background(), "ds-checkout", " key1 ", "json", strings.NewReader(body))

	require.NoError(t, err, "unexpected error")
	require.NotNil(t, result, "expected non-nil result")
	assert.Equal(t, "key1", result.BatchID)
	assert.Equal(t, int64(1), result.ValidCount)
	assert.Equal(t, int64(2), result.InvalidCount)

	require.NotNil(t, storedBatch)
	assert.Equal(t, "key1", storedBatch.BatchID)
	assert.Equal(t, "ds-checkout", storedBatch.DatasetID)
	assert.Len(t, storedBatch.Records, 3, "raw batch keeps invalid records")
	assert.False(t, storedBatch.ReceivedAt.IsZero())

	require.NotNil(t, publishedAccumulation)
	assert.Equal(t, int64(1), publishedAccumulation.Global.ValidCount)
	assert.Equal(t, []string{"/api/users"}, publishedAccumulation.EndpointOrder)
}

func TestIngestBatch_Success_GeneratesBatchID(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	batchStore := storemocks.NewMockLogBatchStore(ctrl)
	partialAccumulationProducer := streammocks.NewMockPartialAccumulationProducer(ctrl)

	var storedBatch *models.LogBatch
	batchStore.EXPECT().Put(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, logBatch *models.LogBatch) error {
			storedBatch = logBatch
			return nil
		})
	partialAccumulationProducer.EXPECT().Produce(gomock.Any(), "ds-checkout", gomock.Any(), gomock.Any()).Return(nil)

	service := ingestors.NewIngestionService(ingestors.NewBatchDecoder(testMaxBatchBytes), newRealSummarizer(), batchStore, partialAccumulationProducer)

	result, err := service.IngestBatch(context.Background(), "ds-checkout", "", "json", strings.NewReader(validJSON))

	require.NoError(t, err)
	assert.Len(t, result.BatchID, 26, "expected a ULID batch ID")
	require.NotNil(t, storedBatch)
	encodedAt, ok := ulid.TimeOf(result.BatchID)
	require.True(t, ok)
	assert.True(t, storedBatch.ReceivedAt.Truncate(time.Millisecond).Equal(encodedAt), "batch ID encodes the receive time")
	assert.Equal(t, int64(1), result.ValidCount)
	assert.Equal(t, int64(0), result.InvalidCount)
}
