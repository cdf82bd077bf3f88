package analyzers

import (
	"context"
	"fmt"
	"io"
	"strings"

	"api-log-analytics/internal/ingestors"
	"api-log-analytics/internal/models"
	"api-log-analytics/internal/shared/loggers"
	"api-log-analytics/internal/shared/metrics"
	"api-log-analytics/internal/shared/svcerrors"
	"api-log-analytics/internal/shared/validators"
	"api-log-analytics/internal/stores"
)

type datasetRequest struct {
	DatasetID string `validate:"required,resource_id"`
}

//go:generate mockgen -source=report_service.go -destination=./mocks/report_service_mock.go -package=mocks
type ReportService interface {
	// Analyze reports on records in one pass. Invalid records are counted, never rejected.
	Analyze(ctx context.Context, records []models.RawRecord) (*models.Report, error)
	// AnalyzeBatch decodes a JSON array body and reports on it.
	AnalyzeBatch(ctx context.Context, format string, r io.Reader) (*models.Report, error)
	// DatasetReport reports on every batch rolled up so far for datasetID.
	DatasetReport(ctx context.Context, datasetID string) (*models.Report, error)
	ListDatasets(ctx context.Context) ([]string, error)
}

type reportService struct {
	batchDecoder      ingestors.BatchDecoder
	batchSummarizer   ingestors.BatchSummarizer
	accumulationStore stores.AccumulationStore
	reportAssembler   ReportAssembler
	analysisConfig    models.AnalysisConfig
	validate          *validators.Validate
}

func NewReportService(
	batchDecoder ingestors.BatchDecoder,
	batchSummarizer ingestors.BatchSummarizer,
	accumulationStore stores.AccumulationStore,
	reportAssembler ReportAssembler,
	analysisConfig models.AnalysisConfig,
) ReportService {
	return &reportService{
		batchDecoder:      batchDecoder,
		batchSummarizer:   batchSummarizer,
		accumulationStore: accumulationStore,
		reportAssembler:   reportAssembler,
		analysisConfig:    analysisConfig,
		validate:          validators.New(),
	}
}

func (s *reportService) Analyze(ctx context.Context, records []models.RawRecord) (*models.Report, error) {
	accumulation, err := s.batchSummarizer.Summarize(ctx, records)
	if err != nil {
		return nil, s.fail(sourceBatch, errInternalSummarizeFailed(err))
	}

	report := s.reportAssembler.Assemble(accumulation)
	loggers.Ctx(ctx).Info().
		Int64(loggers.FieldValidRecords, report.Summary.TotalRequests).
		Int64(loggers.FieldInvalidRecords, report.Meta.InvalidLogs).
		Msg("batch analyzed")
	metricReportsGeneratedTotal.WithLabelValues(sourceBatch, metrics.ValueNoError).Inc()
	return report, nil
}

func (s *reportService) AnalyzeBatch(ctx context.Context, format string, r io.Reader) (*models.Report, error) {
	if !strings.Contains(strings.ToLower(format), ingestors.FormatJSON) {
		return nil, s.fail(sourceBatch, errValidationFailed(fmt.Sprintf("unsupported input format: %q", format), nil))
	}

	records, err := s.batchDecoder.Decode(r)
	if err != nil {
		msg := "invalid request body"
		if svcErr, ok := svcerrors.AsServiceError(err); ok {
			msg = svcErr.Message
		}
		return nil, s.fail(sourceBatch, errValidationFailed(msg, err))
	}
	return s.Analyze(ctx, records)
}

func (s *reportService) DatasetReport(ctx context.Context, datasetID string) (*models.Report, error) {
	if err := s.validate.Struct(datasetRequest{DatasetID: datasetID}); err != nil {
		return nil, s.fail(sourceDataset, errValidationFailed("invalid dataset ID: must be 1-128 characters of [A-Za-z0-9._-]", err))
	}

	datasetAccumulation, err := s.accumulationStore.Get(ctx, datasetID, s.analysisConfig.WindowSize, s.analysisConfig.SizeTiers)
	if err != nil {
		return nil, s.fail(sourceDataset, errInternalAccumulationStoreFailed(err))
	}
	if datasetAccumulation.IsNew() {
		return nil, s.fail(sourceDataset, errDatasetNotFound(datasetID))
	}

	report := s.reportAssembler.Assemble(datasetAccumulation.Accumulation)
	loggers.Ctx(ctx).Debug().
		Str(loggers.FieldDatasetID, datasetID).
		Int64(loggers.FieldBatchCount, datasetAccumulation.BatchCount).
		Msg("dataset report assembled")
	metricReportsGeneratedTotal.WithLabelValues(sourceDataset, metrics.ValueNoError).Inc()
	return report, nil
}

func (s *reportService) ListDatasets(ctx context.Context) ([]string, error) {
	datasetIDs, err := s.accumulationStore.ListDatasetIDs(ctx)
	if err != nil {
		return nil, errInternalAccumulationStoreFailed(err)
	}
	return datasetIDs, nil
}

func (s *reportService) fail(source string, svcErr *svcerrors.ServiceError) error {
	metricReportsGeneratedTotal.WithLabelValues(source, svcErr.Code).Inc()
	return svcErr
}
