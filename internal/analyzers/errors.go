package analyzers

import (
	"fmt"

	"api-log-analytics/internal/shared/svcerrors"
)

// ReportService errors
const (
	codeDatasetNotFound  = "RPT_1000"
	codeValidationFailed = "RPT_1001"

	codeInternalAccumulationStoreFailed = "RPT_9000"
	codeInternalSummarizeFailed         = "RPT_9001"
)

// errDatasetNotFound returns an error when no batch was ever rolled up for a dataset.
func errDatasetNotFound(datasetID string) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeDatasetNotFound, fmt.Sprintf("dataset %q has no ingested logs", datasetID), nil)
}

// errValidationFailed returns an error for validation failures.
func errValidationFailed(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeValidationFailed, msg, cause)
}

func errInternalAccumulationStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalAccumulationStoreFailed, fmt.Errorf("accumulationStoreFailed: %w", cause))
}

func errInternalSummarizeFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalSummarizeFailed, fmt.Errorf("summarizeFailed: %w", cause))
}
