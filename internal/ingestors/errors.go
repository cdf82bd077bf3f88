package ingestors

import (
	"fmt"

	"api-log-analytics/internal/shared/svcerrors"
)

// IngestionService errors
const (
	codeValidationFailed      = "ING_1000"
	codeBatchAlreadyProcessed = "ING_1001"

	codeInternalLogBatchStoreFailed               = "ING_9000"
	codeInternalSummarizeFailed                   = "ING_9001"
	codeInternalPartialAccumulationProducerFailed = "ING_9002"
)

// errValidationFailed returns an error for validation failures.
func errValidationFailed(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeValidationFailed, msg, cause)
}

// errLogBatchAlreadyProcessed returns an error when a log batch has already been processed.
func errLogBatchAlreadyProcessed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewResourceConflictError(codeBatchAlreadyProcessed, "log batch already processed", cause)
}

// errInternalLogBatchStoreFailed returns an error when a log batch store operation fails.
func errInternalLogBatchStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalLogBatchStoreFailed, fmt.Errorf("logBatchStoreFailed: %w", cause))
}

func errInternalSummarizeFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalSummarizeFailed, fmt.Errorf("summarizeFailed: %w", cause))
}

// errInternalPartialAccumulationProducerFailed returns an error when publishing a partial accumulation fails.
func errInternalPartialAccumulationProducerFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalPartialAccumulationProducerFailed, fmt.Errorf("partialAccumulationProducerFailed: %w", cause))
}
