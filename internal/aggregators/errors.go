package aggregators

import (
	"errors"
	"fmt"

	"api-log-analytics/internal/shared/svcerrors"
)

const (
	codeInternalAccumulationRollupFailed = "AGG_9000"
	codeInternalAccumulationStoreFailed  = "AGG_9001"
)

var errMissingAccumulation = errors.New("event carries no accumulation")

// errInternalAccumulationRollupFailed returns an error when merging a partial accumulation fails.
func errInternalAccumulationRollupFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalAccumulationRollupFailed, fmt.Errorf("accumulationRollupFailed: %w", cause))
}

// errInternalAccumulationStoreFailed returns an error when an accumulation store operation fails.
func errInternalAccumulationStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalAccumulationStoreFailed, fmt.Errorf("accumulationStoreFailed: %w", cause))
}
