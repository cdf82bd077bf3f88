package svcerrors

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	categoryInvalidArgument  = "invalid_argument"
	categoryResourceConflict = "resource_conflict"
	categoryNotFound         = "not_found"
	categoryInternal         = "internal"
)

const (
	errorCodeInternalPanic     = "SYS_9000"
	errorCodeInternalUndefined = "SYS_9001"

	messageInternal = "internal server error"
)

// ServiceError is the error every service method returns to its callers.
// Message is safe to show to clients; Cause is only logged.
type ServiceError struct {
	Category       string // invalid_argument, resource_conflict, not_found or internal
	Code           string // stable per-package code, e.g. ING_1000 or RPT_9001
	Message        string
	Cause          error
	HttpStatusCode int
}

func newServiceError(category string, status int, code, message string, cause error) *ServiceError {
	return &ServiceError{
		Category:       category,
		Code:           code,
		Message:        message,
		Cause:          cause,
		HttpStatusCode: status,
	}
}

// NewInvalidArgumentError is a 400 for requests the caller has to fix.
func NewInvalidArgumentError(code, message string, cause error) *ServiceError {
	return newServiceError(categoryInvalidArgument, http.StatusBadRequest, code, message, cause)
}

// NewResourceConflictError is a 409, e.g. for an idempotency key that was already used.
func NewResourceConflictError(code, message string, cause error) *ServiceError {
	return newServiceError(categoryResourceConflict, http.StatusConflict, code, message, cause)
}

func NewNotFoundError(code, message string, cause error) *ServiceError {
	return newServiceError(categoryNotFound, http.StatusNotFound, code, message, cause)
}

// NewInternalError is a 500. The cause never reaches the client.
func NewInternalError(code string, cause error) *ServiceError {
	return newServiceError(categoryInternal, http.StatusInternalServerError, code, messageInternal, cause)
}

// NewInternalErrorUndefined wraps an error that did not come from a service.
func NewInternalErrorUndefined(cause error) *ServiceError {
	return NewInternalError(errorCodeInternalUndefined, cause)
}

func NewInternalErrorPanic(cause error) *ServiceError {
	return NewInternalError(errorCodeInternalPanic, cause)
}

// AsServiceError finds the first ServiceError in err's chain.
func AsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr, true
	}
	return nil, false
}

// Error omits the cause so the text is safe to return to clients.
func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *ServiceError) Unwrap() error {
	return e.Cause
}

func (e *ServiceError) IsInternalError() bool {
	return e.Category == categoryInternal
}

// IsClientError reports whether the caller can fix the request and retry.
func (e *ServiceError) IsClientError() bool {
	return e.HttpStatusCode >= 400 && e.HttpStatusCode < 500
}
