package http

import (
	"context"
	"encoding/json"
	"net/http"

	"api-log-analytics/internal/shared/loggers"
	"api-log-analytics/internal/shared/svcerrors"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	RequestID        string `json:"requestId"`
	ErrorCategory    string `json:"errorCategory"`
	ErrorCode        string `json:"errorCode"`
	ErrorDescription string `json:"errorDescription"`
}

// AppHttpHandler is a handler that returns its error instead of writing it.
type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

// errorHandlingAdapter turns an AppHttpHandler into an http.HandlerFunc that
// answers a returned error with an ErrorResponse.
func errorHandlingAdapter(httpHandler AppHttpHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := httpHandler.Handle(w, r); err != nil {
			writeErrorResponse(w, r, toServiceError(r.Context(), err))
		}
	}
}

// toServiceError maps err to the ServiceError sent to the client. Internal
// errors are logged here with their cause since the client never sees it.
func toServiceError(ctx context.Context, err error) *svcerrors.ServiceError {
	svcErr, ok := svcerrors.AsServiceError(err)
	if !ok {
		svcErr = svcerrors.NewInternalErrorUndefined(err)
	}

	if svcErr.IsInternalError() {
		loggers.Ctx(ctx).Error().
			Err(svcErr.Cause).
			Str(loggers.FieldErrorCode, svcErr.Code).
			Msg("internal error in handler")
	}
	return svcErr
}

func writeErrorResponse(w http.ResponseWriter, r *http.Request, svcErr *svcerrors.ServiceError) {
	if appWriter, ok := w.(*appResponseWriter); ok {
		appWriter.SetServiceError(svcErr)
	}

	writeJSON(w, svcErr.HttpStatusCode, ErrorResponse{
		RequestID:        requestID(r),
		ErrorCategory:    svcErr.Category,
		ErrorCode:        svcErr.Code,
		ErrorDescription: svcErr.Message,
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
