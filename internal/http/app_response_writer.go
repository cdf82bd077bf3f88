package http

import (
	"net/http"

	"api-log-analytics/internal/shared/svcerrors"

	"github.com/go-chi/chi/v5/middleware"
)

// appResponseWriter records what a handler wrote, plus the service error it
// failed with, for the metrics and completion-log middlewares.
type appResponseWriter struct {
	middleware.WrapResponseWriter
	svcError *svcerrors.ServiceError
}

func newAppResponseWriter(w http.ResponseWriter, protoMajor int) *appResponseWriter {
	return &appResponseWriter{
		WrapResponseWriter: middleware.NewWrapResponseWriter(w, protoMajor),
	}
}

func (w *appResponseWriter) SetServiceError(svcError *svcerrors.ServiceError) {
	w.svcError = svcError
}

func (w *appResponseWriter) ErrorCode() string {
	if w.svcError != nil {
		return w.svcError.Code
	}
	return ""
}

// responseOutcome is what the middlewares report about a finished request.
type responseOutcome struct {
	status    int
	bytes     int
	svcError  *svcerrors.ServiceError
	errorCode string
}

// outcomeOf reads the outcome from w. A handler that never called WriteHeader
// answered 200, as net/http does.
func outcomeOf(w http.ResponseWriter) responseOutcome {
	appWriter, ok := w.(*appResponseWriter)
	if !ok {
		return responseOutcome{status: http.StatusOK}
	}

	status := appWriter.Status()
	if status == 0 {
		status = http.StatusOK
	}
	return responseOutcome{
		status:    status,
		bytes:     appWriter.BytesWritten(),
		svcError:  appWriter.svcError,
		errorCode: appWriter.ErrorCode(),
	}
}
