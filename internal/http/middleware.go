package http

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"api-log-analytics/internal/shared/loggers"
	"api-log-analytics/internal/shared/svcerrors"
	"api-log-analytics/internal/shared/ulid"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

const routeUnmatched = "unmatched"

// setupMiddleware installs the chain outermost first. The recoverer sits
// innermost so a recovered panic is still counted and logged.
func setupMiddleware(router *chi.Mux, httpLogger loggers.Logger) {
	router.Use(
		mwRequestContext(httpLogger),
		mwAppResponseWriter,
		mwPrometheus,
		mwRequestCompletionLog,
		mwRecoverer,
	)
}

// mwRequestContext gives every request an ID, echoes it in the response and
// puts a logger carrying it, and the dataset ID header when sent, in the context.
func mwRequestContext(httpLogger loggers.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := requestID(r)
			if id == "" {
				id = ulid.NewULID()
				setRequestID(r, id)
			}
			w.Header().Set(headerRequestID, id)

			logCtx := httpLogger.With().Str(loggers.FieldRequestID, id)
			if dataset := datasetID(r); dataset != "" {
				logCtx = logCtx.Str(loggers.FieldDatasetID, dataset)
			}
			ctx := logCtx.Logger().WithContext(r.Context())

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func mwAppResponseWriter(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(newAppResponseWriter(w, r.ProtoMajor), r)
	})
}

// mwPrometheus labels by route pattern; dataset IDs in raw paths would make
// the label set unbounded.
func mwPrometheus(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		metricInFlightRequests.Inc()
		defer metricInFlightRequests.Dec()

		start := time.Now()
		next.ServeHTTP(w, r)

		outcome := outcomeOf(w)
		route := routePattern(r)
		status := strconv.Itoa(outcome.status)

		metricRequestsTotal.WithLabelValues(r.Method, route, status, outcome.errorCode).Inc()
		metricRequestDurationSeconds.WithLabelValues(r.Method, route, status).Observe(time.Since(start).Seconds())
		metricResponseSizeBytes.WithLabelValues(r.Method, route).Observe(float64(outcome.bytes))
	})
}

// mwRequestCompletionLog writes one line per request: info on success, warn
// when the client sent a bad request, error when the service failed.
func mwRequestCompletionLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		defer func() {
			outcome := outcomeOf(w)
			logger := loggers.Ctx(r.Context())

			var event *zerolog.Event
			switch {
			case outcome.svcError == nil:
				event = logger.Info()
			case outcome.svcError.IsClientError():
				event = logger.Warn()
			default:
				event = logger.Error()
			}
			if outcome.errorCode != "" {
				event = event.Str(loggers.FieldErrorCode, outcome.errorCode)
			}

			event.
				Str(loggers.FieldHttpMethod, r.Method).
				Str(loggers.FieldHttpPath, r.URL.Path).
				Str(loggers.FieldHttpRoute, routePattern(r)).
				Int(loggers.FieldHttpStatus, outcome.status).
				Int(loggers.FieldHttpBytes, outcome.bytes).
				Int64(loggers.FieldDuration, time.Since(start).Milliseconds()).
				Msg("request completed")
		}()

		next.ServeHTTP(w, r)
	})
}

func mwRecoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			p := recover()
			if p == nil {
				return
			}
			if p == http.ErrAbortHandler {
				panic(p)
			}

			loggers.Ctx(r.Context()).Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Msgf("http panic recovered: %v", p)

			panicErr, ok := p.(error)
			if !ok {
				panicErr = fmt.Errorf("%v", p)
			}
			writeErrorResponse(w, r, svcerrors.NewInternalErrorPanic(panicErr))
		}()

		next.ServeHTTP(w, r)
	})
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return routeUnmatched
}
