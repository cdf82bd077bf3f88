package http

import (
	"net/http"

	"api-log-analytics/internal/analyzers"
	"api-log-analytics/internal/ingestors"
	"api-log-analytics/internal/shared/loggers"
	"api-log-analytics/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(ingestionService ingestors.IngestionService, reportService analyzers.ReportService, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	// Initialize handlers
	ingestLogHandler := NewIngestLogHandler(ingestionService)
	analyzeHandler := NewAnalyzeHandler(reportService)
	datasetReportHandler := NewDatasetReportHandler(reportService)
	listDatasetsHandler := NewListDatasetsHandler(reportService)

	// Routes
	router.Post("/analyze", errorHandlingAdapter(analyzeHandler))
	router.Post("/logs", errorHandlingAdapter(ingestLogHandler))
	router.Get("/datasets", errorHandlingAdapter(listDatasetsHandler))
	router.Get("/datasets/{"+paramDatasetID+"}/report", errorHandlingAdapter(datasetReportHandler))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
