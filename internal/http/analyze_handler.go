package http

import (
	"net/http"

	"api-log-analytics/internal/analyzers"
)

type analyzeHandler struct {
	reportService analyzers.ReportService
}

func NewAnalyzeHandler(reportService analyzers.ReportService) AppHttpHandler {
	return &analyzeHandler{reportService: reportService}
}

// Handle processes POST /analyze requests: the body is reported on synchronously and nothing is stored.
func (h *analyzeHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	report, err := h.reportService.AnalyzeBatch(r.Context(), contentType(r), r.Body)
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, report)
	return nil
}
