package http

import (
	"net/http"

	"api-log-analytics/internal/analyzers"

	"github.com/go-chi/chi/v5"
)

const paramDatasetID = "datasetID"

// DatasetList is the body of GET /datasets.
type DatasetList struct {
	Datasets []string `json:"datasets"`
}

type datasetReportHandler struct {
	reportService analyzers.ReportService
}

func NewDatasetReportHandler(reportService analyzers.ReportService) AppHttpHandler {
	return &datasetReportHandler{reportService: reportService}
}

// Handle processes GET /datasets/{datasetID}/report requests.
func (h *datasetReportHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	report, err := h.reportService.DatasetReport(r.Context(), chi.URLParam(r, paramDatasetID))
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, report)
	return nil
}

type listDatasetsHandler struct {
	reportService analyzers.ReportService
}

func NewListDatasetsHandler(reportService analyzers.ReportService) AppHttpHandler {
	return &listDatasetsHandler{reportService: reportService}
}

// Handle processes GET /datasets requests.
func (h *listDatasetsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	datasetIDs, err := h.reportService.ListDatasets(r.Context())
	if err != nil {
		return err
	}
	if datasetIDs == nil {
		datasetIDs = []string{}
	}

	writeJSON(w, http.StatusOK, DatasetList{Datasets: datasetIDs})
	return nil
}
