package http

import (
	"net/http"

	"api-log-analytics/internal/ingestors"
)

type ingestLogHandler struct {
	ingestionService ingestors.IngestionService
}

func NewIngestLogHandler(ingestionService ingestors.IngestionService) AppHttpHandler {
	return &ingestLogHandler{
		ingestionService: ingestionService,
	}
}

// Handle processes POST /logs requests. The batch is stored and summarized
// before the 202; the dataset rollup happens later on the partition workers.
func (h *ingestLogHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	result, err := h.ingestionService.IngestBatch(r.Context(), datasetID(r), idempotencyKey(r), contentType(r), r.Body)
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusAccepted, result)
	return nil
}
