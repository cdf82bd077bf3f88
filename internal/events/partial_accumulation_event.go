package events

import (
	"time"

	"api-log-analytics/internal/models"
)

// PartialAccumulationEvent carries the accumulation of one ingested batch. These events are
// produced after batch summarization and consumed by the aggregation service, which rolls
// them into the dataset's DatasetAccumulation.
//
// Example JSON (abridged):
//
//	{
//	  "datasetId": "ds-checkout",
//	  "batchId": "01ARZ3NDEKTSV4RRFFQ69G5FAV",
//	  "producedAt": "2025-01-15T10:03:00Z",
//	  "accumulation": {
//	    "windowSize": "hour",
//	    "global": {"validCount": 498, "invalidCount": 2, ...},
//	    "endpointOrder": ["/api/users", "/api/orders"],
//	    ...
//	  }
//	}
//
// In this example:
//   - The event represents batch "01ARZ3NDEKTSV4RRFFQ69G5FAV" of dataset "ds-checkout"
//   - The batch had 500 records, 2 of which failed normalization
//   - This partial accumulation will be merged into the dataset accumulation, after every
//     batch of the same dataset that was published before it
type PartialAccumulationEvent struct {
	DatasetID    string               `json:"datasetId"`
	BatchID      string               `json:"batchId"`
	ProducedAt   time.Time            `json:"producedAt"`
	Accumulation *models.Accumulation `json:"accumulation"`
}
