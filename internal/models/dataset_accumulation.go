package models

import "time"

// DatasetAccumulation is the rolled-up accumulation of every batch ingested for a dataset.
//
// Example JSON (abridged):
//
//	{
//	  "datasetId": "ds-checkout",
//	  "batchCount": 3,
//	  "updatedAt": "2025-01-15T10:03:00Z",
//	  "accumulation": {"windowSize": "hour", "global": {"validCount": 1500, ...}, ...}
//	}
type DatasetAccumulation struct {
	DatasetID    string        `json:"datasetId"`
	BatchCount   int64         `json:"batchCount"`
	UpdatedAt    time.Time     `json:"updatedAt"`
	Accumulation *Accumulation `json:"accumulation"`
}

func NewEmptyDatasetAccumulation(datasetID string, windowSize WindowSize, sizeTiers SizeTiers) *DatasetAccumulation {
	return &DatasetAccumulation{
		DatasetID:    datasetID,
		Accumulation: NewAccumulation(windowSize, sizeTiers),
	}
}

// IsNew reports whether no batch has been rolled up yet.
func (d *DatasetAccumulation) IsNew() bool {
	return d.BatchCount == 0
}
