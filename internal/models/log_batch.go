package models

import "time"

// RawRecord is one undecoded API-call event as it arrives from a loader: usually a
// map[string]any produced by encoding/json, but nothing about its shape is trusted.
type RawRecord = any

// LogEntry is a RawRecord that passed normalization. Every field is present and valid.
type LogEntry struct {
	Timestamp         time.Time
	Endpoint          string
	Method            string
	ResponseTimeMs    float64
	StatusCode        int
	UserID            string
	RequestSizeBytes  float64
	ResponseSizeBytes float64
}

// IsError reports whether the entry counts towards error rates (4xx and 5xx).
func (e *LogEntry) IsError() bool {
	return e.StatusCode >= 400
}

// LogBatch is a raw batch as received by the ingestion endpoint, kept for audit and replay.
type LogBatch struct {
	BatchID    string      `json:"batchId"`
	DatasetID  string      `json:"datasetId"`
	ReceivedAt time.Time   `json:"receivedAt"`
	Records    []RawRecord `json:"records"`
}
