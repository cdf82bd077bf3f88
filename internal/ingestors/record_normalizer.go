package ingestors

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"api-log-analytics/internal/models"
)

const (
	fieldTimestamp         = "timestamp"
	fieldEndpoint          = "endpoint"
	fieldMethod            = "method"
	fieldResponseTimeMs    = "response_time_ms"
	fieldStatusCode        = "status_code"
	fieldUserID            = "user_id"
	fieldRequestSizeBytes  = "request_size_bytes"
	fieldResponseSizeBytes = "response_size_bytes"

	minStatusCode = 100
	maxStatusCode = 599
)

// Reasons an InvalidRecordError carries; also used as metric label values.
const (
	ReasonNotAnObject  = "not_an_object"
	ReasonMissingField = "missing_field"
	ReasonInvalidType  = "invalid_type"
	ReasonOutOfRange   = "out_of_range"
	ReasonBadTimestamp = "bad_timestamp"
	ReasonEmptyString  = "empty_string"

	resultNormalizedOK = "ok"
)

// Accepted timestamp layouts, tried in order. Layouts without a zone are read as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
}

// InvalidRecordError describes why a raw record was rejected.
type InvalidRecordError struct {
	Field  string
	Reason string
}

func (e *InvalidRecordError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid record: %s", e.Reason)
	}
	return fmt.Sprintf("invalid record: %s: %s", e.Field, e.Reason)
}

//go:generate mockgen -source=record_normalizer.go -destination=./mocks/record_normalizer_mock.go -package=mocks
type RecordNormalizer interface {
	// Normalize validates raw and converts it into a LogEntry. A rejected record always
	// yields an *InvalidRecordError.
	Normalize(raw models.RawRecord) (*models.LogEntry, error)
}

type recordNormalizer struct{}

func NewRecordNormalizer() RecordNormalizer {
	return &recordNormalizer{}
}

func (n *recordNormalizer) Normalize(raw models.RawRecord) (*models.LogEntry, error) {
	entry, err := n.normalize(raw)
	if err != nil {
		metricRecordsNormalizedTotal.WithLabelValues(err.Reason).Inc()
		return nil, err
	}
	metricRecordsNormalizedTotal.WithLabelValues(resultNormalizedOK).Inc()
	return entry, nil
}

func (n *recordNormalizer) normalize(raw models.RawRecord) (*models.LogEntry, *InvalidRecordError) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, &InvalidRecordError{Reason: ReasonNotAnObject}
	}

	var err *InvalidRecordError
	entry := &models.LogEntry{}

	if entry.Timestamp, err = timestampField(obj, fieldTimestamp); err != nil {
		return nil, err
	}
	if entry.Endpoint, err = stringField(obj, fieldEndpoint); err != nil {
		return nil, err
	}
	if entry.Method, err = stringField(obj, fieldMethod); err != nil {
		return nil, err
	}
	entry.Method = strings.ToUpper(entry.Method)
	if entry.ResponseTimeMs, err = nonNegativeField(obj, fieldResponseTimeMs); err != nil {
		return nil, err
	}
	if entry.StatusCode, err = statusCodeField(obj, fieldStatusCode); err != nil {
		return nil, err
	}
	if entry.UserID, err = stringField(obj, fieldUserID); err != nil {
		return nil, err
	}
	if entry.RequestSizeBytes, err = nonNegativeField(obj, fieldRequestSizeBytes); err != nil {
		return nil, err
	}
	if entry.ResponseSizeBytes, err = nonNegativeField(obj, fieldResponseSizeBytes); err != nil {
		return nil, err
	}

	return entry, nil
}

func lookup(obj map[string]any, field string) (any, *InvalidRecordError) {
	v, ok := obj[field]
	if !ok || v == nil {
		return nil, &InvalidRecordError{Field: field, Reason: ReasonMissingField}
	}
	return v, nil
}

// stringField returns the trimmed, non-empty string value of field.
func stringField(obj map[string]any, field string) (string, *InvalidRecordError) {
	v, err := lookup(obj, field)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", &InvalidRecordError{Field: field, Reason: ReasonInvalidType}
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", &InvalidRecordError{Field: field, Reason: ReasonEmptyString}
	}
	return s, nil
}

func nonNegativeField(obj map[string]any, field string) (float64, *InvalidRecordError) {
	v, err := lookup(obj, field)
	if err != nil {
		return 0, err
	}
	f, ok := toFloat(v)
	if !ok {
		return 0, &InvalidRecordError{Field: field, Reason: ReasonInvalidType}
	}
	if f < 0 {
		return 0, &InvalidRecordError{Field: field, Reason: ReasonOutOfRange}
	}
	return f, nil
}

func statusCodeField(obj map[string]any, field string) (int, *InvalidRecordError) {
	v, err := lookup(obj, field)
	if err != nil {
		return 0, err
	}
	f, ok := toFloat(v)
	if !ok || f != math.Trunc(f) {
		return 0, &InvalidRecordError{Field: field, Reason: ReasonInvalidType}
	}
	if f < minStatusCode || f > maxStatusCode {
		return 0, &InvalidRecordError{Field: field, Reason: ReasonOutOfRange}
	}
	return int(f), nil
}

func timestampField(obj map[string]any, field string) (time.Time, *InvalidRecordError) {
	s, err := stringField(obj, field)
	if err != nil {
		return time.Time{}, err
	}
	for _, layout := range timestampLayouts {
		if t, parseErr := time.Parse(layout, s); parseErr == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, &InvalidRecordError{Field: field, Reason: ReasonBadTimestamp}
}

// toFloat accepts Go numeric types and json.Number. Booleans, strings and
// non-finite values are rejected.
func toFloat(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int8:
		f = float64(n)
	case int16:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case uint8:
		f = float64(n)
	case uint16:
		f = float64(n)
	case uint32:
		f = float64(n)
	case uint64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
