package analyzers

import (
	"encoding/json"
	"fmt"
	"time"

	"api-log-analytics/internal/models"
)

var (
	testConfig    = models.DefaultAnalysisConfig()
	testSizeTiers = testConfig.SizeTiers
	testBaseTime  = time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
)

type entryOpt func(*models.LogEntry)

func withStatus(status int) entryOpt {
	return func(e *models.LogEntry) { e.StatusCode = status }
}

func withMethod(method string) entryOpt {
	return func(e *models.LogEntry) { e.Method = method }
}

func withUser(userID string) entryOpt {
	return func(e *models.LogEntry) { e.UserID = userID }
}

func withResponseSize(size float64) entryOpt {
	return func(e *models.LogEntry) { e.ResponseSizeBytes = size }
}

func withTimestamp(ts time.Time) entryOpt {
	return func(e *models.LogEntry) { e.Timestamp = ts }
}

func newEntry(endpoint string, responseTimeMs float64, opts ...entryOpt) *models.LogEntry {
	entry := &models.LogEntry{
		Timestamp:         testBaseTime,
		Endpoint:          endpoint,
		Method:            "GET",
		ResponseTimeMs:    responseTimeMs,
		StatusCode:        200,
		UserID:            "user_1",
		RequestSizeBytes:  256,
		ResponseSizeBytes: 512,
	}
	for _, opt := range opts {
		opt(entry)
	}
	return entry
}

func newTestAccumulation(entries ...*models.LogEntry) *models.Accumulation {
	acc := models.NewAccumulation(models.WindowHour, testSizeTiers)
	for _, entry := range entries {
		acc.Add(entry)
	}
	return acc
}

func repeat(n int, build func(i int) *models.LogEntry) []*models.LogEntry {
	entries := make([]*models.LogEntry, 0, n)
	for i := 0; i < n; i++ {
		entries = append(entries, build(i))
	}
	return entries
}

func toRawRecord(e *models.LogEntry) models.RawRecord {
	return map[string]any{
		"timestamp":           e.Timestamp.Format(time.RFC3339),
		"endpoint":            e.Endpoint,
		"method":              e.Method,
		"response_time_ms":    json.Number(fmt.Sprintf("%g", e.ResponseTimeMs)),
		"status_code":         json.Number(fmt.Sprintf("%d", e.StatusCode)),
		"user_id":             e.UserID,
		"request_size_bytes":  json.Number(fmt.Sprintf("%g", e.RequestSizeBytes)),
		"response_size_bytes": json.Number(fmt.Sprintf("%g", e.ResponseSizeBytes)),
	}
}

// fixtureEntries is a mixed workload:
//   - /api/users: 450 requests, 405 GET, 4 errors, 200ms each (a high-confidence caching candidate)
//   - /api/slow: 10 requests averaging 1250ms (a high slow_endpoint issue)
//   - /api/flaky: 20 POST requests, 4 of them 500s (a critical high_error_rate issue)
func fixtureEntries() []*models.LogEntry {
	var entries []*models.LogEntry
	entries = append(entries, repeat(450, func(i int) *models.LogEntry {
		opts := []entryOpt{
			withUser(fmt.Sprintf("user_%d", i%7)),
			withTimestamp(testBaseTime.Add(time.Duration(i) * 20 * time.Second)),
		}
		if i%10 == 9 {
			opts = append(opts, withMethod("POST"))
		}
		if i%100 == 50 {
			opts = append(opts, withStatus(404))
		}
		return newEntry("/api/users", 200, opts...)
	})...)
	entries = append(entries, repeat(10, func(i int) *models.LogEntry {
		return newEntry("/api/slow", 1250, withResponseSize(2048), withUser("user_slow"),
			withTimestamp(testBaseTime.Add(time.Duration(i)*time.Hour/4)))
	})...)
	entries = append(entries, repeat(20, func(i int) *models.LogEntry {
		opts := []entryOpt{withMethod("POST"), withUser("user_flaky")}
		if i%5 == 0 {
			opts = append(opts, withStatus(500))
		}
		return newEntry("/api/flaky", 100, opts...)
	})...)
	return entries
}

func fixtureRecords() []models.RawRecord {
	entries := fixtureEntries()
	records := make([]models.RawRecord, 0, len(entries)+2)
	for i, entry := range entries {
		records = append(records, toRawRecord(entry))
		if i == 100 {
			missingStatus := toRawRecord(entry).(map[string]any)
			delete(missingStatus, "status_code")
			records = append(records, missingStatus)
		}
	}
	records = append(records, "not a record")
	return records
}
