package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTiers = SizeTiers{SmallBytes: 1024, LargeBytes: 10240}

func testEntries() []*LogEntry {
	base := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	return []*LogEntry{
		{Timestamp: base.Add(5 * time.Second), Endpoint: "/api/users", Method: "GET", ResponseTimeMs: 245, StatusCode: 200, UserID: "user_1", RequestSizeBytes: 512, ResponseSizeBytes: 1024},
		{Timestamp: base.Add(-3 * time.Hour), Endpoint: "/api/orders", Method: "POST", ResponseTimeMs: 1200, StatusCode: 500, UserID: "user_2", RequestSizeBytes: 2048, ResponseSizeBytes: 300},
		{Timestamp: base.Add(70 * time.Minute), Endpoint: "/api/users", Method: "GET", ResponseTimeMs: 80, StatusCode: 404, UserID: "user_2", RequestSizeBytes: 100, ResponseSizeBytes: 20000},
		{Timestamp: base.Add(2 * time.Minute), Endpoint: "/api/users", Method: "POST", ResponseTimeMs: 400, StatusCode: 201, UserID: "user_3", RequestSizeBytes: 100, ResponseSizeBytes: 10239},
		{Timestamp: base.Add(4 * time.Hour), Endpoint: "/api/search", Method: "GET", ResponseTimeMs: 50, StatusCode: 200, UserID: "user_1", RequestSizeBytes: 100, ResponseSizeBytes: 0},
	}
}

func accumulate(entries []*LogEntry, invalid int) *Accumulation {
	acc := NewAccumulation(WindowHour, testTiers)
	for _, e := range entries {
		acc.Add(e)
	}
	for i := 0; i < invalid; i++ {
		acc.AddInvalid()
	}
	return acc
}

func TestAccumulation_Add(t *testing.T) {
	t.Parallel()

	acc := accumulate(testEntries(), 2)

	global := acc.Global
	assert.Equal(t, int64(5), global.ValidCount)
	assert.Equal(t, int64(2), global.InvalidCount)
	assert.Equal(t, int64(7), acc.TotalRecords())
	assert.Equal(t, int64(2), global.ErrorCount)
	assert.InDelta(t, 1975.0, global.ResponseTimeSum, 1e-9)
	assert.Equal(t, time.Date(2025, 1, 15, 7, 0, 0, 0, time.UTC), global.TimestampMin)
	assert.Equal(t, time.Date(2025, 1, 15, 14, 0, 0, 0, time.UTC), global.TimestampMax)
	assert.Equal(t, []string{"10:00", "07:00", "11:00", "14:00"}, global.TimeBuckets.Keys())
	assert.Equal(t, int64(2), global.TimeBuckets.Get("10:00"))
	assert.Equal(t, []string{"user_1", "user_2", "user_3"}, global.Users.Keys())
	assert.Equal(t, TierCounts{2, 2, 1}, global.ResponseSizeTiers)

	assert.Equal(t, []string{"/api/users", "/api/orders", "/api/search"}, acc.EndpointOrder)

	users := acc.Endpoint("/api/users")
	require.NotNil(t, users)
	assert.Equal(t, int64(3), users.RequestCount)
	assert.Equal(t, 80.0, users.ResponseTimeMin)
	assert.Equal(t, 400.0, users.ResponseTimeMax)
	assert.Equal(t, int64(1), users.ErrorCount)
	assert.Equal(t, int64(2), users.GetCount())
	assert.Equal(t, []int{200, 404, 201}, users.StatusCodes.Keys())
	assert.Equal(t, TierCounts{0, 2, 1}, users.ResponseSizeTiers)

	assert.Nil(t, acc.Endpoint("/missing"))
}

func TestAccumulation_Empty(t *testing.T) {
	t.Parallel()

	acc := NewAccumulation(WindowHour, testTiers)

	assert.Equal(t, int64(0), acc.TotalRecords())
	assert.Empty(t, acc.EndpointOrder)
	assert.Equal(t, 0, acc.Global.Users.Len())
	assert.True(t, acc.Global.TimestampMin.IsZero())
}

func TestAccumulation_Merge_EqualsSinglePass(t *testing.T) {
	t.Parallel()

	entries := testEntries()
	whole := accumulate(entries, 3)

	for split := 0; split <= len(entries); split++ {
		left := accumulate(entries[:split], 1)
		right := accumulate(entries[split:], 2)
		left.Merge(right)

		assert.Equal(t, whole, left, "split at %d", split)
	}
}

func TestAccumulation_Merge_IsCommutativeOnStatistics(t *testing.T) {
	t.Parallel()

	entries := testEntries()
	ab := accumulate(entries[:2], 0)
	ab.Merge(accumulate(entries[2:], 1))

	ba := accumulate(entries[2:], 1)
	ba.Merge(accumulate(entries[:2], 0))

	assert.Equal(t, ab.Global.ValidCount, ba.Global.ValidCount)
	assert.Equal(t, ab.Global.InvalidCount, ba.Global.InvalidCount)
	assert.Equal(t, ab.Global.TimestampMin, ba.Global.TimestampMin)
	assert.Equal(t, ab.Global.TimestampMax, ba.Global.TimestampMax)
	assert.Equal(t, ab.Global.ResponseSizeTiers, ba.Global.ResponseSizeTiers)
	for _, name := range ab.EndpointOrder {
		assert.Equal(t, ab.Endpoints[name].RequestCount, ba.Endpoints[name].RequestCount)
		assert.Equal(t, ab.Endpoints[name].ResponseTimeMin, ba.Endpoints[name].ResponseTimeMin)
		assert.Equal(t, ab.Endpoints[name].ResponseTimeMax, ba.Endpoints[name].ResponseTimeMax)
		assert.Equal(t, ab.Endpoints[name].ErrorCount, ba.Endpoints[name].ErrorCount)
	}
}

func TestAccumulation_Merge_DoesNotAliasOther(t *testing.T) {
	t.Parallel()

	entries := testEntries()
	target := NewAccumulation(WindowHour, testTiers)
	partial := accumulate(entries[:1], 0)

	target.Merge(partial)
	target.Add(entries[0])

	assert.Equal(t, int64(1), partial.Endpoint("/api/users").RequestCount)
	assert.Equal(t, int64(2), target.Endpoint("/api/users").RequestCount)
}

func TestAccumulation_JSONRoundTripKeepsOrder(t *testing.T) {
	t.Parallel()

	acc := accumulate(testEntries(), 1)

	data, err := json.Marshal(acc)
	require.NoError(t, err)

	var decoded Accumulation
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, acc.EndpointOrder, decoded.EndpointOrder)
	assert.Equal(t, acc.Global.Users.Keys(), decoded.Global.Users.Keys())
	assert.Equal(t, acc.Endpoint("/api/users").StatusCodes.Keys(), decoded.Endpoint("/api/users").StatusCodes.Keys())
	assert.True(t, acc.Global.TimestampMin.Equal(decoded.Global.TimestampMin))
	assert.Equal(t, acc.Global.ResponseSizeTiers, decoded.Global.ResponseSizeTiers)

	// a decoded accumulation keeps accepting entries
	decoded.Add(testEntries()[0])
	assert.Equal(t, int64(6), decoded.Global.ValidCount)
}

func TestSizeTiers_Tier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		size     float64
		expected SizeTier
	}{
		{size: 0, expected: SizeTierSmall},
		{size: 1023, expected: SizeTierSmall},
		{size: 1024, expected: SizeTierMedium},
		{size: 10239, expected: SizeTierMedium},
		{size: 10240, expected: SizeTierLarge},
		{size: 1 << 20, expected: SizeTierLarge},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, testTiers.Tier(tt.size), "size %v", tt.size)
	}
}

func TestSeverityLadder_Classify(t *testing.T) {
	t.Parallel()

	ladder := SeverityLadder{Medium: 500, High: 1000, Critical: 2000}

	tests := []struct {
		value    float64
		expected Severity
		ok       bool
	}{
		{value: 0, ok: false},
		{value: 500, ok: false},
		{value: 500.01, expected: SeverityMedium, ok: true},
		{value: 1000, expected: SeverityMedium, ok: true},
		{value: 1250, expected: SeverityHigh, ok: true},
		{value: 2000, expected: SeverityHigh, ok: true},
		{value: 2000.5, expected: SeverityCritical, ok: true},
	}

	for _, tt := range tests {
		severity, ok := ladder.Classify(tt.value)
		assert.Equal(t, tt.ok, ok, "value %v", tt.value)
		assert.Equal(t, tt.expected, severity, "value %v", tt.value)
	}
}
