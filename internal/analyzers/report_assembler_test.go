package analyzers

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"api-log-analytics/internal/ingestors"
	"api-log-analytics/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSummarizer(shardSize int) ingestors.BatchSummarizer {
	return ingestors.NewBatchSummarizer(ingestors.NewRecordNormalizer(), ingestors.BatchSummarizerOptions{
		WindowSize: models.WindowHour,
		SizeTiers:  testSizeTiers,
		ShardSize:  shardSize,
		MaxWorkers: 4,
	})
}

func assembleRecords(t *testing.T, records []models.RawRecord) *models.Report {
	t.Helper()
	acc, err := newTestSummarizer(0).Summarize(context.Background(), records)
	require.NoError(t, err)
	return NewReportAssemblerFromConfig(testConfig).Assemble(acc)
}

func TestReportAssembler_Assemble_Fixture(t *testing.T) {
	t.Parallel()

	records := fixtureRecords()
	report := assembleRecords(t, records)

	// summary
	assert.Equal(t, int64(480), report.Summary.TotalRequests)
	assert.Equal(t, int64(2), report.Meta.InvalidLogs)
	assert.Equal(t, int64(len(records)), report.Summary.TotalRequests+report.Meta.InvalidLogs)
	assert.Equal(t, 217.71, report.Summary.AvgResponseTimeMs)
	assert.Equal(t, 1.7, report.Summary.ErrorRatePercentage)
	require.NotNil(t, report.Summary.TimeRange)
	assert.Equal(t, testBaseTime, report.Summary.TimeRange.Start)
	assert.Equal(t, time.Date(2025, 1, 15, 12, 29, 40, 0, time.UTC), report.Summary.TimeRange.End)

	// endpoint stats, in first-seen order
	require.Len(t, report.EndpointStats, 3)
	assert.Equal(t, models.EndpointStat{
		Endpoint:            "/api/users",
		RequestCount:        450,
		AvgResponseTimeMs:   200,
		SlowestRequestMs:    200,
		FastestRequestMs:    200,
		ErrorCount:          4,
		ErrorRatePercentage: 0.9,
		MostCommonStatus:    200,
	}, report.EndpointStats[0])
	assert.Equal(t, "/api/slow", report.EndpointStats[1].Endpoint)
	assert.Equal(t, 1250.0, report.EndpointStats[1].AvgResponseTimeMs)
	assert.Equal(t, "/api/flaky", report.EndpointStats[2].Endpoint)
	assert.Equal(t, 20.0, report.EndpointStats[2].ErrorRatePercentage)

	// issues
	require.Len(t, report.PerformanceIssues, 2)
	slow := report.PerformanceIssues[0]
	assert.Equal(t, models.IssueSlowEndpoint, slow.Type)
	assert.Equal(t, "/api/slow", slow.Endpoint)
	assert.Equal(t, models.SeverityHigh, slow.Severity)
	assert.Equal(t, 500.0, slow.Threshold)
	require.NotNil(t, slow.AvgResponseTimeMs)
	assert.Nil(t, slow.ErrorRatePercentage)
	flaky := report.PerformanceIssues[1]
	assert.Equal(t, models.IssueHighErrorRate, flaky.Type)
	assert.Equal(t, "/api/flaky", flaky.Endpoint)
	assert.Equal(t, models.SeverityCritical, flaky.Severity)
	assert.Equal(t, 5.0, flaky.Threshold)
	require.NotNil(t, flaky.ErrorRatePercentage)
	assert.Equal(t, 20.0, *flaky.ErrorRatePercentage)

	// distribution and users
	assert.Equal(t, map[string]int64{"10:00": 204, "11:00": 184, "12:00": 92}, report.HourlyDistribution)
	assert.Equal(t, []models.UserRequestCount{
		{UserID: "user_0", RequestCount: 65},
		{UserID: "user_1", RequestCount: 65},
		{UserID: "user_2", RequestCount: 64},
		{UserID: "user_3", RequestCount: 64},
		{UserID: "user_4", RequestCount: 64},
	}, report.TopUsersByRequests)

	// caching
	require.Len(t, report.CachingOpportunities, 1)
	assert.Equal(t, models.CachingOpportunity{
		Endpoint:                 "/api/users",
		PotentialCacheHitRate:    75,
		CurrentRequests:          450,
		PotentialRequestsSaved:   338,
		EstimatedCostSavingsUSD:  0.17,
		RecommendedTTLMinutes:    15,
		RecommendationConfidence: models.ConfidenceHigh,
	}, report.CachingOpportunities[0])
	assert.Equal(t, models.PotentialSavings{
		RequestsEliminated:       338,
		CostSavingsUSD:           0.17,
		PerformanceImprovementMs: 67600,
	}, report.TotalPotentialSavings)

	// costs
	assert.Equal(t, 0.26, report.CostAnalysis.TotalCostUSD)
	assert.Equal(t, models.CostBreakdown{RequestCosts: 0.05, ExecutionCosts: 0.21, MemoryCosts: 0.01}, report.CostAnalysis.CostBreakdown)
	assert.Equal(t, 0.17, report.CostAnalysis.OptimizationPotentialUSD)
	assert.Len(t, report.CostAnalysis.CostByEndpoint, 3)

	assert.Equal(t, []string{
		"Consider caching for /api/users (450 requests, 75% cache-hit potential)",
		"Investigate /api/slow performance (avg 1250ms exceeds 500ms threshold)",
		"Alert: /api/flaky has 20.0% error rate",
	}, report.Recommendations)
}

func TestReportAssembler_Assemble_Bounds(t *testing.T) {
	t.Parallel()

	report := assembleRecords(t, fixtureRecords())

	assert.GreaterOrEqual(t, report.Summary.ErrorRatePercentage, 0.0)
	assert.LessOrEqual(t, report.Summary.ErrorRatePercentage, 100.0)
	var sum int64
	for _, stat := range report.EndpointStats {
		assert.GreaterOrEqual(t, stat.ErrorRatePercentage, 0.0)
		assert.LessOrEqual(t, stat.ErrorRatePercentage, 100.0)
		assert.LessOrEqual(t, stat.FastestRequestMs, stat.AvgResponseTimeMs)
		assert.LessOrEqual(t, stat.AvgResponseTimeMs, stat.SlowestRequestMs)
		sum += stat.RequestCount
	}
	assert.Equal(t, report.Summary.TotalRequests, sum)

	var hourly int64
	for _, count := range report.HourlyDistribution {
		hourly += count
	}
	assert.Equal(t, report.Summary.TotalRequests, hourly)

	for _, opp := range report.CachingOpportunities {
		assert.LessOrEqual(t, opp.PotentialCacheHitRate, int64(95))
		assert.LessOrEqual(t, opp.PotentialRequestsSaved, opp.CurrentRequests)
	}
}

func TestReportAssembler_Assemble_Idempotent(t *testing.T) {
	t.Parallel()

	records := fixtureRecords()
	first, err := json.Marshal(assembleRecords(t, records))
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := json.Marshal(assembleRecords(t, records))
		require.NoError(t, err)
		assert.Equal(t, string(first), string(again))
	}
}

func TestReportAssembler_Assemble_ShardingDoesNotChangeReport(t *testing.T) {
	t.Parallel()

	records := fixtureRecords()
	ctx := context.Background()
	assembler := NewReportAssemblerFromConfig(testConfig)

	sequential, err := newTestSummarizer(len(records)).Summarize(ctx, records)
	require.NoError(t, err)
	expected, err := json.Marshal(assembler.Assemble(sequential))
	require.NoError(t, err)

	for _, shardSize := range []int{1, 17, 100, 481} {
		acc, err := newTestSummarizer(shardSize).Summarize(ctx, records)
		require.NoError(t, err)
		actual, err := json.Marshal(assembler.Assemble(acc))
		require.NoError(t, err)
		assert.JSONEq(t, string(expected), string(actual), "shard size %d", shardSize)
	}
}

func TestReportAssembler_Assemble_MergedBatchesMatchSinglePass(t *testing.T) {
	t.Parallel()

	records := fixtureRecords()
	ctx := context.Background()
	summarizer := newTestSummarizer(0)
	assembler := NewReportAssemblerFromConfig(testConfig)

	whole, err := summarizer.Summarize(ctx, records)
	require.NoError(t, err)

	for _, split := range []int{0, 1, 200, 481, len(records)} {
		left, err := summarizer.Summarize(ctx, records[:split])
		require.NoError(t, err)
		right, err := summarizer.Summarize(ctx, records[split:])
		require.NoError(t, err)
		left.Merge(right)

		expected, err := json.Marshal(assembler.Assemble(whole))
		require.NoError(t, err)
		actual, err := json.Marshal(assembler.Assemble(left))
		require.NoError(t, err)
		assert.JSONEq(t, string(expected), string(actual), "split at %d", split)
	}
}

func TestReportAssembler_Assemble_Empty(t *testing.T) {
	t.Parallel()

	report := assembleRecords(t, []models.RawRecord{})

	assert.Equal(t, int64(0), report.Summary.TotalRequests)
	assert.Nil(t, report.Summary.TimeRange)
	assert.Equal(t, int64(0), report.Meta.InvalidLogs)
	assert.Equal(t, 0.0, report.CostAnalysis.TotalCostUSD)

	data, err := json.Marshal(report)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	summary := decoded["summary"].(map[string]any)
	assert.Contains(t, summary, "time_range")
	assert.Nil(t, summary["time_range"])
	for _, key := range []string{"endpoint_stats", "performance_issues", "recommendations", "top_users_by_requests", "caching_opportunities"} {
		assert.Equal(t, []any{}, decoded[key], key)
	}
	assert.Equal(t, map[string]any{}, decoded["hourly_distribution"])
	assert.Equal(t, []any{}, decoded["cost_analysis"].(map[string]any)["cost_by_endpoint"])
}

func TestReportAssembler_Assemble_NilAccumulation(t *testing.T) {
	t.Parallel()

	report := NewReportAssemblerFromConfig(testConfig).Assemble(nil)
	require.NotNil(t, report)
	assert.Equal(t, int64(0), report.Summary.TotalRequests)
	assert.NotNil(t, report.Recommendations)
}

func TestReportAssembler_Assemble_SingleEntry(t *testing.T) {
	t.Parallel()

	report := assembleRecords(t, []models.RawRecord{toRawRecord(newEntry("/api/users", 245))})

	assert.Equal(t, int64(1), report.Summary.TotalRequests)
	assert.Equal(t, 245.0, report.Summary.AvgResponseTimeMs)
	assert.Equal(t, 0.0, report.Summary.ErrorRatePercentage)
	require.Len(t, report.EndpointStats, 1)
	assert.Equal(t, 200, report.EndpointStats[0].MostCommonStatus)
	assert.Empty(t, report.PerformanceIssues)
	assert.Empty(t, report.CachingOpportunities)
	assert.Empty(t, report.Recommendations)
	assert.Equal(t, map[string]int64{"10:00": 1}, report.HourlyDistribution)
}

func TestReportAssembler_Assemble_MissingStatusCodeIsInvalid(t *testing.T) {
	t.Parallel()

	valid := toRawRecord(newEntry("/api/users", 245))
	missing := toRawRecord(newEntry("/api/users", 300)).(map[string]any)
	delete(missing, "status_code")

	report := assembleRecords(t, []models.RawRecord{valid, missing})

	assert.Equal(t, int64(1), report.Summary.TotalRequests)
	assert.Equal(t, int64(1), report.Meta.InvalidLogs)
	assert.Equal(t, 245.0, report.Summary.AvgResponseTimeMs)
}
