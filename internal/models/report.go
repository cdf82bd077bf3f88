package models

import "time"

type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
)

// Rank orders severities from most to least urgent; unknown severities sort last.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 0
	case SeverityHigh:
		return 1
	case SeverityMedium:
		return 2
	default:
		return 3
	}
}

type IssueType string

const (
	IssueSlowEndpoint  IssueType = "slow_endpoint"
	IssueHighErrorRate IssueType = "high_error_rate"
)

type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
)

// Report is the analytics report of a set of API log records.
type Report struct {
	Summary               Summary              `json:"summary"`
	EndpointStats         []EndpointStat       `json:"endpoint_stats"`
	PerformanceIssues     []PerformanceIssue   `json:"performance_issues"`
	Recommendations       []string             `json:"recommendations"`
	HourlyDistribution    map[string]int64     `json:"hourly_distribution"`
	TopUsersByRequests    []UserRequestCount   `json:"top_users_by_requests"`
	CostAnalysis          CostAnalysis         `json:"cost_analysis"`
	CachingOpportunities  []CachingOpportunity `json:"caching_opportunities"`
	TotalPotentialSavings PotentialSavings     `json:"total_potential_savings"`
	Meta                  ReportMeta           `json:"meta"`
}

type Summary struct {
	TotalRequests       int64      `json:"total_requests"`
	TimeRange           *TimeRange `json:"time_range"`
	AvgResponseTimeMs   float64    `json:"avg_response_time_ms"`
	ErrorRatePercentage float64    `json:"error_rate_percentage"`
}

type TimeRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type EndpointStat struct {
	Endpoint            string  `json:"endpoint"`
	RequestCount        int64   `json:"request_count"`
	AvgResponseTimeMs   float64 `json:"avg_response_time_ms"`
	SlowestRequestMs    float64 `json:"slowest_request_ms"`
	FastestRequestMs    float64 `json:"fastest_request_ms"`
	ErrorCount          int64   `json:"error_count"`
	ErrorRatePercentage float64 `json:"error_rate_percentage"`
	MostCommonStatus    int     `json:"most_common_status"`
}

// PerformanceIssue carries exactly one of AvgResponseTimeMs (slow_endpoint) or
// ErrorRatePercentage (high_error_rate). Threshold is the lowest step of the ladder
// that was crossed.
type PerformanceIssue struct {
	Type                IssueType `json:"type"`
	Endpoint            string    `json:"endpoint"`
	AvgResponseTimeMs   *float64  `json:"avg_response_time_ms,omitempty"`
	ErrorRatePercentage *float64  `json:"error_rate_percentage,omitempty"`
	Threshold           float64   `json:"threshold"`
	Severity            Severity  `json:"severity"`
}

type UserRequestCount struct {
	UserID       string `json:"user_id"`
	RequestCount int64  `json:"request_count"`
}

type CostAnalysis struct {
	TotalCostUSD             float64        `json:"total_cost_usd"`
	CostBreakdown            CostBreakdown  `json:"cost_breakdown"`
	CostByEndpoint           []EndpointCost `json:"cost_by_endpoint"`
	OptimizationPotentialUSD float64        `json:"optimization_potential_usd"`
}

type CostBreakdown struct {
	RequestCosts   float64 `json:"request_costs"`
	ExecutionCosts float64 `json:"execution_costs"`
	MemoryCosts    float64 `json:"memory_costs"`
}

type EndpointCost struct {
	Endpoint       string  `json:"endpoint"`
	TotalCost      float64 `json:"total_cost"`
	CostPerRequest float64 `json:"cost_per_request"`
}

type CachingOpportunity struct {
	Endpoint                 string     `json:"endpoint"`
	PotentialCacheHitRate    int64      `json:"potential_cache_hit_rate"`
	CurrentRequests          int64      `json:"current_requests"`
	PotentialRequestsSaved   int64      `json:"potential_requests_saved"`
	EstimatedCostSavingsUSD  float64    `json:"estimated_cost_savings_usd"`
	RecommendedTTLMinutes    int        `json:"recommended_ttl_minutes"`
	RecommendationConfidence Confidence `json:"recommendation_confidence"`
}

type PotentialSavings struct {
	RequestsEliminated       int64   `json:"requests_eliminated"`
	CostSavingsUSD           float64 `json:"cost_savings_usd"`
	PerformanceImprovementMs float64 `json:"performance_improvement_ms"`
}

type ReportMeta struct {
	InvalidLogs int64 `json:"invalid_logs"`
}
