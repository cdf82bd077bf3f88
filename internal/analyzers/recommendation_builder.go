package analyzers

import (
	"fmt"
	"sort"
	"strconv"

	"api-log-analytics/internal/models"
)

//go:generate mockgen -source=recommendation_builder.go -destination=./mocks/recommendation_builder_mock.go -package=mocks
type RecommendationBuilder interface {
	// Build renders caching suggestions (in the given order), then slow endpoints and then
	// error-rate alerts, each group from critical to medium.
	Build(opportunities []models.CachingOpportunity, issues []models.PerformanceIssue) []string
}

type recommendationBuilder struct{}

func NewRecommendationBuilder() RecommendationBuilder {
	return &recommendationBuilder{}
}

func (b *recommendationBuilder) Build(opportunities []models.CachingOpportunity, issues []models.PerformanceIssue) []string {
	recommendations := make([]string, 0, len(opportunities)+len(issues))
	for _, opp := range opportunities {
		recommendations = append(recommendations, fmt.Sprintf("Consider caching for %s (%d requests, %d%% cache-hit potential)",
			opp.Endpoint, opp.CurrentRequests, opp.PotentialCacheHitRate))
	}

	for _, issue := range bySeverity(issues, models.IssueSlowEndpoint) {
		recommendations = append(recommendations, fmt.Sprintf("Investigate %s performance (avg %.0fms exceeds %sms threshold)",
			issue.Endpoint, valueOf(issue.AvgResponseTimeMs), strconv.FormatFloat(issue.Threshold, 'f', -1, 64)))
	}
	for _, issue := range bySeverity(issues, models.IssueHighErrorRate) {
		recommendations = append(recommendations, fmt.Sprintf("Alert: %s has %.1f%% error rate",
			issue.Endpoint, valueOf(issue.ErrorRatePercentage)))
	}
	return recommendations
}

// bySeverity returns the issues of issueType, most severe first, keeping detection order within a severity.
func bySeverity(issues []models.PerformanceIssue, issueType models.IssueType) []models.PerformanceIssue {
	out := make([]models.PerformanceIssue, 0, len(issues))
	for _, issue := range issues {
		if issue.Type == issueType {
			out = append(out, issue)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Severity.Rank() < out[j].Severity.Rank()
	})
	return out
}

func valueOf(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
