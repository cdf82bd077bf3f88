package analyzers

import (
	"api-log-analytics/internal/models"
)

//go:generate mockgen -source=issue_detector.go -destination=./mocks/issue_detector_mock.go -package=mocks
type IssueDetector interface {
	// Detect classifies every endpoint against the latency and error-rate ladders.
	// Issues come in endpoint order, a slow_endpoint issue before a high_error_rate one.
	Detect(stats []models.EndpointStat) []models.PerformanceIssue
}

type issueDetector struct {
	latencyThresholdsMs models.SeverityLadder
	errorRateThresholds models.SeverityLadder
}

func NewIssueDetector(latencyThresholdsMs, errorRateThresholds models.SeverityLadder) IssueDetector {
	return &issueDetector{
		latencyThresholdsMs: latencyThresholdsMs,
		errorRateThresholds: errorRateThresholds,
	}
}

func (d *issueDetector) Detect(stats []models.EndpointStat) []models.PerformanceIssue {
	issues := make([]models.PerformanceIssue, 0)
	for _, stat := range stats {
		if severity, ok := d.latencyThresholdsMs.Classify(stat.AvgResponseTimeMs); ok {
			avg := stat.AvgResponseTimeMs
			issues = append(issues, models.PerformanceIssue{
				Type:              models.IssueSlowEndpoint,
				Endpoint:          stat.Endpoint,
				AvgResponseTimeMs: &avg,
				Threshold:         d.latencyThresholdsMs.Medium,
				Severity:          severity,
			})
		}
		if severity, ok := d.errorRateThresholds.Classify(stat.ErrorRatePercentage); ok {
			rate := stat.ErrorRatePercentage
			issues = append(issues, models.PerformanceIssue{
				Type:                models.IssueHighErrorRate,
				Endpoint:            stat.Endpoint,
				ErrorRatePercentage: &rate,
				Threshold:           d.errorRateThresholds.Medium,
				Severity:            severity,
			})
		}
	}
	return issues
}
