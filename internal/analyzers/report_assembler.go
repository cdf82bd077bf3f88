package analyzers

import (
	"time"

	"api-log-analytics/internal/models"
)

//go:generate mockgen -source=report_assembler.go -destination=./mocks/report_assembler_mock.go -package=mocks
type ReportAssembler interface {
	// Assemble derives the full report of acc. It never fails: an empty accumulation yields a
	// zero report with empty lists.
	Assemble(acc *models.Accumulation) *models.Report
}

type reportAssembler struct {
	metricsDeriver        MetricsDeriver
	issueDetector         IssueDetector
	costEstimator         CostEstimator
	cacheAnalyzer         CacheAnalyzer
	recommendationBuilder RecommendationBuilder
}

func NewReportAssembler(
	metricsDeriver MetricsDeriver,
	issueDetector IssueDetector,
	costEstimator CostEstimator,
	cacheAnalyzer CacheAnalyzer,
	recommendationBuilder RecommendationBuilder,
) ReportAssembler {
	return &reportAssembler{
		metricsDeriver:        metricsDeriver,
		issueDetector:         issueDetector,
		costEstimator:         costEstimator,
		cacheAnalyzer:         cacheAnalyzer,
		recommendationBuilder: recommendationBuilder,
	}
}

// NewReportAssemblerFromConfig wires every stage from cfg.
func NewReportAssemblerFromConfig(cfg models.AnalysisConfig) ReportAssembler {
	return NewReportAssembler(
		NewMetricsDeriver(cfg.TopUsersLimit),
		NewIssueDetector(cfg.LatencyThresholdsMs, cfg.ErrorRateThresholds),
		NewCostEstimator(cfg.Pricing),
		NewCacheAnalyzer(cfg.Caching),
		NewRecommendationBuilder(),
	)
}

func (a *reportAssembler) Assemble(acc *models.Accumulation) *models.Report {
	startedAt := time.Now()
	if acc == nil {
		acc = models.NewAccumulation(models.WindowHour, models.DefaultAnalysisConfig().SizeTiers)
	}

	derived := a.metricsDeriver.Derive(acc)
	issues := a.issueDetector.Detect(derived.EndpointStats)
	costs := a.costEstimator.Estimate(acc)
	caching := a.cacheAnalyzer.Analyze(acc, derived.EndpointStats, costs)

	var invalid int64
	if acc.Global != nil {
		invalid = acc.Global.InvalidCount
	}

	report := &models.Report{
		Summary:               derived.Summary,
		EndpointStats:         derived.EndpointStats,
		PerformanceIssues:     issues,
		Recommendations:       a.recommendationBuilder.Build(caching.Opportunities, issues),
		HourlyDistribution:    derived.HourlyDistribution,
		TopUsersByRequests:    derived.TopUsers,
		CostAnalysis:          costs.Analysis(caching.TotalPotentialSavings.CostSavingsUSD),
		CachingOpportunities:  caching.Opportunities,
		TotalPotentialSavings: caching.TotalPotentialSavings,
		Meta:                  models.ReportMeta{InvalidLogs: invalid},
	}
	metricReportAssembleDurationSeconds.WithLabelValues().Observe(time.Since(startedAt).Seconds())
	return report
}
