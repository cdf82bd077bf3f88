package analyzers

import (
	"math"
	"sort"

	"api-log-analytics/internal/models"

	"github.com/shopspring/decimal"
)

// CachingAnalysis lists the caching candidates, highest projected savings first.
type CachingAnalysis struct {
	Opportunities         []models.CachingOpportunity
	TotalPotentialSavings models.PotentialSavings
}

//go:generate mockgen -source=cache_analyzer.go -destination=./mocks/cache_analyzer_mock.go -package=mocks
type CacheAnalyzer interface {
	Analyze(acc *models.Accumulation, stats []models.EndpointStat, costs *CostEstimate) *CachingAnalysis
}

type cacheAnalyzer struct {
	policy models.CachingPolicy
}

func NewCacheAnalyzer(policy models.CachingPolicy) CacheAnalyzer {
	return &cacheAnalyzer{policy: policy}
}

func (c *cacheAnalyzer) Analyze(acc *models.Accumulation, stats []models.EndpointStat, costs *CostEstimate) *CachingAnalysis {
	opportunities := make([]models.CachingOpportunity, 0)
	savedTotal := int64(0)
	savingsTotal := decimal.Zero
	improvementMs := 0.0

	for _, stat := range stats {
		ep := acc.Endpoint(stat.Endpoint)
		if ep == nil || ep.RequestCount == 0 {
			continue
		}
		getRatio := ratio(float64(ep.GetCount()), float64(ep.RequestCount))
		if !c.qualifies(ep.RequestCount, getRatio, stat.ErrorRatePercentage) {
			continue
		}

		hitRate := c.hitRate(ep.RequestCount, getRatio)
		saved := int64(roundTo(float64(ep.RequestCount)*float64(hitRate)/100, 0))
		savings := decimal.NewFromInt(saved).Mul(costs.CostPerRequest(stat.Endpoint)).Round(placesMoney)

		opportunities = append(opportunities, models.CachingOpportunity{
			Endpoint:                 stat.Endpoint,
			PotentialCacheHitRate:    hitRate,
			CurrentRequests:          ep.RequestCount,
			PotentialRequestsSaved:   saved,
			EstimatedCostSavingsUSD:  savings.InexactFloat64(),
			RecommendedTTLMinutes:    c.ttlMinutes(ep.RequestCount, stat.ErrorRatePercentage),
			RecommendationConfidence: c.confidence(ep.RequestCount, getRatio, stat.ErrorRatePercentage),
		})

		savedTotal += saved
		savingsTotal = savingsTotal.Add(savings)
		improvementMs += float64(saved) * ratio(ep.ResponseTimeSum, float64(ep.RequestCount))
	}

	sort.SliceStable(opportunities, func(i, j int) bool {
		return opportunities[i].EstimatedCostSavingsUSD > opportunities[j].EstimatedCostSavingsUSD
	})

	return &CachingAnalysis{
		Opportunities: opportunities,
		TotalPotentialSavings: models.PotentialSavings{
			RequestsEliminated:       savedTotal,
			CostSavingsUSD:           roundDecimal(savingsTotal, placesMoney),
			PerformanceImprovementMs: roundTo(improvementMs, placesAverage),
		},
	}
}

func (c *cacheAnalyzer) qualifies(count int64, getRatio, errorRatePct float64) bool {
	return count > c.policy.MinRequests &&
		getRatio > c.policy.MinGetRatio &&
		errorRatePct < c.policy.MaxErrorRatePct
}

// hitRate grows with the GET ratio and, up to VolumeSaturationRequests, with volume.
func (c *cacheAnalyzer) hitRate(count int64, getRatio float64) int64 {
	volume := math.Min(1, float64(count)/float64(c.policy.VolumeSaturationRequests))
	share := c.policy.BaseHitShare + (1-c.policy.BaseHitShare)*volume
	rate := roundTo(getRatio*100*share, 0)
	return int64(math.Min(c.policy.MaxHitRatePct, rate))
}

func (c *cacheAnalyzer) ttlMinutes(count int64, errorRatePct float64) int {
	switch {
	case errorRatePct >= c.policy.ShortTTLErrorRatePct:
		return c.policy.ShortTTLMinutes
	case count >= c.policy.LongTTLMinRequests:
		return c.policy.LongTTLMinutes
	default:
		return c.policy.DefaultTTLMinutes
	}
}

func (c *cacheAnalyzer) confidence(count int64, getRatio, errorRatePct float64) models.Confidence {
	minRequests := float64(c.policy.MinRequests) * c.policy.HighConfidenceRequestFactor
	if float64(count) > minRequests &&
		getRatio >= c.policy.HighConfidenceGetRatio &&
		errorRatePct <= c.policy.HighConfidenceMaxErrorRatePct {
		return models.ConfidenceHigh
	}
	return models.ConfidenceMedium
}
