package analyzers

import (
	"api-log-analytics/internal/models"

	"github.com/shopspring/decimal"
)

// CostEstimate is the priced view of an accumulation. Amounts are kept as exact decimals
// and only rounded when placed into a report.
type CostEstimate struct {
	RequestCosts   decimal.Decimal
	ExecutionCosts decimal.Decimal
	MemoryCosts    decimal.Decimal
	Endpoints      []EndpointCostEstimate
}

type EndpointCostEstimate struct {
	Endpoint       string
	TotalCost      decimal.Decimal
	CostPerRequest decimal.Decimal
}

func (e *CostEstimate) Total() decimal.Decimal {
	return e.RequestCosts.Add(e.ExecutionCosts).Add(e.MemoryCosts)
}

// CostPerRequest returns the unrounded cost per request of endpoint, zero when unknown.
func (e *CostEstimate) CostPerRequest(endpoint string) decimal.Decimal {
	for _, ep := range e.Endpoints {
		if ep.Endpoint == endpoint {
			return ep.CostPerRequest
		}
	}
	return decimal.Zero
}

// Analysis places the estimate into the report block. optimizationPotentialUSD is the
// projected caching savings.
func (e *CostEstimate) Analysis(optimizationPotentialUSD float64) models.CostAnalysis {
	byEndpoint := make([]models.EndpointCost, 0, len(e.Endpoints))
	for _, ep := range e.Endpoints {
		byEndpoint = append(byEndpoint, models.EndpointCost{
			Endpoint:       ep.Endpoint,
			TotalCost:      roundDecimal(ep.TotalCost, placesMoney),
			CostPerRequest: roundDecimal(ep.CostPerRequest, placesPerUnit),
		})
	}
	return models.CostAnalysis{
		TotalCostUSD: roundDecimal(e.Total(), placesMoney),
		CostBreakdown: models.CostBreakdown{
			RequestCosts:   roundDecimal(e.RequestCosts, placesMoney),
			ExecutionCosts: roundDecimal(e.ExecutionCosts, placesMoney),
			MemoryCosts:    roundDecimal(e.MemoryCosts, placesMoney),
		},
		CostByEndpoint:           byEndpoint,
		OptimizationPotentialUSD: roundTo(optimizationPotentialUSD, placesMoney),
	}
}

//go:generate mockgen -source=cost_estimator.go -destination=./mocks/cost_estimator_mock.go -package=mocks
type CostEstimator interface {
	Estimate(acc *models.Accumulation) *CostEstimate
}

type costEstimator struct {
	pricing models.Pricing
}

func NewCostEstimator(pricing models.Pricing) CostEstimator {
	return &costEstimator{pricing: pricing}
}

func (c *costEstimator) Estimate(acc *models.Accumulation) *CostEstimate {
	estimate := &CostEstimate{
		RequestCosts:   decimal.Zero,
		ExecutionCosts: decimal.Zero,
		MemoryCosts:    decimal.Zero,
		Endpoints:      make([]EndpointCostEstimate, 0, len(acc.EndpointOrder)),
	}
	if acc.Global != nil {
		estimate.RequestCosts = c.requestCosts(acc.Global.ValidCount)
		estimate.ExecutionCosts = c.executionCosts(acc.Global.ResponseTimeSum)
		estimate.MemoryCosts = c.memoryCosts(acc.Global.ResponseSizeTiers)
	}

	for _, name := range acc.EndpointOrder {
		ep := acc.Endpoint(name)
		if ep == nil || ep.RequestCount == 0 {
			continue
		}
		total := c.requestCosts(ep.RequestCount).
			Add(c.executionCosts(ep.ResponseTimeSum)).
			Add(c.memoryCosts(ep.ResponseSizeTiers))
		estimate.Endpoints = append(estimate.Endpoints, EndpointCostEstimate{
			Endpoint:       name,
			TotalCost:      total,
			CostPerRequest: total.Div(decimal.NewFromInt(ep.RequestCount)),
		})
	}
	return estimate
}

func (c *costEstimator) requestCosts(count int64) decimal.Decimal {
	return decimal.NewFromFloat(c.pricing.RequestUSD).Mul(decimal.NewFromInt(count))
}

func (c *costEstimator) executionCosts(responseTimeSumMs float64) decimal.Decimal {
	return decimal.NewFromFloat(c.pricing.ExecutionPerMsUSD).Mul(decimal.NewFromFloat(responseTimeSumMs))
}

func (c *costEstimator) memoryCosts(tiers models.TierCounts) decimal.Decimal {
	total := decimal.Zero
	for tier, count := range tiers {
		price := decimal.NewFromFloat(c.pricing.MemoryUSD(models.SizeTier(tier)))
		total = total.Add(price.Mul(decimal.NewFromInt(count)))
	}
	return total
}
