package analyzers

import (
	"api-log-analytics/internal/models"
)

// DerivedMetrics is the statistics part of a report, read straight off an accumulation.
type DerivedMetrics struct {
	Summary            models.Summary
	EndpointStats      []models.EndpointStat
	HourlyDistribution map[string]int64
	TopUsers           []models.UserRequestCount
}

//go:generate mockgen -source=metrics_deriver.go -destination=./mocks/metrics_deriver_mock.go -package=mocks
type MetricsDeriver interface {
	Derive(acc *models.Accumulation) *DerivedMetrics
}

type metricsDeriver struct {
	topUsersLimit int
}

func NewMetricsDeriver(topUsersLimit int) MetricsDeriver {
	return &metricsDeriver{topUsersLimit: topUsersLimit}
}

func (d *metricsDeriver) Derive(acc *models.Accumulation) *DerivedMetrics {
	global := acc.Global
	if global == nil {
		global = models.NewGlobalAccumulator()
	}

	summary := models.Summary{
		TotalRequests:       global.ValidCount,
		AvgResponseTimeMs:   roundTo(ratio(global.ResponseTimeSum, float64(global.ValidCount)), placesAverage),
		ErrorRatePercentage: errorRate(global.ErrorCount, global.ValidCount),
	}
	if global.ValidCount > 0 {
		summary.TimeRange = &models.TimeRange{Start: global.TimestampMin.UTC(), End: global.TimestampMax.UTC()}
	}

	stats := make([]models.EndpointStat, 0, len(acc.EndpointOrder))
	for _, name := range acc.EndpointOrder {
		ep := acc.Endpoint(name)
		if ep == nil || ep.RequestCount == 0 {
			continue
		}
		stats = append(stats, endpointStat(name, ep))
	}

	hourly := make(map[string]int64)
	if global.TimeBuckets != nil {
		for _, label := range global.TimeBuckets.Keys() {
			hourly[label] = global.TimeBuckets.Get(label)
		}
	}

	topUsers := make([]models.UserRequestCount, 0, d.topUsersLimit)
	if global.Users != nil {
		for _, userID := range global.Users.Top(d.topUsersLimit) {
			topUsers = append(topUsers, models.UserRequestCount{UserID: userID, RequestCount: global.Users.Get(userID)})
		}
	}

	return &DerivedMetrics{
		Summary:            summary,
		EndpointStats:      stats,
		HourlyDistribution: hourly,
		TopUsers:           topUsers,
	}
}

func endpointStat(name string, ep *models.EndpointAccumulator) models.EndpointStat {
	stat := models.EndpointStat{
		Endpoint:            name,
		RequestCount:        ep.RequestCount,
		AvgResponseTimeMs:   roundTo(ratio(ep.ResponseTimeSum, float64(ep.RequestCount)), placesAverage),
		SlowestRequestMs:    ep.ResponseTimeMax,
		FastestRequestMs:    ep.ResponseTimeMin,
		ErrorCount:          ep.ErrorCount,
		ErrorRatePercentage: errorRate(ep.ErrorCount, ep.RequestCount),
	}
	if ep.StatusCodes != nil {
		stat.MostCommonStatus, _ = ep.StatusCodes.Mode()
	}
	return stat
}

func errorRate(errorCount, total int64) float64 {
	return roundTo(ratio(float64(errorCount), float64(total))*100, placesRate)
}
