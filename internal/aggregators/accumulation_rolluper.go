package aggregators

import (
	"errors"
	"fmt"

	"api-log-analytics/internal/events"
	"api-log-analytics/internal/models"
)

//go:generate mockgen -source=accumulation_rolluper.go -destination=./mocks/accumulation_rolluper_mock.go -package=mocks
type AccumulationRolluper interface {
	// Rollup mutates agg by merging the partial accumulation carried by partial.
	Rollup(agg *models.DatasetAccumulation, partial *events.PartialAccumulationEvent) error
}

type accumulationRolluper struct{}

func NewAccumulationRolluper() AccumulationRolluper {
	return &accumulationRolluper{}
}

func (a *accumulationRolluper) Rollup(agg *models.DatasetAccumulation, partial *events.PartialAccumulationEvent) error {
	if partial.Accumulation == nil {
		return errors.New("partial accumulation is missing")
	}
	if agg.Accumulation == nil {
		agg.Accumulation = models.NewAccumulation(partial.Accumulation.WindowSize, partial.Accumulation.SizeTiers)
	}

	// Validate that identity fields match
	if agg.DatasetID != partial.DatasetID {
		return fmt.Errorf("datasetID mismatch: agg=%q, partial=%q", agg.DatasetID, partial.DatasetID)
	}
	if agg.Accumulation.WindowSize != partial.Accumulation.WindowSize {
		return fmt.Errorf("windowSize mismatch: agg=%q, partial=%q", agg.Accumulation.WindowSize, partial.Accumulation.WindowSize)
	}
	if agg.Accumulation.SizeTiers != partial.Accumulation.SizeTiers {
		return fmt.Errorf("sizeTiers mismatch: agg=%+v, partial=%+v", agg.Accumulation.SizeTiers, partial.Accumulation.SizeTiers)
	}

	agg.Accumulation.Merge(partial.Accumulation)
	agg.BatchCount++
	if partial.ProducedAt.After(agg.UpdatedAt) {
		agg.UpdatedAt = partial.ProducedAt
	}

	return nil
}
