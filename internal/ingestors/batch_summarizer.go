package ingestors

import (
	"context"
	"time"

	"api-log-analytics/internal/models"
	"api-log-analytics/internal/shared/loggers"

	"golang.org/x/sync/errgroup"
)

const (
	defaultShardSize  = 2500
	defaultMaxWorkers = 4
)

// BatchSummarizer reduces raw records into a single Accumulation, the compact form every
// downstream consumer works from. Records that fail normalization only bump the invalid count.
//
// Records are cut into contiguous shards that are normalized and accumulated concurrently,
// then merged in shard order. Merging in order keeps first-seen ordering (and therefore every
// tie-break) identical to a sequential pass over the same records.
//
//go:generate mockgen -source=batch_summarizer.go -destination=./mocks/batch_summarizer_mock.go -package=mocks
type BatchSummarizer interface {
	Summarize(ctx context.Context, records []models.RawRecord) (*models.Accumulation, error)
}

type BatchSummarizerOptions struct {
	WindowSize models.WindowSize
	SizeTiers  models.SizeTiers
	ShardSize  int
	MaxWorkers int
}

type batchSummarizer struct {
	normalizer RecordNormalizer
	opts       BatchSummarizerOptions
}

func NewBatchSummarizer(normalizer RecordNormalizer, opts BatchSummarizerOptions) BatchSummarizer {
	if opts.ShardSize <= 0 {
		opts.ShardSize = defaultShardSize
	}
	if opts.MaxWorkers <= 0 {
		opts.MaxWorkers = defaultMaxWorkers
	}
	return &batchSummarizer{normalizer: normalizer, opts: opts}
}

func (s *batchSummarizer) Summarize(ctx context.Context, records []models.RawRecord) (*models.Accumulation, error) {
	startedAt := time.Now()
	shardCount := (len(records) + s.opts.ShardSize - 1) / s.opts.ShardSize

	if shardCount <= 1 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		acc := s.summarizeShard(records)
		metricSummarizeDurationSeconds.WithLabelValues().Observe(time.Since(startedAt).Seconds())
		return acc, nil
	}

	partials := make([]*models.Accumulation, shardCount)
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(s.opts.MaxWorkers)

	for i := 0; i < shardCount; i++ {
		i := i
		start := i * s.opts.ShardSize
		end := min(start+s.opts.ShardSize, len(records))
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			partials[i] = s.summarizeShard(records[start:end])
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	result := s.newAccumulation()
	for _, partial := range partials {
		result.Merge(partial)
	}

	loggers.Ctx(ctx).Debug().
		Int(loggers.FieldShardCount, shardCount).
		Int64(loggers.FieldValidRecords, result.Global.ValidCount).
		Int64(loggers.FieldInvalidRecords, result.Global.InvalidCount).
		Msg("summarized sharded batch")
	metricSummarizeDurationSeconds.WithLabelValues().Observe(time.Since(startedAt).Seconds())
	return result, nil
}

func (s *batchSummarizer) summarizeShard(records []models.RawRecord) *models.Accumulation {
	acc := s.newAccumulation()
	for _, raw := range records {
		entry, err := s.normalizer.Normalize(raw)
		if err != nil {
			acc.AddInvalid()
			continue
		}
		acc.Add(entry)
	}
	return acc
}

func (s *batchSummarizer) newAccumulation() *models.Accumulation {
	return models.NewAccumulation(s.opts.WindowSize, s.opts.SizeTiers)
}
