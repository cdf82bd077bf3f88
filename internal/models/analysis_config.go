package models

// SizeTier buckets a response by its size for memory pricing.
type SizeTier int

const (
	SizeTierSmall SizeTier = iota
	SizeTierMedium
	SizeTierLarge

	sizeTierCount
)

// SizeTiers holds the response-size boundaries in bytes.
// size < SmallBytes is small, size < LargeBytes is medium, everything else is large.
type SizeTiers struct {
	SmallBytes float64 `mapstructure:"small_bytes" json:"smallBytes" validate:"gt=0"`
	LargeBytes float64 `mapstructure:"large_bytes" json:"largeBytes" validate:"gtfield=SmallBytes"`
}

func (t SizeTiers) Tier(sizeBytes float64) SizeTier {
	switch {
	case sizeBytes < t.SmallBytes:
		return SizeTierSmall
	case sizeBytes < t.LargeBytes:
		return SizeTierMedium
	default:
		return SizeTierLarge
	}
}

// TierCounts is a per-tier request histogram indexed by SizeTier.
type TierCounts [sizeTierCount]int64

// Pricing is the fixed cost model, in USD.
type Pricing struct {
	RequestUSD        float64 `mapstructure:"request_usd" validate:"gte=0"`
	ExecutionPerMsUSD float64 `mapstructure:"execution_per_ms_usd" validate:"gte=0"`
	MemorySmallUSD    float64 `mapstructure:"memory_small_usd" validate:"gte=0"`
	MemoryMediumUSD   float64 `mapstructure:"memory_medium_usd" validate:"gte=0"`
	MemoryLargeUSD    float64 `mapstructure:"memory_large_usd" validate:"gte=0"`
}

// MemoryUSD returns the memory price of one request in the given tier.
func (p Pricing) MemoryUSD(tier SizeTier) float64 {
	switch tier {
	case SizeTierSmall:
		return p.MemorySmallUSD
	case SizeTierMedium:
		return p.MemoryMediumUSD
	default:
		return p.MemoryLargeUSD
	}
}

// SeverityLadder is an ordered set of thresholds; the highest one strictly exceeded wins.
type SeverityLadder struct {
	Medium   float64 `mapstructure:"medium" validate:"gt=0"`
	High     float64 `mapstructure:"high" validate:"gtfield=Medium"`
	Critical float64 `mapstructure:"critical" validate:"gtfield=High"`
}

// Classify returns the severity for value, or false when it does not exceed Medium.
func (l SeverityLadder) Classify(value float64) (Severity, bool) {
	switch {
	case value > l.Critical:
		return SeverityCritical, true
	case value > l.High:
		return SeverityHigh, true
	case value > l.Medium:
		return SeverityMedium, true
	default:
		return "", false
	}
}

// CachingPolicy holds the static heuristics of the caching analysis.
//
// An endpoint qualifies when RequestCount > MinRequests, GET ratio > MinGetRatio and
// error rate < MaxErrorRatePct. Its hit rate is
//
//	min(MaxHitRatePct, round(getRatio*100 * (BaseHitShare + (1-BaseHitShare)*min(1, count/VolumeSaturationRequests))))
//
// and its TTL comes from the first matching row of:
//
//	error rate >= ShortTTLErrorRatePct  -> ShortTTLMinutes
//	count >= LongTTLMinRequests         -> LongTTLMinutes
//	otherwise                           -> DefaultTTLMinutes
type CachingPolicy struct {
	MinRequests     int64   `mapstructure:"min_requests" validate:"gte=0"`
	MinGetRatio     float64 `mapstructure:"min_get_ratio" validate:"gte=0,lte=1"`
	MaxErrorRatePct float64 `mapstructure:"max_error_rate_pct" validate:"gt=0,lte=100"`

	BaseHitShare             float64 `mapstructure:"base_hit_share" validate:"gte=0,lte=1"`
	VolumeSaturationRequests int64   `mapstructure:"volume_saturation_requests" validate:"gt=0"`
	MaxHitRatePct            float64 `mapstructure:"max_hit_rate_pct" validate:"gt=0,lt=100"`

	DefaultTTLMinutes    int     `mapstructure:"default_ttl_minutes" validate:"gt=0"`
	ShortTTLMinutes      int     `mapstructure:"short_ttl_minutes" validate:"gt=0"`
	ShortTTLErrorRatePct float64 `mapstructure:"short_ttl_error_rate_pct" validate:"gte=0"`
	LongTTLMinutes       int     `mapstructure:"long_ttl_minutes" validate:"gt=0"`
	LongTTLMinRequests   int64   `mapstructure:"long_ttl_min_requests" validate:"gt=0"`

	HighConfidenceRequestFactor   float64 `mapstructure:"high_confidence_request_factor" validate:"gte=1"`
	HighConfidenceGetRatio        float64 `mapstructure:"high_confidence_get_ratio" validate:"gte=0,lte=1"`
	HighConfidenceMaxErrorRatePct float64 `mapstructure:"high_confidence_max_error_rate_pct" validate:"gte=0"`
}

// AnalysisConfig is everything the report pipeline depends on besides its input.
type AnalysisConfig struct {
	WindowSize          WindowSize     `mapstructure:"window_size" validate:"required,oneof=minute hour"`
	TopUsersLimit       int            `mapstructure:"top_users_limit" validate:"gte=0"`
	SizeTiers           SizeTiers      `mapstructure:"size_tiers"`
	Pricing             Pricing        `mapstructure:"pricing"`
	LatencyThresholdsMs SeverityLadder `mapstructure:"latency_thresholds_ms"`
	ErrorRateThresholds SeverityLadder `mapstructure:"error_rate_thresholds"`
	Caching             CachingPolicy  `mapstructure:"caching"`
}

// DefaultAnalysisConfig returns the documented defaults.
func DefaultAnalysisConfig() AnalysisConfig {
	return AnalysisConfig{
		WindowSize:    WindowHour,
		TopUsersLimit: 5,
		SizeTiers: SizeTiers{
			SmallBytes: 1024,
			LargeBytes: 10 * 1024,
		},
		Pricing: Pricing{
			RequestUSD:        0.0001,
			ExecutionPerMsUSD: 0.000002,
			MemorySmallUSD:    0.00001,
			MemoryMediumUSD:   0.00005,
			MemoryLargeUSD:    0.0001,
		},
		LatencyThresholdsMs: SeverityLadder{Medium: 500, High: 1000, Critical: 2000},
		ErrorRateThresholds: SeverityLadder{Medium: 5, High: 10, Critical: 15},
		Caching: CachingPolicy{
			MinRequests:     100,
			MinGetRatio:     0.8,
			MaxErrorRatePct: 2,

			BaseHitShare:             0.7,
			VolumeSaturationRequests: 1000,
			MaxHitRatePct:            95,

			DefaultTTLMinutes:    15,
			ShortTTLMinutes:      5,
			ShortTTLErrorRatePct: 1.5,
			LongTTLMinutes:       30,
			LongTTLMinRequests:   1000,

			HighConfidenceRequestFactor:   2,
			HighConfidenceGetRatio:        0.9,
			HighConfidenceMaxErrorRatePct: 1,
		},
	}
}
