package models

import "time"

// EndpointAccumulator is the running aggregate of all valid entries of one endpoint.
type EndpointAccumulator struct {
	RequestCount      int64                  `json:"requestCount"`
	ResponseTimeSum   float64                `json:"responseTimeSum"`
	ResponseTimeMin   float64                `json:"responseTimeMin"`
	ResponseTimeMax   float64                `json:"responseTimeMax"`
	ErrorCount        int64                  `json:"errorCount"`
	StatusCodes       *OrderedCounts[int]    `json:"statusCodes"`
	Methods           *OrderedCounts[string] `json:"methods"`
	ResponseSizeSum   float64                `json:"responseSizeSum"`
	ResponseSizeTiers TierCounts             `json:"responseSizeTiers"`
}

func NewEndpointAccumulator() *EndpointAccumulator {
	return &EndpointAccumulator{
		StatusCodes: NewOrderedCounts[int](),
		Methods:     NewOrderedCounts[string](),
	}
}

func (a *EndpointAccumulator) add(entry *LogEntry, tier SizeTier) {
	if a.RequestCount == 0 || entry.ResponseTimeMs < a.ResponseTimeMin {
		a.ResponseTimeMin = entry.ResponseTimeMs
	}
	if a.RequestCount == 0 || entry.ResponseTimeMs > a.ResponseTimeMax {
		a.ResponseTimeMax = entry.ResponseTimeMs
	}
	a.RequestCount++
	a.ResponseTimeSum += entry.ResponseTimeMs
	if entry.IsError() {
		a.ErrorCount++
	}
	a.ensureHistograms()
	a.StatusCodes.Inc(entry.StatusCode)
	a.Methods.Inc(entry.Method)
	a.ResponseSizeSum += entry.ResponseSizeBytes
	a.ResponseSizeTiers[tier]++
}

// Merge folds other into a.
func (a *EndpointAccumulator) Merge(other *EndpointAccumulator) {
	if other == nil || other.RequestCount == 0 {
		return
	}
	if a.RequestCount == 0 || other.ResponseTimeMin < a.ResponseTimeMin {
		a.ResponseTimeMin = other.ResponseTimeMin
	}
	if a.RequestCount == 0 || other.ResponseTimeMax > a.ResponseTimeMax {
		a.ResponseTimeMax = other.ResponseTimeMax
	}
	a.RequestCount += other.RequestCount
	a.ResponseTimeSum += other.ResponseTimeSum
	a.ErrorCount += other.ErrorCount
	a.ensureHistograms()
	a.StatusCodes.Merge(other.StatusCodes)
	a.Methods.Merge(other.Methods)
	a.ResponseSizeSum += other.ResponseSizeSum
	for tier := range a.ResponseSizeTiers {
		a.ResponseSizeTiers[tier] += other.ResponseSizeTiers[tier]
	}
}

// GetCount is the number of GET requests.
func (a *EndpointAccumulator) GetCount() int64 {
	if a.Methods == nil {
		return 0
	}
	return a.Methods.Get("GET")
}

func (a *EndpointAccumulator) ensureHistograms() {
	if a.StatusCodes == nil {
		a.StatusCodes = NewOrderedCounts[int]()
	}
	if a.Methods == nil {
		a.Methods = NewOrderedCounts[string]()
	}
}

// GlobalAccumulator is the running aggregate over every record of a pass.
type GlobalAccumulator struct {
	ValidCount        int64                  `json:"validCount"`
	InvalidCount      int64                  `json:"invalidCount"`
	TimestampMin      time.Time              `json:"timestampMin"`
	TimestampMax      time.Time              `json:"timestampMax"`
	ResponseTimeSum   float64                `json:"responseTimeSum"`
	ErrorCount        int64                  `json:"errorCount"`
	TimeBuckets       *OrderedCounts[string] `json:"timeBuckets"`
	Users             *OrderedCounts[string] `json:"users"`
	ResponseSizeTiers TierCounts             `json:"responseSizeTiers"`
}

func NewGlobalAccumulator() *GlobalAccumulator {
	return &GlobalAccumulator{
		TimeBuckets: NewOrderedCounts[string](),
		Users:       NewOrderedCounts[string](),
	}
}

func (g *GlobalAccumulator) add(entry *LogEntry, bucket string, tier SizeTier) {
	if g.ValidCount == 0 || entry.Timestamp.Before(g.TimestampMin) {
		g.TimestampMin = entry.Timestamp
	}
	if g.ValidCount == 0 || entry.Timestamp.After(g.TimestampMax) {
		g.TimestampMax = entry.Timestamp
	}
	g.ValidCount++
	g.ResponseTimeSum += entry.ResponseTimeMs
	if entry.IsError() {
		g.ErrorCount++
	}
	g.ensureHistograms()
	g.TimeBuckets.Inc(bucket)
	g.Users.Inc(entry.UserID)
	g.ResponseSizeTiers[tier]++
}

// Merge folds other into g.
func (g *GlobalAccumulator) Merge(other *GlobalAccumulator) {
	if other == nil {
		return
	}
	g.InvalidCount += other.InvalidCount
	if other.ValidCount == 0 {
		return
	}
	if g.ValidCount == 0 || other.TimestampMin.Before(g.TimestampMin) {
		g.TimestampMin = other.TimestampMin
	}
	if g.ValidCount == 0 || other.TimestampMax.After(g.TimestampMax) {
		g.TimestampMax = other.TimestampMax
	}
	g.ValidCount += other.ValidCount
	g.ResponseTimeSum += other.ResponseTimeSum
	g.ErrorCount += other.ErrorCount
	g.ensureHistograms()
	g.TimeBuckets.Merge(other.TimeBuckets)
	g.Users.Merge(other.Users)
	for tier := range g.ResponseSizeTiers {
		g.ResponseSizeTiers[tier] += other.ResponseSizeTiers[tier]
	}
}

func (g *GlobalAccumulator) ensureHistograms() {
	if g.TimeBuckets == nil {
		g.TimeBuckets = NewOrderedCounts[string]()
	}
	if g.Users == nil {
		g.Users = NewOrderedCounts[string]()
	}
}

// Accumulation is the result of one pass over a set of records. Accumulations built with the
// same WindowSize and SizeTiers over disjoint record sets can be merged into the accumulation
// of their union.
//
// Example JSON (abridged):
//
//	{
//	  "windowSize": "hour",
//	  "sizeTiers": {"smallBytes": 1024, "largeBytes": 10240},
//	  "global": {"validCount": 3, "invalidCount": 1, "users": [{"key": "user_1", "count": 2}, ...], ...},
//	  "endpointOrder": ["/api/users", "/api/orders"],
//	  "endpoints": {"/api/users": {"requestCount": 2, "statusCodes": [{"key": 200, "count": 2}], ...}, ...}
//	}
type Accumulation struct {
	WindowSize    WindowSize                      `json:"windowSize"`
	SizeTiers     SizeTiers                       `json:"sizeTiers"`
	Global        *GlobalAccumulator              `json:"global"`
	EndpointOrder []string                        `json:"endpointOrder"`
	Endpoints     map[string]*EndpointAccumulator `json:"endpoints"`
}

func NewAccumulation(windowSize WindowSize, sizeTiers SizeTiers) *Accumulation {
	return &Accumulation{
		WindowSize:    windowSize,
		SizeTiers:     sizeTiers,
		Global:        NewGlobalAccumulator(),
		EndpointOrder: []string{},
		Endpoints:     make(map[string]*EndpointAccumulator),
	}
}

// Add records one valid entry.
func (a *Accumulation) Add(entry *LogEntry) {
	tier := a.SizeTiers.Tier(entry.ResponseSizeBytes)
	a.global().add(entry, a.WindowSize.Label(entry.Timestamp), tier)
	a.endpoint(entry.Endpoint).add(entry, tier)
}

// AddInvalid records one record that failed normalization.
func (a *Accumulation) AddInvalid() {
	a.global().InvalidCount++
}

// Merge folds other into a. Endpoints first seen in other are appended in other's order.
// Callers are responsible for checking that both sides share WindowSize and SizeTiers.
func (a *Accumulation) Merge(other *Accumulation) {
	if other == nil {
		return
	}
	a.global().Merge(other.Global)
	for _, name := range other.EndpointOrder {
		a.endpoint(name).Merge(other.Endpoints[name])
	}
}

// Endpoint returns the accumulator of name, or nil when the endpoint was never seen.
func (a *Accumulation) Endpoint(name string) *EndpointAccumulator {
	return a.Endpoints[name]
}

// TotalRecords is the number of records seen, valid or not.
func (a *Accumulation) TotalRecords() int64 {
	if a.Global == nil {
		return 0
	}
	return a.Global.ValidCount + a.Global.InvalidCount
}

func (a *Accumulation) global() *GlobalAccumulator {
	if a.Global == nil {
		a.Global = NewGlobalAccumulator()
	}
	return a.Global
}

func (a *Accumulation) endpoint(name string) *EndpointAccumulator {
	if a.Endpoints == nil {
		a.Endpoints = make(map[string]*EndpointAccumulator)
	}
	acc, ok := a.Endpoints[name]
	if !ok {
		acc = NewEndpointAccumulator()
		a.Endpoints[name] = acc
		a.EndpointOrder = append(a.EndpointOrder, name)
	}
	return acc
}
