package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Label names and values shared across packages.
const (
	FieldErrorCode = "error_code"
	FieldResult    = "result"
	FieldPartition = "partition"

	ValueNoError = ""
)

// Every metric is named api_log_analytics_<subsystem>_<name>.
const (
	Namespace      = "api_log_analytics"
	SubIngestion   = "ingestion"
	SubAggregation = "aggregation"
	SubAnalysis    = "analysis"
	SubStream      = "stream"
	SubHTTP        = "http"
)

type (
	CounterOpts   = prometheus.CounterOpts
	GaugeOpts     = prometheus.GaugeOpts
	HistogramOpts = prometheus.HistogramOpts
)

var DefBuckets = prometheus.DefBuckets

// SizeBuckets covers payloads from 256 B to 8 MiB.
var SizeBuckets = prometheus.ExponentialBuckets(256, 4, 8)

// Constructors register on the default registry, which Handler serves.
var (
	NewCounterVec   = promauto.NewCounterVec
	NewGauge        = promauto.NewGauge
	NewHistogramVec = promauto.NewHistogramVec
)

type promHTTP struct{}

func (promHTTP) Handler() http.Handler {
	return promhttp.Handler()
}

// PromHTTP serves the default registry, e.g. router.Handle("/metrics", metrics.PromHTTP.Handler()).
var PromHTTP = promHTTP{}
