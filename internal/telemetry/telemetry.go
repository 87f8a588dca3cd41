// Package telemetry owns the process-wide Prometheus collectors and the
// OpenTelemetry tracer used by path queries.
//
// Collectors register with the default registry on package load, so any
// binary that serves promhttp.Handler() exposes them without extra wiring.
package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// TracerName identifies spans emitted by this module.
const TracerName = "github.com/katalvlaran/gridpath"

// Query outcomes used as the "result" label.
const (
	ResultFound   = "found"
	ResultNoPath  = "no_path"
	ResultInvalid = "invalid"
	ResultError   = "error"
)

var (
	// queryTotal counts path queries by outcome and strategy.
	queryTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gridpath_query_total",
		Help: "Total path queries by result and strategy",
	}, []string{"result", "strategy"})

	// queryDuration tracks search latency.
	queryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gridpath_query_duration_seconds",
		Help:    "Path query duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.00001, 2, 16), // 10µs to ~330ms
	}, []string{"strategy"})

	// pathSteps tracks the length of found paths.
	pathSteps = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "gridpath_path_steps",
		Help:    "Number of steps in found paths",
		Buckets: []float64{1, 2, 5, 10, 20, 50, 100, 200, 500, 1000},
	})
)

// ObserveQuery records one finished query. steps is only observed when
// result is ResultFound.
func ObserveQuery(strategy, result string, d time.Duration, steps int) {
	queryTotal.WithLabelValues(result, strategy).Inc()
	if result == ResultInvalid {
		return
	}
	queryDuration.WithLabelValues(strategy).Observe(d.Seconds())
	if result == ResultFound {
		pathSteps.Observe(float64(steps))
	}
}

// QueryCount returns the current value of the query counter for the given
// labels.
func QueryCount(result, strategy string) prometheus.Counter {
	return queryTotal.WithLabelValues(result, strategy)
}

// Tracer returns the module tracer from the global provider. Until a
// provider is installed this is a no-op tracer.
func Tracer() trace.Tracer {
	return otel.Tracer(TracerName)
}
