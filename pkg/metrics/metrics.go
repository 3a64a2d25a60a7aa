// Package metrics provides Prometheus instrumentation for gostream components.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all metric instances for gostream components.
type Registry struct {
	// StreamOperations counts intermediate operations recorded on a stream,
	// labeled by stream name and operation (filter, map, sorted, ...).
	StreamOperations *prometheus.CounterVec

	// StreamEvaluations counts terminal operations, labeled by stream name
	// and terminal (to_slice, reduce, count, ...). Every increment
	// corresponds to one full pipeline evaluation.
	StreamEvaluations *prometheus.CounterVec

	// StreamItems counts elements produced by terminal operations.
	StreamItems *prometheus.CounterVec

	// StreamErrors counts failed terminal operations.
	StreamErrors *prometheus.CounterVec

	// EvaluationDuration observes wall time spent in terminal operations.
	EvaluationDuration *prometheus.HistogramVec
}

// DefaultRegistry is the default metrics registry used by gostream components.
var DefaultRegistry *Registry

func init() {
	DefaultRegistry = NewRegistry(prometheus.DefaultRegisterer)
}

// NewRegistry creates a new metrics registry with the given Prometheus registerer.
func NewRegistry(reg prometheus.Registerer) *Registry {
	factory := promauto.With(reg)

	return &Registry{
		StreamOperations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gostream",
				Subsystem: "streams",
				Name:      "operations_total",
				Help:      "Total number of intermediate operations recorded",
			},
			[]string{"stream_name", "operation"},
		),

		StreamEvaluations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gostream",
				Subsystem: "streams",
				Name:      "evaluations_total",
				Help:      "Total number of terminal operations executed",
			},
			[]string{"stream_name", "terminal"},
		),

		StreamItems: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gostream",
				Subsystem: "streams",
				Name:      "items_total",
				Help:      "Total number of elements produced by terminal operations",
			},
			[]string{"stream_name", "terminal"},
		),

		StreamErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gostream",
				Subsystem: "streams",
				Name:      "errors_total",
				Help:      "Total number of failed terminal operations",
			},
			[]string{"stream_name", "terminal"},
		),

		EvaluationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "gostream",
				Subsystem: "streams",
				Name:      "evaluation_duration_seconds",
				Help:      "Time spent evaluating stream pipelines",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"stream_name", "terminal"},
		),
	}
}
