package stream

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vnykmshr/gostream/pkg/common/validation"
	"github.com/vnykmshr/gostream/pkg/metrics"
)

// metricsStream wraps a Stream with Prometheus metrics collection.
// Intermediate operations are counted as they are recorded; terminal
// operations observe evaluation count, duration, produced items and errors.
// Derived streams stay instrumented under the same name.
type metricsStream[T any] struct {
	inner    Stream[T]
	name     string
	registry *metrics.Registry
}

// WithMetrics wraps s with metrics collection under the given stream name.
// With metrics disabled in config, s is returned unwrapped. A custom
// Registry in config gets its own collector set; otherwise the package
// default registry is used.
func WithMetrics[T any](s Stream[T], name string, config metrics.Config) (Stream[T], error) {
	if err := validation.ValidateNotNil("stream", "stream", s); err != nil {
		return nil, err
	}
	if err := validation.ValidateNotEmpty("stream", "name", name); err != nil {
		return nil, err
	}

	if !config.Enabled {
		return s, nil
	}

	// The default registerer already backs DefaultRegistry; building a
	// second collector set there would collide on registration.
	registry := metrics.DefaultRegistry
	if config.Registry != nil && config.Registry != prometheus.DefaultRegisterer {
		registry = metrics.NewRegistry(config.Registry)
	}

	return &metricsStream[T]{
		inner:    s,
		name:     name,
		registry: registry,
	}, nil
}

func (m *metricsStream[T]) derive(operation string, inner Stream[T]) Stream[T] {
	m.registry.StreamOperations.WithLabelValues(m.name, operation).Inc()
	return &metricsStream[T]{inner: inner, name: m.name, registry: m.registry}
}

func (m *metricsStream[T]) observe(terminal string, start time.Time, items int64, err error) {
	m.registry.StreamEvaluations.WithLabelValues(m.name, terminal).Inc()
	m.registry.EvaluationDuration.WithLabelValues(m.name, terminal).Observe(time.Since(start).Seconds())
	if err != nil {
		m.registry.StreamErrors.WithLabelValues(m.name, terminal).Inc()
		return
	}
	m.registry.StreamItems.WithLabelValues(m.name, terminal).Add(float64(items))
}

func (m *metricsStream[T]) Filter(predicate func(T) bool) Stream[T] {
	return m.derive("filter", m.inner.Filter(predicate))
}

func (m *metricsStream[T]) Map(mapper func(T) T) Stream[T] {
	return m.derive("map", m.inner.Map(mapper))
}

func (m *metricsStream[T]) FlatMap(mapper func(T) Stream[T]) Stream[T] {
	return m.derive("flat_map", m.inner.FlatMap(mapper))
}

func (m *metricsStream[T]) Distinct() Stream[T] {
	return m.derive("distinct", m.inner.Distinct())
}

func (m *metricsStream[T]) Sorted(compare func(a, b T) int) Stream[T] {
	return m.derive("sorted", m.inner.Sorted(compare))
}

func (m *metricsStream[T]) Reverse() Stream[T] {
	return m.derive("reverse", m.inner.Reverse())
}

func (m *metricsStream[T]) Concat(other Stream[T]) Stream[T] {
	return m.derive("concat", m.inner.Concat(other))
}

func (m *metricsStream[T]) Skip(n int64) Stream[T] {
	return m.derive("skip", m.inner.Skip(n))
}

func (m *metricsStream[T]) Limit(n int64) Stream[T] {
	return m.derive("limit", m.inner.Limit(n))
}

func (m *metricsStream[T]) Peek(action func(T)) Stream[T] {
	return m.derive("peek", m.inner.Peek(action))
}

func (m *metricsStream[T]) ToSlice() ([]T, error) {
	start := time.Now()
	out, err := m.inner.ToSlice()
	m.observe("to_slice", start, int64(len(out)), err)
	return out, err
}

func (m *metricsStream[T]) ForEach(action func(T)) error {
	if action == nil {
		panic("stream: ForEach: nil action")
	}
	start := time.Now()
	var items int64
	err := m.inner.ForEach(func(v T) {
		items++
		action(v)
	})
	m.observe("for_each", start, items, err)
	return err
}

func (m *metricsStream[T]) Reduce(identity T, accumulator func(acc, value T) T) (T, error) {
	start := time.Now()
	result, err := m.inner.Reduce(identity, accumulator)
	m.observe("reduce", start, 0, err)
	return result, err
}

func (m *metricsStream[T]) FindFirst(predicate func(T) bool) (T, bool, error) {
	start := time.Now()
	v, found, err := m.inner.FindFirst(predicate)
	m.observe("find_first", start, boolToItems(found), err)
	return v, found, err
}

func (m *metricsStream[T]) First() (T, bool, error) {
	start := time.Now()
	v, found, err := m.inner.First()
	m.observe("first", start, boolToItems(found), err)
	return v, found, err
}

func (m *metricsStream[T]) Last() (T, bool, error) {
	start := time.Now()
	v, found, err := m.inner.Last()
	m.observe("last", start, boolToItems(found), err)
	return v, found, err
}

func (m *metricsStream[T]) Count() (int64, error) {
	start := time.Now()
	n, err := m.inner.Count()
	m.observe("count", start, n, err)
	return n, err
}

func boolToItems(found bool) int64 {
	if found {
		return 1
	}
	return 0
}
