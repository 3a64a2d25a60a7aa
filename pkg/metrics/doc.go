/*
Package metrics provides Prometheus instrumentation for gostream components.

The package exposes a Registry of collectors covering stream activity:
intermediate operations recorded, terminal evaluations, elements produced,
failures, and evaluation latency. Components accept a Config that selects
a registerer; DefaultRegistry registers against prometheus.DefaultRegisterer.

Usage with an instrumented stream:

	reg := prometheus.NewRegistry()
	s, err := stream.WithMetrics(stream.Of(1, 2, 3), "totals", metrics.Config{
		Enabled:  true,
		Registry: reg,
	})
	if err != nil {
		log.Fatal(err)
	}

	_, _ = s.Map(func(x int) int { return x * 2 }).ToSlice()

	// Expose collected metrics
	http.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

Metric names follow the gostream_streams_* pattern:

	gostream_streams_operations_total{stream_name, operation}
	gostream_streams_evaluations_total{stream_name, terminal}
	gostream_streams_items_total{stream_name, terminal}
	gostream_streams_errors_total{stream_name, terminal}
	gostream_streams_evaluation_duration_seconds{stream_name, terminal}
*/
package metrics
