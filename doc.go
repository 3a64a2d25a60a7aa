/*
Package gostream provides chainable, generic streams over in-memory
sequences with selectable evaluation strategies.

Streams (pkg/streams):
  - stream: the public Stream API with lazy and eager variants
  - pipeline: deferred transformation composition backing the lazy variant

Observability (pkg/metrics):
  - Prometheus collectors for stream operations, evaluations, and latency

Example usage:

	import "github.com/vnykmshr/gostream/pkg/streams/stream"

	evens, err := stream.Of(1, 2, 3, 4, 5, 6).
		Filter(func(x int) bool { return x%2 == 0 }).
		ToSlice()
	if err != nil {
		log.Fatal(err)
	}
	// evens == [2 4 6]
*/
package gostream
