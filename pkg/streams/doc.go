/*
Package streams groups the stream-processing components of gostream.

This package provides two components:

  - pipeline: deferred transformation chains, the engine behind lazy streams
  - stream: the chainable Stream API with lazy and eager implementations

Most users only need the stream package:

	result, err := stream.Of(1, 2, 3, 4).
		Filter(func(x int) bool { return x%2 == 0 }).
		Map(func(x int) int { return x * 10 }).
		ToSlice()

The pipeline package is exported for callers who want to compose deferred
sequence transformations without the Stream API on top.
*/
package streams
