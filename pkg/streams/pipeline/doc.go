/*
Package pipeline implements the deferred transformation engine that backs
lazy streams.

A Transformation represents a sequence-to-sequence computation that has been
recorded but not yet run. Chains are built in two ways:

	// Wrap a producer as a leaf transformation
	src := []int{1, 2, 3}
	t := pipeline.New(func() ([]int, error) {
		return slices.Clone(src), nil
	})

	// Extend it with composed steps
	doubled := pipeline.Then(t, func(in []int) ([]int, error) {
		out := make([]int, len(in))
		for i, v := range in {
			out[i] = v * 2
		}
		return out, nil
	})

	result, err := doubled.Evaluate() // [2 4 6]

Composition guarantees:

  - Then is pure deferral: neither side runs at composition time.
  - Steps execute in the order they were added; the first-built step sees
    the producer's output first.
  - Composition is associative and O(1); only Evaluate performs work.
  - Evaluate never caches. Each call recomputes the chain from the
    producer, so a chain may be evaluated any number of times.
  - Errors returned by a step (or the producer) abort evaluation and
    surface from Evaluate; later steps do not run.

Transformations are immutable values. Extending a chain leaves every
previously built Transformation intact, which lets many derived chains
share a common prefix without interference.
*/
package pipeline
