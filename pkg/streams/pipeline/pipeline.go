package pipeline

// A Transformation is a deferred computation that yields a sequence of R
// values when evaluated. Transformations are built by wrapping a producer
// function with New and extending it with Then; no work happens until
// Evaluate is called.
//
// A Transformation is a value type and is safe to share: extending it with
// Then never modifies the original, so several derived chains can grow from
// one common prefix.
type Transformation[R any] struct {
	run func() ([]R, error)
}

// New wraps a producer function as a leaf Transformation. The function is
// not invoked; it is stored and run once per Evaluate call.
func New[R any](run func() ([]R, error)) Transformation[R] {
	return Transformation[R]{run: run}
}

// Then composes a Transformation with a subsequent step, producing a new
// Transformation whose evaluation first evaluates t and then feeds the
// intermediate sequence into step. Neither t nor step is invoked here;
// composition is O(1) bookkeeping.
//
// Then is a package function rather than a method because the step may
// change the element type and Go methods cannot introduce type parameters.
func Then[R, N any](t Transformation[R], step func([]R) ([]N, error)) Transformation[N] {
	return New(func() ([]N, error) {
		intermediate, err := t.Evaluate()
		if err != nil {
			return nil, err
		}
		return step(intermediate)
	})
}

// Evaluate runs the composed chain and returns the final sequence. Steps
// execute in the order they were added with Then. Evaluate performs no
// caching; calling it again recomputes the chain from its producer.
//
// The zero-value Transformation evaluates to an empty sequence.
func (t Transformation[R]) Evaluate() ([]R, error) {
	if t.run == nil {
		return nil, nil
	}
	return t.run()
}
