/*
Package stream provides a chainable, generic stream API over ordered, finite
sequences, with a lazy and an eager evaluation strategy behind one interface.

Core Concepts:

A Stream is an immutable view over a captured sequence. Intermediate
operations (Filter, Map, FlatMap, Distinct, Sorted, Reverse, Concat, Skip,
Limit, Peek) return a new Stream and leave the receiver usable; terminal
operations (ToSlice, ForEach, Reduce, FindFirst, First, Last, Count) produce
a concrete result.

Two strategies implement the same interface:

  - Lazy (Of, FromSlice, Empty): intermediate calls record one composed
    transformation step each and perform no work. Every terminal call
    evaluates the full pipeline against the captured source, in recording
    order, from scratch. Nothing is cached; repeated terminals recompute.
  - Eager (EagerOf, EagerFromSlice): every intermediate call computes and
    stores its full result immediately.

Basic Usage:

	squares, err := stream.Of(1, 2, 3).
		Map(func(x int) int { return x * x }).
		ToSlice()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(squares) // [1 4 9]

Changing Element Type:

Go methods cannot introduce type parameters, so operations that change the
element type are package functions:

	labels, err := stream.Map(stream.Of(1, 2, 3), strconv.Itoa).ToSlice()

	total, err := stream.Reduce(stream.Of("a", "bb", "ccc"), 0,
		func(acc int, s string) int { return acc + len(s) })

These preserve the receiver's strategy for the built-in lazy streams and
materialize once for any other implementation.

Sorting:

The Sorted method takes a three-way comparison and sorts stably. For
naturally ordered elements or key-based sorting use the package functions:

	stream.Sorted(s, false)                       // ascending
	stream.SortedByKey(users, User.Age, true)     // oldest first

With reverse set, comparisons are flipped; ties keep their original
relative order in both directions.

Capture Semantics:

Constructors capture a structural copy of their input, and ToSlice hands
back a caller-owned slice, so external mutation never aliases stream state.
Element values themselves are copied with Go value semantics; pointer
elements share their pointees.

Concat Timing:

The two strategies read the other stream at different moments, and both are
deliberate:

  - Lazy Concat re-reads other once per evaluation of the combined
    pipeline. If other's own pipeline produces different results over time
    (for example through a fallible step), each terminal call observes the
    current outcome.
  - Eager Concat snapshots other's contents at the moment of the call.

Error Handling:

Failures originate only in user-supplied callbacks and nested stream reads:

  - Nil callbacks and nil streams are programming errors and panic at the
    offending call.
  - Fallible steps built with TryMap surface their error from the terminal
    operation that triggers evaluation. The stream itself stays valid; a
    later terminal call re-evaluates from the source.
  - Empty-result queries (First, Last, FindFirst) return a false flag,
    never an error.

Equality:

Two streams are equal when their materialized outputs match element-wise in
order, regardless of strategy:

	same, err := stream.Equal(stream.Of(1, 2), stream.EagerOf(1, 2)) // true

Metrics:

WithMetrics decorates any stream with Prometheus instrumentation; derived
streams stay instrumented:

	s, err := stream.WithMetrics(stream.Of(data...), "orders", metrics.DefaultConfig())

Thread Safety:

Streams are immutable after construction and evaluation keeps no shared
mutable state, so distinct derived streams may be evaluated from different
goroutines. Callbacks must be pure functions of their arguments for that to
hold.
*/
package stream
