package stream

// Stream represents an ordered, finite sequence of elements supporting
// chainable transformation and reduction operations.
//
// Intermediate operations return a new Stream and never modify the receiver;
// a stream and all of its ancestors remain usable after derivation. Terminal
// operations produce a concrete result. Whether intermediate work happens
// immediately or at terminal time depends on the evaluation strategy: the
// lazy variant (Of, FromSlice) records a pipeline and evaluates it from the
// captured source on every terminal call, while the eager variant (EagerOf,
// EagerFromSlice) materializes each step as it is recorded.
//
// Operations taking a nil function or a nil other stream panic immediately;
// that is a programming error, not a runtime condition.
type Stream[T any] interface {
	// Intermediate operations

	// Filter returns a stream keeping only elements for which predicate
	// returns true, preserving relative order.
	Filter(predicate func(T) bool) Stream[T]

	// Map returns a stream of the results of applying mapper to each
	// element in order. For a mapper producing a different element type,
	// use the package-level Map function.
	Map(mapper func(T) T) Stream[T]

	// FlatMap applies mapper to each element and concatenates the contents
	// of the resulting streams in element order. Flattening is one level
	// deep only.
	FlatMap(mapper func(T) Stream[T]) Stream[T]

	// Distinct returns a stream keeping the first occurrence of each
	// element. The dynamic element type must be comparable.
	Distinct() Stream[T]

	// Sorted returns a stream sorted by compare, which reports a negative
	// value when a orders before b, zero for ties, positive otherwise.
	// The sort is stable: ties keep their original relative order.
	Sorted(compare func(a, b T) int) Stream[T]

	// Reverse returns a stream with the elements in reverse index order.
	Reverse() Stream[T]

	// Concat returns a stream of this stream's elements followed by
	// other's elements. See the package documentation for when other's
	// contents are read by each variant.
	Concat(other Stream[T]) Stream[T]

	// Skip returns a stream without the first n elements. Negative n is
	// treated as zero.
	Skip(n int64) Stream[T]

	// Limit returns a stream truncated to at most n elements. Negative n
	// is treated as zero.
	Limit(n int64) Stream[T]

	// Peek returns a stream that invokes action on each element as it
	// flows through, without altering the elements.
	Peek(action func(T)) Stream[T]

	// Terminal operations

	// ToSlice materializes the stream as a slice. The returned slice is
	// owned by the caller; mutating it never affects the stream.
	ToSlice() ([]T, error)

	// ForEach invokes action on each element in order.
	ForEach(action func(T)) error

	// Reduce left-folds the elements using accumulator, starting from
	// identity. An empty stream yields identity unchanged.
	Reduce(identity T, accumulator func(acc, value T) T) (T, error)

	// FindFirst returns the first element satisfying predicate, or false
	// if none does. An empty result is not an error.
	FindFirst(predicate func(T) bool) (T, bool, error)

	// First returns the first element, or false if the stream is empty.
	First() (T, bool, error)

	// Last returns the last element, or false if the stream is empty.
	Last() (T, bool, error)

	// Count returns the number of elements.
	Count() (int64, error)
}

// Of creates a lazy stream of the given values.
func Of[T any](values ...T) Stream[T] {
	return lazyOf(values)
}

// FromSlice creates a lazy stream capturing a structural copy of slice.
// Later mutation of slice does not affect the stream.
func FromSlice[T any](slice []T) Stream[T] {
	return lazyOf(slice)
}

// Empty creates an empty lazy stream.
func Empty[T any]() Stream[T] {
	return lazyOf[T](nil)
}

// EagerOf creates an eager stream of the given values.
func EagerOf[T any](values ...T) Stream[T] {
	return eagerOf(values)
}

// EagerFromSlice creates an eager stream capturing a structural copy of slice.
func EagerFromSlice[T any](slice []T) Stream[T] {
	return eagerOf(slice)
}
