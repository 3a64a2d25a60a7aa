package stream

import (
	"cmp"
	"slices"

	"github.com/vnykmshr/gostream/pkg/streams/pipeline"
)

// Cross-type and constrained operations live at package level because Go
// methods cannot introduce type parameters. Each function preserves the
// evaluation strategy of the built-in lazy implementation by extending its
// pipeline in place; any other implementation is materialized once and the
// result carries on eagerly.

// Map returns a stream of mapper applied to each element of s, allowing the
// element type to change across the step.
func Map[T, R any](s Stream[T], mapper func(T) R) Stream[R] {
	if s == nil {
		panic("stream: Map: nil stream")
	}
	if mapper == nil {
		panic("stream: Map: nil mapper")
	}
	if ls, ok := s.(*lazyStream[T]); ok {
		return &lazyStream[R]{tf: pipeline.Then(ls.tf, func(in []T) ([]R, error) {
			out := make([]R, len(in))
			for i, v := range in {
				out[i] = mapper(v)
			}
			return out, nil
		})}
	}
	items, err := s.ToSlice()
	if err != nil {
		return &eagerStream[R]{err: err}
	}
	out := make([]R, len(items))
	for i, v := range items {
		out[i] = mapper(v)
	}
	return &eagerStream[R]{contents: out}
}

// TryMap is Map for fallible mappers. The first mapper error aborts the
// step and surfaces from whichever terminal operation triggers evaluation.
func TryMap[T, R any](s Stream[T], mapper func(T) (R, error)) Stream[R] {
	if s == nil {
		panic("stream: TryMap: nil stream")
	}
	if mapper == nil {
		panic("stream: TryMap: nil mapper")
	}
	step := func(in []T) ([]R, error) {
		out := make([]R, len(in))
		for i, v := range in {
			r, err := mapper(v)
			if err != nil {
				return nil, err
			}
			out[i] = r
		}
		return out, nil
	}
	if ls, ok := s.(*lazyStream[T]); ok {
		return &lazyStream[R]{tf: pipeline.Then(ls.tf, step)}
	}
	items, err := s.ToSlice()
	if err != nil {
		return &eagerStream[R]{err: err}
	}
	out, err := step(items)
	if err != nil {
		return &eagerStream[R]{err: err}
	}
	return &eagerStream[R]{contents: out}
}

// FlatMap applies mapper to each element of s and concatenates the contents
// of the resulting streams in element order, allowing the element type to
// change. Flattening is one level deep only.
func FlatMap[T, R any](s Stream[T], mapper func(T) Stream[R]) Stream[R] {
	if s == nil {
		panic("stream: FlatMap: nil stream")
	}
	if mapper == nil {
		panic("stream: FlatMap: nil mapper")
	}
	step := func(in []T) ([]R, error) {
		var out []R
		for _, v := range in {
			sub := mapper(v)
			if sub == nil {
				panic("stream: FlatMap: mapper returned nil stream")
			}
			items, err := sub.ToSlice()
			if err != nil {
				return nil, err
			}
			out = append(out, items...)
		}
		return out, nil
	}
	if ls, ok := s.(*lazyStream[T]); ok {
		return &lazyStream[R]{tf: pipeline.Then(ls.tf, step)}
	}
	items, err := s.ToSlice()
	if err != nil {
		return &eagerStream[R]{err: err}
	}
	out, err := step(items)
	if err != nil {
		return &eagerStream[R]{err: err}
	}
	return &eagerStream[R]{contents: out}
}

// Reduce left-folds the elements of s into an accumulator of a different
// type, starting from initial. An empty stream yields initial unchanged.
func Reduce[T, A any](s Stream[T], initial A, accumulator func(acc A, value T) A) (A, error) {
	if s == nil {
		panic("stream: Reduce: nil stream")
	}
	if accumulator == nil {
		panic("stream: Reduce: nil accumulator")
	}
	items, err := s.ToSlice()
	if err != nil {
		return initial, err
	}
	result := initial
	for _, v := range items {
		result = accumulator(result, v)
	}
	return result, nil
}

// Sorted sorts s by the natural order of its elements. With reverse set,
// the order is descending; ties keep their original relative order either
// way.
func Sorted[T cmp.Ordered](s Stream[T], reverse bool) Stream[T] {
	if s == nil {
		panic("stream: Sorted: nil stream")
	}
	return s.Sorted(func(a, b T) int {
		c := cmp.Compare(a, b)
		if reverse {
			return -c
		}
		return c
	})
}

// SortedByKey sorts s by the natural order of key applied to each element.
// With reverse set, the order is descending; ties keep their original
// relative order either way.
func SortedByKey[T any, K cmp.Ordered](s Stream[T], key func(T) K, reverse bool) Stream[T] {
	if s == nil {
		panic("stream: SortedByKey: nil stream")
	}
	if key == nil {
		panic("stream: SortedByKey: nil key")
	}
	return s.Sorted(func(a, b T) int {
		c := cmp.Compare(key(a), key(b))
		if reverse {
			return -c
		}
		return c
	})
}

// Equal reports whether two streams materialize to the same elements in the
// same order. Both sides are fully evaluated; the comparison works across
// evaluation strategies.
func Equal[T comparable](a, b Stream[T]) (bool, error) {
	if a == nil || b == nil {
		panic("stream: Equal: nil stream")
	}
	left, err := a.ToSlice()
	if err != nil {
		return false, err
	}
	right, err := b.ToSlice()
	if err != nil {
		return false, err
	}
	return slices.Equal(left, right), nil
}

// EqualFunc is Equal with a caller-supplied element comparison, usable
// across element types.
func EqualFunc[T, U any](a Stream[T], b Stream[U], eq func(T, U) bool) (bool, error) {
	if a == nil || b == nil {
		panic("stream: EqualFunc: nil stream")
	}
	if eq == nil {
		panic("stream: EqualFunc: nil eq")
	}
	left, err := a.ToSlice()
	if err != nil {
		return false, err
	}
	right, err := b.ToSlice()
	if err != nil {
		return false, err
	}
	if len(left) != len(right) {
		return false, nil
	}
	for i := range left {
		if !eq(left[i], right[i]) {
			return false, nil
		}
	}
	return true, nil
}
