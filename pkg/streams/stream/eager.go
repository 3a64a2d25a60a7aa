package stream

import (
	"slices"
	"sort"
)

// eagerStream materializes the result of every intermediate operation
// immediately. The contents slice is owned by the stream; constructors and
// terminals copy at the boundary so external aliasing cannot mutate it.
//
// Because intermediate operations cannot return an error without breaking
// chaining, a failure (for example from a nested stream read in FlatMap)
// is recorded on the derived stream and reported by its terminal
// operations. Streams built before the failing step are unaffected.
type eagerStream[T any] struct {
	contents []T
	err      error
}

func eagerOf[T any](values []T) *eagerStream[T] {
	return &eagerStream[T]{contents: slices.Clone(values)}
}

func (s *eagerStream[T]) Filter(predicate func(T) bool) Stream[T] {
	if predicate == nil {
		panic("stream: Filter: nil predicate")
	}
	if s.err != nil {
		return s
	}
	out := make([]T, 0, len(s.contents))
	for _, v := range s.contents {
		if predicate(v) {
			out = append(out, v)
		}
	}
	return &eagerStream[T]{contents: out}
}

func (s *eagerStream[T]) Map(mapper func(T) T) Stream[T] {
	if mapper == nil {
		panic("stream: Map: nil mapper")
	}
	if s.err != nil {
		return s
	}
	out := make([]T, len(s.contents))
	for i, v := range s.contents {
		out[i] = mapper(v)
	}
	return &eagerStream[T]{contents: out}
}

func (s *eagerStream[T]) FlatMap(mapper func(T) Stream[T]) Stream[T] {
	if mapper == nil {
		panic("stream: FlatMap: nil mapper")
	}
	if s.err != nil {
		return s
	}
	var out []T
	for _, v := range s.contents {
		sub := mapper(v)
		if sub == nil {
			panic("stream: FlatMap: mapper returned nil stream")
		}
		items, err := sub.ToSlice()
		if err != nil {
			return &eagerStream[T]{err: err}
		}
		out = append(out, items...)
	}
	return &eagerStream[T]{contents: out}
}

func (s *eagerStream[T]) Distinct() Stream[T] {
	if s.err != nil {
		return s
	}
	seen := make(map[any]struct{}, len(s.contents))
	out := make([]T, 0, len(s.contents))
	for _, v := range s.contents {
		key := any(v)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, v)
	}
	return &eagerStream[T]{contents: out}
}

func (s *eagerStream[T]) Sorted(compare func(a, b T) int) Stream[T] {
	if compare == nil {
		panic("stream: Sorted: nil compare")
	}
	if s.err != nil {
		return s
	}
	out := slices.Clone(s.contents)
	sort.SliceStable(out, func(i, j int) bool {
		return compare(out[i], out[j]) < 0
	})
	return &eagerStream[T]{contents: out}
}

func (s *eagerStream[T]) Reverse() Stream[T] {
	if s.err != nil {
		return s
	}
	out := make([]T, len(s.contents))
	for i, v := range s.contents {
		out[len(s.contents)-1-i] = v
	}
	return &eagerStream[T]{contents: out}
}

// Concat snapshots other's contents at the time of the call, consistent
// with every other eager operation computing immediately.
func (s *eagerStream[T]) Concat(other Stream[T]) Stream[T] {
	if other == nil {
		panic("stream: Concat: nil stream")
	}
	if s.err != nil {
		return s
	}
	items, err := other.ToSlice()
	if err != nil {
		return &eagerStream[T]{err: err}
	}
	out := make([]T, 0, len(s.contents)+len(items))
	out = append(out, s.contents...)
	out = append(out, items...)
	return &eagerStream[T]{contents: out}
}

func (s *eagerStream[T]) Skip(n int64) Stream[T] {
	if s.err != nil {
		return s
	}
	if n <= 0 {
		return &eagerStream[T]{contents: slices.Clone(s.contents)}
	}
	if n >= int64(len(s.contents)) {
		return &eagerStream[T]{}
	}
	return &eagerStream[T]{contents: slices.Clone(s.contents[n:])}
}

func (s *eagerStream[T]) Limit(n int64) Stream[T] {
	if s.err != nil {
		return s
	}
	if n <= 0 {
		return &eagerStream[T]{}
	}
	if n >= int64(len(s.contents)) {
		return &eagerStream[T]{contents: slices.Clone(s.contents)}
	}
	return &eagerStream[T]{contents: slices.Clone(s.contents[:n])}
}

func (s *eagerStream[T]) Peek(action func(T)) Stream[T] {
	if action == nil {
		panic("stream: Peek: nil action")
	}
	if s.err != nil {
		return s
	}
	for _, v := range s.contents {
		action(v)
	}
	return &eagerStream[T]{contents: slices.Clone(s.contents)}
}

func (s *eagerStream[T]) ToSlice() ([]T, error) {
	if s.err != nil {
		return nil, s.err
	}
	return slices.Clone(s.contents), nil
}

func (s *eagerStream[T]) ForEach(action func(T)) error {
	if action == nil {
		panic("stream: ForEach: nil action")
	}
	if s.err != nil {
		return s.err
	}
	for _, v := range s.contents {
		action(v)
	}
	return nil
}

func (s *eagerStream[T]) Reduce(identity T, accumulator func(acc, value T) T) (T, error) {
	if accumulator == nil {
		panic("stream: Reduce: nil accumulator")
	}
	if s.err != nil {
		return identity, s.err
	}
	result := identity
	for _, v := range s.contents {
		result = accumulator(result, v)
	}
	return result, nil
}

func (s *eagerStream[T]) FindFirst(predicate func(T) bool) (T, bool, error) {
	var zero T
	if predicate == nil {
		panic("stream: FindFirst: nil predicate")
	}
	if s.err != nil {
		return zero, false, s.err
	}
	for _, v := range s.contents {
		if predicate(v) {
			return v, true, nil
		}
	}
	return zero, false, nil
}

func (s *eagerStream[T]) First() (T, bool, error) {
	var zero T
	if s.err != nil {
		return zero, false, s.err
	}
	if len(s.contents) == 0 {
		return zero, false, nil
	}
	return s.contents[0], true, nil
}

func (s *eagerStream[T]) Last() (T, bool, error) {
	var zero T
	if s.err != nil {
		return zero, false, s.err
	}
	if len(s.contents) == 0 {
		return zero, false, nil
	}
	return s.contents[len(s.contents)-1], true, nil
}

func (s *eagerStream[T]) Count() (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	return int64(len(s.contents)), nil
}
