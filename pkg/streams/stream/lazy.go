package stream

import (
	"slices"
	"sort"

	"github.com/vnykmshr/gostream/pkg/streams/pipeline"
)

// lazyStream records intermediate operations as a composed transformation
// chain and evaluates the chain against the captured source on every
// terminal call. The source lives inside the chain's producer, which hands
// out a fresh copy per evaluation, so evaluation never observes mutation
// and a failed evaluation leaves the stream reusable.
type lazyStream[T any] struct {
	tf pipeline.Transformation[T]
}

func lazyOf[T any](values []T) *lazyStream[T] {
	src := slices.Clone(values)
	return &lazyStream[T]{tf: pipeline.New(func() ([]T, error) {
		return slices.Clone(src), nil
	})}
}

// chain appends one step to the pipeline and wraps it in a new stream.
// The receiver is left untouched.
func (s *lazyStream[T]) chain(step func([]T) ([]T, error)) Stream[T] {
	return &lazyStream[T]{tf: pipeline.Then(s.tf, step)}
}

func (s *lazyStream[T]) Filter(predicate func(T) bool) Stream[T] {
	if predicate == nil {
		panic("stream: Filter: nil predicate")
	}
	return s.chain(func(in []T) ([]T, error) {
		out := make([]T, 0, len(in))
		for _, v := range in {
			if predicate(v) {
				out = append(out, v)
			}
		}
		return out, nil
	})
}

func (s *lazyStream[T]) Map(mapper func(T) T) Stream[T] {
	if mapper == nil {
		panic("stream: Map: nil mapper")
	}
	return s.chain(func(in []T) ([]T, error) {
		out := make([]T, len(in))
		for i, v := range in {
			out[i] = mapper(v)
		}
		return out, nil
	})
}

func (s *lazyStream[T]) FlatMap(mapper func(T) Stream[T]) Stream[T] {
	if mapper == nil {
		panic("stream: FlatMap: nil mapper")
	}
	return s.chain(func(in []T) ([]T, error) {
		var out []T
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
	})
}

func (s *lazyStream[T]) Distinct() Stream[T] {
	return s.chain(func(in []T) ([]T, error) {
		// Fresh per evaluation; steps carry no state between runs.
		seen := make(map[any]struct{}, len(in))
		out := make([]T, 0, len(in))
		for _, v := range in {
			key := any(v)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, v)
		}
		return out, nil
	})
}

func (s *lazyStream[T]) Sorted(compare func(a, b T) int) Stream[T] {
	if compare == nil {
		panic("stream: Sorted: nil compare")
	}
	return s.chain(func(in []T) ([]T, error) {
		out := slices.Clone(in)
		sort.SliceStable(out, func(i, j int) bool {
			return compare(out[i], out[j]) < 0
		})
		return out, nil
	})
}

func (s *lazyStream[T]) Reverse() Stream[T] {
	return s.chain(func(in []T) ([]T, error) {
		out := make([]T, len(in))
		for i, v := range in {
			out[len(in)-1-i] = v
		}
		return out, nil
	})
}

// Concat appends other's elements after this stream's elements. The other
// stream is read once per evaluation of the combined pipeline, not
// snapshotted here; if other is itself lazy, its pipeline runs fresh each
// time a terminal operation executes on the result.
func (s *lazyStream[T]) Concat(other Stream[T]) Stream[T] {
	if other == nil {
		panic("stream: Concat: nil stream")
	}
	return s.chain(func(in []T) ([]T, error) {
		items, err := other.ToSlice()
		if err != nil {
			return nil, err
		}
		return append(in, items...), nil
	})
}

func (s *lazyStream[T]) Skip(n int64) Stream[T] {
	return s.chain(func(in []T) ([]T, error) {
		if n <= 0 {
			return in, nil
		}
		if n >= int64(len(in)) {
			return nil, nil
		}
		return in[n:], nil
	})
}

func (s *lazyStream[T]) Limit(n int64) Stream[T] {
	return s.chain(func(in []T) ([]T, error) {
		if n <= 0 {
			return nil, nil
		}
		if n >= int64(len(in)) {
			return in, nil
		}
		return in[:n], nil
	})
}

func (s *lazyStream[T]) Peek(action func(T)) Stream[T] {
	if action == nil {
		panic("stream: Peek: nil action")
	}
	return s.chain(func(in []T) ([]T, error) {
		for _, v := range in {
			action(v)
		}
		return in, nil
	})
}

func (s *lazyStream[T]) ToSlice() ([]T, error) {
	return s.tf.Evaluate()
}

func (s *lazyStream[T]) ForEach(action func(T)) error {
	if action == nil {
		panic("stream: ForEach: nil action")
	}
	items, err := s.tf.Evaluate()
	if err != nil {
		return err
	}
	for _, v := range items {
		action(v)
	}
	return nil
}

func (s *lazyStream[T]) Reduce(identity T, accumulator func(acc, value T) T) (T, error) {
	if accumulator == nil {
		panic("stream: Reduce: nil accumulator")
	}
	items, err := s.tf.Evaluate()
	if err != nil {
		return identity, err
	}
	result := identity
	for _, v := range items {
		result = accumulator(result, v)
	}
	return result, nil
}

func (s *lazyStream[T]) FindFirst(predicate func(T) bool) (T, bool, error) {
	var zero T
	if predicate == nil {
		panic("stream: FindFirst: nil predicate")
	}
	items, err := s.tf.Evaluate()
	if err != nil {
		return zero, false, err
	}
	for _, v := range items {
		if predicate(v) {
			return v, true, nil
		}
	}
	return zero, false, nil
}

func (s *lazyStream[T]) First() (T, bool, error) {
	var zero T
	items, err := s.tf.Evaluate()
	if err != nil {
		return zero, false, err
	}
	if len(items) == 0 {
		return zero, false, nil
	}
	return items[0], true, nil
}

func (s *lazyStream[T]) Last() (T, bool, error) {
	var zero T
	items, err := s.tf.Evaluate()
	if err != nil {
		return zero, false, err
	}
	if len(items) == 0 {
		return zero, false, nil
	}
	return items[len(items)-1], true, nil
}

func (s *lazyStream[T]) Count() (int64, error) {
	items, err := s.tf.Evaluate()
	if err != nil {
		return 0, err
	}
	return int64(len(items)), nil
}
