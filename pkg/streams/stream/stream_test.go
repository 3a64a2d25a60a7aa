package stream

import (
	"testing"

	"github.com/vnykmshr/gostream/internal/testutil"
)

// variants runs a subtest against both evaluation strategies with the same
// input, so shared behavior is verified once for each implementation.
func variants[T any](t *testing.T, input []T, fn func(t *testing.T, s Stream[T])) {
	t.Helper()
	t.Run("lazy", func(t *testing.T) { fn(t, FromSlice(input)) })
	t.Run("eager", func(t *testing.T) { fn(t, EagerFromSlice(input)) })
}

func TestOfIdentity(t *testing.T) {
	variants(t, []int{1, 2, 3}, func(t *testing.T, s Stream[int]) {
		result, err := s.ToSlice()
		testutil.AssertNoError(t, err)
		testutil.AssertSliceEqual(t, result, []int{1, 2, 3})
	})
}

func TestSourceCopiedOnCapture(t *testing.T) {
	src := []int{1, 2, 3}
	lazy := FromSlice(src)
	eager := EagerFromSlice(src)

	src[0] = 99

	result, err := lazy.ToSlice()
	testutil.AssertNoError(t, err)
	testutil.AssertSliceEqual(t, result, []int{1, 2, 3})

	result, err = eager.ToSlice()
	testutil.AssertNoError(t, err)
	testutil.AssertSliceEqual(t, result, []int{1, 2, 3})
}

func TestToSliceOwnedByCaller(t *testing.T) {
	variants(t, []int{1, 2, 3}, func(t *testing.T, s Stream[int]) {
		first, err := s.ToSlice()
		testutil.AssertNoError(t, err)
		first[0] = 99

		second, err := s.ToSlice()
		testutil.AssertNoError(t, err)
		testutil.AssertSliceEqual(t, second, []int{1, 2, 3})
	})
}

func TestEmpty(t *testing.T) {
	s := Empty[string]()

	count, err := s.Count()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, count, int64(0))

	_, found, err := s.First()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, found, false)
}

func TestMapSquares(t *testing.T) {
	variants(t, []int{1, 2, 3}, func(t *testing.T, s Stream[int]) {
		result, err := s.Map(func(x int) int { return x * x }).ToSlice()
		testutil.AssertNoError(t, err)
		testutil.AssertSliceEqual(t, result, []int{1, 4, 9})
	})
}

func TestFilter(t *testing.T) {
	variants(t, []int{1, 2, -1, -2, 15}, func(t *testing.T, s Stream[int]) {
		result, err := s.Filter(func(n int) bool { return n < 2 }).ToSlice()
		testutil.AssertNoError(t, err)
		testutil.AssertSliceEqual(t, result, []int{1, -1, -2})
	})
}

func TestFilterIdempotent(t *testing.T) {
	pred := func(n int) bool { return n%2 == 0 }
	variants(t, []int{1, 2, 3, 4, 5, 6}, func(t *testing.T, s Stream[int]) {
		once, err := s.Filter(pred).ToSlice()
		testutil.AssertNoError(t, err)
		twice, err := s.Filter(pred).Filter(pred).ToSlice()
		testutil.AssertNoError(t, err)
		testutil.AssertSliceEqual(t, twice, once)
	})
}

func TestFlatMapPrimeFactors(t *testing.T) {
	variants(t, []int{10, 11, 12}, func(t *testing.T, s Stream[int]) {
		result, err := s.FlatMap(primeFactors).ToSlice()
		testutil.AssertNoError(t, err)
		testutil.AssertSliceEqual(t, result, []int{2, 5, 11, 2, 3})
	})
}

func TestFlatMapEmptyResults(t *testing.T) {
	variants(t, []int{1, 2, 3}, func(t *testing.T, s Stream[int]) {
		result, err := s.FlatMap(func(int) Stream[int] { return Empty[int]() }).ToSlice()
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, len(result), 0)
	})
}

func TestDistinct(t *testing.T) {
	variants(t, []int{1, 1, 2, 1, 3, 2}, func(t *testing.T, s Stream[int]) {
		result, err := s.Distinct().ToSlice()
		testutil.AssertNoError(t, err)
		testutil.AssertSliceEqual(t, result, []int{1, 2, 3})
	})
}

func TestSortedStable(t *testing.T) {
	type entry struct {
		key  int
		page int
	}
	input := []entry{{2, 0}, {1, 1}, {2, 2}, {1, 3}, {2, 4}}

	variants(t, input, func(t *testing.T, s Stream[entry]) {
		result, err := s.Sorted(func(a, b entry) int { return a.key - b.key }).ToSlice()
		testutil.AssertNoError(t, err)

		// Ties keep original relative order.
		want := []entry{{1, 1}, {1, 3}, {2, 0}, {2, 2}, {2, 4}}
		testutil.AssertSliceEqual(t, result, want)
	})
}

func TestSortedIdempotent(t *testing.T) {
	compare := func(a, b int) int { return a - b }
	variants(t, []int{3, 1, 2, 1}, func(t *testing.T, s Stream[int]) {
		once, err := s.Sorted(compare).ToSlice()
		testutil.AssertNoError(t, err)
		twice, err := s.Sorted(compare).Sorted(compare).ToSlice()
		testutil.AssertNoError(t, err)
		testutil.AssertSliceEqual(t, twice, once)
	})
}

func TestReverse(t *testing.T) {
	variants(t, []int{0, 1, 2}, func(t *testing.T, s Stream[int]) {
		result, err := s.Reverse().ToSlice()
		testutil.AssertNoError(t, err)
		testutil.AssertSliceEqual(t, result, []int{2, 1, 0})
	})
}

func TestReverseTwiceIsIdentity(t *testing.T) {
	variants(t, []int{5, 3, 8, 1}, func(t *testing.T, s Stream[int]) {
		result, err := s.Reverse().Reverse().ToSlice()
		testutil.AssertNoError(t, err)
		testutil.AssertSliceEqual(t, result, []int{5, 3, 8, 1})
	})
}

func TestConcat(t *testing.T) {
	variants(t, []int{1, 2, 3}, func(t *testing.T, s Stream[int]) {
		result, err := s.Concat(Of(4, 5, 6)).ToSlice()
		testutil.AssertNoError(t, err)
		testutil.AssertSliceEqual(t, result, []int{1, 2, 3, 4, 5, 6})
	})
}

func TestConcatEmpty(t *testing.T) {
	count, err := Empty[int]().Concat(Empty[int]()).Count()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, count, int64(0))

	result, err := Of(1, 2).Concat(Empty[int]()).ToSlice()
	testutil.AssertNoError(t, err)
	testutil.AssertSliceEqual(t, result, []int{1, 2})

	result, err = Empty[int]().Concat(Of(1, 2)).ToSlice()
	testutil.AssertNoError(t, err)
	testutil.AssertSliceEqual(t, result, []int{1, 2})
}

func TestConcatAcrossVariants(t *testing.T) {
	result, err := Of(1, 2).Concat(EagerOf(3, 4)).ToSlice()
	testutil.AssertNoError(t, err)
	testutil.AssertSliceEqual(t, result, []int{1, 2, 3, 4})

	result, err = EagerOf(1, 2).Concat(Of(3, 4)).ToSlice()
	testutil.AssertNoError(t, err)
	testutil.AssertSliceEqual(t, result, []int{1, 2, 3, 4})
}

func TestSkipLimit(t *testing.T) {
	variants(t, []int{1, 2, 3, 4, 5}, func(t *testing.T, s Stream[int]) {
		result, err := s.Skip(1).Limit(3).ToSlice()
		testutil.AssertNoError(t, err)
		testutil.AssertSliceEqual(t, result, []int{2, 3, 4})
	})
}

func TestSkipLimitBounds(t *testing.T) {
	variants(t, []int{1, 2, 3}, func(t *testing.T, s Stream[int]) {
		result, err := s.Skip(10).ToSlice()
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, len(result), 0)
	})

	variants(t, []int{1, 2, 3}, func(t *testing.T, s Stream[int]) {
		result, err := s.Limit(-1).ToSlice()
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, len(result), 0)
	})

	variants(t, []int{1, 2, 3}, func(t *testing.T, s Stream[int]) {
		result, err := s.Skip(-1).Limit(10).ToSlice()
		testutil.AssertNoError(t, err)
		testutil.AssertSliceEqual(t, result, []int{1, 2, 3})
	})
}

func TestPeek(t *testing.T) {
	variants(t, []int{1, 2, 3}, func(t *testing.T, s Stream[int]) {
		var seen []int
		result, err := s.Peek(func(v int) { seen = append(seen, v) }).ToSlice()
		testutil.AssertNoError(t, err)
		testutil.AssertSliceEqual(t, result, []int{1, 2, 3})
		testutil.AssertSliceEqual(t, seen, []int{1, 2, 3})
	})
}

func TestForEach(t *testing.T) {
	variants(t, []string{"a", "b"}, func(t *testing.T, s Stream[string]) {
		var got []string
		err := s.ForEach(func(v string) { got = append(got, v) })
		testutil.AssertNoError(t, err)
		testutil.AssertSliceEqual(t, got, []string{"a", "b"})
	})
}

func TestReduceSum(t *testing.T) {
	variants(t, []int{1, 2, 3, 4}, func(t *testing.T, s Stream[int]) {
		sum, err := s.Reduce(0, func(acc, v int) int { return acc + v })
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, sum, 10)
	})
}

func TestReduceEmptyReturnsIdentity(t *testing.T) {
	variants(t, []int{}, func(t *testing.T, s Stream[int]) {
		sum, err := s.Reduce(42, func(acc, v int) int { return acc + v })
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, sum, 42)
	})
}

func TestFindFirst(t *testing.T) {
	variants(t, []int{-1, -2, -3, 5, 2, 0}, func(t *testing.T, s Stream[int]) {
		v, found, err := s.FindFirst(func(x int) bool { return x >= 0 })
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, found, true)
		testutil.AssertEqual(t, v, 5)
	})
}

func TestFindFirstNoMatch(t *testing.T) {
	variants(t, []int{1, 2, 3}, func(t *testing.T, s Stream[int]) {
		_, found, err := s.FindFirst(func(x int) bool { return x > 10 })
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, found, false)
	})
}

func TestFirstLast(t *testing.T) {
	variants(t, []int{-1, -2, -3, 5, 2, 0}, func(t *testing.T, s Stream[int]) {
		first, found, err := s.First()
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, found, true)
		testutil.AssertEqual(t, first, -1)

		last, found, err := s.Last()
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, found, true)
		testutil.AssertEqual(t, last, 0)
	})
}

func TestFirstLastEmpty(t *testing.T) {
	variants(t, []int{}, func(t *testing.T, s Stream[int]) {
		_, found, err := s.First()
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, found, false)

		_, found, err = s.Last()
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, found, false)
	})
}

func TestCount(t *testing.T) {
	variants(t, []int{1, 1, 2, 1, 3, 2}, func(t *testing.T, s Stream[int]) {
		count, err := s.Count()
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, count, int64(6))
	})
}

func TestNilCallbacksPanic(t *testing.T) {
	variants(t, []int{1}, func(t *testing.T, s Stream[int]) {
		testutil.AssertPanics(t, func() { s.Filter(nil) })
		testutil.AssertPanics(t, func() { s.Map(nil) })
		testutil.AssertPanics(t, func() { s.FlatMap(nil) })
		testutil.AssertPanics(t, func() { s.Sorted(nil) })
		testutil.AssertPanics(t, func() { s.Concat(nil) })
		testutil.AssertPanics(t, func() { s.Peek(nil) })
		testutil.AssertPanics(t, func() { _ = s.ForEach(nil) })
		testutil.AssertPanics(t, func() { _, _ = s.Reduce(0, nil) })
		testutil.AssertPanics(t, func() { _, _, _ = s.FindFirst(nil) })
	})
}

// primeFactors returns the distinct prime factors of n in increasing order.
func primeFactors(n int) Stream[int] {
	var factors []int
	for f := 2; f <= n; f++ {
		if n%f != 0 {
			continue
		}
		prime := true
		for d := 2; d < f; d++ {
			if f%d == 0 {
				prime = false
				break
			}
		}
		if prime {
			factors = append(factors, f)
		}
	}
	return FromSlice(factors)
}
