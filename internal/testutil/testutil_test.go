package testutil

import (
	"errors"
	"testing"
)

func TestAssertEqual(t *testing.T) {
	AssertEqual(t, 1, 1)
	AssertEqual(t, "a", "a")
}

func TestAssertSliceEqual(t *testing.T) {
	AssertSliceEqual(t, []int{1, 2, 3}, []int{1, 2, 3})
	AssertSliceEqual(t, []string(nil), []string{})
}

func TestAssertNoError(t *testing.T) {
	AssertNoError(t, nil)
}

func TestAssertErrorIs(t *testing.T) {
	base := errors.New("base")
	AssertErrorIs(t, base, base)
}

func TestAssertPanics(t *testing.T) {
	AssertPanics(t, func() { panic("boom") })
}
