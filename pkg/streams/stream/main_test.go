package stream

import (
	"testing"

	"go.uber.org/goleak"
)

// TestMain enables goroutine leak detection for all tests in this package.
// Stream evaluation is fully synchronous; any leaked goroutine here would
// point at a regression in the evaluation model.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
