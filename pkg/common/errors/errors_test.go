package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestValidationErrorMessage(t *testing.T) {
	err := NewValidationError("stream", "name", "", "cannot be empty")

	msg := err.Error()
	if !strings.Contains(msg, "stream") || !strings.Contains(msg, "name") {
		t.Fatalf("message missing module/field: %q", msg)
	}
}

func TestValidationErrorHint(t *testing.T) {
	err := NewValidationError("stream", "name", "", "cannot be empty").
		WithHint("provide a non-empty name")

	if !strings.Contains(err.Error(), "provide a non-empty name") {
		t.Fatalf("message missing hint: %q", err.Error())
	}
}

func TestValidationErrorUnwrap(t *testing.T) {
	err := NewValidationError("stream", "stream", nil, "cannot be nil")

	if !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatal("expected ValidationError to match ErrInvalidConfiguration")
	}
}
