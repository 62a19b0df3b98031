package stego

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestIsKind(t *testing.T) {
	err := capacityError(3750, 4024)
	if !IsKind(err, KindInsufficientCapacity) {
		t.Error("IsKind() = false for the matching kind")
	}
	if IsKind(err, KindUnveil) {
		t.Error("IsKind() = true for a different kind")
	}
	if IsKind(errors.New("plain"), KindUnveil) {
		t.Error("IsKind() = true for an unstructured error")
	}
	if IsKind(nil, KindUnveil) {
		t.Error("IsKind(nil) = true")
	}
}

func TestIsKind_Wrapped(t *testing.T) {
	inner := wrapError(KindEmbedding, "failed to hide data", errors.New("engine diagnostic"))
	err := fmt.Errorf("request failed: %w", inner)
	if !IsKind(err, KindEmbedding) {
		t.Error("IsKind() should see through fmt.Errorf wrapping")
	}
}

func TestCapacityError_Fields(t *testing.T) {
	var e *Error
	if !errors.As(capacityError(3750, 4024), &e) {
		t.Fatal("errors.As() failed to extract *Error")
	}
	if e.Kind != KindInsufficientCapacity {
		t.Errorf("Kind = %q, want %q", e.Kind, KindInsufficientCapacity)
	}
	if e.Capacity != 3750 || e.Required != 4024 {
		t.Errorf("Capacity/Required = %d/%d, want 3750/4024", e.Capacity, e.Required)
	}
	msg := e.Error()
	if !strings.Contains(msg, "3750") || !strings.Contains(msg, "4024") {
		t.Errorf("Error() = %q, want both byte counts in the message", msg)
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("bit stream exhausted")
	err := wrapError(KindUnveil, "failed to unveil", cause)
	if !errors.Is(err, cause) {
		t.Error("errors.Is() should reach the cause")
	}
	if !strings.Contains(err.Error(), "bit stream exhausted") {
		t.Errorf("Error() = %q, want the cause diagnostic preserved", err.Error())
	}
}
