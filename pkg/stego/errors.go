// errors.go - Caller-facing error taxonomy.
package stego

import (
	"errors"
	"fmt"
)

// Kind is a stable failure category for programmatic error handling.
//
// Callers should branch on Kind rather than matching error strings;
// Error() strings are human-readable and may evolve.
type Kind string

const (
	// KindCarrierDecode means the carrier bytes are not a decodable
	// raster image (hide path).
	KindCarrierDecode Kind = "carrier_decode"

	// KindUnsupportedFormat means the carrier appears to be a format
	// this layer declines to read, such as JPEG XL (unveil path).
	KindUnsupportedFormat Kind = "unsupported_format"

	// KindInsufficientCapacity means the payload cannot fit in the
	// carrier under the current resize permission.
	KindInsufficientCapacity Kind = "insufficient_capacity"

	// KindSecretRegistration means the engine rejected the payload file.
	KindSecretRegistration Kind = "secret_registration"

	// KindEmbedding means the engine failed while producing the final
	// carrier bytes.
	KindEmbedding Kind = "embedding"

	// KindUnveil means the engine failed while recovering hidden files.
	KindUnveil Kind = "unveil"
)

// Error is the structured error returned by Hide and Unveil.
//
// Capacity and Required are populated for KindInsufficientCapacity and
// carry the byte counts from the capacity check. Cause holds the underlying
// engine or codec diagnostic, unmodified.
type Error struct {
	Kind     Kind
	Message  string
	Capacity int
	Required int
	Cause    error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// IsKind reports whether err is (or wraps) a *Error with the given Kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}

func wrapError(kind Kind, msg string, cause error) error {
	return &Error{Kind: kind, Message: msg, Cause: cause}
}

func capacityError(capacity, required int) error {
	return &Error{
		Kind: KindInsufficientCapacity,
		Message: fmt.Sprintf(
			"image too small: capacity %d bytes, required %d bytes (enable resize or choose a larger image)",
			capacity, required),
		Capacity: capacity,
		Required: required,
	}
}
