package generator

import "fmt"

// Kind classifies a generation failure. Kinds are stable across releases;
// callers may switch on them to decide how to report the failure.
type Kind int

const (
	// KindDecode: the stored bytes are not a supported raster format.
	KindDecode Kind = iota + 1
	// KindImageNotFound: the handle does not resolve to a stored image.
	KindImageNotFound
	// KindInvalidDimensions: width or height outside [10, 200].
	KindInvalidDimensions
	// KindSizeExceeded: width*height beyond the hard cell ceiling.
	KindSizeExceeded
	// KindInsufficientMemory: the pre-flight memory estimate failed.
	KindInsufficientMemory
	// KindResourceExhausted: a stage ran out of resources mid-pipeline.
	KindResourceExhausted
	// KindInternal: a defensive invariant was violated. Should be
	// unreachable given the pathfinder's fallback tiers.
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindDecode:
		return "decode_error"
	case KindImageNotFound:
		return "image_not_found"
	case KindInvalidDimensions:
		return "invalid_dimensions"
	case KindSizeExceeded:
		return "size_exceeded"
	case KindInsufficientMemory:
		return "insufficient_memory"
	case KindResourceExhausted:
		return "resource_exhausted"
	case KindInternal:
		return "internal_error"
	default:
		return "unknown"
	}
}

// Error is a typed generation failure: a stable kind, a descriptive
// message, and optionally the underlying cause.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error { return e.cause }

func newError(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func wrapError(kind Kind, cause error, message string) *Error {
	return &Error{Kind: kind, Message: message, cause: cause}
}
