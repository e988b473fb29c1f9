package validator

import "errors"

// Common validation errors that can be used across the application.
var (
	// ErrValidationFailed is returned when validation fails but no specific error is provided.
	ErrValidationFailed = errors.New("validation failed")

	// ErrUnsupportedKind reports a rule built with an out-of-range Kind.
	// Rule constructors panic instead; this sentinel is for schema builders
	// that surface the misuse as an error.
	ErrUnsupportedKind = errors.New("unsupported field kind")
)
