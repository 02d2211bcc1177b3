package domain

import "errors"

// Domain errors represent error conditions at the edges of concordlog.
// The batching core itself never fails; these are returned by constructors,
// configuration and input decoding, and can be checked with errors.Is.
var (
	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("concordlog: invalid configuration")

	// ErrInvalidInput is returned when a caller-supplied event cannot be decoded.
	ErrInvalidInput = errors.New("concordlog: invalid input")
)
