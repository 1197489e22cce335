package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates a request is missing required fields.
	// Compose fails with this error when title or concept is empty.
	ErrInvalidInput = errors.New("invalid input")

	// ErrProfileUnavailable indicates the profile store could not be read.
	// Compose still works without a profile; only profile commands fail.
	ErrProfileUnavailable = errors.New("profile unavailable")
)
