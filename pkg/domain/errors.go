package domain

import "errors"

// ErrValidationFailed is the sentinel wrapped by Result.Err when a run
// produced at least one error.
var ErrValidationFailed = errors.New("environment validation failed")

// ErrNoSources is returned when an engine is configured without any
// environment source to read from.
var ErrNoSources = errors.New("no environment sources configured")
