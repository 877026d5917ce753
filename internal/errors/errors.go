// Package errors provides domain-specific error types and sentinel errors
// for improved error handling across the application.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common scenarios.
// Use errors.Is() to check these errors in your code.
var (
	// ErrNotFound indicates a requested resource was not found.
	ErrNotFound = errors.New("resource not found")

	// ErrRateLimitExceeded indicates rate limit has been exceeded.
	ErrRateLimitExceeded = errors.New("rate limit exceeded")

	// ErrInvalidInput indicates user provided invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptyMessage indicates a chat request with no usable text.
	ErrEmptyMessage = errors.New("empty message")

	// ErrUnknownIntent indicates an intent name outside the taxonomy.
	ErrUnknownIntent = errors.New("unknown intent")

	// ErrNotTrained indicates the classifier has no trained model yet.
	ErrNotTrained = errors.New("classifier not trained")

	// ErrSessionNotFound indicates no dialogue context exists for a session ID.
	ErrSessionNotFound = errors.New("session not found")

	// ErrTimeout indicates an operation timed out.
	ErrTimeout = errors.New("operation timed out")
)

// IsNotFound reports whether err matches ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsRateLimitExceeded reports whether err matches ErrRateLimitExceeded.
func IsRateLimitExceeded(err error) bool {
	return errors.Is(err, ErrRateLimitExceeded)
}

// IsInvalidInput reports whether err matches ErrInvalidInput.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsUnknownIntent reports whether err matches ErrUnknownIntent.
func IsUnknownIntent(err error) bool {
	return errors.Is(err, ErrUnknownIntent)
}

// ValidationError represents input validation failures.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// TrainingError represents classifier training failures with context.
type TrainingError struct {
	SampleCount int
	Err         error
}

func (e *TrainingError) Error() string {
	return fmt.Sprintf("training error (samples=%d): %v", e.SampleCount, e.Err)
}

func (e *TrainingError) Unwrap() error {
	return e.Err
}

// NewTrainingError creates a new training error.
func NewTrainingError(sampleCount int, err error) *TrainingError {
	return &TrainingError{
		SampleCount: sampleCount,
		Err:         err,
	}
}
