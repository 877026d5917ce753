package errors

import (
	"errors"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		checkFn  func(error) bool
		expected bool
	}{
		{
			name:     "ErrNotFound is recognized",
			err:      ErrNotFound,
			checkFn:  IsNotFound,
			expected: true,
		},
		{
			name:     "Wrapped ErrNotFound is recognized",
			err:      errors.Join(ErrNotFound, errors.New("additional context")),
			checkFn:  IsNotFound,
			expected: true,
		},
		{
			name:     "Different error is not ErrNotFound",
			err:      ErrRateLimitExceeded,
			checkFn:  IsNotFound,
			expected: false,
		},
		{
			name:     "ErrRateLimitExceeded is recognized",
			err:      ErrRateLimitExceeded,
			checkFn:  IsRateLimitExceeded,
			expected: true,
		},
		{
			name:     "ErrInvalidInput is recognized",
			err:      ErrInvalidInput,
			checkFn:  IsInvalidInput,
			expected: true,
		},
		{
			name:     "ErrUnknownIntent is recognized",
			err:      ErrUnknownIntent,
			checkFn:  IsUnknownIntent,
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.checkFn(tt.err)
			if result != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("intent", "not in taxonomy")

	if err.Field != "intent" {
		t.Errorf("expected field 'intent', got '%s'", err.Field)
	}

	if err.Message != "not in taxonomy" {
		t.Errorf("expected message 'not in taxonomy', got '%s'", err.Message)
	}

	expected := "validation failed on intent: not in taxonomy"
	if err.Error() != expected {
		t.Errorf("expected error '%s', got '%s'", expected, err.Error())
	}
}

func TestTrainingError(t *testing.T) {
	baseErr := errors.New("empty corpus")
	err := NewTrainingError(0, baseErr)

	if err.SampleCount != 0 {
		t.Errorf("expected sample count 0, got %d", err.SampleCount)
	}

	if !errors.Is(err, baseErr) {
		t.Error("expected error to wrap base error")
	}

	if err.Error() == "" {
		t.Error("expected non-empty error message")
	}
}
