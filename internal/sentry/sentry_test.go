package sentry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInitializeDisabledWithoutDSN(t *testing.T) {
	assert.NoError(t, Initialize(Config{}))
	assert.False(t, IsEnabled())
}

func TestFlushWithNoEvents(t *testing.T) {
	assert.True(t, Flush(100*time.Millisecond))
}

func TestCaptureWhenDisabled(t *testing.T) {
	// Capture calls must be safe no-ops before initialization.
	CaptureException(assert.AnError)
	CaptureMessage("startup check")
}
