package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestPerKey(t *testing.T, maxTokens float64) *PerKeyLimiter {
	t.Helper()
	pkl := NewPerKeyLimiter(PerKeyLimiterConfig{
		MaxTokens:     maxTokens,
		RefillRate:    0.001,
		CleanupPeriod: time.Hour,
	})
	t.Cleanup(pkl.Stop)
	return pkl
}

func TestPerKeyIsolatesKeys(t *testing.T) {
	pkl := newTestPerKey(t, 1)

	assert.True(t, pkl.Allow("session-a"))
	assert.False(t, pkl.Allow("session-a"), "session-a exhausted")
	assert.True(t, pkl.Allow("session-b"), "session-b unaffected")
	assert.Equal(t, 2, pkl.GetActiveCount())
}

func TestPerKeyEmptyKeyAlwaysAllowed(t *testing.T) {
	pkl := newTestPerKey(t, 1)

	for i := 0; i < 5; i++ {
		assert.True(t, pkl.Allow(""))
	}
	assert.Equal(t, 0, pkl.GetActiveCount())
}

func TestPerKeyOnDrop(t *testing.T) {
	pkl := newTestPerKey(t, 1)

	drops := 0
	pkl.OnDrop(func() { drops++ })

	pkl.Allow("s1")
	pkl.Allow("s1")
	pkl.Allow("s1")

	assert.Equal(t, 2, drops)
}

func TestPerKeyStopIsIdempotent(t *testing.T) {
	pkl := NewPerKeyLimiter(PerKeyLimiterConfig{
		MaxTokens:     1,
		RefillRate:    1,
		CleanupPeriod: time.Hour,
	})
	pkl.Stop()
	pkl.Stop()
}
