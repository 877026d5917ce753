// Package ratelimit implements token bucket rate limiting for chat
// requests and outbound LLM calls.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Limiter is a token bucket rate limiter, safe for concurrent use.
// Tokens refill at refillRate per second up to maxTokens; each request
// consumes one token.
type Limiter struct {
	mu         sync.Mutex
	tokens     float64
	maxTokens  float64
	refillRate float64 // tokens per second
	lastRefill time.Time
}

// New creates a rate limiter with the given burst capacity and
// per-second refill rate.
//
// Example:
//
//	// Allow 10 LLM calls burst, refilling 1 token per 10 seconds
//	limiter := ratelimit.New(10, 0.1)
func New(maxTokens, refillRate float64) *Limiter {
	return &Limiter{
		tokens:     maxTokens,
		maxTokens:  maxTokens,
		refillRate: refillRate,
		lastRefill: time.Now(),
	}
}

// refill adds tokens based on elapsed time since last refill.
// Must be called with mu held.
func (l *Limiter) refill() {
	now := time.Now()
	elapsed := now.Sub(l.lastRefill).Seconds()

	l.tokens += elapsed * l.refillRate
	if l.tokens > l.maxTokens {
		l.tokens = l.maxTokens
	}
	l.lastRefill = now
}

// Allow reports whether a request is allowed, consuming a token if so.
// Non-blocking.
func (l *Limiter) Allow() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.refill()

	if l.tokens >= 1.0 {
		l.tokens -= 1.0
		return true
	}

	return false
}

// Wait blocks until a token is available or the context is canceled.
// Returns nil if a token was acquired, or ctx.Err() if canceled.
func (l *Limiter) Wait(ctx context.Context) error {
	for {
		l.mu.Lock()
		l.refill()

		if l.tokens >= 1 {
			l.tokens--
			l.mu.Unlock()
			return nil
		}

		waitTime := time.Duration((1 - l.tokens) / l.refillRate * float64(time.Second))
		l.mu.Unlock()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
			// Retry the loop to acquire token
		}
	}
}

// Available returns the current number of available tokens.
func (l *Limiter) Available() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.refill()
	return l.tokens
}

// IsFull reports whether the bucket is at capacity. Used to detect
// inactive limiters that can be cleaned up.
func (l *Limiter) IsFull() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.refill()
	return l.tokens >= l.maxTokens
}

// Reset restores the limiter to full capacity.
func (l *Limiter) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.tokens = l.maxTokens
	l.lastRefill = time.Now()
}
