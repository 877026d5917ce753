// Package sentry provides Sentry SDK initialization for error tracking.
// It wraps the Sentry Go SDK so the rest of the application only deals
// with a small capture surface.
package sentry

import (
	"context"
	"time"

	"github.com/getsentry/sentry-go"
)

// Config holds Sentry configuration.
type Config struct {
	// DSN is the Sentry project DSN. Empty disables error tracking.
	DSN string

	// Environment identifies the deployment environment (e.g., "production", "staging").
	Environment string

	// Release identifies the application release version.
	Release string

	// SampleRate controls error sampling (0.0-1.0, default 1.0 = 100%).
	SampleRate float64

	// Debug enables Sentry SDK debug logging.
	Debug bool
}

// Initialize sets up the Sentry SDK.
// If DSN is empty, Sentry is disabled and nil is returned.
func Initialize(cfg Config) error {
	if cfg.DSN == "" {
		return nil // Sentry disabled
	}

	sampleRate := cfg.SampleRate
	if sampleRate <= 0 {
		sampleRate = 1.0
	}

	return sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.DSN,
		Environment:      cfg.Environment,
		Release:          cfg.Release,
		SampleRate:       sampleRate,
		Debug:            cfg.Debug,
		AttachStacktrace: true,
	})
}

// Flush waits for buffered events to be sent to the server.
// Returns true if all events were sent within the timeout.
func Flush(timeout time.Duration) bool {
	return sentry.Flush(timeout)
}

// IsEnabled returns true if Sentry is initialized and active.
func IsEnabled() bool {
	return sentry.CurrentHub().Client() != nil
}

// CaptureException captures an error and sends it to Sentry.
func CaptureException(err error) {
	sentry.CaptureException(err)
}

// CaptureExceptionWithContext captures an error using the hub bound to
// the request context when one exists.
func CaptureExceptionWithContext(ctx context.Context, err error) {
	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub()
	}
	hub.CaptureException(err)
}

// CaptureMessage captures a message and sends it to Sentry.
func CaptureMessage(message string) {
	sentry.CaptureMessage(message)
}
