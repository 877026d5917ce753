// Package main provides the AAU helpdesk chatbot server entry point.
package main

import (
	"context"
	"time"

	"github.com/aauhelpdesk/helpdesk-go/internal/config"
	"github.com/aauhelpdesk/helpdesk-go/internal/logger"
	"github.com/aauhelpdesk/helpdesk-go/internal/metrics"
	"github.com/aauhelpdesk/helpdesk-go/internal/r2client"
	"github.com/aauhelpdesk/helpdesk-go/internal/ratelimit"
	"github.com/aauhelpdesk/helpdesk-go/internal/session"
	"github.com/aauhelpdesk/helpdesk-go/internal/storage"
)

// updateGaugeMetrics periodically refreshes gauges that track live
// state: active sessions, rate limiter buckets, and corpus sizes.
func updateGaugeMetrics(ctx context.Context, store *session.MemoryStore, limiter *ratelimit.PerKeyLimiter, db *storage.DB, m *metrics.Metrics, log *logger.Logger) {
	ticker := time.NewTicker(config.MetricsUpdateInterval)
	defer ticker.Stop()

	update := func() {
		m.SetActiveSessions(store.Count())

		queryCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		if count, err := db.CountTrainingSamples(queryCtx); err == nil {
			m.SetTrainingSamples(count)
		}

		log.WithField("active_sessions", store.Count()).
			WithField("active_limiters", limiter.GetActiveCount()).
			Debug("Gauge metrics updated")
	}

	update()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			update()
		}
	}
}

// runBackups uploads a compressed database snapshot on a fixed
// interval until the context is canceled.
func runBackups(ctx context.Context, backup *r2client.Backup, interval time.Duration, log *logger.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			runCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
			if err := backup.Run(runCtx); err != nil {
				log.WithError(err).Error("Scheduled backup failed")
			}
			cancel()
		}
	}
}
