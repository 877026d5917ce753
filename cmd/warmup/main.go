// Package main provides an offline warmup tool. It seeds and trains
// the classifier and builds the announcement index against the
// configured database, then exits. Useful for preparing a data volume
// before the first deploy and for verifying a corpus trains cleanly.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aauhelpdesk/helpdesk-go/internal/config"
	"github.com/aauhelpdesk/helpdesk-go/internal/logger"
	"github.com/aauhelpdesk/helpdesk-go/internal/metrics"
	"github.com/aauhelpdesk/helpdesk-go/internal/news"
	"github.com/aauhelpdesk/helpdesk-go/internal/nlp"
	"github.com/aauhelpdesk/helpdesk-go/internal/storage"
	"github.com/aauhelpdesk/helpdesk-go/internal/warmup"
)

const runTimeout = 5 * time.Minute

func main() {
	cfg, err := config.Load()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel)

	db, err := storage.New(cfg.SQLitePath())
	if err != nil {
		log.WithError(err).Error("Failed to open database")
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	classifier := nlp.NewClassifier()
	index := news.NewIndex(log)
	m := metrics.New(prometheus.NewRegistry())

	stats, err := warmup.Run(ctx, db, classifier, index, log, warmup.Options{Metrics: m})
	if err != nil {
		log.WithError(err).Error("Warmup failed")
		os.Exit(1)
	}

	log.WithField("training_samples", stats.TrainingSamples.Load()).
		WithField("news_items", stats.NewsItems.Load()).
		Info("Warmup finished")
}
