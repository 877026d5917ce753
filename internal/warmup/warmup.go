// Package warmup prepares the bot for traffic at startup: it trains the
// intent classifier from the stored corpus and builds the announcement
// retrieval index.
package warmup

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/aauhelpdesk/helpdesk-go/internal/logger"
	"github.com/aauhelpdesk/helpdesk-go/internal/metrics"
	"github.com/aauhelpdesk/helpdesk-go/internal/news"
	"github.com/aauhelpdesk/helpdesk-go/internal/nlp"
	"github.com/aauhelpdesk/helpdesk-go/internal/storage"
)

// Stats tracks warmup results.
// All fields use atomic operations for concurrent access.
type Stats struct {
	TrainingSamples atomic.Int64
	NewsItems       atomic.Int64
}

// Options configures startup warmup.
type Options struct {
	Metrics *metrics.Metrics // Optional metrics recorder
}

// Run trains the classifier and builds the news index concurrently.
// A database with no stored training samples is seeded with the
// built-in corpus first, so a fresh deployment answers sensibly.
func Run(ctx context.Context, db *storage.DB, classifier *nlp.Classifier, index *news.Index, log *logger.Logger, opts Options) (*Stats, error) {
	stats := &Stats{}
	start := time.Now()
	log = log.WithModule("warmup")

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := trainClassifier(ctx, db, classifier, log, stats, opts.Metrics); err != nil {
			return fmt.Errorf("train classifier: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		if err := buildNewsIndex(ctx, db, index, log, stats, opts.Metrics); err != nil {
			return fmt.Errorf("build news index: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return stats, err
	}

	log.WithField("training_samples", stats.TrainingSamples.Load()).
		WithField("news_items", stats.NewsItems.Load()).
		WithField("duration_ms", time.Since(start).Milliseconds()).
		Info("Warmup complete")
	return stats, nil
}

func trainClassifier(ctx context.Context, db *storage.DB, classifier *nlp.Classifier, log *logger.Logger, stats *Stats, m *metrics.Metrics) error {
	stored, err := db.ListTrainingSamples(ctx)
	if err != nil {
		return err
	}

	if len(stored) == 0 {
		seeds := nlp.SeedSamples()
		toStore := make([]storage.TrainingSample, 0, len(seeds))
		for _, s := range seeds {
			toStore = append(toStore, storage.TrainingSample{Text: s.Text, Intent: s.Intent})
		}
		if err := db.SaveTrainingSamples(ctx, toStore); err != nil {
			return fmt.Errorf("persist seed corpus: %w", err)
		}
		stored, err = db.ListTrainingSamples(ctx)
		if err != nil {
			return err
		}
		log.WithField("samples", len(stored)).Info("Seeded empty training corpus")
	}

	corpus := make([]nlp.Sample, 0, len(stored))
	for _, s := range stored {
		corpus = append(corpus, nlp.Sample{Text: s.Text, Intent: s.Intent})
	}

	if err := classifier.Train(corpus); err != nil {
		if m != nil {
			m.RecordTrainingRun("startup", "error")
		}
		return err
	}

	stats.TrainingSamples.Store(int64(len(corpus)))
	if m != nil {
		m.RecordTrainingRun("startup", "success")
		m.SetTrainingSamples(classifier.SampleCount())
	}
	log.WithField("samples", len(corpus)).Info("Classifier trained")
	return nil
}

func buildNewsIndex(ctx context.Context, db *storage.DB, index *news.Index, log *logger.Logger, stats *Stats, m *metrics.Metrics) error {
	stored, err := db.ListNewsItems(ctx)
	if err != nil {
		return err
	}

	items := make([]news.Item, 0, len(stored))
	for _, s := range stored {
		items = append(items, news.FromStored(s.ID, s.Channel, s.Text, s.Intent, s.Parameters, s.PostedAt))
	}
	if err := index.Initialize(items); err != nil {
		return err
	}

	count := index.Count()
	stats.NewsItems.Store(int64(count))
	if m != nil {
		m.SetNewsIndexSize(count)
	}
	log.WithField("indexed", count).Info("News index built")
	return nil
}
