package warmup

import (
	"context"
	"encoding/json"
	"io"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aauhelpdesk/helpdesk-go/internal/logger"
	"github.com/aauhelpdesk/helpdesk-go/internal/metrics"
	"github.com/aauhelpdesk/helpdesk-go/internal/news"
	"github.com/aauhelpdesk/helpdesk-go/internal/nlp"
	"github.com/aauhelpdesk/helpdesk-go/internal/storage"
)

func testDeps(t *testing.T) (*storage.DB, *logger.Logger) {
	t.Helper()
	db, err := storage.NewTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, logger.NewWithWriter("error", io.Discard)
}

func TestRunSeedsEmptyCorpus(t *testing.T) {
	db, log := testDeps(t)
	classifier := nlp.NewClassifier()
	index := news.NewIndex(log)
	m := metrics.New(prometheus.NewRegistry())

	stats, err := Run(context.Background(), db, classifier, index, log, Options{Metrics: m})
	require.NoError(t, err)

	assert.True(t, classifier.IsTrained())
	assert.Equal(t, int64(len(nlp.SeedSamples())), stats.TrainingSamples.Load())

	count, err := db.CountTrainingSamples(context.Background())
	require.NoError(t, err)
	assert.Equal(t, len(nlp.SeedSamples()), count, "seed corpus persisted")
}

func TestRunUsesStoredCorpus(t *testing.T) {
	db, log := testDeps(t)

	stored := []storage.TrainingSample{
		{Text: "how do i pay my tuition fee", Intent: nlp.IntentFeePayment},
		{Text: "when is course registration", Intent: nlp.IntentRegistrationHelp},
	}
	require.NoError(t, db.SaveTrainingSamples(context.Background(), stored))

	classifier := nlp.NewClassifier()
	stats, err := Run(context.Background(), db, classifier, news.NewIndex(log), log, Options{})
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.TrainingSamples.Load(), "stored corpus is not reseeded")
	assert.True(t, classifier.IsTrained())
}

func TestRunBuildsNewsIndex(t *testing.T) {
	db, log := testDeps(t)

	params, err := json.Marshal(map[string][]string{"semester": {"first"}})
	require.NoError(t, err)

	items := []storage.NewsItem{
		{
			Channel:    "aau_registrar",
			Text:       "Course registration for the first semester opens Monday at the registrar office.",
			Intent:     nlp.IntentRegistrationHelp,
			Parameters: string(params),
			PostedAt:   time.Now().Unix(),
		},
	}
	require.NoError(t, db.SaveNewsItems(context.Background(), items))

	index := news.NewIndex(log)
	stats, err := Run(context.Background(), db, nlp.NewClassifier(), index, log, Options{})
	require.NoError(t, err)

	assert.Equal(t, int64(1), stats.NewsItems.Load())
	assert.True(t, index.IsEnabled())
}

func TestReadinessState(t *testing.T) {
	s := NewReadinessState(time.Hour)
	assert.False(t, s.IsReady())
	assert.False(t, s.WarmupCompleted())

	status := s.Status()
	assert.False(t, status.Ready)
	assert.Equal(t, "warmup in progress", status.Reason)

	s.MarkReady()
	assert.True(t, s.IsReady())
	assert.True(t, s.WarmupCompleted())
	assert.Empty(t, s.Status().Reason)
}

func TestReadinessTimeout(t *testing.T) {
	s := NewReadinessState(10 * time.Millisecond)
	time.Sleep(20 * time.Millisecond)

	assert.True(t, s.IsReady())
	assert.False(t, s.WarmupCompleted())
	assert.Contains(t, s.Status().Reason, "timeout")
}
