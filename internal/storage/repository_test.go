package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *DB {
	t.Helper()
	db, err := NewTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestSaveAndListTrainingSamples(t *testing.T) {
	db := newTestRepo(t)
	ctx := context.Background()

	samples := []TrainingSample{
		{Text: "how do i register", Intent: "registration_help"},
		{Text: "what is the tuition fee", Intent: "fee_payment"},
	}
	require.NoError(t, db.SaveTrainingSamples(ctx, samples))

	got, err := db.ListTrainingSamples(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "how do i register", got[0].Text)
	assert.Equal(t, "registration_help", got[0].Intent)
	assert.NotZero(t, got[0].CreatedAt)

	count, err := db.CountTrainingSamples(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestSaveTrainingSamplesIgnoresDuplicates(t *testing.T) {
	db := newTestRepo(t)
	ctx := context.Background()

	sample := TrainingSample{Text: "how do i register", Intent: "registration_help"}
	require.NoError(t, db.SaveTrainingSamples(ctx, []TrainingSample{sample}))
	require.NoError(t, db.SaveTrainingSamples(ctx, []TrainingSample{sample}))

	count, err := db.CountTrainingSamples(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSaveTrainingSamplesEmpty(t *testing.T) {
	db := newTestRepo(t)
	assert.NoError(t, db.SaveTrainingSamples(context.Background(), nil))
}

func TestSaveAndListNewsItems(t *testing.T) {
	db := newTestRepo(t)
	ctx := context.Background()

	older := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).Unix()
	newer := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC).Unix()
	items := []NewsItem{
		{Channel: "AAU Official", Text: "older announcement", Intent: "general_info", PostedAt: older},
		{Channel: "AAU Registrar", Text: "newer announcement", Intent: "registration_help", Parameters: `{"semester":["second"]}`, PostedAt: newer},
	}
	require.NoError(t, db.SaveNewsItems(ctx, items))

	got, err := db.ListNewsItems(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "newer announcement", got[0].Text, "most recent first")
	assert.Equal(t, `{"semester":["second"]}`, got[0].Parameters)

	count, err := db.CountNewsItems(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestSaveNewsItemsIgnoresDuplicateText(t *testing.T) {
	db := newTestRepo(t)
	ctx := context.Background()

	item := NewsItem{Channel: "AAU Official", Text: "same announcement", PostedAt: time.Now().Unix()}
	require.NoError(t, db.SaveNewsItems(ctx, []NewsItem{item}))
	require.NoError(t, db.SaveNewsItems(ctx, []NewsItem{item}))

	count, err := db.CountNewsItems(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestLogAndListConversation(t *testing.T) {
	db := newTestRepo(t)
	ctx := context.Background()

	entries := []ConversationEntry{
		{SessionID: "s1", UserMessage: "hi", Response: "hello", Intent: "greeting", Confidence: 1.0},
		{SessionID: "s1", UserMessage: "2024", Response: "here are your grades", Intent: "grade_inquiry", Confidence: 0.8, FollowUp: true},
		{SessionID: "s2", UserMessage: "fees", Response: "fee info", Intent: "fee_payment", Confidence: 0.6},
	}
	for _, e := range entries {
		require.NoError(t, db.LogConversation(ctx, e))
	}

	got, err := db.ListConversation(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "hi", got[0].UserMessage)
	assert.False(t, got[0].FollowUp)
	assert.True(t, got[1].FollowUp)
	assert.InDelta(t, 0.8, got[1].Confidence, 1e-9)
}
