package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// slowQueryThreshold triggers a warning log for long database operations.
const slowQueryThreshold = 100 * time.Millisecond

// SaveTrainingSamples inserts training samples in a single transaction.
// Duplicate (text, intent) pairs are ignored so retraining with an
// overlapping corpus is idempotent.
func (db *DB) SaveTrainingSamples(ctx context.Context, samples []TrainingSample) error {
	if len(samples) == 0 {
		return nil
	}

	query := `
		INSERT INTO training_samples (text, intent, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT(text, intent) DO NOTHING
	`

	start := time.Now()
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	createdAt := time.Now().Unix()
	for _, s := range samples {
		if _, err := stmt.ExecContext(ctx, s.Text, s.Intent, createdAt); err != nil {
			slog.ErrorContext(ctx, "failed to save training sample",
				"intent", s.Intent,
				"error", err)
			return fmt.Errorf("failed to save training sample: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit training samples: %w", err)
	}

	if duration := time.Since(start); duration > slowQueryThreshold {
		slog.WarnContext(ctx, "slow database operation",
			"operation", "SaveTrainingSamples",
			"count", len(samples),
			"duration_ms", duration.Milliseconds())
	}
	return nil
}

// ListTrainingSamples returns all stored training samples.
func (db *DB) ListTrainingSamples(ctx context.Context) ([]TrainingSample, error) {
	query := `SELECT id, text, intent, created_at FROM training_samples ORDER BY id`

	rows, err := db.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query training samples: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var samples []TrainingSample
	for rows.Next() {
		var s TrainingSample
		if err := rows.Scan(&s.ID, &s.Text, &s.Intent, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan training sample: %w", err)
		}
		samples = append(samples, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read training samples: %w", err)
	}
	return samples, nil
}

// CountTrainingSamples returns the number of stored training samples.
func (db *DB) CountTrainingSamples(ctx context.Context) (int, error) {
	var count int
	err := db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM training_samples`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count training samples: %w", err)
	}
	return count, nil
}

// SaveNewsItems inserts announcements in a single transaction.
// Items with duplicate text are ignored.
func (db *DB) SaveNewsItems(ctx context.Context, items []NewsItem) error {
	if len(items) == 0 {
		return nil
	}

	query := `
		INSERT INTO news_items (channel, text, intent, parameters, posted_at, cached_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(text) DO NOTHING
	`

	start := time.Now()
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	cachedAt := time.Now().Unix()
	for _, item := range items {
		if _, err := stmt.ExecContext(ctx, item.Channel, item.Text, item.Intent, item.Parameters, item.PostedAt, cachedAt); err != nil {
			slog.ErrorContext(ctx, "failed to save news item",
				"channel", item.Channel,
				"error", err)
			return fmt.Errorf("failed to save news item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit news items: %w", err)
	}

	if duration := time.Since(start); duration > slowQueryThreshold {
		slog.WarnContext(ctx, "slow database operation",
			"operation", "SaveNewsItems",
			"count", len(items),
			"duration_ms", duration.Milliseconds())
	}
	return nil
}

// ListNewsItems returns all stored announcements, most recent first.
func (db *DB) ListNewsItems(ctx context.Context) ([]NewsItem, error) {
	query := `
		SELECT id, channel, text, COALESCE(intent, ''), COALESCE(parameters, ''), posted_at, cached_at
		FROM news_items ORDER BY posted_at DESC
	`

	rows, err := db.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query news items: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var items []NewsItem
	for rows.Next() {
		var item NewsItem
		if err := rows.Scan(&item.ID, &item.Channel, &item.Text, &item.Intent, &item.Parameters, &item.PostedAt, &item.CachedAt); err != nil {
			return nil, fmt.Errorf("failed to scan news item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read news items: %w", err)
	}
	return items, nil
}

// CountNewsItems returns the number of stored announcements.
func (db *DB) CountNewsItems(ctx context.Context) (int, error) {
	var count int
	err := db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM news_items`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count news items: %w", err)
	}
	return count, nil
}

// LogConversation appends one chat exchange to the conversation log.
func (db *DB) LogConversation(ctx context.Context, entry ConversationEntry) error {
	query := `
		INSERT INTO conversation_log (session_id, user_message, response, intent, confidence, follow_up, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	start := time.Now()
	followUp := 0
	if entry.FollowUp {
		followUp = 1
	}
	_, err := db.conn.ExecContext(ctx, query,
		entry.SessionID, entry.UserMessage, entry.Response,
		entry.Intent, entry.Confidence, followUp, time.Now().Unix())
	if err != nil {
		slog.ErrorContext(ctx, "failed to log conversation",
			"session_id", entry.SessionID,
			"error", err)
		return fmt.Errorf("failed to log conversation: %w", err)
	}

	if duration := time.Since(start); duration > slowQueryThreshold {
		slog.WarnContext(ctx, "slow database operation",
			"operation", "LogConversation",
			"session_id", entry.SessionID,
			"duration_ms", duration.Milliseconds())
	}
	return nil
}

// ListConversation returns the logged exchanges for one session in order.
func (db *DB) ListConversation(ctx context.Context, sessionID string) ([]ConversationEntry, error) {
	query := `
		SELECT id, session_id, user_message, response, intent, confidence, follow_up, created_at
		FROM conversation_log WHERE session_id = ? ORDER BY id
	`

	rows, err := db.conn.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query conversation log: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []ConversationEntry
	for rows.Next() {
		var e ConversationEntry
		var followUp int
		if err := rows.Scan(&e.ID, &e.SessionID, &e.UserMessage, &e.Response, &e.Intent, &e.Confidence, &followUp, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan conversation entry: %w", err)
		}
		e.FollowUp = followUp != 0
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read conversation log: %w", err)
	}
	return entries, nil
}
