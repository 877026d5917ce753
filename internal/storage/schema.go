package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// InitSchema creates all necessary tables and indexes.
// Note: WAL mode is configured in db.go's New function.
func InitSchema(db *sql.DB) error {
	if err := createTrainingSamplesTable(db); err != nil {
		return err
	}

	if err := createNewsItemsTable(db); err != nil {
		return err
	}

	return createConversationLogTable(db)
}

func createTrainingSamplesTable(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS training_samples (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		text TEXT NOT NULL,
		intent TEXT NOT NULL,
		created_at INTEGER NOT NULL,
		UNIQUE(text, intent)
	);
	CREATE INDEX IF NOT EXISTS idx_training_samples_intent ON training_samples(intent);
	`

	if _, err := db.ExecContext(context.Background(), query); err != nil {
		return fmt.Errorf("failed to create training_samples table: %w", err)
	}

	return nil
}

func createNewsItemsTable(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS news_items (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		channel TEXT NOT NULL,
		text TEXT NOT NULL UNIQUE,
		intent TEXT,
		parameters TEXT,
		posted_at INTEGER NOT NULL,
		cached_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_news_items_intent ON news_items(intent);
	CREATE INDEX IF NOT EXISTS idx_news_items_posted_at ON news_items(posted_at);
	`

	if _, err := db.ExecContext(context.Background(), query); err != nil {
		return fmt.Errorf("failed to create news_items table: %w", err)
	}

	return nil
}

func createConversationLogTable(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS conversation_log (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT NOT NULL,
		user_message TEXT NOT NULL,
		response TEXT NOT NULL,
		intent TEXT NOT NULL,
		confidence REAL NOT NULL,
		follow_up INTEGER NOT NULL DEFAULT 0,
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_conversation_log_session ON conversation_log(session_id);
	CREATE INDEX IF NOT EXISTS idx_conversation_log_created_at ON conversation_log(created_at);
	`

	if _, err := db.ExecContext(context.Background(), query); err != nil {
		return fmt.Errorf("failed to create conversation_log table: %w", err)
	}

	return nil
}
