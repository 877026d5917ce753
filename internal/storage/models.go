package storage

import "errors"

// Common errors
var (
	// ErrNotFound is returned when a resource is not found in the database
	ErrNotFound = errors.New("resource not found")
)

// TrainingSample is a labeled utterance used to train the classifier
type TrainingSample struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Intent    string `json:"intent"`
	CreatedAt int64  `json:"created_at"`
}

// NewsItem is a scraped channel announcement.
// Parameters holds the JSON-encoded slot values the item was labeled with.
type NewsItem struct {
	ID         int64  `json:"id"`
	Channel    string `json:"channel"`
	Text       string `json:"text"`
	Intent     string `json:"intent,omitempty"`
	Parameters string `json:"parameters,omitempty"`
	PostedAt   int64  `json:"posted_at"`
	CachedAt   int64  `json:"cached_at"`
}

// ConversationEntry is one logged chat exchange
type ConversationEntry struct {
	ID          int64   `json:"id"`
	SessionID   string  `json:"session_id"`
	UserMessage string  `json:"user_message"`
	Response    string  `json:"response"`
	Intent      string  `json:"intent"`
	Confidence  float64 `json:"confidence"`
	FollowUp    bool    `json:"follow_up"`
	CreatedAt   int64   `json:"created_at"`
}
