// Package session manages per-conversation dialogue context.
// Contexts accumulate slot values across turns and expire after a
// configurable idle period.
package session

import (
	"time"

	"github.com/google/uuid"
)

// maxTurnHistory bounds the per-session turn log.
const maxTurnHistory = 20

// Turn records one exchange in a session.
type Turn struct {
	UserMessage string    `json:"user_message"`
	Response    string    `json:"response"`
	Intent      string    `json:"intent"`
	Timestamp   time.Time `json:"timestamp"`
}

// Context is the dialogue state for one session.
type Context struct {
	SessionID             string              `json:"session_id"`
	LastIntent            string              `json:"last_intent"`
	AccumulatedParameters map[string][]string `json:"accumulated_parameters"`
	MissingParameters     []string            `json:"missing_parameters"`
	TurnHistory           []Turn              `json:"turn_history"`
	UpdatedAt             time.Time           `json:"updated_at"`
}

// NewContext creates an empty context for the given session ID.
func NewContext(sessionID string) *Context {
	return &Context{
		SessionID:             sessionID,
		AccumulatedParameters: make(map[string][]string),
		UpdatedAt:             time.Now(),
	}
}

// NewSessionID issues a fresh session identifier.
func NewSessionID() string {
	return uuid.NewString()
}

// MergeParameters folds extracted values into the accumulated set.
// The merge is monotonic: a non-empty value list overwrites its slot,
// while slots absent from extracted keep their accumulated values.
func (c *Context) MergeParameters(extracted map[string][]string) {
	if c.AccumulatedParameters == nil {
		c.AccumulatedParameters = make(map[string][]string)
	}
	for slot, values := range extracted {
		if len(values) == 0 {
			continue
		}
		copied := make([]string, len(values))
		copy(copied, values)
		c.AccumulatedParameters[slot] = copied
	}
}

// RecordTurn appends an exchange to the bounded turn history.
func (c *Context) RecordTurn(userMessage, response, intent string) {
	c.TurnHistory = append(c.TurnHistory, Turn{
		UserMessage: userMessage,
		Response:    response,
		Intent:      intent,
		Timestamp:   time.Now(),
	})
	if len(c.TurnHistory) > maxTurnHistory {
		c.TurnHistory = c.TurnHistory[len(c.TurnHistory)-maxTurnHistory:]
	}
}

// Clone returns a deep copy so callers can read state without holding
// store locks.
func (c *Context) Clone() *Context {
	if c == nil {
		return nil
	}
	cloned := &Context{
		SessionID:  c.SessionID,
		LastIntent: c.LastIntent,
		UpdatedAt:  c.UpdatedAt,
	}
	cloned.AccumulatedParameters = make(map[string][]string, len(c.AccumulatedParameters))
	for slot, values := range c.AccumulatedParameters {
		copied := make([]string, len(values))
		copy(copied, values)
		cloned.AccumulatedParameters[slot] = copied
	}
	cloned.MissingParameters = append([]string(nil), c.MissingParameters...)
	cloned.TurnHistory = append([]Turn(nil), c.TurnHistory...)
	return cloned
}
