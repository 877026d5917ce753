// Package ner provides LLM-backed entity recognition that supplements
// the regex slot extractor. Providers are optional: with no API key
// configured, construction returns nil and the dialogue manager runs
// on regex extraction alone.
package ner

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Recognizer extracts slot values from user text.
type Recognizer interface {
	// Recognize returns slot name to values. Unknown slots are ignored
	// by the caller; regex-extracted values always win on conflict.
	Recognize(ctx context.Context, text string) (map[string][]string, error)
	// Provider returns the provider name for logging and metrics.
	Provider() string
}

// slotNames lists the slots providers are asked to fill.
var slotNames = []string{"department", "semester", "year", "fee_amount", "document_type", "student_id"}

// systemPrompt instructs providers to answer with bare JSON.
const systemPrompt = `You extract structured entities from questions sent to a university helpdesk.
Given a user message, respond with a single JSON object and nothing else.
The object maps slot names to arrays of string values found in the message:
  department (canonical lowercase, e.g. "computer science"),
  semester (one of first, second, third, fall, spring, summer),
  year (4-digit calendar year),
  fee_amount (number without currency),
  document_type (e.g. "transcript", "degree certificate"),
  student_id.
Omit slots with no value. Never invent values not present in the message.`

// parseEntities decodes a provider's JSON reply. Providers sometimes
// wrap JSON in code fences; those are stripped before decoding.
func parseEntities(raw string) (map[string][]string, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	raw = strings.TrimSpace(raw)

	var decoded map[string][]string
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, fmt.Errorf("failed to parse entity response: %w", err)
	}

	entities := make(map[string][]string)
	for _, slot := range slotNames {
		values := decoded[slot]
		var kept []string
		for _, v := range values {
			v = strings.TrimSpace(v)
			if v != "" {
				kept = append(kept, strings.ToLower(v))
			}
		}
		if len(kept) > 0 {
			entities[slot] = kept
		}
	}
	return entities, nil
}
