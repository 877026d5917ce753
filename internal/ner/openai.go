package ner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const (
	// groqEndpoint is the OpenAI-compatible base URL for Groq.
	groqEndpoint = "https://api.groq.com/openai/v1"

	// DefaultGroqModel is used when no model is configured.
	DefaultGroqModel = "llama-3.3-70b-versatile"
)

// openaiRecognizer extracts entities via an OpenAI-compatible chat API.
// Used for Groq and any other provider exposing the OpenAI surface.
type openaiRecognizer struct {
	client   openai.Client
	model    string
	provider string
}

// newGroqRecognizer creates a Groq-backed recognizer.
// Returns nil if apiKey is empty (entity recognition disabled).
func newGroqRecognizer(apiKey, model string) (*openaiRecognizer, error) {
	if apiKey == "" {
		return nil, nil //nolint:nilnil // Intentional: recognition disabled when no API key
	}

	if model == "" {
		model = DefaultGroqModel
	}

	client := openai.NewClient(
		option.WithBaseURL(groqEndpoint),
		option.WithAPIKey(apiKey),
	)

	return &openaiRecognizer{
		client:   client,
		model:    model,
		provider: "groq",
	}, nil
}

// Recognize asks the chat model for the slot values present in text.
func (r *openaiRecognizer) Recognize(ctx context.Context, text string) (map[string][]string, error) {
	if r == nil {
		return nil, errors.New("recognizer is nil")
	}

	params := openai.ChatCompletionNewParams{
		Model: r.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(text),
		},
		Temperature: openai.Float(0.1), // Low temperature for consistent extraction
		MaxTokens:   openai.Int(256),
	}

	start := time.Now()
	resp, err := r.client.Chat.Completions.New(ctx, params)
	duration := time.Since(start)

	if err != nil {
		slog.WarnContext(ctx, "entity recognition API call failed",
			"provider", r.provider,
			"model", r.model,
			"input_length", len(text),
			"duration_ms", duration.Milliseconds(),
			"error", err)
		return nil, fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return nil, errors.New("empty response from model")
	}

	entities, err := parseEntities(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "entity recognition completed",
		"provider", r.provider,
		"model", r.model,
		"slots", len(entities),
		"duration_ms", duration.Milliseconds())
	return entities, nil
}

// Provider returns the provider name.
func (r *openaiRecognizer) Provider() string {
	return r.provider
}
