package ner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"google.golang.org/genai"
)

// DefaultGeminiModel is used when no model is configured.
const DefaultGeminiModel = "gemini-2.0-flash"

// geminiRecognizer extracts entities using the Gemini API in JSON mode.
type geminiRecognizer struct {
	client *genai.Client
	model  string
}

// newGeminiRecognizer creates a Gemini-based recognizer.
// Returns nil if apiKey is empty (entity recognition disabled).
func newGeminiRecognizer(ctx context.Context, apiKey, model string) (*geminiRecognizer, error) {
	if apiKey == "" {
		return nil, nil //nolint:nilnil // Intentional: recognition disabled when no API key
	}

	if model == "" {
		model = DefaultGeminiModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &geminiRecognizer{
		client: client,
		model:  model,
	}, nil
}

// Recognize asks Gemini for the slot values present in text.
func (r *geminiRecognizer) Recognize(ctx context.Context, text string) (map[string][]string, error) {
	if r == nil {
		return nil, errors.New("recognizer is nil")
	}

	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		ResponseMIMEType:  "application/json",
		Temperature:       genai.Ptr[float32](0.1), // Low temperature for consistent extraction
		MaxOutputTokens:   256,
	}

	start := time.Now()
	result, err := r.client.Models.GenerateContent(ctx, r.model, genai.Text(text), config)
	duration := time.Since(start)

	if err != nil {
		slog.WarnContext(ctx, "entity recognition API call failed",
			"provider", "gemini",
			"model", r.model,
			"input_length", len(text),
			"duration_ms", duration.Milliseconds(),
			"error", err)
		return nil, fmt.Errorf("generate content failed: %w", err)
	}

	raw, err := extractText(result)
	if err != nil {
		return nil, err
	}

	entities, err := parseEntities(raw)
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "entity recognition completed",
		"provider", "gemini",
		"model", r.model,
		"slots", len(entities),
		"duration_ms", duration.Milliseconds())
	return entities, nil
}

// extractText pulls the text payload out of a generation result.
func extractText(result *genai.GenerateContentResponse) (string, error) {
	if result == nil || len(result.Candidates) == 0 {
		return "", errors.New("empty response from model")
	}
	candidate := result.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", errors.New("no content in response")
	}
	for _, part := range candidate.Content.Parts {
		if part.Text != "" {
			return part.Text, nil
		}
	}
	return "", errors.New("no text part in response")
}

// Provider returns the provider name.
func (r *geminiRecognizer) Provider() string {
	return "gemini"
}
