package ner

import (
	"context"
	"errors"

	"github.com/aauhelpdesk/helpdesk-go/internal/logger"
	"github.com/aauhelpdesk/helpdesk-go/internal/metrics"
	"github.com/aauhelpdesk/helpdesk-go/internal/ratelimit"
)

// Config holds provider credentials. Empty keys disable a provider.
type Config struct {
	GeminiAPIKey string
	GeminiModel  string
	GroqAPIKey   string
	GroqModel    string
}

// New builds the recognizer chain from configured providers, Gemini
// first. Returns nil when no provider is configured, which disables
// entity recognition entirely.
func New(ctx context.Context, cfg Config, m *metrics.Metrics, log *logger.Logger) (Recognizer, error) {
	var providers []Recognizer

	gemini, err := newGeminiRecognizer(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		return nil, err
	}
	if gemini != nil {
		providers = append(providers, gemini)
	}

	groq, err := newGroqRecognizer(cfg.GroqAPIKey, cfg.GroqModel)
	if err != nil {
		return nil, err
	}
	if groq != nil {
		providers = append(providers, groq)
	}

	if len(providers) == 0 {
		return nil, nil //nolint:nilnil // Intentional: recognition disabled when no provider
	}

	names := make([]string, len(providers))
	for i, p := range providers {
		names[i] = p.Provider()
	}
	log.WithModule("ner").WithField("providers", names).Info("Entity recognition enabled")

	return &fallbackChain{
		providers: providers,
		metrics:   m,
		logger:    log.WithModule("ner"),
	}, nil
}

// WithRateLimit wraps a recognizer with a token bucket so LLM spend
// stays bounded. Turns arriving without a token skip recognition and
// fall back to regex extraction alone.
func WithRateLimit(rec Recognizer, limiter *ratelimit.Limiter, m *metrics.Metrics) Recognizer {
	if rec == nil || limiter == nil {
		return rec
	}
	return &rateLimitedRecognizer{inner: rec, limiter: limiter, metrics: m}
}

type rateLimitedRecognizer struct {
	inner   Recognizer
	limiter *ratelimit.Limiter
	metrics *metrics.Metrics
}

func (r *rateLimitedRecognizer) Recognize(ctx context.Context, text string) (map[string][]string, error) {
	if !r.limiter.Allow() {
		r.metrics.RecordRateLimiterDrop("llm")
		return nil, nil
	}
	return r.inner.Recognize(ctx, text)
}

func (r *rateLimitedRecognizer) Provider() string {
	return r.inner.Provider()
}

// fallbackChain tries providers in order until one answers.
type fallbackChain struct {
	providers []Recognizer
	metrics   *metrics.Metrics
	logger    *logger.Logger
}

// Recognize returns the first successful provider result. All provider
// failures are joined into one error.
func (c *fallbackChain) Recognize(ctx context.Context, text string) (map[string][]string, error) {
	var errs []error
	for _, p := range c.providers {
		entities, err := p.Recognize(ctx, text)
		if err == nil {
			c.metrics.RecordLLMRequest(p.Provider(), "success")
			return entities, nil
		}
		c.metrics.RecordLLMRequest(p.Provider(), "error")
		c.logger.WithError(err).
			WithField("provider", p.Provider()).
			Debug("Entity recognition provider failed, trying next")
		errs = append(errs, err)
	}
	return nil, errors.Join(errs...)
}

// Provider returns the name of the first provider in the chain.
func (c *fallbackChain) Provider() string {
	if len(c.providers) == 0 {
		return ""
	}
	return c.providers[0].Provider()
}
