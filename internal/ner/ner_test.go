package ner

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aauhelpdesk/helpdesk-go/internal/logger"
	"github.com/aauhelpdesk/helpdesk-go/internal/metrics"
	"github.com/aauhelpdesk/helpdesk-go/internal/ratelimit"
)

func TestParseEntities(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected map[string][]string
		wantErr  bool
	}{
		{
			name:     "plain object",
			raw:      `{"department": ["Computer Science"], "year": ["2024"]}`,
			expected: map[string][]string{"department": {"computer science"}, "year": {"2024"}},
		},
		{
			name:     "code fenced",
			raw:      "```json\n{\"semester\": [\"first\"]}\n```",
			expected: map[string][]string{"semester": {"first"}},
		},
		{
			name:     "unknown slots dropped",
			raw:      `{"campus": ["sidist kilo"], "year": ["2025"]}`,
			expected: map[string][]string{"year": {"2025"}},
		},
		{
			name:     "empty values dropped",
			raw:      `{"department": ["", "  "], "year": []}`,
			expected: map[string][]string{},
		},
		{
			name:    "invalid json",
			raw:     "sorry, I cannot do that",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseEntities(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func testDeps(t *testing.T) (*metrics.Metrics, *logger.Logger) {
	t.Helper()
	return metrics.New(prometheus.NewRegistry()), logger.NewWithWriter("error", io.Discard)
}

func TestNewDisabledWithoutKeys(t *testing.T) {
	m, log := testDeps(t)

	rec, err := New(context.Background(), Config{}, m, log)
	require.NoError(t, err)
	assert.Nil(t, rec)
}

type stubProvider struct {
	name     string
	entities map[string][]string
	err      error
	calls    int
}

func (s *stubProvider) Recognize(_ context.Context, _ string) (map[string][]string, error) {
	s.calls++
	return s.entities, s.err
}

func (s *stubProvider) Provider() string { return s.name }

func TestFallbackChain(t *testing.T) {
	m, log := testDeps(t)

	failing := &stubProvider{name: "gemini", err: errors.New("quota exceeded")}
	working := &stubProvider{name: "groq", entities: map[string][]string{"year": {"2024"}}}
	chain := &fallbackChain{
		providers: []Recognizer{failing, working},
		metrics:   m,
		logger:    log,
	}

	entities, err := chain.Recognize(context.Background(), "grades for 2024")
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{"year": {"2024"}}, entities)
	assert.Equal(t, 1, failing.calls)
	assert.Equal(t, 1, working.calls)
}

func TestFallbackChainAllFail(t *testing.T) {
	m, log := testDeps(t)

	chain := &fallbackChain{
		providers: []Recognizer{
			&stubProvider{name: "gemini", err: errors.New("quota exceeded")},
			&stubProvider{name: "groq", err: errors.New("timeout")},
		},
		metrics: m,
		logger:  log,
	}

	_, err := chain.Recognize(context.Background(), "grades for 2024")
	assert.Error(t, err)
}

func TestWithRateLimit(t *testing.T) {
	m, _ := testDeps(t)

	inner := &stubProvider{name: "gemini", entities: map[string][]string{"year": {"2024"}}}
	limited := WithRateLimit(inner, ratelimit.New(1, 0.001), m)

	entities, err := limited.Recognize(context.Background(), "grades for 2024")
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{"year": {"2024"}}, entities)

	entities, err = limited.Recognize(context.Background(), "grades for 2024")
	require.NoError(t, err)
	assert.Nil(t, entities, "exhausted bucket skips recognition")
	assert.Equal(t, 1, inner.calls)
}

func TestWithRateLimitNilRecognizer(t *testing.T) {
	m, _ := testDeps(t)
	assert.Nil(t, WithRateLimit(nil, ratelimit.New(1, 1), m))
}

func TestGroqRecognizerDisabled(t *testing.T) {
	rec, err := newGroqRecognizer("", "")
	require.NoError(t, err)
	assert.Nil(t, rec)
}
