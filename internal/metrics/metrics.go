package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Chat metrics
	ChatRequestsTotal   *prometheus.CounterVec
	ChatDurationSeconds *prometheus.HistogramVec

	// NLP metrics
	IntentPredictionsTotal *prometheus.CounterVec
	ClarificationsTotal    *prometheus.CounterVec
	FollowUpTurnsTotal     prometheus.Counter

	// Session metrics
	ActiveSessions prometheus.Gauge

	// Training metrics
	TrainingRunsTotal *prometheus.CounterVec
	TrainingSamples   prometheus.Gauge

	// News retrieval metrics
	NewsRetrievalsTotal *prometheus.CounterVec
	NewsIndexSize       prometheus.Gauge

	// HTTP metrics
	HTTPErrorsTotal *prometheus.CounterVec

	// Rate limiter metrics
	RateLimiterDropped *prometheus.CounterVec

	// LLM entity recognition metrics
	LLMRequestsTotal *prometheus.CounterVec
}

// New creates a new Metrics instance with all metrics registered
func New(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		// Chat metrics
		ChatRequestsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "aau_chat_requests_total",
				Help: "Total number of chat requests by intent and status",
			},
			[]string{"intent", "status"}, // status: success, error
		),

		ChatDurationSeconds: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "aau_chat_duration_seconds",
				Help:    "Chat turn processing duration in seconds by branch",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2},
			},
			[]string{"branch"}, // branch: fresh, followup, greeting, goodbye
		),

		// NLP metrics
		IntentPredictionsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "aau_intent_predictions_total",
				Help: "Total number of intent predictions by intent",
			},
			[]string{"intent"},
		),

		ClarificationsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "aau_clarifications_total",
				Help: "Total number of replies that asked for clarification by reason",
			},
			[]string{"reason"}, // reason: missing_slots, low_confidence
		),

		FollowUpTurnsTotal: promauto.With(registry).NewCounter(
			prometheus.CounterOpts{
				Name: "aau_followup_turns_total",
				Help: "Total number of turns handled as follow-up answers",
			},
		),

		// Session metrics
		ActiveSessions: promauto.With(registry).NewGauge(
			prometheus.GaugeOpts{
				Name: "aau_active_sessions",
				Help: "Current number of live dialogue contexts",
			},
		),

		// Training metrics
		TrainingRunsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "aau_training_runs_total",
				Help: "Total number of classifier training runs by trigger and status",
			},
			[]string{"trigger", "status"}, // trigger: startup, api; status: success, error
		),

		TrainingSamples: promauto.With(registry).NewGauge(
			prometheus.GaugeOpts{
				Name: "aau_training_samples",
				Help: "Number of samples in the current training corpus",
			},
		),

		// News retrieval metrics
		NewsRetrievalsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "aau_news_retrievals_total",
				Help: "Total number of announcement lookups by outcome",
			},
			[]string{"outcome"}, // outcome: hit, miss
		),

		NewsIndexSize: promauto.With(registry).NewGauge(
			prometheus.GaugeOpts{
				Name: "aau_news_index_size",
				Help: "Number of announcement documents in the retrieval index",
			},
		),

		// HTTP metrics
		HTTPErrorsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "aau_http_errors_total",
				Help: "Total HTTP errors by type and endpoint",
			},
			[]string{"error_type", "endpoint"}, // error_type: bad_request, rate_limit, internal
		),

		// Rate limiter metrics
		RateLimiterDropped: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "aau_rate_limiter_dropped_total",
				Help: "Total number of requests dropped by rate limiter",
			},
			[]string{"limiter_type"}, // limiter_type: user, llm
		),

		// LLM entity recognition metrics
		LLMRequestsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "aau_llm_requests_total",
				Help: "Total number of LLM entity recognition calls by provider and status",
			},
			[]string{"provider", "status"}, // status: success, error, timeout
		),
	}

	return m
}

// RecordChat records a completed chat turn
func (m *Metrics) RecordChat(intent, status, branch string, duration float64) {
	m.ChatRequestsTotal.WithLabelValues(intent, status).Inc()
	m.ChatDurationSeconds.WithLabelValues(branch).Observe(duration)
}

// RecordIntentPrediction records a classifier prediction
func (m *Metrics) RecordIntentPrediction(intent string) {
	m.IntentPredictionsTotal.WithLabelValues(intent).Inc()
}

// RecordClarification records a reply that asked the user for more information
func (m *Metrics) RecordClarification(reason string) {
	m.ClarificationsTotal.WithLabelValues(reason).Inc()
}

// RecordFollowUpTurn records a turn handled by the follow-up branch
func (m *Metrics) RecordFollowUpTurn() {
	m.FollowUpTurnsTotal.Inc()
}

// SetActiveSessions updates the live session gauge
func (m *Metrics) SetActiveSessions(count int) {
	m.ActiveSessions.Set(float64(count))
}

// RecordTrainingRun records a classifier training run
func (m *Metrics) RecordTrainingRun(trigger, status string) {
	m.TrainingRunsTotal.WithLabelValues(trigger, status).Inc()
}

// SetTrainingSamples updates the training corpus size gauge
func (m *Metrics) SetTrainingSamples(count int) {
	m.TrainingSamples.Set(float64(count))
}

// RecordNewsRetrieval records an announcement lookup
func (m *Metrics) RecordNewsRetrieval(outcome string) {
	m.NewsRetrievalsTotal.WithLabelValues(outcome).Inc()
}

// SetNewsIndexSize updates the retrieval index size gauge
func (m *Metrics) SetNewsIndexSize(count int) {
	m.NewsIndexSize.Set(float64(count))
}

// RecordHTTPError records HTTP error metrics
func (m *Metrics) RecordHTTPError(errorType, endpoint string) {
	m.HTTPErrorsTotal.WithLabelValues(errorType, endpoint).Inc()
}

// RecordRateLimiterDrop records a request dropped by rate limiter
func (m *Metrics) RecordRateLimiterDrop(limiterType string) {
	m.RateLimiterDropped.WithLabelValues(limiterType).Inc()
}

// RecordLLMRequest records an LLM entity recognition call
func (m *Metrics) RecordLLMRequest(provider, status string) {
	m.LLMRequestsTotal.WithLabelValues(provider, status).Inc()
}
