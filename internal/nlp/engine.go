package nlp

import (
	"context"

	"github.com/aauhelpdesk/helpdesk-go/internal/logger"
	"github.com/aauhelpdesk/helpdesk-go/internal/session"
	"github.com/aauhelpdesk/helpdesk-go/internal/stringutil"
)

// FollowUpConfidence is assigned to turns handled as follow-up answers:
// the intent is carried over rather than predicted.
const FollowUpConfidence = 0.8

// EntityRecognizer supplements regex extraction with model-recognized
// entities. Implementations must tolerate absence: a nil recognizer
// disables the feature.
type EntityRecognizer interface {
	Recognize(ctx context.Context, text string) (map[string][]string, error)
}

// Config controls dialogue manager behavior.
type Config struct {
	// ConfidenceThreshold below which a reply asks for clarification.
	ConfidenceThreshold float64
	// ClarifyLowConfidence enables the confidence gate. When false,
	// only missing slots trigger clarification.
	ClarifyLowConfidence bool
	// FollowUpMaxWords is the word-count ceiling for follow-up answers.
	FollowUpMaxWords int
}

// Result is the analysis of one chat turn.
type Result struct {
	Intent             string
	Confidence         float64
	Parameters         map[string][]string // merged, accumulated across turns
	Extracted          map[string][]string // this turn only
	Missing            []string
	NeedsClarification bool
	FollowUp           bool
}

// Engine is the dialogue manager. It decides between the follow-up and
// fresh branches, classifies, extracts, and merges into session context.
type Engine struct {
	classifier *Classifier
	extractor  *Extractor
	recognizer EntityRecognizer // may be nil
	cfg        Config
	logger     *logger.Logger
}

// NewEngine creates a dialogue manager.
// recognizer may be nil when LLM entity recognition is disabled.
func NewEngine(classifier *Classifier, extractor *Extractor, recognizer EntityRecognizer, cfg Config, log *logger.Logger) *Engine {
	if cfg.FollowUpMaxWords <= 0 {
		cfg.FollowUpMaxWords = 5
	}
	return &Engine{
		classifier: classifier,
		extractor:  extractor,
		recognizer: recognizer,
		cfg:        cfg,
		logger:     log.WithModule("nlp"),
	}
}

// Analyze processes one turn against the prior dialogue context.
// prior may be nil for a new session. The returned Result carries the
// merged parameter set; the caller persists it back to the store.
func (e *Engine) Analyze(ctx context.Context, message string, prior *session.Context) Result {
	normalized := Normalize(message)

	var res Result
	if e.isFollowUp(normalized, prior) {
		res = e.analyzeFollowUp(normalized, prior)
	} else {
		res = e.analyzeFresh(ctx, normalized)
	}

	// Monotonic merge: this turn's non-empty values overwrite their
	// slots, everything already accumulated survives.
	merged := make(map[string][]string)
	if prior != nil {
		for slot, values := range prior.AccumulatedParameters {
			copied := make([]string, len(values))
			copy(copied, values)
			merged[slot] = copied
		}
	}
	for slot, values := range res.Extracted {
		if len(values) == 0 {
			continue
		}
		copied := make([]string, len(values))
		copy(copied, values)
		merged[slot] = copied
	}
	res.Parameters = merged

	res.Missing = MissingSlots(res.Intent, merged)
	res.NeedsClarification = len(res.Missing) > 0 ||
		(e.cfg.ClarifyLowConfidence && res.Confidence < e.cfg.ConfidenceThreshold)

	e.logger.WithField("intent", res.Intent).
		WithField("confidence", res.Confidence).
		WithField("follow_up", res.FollowUp).
		WithField("missing", res.Missing).
		Debug("Turn analyzed")
	return res
}

// isFollowUp applies the follow-up rule: a prior context with pending
// missing slots, answered with a short utterance.
func (e *Engine) isFollowUp(normalized string, prior *session.Context) bool {
	if prior == nil || len(prior.MissingParameters) == 0 {
		return false
	}
	return stringutil.WordCount(normalized) <= e.cfg.FollowUpMaxWords
}

// analyzeFollowUp carries the prior intent over and extracts only the
// slots that were still missing.
func (e *Engine) analyzeFollowUp(normalized string, prior *session.Context) Result {
	intent := prior.LastIntent
	if intent == "" {
		intent = IntentGeneralInfo
	}
	return Result{
		Intent:     intent,
		Confidence: FollowUpConfidence,
		Extracted:  e.extractor.ExtractOnly(normalized, prior.MissingParameters),
		FollowUp:   true,
	}
}

// analyzeFresh classifies the utterance and runs the full extractor
// registry. Model-recognized entities fill gaps but never override
// regex values.
func (e *Engine) analyzeFresh(ctx context.Context, normalized string) Result {
	intent, confidence := e.classifier.Predict(normalized)
	extracted := e.extractor.Extract(normalized)

	if e.recognizer != nil {
		entities, err := e.recognizer.Recognize(ctx, normalized)
		if err != nil {
			e.logger.WithError(err).Debug("Entity recognition failed, using regex values only")
		}
		for slot, values := range entities {
			if len(values) == 0 || len(extracted[slot]) > 0 {
				continue
			}
			extracted[slot] = values
		}
	}

	return Result{
		Intent:     intent,
		Confidence: confidence,
		Extracted:  extracted,
	}
}
