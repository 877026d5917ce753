package nlp

import (
	"sync"

	"github.com/navossoc/bayesian"

	domerrors "github.com/aauhelpdesk/helpdesk-go/internal/errors"
)

// UntrainedConfidence is returned by Predict before any training run.
const UntrainedConfidence = 0.5

// Sample is one labeled training utterance.
type Sample struct {
	Text   string `json:"text"`
	Intent string `json:"intent"`
}

// Classifier predicts an intent for normalized text using a TF-IDF
// weighted naive Bayes model. Training replaces the model atomically,
// so Predict stays safe during retraining.
type Classifier struct {
	mu          sync.RWMutex
	model       *bayesian.Classifier
	classes     []bayesian.Class
	sampleCount int
}

// NewClassifier creates an untrained classifier over the intent taxonomy.
func NewClassifier() *Classifier {
	intents := Intents()
	classes := make([]bayesian.Class, len(intents))
	for i, intent := range intents {
		classes[i] = bayesian.Class(intent)
	}
	return &Classifier{classes: classes}
}

// Train builds a fresh model from samples and swaps it in.
// Samples with unknown intents are rejected up front.
func (c *Classifier) Train(samples []Sample) error {
	if len(samples) == 0 {
		return domerrors.NewTrainingError(0, domerrors.ErrInvalidInput)
	}
	for _, s := range samples {
		if !IsValidIntent(s.Intent) {
			return domerrors.NewTrainingError(len(samples), domerrors.ErrUnknownIntent)
		}
	}

	model := bayesian.NewClassifierTfIdf(c.classes...)
	learned := 0
	for _, s := range samples {
		tokens := Tokenize(Normalize(s.Text))
		if len(tokens) == 0 {
			continue
		}
		model.Learn(tokens, bayesian.Class(s.Intent))
		learned++
	}
	if learned == 0 {
		return domerrors.NewTrainingError(len(samples), domerrors.ErrInvalidInput)
	}
	model.ConvertTermsFreqToTfIdf()

	c.mu.Lock()
	c.model = model
	c.sampleCount = learned
	c.mu.Unlock()
	return nil
}

// Predict returns the most likely intent and a confidence in [0,1].
// An untrained classifier answers with the general_info fallback.
func (c *Classifier) Predict(text string) (string, float64) {
	c.mu.RLock()
	model := c.model
	c.mu.RUnlock()

	if model == nil {
		return IntentGeneralInfo, UntrainedConfidence
	}

	tokens := Tokenize(Normalize(text))
	if len(tokens) == 0 {
		return IntentGeneralInfo, UntrainedConfidence
	}

	scores, idx, _ := model.ProbScores(tokens)
	if idx < 0 || idx >= len(c.classes) {
		return IntentGeneralInfo, UntrainedConfidence
	}

	confidence := scores[idx]
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}
	return string(c.classes[idx]), confidence
}

// IsTrained reports whether a model has been trained.
func (c *Classifier) IsTrained() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.model != nil
}

// SampleCount returns the number of samples the current model learned from.
func (c *Classifier) SampleCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sampleCount
}
