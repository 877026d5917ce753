package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domerrors "github.com/aauhelpdesk/helpdesk-go/internal/errors"
)

func TestClassifierUntrained(t *testing.T) {
	c := NewClassifier()

	assert.False(t, c.IsTrained())
	assert.Equal(t, 0, c.SampleCount())

	intent, confidence := c.Predict("how do i register for courses")
	assert.Equal(t, IntentGeneralInfo, intent)
	assert.Equal(t, UntrainedConfidence, confidence)
}

func TestClassifierTrainAndPredict(t *testing.T) {
	c := NewClassifier()
	require.NoError(t, c.Train(SeedSamples()))
	require.True(t, c.IsTrained())

	tests := []struct {
		name     string
		message  string
		expected string
	}{
		{
			name:     "admission question",
			message:  "What are the admission requirements for computer science?",
			expected: IntentAdmissionInquiry,
		},
		{
			name:     "transcript question",
			message:  "I need my official transcript for a job application",
			expected: IntentTranscriptRequest,
		},
		{
			name:     "portal problem",
			message:  "I cannot log into the student portal",
			expected: IntentTechnicalSupport,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent, confidence := c.Predict(tt.message)
			assert.Equal(t, tt.expected, intent)
			assert.GreaterOrEqual(t, confidence, 0.0)
			assert.LessOrEqual(t, confidence, 1.0)
		})
	}
}

func TestClassifierTrainRejectsBadInput(t *testing.T) {
	c := NewClassifier()

	t.Run("empty sample set", func(t *testing.T) {
		err := c.Train(nil)
		assert.ErrorIs(t, err, domerrors.ErrInvalidInput)
	})

	t.Run("unknown intent label", func(t *testing.T) {
		err := c.Train([]Sample{{Text: "hello", Intent: "weather_forecast"}})
		assert.ErrorIs(t, err, domerrors.ErrUnknownIntent)
		assert.False(t, c.IsTrained())
	})

	t.Run("all samples empty after tokenization", func(t *testing.T) {
		err := c.Train([]Sample{{Text: "???", Intent: IntentGeneralInfo}})
		assert.ErrorIs(t, err, domerrors.ErrInvalidInput)
	})
}

func TestClassifierPredictEmptyMessage(t *testing.T) {
	c := NewClassifier()
	require.NoError(t, c.Train(SeedSamples()))

	intent, confidence := c.Predict("   ")
	assert.Equal(t, IntentGeneralInfo, intent)
	assert.Equal(t, UntrainedConfidence, confidence)
}

func TestClassifierRetrainReplacesModel(t *testing.T) {
	c := NewClassifier()
	require.NoError(t, c.Train(SeedSamples()))
	first := c.SampleCount()

	smaller := []Sample{
		{Text: "how do i pay my tuition fee", Intent: IntentFeePayment},
		{Text: "where can i pay registration fees", Intent: IntentFeePayment},
		{Text: "when does the semester start", Intent: IntentScheduleInquiry},
	}
	require.NoError(t, c.Train(smaller))

	assert.Equal(t, 3, c.SampleCount())
	assert.NotEqual(t, first, c.SampleCount())
}
