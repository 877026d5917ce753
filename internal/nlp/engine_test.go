package nlp

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aauhelpdesk/helpdesk-go/internal/logger"
	"github.com/aauhelpdesk/helpdesk-go/internal/session"
)

func testEngine(t *testing.T, recognizer EntityRecognizer) *Engine {
	t.Helper()

	classifier := NewClassifier()
	require.NoError(t, classifier.Train(SeedSamples()))

	extractor := NewExtractor()
	extractor.now = func() time.Time {
		return time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	}

	cfg := Config{
		ConfidenceThreshold:  0.3,
		ClarifyLowConfidence: true,
		FollowUpMaxWords:     5,
	}
	return NewEngine(classifier, extractor, recognizer, cfg, logger.NewWithWriter("error", io.Discard))
}

func TestAnalyzeFreshTurn(t *testing.T) {
	e := testEngine(t, nil)

	res := e.Analyze(context.Background(), "What are the admission requirements for computer science?", nil)

	assert.Equal(t, IntentAdmissionInquiry, res.Intent)
	assert.False(t, res.FollowUp)
	assert.Equal(t, []string{"computer science"}, res.Parameters[SlotDepartment])
	assert.Empty(t, res.Missing)
	assert.False(t, res.NeedsClarification)
}

func TestAnalyzeMissingSlotAsksClarification(t *testing.T) {
	e := testEngine(t, nil)

	res := e.Analyze(context.Background(), "How do I apply for admission?", nil)

	assert.Equal(t, IntentAdmissionInquiry, res.Intent)
	assert.Equal(t, []string{SlotDepartment}, res.Missing)
	assert.True(t, res.NeedsClarification)
}

func TestAnalyzeFollowUpTurn(t *testing.T) {
	e := testEngine(t, nil)

	prior := session.NewContext("s1")
	prior.LastIntent = IntentGradeInquiry
	prior.AccumulatedParameters = map[string][]string{SlotSemester: {"first"}}
	prior.MissingParameters = []string{SlotYear}

	res := e.Analyze(context.Background(), "2024", prior)

	assert.True(t, res.FollowUp)
	assert.Equal(t, IntentGradeInquiry, res.Intent)
	assert.Equal(t, FollowUpConfidence, res.Confidence)
	assert.Equal(t, []string{"2024"}, res.Parameters[SlotYear])
	assert.Equal(t, []string{"first"}, res.Parameters[SlotSemester], "accumulated values survive the merge")
	assert.Empty(t, res.Missing)
	assert.False(t, res.NeedsClarification)
}

func TestAnalyzeFollowUpDefaultsIntent(t *testing.T) {
	e := testEngine(t, nil)

	prior := session.NewContext("s1")
	prior.MissingParameters = []string{SlotYear}

	res := e.Analyze(context.Background(), "2024", prior)

	assert.True(t, res.FollowUp)
	assert.Equal(t, IntentGeneralInfo, res.Intent)
}

func TestAnalyzeLongMessageIsNotFollowUp(t *testing.T) {
	e := testEngine(t, nil)

	prior := session.NewContext("s1")
	prior.LastIntent = IntentGradeInquiry
	prior.MissingParameters = []string{SlotYear}

	res := e.Analyze(context.Background(), "actually never mind that, how do I request an official transcript instead", prior)

	assert.False(t, res.FollowUp)
	assert.Equal(t, IntentTranscriptRequest, res.Intent)
}

func TestAnalyzeNoMissingSlotsIsNotFollowUp(t *testing.T) {
	e := testEngine(t, nil)

	prior := session.NewContext("s1")
	prior.LastIntent = IntentGeneralInfo

	res := e.Analyze(context.Background(), "library hours", prior)

	assert.False(t, res.FollowUp)
}

func TestAnalyzeMonotonicMerge(t *testing.T) {
	e := testEngine(t, nil)

	prior := session.NewContext("s1")
	prior.LastIntent = IntentRegistrationHelp
	prior.AccumulatedParameters = map[string][]string{
		SlotSemester: {"first"},
		SlotYear:     {"2024"},
	}
	prior.MissingParameters = []string{SlotYear}

	res := e.Analyze(context.Background(), "2025", prior)

	assert.Equal(t, []string{"2025"}, res.Parameters[SlotYear], "new value overwrites its slot")
	assert.Equal(t, []string{"first"}, res.Parameters[SlotSemester], "untouched slot survives")
}

type stubRecognizer struct {
	entities map[string][]string
	err      error
}

func (s *stubRecognizer) Recognize(_ context.Context, _ string) (map[string][]string, error) {
	return s.entities, s.err
}

func TestAnalyzeRecognizerFillsGaps(t *testing.T) {
	rec := &stubRecognizer{entities: map[string][]string{
		SlotDepartment: {"architecture"},
		SlotYear:       {"1990"},
	}}
	e := testEngine(t, rec)

	res := e.Analyze(context.Background(), "admission requirements for 2024", nil)

	assert.Equal(t, []string{"architecture"}, res.Parameters[SlotDepartment], "recognizer fills empty slots")
	assert.Equal(t, []string{"2024"}, res.Parameters[SlotYear], "regex value wins over recognizer")
}

func TestAnalyzeRecognizerErrorIsTolerated(t *testing.T) {
	rec := &stubRecognizer{err: errors.New("provider down")}
	e := testEngine(t, rec)

	res := e.Analyze(context.Background(), "What are the admission requirements for computer science?", nil)

	assert.Equal(t, IntentAdmissionInquiry, res.Intent)
	assert.Equal(t, []string{"computer science"}, res.Parameters[SlotDepartment])
}
