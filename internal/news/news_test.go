package news

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aauhelpdesk/helpdesk-go/internal/logger"
	"github.com/aauhelpdesk/helpdesk-go/internal/nlp"
)

func testItems() []Item {
	return []Item{
		{
			ID:      1,
			Channel: "AAU Registrar",
			Text:    "Announcement: course registration for second semester is open from February 10. Late registration incurs penalties. Visit the registrar portal.",
			Intent:  nlp.IntentRegistrationHelp,
			Parameters: map[string][]string{
				"semester": {"second"},
			},
			Date: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:      2,
			Channel: "AAU Official",
			Text:    "Please be informed that the tuition fee payment deadline for all undergraduate programs is March 15. Payments accepted via TeleBirr and Commercial Bank of Ethiopia.",
			Intent:  nlp.IntentFeePayment,
			Date:    time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:      3,
			Channel: "AAU Official",
			Text:    "Notice: the academic calendar for 2026 has been published, including exam schedule and semester dates for all colleges and departments.",
			Intent:  nlp.IntentScheduleInquiry,
			Date:    time.Date(2026, 1, 25, 0, 0, 0, 0, time.UTC),
		},
		{
			// User question, filtered at indexing time.
			ID:      4,
			Channel: "AAU Students",
			Text:    "How do I register for courses this semester?",
			Intent:  nlp.IntentRegistrationHelp,
			Date:    time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC),
		},
	}
}

func newTestIndex(t *testing.T) *Index {
	t.Helper()
	idx := NewIndex(logger.NewWithWriter("error", io.Discard))
	require.NoError(t, idx.Initialize(testItems()))
	return idx
}

func TestInitializeFiltersQuestions(t *testing.T) {
	idx := newTestIndex(t)
	assert.Equal(t, 3, idx.Count(), "question post should be dropped")
	assert.True(t, idx.IsEnabled())
}

func TestFindMatchesIntent(t *testing.T) {
	idx := newTestIndex(t)

	results := idx.Find(nlp.IntentFeePayment, nil, 3)
	require.NotEmpty(t, results)
	assert.Equal(t, int64(2), results[0].Item.ID)
	assert.Equal(t, 1, results[0].Rank)
	assert.InDelta(t, 0.95, float64(results[0].Confidence), 0.01)
}

func TestFindParameterBoost(t *testing.T) {
	idx := newTestIndex(t)

	results := idx.Find(nlp.IntentRegistrationHelp, map[string][]string{
		"semester": {"second"},
	}, 3)

	require.NotEmpty(t, results)
	assert.Equal(t, int64(1), results[0].Item.ID, "labeled slot match outranks everything")
}

func TestFindRespectsLimit(t *testing.T) {
	idx := newTestIndex(t)

	results := idx.Find(nlp.IntentGeneralInfo, nil, 1)
	assert.LessOrEqual(t, len(results), 1)
}

func TestFindDisabled(t *testing.T) {
	idx := newTestIndex(t)

	assert.Nil(t, idx.Find(nlp.IntentFeePayment, nil, 0))

	var nilIdx *Index
	assert.Nil(t, nilIdx.Find(nlp.IntentFeePayment, nil, 3))
	assert.False(t, nilIdx.IsEnabled())
}

func TestInitializeEmpty(t *testing.T) {
	idx := NewIndex(logger.NewWithWriter("error", io.Discard))
	require.NoError(t, idx.Initialize(nil))
	assert.True(t, idx.IsEnabled() == false || idx.Count() == 0)
	assert.Nil(t, idx.Find(nlp.IntentGeneralInfo, nil, 3))
}

func TestFormat(t *testing.T) {
	results := []Result{
		{Item: Item{
			Channel: "AAU Official",
			Text:    "Notice: registration opens Monday.",
			Date:    time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		}},
	}

	out := Format(results)
	assert.Contains(t, out, "Related Announcements")
	assert.Contains(t, out, "2026-02-01")
	assert.Contains(t, out, "AAU Official")
	assert.Contains(t, out, "registration opens Monday")
}

func TestFormatEmpty(t *testing.T) {
	assert.Empty(t, Format(nil))
}

func TestFormatTruncatesLongText(t *testing.T) {
	long := strings.Repeat("announcement ", 40)
	out := Format([]Result{{Item: Item{Channel: "AAU", Text: long, Date: time.Now()}}})
	assert.Contains(t, out, "...")
}

func TestIsInformative(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected bool
	}{
		{
			name:     "announcement kept",
			text:     "Please be informed that registration for the second semester opens on February 10 for all students.",
			expected: true,
		},
		{
			name:     "question dropped",
			text:     "When is the registration deadline for this semester at the university?",
			expected: false,
		},
		{
			name:     "short post dropped",
			text:     "Registration open!",
			expected: false,
		},
		{
			name:     "hashtag dump dropped",
			text:     "#aau #registration #students #2026 #university #deadline news",
			expected: false,
		},
		{
			name:     "forwarded request dropped",
			text:     "I want to know the full list of required documents for the graduate program please and thanks",
			expected: false,
		},
		{
			name:     "request phrase inside an announcement kept",
			text:     "For students who want to know how to apply: the application is open and the deadline is March 1 per the official notice.",
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, isInformative(tt.text))
		})
	}
}
