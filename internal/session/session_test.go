package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSessionID(t *testing.T) {
	a := NewSessionID()
	b := NewSessionID()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}

func TestMergeParameters(t *testing.T) {
	tests := []struct {
		name      string
		initial   map[string][]string
		extracted map[string][]string
		expected  map[string][]string
	}{
		{
			name:      "fills empty context",
			initial:   map[string][]string{},
			extracted: map[string][]string{"year": {"2024"}},
			expected:  map[string][]string{"year": {"2024"}},
		},
		{
			name:      "non-empty list overwrites its slot",
			initial:   map[string][]string{"year": {"2023"}},
			extracted: map[string][]string{"year": {"2024"}},
			expected:  map[string][]string{"year": {"2024"}},
		},
		{
			name:      "absent slot keeps accumulated value",
			initial:   map[string][]string{"semester": {"first"}},
			extracted: map[string][]string{"year": {"2024"}},
			expected:  map[string][]string{"semester": {"first"}, "year": {"2024"}},
		},
		{
			name:      "empty list does not erase",
			initial:   map[string][]string{"semester": {"first"}},
			extracted: map[string][]string{"semester": {}},
			expected:  map[string][]string{"semester": {"first"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := NewContext("s1")
			ctx.AccumulatedParameters = tt.initial
			ctx.MergeParameters(tt.extracted)
			assert.Equal(t, tt.expected, ctx.AccumulatedParameters)
		})
	}
}

func TestMergeParametersCopiesValues(t *testing.T) {
	ctx := NewContext("s1")
	values := []string{"2024"}
	ctx.MergeParameters(map[string][]string{"year": values})

	values[0] = "mutated"
	assert.Equal(t, []string{"2024"}, ctx.AccumulatedParameters["year"])
}

func TestRecordTurnBoundsHistory(t *testing.T) {
	ctx := NewContext("s1")
	for i := 0; i < maxTurnHistory+5; i++ {
		ctx.RecordTurn("question", "answer", "general_info")
	}
	assert.Len(t, ctx.TurnHistory, maxTurnHistory)
}

func TestCloneIsDeep(t *testing.T) {
	ctx := NewContext("s1")
	ctx.LastIntent = "grade_inquiry"
	ctx.MergeParameters(map[string][]string{"semester": {"first"}})
	ctx.MissingParameters = []string{"year"}
	ctx.RecordTurn("hi", "hello", "general_info")

	cloned := ctx.Clone()
	cloned.AccumulatedParameters["semester"][0] = "mutated"
	cloned.MissingParameters[0] = "mutated"
	cloned.LastIntent = "mutated"

	assert.Equal(t, []string{"first"}, ctx.AccumulatedParameters["semester"])
	assert.Equal(t, []string{"year"}, ctx.MissingParameters)
	assert.Equal(t, "grade_inquiry", ctx.LastIntent)
}

func TestCloneNil(t *testing.T) {
	var ctx *Context
	assert.Nil(t, ctx.Clone())
}
