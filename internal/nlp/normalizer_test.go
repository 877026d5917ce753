package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "lowercases and collapses whitespace",
			input:    "  How   Do I   Register?  ",
			expected: "how do i register?",
		},
		{
			name:     "expands university abbreviation",
			input:    "when was AAU founded",
			expected: "when was addis ababa university founded",
		},
		{
			name:     "expands department abbreviations",
			input:    "cs or econ",
			expected: "computer science or economics",
		},
		{
			name:     "leaves abbreviation inside a word alone",
			input:    "physics",
			expected: "physics",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"How do I apply to AAU?",
		"CS registration for 2nd semester",
		"fee of 5,000 birr",
		"",
	}
	for _, input := range inputs {
		once := Normalize(input)
		assert.Equal(t, once, Normalize(once), "input %q", input)
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "drops punctuation",
			input:    "how do i register?",
			expected: []string{"how", "do", "i", "register"},
		},
		{
			name:     "keeps digits",
			input:    "grades for 2024",
			expected: []string{"grades", "for", "2024"},
		},
		{
			name:     "only punctuation",
			input:    "?!...",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Tokenize(tt.input))
		})
	}
}
