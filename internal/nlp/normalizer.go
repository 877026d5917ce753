package nlp

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// abbreviations are expanded as whole words during normalization.
// Keys must already be in folded (lowercase) form.
var abbreviations = map[string]string{
	"aau":  "addis ababa university",
	"cs":   "computer science",
	"eng":  "engineering",
	"med":  "medicine",
	"biz":  "business",
	"econ": "economics",
}

// Normalize canonicalizes user text: Unicode NFKC, case folding,
// whitespace collapsing, and whole-word abbreviation expansion.
// Normalize is idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(text string) string {
	text = norm.NFKC.String(text)
	text = cases.Fold().String(text)

	words := strings.Fields(text)
	out := make([]string, 0, len(words))
	for _, w := range words {
		if expanded, ok := abbreviations[w]; ok {
			out = append(out, expanded)
			continue
		}
		out = append(out, w)
	}
	return strings.Join(out, " ")
}

// Tokenize splits normalized text into lowercase word tokens,
// dropping punctuation. Used by the classifier and the news index.
func Tokenize(text string) []string {
	text = strings.ToLower(text)

	var tokens []string
	var current strings.Builder
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			current.WriteRune(r)
			continue
		}
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}
	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}
	return tokens
}
