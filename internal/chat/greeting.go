package chat

import "strings"

// Single-word triggers are matched as whole tokens so that "hi" never
// fires inside "this"; multi-word phrases are matched as substrings.
var (
	greetingWords   = []string{"hello", "hi", "hey", "greetings", "selam"}
	greetingPhrases = []string{"good morning", "good afternoon", "good evening"}

	goodbyeWords   = []string{"bye", "goodbye", "farewell", "thanks"}
	goodbyePhrases = []string{"see you", "take care", "thank you"}
)

func isGreeting(normalized string) bool {
	return matchesAny(normalized, greetingWords, greetingPhrases)
}

func isGoodbye(normalized string) bool {
	return matchesAny(normalized, goodbyeWords, goodbyePhrases)
}

func matchesAny(text string, words, phrases []string) bool {
	tokens := strings.Fields(text)
	for _, token := range tokens {
		token = strings.Trim(token, ".,!?")
		for _, w := range words {
			if token == w {
				return true
			}
		}
	}
	for _, p := range phrases {
		if strings.Contains(text, p) {
			return true
		}
	}
	return false
}
