package news

import (
	"strings"
	"unicode"
)

// minInformativeLen drops very short posts that carry no announcement.
const minInformativeLen = 50

var questionPrefixes = []string{
	"how do i",
	"how can i",
	"where can i",
	"what is the",
	"when is",
	"can someone",
	"does anyone",
	"is there",
	"please help",
	"i need help",
	"help me",
}

var questionPhrases = []string{
	"anyone know",
	"can you help",
	"pls help",
}

// requestPhrases mark forwarded user questions. A post containing one is
// only kept when an announcement indicator shows it answers the request.
var requestPhrases = []string{
	"i want to know",
	"i would like to",
	"can i get",
	"i am looking for",
	"i'm looking for",
	"how to get",
	"how to apply",
	"need information about",
	"need info about",
	"tell me about",
	"what are the requirements",
	"what documents do i need",
}

var announcementIndicators = []string{
	"we are pleased to announce",
	"announcement",
	"notice",
	"deadline",
	"hereby",
	"informed that",
	"please be informed",
	"application is open",
	"registration is open",
	"results are out",
	"schedule",
	"calendar",
}

// isInformative reports whether a scraped post is announcement content
// worth indexing, rather than a user question or a hashtag dump.
func isInformative(text string) bool {
	lower := strings.ToLower(strings.TrimSpace(text))

	if strings.HasSuffix(lower, "?") {
		return false
	}
	for _, prefix := range questionPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return false
		}
	}
	for _, phrase := range questionPhrases {
		if strings.Contains(lower, phrase) {
			return false
		}
	}

	if len(lower) < minInformativeLen {
		return false
	}

	words := strings.Fields(lower)
	if len(words) > 0 {
		hashtags := 0
		for _, w := range words {
			if strings.HasPrefix(w, "#") {
				hashtags++
			}
		}
		if float64(hashtags)/float64(len(words)) > 0.5 {
			return false
		}
	}

	if len(text) > 0 {
		alpha := 0
		for _, r := range text {
			if unicode.IsLetter(r) {
				alpha++
			}
		}
		if float64(alpha)/float64(len([]rune(text))) < 0.3 {
			return false
		}
	}

	for _, phrase := range requestPhrases {
		if !strings.Contains(lower, phrase) {
			continue
		}
		answered := false
		for _, indicator := range announcementIndicators {
			if strings.Contains(lower, indicator) {
				answered = true
				break
			}
		}
		if !answered {
			return false
		}
		break
	}

	return true
}
