// Package news retrieves scraped AAU channel announcements relevant to
// a chat turn. Candidates pass an informativeness filter, then BM25
// keyword scores are blended with intent and slot match boosts.
package news

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/crawlab-team/bm25"

	"github.com/aauhelpdesk/helpdesk-go/internal/logger"
	"github.com/aauhelpdesk/helpdesk-go/internal/nlp"
	"github.com/aauhelpdesk/helpdesk-go/internal/stringutil"
)

// Item is one scraped channel announcement.
type Item struct {
	ID         int64               `json:"id"`
	Channel    string              `json:"channel"`
	Text       string              `json:"text"`
	Intent     string              `json:"intent"`
	Parameters map[string][]string `json:"parameters"`
	Date       time.Time           `json:"date"`
}

// FromStored builds an Item from a stored announcement row.
// An unparseable parameters payload degrades to an unlabeled item.
func FromStored(id int64, channel, text, intent, parametersJSON string, postedAt int64) Item {
	var params map[string][]string
	if parametersJSON != "" {
		_ = json.Unmarshal([]byte(parametersJSON), &params)
	}
	return Item{
		ID:         id,
		Channel:    channel,
		Text:       text,
		Intent:     intent,
		Parameters: params,
		Date:       time.Unix(postedAt, 0),
	}
}

// Result is a retrieved announcement with its relevance score.
// Confidence is derived from rank position, not the raw score.
type Result struct {
	Item       Item
	Score      float64
	Rank       int
	Confidence float32
}

// Match boost weights. Slot values found in the announcement text count
// less than slot values the announcement itself was labeled with.
const (
	intentMatchBoost = 5.0
	keywordBoost     = 2.0
	paramInTextBoost = 3.0
	paramMatchBoost  = 4.0
)

// intentKeywords drive keyword boosts per intent.
var intentKeywords = map[string][]string{
	nlp.IntentAdmissionInquiry:  {"admission", "apply", "application", "enroll", "entrance", "exam", "requirement", "eligibility", "accepted", "acceptance"},
	nlp.IntentRegistrationHelp:  {"registration", "register", "course registration", "add drop", "enrollment"},
	nlp.IntentFeePayment:        {"fee", "payment", "tuition", "cost", "scholarship", "financial", "bank", "pay"},
	nlp.IntentTranscriptRequest: {"transcript", "academic record", "grade report", "official document"},
	nlp.IntentGradeInquiry:      {"grade", "result", "gpa", "score", "exam result", "marks", "assessment"},
	nlp.IntentCourseInformation: {"course", "class", "subject", "curriculum", "syllabus", "program", "module"},
	nlp.IntentScheduleInquiry:   {"schedule", "timetable", "calendar", "academic calendar", "semester", "date", "deadline"},
	nlp.IntentDocumentRequest:   {"document", "certificate", "letter", "verification", "official"},
	nlp.IntentTechnicalSupport:  {"portal", "system", "website", "login", "password", "technical", "error"},
	nlp.IntentGeneralInfo:       {"university", "campus", "aau", "announcement", "news", "event"},
}

// Index is the in-memory announcement index. Rebuilds swap the whole
// corpus under the write lock, so Find stays safe during refresh.
type Index struct {
	mu          sync.RWMutex
	bm25Okapi   *bm25.BM25Okapi
	items       []Item
	logger      *logger.Logger
	initialized bool
}

// NewIndex creates an empty announcement index.
func NewIndex(log *logger.Logger) *Index {
	return &Index{logger: log.WithModule("news")}
}

// Initialize builds the index from scraped items. Non-informative posts
// (questions, hashtag dumps, very short messages) are dropped up front.
func (idx *Index) Initialize(items []Item) error {
	if idx == nil {
		return nil
	}

	var kept []Item
	var corpus []string
	for _, item := range items {
		if !isInformative(item.Text) {
			continue
		}
		kept = append(kept, item)
		corpus = append(corpus, item.Text)
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()

	if len(corpus) == 0 {
		idx.items = nil
		idx.bm25Okapi = nil
		idx.initialized = true
		return nil
	}

	// k1=1.5, b=0.75 are standard BM25 parameters
	okapi, err := bm25.NewBM25Okapi(corpus, nlp.Tokenize, 1.5, 0.75, nil)
	if err != nil {
		return fmt.Errorf("failed to build news index: %w", err)
	}

	idx.items = kept
	idx.bm25Okapi = okapi
	idx.initialized = true

	idx.logger.WithField("total", len(items)).
		WithField("indexed", len(kept)).
		Info("News index initialized")
	return nil
}

// Find returns the most relevant announcements for an analyzed turn,
// sorted by score then recency. limit <= 0 disables retrieval.
func (idx *Index) Find(intent string, params map[string][]string, limit int) []Result {
	if idx == nil || limit <= 0 {
		return nil
	}

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	if !idx.initialized || idx.bm25Okapi == nil || len(idx.items) == 0 {
		return nil
	}

	bm25Scores := idx.queryScores(intent, params)

	var results []Result
	for i, item := range idx.items {
		score := matchScore(item, intent, params)
		if score <= 0 {
			continue
		}
		if bm25Scores != nil {
			score += bm25Scores[i]
		}
		results = append(results, Result{Item: item, Score: score})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Item.Date.After(results[j].Item.Date)
	})

	if len(results) > limit {
		results = results[:limit]
	}
	for i := range results {
		results[i].Rank = i + 1
		results[i].Confidence = rankConfidence(i + 1)
	}
	return results
}

// queryScores computes BM25 scores for a query built from the intent
// keywords and slot values. Returns nil when the query is empty.
func (idx *Index) queryScores(intent string, params map[string][]string) []float64 {
	var terms []string
	terms = append(terms, intentKeywords[intent]...)
	for _, values := range params {
		terms = append(terms, values...)
	}
	query := nlp.Tokenize(strings.Join(terms, " "))
	if len(query) == 0 {
		return nil
	}

	scores, err := idx.bm25Okapi.GetScores(query)
	if err != nil {
		idx.logger.WithError(err).Warn("News BM25 scoring failed")
		return nil
	}
	return scores
}

// matchScore applies the intent and slot boosts for one announcement.
func matchScore(item Item, intent string, params map[string][]string) float64 {
	var score float64
	text := strings.ToLower(item.Text)

	if item.Intent == intent {
		score += intentMatchBoost
	}
	for _, keyword := range intentKeywords[intent] {
		if strings.Contains(text, keyword) {
			score += keywordBoost
		}
	}
	for slot, values := range params {
		for _, value := range values {
			if strings.Contains(text, strings.ToLower(value)) {
				score += paramInTextBoost
			}
		}
		itemValues, ok := item.Parameters[slot]
		if !ok {
			continue
		}
		for _, value := range values {
			for _, iv := range itemValues {
				if strings.EqualFold(value, iv) {
					score += paramMatchBoost
				}
			}
		}
	}
	return score
}

// rankConfidence maps rank position to a bounded confidence.
// Formula: 1 / (1 + 0.05 * rank), so rank 1 scores 0.95.
func rankConfidence(rank int) float32 {
	if rank <= 0 {
		return 0
	}
	return float32(1.0 / (1.0 + 0.05*float64(rank)))
}

// IsEnabled reports whether the index has been built.
func (idx *Index) IsEnabled() bool {
	if idx == nil {
		return false
	}
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.initialized && idx.bm25Okapi != nil
}

// Count returns the number of indexed announcements.
func (idx *Index) Count() int {
	if idx == nil {
		return 0
	}
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.items)
}

// maxItemTextLen truncates very long announcements in formatted output.
const maxItemTextLen = 300

// Format renders retrieved announcements as a block appended to the
// chat reply. Returns "" when there is nothing to show.
func Format(results []Result) string {
	if len(results) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("📢 **Related Announcements found from AAU Channels:**\n\n")
	for i, r := range results {
		if i > 0 {
			b.WriteString("\n\n")
		}
		date := r.Item.Date.Format("2006-01-02")
		channel := r.Item.Channel
		if channel == "" {
			channel = "Unknown Source"
		}
		b.WriteString(fmt.Sprintf("🗓 **%s** | %s\n%s", date, channel,
			stringutil.Truncate(strings.TrimSpace(r.Item.Text), maxItemTextLen)))
	}
	return b.String()
}
