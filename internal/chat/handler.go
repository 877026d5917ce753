// Package chat implements the HTTP surface of the helpdesk bot: the
// chat endpoint itself plus training, evaluation, announcement ingest,
// and session management.
package chat

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aauhelpdesk/helpdesk-go/internal/logger"
	"github.com/aauhelpdesk/helpdesk-go/internal/metrics"
	"github.com/aauhelpdesk/helpdesk-go/internal/news"
	"github.com/aauhelpdesk/helpdesk-go/internal/nlp"
	"github.com/aauhelpdesk/helpdesk-go/internal/ratelimit"
	"github.com/aauhelpdesk/helpdesk-go/internal/sentry"
	"github.com/aauhelpdesk/helpdesk-go/internal/session"
	"github.com/aauhelpdesk/helpdesk-go/internal/storage"
	"github.com/aauhelpdesk/helpdesk-go/internal/template"
)

// Intent labels for turns that never reach the classifier.
const (
	IntentGreeting = "greeting"
	IntentGoodbye  = "goodbye"
	IntentError    = "error"
)

// Only turns classified at least this confidently get announcements
// attached.
const newsConfidenceFloor = 0.4

// logWriteTimeout bounds the async conversation log insert.
const logWriteTimeout = 5 * time.Second

// Handler handles chat API requests.
type Handler struct {
	engine      *nlp.Engine
	classifier  *nlp.Classifier
	store       session.Store
	renderer    *template.Renderer
	newsIndex   *news.Index
	db          *storage.DB
	metrics     *metrics.Metrics
	logger      *logger.Logger
	userLimiter *ratelimit.PerKeyLimiter
	wg          sync.WaitGroup

	newsLimit        int
	logConversations bool
}

// HandlerConfig holds configuration for creating a new Handler.
type HandlerConfig struct {
	Engine           *nlp.Engine
	Classifier       *nlp.Classifier
	Store            session.Store
	Renderer         *template.Renderer
	NewsIndex        *news.Index
	DB               *storage.DB
	Metrics          *metrics.Metrics
	Logger           *logger.Logger
	UserLimiter      *ratelimit.PerKeyLimiter
	NewsLimit        int
	LogConversations bool
}

// NewHandler creates a new chat handler.
func NewHandler(cfg HandlerConfig) *Handler {
	return &Handler{
		engine:           cfg.Engine,
		classifier:       cfg.Classifier,
		store:            cfg.Store,
		renderer:         cfg.Renderer,
		newsIndex:        cfg.NewsIndex,
		db:               cfg.DB,
		metrics:          cfg.Metrics,
		logger:           cfg.Logger.WithModule("chat"),
		userLimiter:      cfg.UserLimiter,
		newsLimit:        cfg.NewsLimit,
		logConversations: cfg.LogConversations,
	}
}

// ChatRequest is the body of POST /chat.
type ChatRequest struct {
	Message   string `json:"message" binding:"required"`
	SessionID string `json:"session_id"`
}

// ChatResponse is the reply for one chat turn.
type ChatResponse struct {
	Response           string              `json:"response"`
	Intent             string              `json:"intent"`
	Confidence         float64             `json:"confidence"`
	Parameters         map[string][]string `json:"parameters"`
	MissingParameters  []string            `json:"missing_parameters"`
	NeedsClarification bool                `json:"needs_clarification"`
	SessionID          string              `json:"session_id"`
	RelatedNews        []NewsResult        `json:"related_news,omitempty"`
	Timestamp          string              `json:"timestamp"`
}

// NewsResult is one announcement attached to a chat reply.
type NewsResult struct {
	Channel    string  `json:"channel"`
	Text       string  `json:"text"`
	PostedAt   string  `json:"posted_at"`
	Confidence float32 `json:"confidence"`
}

// Chat is the Gin handler for POST /chat.
func (h *Handler) Chat(c *gin.Context) {
	start := time.Now()

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.metrics.RecordHTTPError("bad_request", "/chat")
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		h.metrics.RecordHTTPError("bad_request", "/chat")
		c.JSON(http.StatusBadRequest, gin.H{"error": "message cannot be empty"})
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = session.NewSessionID()
	}

	if !h.userLimiter.Allow(sessionID) {
		h.metrics.RecordHTTPError("rate_limit", "/chat")
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many messages, slow down"})
		return
	}

	// Turn processing failures degrade to an apology reply rather than
	// a 5xx, so clients keep their session alive.
	defer func() {
		if r := recover(); r != nil {
			h.logger.WithSessionID(sessionID).WithField("panic", r).Error("Chat turn failed")
			sentry.CaptureMessage("chat turn panic")
			h.metrics.RecordChat(IntentError, "error", "fresh", time.Since(start).Seconds())
			c.JSON(http.StatusOK, ChatResponse{
				Response:           h.renderer.Error(),
				Intent:             IntentError,
				Confidence:         0.0,
				Parameters:         map[string][]string{},
				MissingParameters:  []string{},
				NeedsClarification: true,
				SessionID:          sessionID,
				Timestamp:          time.Now().Format(time.RFC3339),
			})
		}
	}()

	resp, branch := h.processTurn(c.Request.Context(), req.Message, sessionID)
	h.metrics.RecordChat(resp.Intent, "success", branch, time.Since(start).Seconds())
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) processTurn(ctx context.Context, message, sessionID string) (ChatResponse, string) {
	normalized := nlp.Normalize(message)

	// Social turns bypass classification entirely.
	if isGreeting(normalized) {
		return h.socialTurn(sessionID, message, IntentGreeting, h.renderer.Greeting()), "greeting"
	}
	if isGoodbye(normalized) {
		h.store.Delete(sessionID)
		return h.socialTurn(sessionID, message, IntentGoodbye, h.renderer.Goodbye()), "goodbye"
	}

	prior := h.store.Get(sessionID)
	result := h.engine.Analyze(ctx, message, prior)

	branch := "fresh"
	h.metrics.RecordIntentPrediction(result.Intent)
	if result.FollowUp {
		branch = "followup"
		h.metrics.RecordFollowUpTurn()
	}

	response := h.renderResponse(result)

	var related []NewsResult
	if result.Confidence > newsConfidenceFloor {
		related = h.attachNews(result.Intent, result.Parameters, &response)
	}

	h.saveContext(prior, sessionID, message, response, result)
	h.logTurn(sessionID, message, response, result)

	return ChatResponse{
		Response:           response,
		Intent:             result.Intent,
		Confidence:         result.Confidence,
		Parameters:         result.Parameters,
		MissingParameters:  emptyIfNil(result.Missing),
		NeedsClarification: result.NeedsClarification,
		SessionID:          sessionID,
		RelatedNews:        related,
		Timestamp:          time.Now().Format(time.RFC3339),
	}, branch
}

// socialTurn builds the reply for greetings and goodbyes.
func (h *Handler) socialTurn(sessionID, message, intent, response string) ChatResponse {
	h.logTurn(sessionID, message, response, nlp.Result{Intent: intent, Confidence: 1.0})
	return ChatResponse{
		Response:           response,
		Intent:             intent,
		Confidence:         1.0,
		Parameters:         map[string][]string{},
		MissingParameters:  []string{},
		NeedsClarification: false,
		SessionID:          sessionID,
		Timestamp:          time.Now().Format(time.RFC3339),
	}
}

// renderResponse picks the reply branch for an analyzed turn. Missing
// slots win over low confidence so the user is asked something concrete.
func (h *Handler) renderResponse(result nlp.Result) string {
	if len(result.Missing) > 0 {
		h.metrics.RecordClarification("missing_slots")
		return h.renderer.Render(result.Intent, result.Parameters, result.Missing)
	}
	if result.NeedsClarification {
		h.metrics.RecordClarification("low_confidence")
		return h.renderer.Clarification()
	}
	return h.renderer.Render(result.Intent, result.Parameters, nil)
}

// attachNews looks up related announcements and appends the formatted
// block to the response text.
func (h *Handler) attachNews(intent string, params map[string][]string, response *string) []NewsResult {
	if h.newsIndex == nil || !h.newsIndex.IsEnabled() {
		return nil
	}

	results := h.newsIndex.Find(intent, params, h.newsLimit)
	if len(results) == 0 {
		h.metrics.RecordNewsRetrieval("miss")
		return nil
	}
	h.metrics.RecordNewsRetrieval("hit")

	*response += "\n\n" + news.Format(results)

	out := make([]NewsResult, 0, len(results))
	for _, r := range results {
		out = append(out, NewsResult{
			Channel:    r.Item.Channel,
			Text:       r.Item.Text,
			PostedAt:   r.Item.Date.Format(time.RFC3339),
			Confidence: r.Confidence,
		})
	}
	return out
}

// saveContext persists the merged dialogue state back to the store.
func (h *Handler) saveContext(prior *session.Context, sessionID, message, response string, result nlp.Result) {
	ctx := prior
	if ctx == nil {
		ctx = session.NewContext(sessionID)
	}
	ctx.LastIntent = result.Intent
	ctx.AccumulatedParameters = result.Parameters
	ctx.MissingParameters = result.Missing
	ctx.RecordTurn(message, response, result.Intent)
	h.store.Put(ctx)
}

// logTurn writes the exchange to the conversation log without blocking
// the response.
func (h *Handler) logTurn(sessionID, message, response string, result nlp.Result) {
	if !h.logConversations || h.db == nil {
		return
	}

	entry := storage.ConversationEntry{
		SessionID:   sessionID,
		UserMessage: message,
		Response:    response,
		Intent:      result.Intent,
		Confidence:  result.Confidence,
		FollowUp:    result.FollowUp,
	}

	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), logWriteTimeout)
		defer cancel()
		if err := h.db.LogConversation(ctx, entry); err != nil {
			h.logger.WithError(err).WithSessionID(sessionID).Warn("Failed to log conversation turn")
		}
	}()
}

// DeleteSession is the Gin handler for DELETE /session/:id.
func (h *Handler) DeleteSession(c *gin.Context) {
	h.store.Delete(c.Param("id"))
	c.Status(http.StatusNoContent)
}

// Intents is the Gin handler for GET /intents.
func (h *Handler) Intents(c *gin.Context) {
	intents := nlp.Intents()
	out := make([]gin.H, 0, len(intents))
	for _, intent := range intents {
		out = append(out, gin.H{
			"name":           intent,
			"required_slots": emptyIfNil(nlp.RequiredSlots(intent)),
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"intents":       out,
		"total_intents": len(intents),
	})
}

// Wait blocks until async conversation log writes finish.
// Called during graceful shutdown.
func (h *Handler) Wait() {
	h.wg.Wait()
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
