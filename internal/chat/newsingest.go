package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aauhelpdesk/helpdesk-go/internal/news"
	"github.com/aauhelpdesk/helpdesk-go/internal/storage"
)

// NewsIngestItem is one announcement in a POST /news batch.
type NewsIngestItem struct {
	Channel    string              `json:"channel" binding:"required"`
	Text       string              `json:"text" binding:"required"`
	Intent     string              `json:"intent"`
	Parameters map[string][]string `json:"parameters"`
	PostedAt   time.Time           `json:"posted_at"`
}

// NewsIngestRequest is the body of POST /news.
type NewsIngestRequest struct {
	Items []NewsIngestItem `json:"items" binding:"required"`
}

// IngestNews is the Gin handler for POST /news. Items are upserted into
// SQLite and the retrieval index is rebuilt from the full stored set.
func (h *Handler) IngestNews(c *gin.Context) {
	var req NewsIngestRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Items) == 0 {
		h.metrics.RecordHTTPError("bad_request", "/news")
		c.JSON(http.StatusBadRequest, gin.H{"error": "items are required"})
		return
	}

	ctx := c.Request.Context()

	toStore := make([]storage.NewsItem, 0, len(req.Items))
	for _, item := range req.Items {
		postedAt := item.PostedAt
		if postedAt.IsZero() {
			postedAt = time.Now()
		}
		params := ""
		if len(item.Parameters) > 0 {
			encoded, err := json.Marshal(item.Parameters)
			if err == nil {
				params = string(encoded)
			}
		}
		toStore = append(toStore, storage.NewsItem{
			Channel:    item.Channel,
			Text:       item.Text,
			Intent:     item.Intent,
			Parameters: params,
			PostedAt:   postedAt.Unix(),
		})
	}

	if err := h.db.SaveNewsItems(ctx, toStore); err != nil {
		h.logger.WithError(err).Error("Failed to persist announcements")
		h.metrics.RecordHTTPError("internal", "/news")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save announcements"})
		return
	}

	indexed, err := h.RebuildNewsIndex(ctx)
	if err != nil {
		h.logger.WithError(err).Error("Failed to rebuild announcement index")
		h.metrics.RecordHTTPError("internal", "/news")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to rebuild index"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"saved":   len(toStore),
		"indexed": indexed,
	})
}

// RebuildNewsIndex reloads all stored announcements into the retrieval
// index. Returns the number of indexed documents.
func (h *Handler) RebuildNewsIndex(ctx context.Context) (int, error) {
	stored, err := h.db.ListNewsItems(ctx)
	if err != nil {
		return 0, err
	}

	items := make([]news.Item, 0, len(stored))
	for _, s := range stored {
		items = append(items, news.FromStored(s.ID, s.Channel, s.Text, s.Intent, s.Parameters, s.PostedAt))
	}
	if err := h.newsIndex.Initialize(items); err != nil {
		return 0, err
	}

	count := h.newsIndex.Count()
	h.metrics.SetNewsIndexSize(count)
	return count, nil
}
