package chat

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aauhelpdesk/helpdesk-go/internal/nlp"
	"github.com/aauhelpdesk/helpdesk-go/internal/storage"
)

// TrainRequest is the body of POST /train.
type TrainRequest struct {
	Samples []nlp.Sample `json:"samples" binding:"required"`
}

// Train is the Gin handler for POST /train. New samples are persisted,
// then the classifier retrains on the full stored corpus so restarts
// and retrains always see the same data.
func (h *Handler) Train(c *gin.Context) {
	var req TrainRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Samples) == 0 {
		h.metrics.RecordHTTPError("bad_request", "/train")
		c.JSON(http.StatusBadRequest, gin.H{"error": "samples are required"})
		return
	}

	for i, s := range req.Samples {
		if s.Text == "" || s.Intent == "" {
			h.metrics.RecordHTTPError("bad_request", "/train")
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "each sample needs text and intent",
				"index": i,
			})
			return
		}
		if !nlp.IsValidIntent(s.Intent) {
			h.metrics.RecordHTTPError("bad_request", "/train")
			c.JSON(http.StatusBadRequest, gin.H{
				"error":  "unknown intent",
				"intent": s.Intent,
			})
			return
		}
	}

	ctx := c.Request.Context()

	toStore := make([]storage.TrainingSample, 0, len(req.Samples))
	for _, s := range req.Samples {
		toStore = append(toStore, storage.TrainingSample{Text: s.Text, Intent: s.Intent})
	}
	if err := h.db.SaveTrainingSamples(ctx, toStore); err != nil {
		h.logger.WithError(err).Error("Failed to persist training samples")
		h.metrics.RecordTrainingRun("api", "error")
		h.metrics.RecordHTTPError("internal", "/train")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save training samples"})
		return
	}

	stored, err := h.db.ListTrainingSamples(ctx)
	if err != nil {
		h.logger.WithError(err).Error("Failed to load training corpus")
		h.metrics.RecordTrainingRun("api", "error")
		h.metrics.RecordHTTPError("internal", "/train")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load training corpus"})
		return
	}

	corpus := make([]nlp.Sample, 0, len(stored))
	for _, s := range stored {
		corpus = append(corpus, nlp.Sample{Text: s.Text, Intent: s.Intent})
	}

	if err := h.classifier.Train(corpus); err != nil {
		h.logger.WithError(err).Error("Classifier training failed")
		h.metrics.RecordTrainingRun("api", "error")
		h.metrics.RecordHTTPError("internal", "/train")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "training failed"})
		return
	}

	h.metrics.RecordTrainingRun("api", "success")
	h.metrics.SetTrainingSamples(h.classifier.SampleCount())
	h.logger.WithField("new_samples", len(req.Samples)).
		WithField("corpus_size", len(corpus)).
		Info("Classifier retrained")

	c.JSON(http.StatusOK, gin.H{
		"trained":      true,
		"sample_count": len(corpus),
	})
}
