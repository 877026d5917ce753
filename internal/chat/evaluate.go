package chat

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aauhelpdesk/helpdesk-go/internal/nlp"
)

// evaluatedSlots are the slots scored by POST /evaluate.
var evaluatedSlots = []string{
	nlp.SlotDepartment,
	nlp.SlotSemester,
	nlp.SlotYear,
	nlp.SlotDocumentType,
	nlp.SlotFeeAmount,
}

// EvaluateSample is one labeled test utterance.
type EvaluateSample struct {
	Text       string              `json:"text"`
	Intent     string              `json:"intent"`
	Parameters map[string][]string `json:"parameters"`
}

// EvaluateRequest is the body of POST /evaluate.
type EvaluateRequest struct {
	Samples []EvaluateSample `json:"samples" binding:"required"`
}

// SlotMetrics holds precision, recall, and F1 for one slot.
type SlotMetrics struct {
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1        float64 `json:"f1"`
}

// EvaluateResponse summarizes classifier and extractor quality on a
// labeled test set.
type EvaluateResponse struct {
	IntentAccuracy   float64                `json:"intent_accuracy"`
	ParameterMetrics map[string]SlotMetrics `json:"parameter_metrics"`
	TotalSamples     int                    `json:"total_samples"`
}

// Evaluate is the Gin handler for POST /evaluate. Each sample is run
// through the full pipeline without session context, then predictions
// are scored against the labels.
func (h *Handler) Evaluate(c *gin.Context) {
	var req EvaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Samples) == 0 {
		h.metrics.RecordHTTPError("bad_request", "/evaluate")
		c.JSON(http.StatusBadRequest, gin.H{"error": "samples are required"})
		return
	}

	ctx := c.Request.Context()

	type counts struct{ tp, fp, fn int }
	slotCounts := make(map[string]*counts)

	correct := 0
	scored := 0
	for _, sample := range req.Samples {
		if sample.Text == "" || sample.Intent == "" {
			continue
		}
		scored++

		result := h.engine.Analyze(ctx, sample.Text, nil)
		if result.Intent == sample.Intent {
			correct++
		}

		for _, slot := range evaluatedSlots {
			predicted := toSet(result.Parameters[slot])
			truth := toSet(sample.Parameters[slot])
			if len(predicted) == 0 && len(truth) == 0 {
				continue
			}

			cc, ok := slotCounts[slot]
			if !ok {
				cc = &counts{}
				slotCounts[slot] = cc
			}
			for v := range predicted {
				if truth[v] {
					cc.tp++
				} else {
					cc.fp++
				}
			}
			for v := range truth {
				if !predicted[v] {
					cc.fn++
				}
			}
		}
	}

	accuracy := 0.0
	if scored > 0 {
		accuracy = float64(correct) / float64(scored)
	}

	paramMetrics := make(map[string]SlotMetrics, len(slotCounts))
	for slot, cc := range slotCounts {
		precision := ratio(cc.tp, cc.tp+cc.fp)
		recall := ratio(cc.tp, cc.tp+cc.fn)
		f1 := 0.0
		if precision+recall > 0 {
			f1 = 2 * precision * recall / (precision + recall)
		}
		paramMetrics[slot] = SlotMetrics{Precision: precision, Recall: recall, F1: f1}
	}

	c.JSON(http.StatusOK, EvaluateResponse{
		IntentAccuracy:   accuracy,
		ParameterMetrics: paramMetrics,
		TotalSamples:     scored,
	})
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}
