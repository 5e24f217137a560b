package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/caffeinepub/livspan-wellness-and-longevity-application/models"
	"github.com/caffeinepub/livspan-wellness-and-longevity-application/utils"
)

type coachBriefingRequest struct {
	UserID  string              `json:"user_id" binding:"required"`
	Metrics models.DailyMetrics `json:"metrics"`
}

// CoachBriefingHandler runs the deterministic scoring pipeline and asks the
// configured LLM coach to narrate the result. The scores and steps in the
// response come from the rule engines; only the briefing text is generated.
func (h *APIHandler) CoachBriefingHandler(c *gin.Context) {
	var req coachBriefingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Invalid request format.", err)
		return
	}

	if h.coachService == nil || !h.coachService.Enabled() {
		utils.SendJSONError(c, http.StatusServiceUnavailable, "The coach is not available right now.", nil)
		return
	}

	report, err := h.scoreService.PreviewScores(req.UserID, req.Metrics)
	if err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "Failed to compute scores.", err)
		return
	}

	briefing, err := h.coachService.ComposeDailyBriefing(c.Request.Context(), report)
	if err != nil {
		utils.SendJSONError(c, http.StatusBadGateway, "The coach could not compose a briefing.", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"briefing": briefing,
		"report":   report,
	})
}
