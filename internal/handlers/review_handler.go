package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"debtpilot/internal/scheduler"
)

// StrategyReviewer runs one review pass over active strategies.
type StrategyReviewer interface {
	RunOnce(ctx context.Context) scheduler.Result
}

// ReviewHandler exposes the strategy review job to operators.
type ReviewHandler struct {
	reviewer StrategyReviewer
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(reviewer StrategyReviewer) *ReviewHandler {
	return &ReviewHandler{reviewer: reviewer}
}

// RunReview runs a review pass immediately.
// @Summary     Run strategy review
// @Description Refresh every active strategy whose time-based trigger has fired
// @Tags        internal
// @Produce     json
// @Param       X-API-Key header string true "Operator API key"
// @Success     200 {object} scheduler.Result "Review outcome"
// @Failure     401 {object} ErrorResponse "Invalid API key"
// @Failure     503 {object} ErrorResponse "Not configured"
// @Router      /internal/strategy-reviews [post]
func (h *ReviewHandler) RunReview(c *gin.Context) {
	result := h.reviewer.RunOnce(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"checked":   result.Checked,
		"refreshed": result.Refreshed,
		"failed":    result.Failed,
	})
}
