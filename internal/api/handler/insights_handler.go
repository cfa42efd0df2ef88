package handler

import (
	"net/http"

	"github.com/blaisecz/caffeine-planner/internal/domain"
	"github.com/blaisecz/caffeine-planner/internal/service"
)

// InsightsHandler handles LLM caffeine insights endpoints.
type InsightsHandler struct {
	service service.InsightsService
}

// NewInsightsHandler creates a new InsightsHandler.
func NewInsightsHandler(service service.InsightsService) *InsightsHandler {
	return &InsightsHandler{service: service}
}

// Generate handles POST /v1/caffeine/insights
// @Summary Get LLM-powered caffeine insights
// @Description Compute the timeline, optionally an optimized plan, and summarize both with an LLM.
// @Tags caffeine-insights
// @Accept json
// @Produce json
// @Param request body domain.InsightsRequest true "Doses and optional planning inputs"
// @Success 200 {object} domain.InsightsResponse
// @Failure 400 {object} problem.Problem
// @Failure 422 {object} problem.Problem
// @Failure 502 {object} problem.Problem "LLM request failed"
// @Failure 503 {object} problem.Problem "LLM service unavailable"
// @Router /caffeine/insights [post]
func (h *InsightsHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req domain.InsightsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	resp, err := h.service.Generate(r.Context(), &req)
	if err != nil {
		writeServiceError(w, r, err, "Failed to generate insights")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Feedback handles POST /v1/caffeine/insights/feedback
// @Summary Submit feedback on insights
// @Description Submit a rating and optional comment for a previous insights response.
// @Tags caffeine-insights
// @Accept json
// @Param request body domain.FeedbackRequest true "Feedback request"
// @Success 204 "Feedback submitted"
// @Failure 400 {object} problem.Problem
// @Failure 422 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /caffeine/insights/feedback [post]
func (h *InsightsHandler) Feedback(w http.ResponseWriter, r *http.Request) {
	var req domain.FeedbackRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.service.Feedback(r.Context(), &req); err != nil {
		writeServiceError(w, r, err, "Failed to record feedback")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
