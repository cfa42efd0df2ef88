package handler

import (
	"net/http"

	"github.com/blaisecz/caffeine-planner/internal/domain"
	"github.com/blaisecz/caffeine-planner/internal/service"
)

// PlannerHandler exposes the caffeine model.
type PlannerHandler struct {
	service service.PlannerService
}

func NewPlannerHandler(service service.PlannerService) *PlannerHandler {
	return &PlannerHandler{service: service}
}

// Sensitivity handles POST /v1/caffeine/sensitivity
// @Summary Derive caffeine sensitivity
// @Description Derive half-life, sleep decay and crash threshold from an inline profile
// @Tags caffeine
// @Accept json
// @Produce json
// @Param request body domain.SensitivityRequest true "Profile"
// @Success 200 {object} domain.SensitivityResponse
// @Failure 400 {object} problem.Problem
// @Failure 422 {object} problem.Problem
// @Router /caffeine/sensitivity [post]
func (h *PlannerHandler) Sensitivity(w http.ResponseWriter, r *http.Request) {
	var req domain.SensitivityRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	resp, err := h.service.Sensitivity(r.Context(), domain.ProfileRef{Profile: &req.Profile})
	if err != nil {
		writeServiceError(w, r, err, "Failed to derive sensitivity")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Timeline handles POST /v1/caffeine/timeline
// @Summary Caffeine level, crash and sleep predictions
// @Description Current level, predicted crash time, optional sleep score and concentration curve
// @Tags caffeine
// @Accept json
// @Produce json
// @Param request body domain.TimelineRequest true "Doses and options"
// @Success 200 {object} domain.TimelineResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "Referenced user not found"
// @Failure 422 {object} problem.Problem
// @Router /caffeine/timeline [post]
func (h *PlannerHandler) Timeline(w http.ResponseWriter, r *http.Request) {
	var req domain.TimelineRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	resp, err := h.service.Timeline(r.Context(), &req)
	if err != nil {
		writeServiceError(w, r, err, "Failed to compute timeline")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// ValidateSchedule handles POST /v1/caffeine/schedule/validate
// @Summary Check a schedule against constraints
// @Description Reports the first violated rule: daily limit, minimum gap or cutoff
// @Tags caffeine
// @Accept json
// @Produce json
// @Param request body domain.ValidateScheduleRequest true "Doses and constraints"
// @Success 200 {object} domain.ValidateScheduleResponse
// @Failure 400 {object} problem.Problem
// @Failure 422 {object} problem.Problem
// @Router /caffeine/schedule/validate [post]
func (h *PlannerHandler) ValidateSchedule(w http.ResponseWriter, r *http.Request) {
	var req domain.ValidateScheduleRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	resp, err := h.service.ValidateSchedule(r.Context(), &req)
	if err != nil {
		writeServiceError(w, r, err, "Failed to validate schedule")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Optimize handles POST /v1/caffeine/schedule/optimize
// @Summary Propose doses to maximize alertness
// @Description Greedy grid search over the window adding doses that keep the schedule valid
// @Tags caffeine
// @Accept json
// @Produce json
// @Param request body domain.OptimizeRequest true "Existing doses, constraints, grid and window"
// @Success 200 {object} domain.OptimizeResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "Referenced user not found"
// @Failure 422 {object} problem.Problem
// @Router /caffeine/schedule/optimize [post]
func (h *PlannerHandler) Optimize(w http.ResponseWriter, r *http.Request) {
	var req domain.OptimizeRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	resp, err := h.service.Optimize(r.Context(), &req)
	if err != nil {
		writeServiceError(w, r, err, "Failed to optimize schedule")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
