package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/blaisecz/caffeine-planner/internal/domain"
	"github.com/blaisecz/caffeine-planner/internal/service"
	"github.com/blaisecz/caffeine-planner/pkg/problem"
)

type UserHandler struct {
	service service.UserService
}

func NewUserHandler(service service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Create handles POST /v1/users
// @Summary Store a user profile
// @Description Store physical attributes used to personalize caffeine sensitivity
// @Tags users
// @Accept json
// @Produce json
// @Param request body domain.CreateUserRequest true "User creation request"
// @Success 201 {object} domain.UserResponse
// @Failure 400 {object} problem.Problem
// @Failure 422 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users [post]
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateUserRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, r, err, "Failed to create user")
		return
	}

	writeJSON(w, http.StatusCreated, user.ToResponse())
}

// List handles GET /v1/users
// @Summary List users
// @Description List stored users, newest first, with cursor pagination
// @Tags users
// @Produce json
// @Param limit query integer false "Page size" default(20) minimum(1) maximum(100)
// @Param cursor query string false "Cursor from a previous page"
// @Success 200 {object} domain.UserListResponse
// @Failure 422 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users [get]
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := domain.UserFilter{
		Limit:  parseIntParam(r, "limit", 0),
		Cursor: r.URL.Query().Get("cursor"),
	}

	resp, err := h.service.List(r.Context(), filter)
	if err != nil {
		writeServiceError(w, r, err, "Failed to list users")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// GetByID handles GET /v1/users/{userId}
// @Summary Get user by ID
// @Description Get a stored user's profile by UUID
// @Tags users
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Success 200 {object} domain.UserResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId} [get]
func (h *UserHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	user, err := h.service.GetByID(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, "Failed to get user")
		return
	}

	writeJSON(w, http.StatusOK, user.ToResponse())
}

// Sensitivity handles GET /v1/users/{userId}/sensitivity
// @Summary Get a user's caffeine sensitivity
// @Description Derive half-life, sleep decay and crash threshold from the stored profile
// @Tags users
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Success 200 {object} domain.SensitivityResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/sensitivity [get]
func (h *UserHandler) Sensitivity(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	resp, err := h.service.Sensitivity(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, "Failed to derive sensitivity")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
