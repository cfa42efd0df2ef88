package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/blaisecz/caffeine-planner/internal/api/validation"
	"github.com/blaisecz/caffeine-planner/internal/caffeine"
	"github.com/blaisecz/caffeine-planner/internal/domain"
	"github.com/blaisecz/caffeine-planner/internal/llm"
	"github.com/blaisecz/caffeine-planner/internal/logger"
	"github.com/blaisecz/caffeine-planner/pkg/problem"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

// decodeAndValidate reads a JSON body into v and runs struct validation.
// It writes the problem response itself and reports whether the handler may continue.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return false
	}
	if fieldErrors := validation.Validate(v); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeServiceError maps service errors to problem responses.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		problem.NotFound("User not found").Write(w)
	case errors.Is(err, caffeine.ErrInvalidParameter), errors.Is(err, domain.ErrInvalidInput):
		problem.InvalidParameter(err.Error()).Write(w)
	case errors.Is(err, llm.ErrOpenAIUnavailable):
		problem.ServiceUnavailable("OpenAI service is not configured").Write(w)
	case errors.Is(err, llm.ErrOpenAIRequest), errors.Is(err, llm.ErrOpenAIResponse):
		problem.BadGateway("Failed to generate insights from LLM").Write(w)
	default:
		log := logger.Named("http")
		log.Error().Err(err).Str("path", r.URL.Path).Msg(fallback)
		problem.InternalError(fallback).Write(w)
	}
}

// parseIntParam parses an integer query parameter with a default value.
func parseIntParam(r *http.Request, name string, defaultValue int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return parsed
}
