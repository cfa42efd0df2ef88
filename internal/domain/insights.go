package domain

import "time"

// InsightsRequest is the request body for LLM caffeine insights.
// @Description Dose history plus optional planning inputs for LLM insights.
type InsightsRequest struct {
	TimelineRequest
	// Optional constraints; when present together with params and window the optimizer runs too
	Constraints *Constraints `json:"constraints,omitempty"`
	// Optional optimizer params
	Params *OptimizationParams `json:"params,omitempty"`
	// Optional optimizer window
	Window *WindowRequest `json:"window,omitempty"`
}

// WindowRequest is a target window for the optimizer.
type WindowRequest struct {
	Start time.Time `json:"start" validate:"required" example:"2024-01-15T08:00:00Z"`
	End   time.Time `json:"end" validate:"required" example:"2024-01-15T18:00:00Z"`
}

// LLMInsightsOutput contains the structured output from the LLM.
// @Description LLM-generated caffeine insights.
type LLMInsightsOutput struct {
	// Summary of the caffeine picture (2-3 sentences)
	Summary string `json:"summary" example:"You still carry about 220 mg of caffeine..."`
	// Observations about the timeline (3-6 items)
	Observations []string `json:"observations" example:"[\"Your level stays above the crash threshold until late evening\"]"`
	// Actionable guidance (3-5 items)
	Guidance []string `json:"guidance" example:"[\"Move your afternoon coffee before 14:00\"]"`
}

// CaffeineInsightsContext is the context object sent to the LLM.
type CaffeineInsightsContext struct {
	Doses       []Dose             `json:"doses"`
	Sensitivity SensitivityProfile `json:"sensitivity"`
	Timeline    TimelineResponse   `json:"timeline"`
	Constraints *Constraints       `json:"constraints,omitempty"`
	Plan        *OptimizeResponse  `json:"plan,omitempty"`
}

// InsightsResponse is the response for the insights endpoint.
// @Description Timeline, optional plan and LLM insights.
type InsightsResponse struct {
	Timeline TimelineResponse  `json:"timeline"`
	Plan     *OptimizeResponse `json:"plan,omitempty"`
	Insights LLMInsightsOutput `json:"insights"`
	// Trace ID for feedback (only present when tracing is enabled)
	TraceID string `json:"trace_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
}

// FeedbackRequest is the request body for insights feedback.
// @Description Request body for submitting feedback on insights.
type FeedbackRequest struct {
	// Trace ID from the insights response
	TraceID string `json:"trace_id" validate:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Rating score (1-5)
	Score int `json:"score" validate:"required,min=1,max=5" example:"4" minimum:"1" maximum:"5"`
	// Optional comment
	Comment string `json:"comment,omitempty" validate:"omitempty,max=2000" example:"The plan was helpful!"`
}
