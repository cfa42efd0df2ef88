package domain

import (
	"time"

	"github.com/google/uuid"
)

// SleepModel selects the sleep-quality scoring formula.
// @Description Sleep score model: exponential (default) or linear (legacy).
type SleepModel string

const (
	// SleepModelExponential is the sensitivity-aware model.
	SleepModelExponential SleepModel = "exponential"
	// SleepModelLinear is the legacy 20-points-per-10mg penalty.
	SleepModelLinear SleepModel = "linear"
)

// ProfileRef identifies where the sensitivity of a request comes from.
// A stored user takes precedence over an inline profile; with neither the default is used.
type ProfileRef struct {
	// Stored user whose profile to use
	UserID *uuid.UUID `json:"user_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Inline profile
	Profile *UserProfile `json:"profile,omitempty"`
}

// SensitivityRequest is the request body for deriving a sensitivity profile.
type SensitivityRequest struct {
	Profile UserProfile `json:"profile"`
}

// TimelineRequest is the request body for the timeline endpoint.
// @Description Dose history and prediction options.
type TimelineRequest struct {
	ProfileRef
	// Caffeine intakes, any order
	Doses []Dose `json:"doses" validate:"dive"`
	// Evaluation instant (defaults to server time)
	Now *time.Time `json:"now,omitempty" example:"2024-01-15T12:00:00Z"`
	// Planned sleep time for the sleep-quality score
	SleepTime *time.Time `json:"sleep_time,omitempty" example:"2024-01-15T23:00:00Z"`
	// Sleep score model (exponential or linear)
	SleepModel SleepModel `json:"sleep_model,omitempty" validate:"omitempty,sleep_model" example:"exponential" enums:"exponential,linear"`
	// Optional concentration curve
	Curve *CurveRequest `json:"curve,omitempty"`
}

// CurveRequest asks for concentration samples over a range.
type CurveRequest struct {
	From        time.Time `json:"from" validate:"required" example:"2024-01-15T06:00:00Z"`
	To          time.Time `json:"to" validate:"required,gtfield=From" example:"2024-01-16T00:00:00Z"`
	StepMinutes int       `json:"step_minutes" validate:"required,min=1,max=1440" example:"15"`
}

// TimelineResponse is the response body for the timeline endpoint.
// @Description Current caffeine level and predictions.
type TimelineResponse struct {
	// Caffeine currently in the bloodstream (mg)
	TotalCaffeineMg float64 `json:"total_caffeine_mg" example:"221.7"`
	// When the level drops to the crash threshold
	CrashTime time.Time `json:"crash_time" example:"2024-01-15T23:47:00Z"`
	// Predicted sleep quality (0-100), present when sleep_time was given
	SleepScore *float64 `json:"sleep_score,omitempty" example:"42.1"`
	// Sleep model used for sleep_score
	SleepModel SleepModel `json:"sleep_model,omitempty" example:"exponential"`
	// Evaluation instant
	Now time.Time `json:"now" example:"2024-01-15T12:00:00Z"`
	// Sensitivity used
	Sensitivity SensitivityProfile `json:"sensitivity"`
	// Source of the sensitivity
	SensitivitySource SensitivitySource `json:"sensitivity_source" example:"default"`
	// Concentration samples, when requested
	Curve []CurvePoint `json:"curve,omitempty"`
}

// ValidateScheduleRequest is the request body for validating a schedule.
type ValidateScheduleRequest struct {
	Doses       []Dose      `json:"doses" validate:"dive"`
	Constraints Constraints `json:"constraints"`
}

// ValidateScheduleResponse reports whether a schedule respects the constraints.
// @Description Schedule validity and the first violated rule.
type ValidateScheduleResponse struct {
	Valid bool `json:"valid" example:"false"`
	// First violated rule: daily_limit, min_gap or cutoff (empty when valid)
	Violation string `json:"violation,omitempty" example:"min_gap" enums:"daily_limit,min_gap,cutoff"`
	// Human-readable description of the violation
	Detail string `json:"detail,omitempty" example:"dose gap below minimum: 1.00h between doses at 2024-01-15T08:00:00Z and 2024-01-15T09:00:00Z, need 2.00h"`
	// Total caffeine in the schedule (mg)
	TotalMg float64 `json:"total_mg" example:"360"`
}

// OptimizeRequest is the request body for the optimizer.
// @Description Existing doses, constraints and search grid.
type OptimizeRequest struct {
	ProfileRef
	Doses       []Dose             `json:"doses" validate:"dive"`
	Constraints Constraints        `json:"constraints"`
	Params      OptimizationParams `json:"params"`
	WindowStart time.Time          `json:"window_start" validate:"required" example:"2024-01-15T08:00:00Z"`
	WindowEnd   time.Time          `json:"window_end" validate:"required" example:"2024-01-15T18:00:00Z"`
}

// OptimizeResponse is the response body for the optimizer.
// @Description Proposed schedule and its utility.
type OptimizeResponse struct {
	// Full proposed schedule (existing plus added doses)
	Schedule []Dose `json:"schedule"`
	// Doses the optimizer added
	Added []Dose `json:"added"`
	// Utility of the existing schedule
	UtilityBefore float64 `json:"utility_before" example:"1520.4"`
	// Utility of the proposed schedule
	UtilityAfter float64 `json:"utility_after" example:"3310.9"`
	// Whether the proposed schedule satisfies the constraints
	Valid bool `json:"valid" example:"true"`
	// Sensitivity used
	Sensitivity SensitivityProfile `json:"sensitivity"`
}
