package domain

import "time"

// Constraints are the safety limits a full schedule must respect.
// @Description Safety limits applied to a whole dose schedule.
type Constraints struct {
	// Maximum total caffeine for the schedule (mg)
	MaxDailyMg float64 `json:"max_daily_mg" validate:"required,gt=0" example:"400"`
	// Minimum time between two consecutive doses (hours)
	MinGapHours float64 `json:"min_gap_hours" validate:"gte=0" example:"2"`
	// No dose may be taken after this instant
	NoCaffeineAfter time.Time `json:"no_caffeine_after" validate:"required" example:"2024-01-15T14:00:00Z"`
}

// OptimizationParams configure the schedule search grid.
// @Description Candidate dose sizes and grid granularity for the optimizer.
type OptimizationParams struct {
	// Candidate dose amounts (mg)
	DoseOptions []float64 `json:"dose_options" validate:"max=20,dive,gt=0" example:"50,100"`
	// Grid step in minutes
	StepMinutes int `json:"step_minutes" validate:"required,min=1,max=1440" example:"30"`
}
