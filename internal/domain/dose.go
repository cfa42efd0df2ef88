package domain

import "time"

// Dose is a single caffeine intake event.
// @Description Caffeine intake: amount in milligrams at an instant.
type Dose struct {
	// Caffeine amount in milligrams
	AmountMg float64 `json:"amount_mg" validate:"required,gt=0" example:"95"`
	// Intake time in RFC3339 format
	Timestamp time.Time `json:"timestamp" validate:"required" example:"2024-01-15T08:00:00Z"`
}

// CurvePoint is one sample of the concentration curve.
// @Description Concentration sample for charting.
type CurvePoint struct {
	// Sample instant
	At time.Time `json:"at" example:"2024-01-15T10:00:00Z"`
	// Caffeine in the bloodstream (mg)
	ConcentrationMg float64 `json:"concentration_mg" example:"75.8"`
}
