package caffeine

import (
	"fmt"
	"math"
	"time"

	"github.com/blaisecz/caffeine-planner/internal/domain"
)

// UtilitySampleStep is the sampling interval of the utility integral.
const UtilitySampleStep = 15 * time.Minute

// Plan is the outcome of a schedule search.
type Plan struct {
	// Schedule is the full best schedule. It is the existing schedule, untouched, when
	// nothing was added; otherwise it is sorted by time.
	Schedule []domain.Dose
	// Added lists the doses the search placed, in placement order.
	Added         []domain.Dose
	UtilityBefore float64
	UtilityAfter  float64
}

// Utility approximates the area under the concentration curve over the window by
// summing samples taken every UtilitySampleStep from start to end inclusive.
func Utility(schedule []domain.Dose, s domain.SensitivityProfile, start, end time.Time) float64 {
	sum := 0.0
	for t := start; !t.After(end); t = t.Add(UtilitySampleStep) {
		sum += ConcentrationAt(schedule, t, s)
	}
	return sum
}

// GridPoints returns how many grid points a search over the window visits.
func GridPoints(start, end time.Time, stepMinutes int) int {
	if stepMinutes <= 0 || start.After(end) {
		return 0
	}
	step := time.Duration(stepMinutes) * time.Minute
	return int(end.Sub(start)/step) + 1
}

// ValidateParams reports optimization parameters the search cannot run with.
func ValidateParams(p domain.OptimizationParams) error {
	if p.StepMinutes <= 0 {
		return fmt.Errorf("%w: step_minutes must be positive, got %d", ErrInvalidParameter, p.StepMinutes)
	}
	for i, amount := range p.DoseOptions {
		if !positiveFinite(amount) {
			return fmt.Errorf("%w: dose_options[%d] must be positive, got %v", ErrInvalidParameter, i, amount)
		}
	}
	return nil
}

// Optimize runs Search with the default sensitivity and returns the best schedule.
func Optimize(existing []domain.Dose, c domain.Constraints, p domain.OptimizationParams, windowStart, windowEnd time.Time) ([]domain.Dose, error) {
	plan, err := Search(existing, c, p, domain.DefaultSensitivity(), windowStart, windowEnd)
	if err != nil {
		return nil, err
	}
	return plan.Schedule, nil
}

// Search greedily adds doses on a time grid to maximize Utility while keeping the
// schedule valid.
//
// Grid points run from windowStart to windowEnd inclusive every p.StepMinutes. At each
// point every dose option is tried on top of the schedule accepted so far; a candidate
// is kept when it is valid and strictly improves on the best utility seen. The best
// candidate of a point becomes the base for the following points, so the result is
// path dependent and not an exhaustive search.
func Search(existing []domain.Dose, c domain.Constraints, p domain.OptimizationParams, s domain.SensitivityProfile, windowStart, windowEnd time.Time) (*Plan, error) {
	if err := ValidateParams(p); err != nil {
		return nil, err
	}
	if err := ValidateSensitivity(s); err != nil {
		return nil, err
	}
	if err := ValidateDoses(existing); err != nil {
		return nil, err
	}

	before := Utility(existing, s, windowStart, windowEnd)
	plan := &Plan{
		Schedule:      append([]domain.Dose(nil), existing...),
		UtilityBefore: before,
		UtilityAfter:  before,
	}
	if len(p.DoseOptions) == 0 {
		return plan, nil
	}

	step := time.Duration(p.StepMinutes) * time.Minute
	base, baseAdded := plan.Schedule, plan.Added
	for t := windowStart; !t.After(windowEnd); t = t.Add(step) {
		for _, amount := range p.DoseOptions {
			dose := domain.Dose{AmountMg: amount, Timestamp: t}
			candidate := SortByTime(append(append([]domain.Dose(nil), base...), dose))
			if !IsValid(candidate, c) {
				continue
			}
			u := Utility(candidate, s, windowStart, windowEnd)
			if u > plan.UtilityAfter && !math.IsNaN(u) {
				plan.Schedule = candidate
				plan.Added = append(append([]domain.Dose(nil), baseAdded...), dose)
				plan.UtilityAfter = u
			}
		}
		base, baseAdded = plan.Schedule, plan.Added
	}
	return plan, nil
}
