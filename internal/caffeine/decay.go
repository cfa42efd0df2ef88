package caffeine

import (
	"fmt"
	"math"
	"time"

	"github.com/blaisecz/caffeine-planner/internal/domain"
)

// DecayConstant returns k = ln(2) / half-life, per hour.
func DecayConstant(s domain.SensitivityProfile) float64 {
	return math.Ln2 / s.HalfLifeHours
}

// ConcentrationAt returns the caffeine in the bloodstream at t, in mg.
//
// Each dose decays exponentially from its timestamp and contributions are summed.
// A dose taken after t contributes nothing.
func ConcentrationAt(doses []domain.Dose, t time.Time, s domain.SensitivityProfile) float64 {
	k := DecayConstant(s)
	total := 0.0
	for _, d := range doses {
		elapsed := t.Sub(d.Timestamp).Hours()
		if elapsed < 0 {
			continue
		}
		total += d.AmountMg * math.Exp(-k*elapsed)
	}
	return total
}

// Curve samples ConcentrationAt from from to to (inclusive) every step.
func Curve(doses []domain.Dose, from, to time.Time, step time.Duration, s domain.SensitivityProfile) ([]domain.CurvePoint, error) {
	if step <= 0 {
		return nil, fmt.Errorf("%w: curve step must be positive, got %s", ErrInvalidParameter, step)
	}
	var points []domain.CurvePoint
	for t := from; !t.After(to); t = t.Add(step) {
		points = append(points, domain.CurvePoint{
			At:              t,
			ConcentrationMg: ConcentrationAt(doses, t, s),
		})
	}
	return points, nil
}

// ValidateDoses reports doses whose amount the model cannot evaluate.
func ValidateDoses(doses []domain.Dose) error {
	for i, d := range doses {
		if d.AmountMg < 0 || math.IsNaN(d.AmountMg) || math.IsInf(d.AmountMg, 0) {
			return fmt.Errorf("%w: dose %d amount_mg must be a non-negative number, got %v", ErrInvalidParameter, i, d.AmountMg)
		}
	}
	return nil
}
