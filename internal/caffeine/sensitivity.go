package caffeine

import (
	"fmt"
	"math"

	"github.com/blaisecz/caffeine-planner/internal/domain"
)

// Bounds applied to derived sensitivity parameters.
const (
	MinHalfLifeHours = 3.0
	MaxHalfLifeHours = 8.0
	MinSleepDecayMg  = 30.0
	MaxSleepDecayMg  = 90.0
)

const (
	referenceWeightKg = 70.0
	halfLifeAgeOnset  = 25
	sleepAgeOnset     = 30
	femaleHalfLife    = 1.1
	smokerHalfLife    = 0.7
)

var activityHalfLife = map[domain.ActivityLevel]float64{
	domain.ActivitySedentary: 1.05,
	domain.ActivityModerate:  1.0,
	domain.ActivityAthletic:  0.9,
}

var activitySleepDecay = map[domain.ActivityLevel]float64{
	domain.ActivitySedentary: 0.9,
	domain.ActivityModerate:  1.0,
	domain.ActivityAthletic:  1.1,
}

// DeriveSensitivity maps physical attributes to decay and scoring parameters.
// Adjustments are multiplicative on the default profile; half-life and sleep decay are
// clamped to their bounds afterwards. An unknown activity level counts as moderate.
func DeriveSensitivity(p domain.UserProfile) domain.SensitivityProfile {
	halfLife := domain.DefaultHalfLifeHours
	sleepDecay := domain.DefaultSleepDecayMg

	// Weight
	halfLife *= math.Pow(p.WeightKg/referenceWeightKg, 0.25)

	// Age
	age := float64(p.Age)
	if p.Age > halfLifeAgeOnset {
		halfLife *= 1 + (age-halfLifeAgeOnset)*0.005
	}
	if p.Age > sleepAgeOnset {
		sleepDecay *= 1 - (age-sleepAgeOnset)*0.003
	}

	// Sex
	if p.Sex == domain.SexFemale {
		halfLife *= femaleHalfLife
	}

	// Activity
	if m, ok := activityHalfLife[p.ActivityLevel]; ok {
		halfLife *= m
	}
	if m, ok := activitySleepDecay[p.ActivityLevel]; ok {
		sleepDecay *= m
	}

	// Smoking
	if p.Smoker {
		halfLife *= smokerHalfLife
	}

	return domain.SensitivityProfile{
		HalfLifeHours:    clamp(halfLife, MinHalfLifeHours, MaxHalfLifeHours),
		SleepDecayMg:     clamp(sleepDecay, MinSleepDecayMg, MaxSleepDecayMg),
		CrashThresholdMg: domain.DefaultCrashThresholdMg,
	}
}

// ValidateSensitivity reports a sensitivity profile the model cannot evaluate.
func ValidateSensitivity(s domain.SensitivityProfile) error {
	if !positiveFinite(s.HalfLifeHours) {
		return fmt.Errorf("%w: half_life_hours must be positive, got %v", ErrInvalidParameter, s.HalfLifeHours)
	}
	if !positiveFinite(s.SleepDecayMg) {
		return fmt.Errorf("%w: sleep_decay_mg must be positive, got %v", ErrInvalidParameter, s.SleepDecayMg)
	}
	if !positiveFinite(s.CrashThresholdMg) {
		return fmt.Errorf("%w: crash_threshold_mg must be positive, got %v", ErrInvalidParameter, s.CrashThresholdMg)
	}
	return nil
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
