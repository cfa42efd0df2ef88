package caffeine

import (
	"math"
	"time"

	"github.com/blaisecz/caffeine-planner/internal/domain"
)

// Legacy linear sleep score parameters: 20 points lost per 10 mg above 10 mg.
const (
	legacySleepThresholdMg = 10.0
	legacyPointsPerMg      = 20.0 / 10.0
)

// CurrentLevel returns the caffeine in the bloodstream at now, in mg.
func CurrentLevel(doses []domain.Dose, now time.Time, s domain.SensitivityProfile) float64 {
	return ConcentrationAt(doses, now, s)
}

// PredictedCrash returns when the level falls to the crash threshold.
//
// The aggregate level is treated as one dose decaying at k, so the result is exact for a
// single active dose and an approximation otherwise. If the level is already at or below
// the threshold, now is returned. The offset is rounded to the nearest second.
func PredictedCrash(doses []domain.Dose, now time.Time, s domain.SensitivityProfile) time.Time {
	level := CurrentLevel(doses, now, s)
	if level <= s.CrashThresholdMg {
		return now
	}
	hours := math.Log(level/s.CrashThresholdMg) / DecayConstant(s)
	secs := math.Round(hours * 3600)
	return now.Add(time.Duration(secs) * time.Second)
}

// SleepQualityScore predicts sleep quality (0-100) from the level at sleepTime.
func SleepQualityScore(doses []domain.Dose, sleepTime time.Time, s domain.SensitivityProfile) float64 {
	c := ConcentrationAt(doses, sleepTime, s)
	return clamp(100*math.Exp(-c/s.SleepDecayMg), 0, 100)
}

// LegacySleepScore is the older linear model: 100 minus 20 points per 10 mg above 10 mg,
// floored at 0. It ignores the sleep-decay parameter.
func LegacySleepScore(doses []domain.Dose, sleepTime time.Time, s domain.SensitivityProfile) float64 {
	c := ConcentrationAt(doses, sleepTime, s)
	if c <= legacySleepThresholdMg {
		return 100
	}
	return clamp(100-(c-legacySleepThresholdMg)*legacyPointsPerMg, 0, 100)
}

// SleepScore dispatches on the requested model. Empty selects the exponential model.
func SleepScore(model domain.SleepModel, doses []domain.Dose, sleepTime time.Time, s domain.SensitivityProfile) float64 {
	if model == domain.SleepModelLinear {
		return LegacySleepScore(doses, sleepTime, s)
	}
	return SleepQualityScore(doses, sleepTime, s)
}
