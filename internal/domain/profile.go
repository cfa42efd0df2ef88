package domain

// Sex is the biological sex used for sensitivity derivation.
// @Description Sex: male, female or other.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
	SexOther  Sex = "other"
)

// ActivityLevel describes how physically active a person is.
// @Description Activity level: sedentary, moderate or athletic.
type ActivityLevel string

const (
	ActivitySedentary ActivityLevel = "sedentary"
	ActivityModerate  ActivityLevel = "moderate"
	ActivityAthletic  ActivityLevel = "athletic"
)

// Baseline sensitivity parameters for an average adult.
const (
	DefaultHalfLifeHours    = 5.0
	DefaultSleepDecayMg     = 50.0
	DefaultCrashThresholdMg = 10.0
)

// UserProfile holds the physical attributes a sensitivity profile is derived from.
// @Description Physical attributes used to personalize caffeine metabolism.
type UserProfile struct {
	// Age in years
	Age uint8 `json:"age" validate:"max=120" example:"32"`
	// Body weight in kilograms
	WeightKg float64 `json:"weight_kg" validate:"required,gt=0,lte=400" example:"70"`
	// Height in centimeters
	HeightCm float64 `json:"height_cm" validate:"required,gt=0,lte=300" example:"175"`
	// Sex: male, female or other
	Sex Sex `json:"sex" validate:"required,sex" example:"female" enums:"male,female,other"`
	// Activity level: sedentary, moderate or athletic
	ActivityLevel ActivityLevel `json:"activity_level" validate:"required,activity_level" example:"moderate" enums:"sedentary,moderate,athletic"`
	// Whether the person smokes
	Smoker bool `json:"smoker" example:"false"`
}

// SensitivityProfile is the per-user parameter set of the decay model.
// @Description Derived caffeine sensitivity parameters.
type SensitivityProfile struct {
	// Elimination half-life in hours (3-8)
	HalfLifeHours float64 `json:"half_life_hours" example:"5.0"`
	// Concentration at which sleep quality drops to 1/e (30-90 mg)
	SleepDecayMg float64 `json:"sleep_decay_mg" example:"50.0"`
	// Concentration below which a crash is predicted (mg)
	CrashThresholdMg float64 `json:"crash_threshold_mg" example:"10.0"`
}

// DefaultSensitivity returns the unpersonalized sensitivity profile.
func DefaultSensitivity() SensitivityProfile {
	return SensitivityProfile{
		HalfLifeHours:    DefaultHalfLifeHours,
		SleepDecayMg:     DefaultSleepDecayMg,
		CrashThresholdMg: DefaultCrashThresholdMg,
	}
}
