package caffeine

import (
	"errors"
	"math"
	"testing"

	"github.com/blaisecz/caffeine-planner/internal/domain"
)

func baselineProfile() domain.UserProfile {
	return domain.UserProfile{
		Age:           25,
		WeightKg:      70,
		HeightCm:      175,
		Sex:           domain.SexMale,
		ActivityLevel: domain.ActivityModerate,
	}
}

func TestDeriveSensitivity(t *testing.T) {
	tests := []struct {
		name           string
		modify         func(p *domain.UserProfile)
		wantHalfLife   float64
		wantSleepDecay float64
	}{
		{
			name:           "baseline adult matches default",
			modify:         func(p *domain.UserProfile) {},
			wantHalfLife:   5.0,
			wantSleepDecay: 50.0,
		},
		{
			name:           "female",
			modify:         func(p *domain.UserProfile) { p.Sex = domain.SexFemale },
			wantHalfLife:   5.5,
			wantSleepDecay: 50.0,
		},
		{
			name:           "other sex has no adjustment",
			modify:         func(p *domain.UserProfile) { p.Sex = domain.SexOther },
			wantHalfLife:   5.0,
			wantSleepDecay: 50.0,
		},
		{
			name: "athletic smoker",
			modify: func(p *domain.UserProfile) {
				p.ActivityLevel = domain.ActivityAthletic
				p.Smoker = true
			},
			wantHalfLife:   5.0 * 0.9 * 0.7,
			wantSleepDecay: 55.0,
		},
		{
			name:           "age 28 only affects half-life",
			modify:         func(p *domain.UserProfile) { p.Age = 28 },
			wantHalfLife:   5.0 * 1.015,
			wantSleepDecay: 50.0,
		},
		{
			name: "age 60 sedentary",
			modify: func(p *domain.UserProfile) {
				p.Age = 60
				p.ActivityLevel = domain.ActivitySedentary
			},
			wantHalfLife:   5.0 * 1.175 * 1.05,
			wantSleepDecay: 50.0 * 0.91 * 0.9,
		},
		{
			name:           "heavier person decays slower",
			modify:         func(p *domain.UserProfile) { p.WeightKg = 112 },
			wantHalfLife:   5.0 * math.Pow(1.6, 0.25),
			wantSleepDecay: 50.0,
		},
		{
			name: "half-life clamped high",
			modify: func(p *domain.UserProfile) {
				p.WeightKg = 350
				p.Sex = domain.SexFemale
				p.Age = 70
			},
			wantHalfLife:   MaxHalfLifeHours,
			wantSleepDecay: 50.0 * 0.88,
		},
		{
			name: "half-life clamped low",
			modify: func(p *domain.UserProfile) {
				p.WeightKg = 40
				p.ActivityLevel = domain.ActivityAthletic
				p.Smoker = true
			},
			wantHalfLife:   MinHalfLifeHours,
			wantSleepDecay: 55.0,
		},
		{
			name:           "sleep decay clamped low",
			modify:         func(p *domain.UserProfile) { p.Age = 200 },
			wantHalfLife:   MaxHalfLifeHours,
			wantSleepDecay: MinSleepDecayMg,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := baselineProfile()
			tt.modify(&p)

			got := DeriveSensitivity(p)
			if math.Abs(got.HalfLifeHours-tt.wantHalfLife) > 1e-9 {
				t.Errorf("HalfLifeHours = %v, want %v", got.HalfLifeHours, tt.wantHalfLife)
			}
			if math.Abs(got.SleepDecayMg-tt.wantSleepDecay) > 1e-9 {
				t.Errorf("SleepDecayMg = %v, want %v", got.SleepDecayMg, tt.wantSleepDecay)
			}
			if got.CrashThresholdMg != domain.DefaultCrashThresholdMg {
				t.Errorf("CrashThresholdMg = %v, want %v", got.CrashThresholdMg, domain.DefaultCrashThresholdMg)
			}
		})
	}
}

func TestDeriveSensitivity_AlwaysWithinBounds(t *testing.T) {
	sexes := []domain.Sex{domain.SexMale, domain.SexFemale, domain.SexOther}
	levels := []domain.ActivityLevel{domain.ActivitySedentary, domain.ActivityModerate, domain.ActivityAthletic}

	for age := 0; age <= 255; age += 15 {
		for weight := 30.0; weight <= 300; weight += 30 {
			for _, sex := range sexes {
				for _, level := range levels {
					for _, smoker := range []bool{false, true} {
						got := DeriveSensitivity(domain.UserProfile{
							Age:           uint8(age),
							WeightKg:      weight,
							HeightCm:      170,
							Sex:           sex,
							ActivityLevel: level,
							Smoker:        smoker,
						})
						if got.HalfLifeHours < MinHalfLifeHours || got.HalfLifeHours > MaxHalfLifeHours {
							t.Fatalf("half-life %v out of bounds for age=%d weight=%v", got.HalfLifeHours, age, weight)
						}
						if got.SleepDecayMg < MinSleepDecayMg || got.SleepDecayMg > MaxSleepDecayMg {
							t.Fatalf("sleep decay %v out of bounds for age=%d weight=%v", got.SleepDecayMg, age, weight)
						}
					}
				}
			}
		}
	}
}

func TestValidateSensitivity(t *testing.T) {
	tests := []struct {
		name    string
		s       domain.SensitivityProfile
		wantErr bool
	}{
		{name: "default", s: domain.DefaultSensitivity(), wantErr: false},
		{name: "zero half-life", s: domain.SensitivityProfile{HalfLifeHours: 0, SleepDecayMg: 50, CrashThresholdMg: 10}, wantErr: true},
		{name: "negative sleep decay", s: domain.SensitivityProfile{HalfLifeHours: 5, SleepDecayMg: -1, CrashThresholdMg: 10}, wantErr: true},
		{name: "infinite threshold", s: domain.SensitivityProfile{HalfLifeHours: 5, SleepDecayMg: 50, CrashThresholdMg: math.Inf(1)}, wantErr: true},
		{name: "NaN half-life", s: domain.SensitivityProfile{HalfLifeHours: math.NaN(), SleepDecayMg: 50, CrashThresholdMg: 10}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSensitivity(tt.s)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateSensitivity() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("expected ErrInvalidParameter, got %v", err)
			}
		})
	}
}
