package service

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/blaisecz/caffeine-planner/internal/caffeine"
	"github.com/blaisecz/caffeine-planner/internal/domain"
)

var noon = time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

func newTestPlanner(repo *MockUserRepository) PlannerService {
	return NewPlannerService(repo, PlannerOptions{
		MaxGridPoints: 100,
		Now:           func() time.Time { return noon },
	})
}

func twoDoses() []domain.Dose {
	return []domain.Dose{
		{AmountMg: 200, Timestamp: noon.Add(-2 * time.Hour)},
		{AmountMg: 160, Timestamp: noon.Add(-6 * time.Hour)},
	}
}

func TestPlannerService_Sensitivity(t *testing.T) {
	repo := NewMockUserRepository()
	stored := &domain.User{ID: uuid.New(), Age: 30, WeightKg: 90, Sex: domain.SexFemale, ActivityLevel: domain.ActivityModerate}
	repo.users[stored.ID] = stored
	inline := sampleProfile()

	tests := []struct {
		name       string
		ref        domain.ProfileRef
		wantSource domain.SensitivitySource
		want       domain.SensitivityProfile
		wantErr    error
	}{
		{"default", domain.ProfileRef{}, domain.SensitivityFromDefault, domain.DefaultSensitivity(), nil},
		{"inline profile", domain.ProfileRef{Profile: &inline}, domain.SensitivityFromProfile, caffeine.DeriveSensitivity(inline), nil},
		{"stored user wins over profile", domain.ProfileRef{UserID: uuidPtr(stored.ID), Profile: &inline},
			domain.SensitivityFromUser, caffeine.DeriveSensitivity(stored.Profile()), nil},
		{"unknown user", domain.ProfileRef{UserID: uuidPtr(uuid.New())}, "", domain.SensitivityProfile{}, domain.ErrNotFound},
	}

	svc := newTestPlanner(repo)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Sensitivity(context.Background(), tt.ref)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
			if tt.wantErr != nil {
				return
			}
			if got.Source != tt.wantSource || got.Sensitivity != tt.want {
				t.Errorf("got %+v, want source %s sensitivity %+v", got, tt.wantSource, tt.want)
			}
		})
	}
}

func TestPlannerService_Timeline(t *testing.T) {
	svc := newTestPlanner(NewMockUserRepository())

	resp, err := svc.Timeline(context.Background(), &domain.TimelineRequest{
		Doses:     twoDoses(),
		SleepTime: timePtr(noon.Add(11 * time.Hour)),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !resp.Now.Equal(noon) {
		t.Errorf("expected clock default %v, got %v", noon, resp.Now)
	}
	if math.Abs(resp.TotalCaffeineMg-221.7) > 0.5 {
		t.Errorf("level = %v, want about 221.7", resp.TotalCaffeineMg)
	}
	if !resp.CrashTime.After(noon) {
		t.Errorf("crash %v should be after now", resp.CrashTime)
	}
	if resp.SleepScore == nil || *resp.SleepScore < 0 || *resp.SleepScore > 100 {
		t.Fatalf("unexpected sleep score %v", resp.SleepScore)
	}
	if resp.SleepModel != domain.SleepModelExponential {
		t.Errorf("expected default exponential model, got %s", resp.SleepModel)
	}
	if resp.SensitivitySource != domain.SensitivityFromDefault {
		t.Errorf("expected default sensitivity, got %s", resp.SensitivitySource)
	}
	if resp.Curve != nil {
		t.Error("curve should be omitted unless requested")
	}
}

func TestPlannerService_Timeline_ExplicitNowAndCurve(t *testing.T) {
	svc := newTestPlanner(NewMockUserRepository())
	at := noon.Add(4 * time.Hour)

	resp, err := svc.Timeline(context.Background(), &domain.TimelineRequest{
		Doses:      twoDoses(),
		Now:        &at,
		SleepTime:  timePtr(at),
		SleepModel: domain.SleepModelLinear,
		Curve:      &domain.CurveRequest{From: noon, To: noon.Add(2 * time.Hour), StepMinutes: 30},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.Now.Equal(at) {
		t.Errorf("expected now %v, got %v", at, resp.Now)
	}
	want := caffeine.LegacySleepScore(twoDoses(), at, domain.DefaultSensitivity())
	if *resp.SleepScore != want {
		t.Errorf("linear score = %v, want %v", *resp.SleepScore, want)
	}
	if len(resp.Curve) != 5 {
		t.Fatalf("expected 5 curve points, got %d", len(resp.Curve))
	}
}

func TestPlannerService_Timeline_Errors(t *testing.T) {
	svc := newTestPlanner(NewMockUserRepository())

	tests := []struct {
		name    string
		req     *domain.TimelineRequest
		wantErr error
	}{
		{"negative dose", &domain.TimelineRequest{Doses: []domain.Dose{{AmountMg: -1, Timestamp: noon}}}, caffeine.ErrInvalidParameter},
		{"curve too large", &domain.TimelineRequest{Curve: &domain.CurveRequest{From: noon, To: noon.Add(24 * time.Hour), StepMinutes: 1}}, ErrTooManyGridPoints},
		{"unknown user", &domain.TimelineRequest{ProfileRef: domain.ProfileRef{UserID: uuidPtr(uuid.New())}}, domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Timeline(context.Background(), tt.req); !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestPlannerService_ValidateSchedule(t *testing.T) {
	svc := newTestPlanner(NewMockUserRepository())
	c := domain.Constraints{MaxDailyMg: 400, MinGapHours: 2, NoCaffeineAfter: noon.Add(2 * time.Hour)}

	tests := []struct {
		name          string
		doses         []domain.Dose
		wantValid     bool
		wantViolation string
	}{
		{"valid", twoDoses(), true, ""},
		{"over daily limit", []domain.Dose{{AmountMg: 300, Timestamp: noon}, {AmountMg: 200, Timestamp: noon.Add(-4 * time.Hour)}}, false, ViolationDailyLimit},
		{"gap too short", []domain.Dose{{AmountMg: 100, Timestamp: noon}, {AmountMg: 100, Timestamp: noon.Add(-time.Hour)}}, false, ViolationMinGap},
		{"after cutoff", []domain.Dose{{AmountMg: 100, Timestamp: noon.Add(3 * time.Hour)}}, false, ViolationCutoff},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.ValidateSchedule(context.Background(), &domain.ValidateScheduleRequest{Doses: tt.doses, Constraints: c})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if resp.Valid != tt.wantValid || resp.Violation != tt.wantViolation {
				t.Errorf("got valid=%v violation=%q, want %v %q", resp.Valid, resp.Violation, tt.wantValid, tt.wantViolation)
			}
			if !tt.wantValid && resp.Detail == "" {
				t.Error("expected violation detail")
			}
		})
	}
}

func TestPlannerService_Optimize(t *testing.T) {
	svc := newTestPlanner(NewMockUserRepository())
	start := time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC)

	req := &domain.OptimizeRequest{
		Constraints: domain.Constraints{MaxDailyMg: 200, MinGapHours: 2, NoCaffeineAfter: start.Add(6 * time.Hour)},
		Params:      domain.OptimizationParams{DoseOptions: []float64{100}, StepMinutes: 60},
		WindowStart: start,
		WindowEnd:   start.Add(4 * time.Hour),
	}
	resp, err := svc.Optimize(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Added) != 2 || len(resp.Schedule) != 2 {
		t.Fatalf("expected two added doses, got %+v", resp)
	}
	if !resp.Valid {
		t.Error("optimized schedule should be valid")
	}
	if resp.UtilityAfter <= resp.UtilityBefore {
		t.Errorf("utility did not improve: %v -> %v", resp.UtilityBefore, resp.UtilityAfter)
	}
}

func TestPlannerService_Optimize_NothingToAdd(t *testing.T) {
	svc := newTestPlanner(NewMockUserRepository())

	resp, err := svc.Optimize(context.Background(), &domain.OptimizeRequest{
		Constraints: domain.Constraints{MaxDailyMg: 400, NoCaffeineAfter: noon},
		Params:      domain.OptimizationParams{StepMinutes: 30},
		WindowStart: noon,
		WindowEnd:   noon.Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Added == nil || resp.Schedule == nil {
		t.Error("empty slices must be non-nil so they encode as []")
	}
	if len(resp.Added) != 0 {
		t.Errorf("expected nothing added, got %+v", resp.Added)
	}
}

func TestPlannerService_Optimize_Errors(t *testing.T) {
	svc := newTestPlanner(NewMockUserRepository())
	c := domain.Constraints{MaxDailyMg: 400, NoCaffeineAfter: noon}

	tests := []struct {
		name    string
		req     *domain.OptimizeRequest
		wantErr error
	}{
		{"zero step", &domain.OptimizeRequest{Constraints: c, Params: domain.OptimizationParams{StepMinutes: 0}, WindowStart: noon, WindowEnd: noon}, caffeine.ErrInvalidParameter},
		{"negative option", &domain.OptimizeRequest{Constraints: c, Params: domain.OptimizationParams{DoseOptions: []float64{-5}, StepMinutes: 30}, WindowStart: noon, WindowEnd: noon}, caffeine.ErrInvalidParameter},
		{"grid too large", &domain.OptimizeRequest{Constraints: c, Params: domain.OptimizationParams{DoseOptions: []float64{50}, StepMinutes: 1}, WindowStart: noon, WindowEnd: noon.Add(10 * time.Hour)}, ErrTooManyGridPoints},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Optimize(context.Background(), tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}

	if !errors.Is(ErrTooManyGridPoints, domain.ErrInvalidInput) {
		t.Error("grid guard must classify as invalid input")
	}
}

func TestPlannerService_Optimize_LongWindowRejected(t *testing.T) {
	svc := NewPlannerService(nil, PlannerOptions{MaxGridPoints: DefaultMaxGridPoints})

	// Daily steps over 1999 days stay within the grid limit but sample the window
	// 191905 times per candidate.
	req := &domain.OptimizeRequest{
		Constraints: domain.Constraints{MaxDailyMg: 1e9, NoCaffeineAfter: noon.AddDate(0, 0, 2000)},
		Params:      domain.OptimizationParams{DoseOptions: []float64{1}, StepMinutes: 1440},
		WindowStart: noon,
		WindowEnd:   noon.AddDate(0, 0, 1999),
	}
	if n := caffeine.GridPoints(req.WindowStart, req.WindowEnd, req.Params.StepMinutes); n > DefaultMaxGridPoints {
		t.Fatalf("setup: %d grid points should pass the grid guard", n)
	}

	_, err := svc.Optimize(context.Background(), req)
	if !errors.Is(err, ErrSearchTooExpensive) {
		t.Fatalf("expected ErrSearchTooExpensive, got %v", err)
	}
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Error("cost guard must classify as invalid input")
	}
}

func TestPlannerService_Optimize_SearchCostLimit(t *testing.T) {
	start := time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC)
	req := &domain.OptimizeRequest{
		Constraints: domain.Constraints{MaxDailyMg: 400, NoCaffeineAfter: start.Add(6 * time.Hour)},
		Params:      domain.OptimizationParams{DoseOptions: []float64{50, 100}, StepMinutes: 60},
		WindowStart: start,
		WindowEnd:   start.Add(4 * time.Hour),
	}
	// 5 grid points * 2 options * 17 samples
	const cost = 170

	tests := []struct {
		name    string
		limit   int64
		wantErr error
	}{
		{"at limit", cost, nil},
		{"over limit", cost - 1, ErrSearchTooExpensive},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewPlannerService(nil, PlannerOptions{MaxSearchCost: tt.limit})
			_, err := svc.Optimize(context.Background(), req)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}
