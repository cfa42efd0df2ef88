package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/blaisecz/caffeine-planner/internal/caffeine"
	"github.com/blaisecz/caffeine-planner/internal/domain"
	"github.com/blaisecz/caffeine-planner/internal/logger"
	"github.com/blaisecz/caffeine-planner/internal/repository"
)

// DefaultMaxGridPoints caps optimizer and curve work per request.
const DefaultMaxGridPoints = 2000

// DefaultMaxSearchCost caps grid points * dose options * utility samples per optimization.
const DefaultMaxSearchCost = 2_000_000

var (
	// ErrTooManyGridPoints is returned when a request would visit more grid points than allowed.
	ErrTooManyGridPoints = fmt.Errorf("%w: too many grid points", domain.ErrInvalidInput)
	// ErrSearchTooExpensive is returned when an optimization would evaluate too many utility samples.
	ErrSearchTooExpensive = fmt.Errorf("%w: optimization too expensive", domain.ErrInvalidInput)
)

// Violation codes reported by ValidateSchedule.
const (
	ViolationDailyLimit = "daily_limit"
	ViolationMinGap     = "min_gap"
	ViolationCutoff     = "cutoff"
)

// PlannerService runs the caffeine model for API requests.
type PlannerService interface {
	// Sensitivity resolves the sensitivity for a request: stored user, then inline
	// profile, then the population default.
	Sensitivity(ctx context.Context, ref domain.ProfileRef) (*domain.SensitivityResponse, error)
	Timeline(ctx context.Context, req *domain.TimelineRequest) (*domain.TimelineResponse, error)
	ValidateSchedule(ctx context.Context, req *domain.ValidateScheduleRequest) (*domain.ValidateScheduleResponse, error)
	Optimize(ctx context.Context, req *domain.OptimizeRequest) (*domain.OptimizeResponse, error)
}

// PlannerOptions tunes a PlannerService.
type PlannerOptions struct {
	MaxGridPoints int
	// MaxSearchCost bounds the utility samples a single optimization may evaluate.
	MaxSearchCost int64
	// Now overrides the clock used when a request carries no evaluation instant.
	Now func() time.Time
}

type plannerService struct {
	userRepo      repository.UserRepository
	maxGridPoints int
	maxSearchCost int64
	now           func() time.Time
	log           zerolog.Logger
}

// NewPlannerService creates a new PlannerService. userRepo may be nil when no
// database is configured; requests naming a user then fail with ErrNotFound.
func NewPlannerService(userRepo repository.UserRepository, opts PlannerOptions) PlannerService {
	if opts.MaxGridPoints <= 0 {
		opts.MaxGridPoints = DefaultMaxGridPoints
	}
	if opts.MaxSearchCost <= 0 {
		opts.MaxSearchCost = DefaultMaxSearchCost
	}
	if opts.Now == nil {
		opts.Now = func() time.Time { return time.Now().UTC() }
	}
	return &plannerService{
		userRepo:      userRepo,
		maxGridPoints: opts.MaxGridPoints,
		maxSearchCost: opts.MaxSearchCost,
		now:           opts.Now,
		log:           logger.Named("planner"),
	}
}

func (s *plannerService) Sensitivity(ctx context.Context, ref domain.ProfileRef) (*domain.SensitivityResponse, error) {
	if ref.UserID != nil {
		if s.userRepo == nil {
			return nil, domain.ErrNotFound
		}
		user, err := s.userRepo.GetByID(ctx, *ref.UserID)
		if err != nil {
			return nil, err
		}
		return &domain.SensitivityResponse{
			Sensitivity: caffeine.DeriveSensitivity(user.Profile()),
			Source:      domain.SensitivityFromUser,
		}, nil
	}
	if ref.Profile != nil {
		return &domain.SensitivityResponse{
			Sensitivity: caffeine.DeriveSensitivity(*ref.Profile),
			Source:      domain.SensitivityFromProfile,
		}, nil
	}
	return &domain.SensitivityResponse{
		Sensitivity: domain.DefaultSensitivity(),
		Source:      domain.SensitivityFromDefault,
	}, nil
}

func (s *plannerService) Timeline(ctx context.Context, req *domain.TimelineRequest) (*domain.TimelineResponse, error) {
	ctx, span := startSpan(ctx, "PlannerService.Timeline",
		attribute.Int("doses.count", len(req.Doses)),
	)
	defer span.End()
	setObservation(span, "langfuse.observation.input", req)

	if err := caffeine.ValidateDoses(req.Doses); err != nil {
		return nil, recordError(span, err)
	}

	sens, err := s.Sensitivity(ctx, req.ProfileRef)
	if err != nil {
		return nil, recordError(span, err)
	}

	now := s.now()
	if req.Now != nil {
		now = *req.Now
	}

	resp := &domain.TimelineResponse{
		TotalCaffeineMg:   caffeine.CurrentLevel(req.Doses, now, sens.Sensitivity),
		CrashTime:         caffeine.PredictedCrash(req.Doses, now, sens.Sensitivity),
		Now:               now,
		Sensitivity:       sens.Sensitivity,
		SensitivitySource: sens.Source,
	}

	if req.SleepTime != nil {
		model := req.SleepModel
		if model == "" {
			model = domain.SleepModelExponential
		}
		score := caffeine.SleepScore(model, req.Doses, *req.SleepTime, sens.Sensitivity)
		resp.SleepScore = &score
		resp.SleepModel = model
	}

	if req.Curve != nil {
		if n := caffeine.GridPoints(req.Curve.From, req.Curve.To, req.Curve.StepMinutes); n > s.maxGridPoints {
			return nil, recordError(span, fmt.Errorf("%w: curve has %d points, limit %d", ErrTooManyGridPoints, n, s.maxGridPoints))
		}
		step := time.Duration(req.Curve.StepMinutes) * time.Minute
		curve, err := caffeine.Curve(req.Doses, req.Curve.From, req.Curve.To, step, sens.Sensitivity)
		if err != nil {
			return nil, recordError(span, err)
		}
		resp.Curve = curve
	}

	span.SetAttributes(
		attribute.Float64("caffeine.level_mg", resp.TotalCaffeineMg),
		attribute.String("caffeine.crash_time", resp.CrashTime.Format(time.RFC3339)),
	)
	setObservation(span, "langfuse.observation.output", resp)
	return resp, nil
}

func (s *plannerService) ValidateSchedule(ctx context.Context, req *domain.ValidateScheduleRequest) (*domain.ValidateScheduleResponse, error) {
	_, span := startSpan(ctx, "PlannerService.ValidateSchedule",
		attribute.Int("doses.count", len(req.Doses)),
	)
	defer span.End()

	if err := caffeine.ValidateDoses(req.Doses); err != nil {
		return nil, recordError(span, err)
	}

	resp := &domain.ValidateScheduleResponse{
		Valid:   true,
		TotalMg: caffeine.TotalMg(req.Doses),
	}
	if err := caffeine.Validate(req.Doses, req.Constraints); err != nil {
		resp.Valid = false
		resp.Violation = violationCode(err)
		resp.Detail = err.Error()
	}

	span.SetAttributes(attribute.Bool("schedule.valid", resp.Valid))
	return resp, nil
}

func (s *plannerService) Optimize(ctx context.Context, req *domain.OptimizeRequest) (*domain.OptimizeResponse, error) {
	ctx, span := startSpan(ctx, "PlannerService.Optimize",
		attribute.Int("doses.count", len(req.Doses)),
		attribute.Int("params.step_minutes", req.Params.StepMinutes),
		attribute.Int("params.dose_options", len(req.Params.DoseOptions)),
	)
	defer span.End()
	setObservation(span, "langfuse.observation.input", req)

	if err := caffeine.ValidateParams(req.Params); err != nil {
		return nil, recordError(span, err)
	}
	points := caffeine.GridPoints(req.WindowStart, req.WindowEnd, req.Params.StepMinutes)
	if points > s.maxGridPoints {
		return nil, recordError(span, fmt.Errorf("%w: window has %d points, limit %d", ErrTooManyGridPoints, points, s.maxGridPoints))
	}
	cost := searchCost(points, len(req.Params.DoseOptions), req.WindowStart, req.WindowEnd)
	if cost > s.maxSearchCost {
		return nil, recordError(span, fmt.Errorf("%w: %d utility samples, limit %d", ErrSearchTooExpensive, cost, s.maxSearchCost))
	}
	span.SetAttributes(attribute.Int("grid.points", points), attribute.Int64("search.cost", cost))

	sens, err := s.Sensitivity(ctx, req.ProfileRef)
	if err != nil {
		return nil, recordError(span, err)
	}

	started := time.Now()
	plan, err := caffeine.Search(req.Doses, req.Constraints, req.Params, sens.Sensitivity, req.WindowStart, req.WindowEnd)
	if err != nil {
		return nil, recordError(span, err)
	}

	resp := &domain.OptimizeResponse{
		Schedule:      nonNil(plan.Schedule),
		Added:         nonNil(plan.Added),
		UtilityBefore: plan.UtilityBefore,
		UtilityAfter:  plan.UtilityAfter,
		Valid:         caffeine.IsValid(plan.Schedule, req.Constraints),
		Sensitivity:   sens.Sensitivity,
	}

	s.log.Debug().
		Int("grid_points", points).
		Int("added", len(resp.Added)).
		Float64("utility_gain", resp.UtilityAfter-resp.UtilityBefore).
		Dur("elapsed", time.Since(started)).
		Msg("optimized schedule")

	span.SetAttributes(
		attribute.Int("plan.added", len(resp.Added)),
		attribute.Bool("plan.valid", resp.Valid),
	)
	setObservation(span, "langfuse.observation.output", resp)
	return resp, nil
}

// searchCost is the number of concentration samples a Search over the window takes:
// one Utility per candidate, one candidate per grid point and dose option.
func searchCost(points, options int, start, end time.Time) int64 {
	samples := caffeine.GridPoints(start, end, int(caffeine.UtilitySampleStep/time.Minute))
	return int64(points) * int64(options) * int64(samples)
}

func violationCode(err error) string {
	switch {
	case errors.Is(err, caffeine.ErrDailyLimitExceeded):
		return ViolationDailyLimit
	case errors.Is(err, caffeine.ErrGapTooShort):
		return ViolationMinGap
	case errors.Is(err, caffeine.ErrAfterCutoff):
		return ViolationCutoff
	default:
		return "unknown"
	}
}

func nonNil(doses []domain.Dose) []domain.Dose {
	if doses == nil {
		return []domain.Dose{}
	}
	return doses
}

func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer("caffeine-planner-api/planner").Start(ctx, name, trace.WithAttributes(attrs...))
}

// setObservation attaches a JSON payload for Langfuse's OTLP ingestion.
func setObservation(span trace.Span, key string, v any) {
	if !span.IsRecording() {
		return
	}
	if data, err := json.Marshal(v); err == nil {
		span.SetAttributes(attribute.String(key, string(data)))
	}
}

func recordError(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
