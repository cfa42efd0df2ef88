package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"

	"github.com/blaisecz/caffeine-planner/internal/domain"
	"github.com/blaisecz/caffeine-planner/internal/langfuse"
	"github.com/blaisecz/caffeine-planner/internal/llm"
	"github.com/blaisecz/caffeine-planner/internal/logger"
)

// TraceNameInsights names the Langfuse trace recorded per insights call.
const TraceNameInsights = "caffeine-insights"

// ScoreNameUserRating names the Langfuse score recorded for feedback.
const ScoreNameUserRating = "user_rating"

// InsightsService generates LLM insights on top of the caffeine model.
type InsightsService interface {
	// Generate computes the timeline (and a plan when constraints, params and window are
	// all given) and asks the LLM to summarize it.
	Generate(ctx context.Context, req *domain.InsightsRequest) (*domain.InsightsResponse, error)
	// Feedback attaches a user rating to a previous insights trace.
	Feedback(ctx context.Context, req *domain.FeedbackRequest) error
}

type insightsService struct {
	planner   PlannerService
	llmClient llm.InsightsLLM
	langfuse  langfuse.Client
	log       zerolog.Logger
}

// NewInsightsService creates a new InsightsService.
func NewInsightsService(planner PlannerService, llmClient llm.InsightsLLM, lf langfuse.Client) InsightsService {
	return &insightsService{
		planner:   planner,
		llmClient: llmClient,
		langfuse:  lf,
		log:       logger.Named("insights"),
	}
}

func (s *insightsService) Generate(ctx context.Context, req *domain.InsightsRequest) (*domain.InsightsResponse, error) {
	ctx, span := startSpan(ctx, "InsightsService.Generate",
		attribute.Int("doses.count", len(req.Doses)),
	)
	defer span.End()

	if s.llmClient == nil {
		return nil, recordError(span, llm.ErrOpenAIUnavailable)
	}

	timeline, err := s.planner.Timeline(ctx, &req.TimelineRequest)
	if err != nil {
		return nil, recordError(span, err)
	}

	insightsCtx := &domain.CaffeineInsightsContext{
		Doses:       req.Doses,
		Sensitivity: timeline.Sensitivity,
		Timeline:    *timeline,
		Constraints: req.Constraints,
	}

	var plan *domain.OptimizeResponse
	if req.Constraints != nil && req.Params != nil && req.Window != nil {
		plan, err = s.planner.Optimize(ctx, &domain.OptimizeRequest{
			ProfileRef:  req.ProfileRef,
			Doses:       req.Doses,
			Constraints: *req.Constraints,
			Params:      *req.Params,
			WindowStart: req.Window.Start,
			WindowEnd:   req.Window.End,
		})
		if err != nil {
			return nil, recordError(span, err)
		}
		insightsCtx.Plan = plan
	}
	setObservation(span, "langfuse.observation.input", insightsCtx)

	output, err := s.llmClient.GenerateInsights(ctx, insightsCtx)
	if err != nil {
		return nil, recordError(span, err)
	}
	setObservation(span, "langfuse.observation.output", output)

	resp := &domain.InsightsResponse{
		Timeline: *timeline,
		Plan:     plan,
		Insights: *output,
	}

	// Prefer the OTEL trace so feedback links to the exported spans.
	traceID := ""
	if sc := span.SpanContext(); sc.IsValid() {
		traceID = sc.TraceID().String()
	}
	if s.langfuse != nil && s.langfuse.IsEnabled() {
		in := langfuse.TraceInput{
			ID:     traceID,
			Name:   TraceNameInsights,
			Input:  insightsCtx,
			Output: output,
			Tags:   []string{"caffeine-planner"},
		}
		if req.UserID != nil {
			in.UserID = req.UserID.String()
		}
		id, err := s.langfuse.CreateTrace(ctx, in)
		if err != nil {
			s.log.Warn().Err(err).Msg("langfuse trace not recorded")
		} else {
			traceID = id
		}
	}
	resp.TraceID = traceID

	return resp, nil
}

func (s *insightsService) Feedback(ctx context.Context, req *domain.FeedbackRequest) error {
	if req.TraceID == "" {
		return fmt.Errorf("%w: trace_id is required", domain.ErrInvalidInput)
	}
	if s.langfuse == nil || !s.langfuse.IsEnabled() {
		s.log.Info().Str("trace_id", req.TraceID).Int("score", req.Score).Msg("feedback received, langfuse disabled")
		return nil
	}
	return s.langfuse.CreateScore(ctx, langfuse.ScoreInput{
		TraceID: req.TraceID,
		Name:    ScoreNameUserRating,
		Value:   float64(req.Score),
		Comment: req.Comment,
	})
}
