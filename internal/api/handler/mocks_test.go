package handler

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/blaisecz/caffeine-planner/internal/domain"
)

// MockUserService is a mock implementation of UserService
type MockUserService struct {
	createFunc      func(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error)
	getByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	listFunc        func(ctx context.Context, filter domain.UserFilter) (*domain.UserListResponse, error)
	sensitivityFunc func(ctx context.Context, id uuid.UUID) (*domain.SensitivityResponse, error)
}

func (m *MockUserService) Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	u := domain.NewUser(req)
	u.CreatedAt = time.Now()
	return u, nil
}

func (m *MockUserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *MockUserService) List(ctx context.Context, filter domain.UserFilter) (*domain.UserListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, filter)
	}
	return &domain.UserListResponse{Data: []domain.UserResponse{}}, nil
}

func (m *MockUserService) Sensitivity(ctx context.Context, id uuid.UUID) (*domain.SensitivityResponse, error) {
	if m.sensitivityFunc != nil {
		return m.sensitivityFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

// MockPlannerService is a mock implementation of PlannerService
type MockPlannerService struct {
	sensitivityFunc func(ctx context.Context, ref domain.ProfileRef) (*domain.SensitivityResponse, error)
	timelineFunc    func(ctx context.Context, req *domain.TimelineRequest) (*domain.TimelineResponse, error)
	validateFunc    func(ctx context.Context, req *domain.ValidateScheduleRequest) (*domain.ValidateScheduleResponse, error)
	optimizeFunc    func(ctx context.Context, req *domain.OptimizeRequest) (*domain.OptimizeResponse, error)
}

func (m *MockPlannerService) Sensitivity(ctx context.Context, ref domain.ProfileRef) (*domain.SensitivityResponse, error) {
	if m.sensitivityFunc != nil {
		return m.sensitivityFunc(ctx, ref)
	}
	return &domain.SensitivityResponse{Sensitivity: domain.DefaultSensitivity(), Source: domain.SensitivityFromDefault}, nil
}

func (m *MockPlannerService) Timeline(ctx context.Context, req *domain.TimelineRequest) (*domain.TimelineResponse, error) {
	if m.timelineFunc != nil {
		return m.timelineFunc(ctx, req)
	}
	return &domain.TimelineResponse{Sensitivity: domain.DefaultSensitivity()}, nil
}

func (m *MockPlannerService) ValidateSchedule(ctx context.Context, req *domain.ValidateScheduleRequest) (*domain.ValidateScheduleResponse, error) {
	if m.validateFunc != nil {
		return m.validateFunc(ctx, req)
	}
	return &domain.ValidateScheduleResponse{Valid: true}, nil
}

func (m *MockPlannerService) Optimize(ctx context.Context, req *domain.OptimizeRequest) (*domain.OptimizeResponse, error) {
	if m.optimizeFunc != nil {
		return m.optimizeFunc(ctx, req)
	}
	return &domain.OptimizeResponse{Schedule: req.Doses, Added: []domain.Dose{}, Valid: true}, nil
}

// MockInsightsService is a mock implementation of InsightsService
type MockInsightsService struct {
	generateFunc func(ctx context.Context, req *domain.InsightsRequest) (*domain.InsightsResponse, error)
	feedbackFunc func(ctx context.Context, req *domain.FeedbackRequest) error
}

func (m *MockInsightsService) Generate(ctx context.Context, req *domain.InsightsRequest) (*domain.InsightsResponse, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, req)
	}
	return &domain.InsightsResponse{Insights: domain.LLMInsightsOutput{Summary: "ok"}}, nil
}

func (m *MockInsightsService) Feedback(ctx context.Context, req *domain.FeedbackRequest) error {
	if m.feedbackFunc != nil {
		return m.feedbackFunc(ctx, req)
	}
	return nil
}
