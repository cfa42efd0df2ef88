package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/blaisecz/caffeine-planner/internal/domain"
	"github.com/blaisecz/caffeine-planner/internal/langfuse"
	"github.com/blaisecz/caffeine-planner/pkg/pagination"
)

// MockUserRepository is an in-memory UserRepository.
type MockUserRepository struct {
	users map[uuid.UUID]*domain.User
	err   error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[uuid.UUID]*domain.User),
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.err != nil {
		return m.err
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (m *MockUserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.users[id]
	return ok, nil
}

// List mirrors the SQL ordering: created_at DESC, id DESC, limit+1.
func (m *MockUserRepository) List(ctx context.Context, filter domain.UserFilter) ([]domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	cursor, err := pagination.DecodeCursor(filter.Cursor)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	all := make([]domain.User, 0, len(m.users))
	for _, u := range m.users {
		all = append(all, *u)
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return all[i].ID.String() > all[j].ID.String()
	})

	var out []domain.User
	for _, u := range all {
		if cursor != nil {
			older := u.CreatedAt.Before(cursor.CreatedAt)
			tie := u.CreatedAt.Equal(cursor.CreatedAt) && u.ID.String() < cursor.ID.String()
			if !older && !tie {
				continue
			}
		}
		out = append(out, u)
		if len(out) == pagination.NormalizeLimit(filter.Limit)+1 {
			break
		}
	}
	return out, nil
}

func (m *MockUserRepository) SetError(err error) {
	m.err = err
}

// MockPlannerService is a mock implementation of PlannerService.
type MockPlannerService struct {
	SensitivityFunc      func(ctx context.Context, ref domain.ProfileRef) (*domain.SensitivityResponse, error)
	TimelineFunc         func(ctx context.Context, req *domain.TimelineRequest) (*domain.TimelineResponse, error)
	ValidateScheduleFunc func(ctx context.Context, req *domain.ValidateScheduleRequest) (*domain.ValidateScheduleResponse, error)
	OptimizeFunc         func(ctx context.Context, req *domain.OptimizeRequest) (*domain.OptimizeResponse, error)
}

func (m *MockPlannerService) Sensitivity(ctx context.Context, ref domain.ProfileRef) (*domain.SensitivityResponse, error) {
	return m.SensitivityFunc(ctx, ref)
}

func (m *MockPlannerService) Timeline(ctx context.Context, req *domain.TimelineRequest) (*domain.TimelineResponse, error) {
	return m.TimelineFunc(ctx, req)
}

func (m *MockPlannerService) ValidateSchedule(ctx context.Context, req *domain.ValidateScheduleRequest) (*domain.ValidateScheduleResponse, error) {
	return m.ValidateScheduleFunc(ctx, req)
}

func (m *MockPlannerService) Optimize(ctx context.Context, req *domain.OptimizeRequest) (*domain.OptimizeResponse, error) {
	return m.OptimizeFunc(ctx, req)
}

// MockInsightsLLM records the context it was called with.
type MockInsightsLLM struct {
	Output *domain.LLMInsightsOutput
	Err    error
	Got    *domain.CaffeineInsightsContext
}

func (m *MockInsightsLLM) GenerateInsights(ctx context.Context, in *domain.CaffeineInsightsContext) (*domain.LLMInsightsOutput, error) {
	m.Got = in
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Output, nil
}

// MockLangfuseClient records traces and scores.
type MockLangfuseClient struct {
	mu      sync.Mutex
	Enabled bool
	TraceID string
	Traces  []langfuse.TraceInput
	Scores  []langfuse.ScoreInput
	Err     error
}

func (m *MockLangfuseClient) IsEnabled() bool { return m.Enabled }

func (m *MockLangfuseClient) CreateTrace(ctx context.Context, in langfuse.TraceInput) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return "", m.Err
	}
	m.Traces = append(m.Traces, in)
	if in.ID != "" {
		return in.ID, nil
	}
	return m.TraceID, nil
}

func (m *MockLangfuseClient) CreateScore(ctx context.Context, in langfuse.ScoreInput) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.Scores = append(m.Scores, in)
	return nil
}

func (m *MockLangfuseClient) Flush(ctx context.Context) error { return nil }

// Helper functions
func timePtr(t time.Time) *time.Time {
	return &t
}

func uuidPtr(id uuid.UUID) *uuid.UUID {
	return &id
}
