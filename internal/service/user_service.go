package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/blaisecz/caffeine-planner/internal/caffeine"
	"github.com/blaisecz/caffeine-planner/internal/domain"
	"github.com/blaisecz/caffeine-planner/internal/repository"
	"github.com/blaisecz/caffeine-planner/pkg/pagination"
)

type UserService interface {
	Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	List(ctx context.Context, filter domain.UserFilter) (*domain.UserListResponse, error)
	// Sensitivity derives the sensitivity profile of a stored user.
	Sensitivity(ctx context.Context, id uuid.UUID) (*domain.SensitivityResponse, error)
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error) {
	user := domain.NewUser(req)
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *userService) List(ctx context.Context, filter domain.UserFilter) (*domain.UserListResponse, error) {
	users, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(users) > limit
	if hasMore {
		users = users[:limit]
	}

	response := &domain.UserListResponse{
		Data:       make([]domain.UserResponse, len(users)),
		Pagination: domain.PaginationResponse{HasMore: hasMore},
	}
	for i := range users {
		response.Data[i] = users[i].ToResponse()
	}

	if hasMore && len(users) > 0 {
		last := users[len(users)-1]
		cursor := &pagination.Cursor{ID: last.ID, CreatedAt: last.CreatedAt}
		response.Pagination.NextCursor = cursor.Encode()
	}

	return response, nil
}

func (s *userService) Sensitivity(ctx context.Context, id uuid.UUID) (*domain.SensitivityResponse, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &domain.SensitivityResponse{
		Sensitivity: caffeine.DeriveSensitivity(user.Profile()),
		Source:      domain.SensitivityFromUser,
	}, nil
}
