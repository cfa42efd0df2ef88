package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/blaisecz/caffeine-planner/internal/domain"
	"github.com/blaisecz/caffeine-planner/pkg/pagination"
)

// UserRepository stores user profiles. Dose history is never persisted.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	// List returns up to filter.Limit+1 users, newest first, after the cursor.
	List(ctx context.Context, filter domain.UserFilter) ([]domain.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.User{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *userRepository) List(ctx context.Context, filter domain.UserFilter) ([]domain.User, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC").Order("id DESC")

	cursor, err := pagination.DecodeCursor(filter.Cursor)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed cursor", domain.ErrInvalidInput)
	}
	if cursor != nil {
		query = query.Where(
			"(created_at < ?) OR (created_at = ? AND id < ?)",
			cursor.CreatedAt, cursor.CreatedAt, cursor.ID,
		)
	}

	// One extra row tells the caller whether another page exists.
	query = query.Limit(pagination.NormalizeLimit(filter.Limit) + 1)

	var users []domain.User
	if err := query.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
