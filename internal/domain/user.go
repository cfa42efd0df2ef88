package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a stored person whose profile drives sensitivity derivation.
// Dose history is never stored; only the physical profile is.
type User struct {
	ID            uuid.UUID     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name          string        `gorm:"type:varchar(100);not null;default:''" json:"name"`
	Age           uint8         `gorm:"type:smallint;not null" json:"age"`
	WeightKg      float64       `gorm:"not null" json:"weight_kg"`
	HeightCm      float64       `gorm:"not null" json:"height_cm"`
	Sex           Sex           `gorm:"type:varchar(10);not null" json:"sex"`
	ActivityLevel ActivityLevel `gorm:"type:varchar(16);not null" json:"activity_level"`
	Smoker        bool          `gorm:"not null;default:false" json:"smoker"`
	CreatedAt     time.Time     `gorm:"autoCreateTime;index:idx_users_created_id,sort:desc" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// Profile extracts the physical attributes of the user.
func (u *User) Profile() UserProfile {
	return UserProfile{
		Age:           u.Age,
		WeightKg:      u.WeightKg,
		HeightCm:      u.HeightCm,
		Sex:           u.Sex,
		ActivityLevel: u.ActivityLevel,
		Smoker:        u.Smoker,
	}
}

// CreateUserRequest is the request body for creating a user.
// @Description Request payload for storing a user profile.
type CreateUserRequest struct {
	// Optional display name
	Name string `json:"name" validate:"omitempty,max=100" example:"Alex"`
	// Physical profile
	Profile UserProfile `json:"profile"`
}

// UserResponse is the response body for user endpoints.
// @Description Stored user with their physical profile.
type UserResponse struct {
	ID        uuid.UUID   `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name      string      `json:"name" example:"Alex"`
	Profile   UserProfile `json:"profile"`
	CreatedAt time.Time   `json:"created_at" example:"2024-01-15T07:05:00Z"`
}

func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Profile:   u.Profile(),
		CreatedAt: u.CreatedAt,
	}
}

// NewUser builds a User from a create request.
func NewUser(req *CreateUserRequest) *User {
	return &User{
		ID:            uuid.New(),
		Name:          req.Name,
		Age:           req.Profile.Age,
		WeightKg:      req.Profile.WeightKg,
		HeightCm:      req.Profile.HeightCm,
		Sex:           req.Profile.Sex,
		ActivityLevel: req.Profile.ActivityLevel,
		Smoker:        req.Profile.Smoker,
	}
}

// UserListResponse is the response body for listing users.
// @Description Paginated list of users.
type UserListResponse struct {
	Data       []UserResponse     `json:"data"`
	Pagination PaginationResponse `json:"pagination"`
}

// PaginationResponse contains pagination metadata.
// @Description Cursor-based pagination info.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty" example:"eyJpZCI6IjU1MGU4NDAwLWUyOWItNDFkNC1hNzE2LTQ0NjY1NTQ0MDAwMCJ9"`
	// True if more results are available
	HasMore bool `json:"has_more" example:"true"`
}

// UserFilter contains parameters for listing users
type UserFilter struct {
	Limit  int
	Cursor string
}

// SensitivityResponse is the response body for sensitivity endpoints.
// @Description Sensitivity profile and where it came from.
type SensitivityResponse struct {
	// Derived parameters
	Sensitivity SensitivityProfile `json:"sensitivity"`
	// Source: user, profile or default
	Source SensitivitySource `json:"source" example:"profile" enums:"user,profile,default"`
}

// SensitivitySource tells which input a sensitivity profile was derived from.
type SensitivitySource string

const (
	SensitivityFromUser    SensitivitySource = "user"
	SensitivityFromProfile SensitivitySource = "profile"
	SensitivityFromDefault SensitivitySource = "default"
)
