package seed

import (
	"fmt"

	"github.com/blaisecz/caffeine-planner/internal/domain"
	"github.com/blaisecz/caffeine-planner/internal/logger"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Users returns the sample profiles. IDs are fixed so repeated seeding is a no-op.
func Users() []domain.User {
	return []domain.User{
		{
			ID:            uuid.MustParse("11111111-1111-1111-1111-111111111111"),
			Name:          "Average adult",
			Age:           35,
			WeightKg:      70,
			HeightCm:      172,
			Sex:           domain.SexOther,
			ActivityLevel: domain.ActivityModerate,
		},
		{
			ID:            uuid.MustParse("22222222-2222-2222-2222-222222222222"),
			Name:          "Light sedentary",
			Age:           29,
			WeightKg:      52,
			HeightCm:      160,
			Sex:           domain.SexFemale,
			ActivityLevel: domain.ActivitySedentary,
		},
		{
			ID:            uuid.MustParse("33333333-3333-3333-3333-333333333333"),
			Name:          "Athletic smoker",
			Age:           41,
			WeightKg:      88,
			HeightCm:      185,
			Sex:           domain.SexMale,
			ActivityLevel: domain.ActivityAthletic,
			Smoker:        true,
		},
		{
			ID:            uuid.MustParse("44444444-4444-4444-4444-444444444444"),
			Name:          "Older adult",
			Age:           68,
			WeightKg:      64,
			HeightCm:      168,
			Sex:           domain.SexFemale,
			ActivityLevel: domain.ActivityModerate,
		},
	}
}

// Run migrates the users table and inserts the sample profiles. Safe to call multiple times.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.User{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	log := logger.Named("seed")
	for _, user := range Users() {
		if err := db.Where("id = ?", user.ID).FirstOrCreate(&user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", user.ID, err)
		}
		log.Debug().Str("user_id", user.ID.String()).Str("name", user.Name).Msg("user ready")
	}

	log.Info().Int("users", len(Users())).Msg("seed completed")
	return nil
}
