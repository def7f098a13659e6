package service

import (
	"context"

	"fitlog/internal/models"
	"fitlog/internal/planner"
	"fitlog/internal/repository"
	"fitlog/internal/validation"
)

const msgMetricsRequired = "bodyWeightKg, heightCm, muscleWeightKg and fatPercentage are required."

// ProfileService reads users and maintains their body-metric profile.
type ProfileService struct {
	users repository.UserRepository
}

func NewProfileService(users repository.UserRepository) *ProfileService {
	return &ProfileService{users: users}
}

func (s *ProfileService) Get(ctx context.Context, userID uint) (*models.User, error) {
	return s.users.GetByID(ctx, userID)
}

// Update replaces all four metrics. Every metric is required; there is no partial update.
func (s *ProfileService) Update(ctx context.Context, userID uint, m models.BodyMetrics) (*models.User, error) {
	if m.BodyWeightKg == nil || m.HeightCm == nil || m.MuscleWeightKg == nil || m.FatPercentage == nil {
		return nil, models.NewValidationError(msgMetricsRequired)
	}

	checks := []error{
		validation.ValidateMeasurement("bodyWeightKg", *m.BodyWeightKg),
		validation.ValidateMeasurement("heightCm", *m.HeightCm),
		validation.ValidateMeasurement("muscleWeightKg", *m.MuscleWeightKg),
		validation.ValidatePercentage("fatPercentage", *m.FatPercentage),
	}
	for _, err := range checks {
		if err != nil {
			return nil, models.NewValidationError(err.Error())
		}
	}

	return s.users.UpdateMetrics(ctx, userID, m)
}

// Plan returns the suggested six-day split for the user and whether their profile is complete.
func (s *ProfileService) Plan(ctx context.Context, userID uint) ([]planner.PlanDay, bool, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, false, err
	}
	plan := planner.Suggest(planner.Profile{
		MuscleWeightKg: user.MuscleWeightKg,
		FatPercentage:  user.FatPercentage,
	})
	return plan, user.ProfileCompleted(), nil
}
