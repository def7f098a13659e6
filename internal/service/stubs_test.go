package service

import (
	"context"
	"errors"
	"testing"

	"fitlog/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type userRepoStub struct {
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByEmailFn    func(context.Context, string) (*models.User, error)
	createFn        func(context.Context, *models.User) error
	updateMetricsFn func(context.Context, uint, models.BodyMetrics) (*models.User, error)
	deleteFn        func(context.Context, uint) error
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) UpdateMetrics(ctx context.Context, id uint, m models.BodyMetrics) (*models.User, error) {
	return s.updateMetricsFn(ctx, id, m)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:    func(_ context.Context, id uint) (*models.User, error) { return &models.User{ID: id}, nil },
		getByEmailFn: func(context.Context, string) (*models.User, error) { return nil, nil },
		createFn:     func(context.Context, *models.User) error { return nil },
		updateMetricsFn: func(_ context.Context, id uint, m models.BodyMetrics) (*models.User, error) {
			return &models.User{ID: id, BodyWeightKg: m.BodyWeightKg, HeightCm: m.HeightCm, MuscleWeightKg: m.MuscleWeightKg, FatPercentage: m.FatPercentage}, nil
		},
		deleteFn: func(context.Context, uint) error { return nil },
	}
}

type workoutRepoStub struct {
	saveFn       func(context.Context, models.NewWorkout) (*models.WorkoutSession, error)
	listRecentFn func(context.Context, uint, int) ([]models.WorkoutSession, error)
}

func (s *workoutRepoStub) Save(ctx context.Context, w models.NewWorkout) (*models.WorkoutSession, error) {
	return s.saveFn(ctx, w)
}
func (s *workoutRepoStub) ListByUser(ctx context.Context, userID uint) ([]models.WorkoutSession, error) {
	return s.listRecentFn(ctx, userID, 0)
}
func (s *workoutRepoStub) ListRecentByUser(ctx context.Context, userID uint, limit int) ([]models.WorkoutSession, error) {
	return s.listRecentFn(ctx, userID, limit)
}

func ptr(v float64) *float64 { return &v }

// assertAppError asserts that err is an AppError with the given code.
func assertAppError(t *testing.T, err error, code string) *models.AppError {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, code, appErr.Code)
	return appErr
}
