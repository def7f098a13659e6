// Package repository implements the data access layer for the application.
package repository

import (
	"context"
	"errors"

	"fitlog/internal/cache"
	"fitlog/internal/models"

	"gorm.io/gorm"
)

// UserRepository defines persistence operations for users and their body-metric profile.
type UserRepository interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	UpdateMetrics(ctx context.Context, id uint, metrics models.BodyMetrics) (*models.User, error)
	Delete(ctx context.Context, id uint) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a new UserRepository implementation.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// GetByID reads through the Redis cache. Cached copies do not carry the password hash.
func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	ctx, _, end := startSpan(ctx, r.db, "GetByID", "users")
	defer end()

	var user models.User
	err := cache.Aside(ctx, cache.UserKey(id), &user, cache.UserTTL, func() error {
		return r.first(ctx, &user, id)
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) first(ctx context.Context, user *models.User, id uint) error {
	if err := r.db.WithContext(ctx).First(user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("User")
		}
		return models.NewStorageError("Could not load user.", err)
	}
	return nil
}

// GetByEmail returns nil, nil when no user has that email. email must already be normalized.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, _, end := startSpan(ctx, r.db, "GetByEmail", "users")
	defer end()

	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewStorageError("Could not load user.", err)
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	ctx, _, end := startSpan(ctx, r.db, "Create", "users")
	defer end()

	if err := r.db.WithContext(ctx).Omit("WorkoutSessions").Create(user).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewDuplicateEmailError()
		}
		return models.NewStorageError("Failed to create account.", err)
	}
	return nil
}

// UpdateMetrics overwrites all four metrics and returns the refreshed user.
func (r *userRepository) UpdateMetrics(ctx context.Context, id uint, metrics models.BodyMetrics) (*models.User, error) {
	ctx, _, end := startSpan(ctx, r.db, "UpdateMetrics", "users")
	defer end()

	// A map keeps nil metrics as NULL writes instead of skipping them.
	err := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(map[string]any{
		"body_weight_kg":   metrics.BodyWeightKg,
		"height_cm":        metrics.HeightCm,
		"muscle_weight_kg": metrics.MuscleWeightKg,
		"fat_percentage":   metrics.FatPercentage,
	}).Error
	if err != nil {
		return nil, models.NewStorageError("Could not update profile.", err)
	}
	cache.InvalidateUser(ctx, id)

	// MySQL reports zero affected rows for unchanged values, so existence is checked by re-reading.
	var user models.User
	if err := r.first(ctx, &user, id); err != nil {
		return nil, err
	}
	return &user, nil
}

// Delete removes the user. Sessions and their children go with it through ON DELETE CASCADE.
func (r *userRepository) Delete(ctx context.Context, id uint) error {
	ctx, _, end := startSpan(ctx, r.db, "Delete", "users")
	defer end()

	result := r.db.WithContext(ctx).Delete(&models.User{}, id)
	if result.Error != nil {
		return models.NewStorageError("Could not delete user.", result.Error)
	}
	cache.InvalidateUser(ctx, id)
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("User")
	}
	return nil
}
