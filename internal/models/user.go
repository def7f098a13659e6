// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User is an account together with its body-metric profile.
type User struct {
	ID              uint             `gorm:"primaryKey" json:"id"`
	Name            string           `gorm:"size:120;not null" json:"name"`
	Email           string           `gorm:"size:190;uniqueIndex;not null" json:"email"`
	PasswordHash    string           `gorm:"size:255;not null" json:"-"`
	BodyWeightKg    *float64         `gorm:"type:decimal(10,2)" json:"bodyWeightKg"`
	HeightCm        *float64         `gorm:"type:decimal(10,2)" json:"heightCm"`
	MuscleWeightKg  *float64         `gorm:"type:decimal(10,2)" json:"muscleWeightKg"`
	FatPercentage   *float64         `gorm:"type:decimal(10,2)" json:"fatPercentage"`
	CreatedAt       time.Time        `json:"createdAt"`
	WorkoutSessions []WorkoutSession `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// ProfileCompleted reports whether all four body metrics have been supplied.
func (u *User) ProfileCompleted() bool {
	return u.BodyWeightKg != nil && u.HeightCm != nil && u.MuscleWeightKg != nil && u.FatPercentage != nil
}

// PublicUser is the client-facing projection of a User. It never carries the password hash.
type PublicUser struct {
	ID               uint     `json:"id"`
	Name             string   `json:"name"`
	Email            string   `json:"email"`
	BodyWeightKg     *float64 `json:"bodyWeightKg"`
	HeightCm         *float64 `json:"heightCm"`
	MuscleWeightKg   *float64 `json:"muscleWeightKg"`
	FatPercentage    *float64 `json:"fatPercentage"`
	ProfileCompleted bool     `json:"profileCompleted"`
}

// Public returns the projection of u sent to clients.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:               u.ID,
		Name:             u.Name,
		Email:            u.Email,
		BodyWeightKg:     u.BodyWeightKg,
		HeightCm:         u.HeightCm,
		MuscleWeightKg:   u.MuscleWeightKg,
		FatPercentage:    u.FatPercentage,
		ProfileCompleted: u.ProfileCompleted(),
	}
}

// BodyMetrics holds the four profile fields. A nil field was not supplied.
type BodyMetrics struct {
	BodyWeightKg   *float64
	HeightCm       *float64
	MuscleWeightKg *float64
	FatPercentage  *float64
}
