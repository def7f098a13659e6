package models

import (
	"encoding/json"
	"time"
)

// DateLayout is the wire and display format of workout dates.
const DateLayout = "2006-01-02"

// WorkoutSession is one logged training occurrence. It owns its strength sets and cardio entries.
type WorkoutSession struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	UserID      uint          `gorm:"not null;index" json:"-"`
	WorkoutDate time.Time     `gorm:"type:date;not null;index" json:"workoutDate"`
	Notes       string        `gorm:"type:text" json:"notes"`
	CreatedAt   time.Time     `json:"createdAt"`
	Strength    []StrengthSet `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE" json:"strength"`
	Cardio      []CardioEntry `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE" json:"cardio"`
}

// MarshalJSON renders WorkoutDate as a calendar date.
func (w WorkoutSession) MarshalJSON() ([]byte, error) {
	type alias WorkoutSession
	return json.Marshal(struct {
		alias
		WorkoutDate string `json:"workoutDate"`
	}{
		alias:       alias(w),
		WorkoutDate: w.WorkoutDate.Format(DateLayout),
	})
}

// StrengthSet is one set of a strength exercise. SetOrder is 1-based within the exercise.
type StrengthSet struct {
	ID           uint    `gorm:"primaryKey" json:"-"`
	SessionID    uint    `gorm:"not null;index" json:"-"`
	ExerciseName string  `gorm:"size:120;not null" json:"exerciseName"`
	SetOrder     int     `gorm:"not null" json:"setOrder"`
	Reps         int     `gorm:"not null" json:"reps"`
	WeightKg     float64 `gorm:"type:decimal(10,2);not null" json:"weightKg"`
}

// CardioEntry is one cardio activity of a session.
type CardioEntry struct {
	ID             uint    `gorm:"primaryKey" json:"-"`
	SessionID      uint    `gorm:"not null;index" json:"-"`
	ActivityName   string  `gorm:"size:120;not null" json:"activityName"`
	TimeMinutes    float64 `gorm:"type:decimal(10,2);not null" json:"timeMinutes"`
	DistanceKm     float64 `gorm:"type:decimal(10,2);not null" json:"distanceKm"`
	CaloriesBurned float64 `gorm:"type:decimal(10,2);not null" json:"caloriesBurned"`
}

// NewWorkout is the input of a workout save. Entries with blank names are skipped when persisted.
type NewWorkout struct {
	UserID      uint
	WorkoutDate time.Time
	Notes       string
	Strength    []StrengthExercise
	Cardio      []CardioActivity
}

// StrengthExercise is one exercise with its ordered sets.
type StrengthExercise struct {
	ExerciseName string
	Sets         []SetInput
}

// SetInput is a single set as submitted by the client.
type SetInput struct {
	Reps     int
	WeightKg float64
}

// CardioActivity is one cardio entry as submitted by the client.
type CardioActivity struct {
	ActivityName   string
	TimeMinutes    float64
	DistanceKm     float64
	CaloriesBurned float64
}
