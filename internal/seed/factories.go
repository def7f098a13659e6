// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"fitlog/internal/models"
	"fitlog/internal/repository"

	"github.com/brianvoe/gofakeit/v6"
)

var (
	exercisePool = []string{
		"Back Squat", "Bench Press", "Deadlift", "Overhead Press", "Barbell Row",
		"Pull-Ups", "Leg Press", "Romanian Deadlift", "Incline DB Press", "Lat Pulldown",
		"Walking Lunge", "Cable Row", "Lateral Raise", "Hamstring Curl", "Dips",
	}
	cardioPool = []string{"Run", "Bike", "Rower", "Incline Walk", "Swim", "Elliptical"}
	notesPool  = []string{"", "", "Felt strong", "Short on sleep", "Deload week", "New PR", "Gym was packed"}
)

// Factory builds domain entities and persists them through the repositories,
// so workout saves stay transactional.
type Factory struct {
	users    repository.UserRepository
	workouts repository.WorkoutRepository
	faker    *gofakeit.Faker
	opts     Options
	hash     string
	seq      int
}

// NewFactory creates a Factory. passwordHash is stored for every created user.
func NewFactory(users repository.UserRepository, workouts repository.WorkoutRepository, passwordHash string, opts Options) *Factory {
	seed := opts.RandomSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Factory{
		users:    users,
		workouts: workouts,
		faker:    gofakeit.New(seed),
		opts:     opts.withDefaults(),
		hash:     passwordHash,
	}
}

// BuildUser constructs a user with a complete body-metric profile but does not persist it.
func (f *Factory) BuildUser(overrides ...func(*models.User)) *models.User {
	f.seq++
	first, last := f.faker.FirstName(), f.faker.LastName()

	weight := round1(f.faker.Float64Range(50, 120))
	user := &models.User{
		Name:           first + " " + last,
		Email:          strings.ToLower(fmt.Sprintf("%s.%s.%d%d@fitlog.test", first, last, f.seq, f.faker.Number(100, 999))),
		PasswordHash:   f.hash,
		BodyWeightKg:   &weight,
		HeightCm:       ptr(round1(f.faker.Float64Range(150, 200))),
		MuscleWeightKg: ptr(round1(weight * f.faker.Float64Range(0.3, 0.5))),
		FatPercentage:  ptr(round1(f.faker.Float64Range(8, 38))),
	}

	for _, override := range overrides {
		override(user)
	}
	return user
}

// CreateUser builds and persists a user.
func (f *Factory) CreateUser(ctx context.Context, overrides ...func(*models.User)) (*models.User, error) {
	user := f.BuildUser(overrides...)
	if err := f.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// BuildWorkout constructs a workout dated within the last MaxDays days.
func (f *Factory) BuildWorkout(userID uint) models.NewWorkout {
	today := time.Now().UTC().Truncate(24 * time.Hour)
	date := today.AddDate(0, 0, -f.faker.Number(0, f.opts.MaxDays-1))

	w := models.NewWorkout{
		UserID:      userID,
		WorkoutDate: date,
		Notes:       f.faker.RandomString(notesPool),
	}

	for i, n := 0, f.faker.Number(1, 4); i < n; i++ {
		ex := models.StrengthExercise{ExerciseName: f.faker.RandomString(exercisePool)}
		base := float64(f.faker.Number(8, 40)) * 2.5
		for s, sets := 0, f.faker.Number(1, 5); s < sets; s++ {
			ex.Sets = append(ex.Sets, models.SetInput{
				Reps:     f.faker.Number(3, 12),
				WeightKg: base + float64(s)*2.5,
			})
		}
		w.Strength = append(w.Strength, ex)
	}

	if f.faker.Bool() {
		minutes := float64(f.faker.Number(10, 60))
		w.Cardio = append(w.Cardio, models.CardioActivity{
			ActivityName:   f.faker.RandomString(cardioPool),
			TimeMinutes:    minutes,
			DistanceKm:     round1(minutes * f.faker.Float64Range(0.1, 0.4)),
			CaloriesBurned: math.Round(minutes * f.faker.Float64Range(7, 12)),
		})
	}
	return w
}

// CreateWorkout builds and saves a workout for userID.
func (f *Factory) CreateWorkout(ctx context.Context, userID uint) (*models.WorkoutSession, error) {
	return f.workouts.Save(ctx, f.BuildWorkout(userID))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func ptr(v float64) *float64 { return &v }
