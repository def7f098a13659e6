package seed

import (
	"context"
	"fmt"
	"log"

	"fitlog/internal/models"
	"fitlog/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultPassword is the password of every seeded user unless overridden.
const DefaultPassword = "password123"

// Options configuration for the seeder
type Options struct {
	NumUsers        int
	WorkoutsPerUser int
	Password        string
	BcryptCost      int
	MaxDays         int
	ShouldClean     bool
	// RandomSeed makes the generated data reproducible when non-zero.
	RandomSeed int64
}

func (o Options) withDefaults() Options {
	if o.Password == "" {
		o.Password = DefaultPassword
	}
	if o.BcryptCost < bcrypt.MinCost || o.BcryptCost > bcrypt.MaxCost {
		o.BcryptCost = bcrypt.DefaultCost
	}
	if o.MaxDays <= 0 {
		o.MaxDays = 90
	}
	return o
}

// Summary reports what a seeding run created.
type Summary struct {
	Users    int
	Sessions int
	Sets     int
	Cardio   int
}

// Seed populates the database with fake users and their workout history.
func Seed(ctx context.Context, db *gorm.DB, opts Options) (Summary, error) {
	opts = opts.withDefaults()
	var sum Summary

	log.Printf("Seeding %d users with %d workouts each...", opts.NumUsers, opts.WorkoutsPerUser)

	if opts.ShouldClean {
		if err := clearData(ctx, db); err != nil {
			return sum, fmt.Errorf("clear data: %w", err)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(opts.Password), opts.BcryptCost)
	if err != nil {
		return sum, fmt.Errorf("hash password: %w", err)
	}

	f := NewFactory(repository.NewUserRepository(db), repository.NewWorkoutRepository(db), string(hash), opts)

	for i := 0; i < opts.NumUsers; i++ {
		user, err := f.CreateUser(ctx)
		if err != nil {
			if models.HasCode(err, models.CodeDuplicateEmail) {
				log.Printf("skipping duplicate seed user: %v", err)
				continue
			}
			return sum, fmt.Errorf("create user: %w", err)
		}
		sum.Users++

		for j := 0; j < opts.WorkoutsPerUser; j++ {
			session, err := f.CreateWorkout(ctx, user.ID)
			if err != nil {
				return sum, fmt.Errorf("create workout for user %d: %w", user.ID, err)
			}
			sum.Sessions++
			sum.Sets += len(session.Strength)
			sum.Cardio += len(session.Cardio)
		}
	}

	log.Printf("Seeded %d users, %d sessions, %d strength sets, %d cardio entries",
		sum.Users, sum.Sessions, sum.Sets, sum.Cardio)
	return sum, nil
}

// clearData removes all users; sessions and their entries go with them through the
// ON DELETE CASCADE foreign keys.
func clearData(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.User{}).Error
}
