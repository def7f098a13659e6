package main

import (
	"context"
	"fmt"
	"time"

	"fitlog/internal/config"
	"fitlog/internal/database"
	"fitlog/internal/models"
	"fitlog/internal/repository"
	"fitlog/internal/validation"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

const commandTimeout = 30 * time.Second

var (
	// db is set by PersistentPreRunE, or ahead of time by tests.
	db       *gorm.DB
	ownsDB   bool
	users    repository.UserRepository
	workouts repository.WorkoutRepository
)

var rootCmd = &cobra.Command{
	Use:   "admin",
	Short: "Fitlog account administration",
	Long: `Admin inspects and maintains Fitlog accounts directly in the database.

It reads the same configuration as the API server (.env, config.yml and
environment variables such as DB_DRIVER and DATABASE_URL).

EXAMPLES:

  admin user show ada@example.com          # Profile and account details
  admin user delete ada@example.com        # Remove the account and its workouts
  admin workouts ada@example.com -n 5      # Five most recent sessions
  admin plan ada@example.com --format yaml # Suggested weekly plan`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" {
			return nil
		}
		if db == nil {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			conn, err := database.Connect(cfg)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			db = conn
			ownsDB = true
		}
		users = repository.NewUserRepository(db)
		workouts = repository.NewWorkoutRepository(db)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if ownsDB && db != nil {
			err := database.Close(db)
			db = nil
			ownsDB = false
			return err
		}
		return nil
	},
}

func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, commandTimeout)
}

// findUser looks up an account by email, normalized the same way registration does.
func findUser(ctx context.Context, email string) (*models.User, error) {
	user, err := users.GetByEmail(ctx, validation.NormalizeEmail(email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("no user with email %s", email)
	}
	return user, nil
}
