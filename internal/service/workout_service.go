package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"fitlog/internal/middleware"
	"fitlog/internal/models"
	"fitlog/internal/observability"
	"fitlog/internal/repository"
	"fitlog/internal/validation"

	"go.opentelemetry.io/otel/attribute"
)

const msgWorkoutDateRequired = "workoutDate is required."

// SaveWorkoutInput is a workout as submitted by the client, before date parsing.
type SaveWorkoutInput struct {
	UserID      uint
	WorkoutDate string
	Notes       string
	Strength    []models.StrengthExercise
	Cardio      []models.CardioActivity
}

// WorkoutService validates and records workout sessions.
type WorkoutService struct {
	workouts repository.WorkoutRepository
}

func NewWorkoutService(workouts repository.WorkoutRepository) *WorkoutService {
	return &WorkoutService{workouts: workouts}
}

// Save validates the input before touching storage, then stores the session atomically.
func (s *WorkoutService) Save(ctx context.Context, in SaveWorkoutInput) (*models.WorkoutSession, error) {
	span, ctx := observability.NewSpan(ctx, "WorkoutService.Save")
	defer span.End()
	span.AddAttributes(attribute.Int64("user.id", int64(in.UserID)))

	if strings.TrimSpace(in.WorkoutDate) == "" {
		return nil, models.NewValidationError(msgWorkoutDateRequired)
	}
	date, err := validation.ParseWorkoutDate(in.WorkoutDate)
	if err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validateEntries(in.Strength, in.Cardio); err != nil {
		return nil, err
	}

	session, err := s.workouts.Save(ctx, models.NewWorkout{
		UserID:      in.UserID,
		WorkoutDate: date,
		Notes:       in.Notes,
		Strength:    in.Strength,
		Cardio:      in.Cardio,
	})
	if err != nil {
		span.SetError(err)
		observability.WorkoutSaveFailures.Inc()
		middleware.Logger.ErrorContext(ctx, "Workout save rolled back", slog.String("error", err.Error()))
		return nil, err
	}

	observability.RecordWorkoutSaved(len(session.Strength), len(session.Cardio))
	span.AddAttributes(
		attribute.Int64("workout.session_id", int64(session.ID)),
		attribute.Int("workout.strength_sets", len(session.Strength)),
		attribute.Int("workout.cardio_entries", len(session.Cardio)),
	)
	return session, nil
}

// List returns every session of the user, newest first.
func (s *WorkoutService) List(ctx context.Context, userID uint) ([]models.WorkoutSession, error) {
	return s.ListRecent(ctx, userID, 0)
}

// ListRecent returns the newest limit sessions; limit <= 0 means all.
func (s *WorkoutService) ListRecent(ctx context.Context, userID uint, limit int) ([]models.WorkoutSession, error) {
	span, ctx := observability.NewSpan(ctx, "WorkoutService.List")
	defer span.End()

	sessions, err := s.workouts.ListRecentByUser(ctx, userID, limit)
	if err != nil {
		span.SetError(err)
		return nil, err
	}
	span.AddAttributes(attribute.Int("workout.sessions", len(sessions)))
	return sessions, nil
}

func validateEntries(strength []models.StrengthExercise, cardio []models.CardioActivity) error {
	for i, ex := range strength {
		if err := validation.ValidateEntryName("exerciseName", ex.ExerciseName); err != nil {
			return models.NewValidationError(err.Error())
		}
		for j, set := range ex.Sets {
			if err := validation.ValidateReps(fmt.Sprintf("strength[%d].sets[%d].reps", i, j), set.Reps); err != nil {
				return models.NewValidationError(err.Error())
			}
			if err := validation.ValidateMeasurement(fmt.Sprintf("strength[%d].sets[%d].weightKg", i, j), set.WeightKg); err != nil {
				return models.NewValidationError(err.Error())
			}
		}
	}

	for i, c := range cardio {
		if err := validation.ValidateEntryName("activityName", c.ActivityName); err != nil {
			return models.NewValidationError(err.Error())
		}
		fields := []struct {
			name  string
			value float64
		}{
			{"timeMinutes", c.TimeMinutes},
			{"distanceKm", c.DistanceKm},
			{"caloriesBurned", c.CaloriesBurned},
		}
		for _, f := range fields {
			if err := validation.ValidateMeasurement(fmt.Sprintf("cardio[%d].%s", i, f.name), f.value); err != nil {
				return models.NewValidationError(err.Error())
			}
		}
	}
	return nil
}
