package repository

import (
	"context"
	"strings"

	"fitlog/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WorkoutRepository persists workout sessions together with their strength sets and cardio entries.
type WorkoutRepository interface {
	// Save writes the session and all its child rows in one transaction.
	Save(ctx context.Context, workout models.NewWorkout) (*models.WorkoutSession, error)
	// ListByUser returns every session of the user, newest first, with children attached.
	ListByUser(ctx context.Context, userID uint) ([]models.WorkoutSession, error)
	// ListRecentByUser is ListByUser limited to the newest limit sessions. limit <= 0 means all.
	ListRecentByUser(ctx context.Context, userID uint, limit int) ([]models.WorkoutSession, error)
}

type workoutRepository struct {
	db *gorm.DB
}

// NewWorkoutRepository returns a new WorkoutRepository implementation.
func NewWorkoutRepository(db *gorm.DB) WorkoutRepository {
	return &workoutRepository{db: db}
}

// Save inserts the session row, then one row per set of every named exercise (setOrder
// starting at 1), then one row per named cardio activity. Entries with blank names, and
// exercises without sets, are skipped. Any failed insert rolls the whole save back.
func (r *workoutRepository) Save(ctx context.Context, workout models.NewWorkout) (*models.WorkoutSession, error) {
	ctx, span, end := startSpan(ctx, r.db, "Save", "workout_sessions")
	defer end()

	session := models.WorkoutSession{
		UserID:      workout.UserID,
		WorkoutDate: workout.WorkoutDate,
		Notes:       workout.Notes,
	}
	var strength []models.StrengthSet
	var cardio []models.CardioEntry

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&session).Error; err != nil {
			return err
		}

		for _, exercise := range workout.Strength {
			name := strings.TrimSpace(exercise.ExerciseName)
			if name == "" || len(exercise.Sets) == 0 {
				continue
			}
			for i, set := range exercise.Sets {
				row := models.StrengthSet{
					SessionID:    session.ID,
					ExerciseName: name,
					SetOrder:     i + 1,
					Reps:         set.Reps,
					WeightKg:     set.WeightKg,
				}
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
				strength = append(strength, row)
			}
		}

		for _, activity := range workout.Cardio {
			name := strings.TrimSpace(activity.ActivityName)
			if name == "" {
				continue
			}
			row := models.CardioEntry{
				SessionID:      session.ID,
				ActivityName:   name,
				TimeMinutes:    activity.TimeMinutes,
				DistanceKm:     activity.DistanceKm,
				CaloriesBurned: activity.CaloriesBurned,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
			cardio = append(cardio, row)
		}
		return nil
	})
	if err != nil {
		span.RecordError(err)
		return nil, models.NewStorageError("Could not save workout.", err)
	}

	session.Strength = nonNilStrength(strength)
	session.Cardio = nonNilCardio(cardio)
	return &session, nil
}

func (r *workoutRepository) ListByUser(ctx context.Context, userID uint) ([]models.WorkoutSession, error) {
	return r.ListRecentByUser(ctx, userID, 0)
}

// ListRecentByUser runs three queries (sessions, then strength and cardio rows for those
// sessions) and groups the children by session id in memory, keeping query order.
func (r *workoutRepository) ListRecentByUser(ctx context.Context, userID uint, limit int) ([]models.WorkoutSession, error) {
	ctx, span, end := startSpan(ctx, r.db, "ListByUser", "workout_sessions")
	defer end()

	db := r.db.WithContext(ctx)

	sessionQuery := db.Where("user_id = ?", userID).
		Order("workout_date DESC").
		Order("id DESC")
	if limit > 0 {
		sessionQuery = sessionQuery.Limit(limit)
	}

	var sessions []models.WorkoutSession
	if err := sessionQuery.Find(&sessions).Error; err != nil {
		span.RecordError(err)
		return nil, models.NewStorageError("Could not load workouts.", err)
	}
	if len(sessions) == 0 {
		return []models.WorkoutSession{}, nil
	}

	ids := make([]uint, len(sessions))
	bySession := make(map[uint]*models.WorkoutSession, len(sessions))
	for i := range sessions {
		sessions[i].Strength = []models.StrengthSet{}
		sessions[i].Cardio = []models.CardioEntry{}
		ids[i] = sessions[i].ID
		bySession[sessions[i].ID] = &sessions[i]
	}

	var strength []models.StrengthSet
	if err := db.Where("session_id IN ?", ids).
		Order("session_id DESC").
		Order("exercise_name ASC").
		Order("set_order ASC").
		Order("id ASC").
		Find(&strength).Error; err != nil {
		span.RecordError(err)
		return nil, models.NewStorageError("Could not load workouts.", err)
	}

	var cardio []models.CardioEntry
	if err := db.Where("session_id IN ?", ids).
		Order("session_id DESC").
		Order("activity_name ASC").
		Order("id ASC").
		Find(&cardio).Error; err != nil {
		span.RecordError(err)
		return nil, models.NewStorageError("Could not load workouts.", err)
	}

	for _, row := range strength {
		if s, ok := bySession[row.SessionID]; ok {
			s.Strength = append(s.Strength, row)
		}
	}
	for _, row := range cardio {
		if s, ok := bySession[row.SessionID]; ok {
			s.Cardio = append(s.Cardio, row)
		}
	}

	return sessions, nil
}

func nonNilStrength(rows []models.StrengthSet) []models.StrengthSet {
	if rows == nil {
		return []models.StrengthSet{}
	}
	return rows
}

func nonNilCardio(rows []models.CardioEntry) []models.CardioEntry {
	if rows == nil {
		return []models.CardioEntry{}
	}
	return rows
}
