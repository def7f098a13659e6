package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"fitlog/internal/models"
	"fitlog/internal/planner"
	"fitlog/internal/repository"
	"fitlog/internal/testutil"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

func setupAdmin(t *testing.T) *gorm.DB {
	t.Helper()
	color.NoColor = true

	testDB := testutil.NewSQLiteDB(t)
	db = testDB
	ownsDB = false
	workoutsLimit = 10
	planFormat = "text"

	t.Cleanup(func() {
		db = nil
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
	})
	return testDB
}

func runAdmin(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func f(v float64) *float64 { return &v }

func createUser(t *testing.T, testDB *gorm.DB, email string, metrics bool) *models.User {
	t.Helper()
	user := &models.User{Name: "Ada Lovelace", Email: email, PasswordHash: "x"}
	if metrics {
		user.BodyWeightKg = f(70)
		user.HeightCm = f(170)
		user.MuscleWeightKg = f(35)
		user.FatPercentage = f(15)
	}
	require.NoError(t, repository.NewUserRepository(testDB).Create(context.Background(), user))
	return user
}

func saveWorkout(t *testing.T, testDB *gorm.DB, userID uint, date string) {
	t.Helper()
	day, err := time.Parse(models.DateLayout, date)
	require.NoError(t, err)
	_, err = repository.NewWorkoutRepository(testDB).Save(context.Background(), models.NewWorkout{
		UserID:      userID,
		WorkoutDate: day,
		Notes:       "legs",
		Strength: []models.StrengthExercise{
			{ExerciseName: "Squat", Sets: []models.SetInput{{Reps: 5, WeightKg: 100}, {Reps: 5, WeightKg: 105}}},
		},
		Cardio: []models.CardioActivity{
			{ActivityName: "Bike", TimeMinutes: 20, DistanceKm: 8, CaloriesBurned: 200},
		},
	})
	require.NoError(t, err)
}

func TestUserShow(t *testing.T) {
	testDB := setupAdmin(t)
	createUser(t, testDB, "ada@example.com", false)

	out, err := runAdmin(t, "user", "show", "  ADA@example.com ")
	require.NoError(t, err)
	assert.Contains(t, out, "Ada Lovelace <ada@example.com>")
	assert.Contains(t, out, "not set")
	assert.Contains(t, out, "profile incomplete")
}

func TestUserShow_UnknownEmail(t *testing.T) {
	setupAdmin(t)

	_, err := runAdmin(t, "user", "show", "nobody@example.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no user with email nobody@example.com")
}

func TestUserDelete_Cascades(t *testing.T) {
	testDB := setupAdmin(t)
	user := createUser(t, testDB, "ada@example.com", true)
	saveWorkout(t, testDB, user.ID, "2024-05-01")

	out, err := runAdmin(t, "user", "delete", "ada@example.com")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted ada@example.com")

	assert.Zero(t, testutil.CountRows(t, testDB, "users"))
	assert.Zero(t, testutil.CountRows(t, testDB, "workout_sessions"))
	assert.Zero(t, testutil.CountRows(t, testDB, "strength_sets"))
	assert.Zero(t, testutil.CountRows(t, testDB, "cardio_entries"))
}

func TestWorkouts(t *testing.T) {
	testDB := setupAdmin(t)
	user := createUser(t, testDB, "ada@example.com", true)
	saveWorkout(t, testDB, user.ID, "2024-05-01")
	saveWorkout(t, testDB, user.ID, "2024-05-03")

	out, err := runAdmin(t, "workouts", "ada@example.com")
	require.NoError(t, err)
	assert.Contains(t, out, "2024-05-03 (legs)")
	assert.Contains(t, out, "set 2  5 x 105.00 kg")
	assert.Contains(t, out, "20 min  8.00 km  200 kcal")
	assert.Less(t, bytes.Index([]byte(out), []byte("2024-05-03")), bytes.Index([]byte(out), []byte("2024-05-01")))

	out, err = runAdmin(t, "workouts", "ada@example.com", "--limit", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "2024-05-03")
	assert.NotContains(t, out, "2024-05-01")
}

func TestWorkouts_Empty(t *testing.T) {
	testDB := setupAdmin(t)
	createUser(t, testDB, "ada@example.com", false)

	out, err := runAdmin(t, "workouts", "ada@example.com")
	require.NoError(t, err)
	assert.Contains(t, out, "No workouts found.")
}

func TestPlan_Formats(t *testing.T) {
	testDB := setupAdmin(t)
	createUser(t, testDB, "ada@example.com", true)
	want := planner.Suggest(planner.Profile{MuscleWeightKg: f(35), FatPercentage: f(15)})

	out, err := runAdmin(t, "plan", "ada@example.com")
	require.NoError(t, err)
	assert.Contains(t, out, want[0].Focus)
	assert.NotContains(t, out, "Profile incomplete")

	out, err = runAdmin(t, "plan", "ada@example.com", "--format", "json")
	require.NoError(t, err)
	var fromJSON planOutput
	require.NoError(t, json.Unmarshal([]byte(out), &fromJSON))
	assert.Equal(t, "ada@example.com", fromJSON.Email)
	assert.True(t, fromJSON.ProfileCompleted)
	assert.Equal(t, want, fromJSON.Plan)

	out, err = runAdmin(t, "plan", "ada@example.com", "--format", "yaml")
	require.NoError(t, err)
	var fromYAML planOutput
	require.NoError(t, yaml.Unmarshal([]byte(out), &fromYAML))
	assert.Equal(t, want, fromYAML.Plan)

	_, err = runAdmin(t, "plan", "ada@example.com", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestPlan_IncompleteProfile(t *testing.T) {
	testDB := setupAdmin(t)
	createUser(t, testDB, "ada@example.com", false)

	out, err := runAdmin(t, "plan", "ada@example.com")
	require.NoError(t, err)
	assert.Contains(t, out, "Profile incomplete")
	assert.Contains(t, out, "Full Body A")
}
