package server

import (
	"fitlog/internal/models"
	"fitlog/internal/service"

	"github.com/gofiber/fiber/v2"
)

type saveWorkoutRequest struct {
	WorkoutDate string                    `json:"workoutDate"`
	Notes       string                    `json:"notes"`
	Strength    []strengthExerciseRequest `json:"strength"`
	Cardio      []cardioActivityRequest   `json:"cardio"`
}

type strengthExerciseRequest struct {
	ExerciseName string       `json:"exerciseName"`
	Sets         []setRequest `json:"sets"`
}

type setRequest struct {
	Reps     int     `json:"reps"`
	WeightKg float64 `json:"weightKg"`
}

type cardioActivityRequest struct {
	ActivityName   string  `json:"activityName"`
	TimeMinutes    float64 `json:"timeMinutes"`
	DistanceKm     float64 `json:"distanceKm"`
	CaloriesBurned float64 `json:"caloriesBurned"`
}

func (r saveWorkoutRequest) toInput(userID uint) service.SaveWorkoutInput {
	in := service.SaveWorkoutInput{
		UserID:      userID,
		WorkoutDate: r.WorkoutDate,
		Notes:       r.Notes,
		Strength:    make([]models.StrengthExercise, 0, len(r.Strength)),
		Cardio:      make([]models.CardioActivity, 0, len(r.Cardio)),
	}
	for _, ex := range r.Strength {
		sets := make([]models.SetInput, 0, len(ex.Sets))
		for _, set := range ex.Sets {
			sets = append(sets, models.SetInput{Reps: set.Reps, WeightKg: set.WeightKg})
		}
		in.Strength = append(in.Strength, models.StrengthExercise{ExerciseName: ex.ExerciseName, Sets: sets})
	}
	for _, ca := range r.Cardio {
		in.Cardio = append(in.Cardio, models.CardioActivity{
			ActivityName:   ca.ActivityName,
			TimeMinutes:    ca.TimeMinutes,
			DistanceKm:     ca.DistanceKm,
			CaloriesBurned: ca.CaloriesBurned,
		})
	}
	return in
}

// SaveWorkout handles POST /api/workouts
// @Summary Log a workout
// @Description Stores the session with its strength sets and cardio entries in one transaction
// @Tags workouts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body saveWorkoutRequest true "Workout"
// @Success 201 {object} object{message=string,sessionId=int}
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /workouts [post]
func (s *Server) SaveWorkout(c *fiber.Ctx) error {
	var req saveWorkoutRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	session, err := s.workoutService.Save(ctx, req.toInput(currentUserID(c)))
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":   "Workout saved.",
		"sessionId": session.ID,
	})
}

// ListWorkouts handles GET /api/workouts
// @Summary Workout history
// @Description Sessions newest first, each with its strength sets and cardio entries
// @Tags workouts
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum number of sessions"
// @Success 200 {object} object{workouts=[]models.WorkoutSession}
// @Failure 401 {object} models.ErrorResponse
// @Router /workouts [get]
func (s *Server) ListWorkouts(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	workouts, err := s.workoutService.ListRecent(ctx, currentUserID(c), parseLimit(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"workouts": workouts})
}
