package server

import (
	"fitlog/internal/models"

	"github.com/gofiber/fiber/v2"
)

type profileRequest struct {
	BodyWeightKg   *float64 `json:"bodyWeightKg"`
	HeightCm       *float64 `json:"heightCm"`
	MuscleWeightKg *float64 `json:"muscleWeightKg"`
	FatPercentage  *float64 `json:"fatPercentage"`
}

// GetMe handles GET /api/me
// @Summary Current user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{user=models.PublicUser}
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /me [get]
func (s *Server) GetMe(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	user, err := s.profileService.Get(ctx, currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"user": user.Public()})
}

// UpdateProfile handles PUT /api/profile
// @Summary Update body metrics
// @Description All four metrics are required
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body profileRequest true "Body metrics"
// @Success 200 {object} object{user=models.PublicUser}
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /profile [put]
func (s *Server) UpdateProfile(c *fiber.Ctx) error {
	var req profileRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	user, err := s.profileService.Update(ctx, currentUserID(c), models.BodyMetrics{
		BodyWeightKg:   req.BodyWeightKg,
		HeightCm:       req.HeightCm,
		MuscleWeightKg: req.MuscleWeightKg,
		FatPercentage:  req.FatPercentage,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"user": user.Public()})
}

// GetPlan handles GET /api/plan
// @Summary Suggested weekly plan
// @Description Six-day split chosen from the user's body metrics
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{plan=[]planner.PlanDay,profileCompleted=bool}
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /plan [get]
func (s *Server) GetPlan(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	plan, completed, err := s.profileService.Plan(ctx, currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"plan":             plan,
		"profileCompleted": completed,
	})
}
