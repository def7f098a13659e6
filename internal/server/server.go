// Package server contains the HTTP handlers and routing for the fitness API.
package server

import (
	"context"
	"fmt"
	"log"
	"time"

	_ "fitlog/docs" // swagger docs
	"fitlog/internal/auth"
	"fitlog/internal/bootstrap"
	"fitlog/internal/config"
	"fitlog/internal/database"
	"fitlog/internal/middleware"
	"fitlog/internal/models"
	"fitlog/internal/repository"
	"fitlog/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const defaultOrigins = "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173"

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus
	userRepo       repository.UserRepository
	workoutRepo    repository.WorkoutRepository
	authService    *service.AuthService
	profileService *service.ProfileService
	workoutService *service.WorkoutService
}

// NewServer connects to the database and Redis, migrates the schema when
// DB_AUTO_MIGRATE is set, and returns a ready Server.
func NewServer(cfg *config.Config) (*Server, error) {
	db, redisClient, err := bootstrap.InitRuntime(cfg, bootstrap.Options{Migrate: cfg.DBAutoMigrate})
	if err != nil {
		return nil, err
	}
	return NewServerWithDeps(cfg, db, redisClient)
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// redisClient may be nil; caching, revocation and rate limiting are then skipped.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	if cfg == nil || db == nil {
		return nil, fmt.Errorf("server requires a config and a database handle")
	}

	userRepo := repository.NewUserRepository(db)
	workoutRepo := repository.NewWorkoutRepository(db)
	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL())

	return &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		promMiddleware: middleware.InitMetrics("fitlog-api"),
		userRepo:       userRepo,
		workoutRepo:    workoutRepo,
		authService:    service.NewAuthService(userRepo, tokens, cfg.BcryptCost),
		profileService: service.NewProfileService(userRepo),
		workoutService: service.NewWorkoutService(workoutRepo),
	}, nil
}

// App returns the Fiber application with middleware and routes installed,
// building it on first use.
func (s *Server) App() *fiber.App {
	if s.app == nil {
		app := fiber.New(fiber.Config{
			AppName:      "Fitlog API",
			BodyLimit:    1 * 1024 * 1024,
			ErrorHandler: errorHandler,
		})
		s.SetupMiddleware(app)
		s.SetupRoutes(app)
		s.app = app
	}
	return s.app
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	app.Use(middleware.TracingMiddleware())

	// Context Middleware to propagate Request ID and Trace ID
	app.Use(middleware.ContextMiddleware())

	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Security headers
	app.Use(helmet.New())

	app.Use(middleware.StructuredLogger())

	// CORS runs before the limiter so rejected requests still carry CORS headers.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = defaultOrigins
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: origins != "*",
		MaxAge:           86400,
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(models.ErrorResponse{
				Message: "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	app.Get("/health", s.HealthCheck)
	app.Get("/health/ready", s.ReadinessCheck)

	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	api := app.Group("/api")
	api.Get("/health", s.HealthCheck)
	api.Get("/swagger/*", swagger.HandlerDefault)

	authGroup := api.Group("/auth")
	authGroup.Post("/register", middleware.RateLimit(
		s.redis, s.config.Env, 5, 10*time.Minute, "register"), s.Register)
	authGroup.Post("/login", middleware.RateLimit(
		s.redis, s.config.Env, 10, 5*time.Minute, "login"), s.Login)
	authGroup.Post("/logout", s.AuthRequired(), s.Logout)

	protected := api.Group("", s.AuthRequired())
	protected.Get("/me", s.GetMe)
	protected.Put("/profile", s.UpdateProfile)
	protected.Get("/plan", s.GetPlan)
	protected.Post("/workouts", s.SaveWorkout)
	protected.Get("/workouts", s.ListWorkouts)
}

// HealthCheck handles GET /health and GET /api/health
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} object{ok=bool}
// @Router /health [get]
func (s *Server) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"ok": true})
}

// ReadinessCheck handles readiness probe requests. Redis is optional, so only a
// failing database makes the service unready.
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	if err := database.Ping(ctx, s.db); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "healthy"
	if s.redis == nil {
		redisStatus = "unavailable"
	} else if err := s.redis.Ping(ctx).Err(); err != nil {
		redisStatus = "unhealthy"
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus != "healthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now().UTC(),
	})
}

// AuthRequired verifies the bearer token and stores the caller's identity in
// locals and in the user context.
func (s *Server) AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := s.authService.VerifyBearer(c.UserContext(), c.Get(fiber.HeaderAuthorization))
		if err != nil {
			return models.RespondWithError(c, err)
		}

		c.Locals(middleware.LocalUserID, claims.UserID)
		c.Locals(middleware.LocalClaims, claims)
		c.SetUserContext(middleware.WithUserID(c.UserContext(), claims.UserID))

		return c.Next()
	}
}

// Start starts the server
func (s *Server) Start() error {
	log.Printf("Server starting on port %s...", s.config.Port)
	return s.App().Listen(":" + s.config.Port)
}

// Shutdown stops accepting requests and closes the database and Redis connections.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			log.Printf("error shutting down HTTP server: %v", err)
		}
	}

	if err := database.Close(s.db); err != nil {
		log.Printf("error closing database: %v", err)
	}

	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			log.Printf("error closing redis: %v", err)
		}
	}

	log.Println("Server shutdown complete")
	return nil
}
