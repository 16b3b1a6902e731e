package api

import (
	"path/filepath"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/fittrack/fittrack-api/internal/api/handler"
	"github.com/fittrack/fittrack-api/internal/api/middleware"
	"github.com/fittrack/fittrack-api/internal/core/ports"
)

// Dependencies carries everything the router needs, injected explicitly so
// handlers stay testable with substitute clients.
type Dependencies struct {
	Logger          zerolog.Logger
	AuthProvider    ports.AuthProvider
	AuthService     ports.AuthService
	WorkoutService  ports.WorkoutService
	StatsService    ports.StatsService
	AnalysisService ports.AnalysisService
	Profiles        ports.ProfileRepository
	Exercises       ports.ExerciseRepository
	StaticDir       string
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("fittrack"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.AuthService)
	workoutHandler := handler.NewWorkoutHandler(deps.WorkoutService)
	profileHandler := handler.NewProfileHandler(deps.Profiles)
	exerciseHandler := handler.NewExerciseHandler(deps.Exercises)
	statsHandler := handler.NewStatsHandler(deps.StatsService)
	analysisHandler := handler.NewAnalysisHandler(deps.AnalysisService)
	healthHandler := handler.NewHealthHandler()

	// --- Probes & metrics (no auth required) ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Auth routes ---
	apiGroup := e.Group("/api")
	apiGroup.POST("/auth/register", authHandler.Register)
	apiGroup.POST("/auth/login", authHandler.Login)

	// --- Authenticated routes ---
	protected := apiGroup.Group("", middleware.Auth(deps.AuthProvider))
	protected.GET("/profile", profileHandler.Get)
	protected.GET("/exercises", exerciseHandler.List)
	protected.POST("/workouts", workoutHandler.Create)
	protected.GET("/workouts", workoutHandler.List)
	protected.GET("/workouts/history", workoutHandler.History)
	protected.DELETE("/workouts/:id", workoutHandler.Delete)
	protected.GET("/stats", statsHandler.Get)
	protected.GET("/ai/analysis", analysisHandler.Get)

	// --- Static UI (no auth required) ---
	if deps.StaticDir != "" {
		e.File("/", filepath.Join(deps.StaticDir, "index.html"))
		e.File("/dashboard", filepath.Join(deps.StaticDir, "dashboard.html"))
		e.Static("/static", deps.StaticDir)
	}

	return e
}
