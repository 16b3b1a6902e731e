package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/fittrack/fittrack-api/internal/api"
	"github.com/fittrack/fittrack-api/internal/config"
	"github.com/fittrack/fittrack-api/internal/core/service"
	"github.com/fittrack/fittrack-api/internal/infrastructure/gemini"
	"github.com/fittrack/fittrack-api/internal/infrastructure/supabase"
	"github.com/fittrack/fittrack-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		LogFile: cfg.LogFile,
	})

	// One pooled client for every upstream round-trip.
	httpClient := &http.Client{}

	storeClient := supabase.NewClient(cfg.Supabase.URL, cfg.Supabase.Key, httpClient, log)
	authClient := supabase.NewAuthClient(cfg.Supabase.URL, cfg.Supabase.Key, httpClient, log)
	generator := gemini.NewClient("", cfg.Gemini.APIKey, cfg.Gemini.Model, httpClient, log)

	workouts := supabase.NewWorkoutRepository(storeClient)
	profiles := supabase.NewProfileRepository(storeClient)
	exercises := supabase.NewExerciseRepository(storeClient)

	e := api.NewRouter(api.Dependencies{
		Logger:          log,
		AuthProvider:    authClient,
		AuthService:     service.NewAuthService(authClient, profiles, log),
		WorkoutService:  service.NewWorkoutService(workouts, log),
		StatsService:    service.NewStatsService(workouts, log),
		AnalysisService: service.NewAnalysisService(workouts, generator, log),
		Profiles:        profiles,
		Exercises:       exercises,
		StaticDir:       cfg.StaticDir,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting fittrack api")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
