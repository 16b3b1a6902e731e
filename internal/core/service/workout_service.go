package service

import (
	"context"
	"sort"

	"github.com/rs/zerolog"

	"github.com/fittrack/fittrack-api/internal/core/domain"
	"github.com/fittrack/fittrack-api/internal/core/ports"
	"github.com/fittrack/fittrack-api/internal/observability"
)

// WorkoutService implements the workout use-cases over the remote store.
type WorkoutService struct {
	repo ports.WorkoutRepository
	log  zerolog.Logger
}

func NewWorkoutService(repo ports.WorkoutRepository, log zerolog.Logger) *WorkoutService {
	return &WorkoutService{repo: repo, log: log}
}

// Create logs a workout for the authenticated caller. The owner id always
// comes from the resolved identity, never from the request payload.
func (s *WorkoutService) Create(ctx context.Context, input ports.CreateWorkoutInput) ([]domain.Workout, error) {
	workout := &domain.Workout{
		UserID:      input.UserID,
		ExerciseID:  input.ExerciseID,
		Sets:        input.Sets,
		Reps:        input.Reps,
		WeightKg:    input.WeightKg,
		WorkoutDate: input.WorkoutDate,
		Notes:       input.Notes,
	}

	inserted, err := s.repo.Insert(ctx, input.Token, workout)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", input.UserID).Msg("failed to create workout")
		return nil, err
	}

	observability.WorkoutsCreatedTotal.Inc()
	s.log.Info().
		Str("user_id", input.UserID).
		Str("exercise_id", input.ExerciseID).
		Str("workout_date", input.WorkoutDate).
		Msg("workout created")

	return inserted, nil
}

func (s *WorkoutService) List(ctx context.Context, token, userID string) ([]domain.Workout, error) {
	return s.repo.ListByUser(ctx, token, userID)
}

// History returns the caller's workouts newest first. Creation timestamps
// break date ties; ids make equal timestamps stable.
func (s *WorkoutService) History(ctx context.Context, token, userID string) ([]domain.Workout, error) {
	workouts, err := s.repo.ListByUser(ctx, token, userID)
	if err != nil {
		return nil, err
	}
	sortNewestFirst(workouts)
	return workouts, nil
}

// Delete removes the caller's workout. The repository matches on both the
// workout id and the owner id, so a mismatched owner deletes nothing.
func (s *WorkoutService) Delete(ctx context.Context, token, workoutID, userID string) error {
	if err := s.repo.Delete(ctx, token, workoutID, userID); err != nil {
		s.log.Error().Err(err).Str("workout_id", workoutID).Str("user_id", userID).Msg("failed to delete workout")
		return err
	}
	observability.WorkoutsDeletedTotal.Inc()
	s.log.Info().Str("workout_id", workoutID).Str("user_id", userID).Msg("workout deleted")
	return nil
}

// sortNewestFirst orders workouts by (workout_date desc, created_at desc,
// id asc). Both date fields are ISO strings, so string comparison is
// chronological.
func sortNewestFirst(workouts []domain.Workout) {
	sort.Slice(workouts, func(i, j int) bool {
		a, b := workouts[i], workouts[j]
		if a.WorkoutDate != b.WorkoutDate {
			return a.WorkoutDate > b.WorkoutDate
		}
		if a.CreatedAt != b.CreatedAt {
			return a.CreatedAt > b.CreatedAt
		}
		return a.ID < b.ID
	})
}
