package ports

import (
	"context"

	"github.com/fittrack/fittrack-api/internal/core/domain"
)

// CreateWorkoutInput carries all data needed to log a workout. UserID is the
// authenticated caller's id; the service stamps it onto the row so cross-user
// creation is impossible regardless of the request payload.
type CreateWorkoutInput struct {
	UserID      string
	Token       string
	ExerciseID  string
	Sets        int
	Reps        int
	WeightKg    float64
	WorkoutDate string
	Notes       string
}

// WorkoutService defines the workout use-cases.
type WorkoutService interface {
	Create(ctx context.Context, input CreateWorkoutInput) ([]domain.Workout, error)
	// List returns the caller's workouts in store order.
	List(ctx context.Context, token, userID string) ([]domain.Workout, error)
	// History returns the caller's workouts newest first, ordered by
	// (workout_date desc, created_at desc, id asc).
	History(ctx context.Context, token, userID string) ([]domain.Workout, error)
	Delete(ctx context.Context, token, workoutID, userID string) error
}
