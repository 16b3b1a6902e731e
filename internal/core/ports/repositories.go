package ports

import (
	"context"

	"github.com/fittrack/fittrack-api/internal/core/domain"
)

// The token argument on every read/write is the caller's bearer token; it is
// forwarded to the store so row-level authorization evaluates as the calling
// user rather than the service role. An empty token falls back to the
// service key.

// WorkoutRepository persists and retrieves workout rows in the remote store.
type WorkoutRepository interface {
	// Insert stores a new workout and returns the inserted representation.
	Insert(ctx context.Context, token string, workout *domain.Workout) ([]domain.Workout, error)
	// ListByUser returns all of the user's workouts joined with the exercise
	// name and muscle group.
	ListByUser(ctx context.Context, token, userID string) ([]domain.Workout, error)
	// ListByUserSince is ListByUser restricted to workout_date >= since.
	ListByUserSince(ctx context.Context, token, userID, since string) ([]domain.Workout, error)
	// Delete removes a workout matched by BOTH workout id and owner id, so a
	// caller can never delete another user's row.
	Delete(ctx context.Context, token, workoutID, userID string) error
}

// ProfileRepository manages the application-side user rows.
type ProfileRepository interface {
	Insert(ctx context.Context, profile *domain.Profile) error
	GetByID(ctx context.Context, token, id string) (*domain.Profile, error)
}

// ExerciseRepository reads the exercise catalog. The catalog's lifecycle is
// owned entirely by the remote store.
type ExerciseRepository interface {
	List(ctx context.Context, token string) ([]domain.Exercise, error)
}
