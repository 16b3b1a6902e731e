package supabase

import (
	"context"

	"github.com/fittrack/fittrack-api/internal/core/domain"
)

// workoutColumns joins each row with its exercise's name and muscle group.
const workoutColumns = "*, exercises(name, muscle_group)"

// WorkoutRepository stores workouts in the remote "workouts" collection.
type WorkoutRepository struct {
	client *Client
}

func NewWorkoutRepository(client *Client) *WorkoutRepository {
	return &WorkoutRepository{client: client}
}

func (r *WorkoutRepository) Insert(ctx context.Context, token string, workout *domain.Workout) ([]domain.Workout, error) {
	var inserted []domain.Workout
	err := r.client.From("workouts").
		WithToken(token).
		Insert(ctx, workout, &inserted)
	if err != nil {
		return nil, err
	}
	return inserted, nil
}

func (r *WorkoutRepository) ListByUser(ctx context.Context, token, userID string) ([]domain.Workout, error) {
	var workouts []domain.Workout
	err := r.client.From("workouts").
		WithToken(token).
		Select(workoutColumns).
		Eq("user_id", userID).
		Get(ctx, &workouts)
	if err != nil {
		return nil, err
	}
	return workouts, nil
}

func (r *WorkoutRepository) ListByUserSince(ctx context.Context, token, userID, since string) ([]domain.Workout, error) {
	var workouts []domain.Workout
	err := r.client.From("workouts").
		WithToken(token).
		Select(workoutColumns).
		Eq("user_id", userID).
		Gte("workout_date", since).
		Get(ctx, &workouts)
	if err != nil {
		return nil, err
	}
	return workouts, nil
}

// Delete matches on both the workout id and the owner id. A row owned by a
// different user matches nothing and nothing is deleted.
func (r *WorkoutRepository) Delete(ctx context.Context, token, workoutID, userID string) error {
	return r.client.From("workouts").
		WithToken(token).
		Eq("id", workoutID).
		Eq("user_id", userID).
		Delete(ctx)
}
