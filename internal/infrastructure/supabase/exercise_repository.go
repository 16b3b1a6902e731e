package supabase

import (
	"context"

	"github.com/fittrack/fittrack-api/internal/core/domain"
)

// ExerciseRepository reads the remote "exercises" catalog.
type ExerciseRepository struct {
	client *Client
}

func NewExerciseRepository(client *Client) *ExerciseRepository {
	return &ExerciseRepository{client: client}
}

func (r *ExerciseRepository) List(ctx context.Context, token string) ([]domain.Exercise, error) {
	var exercises []domain.Exercise
	err := r.client.From("exercises").
		WithToken(token).
		Select("*").
		Get(ctx, &exercises)
	if err != nil {
		return nil, err
	}
	return exercises, nil
}
