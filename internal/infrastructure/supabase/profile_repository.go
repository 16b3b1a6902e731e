package supabase

import (
	"context"

	"github.com/fittrack/fittrack-api/internal/core/domain"
)

// ProfileRepository stores user profiles in the remote "profiles" collection.
type ProfileRepository struct {
	client *Client
}

func NewProfileRepository(client *Client) *ProfileRepository {
	return &ProfileRepository{client: client}
}

// Insert runs with the service key rather than a caller token: at
// registration time the user may not have a session yet.
func (r *ProfileRepository) Insert(ctx context.Context, profile *domain.Profile) error {
	return r.client.From("profiles").Insert(ctx, profile, nil)
}

func (r *ProfileRepository) GetByID(ctx context.Context, token, id string) (*domain.Profile, error) {
	var profile domain.Profile
	err := r.client.From("profiles").
		WithToken(token).
		Select("*").
		Eq("id", id).
		Single().
		Get(ctx, &profile)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
