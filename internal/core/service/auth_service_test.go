package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fittrack/fittrack-api/internal/core/domain"
	"github.com/fittrack/fittrack-api/internal/core/ports"
)

type stubAuthProvider struct {
	signUp  func(email, password string, metadata map[string]any) (*ports.SignUpResult, error)
	signIn  func(email, password string) (*domain.Session, error)
	resolve func(token string) (*domain.Identity, error)
}

func (p *stubAuthProvider) SignUp(_ context.Context, email, password string, metadata map[string]any) (*ports.SignUpResult, error) {
	return p.signUp(email, password, metadata)
}

func (p *stubAuthProvider) SignIn(_ context.Context, email, password string) (*domain.Session, error) {
	return p.signIn(email, password)
}

func (p *stubAuthProvider) ResolveToken(_ context.Context, token string) (*domain.Identity, error) {
	return p.resolve(token)
}

type stubProfileRepo struct {
	insert  func(p *domain.Profile) error
	getByID func(token, id string) (*domain.Profile, error)
}

func (r *stubProfileRepo) Insert(_ context.Context, p *domain.Profile) error {
	if r.insert == nil {
		return nil
	}
	return r.insert(p)
}

func (r *stubProfileRepo) GetByID(_ context.Context, token, id string) (*domain.Profile, error) {
	return r.getByID(token, id)
}

func TestAuthService_Register_CreatesLinkedProfile(t *testing.T) {
	provider := &stubAuthProvider{
		signUp: func(email, password string, metadata map[string]any) (*ports.SignUpResult, error) {
			assert.Equal(t, "alice@example.com", email)
			assert.Equal(t, map[string]any{"username": "alice"}, metadata)
			return &ports.SignUpResult{
				Identity: &domain.Identity{ID: "id-1"},
				Session:  &domain.Session{AccessToken: "tok-1"},
			}, nil
		},
	}
	var inserted *domain.Profile
	profiles := &stubProfileRepo{
		insert: func(p *domain.Profile) error {
			inserted = p
			return nil
		},
	}
	svc := NewAuthService(provider, profiles, zerolog.Nop())

	session, err := svc.Register(context.Background(), "alice@example.com", "s3cret", "alice")
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "tok-1", session.AccessToken)

	require.NotNil(t, inserted)
	assert.Equal(t, "id-1", inserted.ID, "profile id must equal the auth identity")
	assert.Equal(t, "alice", inserted.Username)
}

func TestAuthService_Register_NoSessionYet(t *testing.T) {
	provider := &stubAuthProvider{
		signUp: func(string, string, map[string]any) (*ports.SignUpResult, error) {
			// Identity created, token deferred until e-mail confirmation.
			return &ports.SignUpResult{Identity: &domain.Identity{ID: "id-2"}}, nil
		},
	}
	svc := NewAuthService(provider, &stubProfileRepo{}, zerolog.Nop())

	session, err := svc.Register(context.Background(), "bob@example.com", "s3cret", "bob")
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestAuthService_Register_UpstreamFailureSurfaces(t *testing.T) {
	provider := &stubAuthProvider{
		signUp: func(string, string, map[string]any) (*ports.SignUpResult, error) {
			return nil, &domain.StoreError{StatusCode: 422, Body: "email already registered"}
		},
	}
	profiles := &stubProfileRepo{
		insert: func(*domain.Profile) error {
			t.Fatalf("profile must not be created when sign-up fails")
			return nil
		},
	}
	svc := NewAuthService(provider, profiles, zerolog.Nop())

	_, err := svc.Register(context.Background(), "dup@example.com", "s3cret", "dup")
	var se *domain.StoreError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "email already registered", se.Body)
}

func TestAuthService_Register_ProfileInsertFailure(t *testing.T) {
	provider := &stubAuthProvider{
		signUp: func(string, string, map[string]any) (*ports.SignUpResult, error) {
			return &ports.SignUpResult{Identity: &domain.Identity{ID: "id-3"}}, nil
		},
	}
	profiles := &stubProfileRepo{
		insert: func(*domain.Profile) error {
			return &domain.StoreError{StatusCode: 409, Body: "duplicate key value"}
		},
	}
	svc := NewAuthService(provider, profiles, zerolog.Nop())

	_, err := svc.Register(context.Background(), "carol@example.com", "s3cret", "carol")
	var se *domain.StoreError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 409, se.StatusCode)
}

func TestAuthService_Login(t *testing.T) {
	provider := &stubAuthProvider{
		signIn: func(email, password string) (*domain.Session, error) {
			if email == "alice@example.com" && password == "s3cret" {
				return &domain.Session{AccessToken: "tok-9"}, nil
			}
			return nil, domain.ErrInvalidCredentials
		},
	}
	svc := NewAuthService(provider, &stubProfileRepo{}, zerolog.Nop())

	session, err := svc.Login(context.Background(), "alice@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "tok-9", session.AccessToken)

	_, err = svc.Login(context.Background(), "alice@example.com", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}
