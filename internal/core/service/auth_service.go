package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/fittrack/fittrack-api/internal/core/domain"
	"github.com/fittrack/fittrack-api/internal/core/ports"
)

// AuthService implements registration and login against the remote auth
// platform, keeping the profile row in the data store linked to the identity.
type AuthService struct {
	provider ports.AuthProvider
	profiles ports.ProfileRepository
	log      zerolog.Logger
}

func NewAuthService(provider ports.AuthProvider, profiles ports.ProfileRepository, log zerolog.Logger) *AuthService {
	return &AuthService{provider: provider, profiles: profiles, log: log}
}

// Register signs the user up and, when an identity was created, inserts the
// profile row sharing its id. The session may be nil when the platform defers
// token issuance until e-mail confirmation.
func (s *AuthService) Register(ctx context.Context, email, password, username string) (*domain.Session, error) {
	res, err := s.provider.SignUp(ctx, email, password, map[string]any{"username": username})
	if err != nil {
		s.log.Warn().Err(err).Msg("sign-up rejected by auth platform")
		return nil, err
	}

	if res.Identity != nil {
		profile := &domain.Profile{ID: res.Identity.ID, Username: username}
		if err := s.profiles.Insert(ctx, profile); err != nil {
			s.log.Error().Err(err).Str("user_id", res.Identity.ID).Msg("failed to create profile")
			return nil, err
		}
		s.log.Info().Str("user_id", res.Identity.ID).Msg("user registered")
	}

	return res.Session, nil
}

// Login exchanges credentials for a session. Upstream rejections surface as
// domain.ErrInvalidCredentials; the upstream detail is never forwarded.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	session, err := s.provider.SignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return session, nil
}
