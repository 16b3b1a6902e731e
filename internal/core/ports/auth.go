package ports

import (
	"context"

	"github.com/fittrack/fittrack-api/internal/core/domain"
)

// SignUpResult carries the outcome of a sign-up call. Session is nil when the
// platform defers token issuance (e.g. e-mail confirmation pending).
type SignUpResult struct {
	Identity *domain.Identity
	Session  *domain.Session
}

// AuthProvider is the remote authentication platform.
type AuthProvider interface {
	// SignUp creates a new identity. Metadata is attached to the identity as
	// free-form attributes.
	SignUp(ctx context.Context, email, password string, metadata map[string]any) (*SignUpResult, error)
	// SignIn exchanges credentials for a session. Any upstream rejection is
	// reported as domain.ErrInvalidCredentials.
	SignIn(ctx context.Context, email, password string) (*domain.Session, error)
	// ResolveToken maps a bearer token to its identity. A token the platform
	// does not recognise yields (nil, nil); only transport-level failures
	// return an error.
	ResolveToken(ctx context.Context, token string) (*domain.Identity, error)
}

// AuthService implements registration and login on top of an AuthProvider.
type AuthService interface {
	// Register signs the user up and creates the linked profile row. The
	// returned session is nil when the platform issued no token yet.
	Register(ctx context.Context, email, password, username string) (*domain.Session, error)
	Login(ctx context.Context, email, password string) (*domain.Session, error)
}
