package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/fittrack/fittrack-api/internal/core/domain"
	"github.com/fittrack/fittrack-api/internal/core/ports"
	"github.com/fittrack/fittrack-api/internal/observability"
)

// AuthClient talks to the platform's auth endpoint: credential sign-up,
// password sign-in, and token-to-identity resolution.
type AuthClient struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
	log     zerolog.Logger
}

func NewAuthClient(baseURL, apiKey string, httpc *http.Client, log zerolog.Logger) *AuthClient {
	if httpc == nil {
		httpc = &http.Client{}
	}
	return &AuthClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpc:   httpc,
		log:     log,
	}
}

// identityPayload is the identity object as the platform serializes it. Some
// responses carry "id", token-introspection style ones carry "sub".
type identityPayload struct {
	ID  string `json:"id"`
	Sub string `json:"sub"`
}

type sessionPayload struct {
	AccessToken string `json:"access_token"`
}

// authResponse tolerates the two response shapes the platform uses: the
// identity/session at the top level, or nested under "user" / "session".
type authResponse struct {
	identityPayload
	AccessToken string           `json:"access_token"`
	User        *identityPayload `json:"user"`
	Session     *sessionPayload  `json:"session"`
}

// identity normalizes the decoded shape into a single Identity, preferring
// the nested user object and falling back from id to sub. Returns nil when
// neither shape names a subject.
func (r *authResponse) identity() *domain.Identity {
	p := &r.identityPayload
	if r.User != nil {
		p = r.User
	}
	id := p.ID
	if id == "" {
		id = p.Sub
	}
	if id == "" {
		return nil
	}
	return &domain.Identity{ID: id}
}

// session normalizes the session shape. Returns nil when no token was issued.
func (r *authResponse) session() *domain.Session {
	token := r.AccessToken
	if r.Session != nil && r.Session.AccessToken != "" {
		token = r.Session.AccessToken
	}
	if token == "" {
		return nil
	}
	return &domain.Session{AccessToken: token}
}

// SignUp creates a new identity. Any upstream rejection surfaces as a
// *domain.StoreError so the caller sees the platform's reason (for example a
// duplicate e-mail).
func (c *AuthClient) SignUp(ctx context.Context, email, password string, metadata map[string]any) (*ports.SignUpResult, error) {
	payload := map[string]any{
		"email":    email,
		"password": password,
	}
	if len(metadata) > 0 {
		payload["data"] = metadata
	}

	body, err := c.post(ctx, "/auth/v1/signup", payload)
	if err != nil {
		return nil, err
	}

	var res authResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("decode sign-up response: %w", err)
	}
	return &ports.SignUpResult{Identity: res.identity(), Session: res.session()}, nil
}

// SignIn exchanges credentials for a session. Any upstream rejection maps to
// domain.ErrInvalidCredentials; the upstream body is dropped on purpose.
func (c *AuthClient) SignIn(ctx context.Context, email, password string) (*domain.Session, error) {
	body, err := c.post(ctx, "/auth/v1/token?grant_type=password", map[string]any{
		"email":    email,
		"password": password,
	})
	if err != nil {
		var se *domain.StoreError
		if errors.As(err, &se) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	var res authResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("decode sign-in response: %w", err)
	}
	session := res.session()
	if session == nil {
		return nil, domain.ErrInvalidCredentials
	}
	return session, nil
}

// ResolveToken maps a bearer token to its identity. A non-2xx response means
// the platform does not recognise the token and yields (nil, nil); only
// transport failures return an error.
func (c *AuthClient) ResolveToken(ctx context.Context, token string) (*domain.Identity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return nil, fmt.Errorf("build auth request: %w", err)
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+token)

	start := time.Now()
	resp, err := c.httpc.Do(req)
	observability.ObserveUpstream("auth", start, err)
	if err != nil {
		return nil, fmt.Errorf("resolve token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, nil
	}

	var res authResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, fmt.Errorf("decode identity response: %w", err)
	}
	return res.identity(), nil
}

func (c *AuthClient) post(ctx context.Context, path string, payload any) ([]byte, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode auth payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return nil, fmt.Errorf("build auth request: %w", err)
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpc.Do(req)
	observability.ObserveUpstream("auth", start, err)
	if err != nil {
		return nil, fmt.Errorf("call auth platform: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read auth response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		c.log.Warn().Int("status", resp.StatusCode).Str("path", path).Msg("auth platform request failed")
		return nil, &domain.StoreError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	return body, nil
}
