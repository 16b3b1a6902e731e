package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/fittrack/fittrack-api/internal/core/ports"
)

// Context keys set by Auth and read by the handlers.
const (
	ContextKeyUserID = "user_id"
	ContextKeyToken  = "token"
)

// Auth extracts the bearer token, resolves it to an identity via the remote
// auth platform, and injects both into the request context. The raw token is
// kept so handlers can re-forward it to the data store and have row-level
// authorization evaluated as the calling user.
func Auth(resolver ports.AuthProvider) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			token := parts[1]

			identity, err := resolver.ResolveToken(c.Request().Context(), token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "session expired or unauthorized: "+err.Error())
			}
			if identity == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(ContextKeyUserID, identity.ID)
			c.Set(ContextKeyToken, token)

			return next(c)
		}
	}
}
