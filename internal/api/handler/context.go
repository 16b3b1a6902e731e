package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fittrack/fittrack-api/internal/api/middleware"
)

// ctxCaller extracts the identity and raw token injected by the Auth
// middleware. Their presence proves the middleware ran; a route wired without
// it fails closed here.
func ctxCaller(c echo.Context) (userID, token string, err error) {
	userID, _ = c.Get(middleware.ContextKeyUserID).(string)
	token, _ = c.Get(middleware.ContextKeyToken).(string)
	if userID == "" || token == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	return userID, token, nil
}
