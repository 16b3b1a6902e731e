package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/fittrack/fittrack-api/internal/api/middleware"
)

// newJSONContext builds an echo context with the request validator installed,
// mirroring how the router configures the server.
func newJSONContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// asCaller injects the context keys the auth middleware would set.
func asCaller(c echo.Context, userID, token string) {
	c.Set(middleware.ContextKeyUserID, userID)
	c.Set(middleware.ContextKeyToken, token)
}
