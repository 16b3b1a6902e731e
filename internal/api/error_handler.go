package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/fittrack/fittrack-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Detail string `json:"detail"`
}

// loginFailedMessage deliberately hides which credential field was wrong.
const loginFailedMessage = "login failed, please check your credentials"

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps the error taxonomy to its HTTP codes: authentication failures to
//     401, every other operation failure to 400.
//   - Surfaces upstream store bodies verbatim, but swallows sign-in detail.
//   - Renders a consistent JSON envelope: {"detail": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, detail := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Detail: detail})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, middleware 401s).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	var se *domain.StoreError
	var ge *domain.GenerationError
	switch {
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized, domain.ErrInvalidToken.Error()
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusBadRequest, loginFailedMessage
	case errors.As(err, &se):
		return http.StatusBadRequest, se.Body
	case errors.As(err, &ge):
		return http.StatusBadRequest, ge.Message
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusBadRequest, domain.ErrNotFound.Error()
	}

	// Transport-level and other unexpected failures are still terminal
	// operation failures for this request: log the cause, answer 400.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("request failed")

	return http.StatusBadRequest, err.Error()
}
