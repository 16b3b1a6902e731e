package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fittrack/fittrack-api/internal/core/ports"
)

// ProfileHandler serves the caller's profile row.
type ProfileHandler struct {
	profiles ports.ProfileRepository
}

func NewProfileHandler(profiles ports.ProfileRepository) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// Get handles GET /api/profile.
func (h *ProfileHandler) Get(c echo.Context) error {
	userID, token, err := ctxCaller(c)
	if err != nil {
		return err
	}

	profile, err := h.profiles.GetByID(c.Request().Context(), token, userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}
