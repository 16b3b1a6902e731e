package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fittrack/fittrack-api/internal/core/ports"
)

// ExerciseHandler serves the read-only exercise catalog.
type ExerciseHandler struct {
	exercises ports.ExerciseRepository
}

func NewExerciseHandler(exercises ports.ExerciseRepository) *ExerciseHandler {
	return &ExerciseHandler{exercises: exercises}
}

// List handles GET /api/exercises.
func (h *ExerciseHandler) List(c echo.Context) error {
	_, token, err := ctxCaller(c)
	if err != nil {
		return err
	}

	exercises, err := h.exercises.List(c.Request().Context(), token)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, exercises)
}
