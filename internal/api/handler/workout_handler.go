package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fittrack/fittrack-api/internal/core/ports"
)

// WorkoutHandler handles HTTP requests for workout operations.
type WorkoutHandler struct {
	service ports.WorkoutService
}

func NewWorkoutHandler(service ports.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{service: service}
}

type createWorkoutRequest struct {
	ExerciseID  string  `json:"exercise_id"  validate:"required"`
	Sets        int     `json:"sets"         validate:"gte=0"`
	Reps        int     `json:"reps"         validate:"gte=0"`
	WeightKg    float64 `json:"weight_kg"    validate:"gte=0"`
	WorkoutDate string  `json:"workout_date" validate:"required,datetime=2006-01-02"`
	Notes       string  `json:"notes"`
}

type deleteWorkoutResponse struct {
	Success bool `json:"success"`
}

// Create logs a workout for the authenticated caller.
//
// @Summary      Log a workout
// @Tags         workouts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createWorkoutRequest  true  "Workout details"
// @Success      201   {array}   domain.Workout
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/workouts [post]
func (h *WorkoutHandler) Create(c echo.Context) error {
	var req createWorkoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	userID, token, err := ctxCaller(c)
	if err != nil {
		return err
	}

	inserted, err := h.service.Create(c.Request().Context(), ports.CreateWorkoutInput{
		UserID:      userID,
		Token:       token,
		ExerciseID:  req.ExerciseID,
		Sets:        req.Sets,
		Reps:        req.Reps,
		WeightKg:    req.WeightKg,
		WorkoutDate: req.WorkoutDate,
		Notes:       req.Notes,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, inserted)
}

// List returns the caller's workouts joined with the exercise catalog.
func (h *WorkoutHandler) List(c echo.Context) error {
	userID, token, err := ctxCaller(c)
	if err != nil {
		return err
	}

	workouts, err := h.service.List(c.Request().Context(), token, userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, workouts)
}

// History returns the caller's workouts newest first, creation timestamps
// breaking date ties.
func (h *WorkoutHandler) History(c echo.Context) error {
	userID, token, err := ctxCaller(c)
	if err != nil {
		return err
	}

	workouts, err := h.service.History(c.Request().Context(), token, userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, workouts)
}

// Delete removes one of the caller's workouts.
//
// @Summary      Delete a workout
// @Tags         workouts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Workout id"
// @Success      200  {object}  deleteWorkoutResponse
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/workouts/{id} [delete]
func (h *WorkoutHandler) Delete(c echo.Context) error {
	workoutID := c.Param("id")
	if workoutID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "workout id is required")
	}

	userID, token, err := ctxCaller(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), token, workoutID, userID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deleteWorkoutResponse{Success: true})
}
