package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fittrack/fittrack-api/internal/core/ports"
)

// StatsHandler serves the workout statistics summary.
type StatsHandler struct {
	service ports.StatsService
}

func NewStatsHandler(service ports.StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

// Get handles GET /api/stats.
//
// @Summary      Workout statistics
// @Tags         stats
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.Stats
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/stats [get]
func (h *StatsHandler) Get(c echo.Context) error {
	userID, token, err := ctxCaller(c)
	if err != nil {
		return err
	}

	stats, err := h.service.Stats(c.Request().Context(), token, userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
