package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fittrack/fittrack-api/internal/core/ports"
)

// AnalysisHandler serves the AI coaching analysis.
type AnalysisHandler struct {
	service ports.AnalysisService
}

func NewAnalysisHandler(service ports.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{service: service}
}

type analysisResponse struct {
	Analysis string `json:"analysis"`
}

// Get handles GET /api/ai/analysis.
func (h *AnalysisHandler) Get(c echo.Context) error {
	userID, token, err := ctxCaller(c)
	if err != nil {
		return err
	}

	text, err := h.service.Analyze(c.Request().Context(), token, userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, analysisResponse{Analysis: text})
}
