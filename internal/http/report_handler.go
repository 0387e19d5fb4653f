package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"scl90-api/internal/domain"
	"scl90-api/internal/scoring"
)

// ReportHandler mantiene dependencias para los endpoints del cuestionario.
type ReportHandler struct {
	logger *zap.Logger
	engine *scoring.Engine
}

// NewReportHandler crea una instancia de ReportHandler.
func NewReportHandler(logger *zap.Logger, engine *scoring.Engine) *ReportHandler {
	return &ReportHandler{
		logger: logger,
		engine: engine,
	}
}

// GetScale maneja GET /scale: devuelve los ítems y los factores para que el
// cliente pueda renderizar el cuestionario.
func (h *ReportHandler) GetScale(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"items":   domain.Items(),
		"factors": domain.Factors(),
	})
}

// SubmitReport maneja POST /report: corrige una entrega completa.
func (h *ReportHandler) SubmitReport(c *gin.Context) {
	var responses []domain.ItemResponse
	if err := c.ShouldBindJSON(&responses); err != nil {
		h.logger.Warn("invalid report request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	report, err := h.engine.Score(responses)
	if err != nil {
		if errors.Is(err, scoring.ErrInvalidSubmission) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("score failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not score submission"})
		return
	}

	c.JSON(http.StatusOK, report)
}
