package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"scl90-api/internal/service"
)

// GateHandler mantiene dependencias para emisión y canje de códigos.
type GateHandler struct {
	logger *zap.Logger
	gate   *service.GateService
}

// NewGateHandler crea una instancia de GateHandler.
func NewGateHandler(logger *zap.Logger, gate *service.GateService) *GateHandler {
	return &GateHandler{
		logger: logger,
		gate:   gate,
	}
}

// IssueCodes maneja POST /admin/codes.
func (h *GateHandler) IssueCodes(c *gin.Context) {
	var req struct {
		Count int `json:"count"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid issue codes request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if req.Count == 0 {
		req.Count = 1
	}

	codes, err := h.gate.IssueCodes(c.Request.Context(), req.Count)
	if err != nil {
		if errors.Is(err, service.ErrBatchSize) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("issue codes failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not issue codes"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"codes":      codes,
		"expires_in": int64(h.gate.CodeTTL().Seconds()),
	})
}

// Redeem maneja POST /auth/redeem: canjea un código por un token de entrega.
func (h *GateHandler) Redeem(c *gin.Context) {
	var req struct {
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid redeem request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	token, err := h.gate.Redeem(c.Request.Context(), req.Code)
	if err != nil {
		if errors.Is(err, service.ErrCodeInvalid) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "code invalid or already used"})
			return
		}
		h.logger.Error("redeem failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not redeem code"})
		return
	}

	c.JSON(http.StatusOK, token)
}
